package stgy

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bodgit/stgy/boarddb"
)

const importWorkers = 4

// Importer bulk-loads board document files from a directory tree into a
// catalogue, encoding each one so the stored share code is known good.
type Importer struct {
	db     *boarddb.DB
	logger *log.Logger
}

// NewImporter returns an Importer writing to the given catalogue.
func NewImporter(db *boarddb.DB, logger *log.Logger) *Importer {
	return &Importer{
		db:     db,
		logger: logger,
	}
}

func isDocumentFile(file string) bool {
	switch filepath.Ext(file) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

func (im *Importer) findDocuments(ctx context.Context, base string) (<-chan string, <-chan error, error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		errc <- filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories, otherwise we end up fighting with things like Spotlight, etc.
			if info.Name()[0] == '.' {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if !info.Mode().IsRegular() || !isDocumentFile(file) {
				return nil
			}

			select {
			case out <- file:
			case <-ctx.Done():
				return errors.New("walk cancelled")
			}

			return nil
		})
	}()
	return out, errc, nil
}

func (im *Importer) documentWorker(ctx context.Context, in <-chan string) (<-chan error, error) {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for file := range in {
			d, err := ReadDocumentFile(file)
			if err != nil {
				errc <- err
				return
			}

			code, err := Encode(d)
			if err != nil {
				errc <- err
				return
			}

			document, err := json.Marshal(d)
			if err != nil {
				errc <- err
				return
			}

			name := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
			if err := im.db.Put(name, code, string(document)); err != nil {
				errc <- err
				return
			}

			im.logger.Printf("imported \"%s\" from %s\n", name, file)
		}
	}()
	return errc, nil
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Import walks path and catalogues every JSON or YAML board document found
// underneath it, named after the file without its extension.
func (im *Importer) Import(path string) error {
	dir, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	var errcList []<-chan error

	files, errc, err := im.findDocuments(ctx, dir)
	if err != nil {
		return err
	}
	errcList = append(errcList, errc)

	for i := 0; i < importWorkers; i++ {
		errc, err := im.documentWorker(ctx, files)
		if err != nil {
			return err
		}
		errcList = append(errcList, errc)
	}

	return waitForPipeline(errcList...)
}
