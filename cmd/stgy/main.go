package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/stgy"
	"github.com/bodgit/stgy/boarddb"
	"github.com/bodgit/stgy/render"
	"github.com/urfave/cli/v2"
)

const defaultDB = "stgy.db"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func readCode(c *cli.Context) (string, error) {
	code := c.Args().First()
	if code == "-" {
		b, err := ioutil.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		code = string(b)
	}
	return strings.TrimSpace(code), nil
}

func printDocument(d *stgy.Document) error {
	b, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

func main() {
	app := cli.NewApp()

	app.Name = "stgy"
	app.Usage = "Strategy board share code utility"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"STGY_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to board library",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:      "decode",
			Usage:     "Decode a share code to a document",
			ArgsUsage: "CODE",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "out",
					Usage: "write the document to a JSON or YAML file",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				code, err := readCode(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				d, err := stgy.Decode(code)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				if out := c.String("out"); out != "" {
					if err := stgy.WriteDocumentFile(out, d); err != nil {
						return cli.NewExitError(err, 1)
					}
					return nil
				}

				if err := printDocument(d); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "encode",
			Usage:     "Encode a document file to a share code",
			ArgsUsage: "FILE",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "key",
					Value: -1,
					Usage: "cipher key (0-63, random if unset)",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				d, err := stgy.ReadDocumentFile(c.Args().First())
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				var code string
				if key := c.Int("key"); key >= 0 {
					code, err = stgy.EncodeWithKey(d, key)
				} else {
					code, err = stgy.Encode(d)
				}
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				fmt.Println(code)

				return nil
			},
		},
		{
			Name:      "render",
			Usage:     "Render a share code as a PNG preview",
			ArgsUsage: "CODE",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "out",
					Usage:    "output PNG file",
					Required: true,
				},
				&cli.IntFlag{
					Name:  "size",
					Value: render.DefaultSize,
					Usage: "image edge length in pixels",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				code, err := readCode(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				d, err := stgy.Decode(code)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				f, err := os.Create(c.String("out"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer f.Close()

				if err := render.EncodeSize(f, d, c.Int("size")); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:  "library",
			Usage: "Manage the local board library",
			Subcommands: []*cli.Command{
				{
					Name:      "add",
					Usage:     "Decode a share code and store it under a name",
					ArgsUsage: "NAME CODE",
					Action: func(c *cli.Context) error {
						if c.NArg() < 2 {
							cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
						}

						code := strings.TrimSpace(c.Args().Get(1))

						d, err := stgy.Decode(code)
						if err != nil {
							return cli.NewExitError(err, 1)
						}

						document, err := json.Marshal(d)
						if err != nil {
							return cli.NewExitError(err, 1)
						}

						db, err := boarddb.Open(c.String("db"))
						if err != nil {
							return cli.NewExitError(err, 1)
						}
						defer db.Close()

						if err := db.Put(c.Args().First(), code, string(document)); err != nil {
							return cli.NewExitError(err, 1)
						}

						return nil
					},
				},
				{
					Name:      "show",
					Usage:     "Show a stored board",
					ArgsUsage: "NAME",
					Action: func(c *cli.Context) error {
						if c.NArg() < 1 {
							cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
						}

						db, err := boarddb.Open(c.String("db"))
						if err != nil {
							return cli.NewExitError(err, 1)
						}
						defer db.Close()

						e, err := db.Get(c.Args().First())
						if err != nil {
							return cli.NewExitError(err, 1)
						}
						if e == nil {
							return cli.NewExitError(fmt.Errorf("no board named \"%s\"", c.Args().First()), 1)
						}

						fmt.Println(e.Code)
						fmt.Println(e.Document)

						return nil
					},
				},
				{
					Name:  "list",
					Usage: "List stored boards",
					Action: func(c *cli.Context) error {
						db, err := boarddb.Open(c.String("db"))
						if err != nil {
							return cli.NewExitError(err, 1)
						}
						defer db.Close()

						entries, err := db.List()
						if err != nil {
							return cli.NewExitError(err, 1)
						}

						for _, e := range entries {
							fmt.Printf("%s\t%s\t%s\n", e.Name, e.AddedAt.Format("2006-01-02 15:04"), e.Code)
						}

						return nil
					},
				},
				{
					Name:      "remove",
					Usage:     "Remove a stored board",
					ArgsUsage: "NAME",
					Action: func(c *cli.Context) error {
						if c.NArg() < 1 {
							cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
						}

						db, err := boarddb.Open(c.String("db"))
						if err != nil {
							return cli.NewExitError(err, 1)
						}
						defer db.Close()

						if err := db.Remove(c.Args().First()); err != nil {
							return cli.NewExitError(err, 1)
						}

						return nil
					},
				},
				{
					Name:      "export",
					Usage:     "Write a stored board to a document file",
					ArgsUsage: "NAME FILE",
					Action: func(c *cli.Context) error {
						if c.NArg() < 2 {
							cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
						}

						db, err := boarddb.Open(c.String("db"))
						if err != nil {
							return cli.NewExitError(err, 1)
						}
						defer db.Close()

						e, err := db.Get(c.Args().First())
						if err != nil {
							return cli.NewExitError(err, 1)
						}
						if e == nil {
							return cli.NewExitError(fmt.Errorf("no board named \"%s\"", c.Args().First()), 1)
						}

						d := new(stgy.Document)
						if err := json.Unmarshal([]byte(e.Document), d); err != nil {
							return cli.NewExitError(err, 1)
						}

						if err := stgy.WriteDocumentFile(c.Args().Get(1), d); err != nil {
							return cli.NewExitError(err, 1)
						}

						return nil
					},
				},
				{
					Name:      "import",
					Usage:     "Import every document file under a directory",
					ArgsUsage: "DIRECTORY",
					Action: func(c *cli.Context) error {
						if c.NArg() < 1 {
							cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
						}

						db, err := boarddb.Open(c.String("db"))
						if err != nil {
							return cli.NewExitError(err, 1)
						}
						defer db.Close()

						im := stgy.NewImporter(db, newLogger(c))

						if err := im.Import(c.Args().First()); err != nil {
							return cli.NewExitError(err, 1)
						}

						return nil
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
