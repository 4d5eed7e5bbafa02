// Command digitring converts and combines non-negative integers held as
// digit rings.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"github.com/zeebo/errs"

	"github.com/calebcase/digits/ring"
)

// Error is the class of command errors.
var Error = errs.Class("digitring")

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(cfg.Level())

	app := newApp(cfg, os.Stdout)

	if err := app.Run(os.Args); err != nil {
		logrus.WithFields(logrus.Fields{
			"func_name": "main",
		}).Fatal(err)
	}
}

func newApp(cfg *Config, w io.Writer) *cli.App {
	return &cli.App{
		Name:        "digitring",
		Usage:       "convert and combine numbers held as digit rings",
		Description: "numbers are read and printed in base 10 unless noted",
		Writer:      w,
		Commands: []*cli.Command{{
			Name:      "digits",
			Usage:     "print the digits of a number in the configured base",
			ArgsUsage: "<decimal>",
			Action: withArgs(1, func(c *cli.Context) error {
				r, err := ring.ParseBase(c.Args().Get(0), cfg.Base)
				if err != nil {
					return err
				}

				_, err = fmt.Fprintln(c.App.Writer, r.String())

				return err
			}),
		}, {
			Name:      "scale",
			Usage:     "print the digits of a number in the scale base",
			ArgsUsage: "<decimal>",
			Action: withArgs(1, func(c *cli.Context) error {
				r, err := ring.ParseBase(c.Args().Get(0), cfg.Base)
				if err != nil {
					return err
				}

				scaled, err := r.ChangeBase(cfg.ScaleBase)
				if err != nil {
					return err
				}

				_, err = fmt.Fprintln(c.App.Writer, scaled.String())

				return err
			}),
		}, {
			Name:      "and",
			Usage:     "print the bitwise AND of two numbers in base 2 and base 10",
			ArgsUsage: "<decimal> <decimal>",
			Action: withArgs(2, func(c *cli.Context) error {
				a, err := ring.ParseBase(c.Args().Get(0), cfg.Base)
				if err != nil {
					return err
				}

				b, err := ring.ParseBase(c.Args().Get(1), cfg.Base)
				if err != nil {
					return err
				}

				r, err := a.And(b)
				if err != nil {
					return err
				}

				_, err = fmt.Fprintf(c.App.Writer, "%s %s\n", r.String(), r.DecimalString())

				return err
			}),
		}, {
			Name:      "sort",
			Usage:     "print the digits of a number sorted",
			ArgsUsage: "<decimal>",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "desc",
					Usage: "sort from largest to smallest digit",
				},
			},
			Action: withArgs(1, func(c *cli.Context) error {
				r, err := ring.ParseBase(c.Args().Get(0), cfg.Base)
				if err != nil {
					return err
				}

				if c.Bool("desc") {
					r.SortDescending()
				} else {
					r.SortAscending()
				}

				_, err = fmt.Fprintln(c.App.Writer, r.String())

				return err
			}),
		}, {
			Name:      "copy",
			Usage:     "load a number from one file and save it to another",
			ArgsUsage: "<in> <out>",
			Action: withArgs(2, func(c *cli.Context) error {
				r, err := ring.LoadBase(c.Args().Get(0), cfg.Base)
				if err != nil {
					return err
				}

				logrus.WithFields(logrus.Fields{
					"func_name": "copy",
					"digits":    r.Len(),
				}).Debugf("loaded %s", c.Args().Get(0))

				return r.Save(c.Args().Get(1))
			}),
		}},
	}
}

// withArgs rejects invocations that do not have exactly n arguments.
func withArgs(n int, action cli.ActionFunc) cli.ActionFunc {
	return func(c *cli.Context) error {
		if c.NArg() != n {
			return Error.New(
				"%s: expected %d arguments, got %d",
				c.Command.Name,
				n,
				c.NArg(),
			)
		}

		return action(c)
	}
}
