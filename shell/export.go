package shell

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/abiosoft/ishell"
	flag "github.com/ogier/pflag"

	"github.com/ryuichi1/hiranaga-demo-app/archive"
	"github.com/ryuichi1/hiranaga-demo-app/export"
)

func exportCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name:      "export",
		Help:      "export the drawing, usage: export [--format=pdf|png] [--results] <file>",
		Completer: createFsEntryCompleter(),
		Func: func(c *ishell.Context) {
			flagSet := flag.NewFlagSet("export", flag.ContinueOnError)
			format := flagSet.String("format", "", "output format, pdf or png (default: file extension)")
			withResults := flagSet.Bool("results", false, "append the last recognition to a pdf export")
			if err := flagSet.Parse(c.Args); err != nil {
				if err != flag.ErrHelp {
					c.Err(err)
				}
				return
			}

			args := flagSet.Args()
			if len(args) == 0 {
				c.Err(errors.New("missing target file"))
				return
			}
			if ctx.drawing.IsEmpty() {
				c.Err(errors.New("nothing to export"))
				return
			}

			name := args[0]
			f := *format
			if f == "" {
				f = strings.TrimPrefix(filepath.Ext(name), ".")
			}

			switch f {
			case "png":
				data, err := export.PNG(ctx.rec, ctx.drawing.Snapshot())
				if err != nil {
					c.Err(err)
					return
				}
				if err := os.WriteFile(name, data, 0644); err != nil {
					c.Err(err)
					return
				}
			case "pdf":
				capture := archive.NewCapture(ctx.drawing, ctx.cfg.CanvasSize)
				capture.Meta.Results = ctx.results
				opts := export.PDFOptions{Results: *withResults, Width: ctx.cfg.StrokeWidth}
				if err := export.WritePDF(name, capture, opts); err != nil {
					c.Err(err)
					return
				}
			default:
				c.Err(fmt.Errorf("unknown format %q", f))
				return
			}
			c.Println("OK")
		},
	}
}
