package shell

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abiosoft/ishell"

	"github.com/ryuichi1/hiranaga-demo-app/archive"
	"github.com/ryuichi1/hiranaga-demo-app/export"
)

func saveCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name:      "save",
		Help:      "save the drawing to a capture archive, usage: save <file>",
		Completer: createFsEntryCompleter(),
		Func: func(c *ishell.Context) {
			if len(c.Args) == 0 {
				c.Err(errors.New("missing target file"))
				return
			}
			if ctx.drawing.IsEmpty() {
				c.Err(errors.New("nothing to save"))
				return
			}

			name := c.Args[0]
			if !strings.HasSuffix(name, "."+archive.Ext) {
				name = fmt.Sprintf("%s.%s", name, archive.Ext)
			}

			capture := archive.NewCapture(ctx.drawing, ctx.cfg.CanvasSize)
			capture.Meta.Results = ctx.results

			// preview is best effort, the ink payload is what matters
			if preview, err := export.PNG(ctx.rec, ctx.drawing.Snapshot()); err == nil {
				capture.Preview = preview
			}

			if err := capture.WriteFile(name); err != nil {
				c.Err(err)
				return
			}
			c.Println("OK")
		},
	}
}
