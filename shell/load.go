package shell

import (
	"errors"

	"github.com/abiosoft/ishell"

	"github.com/ryuichi1/hiranaga-demo-app/archive"
)

func loadCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name:      "load",
		Help:      "load a drawing from a capture archive, usage: load <file>",
		Completer: createFsEntryCompleter(),
		Func: func(c *ishell.Context) {
			if len(c.Args) == 0 {
				c.Err(errors.New("missing source file"))
				return
			}

			capture, err := archive.ReadFile(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}

			ctx.drawing = capture.Drawing
			ctx.results = capture.Meta.Results

			snap := ctx.drawing.Snapshot()
			c.Printf("loaded %s: %d strokes, %d points\n", capture.Meta.ID, len(snap.Strokes), snap.PointCount())
			c.SetPrompt(ctx.prompt())
		},
	}
}
