package shell

import (
	"context"
	"errors"

	"github.com/abiosoft/ishell"

	"github.com/ryuichi1/hiranaga-demo-app/history"
	"github.com/ryuichi1/hiranaga-demo-app/recognizer"
)

func recognizeCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "recognize",
		Help: "score the current drawing against the alphabet",
		Func: func(c *ishell.Context) {
			results, err := ctx.rec.Recognize(context.Background(), ctx.drawing.Snapshot())

			if errors.Is(err, recognizer.ErrEmptyDrawing) {
				c.Println("nothing to recognize")
				return
			}
			if err != nil {
				c.Err(err)
				return
			}

			ctx.results = results
			for _, r := range results {
				c.Printf("%s  %.2f\n", r.Glyph, r.Confidence)
			}

			entry, err := history.NewEntry(ctx.drawing, results)
			if err != nil {
				return
			}
			ctx.hist.Append(entry, historyLimit)
			if err := ctx.hist.Save(); err != nil {
				c.Err(err)
			}
		},
	}
}
