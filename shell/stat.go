package shell

import (
	"github.com/abiosoft/ishell"
)

func statCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "stat",
		Help: "show drawing and pipeline state",
		Func: func(c *ishell.Context) {
			snap := ctx.drawing.Snapshot()

			c.Printf("id:      %s\n", snap.ID)
			c.Printf("strokes: %d\n", len(snap.Strokes))
			c.Printf("points:  %d\n", snap.PointCount())
			if b, ok := snap.Bounds(); ok {
				c.Printf("bounds:  (%.1f, %.1f) to (%.1f, %.1f)\n", b.MinX, b.MinY, b.MaxX, b.MaxY)
			}
			c.Printf("canvas:  %d, model input %d\n", ctx.cfg.CanvasSize, ctx.cfg.ModelInput)
			c.Printf("engine:  ready=%t\n", ctx.rec.Ready())
		},
	}
}
