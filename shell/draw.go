package shell

import (
	"errors"
	"fmt"

	"github.com/abiosoft/ishell"

	"github.com/ryuichi1/hiranaga-demo-app/encoding/ink"
)

func drawCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "draw",
		Help: "add one stroke, usage: draw <x,y> <x,y> ...",
		Func: func(c *ishell.Context) {
			if len(c.Args) == 0 {
				c.Err(errors.New("missing stroke points"))
				return
			}

			points := make([]ink.Point, 0, len(c.Args))
			for _, arg := range c.Args {
				var x, y float32
				if _, err := fmt.Sscanf(arg, "%g,%g", &x, &y); err != nil {
					c.Err(fmt.Errorf("invalid point %q: %s", arg, err.Error()))
					return
				}
				points = append(points, ink.Point{X: x, Y: y})
			}

			ctx.drawing.Begin(points[0])
			for _, p := range points[1:] {
				ctx.drawing.Extend(p)
			}
			ctx.drawing.End()

			c.SetPrompt(ctx.prompt())
		},
	}
}
