package shell

import (
	"github.com/abiosoft/ishell"
)

func clearCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "clear",
		Help: "drop all strokes",
		Func: func(c *ishell.Context) {
			ctx.drawing.Clear()
			ctx.results = nil

			c.SetPrompt(ctx.prompt())
			c.Println("OK")
		},
	}
}
