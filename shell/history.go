package shell

import (
	"errors"
	"strconv"

	"github.com/abiosoft/ishell"
)

func historyCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "history",
		Help: "show recent recognitions, usage: history [n]",
		Func: func(c *ishell.Context) {
			n := 10
			if len(c.Args) > 0 {
				v, err := strconv.Atoi(c.Args[0])
				if err != nil || v <= 0 {
					c.Err(errors.New("invalid count"))
					return
				}
				n = v
			}

			for _, e := range ctx.hist.Tail(n) {
				top := "?"
				if len(e.Results) > 0 {
					top = e.Results[0].Glyph
				}
				c.Printf("%s  %s  %4d points  %s\n", e.At.Format("2006-01-02 15:04"), top, e.PointCount, e.ID)
			}
		},
	}
}
