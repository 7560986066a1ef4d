package shell

import (
	"errors"
	"strings"

	"github.com/abiosoft/ishell"
)

const glyphsPerRow = 10

func labelsCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "labels",
		Help: "list the recognizable glyphs",
		Func: func(c *ishell.Context) {
			idx := ctx.rec.Index()
			if idx == nil {
				c.Err(errors.New("label index not loaded"))
				return
			}

			glyphs := idx.Glyphs()
			for i := 0; i < len(glyphs); i += glyphsPerRow {
				end := i + glyphsPerRow
				if end > len(glyphs) {
					end = len(glyphs)
				}
				c.Println(strings.Join(glyphs[i:end], " "))
			}
			c.Printf("%d of %d model classes\n", idx.Len(), idx.Total())
		},
	}
}
