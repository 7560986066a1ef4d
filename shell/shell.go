// Package shell is the interactive front end: strokes are entered as
// coordinate lists and run through the same pipeline the server uses.
package shell

import (
	"fmt"
	"path/filepath"

	"github.com/abiosoft/ishell"

	"github.com/ryuichi1/hiranaga-demo-app/config"
	"github.com/ryuichi1/hiranaga-demo-app/encoding/ink"
	"github.com/ryuichi1/hiranaga-demo-app/history"
	"github.com/ryuichi1/hiranaga-demo-app/recognizer"
	"github.com/ryuichi1/hiranaga-demo-app/version"
)

const historyLimit = 200

// ShellCtxt carries the state of one session: the drawing being built
// up and the outcome of the last recognition.
type ShellCtxt struct {
	cfg     config.Parameters
	rec     *recognizer.Recognizer
	hist    *history.History
	drawing *ink.Drawing
	results []recognizer.Result
}

func NewShellCtxt(cfg config.Parameters, rec *recognizer.Recognizer, hist *history.History) *ShellCtxt {
	return &ShellCtxt{
		cfg:     cfg,
		rec:     rec,
		hist:    hist,
		drawing: ink.NewDrawing(),
	}
}

func (ctx *ShellCtxt) prompt() string {
	return fmt.Sprintf("[%d strokes]>", len(ctx.drawing.Snapshot().Strokes))
}

func createFsEntryCompleter() func([]string) []string {
	return func(args []string) []string {
		prefix := ""
		if len(args) > 0 {
			prefix = args[len(args)-1]
		}
		matches, err := filepath.Glob(prefix + "*")
		if err != nil {
			return nil
		}
		return matches
	}
}

// RunShell starts the interactive loop, or runs args as a single
// command when given.
func RunShell(ctx *ShellCtxt, args []string) error {
	shell := ishell.New()
	shell.Println(fmt.Sprintf("hiranaga shell [version: %s]", version.Version))
	if !ctx.rec.Ready() {
		shell.Println("warning: engine not configured, recognize is unavailable")
	}
	shell.SetPrompt(ctx.prompt())

	shell.AddCmd(drawCmd(ctx))
	shell.AddCmd(recognizeCmd(ctx))
	shell.AddCmd(clearCmd(ctx))
	shell.AddCmd(statCmd(ctx))
	shell.AddCmd(labelsCmd(ctx))
	shell.AddCmd(historyCmd(ctx))
	shell.AddCmd(saveCmd(ctx))
	shell.AddCmd(loadCmd(ctx))
	shell.AddCmd(exportCmd(ctx))

	if len(args) > 0 {
		return shell.Process(args...)
	}

	shell.Run()
	return nil
}
