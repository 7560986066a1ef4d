package main

import (
	"fmt"
	"os"

	flag "github.com/ogier/pflag"

	"github.com/ryuichi1/hiranaga-demo-app/config"
	"github.com/ryuichi1/hiranaga-demo-app/engine"
	"github.com/ryuichi1/hiranaga-demo-app/history"
	"github.com/ryuichi1/hiranaga-demo-app/labels"
	"github.com/ryuichi1/hiranaga-demo-app/log"
	"github.com/ryuichi1/hiranaga-demo-app/recognizer"
	"github.com/ryuichi1/hiranaga-demo-app/shell"
	"github.com/ryuichi1/hiranaga-demo-app/version"
)

func buildRecognizer(cfg config.Parameters) *recognizer.Recognizer {
	rcfg := recognizer.Config{Params: cfg}

	table, err := labels.Load(cfg.LabelsPath)
	if err != nil {
		log.Warning.Printf("cannot load labels from %s: %v", cfg.LabelsPath, err)
	} else {
		idx, err := labels.NewIndex(table, labels.RangePolicy{
			First: rune(cfg.AlphabetFirst),
			Last:  rune(cfg.AlphabetLast),
		})
		if err != nil {
			log.Warning.Printf("cannot index labels: %v", err)
		} else {
			rcfg.Index = idx
		}
	}

	if cfg.Engine.Ready() {
		rcfg.Engine = engine.NewRemote(cfg.Engine)
	} else {
		log.Warning.Println("engine credentials missing, recognition disabled")
	}

	return recognizer.New(rcfg)
}

func main() {
	configPath := flag.String("config", "", "config file (default: HIRANAGA_CONFIG or built-in defaults)")
	serverMode := flag.Bool("server", false, "run the REST capture server instead of the shell")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Version)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error.Fatal(err)
	}

	rec := buildRecognizer(cfg)

	if *serverMode {
		runServerMode(cfg, rec)
		return
	}

	hist, err := history.Load()
	if err != nil {
		log.Warning.Printf("cannot load history: %v", err)
		hist = &history.History{}
	}

	ctx := shell.NewShellCtxt(cfg, rec, hist)
	if err := shell.RunShell(ctx, flag.Args()); err != nil {
		log.Error.Println(err)
		os.Exit(1)
	}
}
