package config

import (
	"os"
	"path"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default parameters are invalid: %v", err)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	file := path.Join(t.TempDir(), "config.yaml")
	content := `
canvasSize: 400
strokeWidth: 14
topK: 3
labels: /data/kana.txt
engine:
  url: https://scoring.example.com/v1
  applicationKey: app
  hmacKey: mac
  batchSize: 2
  timeout: 10s
port: "9001"
mdns: true
`
	if err := os.WriteFile(file, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(file)
	if err != nil {
		t.Fatal(err)
	}

	if p.CanvasSize != 400 {
		t.Errorf("canvasSize not overridden, got %d", p.CanvasSize)
	}
	if p.StrokeWidth != 14 {
		t.Errorf("strokeWidth not overridden, got %v", p.StrokeWidth)
	}
	if p.TopK != 3 {
		t.Errorf("topK not overridden, got %d", p.TopK)
	}
	if p.LabelsPath != "/data/kana.txt" {
		t.Errorf("labels path not overridden, got %s", p.LabelsPath)
	}
	if p.Engine.URL != "https://scoring.example.com/v1" {
		t.Errorf("engine url not overridden, got %s", p.Engine.URL)
	}
	if p.Engine.Timeout != 10*time.Second {
		t.Errorf("engine timeout not overridden, got %v", p.Engine.Timeout)
	}
	if !p.MDNS || p.Port != "9001" {
		t.Errorf("server settings not overridden, got port %s mdns %t", p.Port, p.MDNS)
	}

	// untouched values keep their defaults
	if p.ModelInput != 64 {
		t.Errorf("modelInput lost its default, got %d", p.ModelInput)
	}
	if p.MinFit != 64 || p.MaxFit != 220 {
		t.Errorf("fit range lost its default, got [%v, %v]", p.MinFit, p.MaxFit)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(path.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestLoadGarbage(t *testing.T) {
	file := path.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(file, []byte(":\n\t- bogus"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(file); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestLoadRejectsInvalidParameters(t *testing.T) {
	file := path.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(file, []byte("topK: -1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(file); err == nil {
		t.Fatal("expected a validation error")
	}
}

func TestLoadCredentialsFromEnv(t *testing.T) {
	t.Setenv(configEnvVar, "")
	t.Setenv(appKeyEnvVar, "app-from-env")
	t.Setenv(hmacKeyEnvVar, "hmac-from-env")

	p, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	if p.Engine.ApplicationKey != "app-from-env" || p.Engine.HMACKey != "hmac-from-env" {
		t.Errorf("credentials not taken from environment: %+v", p.Engine)
	}
}

func TestEngineReady(t *testing.T) {
	e := Engine{URL: "https://scoring.example.com", ApplicationKey: "a", HMACKey: "h"}
	if !e.Ready() {
		t.Error("fully configured engine should be ready")
	}

	for _, partial := range []Engine{
		{},
		{URL: "https://scoring.example.com"},
		{URL: "https://scoring.example.com", ApplicationKey: "a"},
		{ApplicationKey: "a", HMACKey: "h"},
	} {
		if partial.Ready() {
			t.Errorf("partially configured engine should not be ready: %+v", partial)
		}
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Parameters)
	}{
		{"zero canvas", func(p *Parameters) { p.CanvasSize = 0 }},
		{"zero model input", func(p *Parameters) { p.ModelInput = 0 }},
		{"model input above canvas", func(p *Parameters) { p.ModelInput = p.CanvasSize + 1 }},
		{"zero stroke width", func(p *Parameters) { p.StrokeWidth = 0 }},
		{"negative padding", func(p *Parameters) { p.Padding = -1 }},
		{"inverted fit range", func(p *Parameters) { p.MinFit = 300; p.MaxFit = 200 }},
		{"zero topK", func(p *Parameters) { p.TopK = 0 }},
		{"inverted alphabet", func(p *Parameters) { p.AlphabetFirst = 0x30A0; p.AlphabetLast = 0x3040 }},
		{"zero batch size", func(p *Parameters) { p.Engine.BatchSize = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Default()
			tc.mutate(&p)
			if err := p.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv(appKeyEnvVar, "")
	t.Setenv(hmacKeyEnvVar, "")

	p := Default()
	p.TopK = 7
	p.Engine.URL = "https://scoring.example.com/v1"

	file := path.Join(t.TempDir(), "config.yaml")
	if err := p.Save(file); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(file)
	if err != nil {
		t.Fatal(err)
	}

	if loaded.TopK != 7 || loaded.Engine.URL != p.Engine.URL {
		t.Errorf("round trip lost values: %+v", loaded)
	}
	if loaded.Engine.Timeout != p.Engine.Timeout {
		t.Errorf("round trip lost timeout: %v", loaded.Engine.Timeout)
	}
}
