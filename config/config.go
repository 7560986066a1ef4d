package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const (
	configEnvVar  = "HIRANAGA_CONFIG"
	appKeyEnvVar  = "HIRANAGA_ENGINE_APPLICATIONKEY"
	hmacKeyEnvVar = "HIRANAGA_ENGINE_HMAC"
)

// Engine holds the connection settings for the remote inference engine.
type Engine struct {
	URL            string        `yaml:"url"`
	ApplicationKey string        `yaml:"applicationKey"`
	HMACKey        string        `yaml:"hmacKey"`
	BatchSize      int64         `yaml:"batchSize"`
	Timeout        time.Duration `yaml:"timeout"`
}

// Ready reports whether the engine connection is fully configured.
// Credentials can come from the config file or the environment.
func (e Engine) Ready() bool {
	return e.URL != "" && e.ApplicationKey != "" && e.HMACKey != ""
}

// Parameters are the tunable constants of the recognition pipeline.
type Parameters struct {
	// CanvasSize is the side of the square raster the strokes are drawn on.
	CanvasSize int `yaml:"canvasSize"`
	// ModelInput is the side of the square tensor the engine expects.
	ModelInput int `yaml:"modelInput"`
	// StrokeWidth is the rendered ink width. It is deliberately thicker
	// than on-screen ink so strokes survive the downsample to ModelInput.
	StrokeWidth float64 `yaml:"strokeWidth"`
	// Padding is added on each side of the stroke bounding box,
	// normally half of StrokeWidth.
	Padding float64 `yaml:"padding"`
	// MinFit and MaxFit bound the auto-scale of the drawing: the larger
	// box dimension is clamped into [MinFit, MaxFit] and sizes already
	// inside the range are left unscaled.
	MinFit float64 `yaml:"minFit"`
	MaxFit float64 `yaml:"maxFit"`
	// TopK is the number of ranked guesses a recognition returns.
	TopK int `yaml:"topK"`
	// AlphabetFirst and AlphabetLast delimit the target Unicode block,
	// as code points. Defaults to the hiragana block.
	AlphabetFirst int `yaml:"alphabetFirst"`
	AlphabetLast  int `yaml:"alphabetLast"`

	LabelsPath string `yaml:"labels"`
	Engine     Engine `yaml:"engine"`

	Port string `yaml:"port"`
	MDNS bool   `yaml:"mdns"`
}

// Default returns the parameter set the app ships with.
func Default() Parameters {
	return Parameters{
		CanvasSize:    300,
		ModelInput:    64,
		StrokeWidth:   12,
		Padding:       6,
		MinFit:        64,
		MaxFit:        220,
		TopK:          5,
		AlphabetFirst: 0x3040,
		AlphabetLast:  0x309F,
		LabelsPath:    "labels.txt",
		Engine: Engine{
			BatchSize: 3,
			Timeout:   30 * time.Second,
		},
		Port: "8090",
	}
}

// Load reads parameters from path, falling back to defaults when the path
// is empty and no HIRANAGA_CONFIG override is set. Engine credentials can
// always be supplied through the environment instead of the file.
func Load(path string) (Parameters, error) {
	p := Default()

	if path == "" {
		path = os.Getenv(configEnvVar)
	}

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return p, errors.Wrap(err, "can't read config file")
		}
		if err := yaml.Unmarshal(b, &p); err != nil {
			return p, errors.Wrap(err, "can't parse config file")
		}
	}

	if key := os.Getenv(appKeyEnvVar); key != "" {
		p.Engine.ApplicationKey = key
	}
	if key := os.Getenv(hmacKeyEnvVar); key != "" {
		p.Engine.HMACKey = key
	}

	if err := p.Validate(); err != nil {
		return p, err
	}

	return p, nil
}

// Validate checks the parameter invariants. A failure here is an
// initialization error: the recognizer must not be built from it.
func (p Parameters) Validate() error {
	if p.CanvasSize <= 0 {
		return fmt.Errorf("canvasSize must be positive, got %d", p.CanvasSize)
	}
	if p.ModelInput <= 0 {
		return fmt.Errorf("modelInput must be positive, got %d", p.ModelInput)
	}
	if p.ModelInput > p.CanvasSize {
		return fmt.Errorf("modelInput %d exceeds canvasSize %d", p.ModelInput, p.CanvasSize)
	}
	if p.StrokeWidth <= 0 {
		return fmt.Errorf("strokeWidth must be positive, got %v", p.StrokeWidth)
	}
	if p.Padding < 0 {
		return fmt.Errorf("padding must not be negative, got %v", p.Padding)
	}
	if p.MinFit <= 0 || p.MaxFit < p.MinFit {
		return fmt.Errorf("fit range [%v, %v] is invalid", p.MinFit, p.MaxFit)
	}
	if p.TopK <= 0 {
		return fmt.Errorf("topK must be positive, got %d", p.TopK)
	}
	if p.AlphabetFirst > p.AlphabetLast {
		return fmt.Errorf("alphabet range U+%04X..U+%04X is invalid", p.AlphabetFirst, p.AlphabetLast)
	}
	if p.Engine.BatchSize <= 0 {
		return fmt.Errorf("engine batchSize must be positive, got %d", p.Engine.BatchSize)
	}
	return nil
}

// Save writes the parameters to path, mainly used to seed an editable
// config file.
func (p Parameters) Save(path string) error {
	b, err := yaml.Marshal(p)
	if err != nil {
		return errors.Wrap(err, "can't marshal config")
	}
	return os.WriteFile(path, b, 0644)
}
