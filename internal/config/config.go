package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	DefaultSystem   = "plurality"
	DefaultVariance = 0.2
	DefaultWeight   = 1.0
	DefaultSize     = 200
	DefaultScale    = 1
	DefaultWorkers  = 1
	DefaultPalette  = "paired"
	MaxCandidates   = 12
)

// DefaultCandidates is the layout used when nothing else is given.
var DefaultCandidates = []float64{0.0, 0.3, 0.5, 1.0}

// ErrInvalidParameters wraps every validation failure.
var ErrInvalidParameters = errors.New("config: invalid parameters")

// Parameters is everything a redraw depends on.
// Variance0 and Variance1 are used as standard deviations.
type Parameters struct {
	Candidates []float64 `yaml:"candidates" validate:"required,min=1,max=12"`
	System     string    `yaml:"system" validate:"required,oneof=plurality approval borda hare"`
	Variance0  float64   `yaml:"variance_0" validate:"gt=0"`
	Variance1  float64   `yaml:"variance_1" validate:"gt=0"`
	Weight1    float64   `yaml:"weight_1" validate:"gte=0"`
}

// Update is a partial Parameters; nil fields keep the prior value.
type Update struct {
	Candidates []float64 `yaml:"candidates,omitempty"`
	System     *string   `yaml:"system,omitempty"`
	Variance0  *float64  `yaml:"variance_0,omitempty"`
	Variance1  *float64  `yaml:"variance_1,omitempty"`
	Weight1    *float64  `yaml:"weight_1,omitempty"`
}

type RenderConfig struct {
	Size    int    `yaml:"size" validate:"gte=2"`
	Scale   int    `yaml:"scale" validate:"gte=1"`
	Workers int    `yaml:"workers" validate:"gte=1"`
	Palette string `yaml:"palette" validate:"required"`
}

type Config struct {
	Parameters Parameters   `yaml:"parameters"`
	Render     RenderConfig `yaml:"render"`
}

func DefaultParameters() Parameters {
	return Parameters{
		Candidates: append([]float64(nil), DefaultCandidates...),
		System:     DefaultSystem,
		Variance0:  DefaultVariance,
		Variance1:  DefaultVariance,
		Weight1:    DefaultWeight,
	}
}

func DefaultRender() RenderConfig {
	return RenderConfig{
		Size:    DefaultSize,
		Scale:   DefaultScale,
		Workers: DefaultWorkers,
		Palette: DefaultPalette,
	}
}

func DefaultConfig() *Config {
	return &Config{
		Parameters: DefaultParameters(),
		Render:     DefaultRender(),
	}
}

// Merge returns p with every field set in u replaced. p is not modified.
func (p Parameters) Merge(u Update) Parameters {
	out := p
	out.Candidates = append([]float64(nil), p.Candidates...)
	if u.Candidates != nil {
		out.Candidates = append([]float64(nil), u.Candidates...)
	}
	if u.System != nil {
		out.System = *u.System
	}
	if u.Variance0 != nil {
		out.Variance0 = *u.Variance0
	}
	if u.Variance1 != nil {
		out.Variance1 = *u.Variance1
	}
	if u.Weight1 != nil {
		out.Weight1 = *u.Weight1
	}
	return out
}

// UpdateFrom returns an Update that replaces every field with p's.
func UpdateFrom(p Parameters) Update {
	return Update{
		Candidates: append([]float64(nil), p.Candidates...),
		System:     &p.System,
		Variance0:  &p.Variance0,
		Variance1:  &p.Variance1,
		Weight1:    &p.Weight1,
	}
}

var validate = validator.New()

func (p Parameters) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParameters, err)
	}
	return nil
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParameters, err)
	}
	return nil
}

// Load reads a YAML config over the defaults.
func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads a YAML config over base, which is modified in place.
// Fields missing from the file keep base's values.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, base); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := base.Validate(); err != nil {
		return nil, err
	}
	return base, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadUpdate reads a partial parameter file.
func LoadUpdate(path string) (Update, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Update{}, err
	}
	var u Update
	if err := yaml.Unmarshal(data, &u); err != nil {
		return Update{}, err
	}
	return u, nil
}
