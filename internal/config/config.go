package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/quakesim/internal/seismic"
)

const (
	DefaultOutputDir = "out"
	DefaultFormat    = "png"
)

type Config struct {
	Grid            GridConfig       `yaml:"grid"`
	Physics         PhysicsConfig    `yaml:"physics"`
	Source          SourceConfig     `yaml:"source"`
	Receivers       []ReceiverConfig `yaml:"receivers,omitempty"`
	Output          OutputConfig     `yaml:"output"`
	StrictStability bool             `yaml:"strict_stability"`
}

type GridConfig struct {
	NX int     `yaml:"nx"`
	NZ int     `yaml:"nz"`
	DX float64 `yaml:"dx"`
	DZ float64 `yaml:"dz"`
}

type PhysicsConfig struct {
	VP     float64 `yaml:"vp"`
	DT     float64 `yaml:"dt"`
	NT     int     `yaml:"nt"`
	Scheme string  `yaml:"scheme"`
}

// SourceConfig leaves X and Z nil to place the source at the horizontal
// centre and a quarter of the depth.
type SourceConfig struct {
	X         *int    `yaml:"x,omitempty"`
	Z         *int    `yaml:"z,omitempty"`
	Amplitude float64 `yaml:"amplitude"`
}

type ReceiverConfig struct {
	Name string `yaml:"name"`
	Z    int    `yaml:"z"`
	X    int    `yaml:"x"`
}

type OutputConfig struct {
	Dir    string `yaml:"dir"`
	Format string `yaml:"format"`
	Trace  bool   `yaml:"trace"`
}

func DefaultConfig() *Config {
	return &Config{
		Grid: GridConfig{
			NX: seismic.DefaultNX,
			NZ: seismic.DefaultNZ,
			DX: seismic.DefaultSpacing,
			DZ: seismic.DefaultSpacing,
		},
		Physics: PhysicsConfig{
			VP:     seismic.DefaultVelocity,
			DT:     seismic.DefaultTimeStep,
			NT:     seismic.DefaultSteps,
			Scheme: string(seismic.SchemeInPlace),
		},
		Source: SourceConfig{
			Amplitude: seismic.DefaultAmplitude,
		},
		Output: OutputConfig{
			Dir:    DefaultOutputDir,
			Format: DefaultFormat,
		},
	}
}

func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads path on top of a copy of base. Keys absent from the file
// keep the values from base.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base.clone()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Params converts the file layout into validated simulation parameters.
func (c *Config) Params() (seismic.Params, error) {
	scheme, err := seismic.ParseScheme(c.Physics.Scheme)
	if err != nil {
		return seismic.Params{}, err
	}

	p := seismic.Params{
		NX:              c.Grid.NX,
		NZ:              c.Grid.NZ,
		DX:              c.Grid.DX,
		DZ:              c.Grid.DZ,
		VP:              c.Physics.VP,
		DT:              c.Physics.DT,
		NT:              c.Physics.NT,
		SourceAmplitude: c.Source.Amplitude,
		Scheme:          scheme,
	}
	p.SourceX, p.SourceZ = seismic.DefaultSource(p.NX, p.NZ)
	if c.Source.X != nil {
		p.SourceX = *c.Source.X
	}
	if c.Source.Z != nil {
		p.SourceZ = *c.Source.Z
	}

	if err := p.Validate(); err != nil {
		return seismic.Params{}, err
	}
	return p, nil
}

func (c *Config) clone() *Config {
	out := *c
	out.Receivers = append([]ReceiverConfig(nil), c.Receivers...)
	if c.Source.X != nil {
		out.Source.X = intPtr(*c.Source.X)
	}
	if c.Source.Z != nil {
		out.Source.Z = intPtr(*c.Source.Z)
	}
	return &out
}

func (c *Config) GetReceivers() []seismic.Receiver {
	receivers := make([]seismic.Receiver, len(c.Receivers))
	for i, r := range c.Receivers {
		name := r.Name
		if name == "" {
			name = fmt.Sprintf("r%d", i)
		}
		receivers[i] = seismic.Receiver{Name: name, Z: r.Z, X: r.X}
	}
	return receivers
}
