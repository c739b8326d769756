package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type PlayerSpec struct {
	Name        string     `yaml:"name"`
	ScrollSpeed float64    `yaml:"scroll_speed"`
	Gravity     float64    `yaml:"gravity"`
	Hitbox      HitboxSpec `yaml:"hitbox"`
}

type HitboxSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	if spec.Hitbox.Width <= 0 || spec.Hitbox.Height <= 0 {
		return nil, fmt.Errorf("prefabs: player.yaml: hitbox must be positive, got %vx%v", spec.Hitbox.Width, spec.Hitbox.Height)
	}
	return &spec, nil
}

type ThemeSpec struct {
	FadeAlpha float64    `yaml:"fade_alpha"`
	Platform  *YAMLColor `yaml:"platform"`
	Goal      *YAMLColor `yaml:"goal"`
	Character *YAMLColor `yaml:"character"`
	Meter     MeterSpec  `yaml:"meter"`
}

type MeterSpec struct {
	X          float64    `yaml:"x"`
	Y          float64    `yaml:"y"`
	Width      float64    `yaml:"width"`
	Height     float64    `yaml:"height"`
	FullScale  float64    `yaml:"full_scale"`
	Background *YAMLColor `yaml:"background"`
	Foreground *YAMLColor `yaml:"foreground"`
}

func LoadThemeSpec() (*ThemeSpec, error) {
	spec, err := LoadSpec[ThemeSpec]("theme.yaml")
	if err != nil {
		return nil, err
	}
	if spec.Platform == nil || spec.Goal == nil || spec.Character == nil ||
		spec.Meter.Background == nil || spec.Meter.Foreground == nil {
		return nil, fmt.Errorf("prefabs: theme.yaml: missing color")
	}
	if spec.Meter.FullScale <= 0 {
		return nil, fmt.Errorf("prefabs: theme.yaml: meter full_scale must be positive")
	}
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}
	a := uint8(0xff)
	if len(s) == 8 {
		if a, err = parse(6); err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
