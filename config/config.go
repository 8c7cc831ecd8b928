package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"particle-field/field"
)

var ErrInvalidOptions = errors.New("config: invalid options")

// Options is the on-disk configuration of the field and its host layer
type Options struct {
	ParticleCount   int     `yaml:"particle_count" json:"particle_count"`
	ConnectDistance float64 `yaml:"connect_distance" json:"connect_distance"`
	MaxSpeed        float64 `yaml:"max_speed" json:"max_speed"`
	MinRadius       float64 `yaml:"min_radius" json:"min_radius"`
	MaxRadius       float64 `yaml:"max_radius" json:"max_radius"`
	HueBase         float64 `yaml:"hue_base" json:"hue_base"`
	HueSpan         float64 `yaml:"hue_span" json:"hue_span"`
	Saturation      float64 `yaml:"saturation" json:"saturation"`
	MinLightness    float64 `yaml:"min_lightness" json:"min_lightness"`
	MaxLightness    float64 `yaml:"max_lightness" json:"max_lightness"`
	LineAlpha       float64 `yaml:"line_alpha" json:"line_alpha"`
	LineWidth       float64 `yaml:"line_width" json:"line_width"`
	LineColor       string  `yaml:"line_color" json:"line_color"`

	// Layer compositing
	Opacity    float64 `yaml:"opacity" json:"opacity"`
	Background string  `yaml:"background" json:"background"`
}

func Defaults() Options {
	s := field.DefaultSettings()
	return Options{
		ParticleCount:   field.DefaultCount,
		ConnectDistance: s.ConnectDistance,
		MaxSpeed:        s.MaxSpeed,
		MinRadius:       s.MinRadius,
		MaxRadius:       s.MaxRadius,
		HueBase:         s.HueBase,
		HueSpan:         s.HueSpan,
		Saturation:      s.Saturation,
		MinLightness:    s.MinLightness,
		MaxLightness:    s.MaxLightness,
		LineAlpha:       s.MaxLineAlpha,
		LineWidth:       s.LineWidth,
		LineColor:       "#6366f1",
		Opacity:         0.4,
		Background:      "#111827",
	}
}

// Load reads a YAML file over the defaults; keys missing from the file keep
// their default values.
func Load(filename string) (Options, error) {
	opts := Defaults()
	data, err := os.ReadFile(filename)
	if err != nil {
		return opts, err
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("config: parse %s: %w", filename, err)
	}
	if err := opts.Validate(); err != nil {
		return opts, fmt.Errorf("config: %s: %w", filename, err)
	}
	return opts, nil
}

func Save(filename string, opts Options) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(&opts); err != nil {
		return err
	}
	return enc.Close()
}

func (o Options) Validate() error {
	switch {
	case o.ParticleCount <= 0:
		return fmt.Errorf("%w: particle_count %d", ErrInvalidOptions, o.ParticleCount)
	case o.ConnectDistance < 0:
		return fmt.Errorf("%w: connect_distance %v", ErrInvalidOptions, o.ConnectDistance)
	case o.MaxSpeed < 0:
		return fmt.Errorf("%w: max_speed %v", ErrInvalidOptions, o.MaxSpeed)
	case o.MinRadius <= 0 || o.MaxRadius < o.MinRadius:
		return fmt.Errorf("%w: radius range [%v, %v]", ErrInvalidOptions, o.MinRadius, o.MaxRadius)
	case o.Saturation < 0 || o.Saturation > 1:
		return fmt.Errorf("%w: saturation %v", ErrInvalidOptions, o.Saturation)
	case o.MinLightness < 0 || o.MaxLightness > 1 || o.MaxLightness < o.MinLightness:
		return fmt.Errorf("%w: lightness range [%v, %v]", ErrInvalidOptions, o.MinLightness, o.MaxLightness)
	case o.LineAlpha < 0 || o.LineAlpha > 1:
		return fmt.Errorf("%w: line_alpha %v", ErrInvalidOptions, o.LineAlpha)
	case o.Opacity < 0 || o.Opacity > 1:
		return fmt.Errorf("%w: opacity %v", ErrInvalidOptions, o.Opacity)
	}
	if _, err := parseHex(o.LineColor); err != nil {
		return fmt.Errorf("%w: line_color: %v", ErrInvalidOptions, err)
	}
	if _, err := parseHex(o.Background); err != nil {
		return fmt.Errorf("%w: background: %v", ErrInvalidOptions, err)
	}
	return nil
}

// Settings converts the options into field tuning values. Invalid colors
// fall back to the defaults; call Validate first to reject them.
func (o Options) Settings() field.Settings {
	s := field.DefaultSettings()
	s.ConnectDistance = o.ConnectDistance
	s.MaxSpeed = o.MaxSpeed
	s.MinRadius = o.MinRadius
	s.MaxRadius = o.MaxRadius
	s.HueBase = o.HueBase
	s.HueSpan = o.HueSpan
	s.Saturation = o.Saturation
	s.MinLightness = o.MinLightness
	s.MaxLightness = o.MaxLightness
	s.MaxLineAlpha = o.LineAlpha
	s.LineWidth = o.LineWidth
	if c, err := parseHex(o.LineColor); err == nil {
		s.LineColor = c
	}
	return s
}

// BackgroundColor is the page color the layer is composited over
func (o Options) BackgroundColor() color.NRGBA {
	c, err := parseHex(o.Background)
	if err != nil {
		return color.NRGBA{R: 0x11, G: 0x18, B: 0x27, A: 0xff}
	}
	return c
}

func parseHex(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}
