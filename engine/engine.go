package engine

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"go.starlark.net/starlark"

	"particle-field/config"
)

// binding ties a preset global to one option field
type binding struct {
	get func(o *config.Options) interface{}
	set func(o *config.Options, v interface{}) error
}

func floatBinding(field func(o *config.Options) *float64) binding {
	return binding{
		get: func(o *config.Options) interface{} { return *field(o) },
		set: func(o *config.Options, v interface{}) error {
			switch n := v.(type) {
			case float64:
				*field(o) = n
			case int:
				*field(o) = float64(n)
			default:
				return fmt.Errorf("want number, got %T", v)
			}
			return nil
		},
	}
}

func stringBinding(field func(o *config.Options) *string) binding {
	return binding{
		get: func(o *config.Options) interface{} { return *field(o) },
		set: func(o *config.Options, v interface{}) error {
			s, ok := v.(string)
			if !ok {
				return fmt.Errorf("want string, got %T", v)
			}
			*field(o) = s
			return nil
		},
	}
}

var bindings = map[string]binding{
	"particle_count": {
		get: func(o *config.Options) interface{} { return o.ParticleCount },
		set: func(o *config.Options, v interface{}) error {
			n, ok := v.(int)
			if !ok {
				return fmt.Errorf("want int, got %T", v)
			}
			o.ParticleCount = n
			return nil
		},
	},
	"connect_distance": floatBinding(func(o *config.Options) *float64 { return &o.ConnectDistance }),
	"max_speed":        floatBinding(func(o *config.Options) *float64 { return &o.MaxSpeed }),
	"min_radius":       floatBinding(func(o *config.Options) *float64 { return &o.MinRadius }),
	"max_radius":       floatBinding(func(o *config.Options) *float64 { return &o.MaxRadius }),
	"hue_base":         floatBinding(func(o *config.Options) *float64 { return &o.HueBase }),
	"hue_span":         floatBinding(func(o *config.Options) *float64 { return &o.HueSpan }),
	"saturation":       floatBinding(func(o *config.Options) *float64 { return &o.Saturation }),
	"min_lightness":    floatBinding(func(o *config.Options) *float64 { return &o.MinLightness }),
	"max_lightness":    floatBinding(func(o *config.Options) *float64 { return &o.MaxLightness }),
	"line_alpha":       floatBinding(func(o *config.Options) *float64 { return &o.LineAlpha }),
	"line_width":       floatBinding(func(o *config.Options) *float64 { return &o.LineWidth }),
	"opacity":          floatBinding(func(o *config.Options) *float64 { return &o.Opacity }),
	"line_color":       stringBinding(func(o *config.Options) *string { return &o.LineColor }),
	"background":       stringBinding(func(o *config.Options) *string { return &o.Background }),
}

// Names lists the globals a preset may set
func Names() []string {
	names := make([]string, 0, len(bindings))
	for k := range bindings {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// PresetUsage is the -preset flag help text, listing the settable globals
func PresetUsage() string {
	return "Starlark preset applied over the options file; may set " + strings.Join(Names(), ", ")
}

// EvalPreset runs a Starlark preset with the values of base predeclared and
// returns base with every recognised global the script defines applied.
// Globals starting with an underscore or not naming an option are ignored.
func EvalPreset(name, script string, base config.Options) (config.Options, error) {
	thread := &starlark.Thread{Name: name, Print: func(_ *starlark.Thread, msg string) { log.Println(name+":", msg) }}

	predeclared := starlark.StringDict{}
	for k, b := range bindings {
		v, err := toStarlarkValue(b.get(&base))
		if err != nil {
			return base, err
		}
		// Predeclared names cannot be reassigned, so expose them as defaults.
		predeclared["default_"+k] = v
	}

	globals, err := starlark.ExecFile(thread, name, script, predeclared)
	if err != nil {
		return base, fmt.Errorf("preset %s: %w", name, err)
	}

	out := base
	for k, v := range globals {
		b, ok := bindings[k]
		if !ok {
			continue
		}
		if err := b.set(&out, FromStarlarkValue(v)); err != nil {
			return base, fmt.Errorf("preset %s: %s: %w", name, k, err)
		}
	}
	if err := out.Validate(); err != nil {
		return base, fmt.Errorf("preset %s: %w", name, err)
	}
	return out, nil
}

// LoadPreset reads and evaluates a preset file
func LoadPreset(filename string, base config.Options) (config.Options, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return base, err
	}
	return EvalPreset(filename, string(data), base)
}

// Helpers for type conversion
func toStarlarkValue(v interface{}) (starlark.Value, error) {
	if v == nil {
		return starlark.None, nil
	}
	switch val := v.(type) {
	case string:
		return starlark.String(val), nil
	case int:
		return starlark.MakeInt(val), nil
	case float64:
		return starlark.Float(val), nil
	case bool:
		return starlark.Bool(val), nil
	}
	return starlark.None, fmt.Errorf("unsupported type: %T", v)
}

func FromStarlarkValue(v starlark.Value) interface{} {
	switch val := v.(type) {
	case starlark.String:
		return string(val)
	case starlark.Int:
		i, _ := val.Int64()
		return int(i)
	case starlark.Float:
		return float64(val)
	case starlark.Bool:
		return bool(val)
	}
	return nil
}
