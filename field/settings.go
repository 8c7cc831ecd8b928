package field

import "image/color"

// Settings are the tuning values for one field. DefaultSettings matches the
// portfolio background.
type Settings struct {
	MaxSpeed     float64 // px per frame, per axis
	MinRadius    float64
	MaxRadius    float64
	HueBase      float64 // degrees
	HueSpan      float64 // degrees
	Saturation   float64 // 0..1
	MinLightness float64 // 0..1
	MaxLightness float64 // 0..1

	ConnectDistance float64 // px, connections are strictly shorter
	MaxLineAlpha    float64 // alpha at distance 0
	LineWidth       float64
	LineColor       color.NRGBA // alpha is ignored
}

const (
	DefaultCount           = 50
	DefaultConnectDistance = 150.0
)

func DefaultSettings() Settings {
	return Settings{
		MaxSpeed:        0.25,
		MinRadius:       0.5,
		MaxRadius:       2.5,
		HueBase:         240,
		HueSpan:         60,
		Saturation:      0.7,
		MinLightness:    0.6,
		MaxLightness:    0.9,
		ConnectDistance: DefaultConnectDistance,
		MaxLineAlpha:    0.2,
		LineWidth:       0.5,
		LineColor:       color.NRGBA{R: 99, G: 102, B: 241, A: 0xff},
	}
}
