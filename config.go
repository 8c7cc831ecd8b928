package main

const (
	// --- Window ---
	WindowWidth  = 1280
	WindowHeight = 800
	WindowTitle  = "Particle Field"

	// --- Files ---
	DefaultOptionsFile = "field.yaml"
	ScreenshotFile     = "screenshot.png"
	FontFile           = "fonts/Roboto-Regular.ttf"
	FontSize           = 14
)
