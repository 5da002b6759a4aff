package main

import "flag"

// Config represents the command-line parameters for the game.
type Config struct {
	Width  int
	Height int
	TPS    int
	Scene  string
	Debug  bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 1280, Height: 720, TPS: 60, Scene: "menu"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.StringVar(&c.Scene, "scene", c.Scene, "scene to start in")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "enable the debug overlay")
}
