package app

import "flag"

// Config represents the command-line parameters of the live viewer.
type Config struct {
	Scale          int
	TPS            int
	StepsPerTick   int
	StepsPerSecond int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 8, TPS: 60, StepsPerTick: 4, StepsPerSecond: 30}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "display ticks per second")
	fs.IntVar(&c.StepsPerTick, "steps-per-tick", c.StepsPerTick, "integration steps per advance")
	fs.IntVar(&c.StepsPerSecond, "sps", c.StepsPerSecond, "advances per second")
}
