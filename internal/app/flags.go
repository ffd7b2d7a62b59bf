package app

import "flag"

// Config represents the command-line parameters for the simulator.
type Config struct {
	Width    int
	Height   int
	Pattern  string
	RLE      string
	X        int
	Y        int
	Soup     float64
	Seed     int64
	Scenario string
	Ticks    int
	TPS      int
	Plain    bool
	GUI      bool
	Scale    int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:   64,
		Height:  32,
		Pattern: "glider",
		Seed:    42,
		TPS:     10,
		Scale:   8,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "built-in pattern to seed")
	fs.StringVar(&c.RLE, "rle", c.RLE, "raw pattern text, takes precedence over -pattern")
	fs.IntVar(&c.X, "x", c.X, "horizontal pattern offset")
	fs.IntVar(&c.Y, "y", c.Y, "vertical pattern offset")
	fs.Float64Var(&c.Soup, "soup", c.Soup, "random soup density in (0,1], takes precedence over patterns")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for -soup")
	fs.StringVar(&c.Scenario, "scenario", c.Scenario, "scenario file, takes precedence over all pattern flags")
	fs.IntVar(&c.Ticks, "ticks", c.Ticks, "generations to run before exiting, 0 runs forever")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second, 0 runs unpaced")
	fs.BoolVar(&c.Plain, "plain", c.Plain, "print each generation instead of redrawing in place")
	fs.BoolVar(&c.GUI, "gui", c.GUI, "open the graphical viewer")
	fs.IntVar(&c.Scale, "scale", c.Scale, "viewer pixel scale multiplier")
}
