package app

// Patterns maps built-in pattern names to their cell runs. The values use
// the bare decoder grammar: 'b'/'o' runs with '$' row breaks, no headers and
// no terminator.
var Patterns = map[string]string{
	"block":       "2o$2o",
	"blinker":     "3o",
	"toad":        "b3o$3o",
	"beacon":      "2o$2o$2b2o$2b2o",
	"glider":      "bob$2bo$3o",
	"lwss":        "bo2bo$o$o3bo$4o",
	"r-pentomino": "b2o$2o$bo",
	"diehard":     "6bob$2o$bo3b3o",
	"acorn":       "bo$3bo$2o2b3o",
	"pulsar":      "2b3o3b3o2$o4bobo4bo$o4bobo4bo$o4bobo4bo$2b3o3b3o2$2b3o3b3o$o4bobo4bo$o4bobo4bo$o4bobo4bo2$2b3o3b3o",
	"gosper-gun":  "24bo$22bobo$12b2o6b2o12b2o$11bo3bo4b2o12b2o$2o8bo5bo3b2o$2o8bo3bob2o4bobo$10bo5bo7bo$11bo3bo$12b2o",
}
