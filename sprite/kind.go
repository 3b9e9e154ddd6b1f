// Package sprite describes the animated sprite sheets the simulation draws from.
//
// A sheet is a PNG atlas plus the JSON metadata Aseprite exports next to it.
// The simulation only ever reads the metadata (frame sample rectangles and
// durations); textures are the renderer's business.
package sprite

import "fmt"

// Kind identifies one sprite sheet.
type Kind int

const (
	ManWalk Kind = iota
	ManIdle
	Tree
	TreeStump
	Reticle
	Apple
	AxeIdle
	AxeCutting
	Log

	KindCount
)

var kindStems = [KindCount]string{
	ManWalk:    "man_walk",
	ManIdle:    "man_idle",
	Tree:       "tree",
	TreeStump:  "tree_stump",
	Reticle:    "reticle",
	Apple:      "apple",
	AxeIdle:    "axe_idle",
	AxeCutting: "axe_cutting",
	Log:        "log",
}

// Stem returns the file name shared by the sheet's PNG and JSON files.
func (k Kind) Stem() string {
	if k < 0 || k >= KindCount {
		return fmt.Sprintf("kind_%d", int(k))
	}
	return kindStems[k]
}

func (k Kind) String() string {
	return k.Stem()
}

// Kinds returns every sprite kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, KindCount)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}
