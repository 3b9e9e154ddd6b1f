package sprite

import "image"

// Builtin returns a catalog with placeholder metadata shaped like the shipped
// sheets. It lets the simulation run headless, without any asset files.
func Builtin() *Catalog {
	c := &Catalog{}
	c.sheets[ManWalk] = strip(image.Pt(8, 8), 100, 100, 100, 100)
	c.sheets[ManIdle] = strip(image.Pt(8, 8), 400, 400)
	c.sheets[Tree] = strip(image.Pt(16, 24), 250, 250, 250, 250)
	c.sheets[TreeStump] = strip(image.Pt(16, 24), 1000)
	c.sheets[Reticle] = strip(image.Pt(8, 8), 1000)
	c.sheets[Apple] = strip(image.Pt(8, 6), 500, 500)
	c.sheets[AxeIdle] = strip(image.Pt(8, 8), 1000)
	c.sheets[AxeCutting] = strip(image.Pt(8, 8), 60, 60, 80, 60)
	c.sheets[Log] = strip(image.Pt(8, 4), 1000)
	return c
}

// strip lays frames out left to right on a single row.
func strip(size image.Point, durations ...float64) Sheet {
	sheet := Sheet{Size: size, Frames: make([]Frame, len(durations))}
	for i, d := range durations {
		sheet.Frames[i] = Frame{Sample: image.Pt(i*size.X, 0), Duration: d}
	}
	return sheet
}
