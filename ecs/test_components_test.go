package ecs_test

// Common test entity types
type Position struct {
	X, Y float32
}

type Body struct {
	Position
	DX, DY float32
	Alive  bool
}

type Counter struct {
	Ticks int
	Seen  []string
}
