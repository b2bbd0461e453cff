// Package levels parses TMX level files into plain geometry. It has no
// dependencies on ebitengine, donburi, or resolv.
package levels

// Level holds everything a scene needs from one TMX file. Coordinates are
// pixels with Y pointing down, as authored in Tiled.
type Level struct {
	Name          string
	Width         int
	Height        int
	Ground        []Rect
	Traps         []Rect
	NextDoors     []Rect
	PreviousDoors []Rect
	Spawn         Point

	// Respawn is the scene index the player returns to after dying here.
	Respawn int
}

type Rect struct {
	X, Y, W, H float64
}

type Point struct {
	X, Y float64
}
