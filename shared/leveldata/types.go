// Package leveldata provides TMX arena parsing. It has no dependencies on
// ebitengine, donburi, or resolv — pure data only.
package leveldata

// ArenaData holds everything the sandbox needs from a TMX arena file.
type ArenaData struct {
	Name        string
	SolidRects  []SolidRect
	SpawnPoints []SpawnPoint
	Dummies     []DummySpawn
	MapWidth    int
	MapHeight   int
	TileWidth   int
	TileHeight  int
}

// SolidRect represents a solid collision tile or wall object.
type SolidRect struct {
	X, Y, W, H float64
}

// SpawnPoint represents a fighter spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// DummySpawn is a training dummy placement. Zero values and nil mean the
// caller's defaults apply.
type DummySpawn struct {
	X, Y         float64
	Name         string
	Health       int
	InvulnFrames int
	CanKnockback *bool
}
