// Package game holds the UI-agnostic game model: the terrain chart, the
// player boat, and the status record shown by the panels. Everything here is
// deterministic and free of rendering concerns.
package game

// Terrain classifies a chart hex.
type Terrain uint8

const (
	TerrainOutOfBounds  Terrain = iota // edge padding, impassable
	TerrainDeepWater                   // open sea
	TerrainShallowWater                // coastal water
	TerrainLand                        // impassable
)

var terrainNames = [4]string{"out-of-bounds", "deep water", "shallow water", "land"}

func (t Terrain) String() string {
	if int(t) >= len(terrainNames) {
		return "unknown"
	}
	return terrainNames[t]
}

// Navigable reports whether the boat may occupy this terrain.
func (t Terrain) Navigable() bool {
	return t == TerrainDeepWater || t == TerrainShallowWater
}
