package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Layer and object group names read from arena maps.
const (
	SolidLayer       = "wg-tiles"
	WallsGroup       = "Walls"
	PlayerSpawnGroup = "PlayerSpawn"
	DummiesGroup     = "Dummies"
)

// LoadArena parses a TMX file. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string) (*ArenaData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &ArenaData{
		Name:       strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		MapWidth:   levelMap.Width * levelMap.TileWidth,
		MapHeight:  levelMap.Height * levelMap.TileHeight,
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
	}

	// Solid tiles
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != SolidLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				data.SolidRects = append(data.SolidRects, SolidRect{
					X: float64(x) * tileW,
					Y: float64(y) * tileH,
					W: tileW,
					H: tileH,
				})
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case WallsGroup:
			for _, o := range og.Objects {
				data.SolidRects = append(data.SolidRects, SolidRect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case PlayerSpawnGroup:
			for _, o := range og.Objects {
				data.SpawnPoints = append(data.SpawnPoints, SpawnPoint{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		case DummiesGroup:
			for _, o := range og.Objects {
				d := DummySpawn{
					X:            o.X,
					Y:            o.Y,
					Name:         o.Name,
					Health:       o.Properties.GetInt("health"),
					InvulnFrames: o.Properties.GetInt("invulnFrames"),
				}
				if hasProperty(o.Properties, "knockback") {
					kb := o.Properties.GetBool("knockback")
					d.CanKnockback = &kb
				}
				data.Dummies = append(data.Dummies, d)
			}
		}
	}

	if len(data.SpawnPoints) == 0 {
		return nil, fmt.Errorf("arena %s: no %s objects", tmxPath, PlayerSpawnGroup)
	}

	sort.Slice(data.SpawnPoints, func(i, j int) bool {
		return data.SpawnPoints[i].Index < data.SpawnPoints[j].Index
	})
	// Left-to-right so dummy numbering matches the screen
	sort.SliceStable(data.Dummies, func(i, j int) bool {
		return data.Dummies[i].X < data.Dummies[j].X
	})

	return data, nil
}

func hasProperty(props tiled.Properties, name string) bool {
	for _, p := range props {
		if p.Name == name {
			return true
		}
	}
	return false
}
