package assets

import (
	"embed"
	"fmt"
	"log"

	"github.com/automoto/torch/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// Arena is a loaded arena: its parsed data plus the rendered tile layers.
type Arena struct {
	Data       *leveldata.ArenaData
	Background *ebiten.Image
}

// LoadArena parses levelPath from the embedded levels and renders every
// tile layer whose "render" property is set.
func LoadArena(levelPath string) (*Arena, error) {
	data, err := leveldata.LoadArena(assetFS, levelPath)
	if err != nil {
		return nil, err
	}

	background, err := renderBackground(levelPath)
	if err != nil {
		return nil, err
	}

	return &Arena{Data: data, Background: background}, nil
}

// MustLoadArena is LoadArena for startup code.
func MustLoadArena(levelPath string) *Arena {
	arena, err := LoadArena(levelPath)
	if err != nil {
		panic(err)
	}
	return arena
}

func renderBackground(levelPath string) (*ebiten.Image, error) {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(assetFS))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", levelPath, err)
	}

	background := ebiten.NewImage(levelMap.Width*levelMap.TileWidth, levelMap.Height*levelMap.TileHeight)

	renderer, err := render.NewRendererWithFileSystem(levelMap, assetFS)
	if err != nil {
		return nil, fmt.Errorf("create renderer for %s: %w", levelPath, err)
	}

	for i, layer := range levelMap.Layers {
		// Use "render" custom property to determine visibility
		if !layer.Properties.GetBool("render") {
			continue
		}
		if err := renderer.RenderLayer(i); err != nil {
			log.Printf("Warning: Failed to render layer %s: %v", layer.Name, err)
			continue
		}
		// Skip fully transparent layers
		opacity := layer.Opacity
		if opacity <= 0 {
			continue
		}
		layerImage := ebiten.NewImageFromImage(renderer.Result)
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(float32(opacity))
		background.DrawImage(layerImage, op)
		// Dispose temporary image to free GPU memory
		layerImage.Deallocate()
	}

	return background, nil
}
