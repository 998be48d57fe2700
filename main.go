package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/hanabi/pkg/config"
	"github.com/decker502/hanabi/pkg/game"
	"github.com/decker502/hanabi/pkg/scenes"
)

// Game wraps the active scene and implements the ebiten.Game interface.
type Game struct {
	scene game.Scene
}

// Update updates the game logic.
// This method is called every tick (typically 60 times per second).
func (g *Game) Update() error {
	g.scene.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

// Draw renders the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout returns the game's logical screen size.
// This size is independent of the actual window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

func main() {
	// 跨平台存储：打开失败时降级为仅内存设置
	gdataManager, err := gdata.Open(gdata.Config{AppName: "hanabi"})
	if err != nil {
		log.Printf("[Main] Warning: failed to open gdata storage: %v (settings will not persist)", err)
		gdataManager = nil
	}

	settingsManager, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		log.Printf("[Main] Warning: failed to init settings: %v", err)
	}

	scene, err := scenes.NewTableScene(config.DefaultTableConfig(), settingsManager)
	if err != nil {
		log.Fatalf("[Main] Failed to create table scene: %v", err)
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("花火牌桌 - 布局动画演示")

	if err := ebiten.RunGame(&Game{scene: scene}); err != nil {
		log.Fatal(err)
	}
}
