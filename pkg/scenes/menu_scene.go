package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/gonewx/spooky/pkg/config"
	"github.com/gonewx/spooky/pkg/game"
	"github.com/gonewx/spooky/pkg/utils"
)

// MenuScene 主菜单场景
// 按空格开始游戏，按 Esc 退出
type MenuScene struct {
	sceneManager    *game.SceneManager
	resourceManager *game.ResourceManager
	tuning          *config.TuningConfig
}

// NewMenuScene 创建主菜单场景
func NewMenuScene(sm *game.SceneManager, rm *game.ResourceManager, cfg *config.TuningConfig) *MenuScene {
	return &MenuScene{
		sceneManager:    sm,
		resourceManager: rm,
		tuning:          cfg,
	}
}

// Update 等待开始指令
func (s *MenuScene) Update() error {
	input := utils.ReadInputState()

	if input.ExitRequested {
		return ebiten.Termination
	}
	if input.AdvanceMenu {
		gameScene, err := NewGameScene(s.sceneManager, s.resourceManager, s.tuning)
		if err != nil {
			return err
		}
		s.sceneManager.SwitchTo(gameScene)
	}
	return nil
}

// Draw 绘制标题和提示
func (s *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 26, G: 26, B: 38, A: 255})

	text.Draw(screen, "Spooky Pranks!", basicfont.Face7x13,
		config.ScreenWidth/2-50, config.ScreenHeight/2-20, color.White)
	text.Draw(screen, "Press SPACE to start", basicfont.Face7x13,
		config.ScreenWidth/2-70, config.ScreenHeight/2+10, color.RGBA{R: 180, G: 180, B: 180, A: 255})
}
