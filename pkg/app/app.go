package app

import (
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/spooky/pkg/config"
	"github.com/gonewx/spooky/pkg/game"
	"github.com/gonewx/spooky/pkg/scenes"
)

// App 应用入口，实现 ebiten.Game 接口
// 负责窗口配置、资源加载和场景管理器的装配
type App struct {
	sceneManager    *game.SceneManager
	resourceManager *game.ResourceManager
	tuning          *config.TuningConfig
}

// NewApp 创建应用实例
// 依次加载调优配置和精灵资源，初始场景为主菜单
func NewApp() (*App, error) {
	assetDir := flag.String("assets", "assets", "sprite asset directory")
	configPath := flag.String("config", "configs/tuning.yaml", "tuning config path")
	flag.Parse()

	tuning, err := config.LoadTuningConfig(*configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load tuning config: %w", err)
	}

	rm := game.NewResourceManager()
	rm.LoadGameSprites(*assetDir)

	sm := game.NewSceneManager()
	sm.SwitchTo(scenes.NewMenuScene(sm, rm, tuning))

	log.Printf("[App] Initialized (assets=%s)", *assetDir)

	return &App{
		sceneManager:    sm,
		resourceManager: rm,
		tuning:          tuning,
	}, nil
}

// Update 将帧更新委托给当前场景
func (a *App) Update() error {
	return a.sceneManager.Update()
}

// Draw 将绘制委托给当前场景
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 固定逻辑分辨率
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// Run 配置窗口并启动主循环
func (a *App) Run() error {
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Spooky Pranks!")
	if err := ebiten.RunGame(a); err != nil {
		return fmt.Errorf("game loop exited with error: %w", err)
	}
	return nil
}
