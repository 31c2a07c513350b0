package game

import "github.com/hajimehoshi/ebiten/v2"

// Scene 场景接口
// 每个场景负责自己的更新逻辑和绘制逻辑
type Scene interface {
	// Update 更新场景逻辑，返回 ebiten.Termination 可退出游戏
	Update() error

	// Draw 绘制场景内容
	Draw(screen *ebiten.Image)
}
