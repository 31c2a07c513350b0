package entities

import "github.com/hajimehoshi/ebiten/v2"

// ResourceLoader 工厂依赖的资源提供接口
// 由 game.ResourceManager 实现；测试可以传入返回 nil 图像的桩实现
type ResourceLoader interface {
	GetSprite(name string) *ebiten.Image
}
