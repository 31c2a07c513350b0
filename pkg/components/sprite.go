package components

import "github.com/hajimehoshi/ebiten/v2"

// SpriteComponent 存储实体的视觉表现
// 模拟核心只负责在一组命名图像引用之间切换，以及修改 Tint/Alpha，
// 实际绘制由 RenderSystem 完成
type SpriteComponent struct {
	Image *ebiten.Image

	// Rotation 旋转角度（弧度，逆时针）
	Rotation float64

	// Scale 等比缩放倍数（1.0 = 原始大小）
	Scale float64

	// Alpha 透明度，0 = 完全透明，1 = 完全不透明
	Alpha float64

	// Tint 颜色乘数（0-1 通道值），(1,1,1) 表示不染色
	TintR float64
	TintG float64
	TintB float64
}

// NewSpriteComponent 创建一个默认染色、完全不透明的精灵组件
func NewSpriteComponent(image *ebiten.Image, scale float64) *SpriteComponent {
	return &SpriteComponent{
		Image: image,
		Scale: scale,
		Alpha: 1.0,
		TintR: 1.0,
		TintG: 1.0,
		TintB: 1.0,
	}
}
