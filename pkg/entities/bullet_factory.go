package entities

import (
	"fmt"

	"github.com/gonewx/spooky/pkg/components"
	"github.com/gonewx/spooky/pkg/config"
	"github.com/gonewx/spooky/pkg/ecs"
)

// BulletVariant 子弹种类（两种开火指令对应两种染色）
type BulletVariant int

const (
	BulletPrimary   BulletVariant = iota // 左键，红色
	BulletSecondary                      // 右键，蓝色
)

// NewBullet 在指定位置创建一颗子弹
// 子弹沿单位方向向量 (dirX, dirY) 匀速飞行
func NewBullet(em *ecs.EntityManager, startX, startY, dirX, dirY float64, variant BulletVariant) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: startX, Y: startY})

	// 子弹没有图像资源，渲染为 10x10 的染色方块
	sprite := components.NewSpriteComponent(nil, 1.0)
	if variant == BulletPrimary {
		sprite.TintR, sprite.TintG, sprite.TintB = 1.0, 0.5, 0.5
	} else {
		sprite.TintR, sprite.TintG, sprite.TintB = 0.5, 0.5, 1.0
	}
	em.AddComponent(id, sprite)

	em.AddComponent(id, &components.BulletComponent{
		Speed: config.BulletSpeed,
		DirX:  dirX,
		DirY:  dirY,
	})

	return id, nil
}
