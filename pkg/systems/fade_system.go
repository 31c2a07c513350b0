package systems

import (
	"github.com/gonewx/spooky/pkg/components"
	"github.com/gonewx/spooky/pkg/ecs"
	"github.com/gonewx/spooky/pkg/game"
)

// FadeSystem 幽灵淡化系统
//
// 重复计时器每次完成时在 Normal/Faded 两个状态之间切换，
// 并交换对应的精灵图像引用。没有终止状态，贯穿实体整个生命周期
type FadeSystem struct {
	entityManager   *ecs.EntityManager
	resourceManager *game.ResourceManager
}

// NewFadeSystem 创建淡化系统
func NewFadeSystem(em *ecs.EntityManager, rm *game.ResourceManager) *FadeSystem {
	return &FadeSystem{
		entityManager:   em,
		resourceManager: rm,
	}
}

// Update 推进淡化计时器并在完成时切换状态
func (s *FadeSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith3[
		*components.FadeEffectComponent,
		*components.GhostComponent,
		*components.SpriteComponent,
	](s.entityManager)

	for _, id := range entities {
		fade, _ := ecs.GetComponent[*components.FadeEffectComponent](s.entityManager, id)
		ghost, _ := ecs.GetComponent[*components.GhostComponent](s.entityManager, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)

		fade.Timer.Tick(deltaTime)
		if !fade.Timer.JustFinished() {
			continue
		}

		switch ghost.State {
		case components.GhostNormal:
			ghost.State = components.GhostFaded
			if s.resourceManager != nil {
				sprite.Image = s.resourceManager.GetSprite(game.SpriteGhostFaded)
			}
		case components.GhostFaded:
			ghost.State = components.GhostNormal
			if s.resourceManager != nil {
				sprite.Image = s.resourceManager.GetSprite(game.SpriteGhost)
			}
		}
	}
}
