package systems

import (
	"github.com/gonewx/spooky/pkg/components"
	"github.com/gonewx/spooky/pkg/config"
	"github.com/gonewx/spooky/pkg/ecs"
)

// TransientSystem 瞬态实体生命周期系统
//
// 对所有携带生命周期计时器的实体应用同一条规则：
// 推进计时器，按进度派生淡出透明度，完成时销毁实体。
// 规则统一覆盖三类瞬态实体：
//   - 爆炸粒子：按速度移动，alpha = 1 - fraction
//   - 漂浮文本：上升 rise·fraction，alpha = 1 - fraction
//   - 幽灵残影：原地淡出，alpha = 1 - fraction
//
// 销毁经由 DestroyEntity 延迟到帧末统一清理，重复销毁是幂等的：
// 计时器完成后实体最多只会被移除一次，之后不再被任何系统遍历到
type TransientSystem struct {
	entityManager *ecs.EntityManager
	tuning        *config.TuningConfig
}

// NewTransientSystem 创建瞬态实体系统
func NewTransientSystem(em *ecs.EntityManager, cfg *config.TuningConfig) *TransientSystem {
	return &TransientSystem{
		entityManager: em,
		tuning:        cfg,
	}
}

// Update 推进所有瞬态实体的生命周期
func (s *TransientSystem) Update(deltaTime float64) {
	s.updateParticles(deltaTime)
	s.updateFloatingTexts(deltaTime)
	s.updateTrails(deltaTime)
}

// updateParticles 推进爆炸粒子：移动、淡出、过期销毁
func (s *TransientSystem) updateParticles(deltaTime float64) {
	particles := ecs.GetEntitiesWith2[
		*components.ParticleComponent,
		*components.PositionComponent,
	](s.entityManager)

	for _, id := range particles {
		particle, _ := ecs.GetComponent[*components.ParticleComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		particle.Lifetime.Tick(deltaTime)
		if particle.Lifetime.Finished() {
			s.entityManager.DestroyEntity(id)
			continue
		}

		pos.X += particle.VelocityX * deltaTime
		pos.Y += particle.VelocityY * deltaTime

		if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok {
			sprite.Alpha = 1 - particle.Lifetime.Fraction()
		}
	}
}

// updateFloatingTexts 推进漂浮文本：上升、淡出、过期销毁
// 带 FullSackNoticeComponent 的常驻提示由互动系统管理，这里跳过
func (s *TransientSystem) updateFloatingTexts(deltaTime float64) {
	texts := ecs.GetEntitiesWith2[
		*components.FloatingTextComponent,
		*components.PositionComponent,
	](s.entityManager)

	rise := 50.0
	if s.tuning != nil {
		rise = s.tuning.FloatingTextRise
	}

	for _, id := range texts {
		if _, isNotice := ecs.GetComponent[*components.FullSackNoticeComponent](s.entityManager, id); isNotice {
			continue
		}

		text, _ := ecs.GetComponent[*components.FloatingTextComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		text.Timer.Tick(deltaTime)

		fraction := text.Timer.Fraction()
		pos.Y = text.InitialY + rise*fraction

		if text.Timer.Finished() {
			s.entityManager.DestroyEntity(id)
		}
	}
}

// updateTrails 推进幽灵残影：淡出、过期销毁
func (s *TransientSystem) updateTrails(deltaTime float64) {
	trails := ecs.GetEntitiesWith2[
		*components.GhostTrailComponent,
		*components.SpriteComponent,
	](s.entityManager)

	for _, id := range trails {
		trail, _ := ecs.GetComponent[*components.GhostTrailComponent](s.entityManager, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)

		trail.Lifetime.Tick(deltaTime)

		sprite.Alpha = 1 - trail.Lifetime.Fraction()

		if trail.Lifetime.Finished() {
			s.entityManager.DestroyEntity(id)
		}
	}
}
