package entities

import (
	"fmt"

	"github.com/gonewx/spooky/pkg/components"
	"github.com/gonewx/spooky/pkg/config"
	"github.com/gonewx/spooky/pkg/ecs"
	"github.com/gonewx/spooky/pkg/game"
	"github.com/gonewx/spooky/pkg/utils"
)

// NewGhost 创建玩家幽灵实体
// 幽灵在原点出生，跟随光标移动，周期性淡化，携带空糖果袋
//
// 参数:
//   - em: 实体管理器
//   - rm: 资源提供者（用于获取幽灵精灵）
//   - cfg: 玩法参数
//
// 返回:
//   - ecs.EntityID: 创建的幽灵实体ID，失败时返回 0
//   - error: 如果创建失败返回错误信息
func NewGhost(em *ecs.EntityManager, rm ResourceLoader, cfg *config.TuningConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("tuning config cannot be nil")
	}

	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{X: 0, Y: 0})

	var sprite *components.SpriteComponent
	if rm != nil {
		sprite = components.NewSpriteComponent(rm.GetSprite(game.SpriteGhost), cfg.GhostBaseScale)
	} else {
		sprite = components.NewSpriteComponent(nil, cfg.GhostBaseScale)
	}
	em.AddComponent(id, sprite)

	em.AddComponent(id, &components.GhostComponent{
		Speed:         cfg.GhostSpeed,
		RotationSpeed: cfg.GhostRotationSpeed,
		State:         components.GhostNormal,
		BaseScale:     cfg.GhostBaseScale,
	})

	em.AddComponent(id, &components.CandySackComponent{
		Capacity: config.CandySackCapacity,
		Current:  0,
	})

	em.AddComponent(id, &components.FloatAnimationComponent{
		OriginalY: 0,
		Amplitude: cfg.GhostFloatAmplitude,
		Frequency: cfg.GhostFloatFrequency,
	})

	em.AddComponent(id, &components.FadeEffectComponent{
		Timer: utils.NewTimer(cfg.FadePeriod, utils.TimerRepeating),
	})

	return id, nil
}
