package systems

import (
	"github.com/gonewx/spooky/pkg/components"
	"github.com/gonewx/spooky/pkg/config"
	"github.com/gonewx/spooky/pkg/ecs"
	"github.com/gonewx/spooky/pkg/entities"
	"github.com/gonewx/spooky/pkg/utils"
)

// TrailSpawnSystem 残影生成系统
//
// 按固定间隔（默认 0.05 秒）克隆幽灵当前的精灵姿态，
// 生成一个短暂存活、逐渐淡出的残影实体。
// 残影的老化和销毁由 TransientSystem 统一处理
type TrailSpawnSystem struct {
	entityManager *ecs.EntityManager
	tuning        *config.TuningConfig

	spawnTimer utils.Timer
}

// NewTrailSpawnSystem 创建残影生成系统
func NewTrailSpawnSystem(em *ecs.EntityManager, cfg *config.TuningConfig) *TrailSpawnSystem {
	return &TrailSpawnSystem{
		entityManager: em,
		tuning:        cfg,
		spawnTimer:    utils.NewTimer(cfg.TrailSpawnInterval, utils.TimerRepeating),
	}
}

// Update 推进生成计时器，周期性克隆幽灵姿态
func (s *TrailSpawnSystem) Update(deltaTime float64) {
	s.spawnTimer.Tick(deltaTime)
	if !s.spawnTimer.JustFinished() {
		return
	}

	ghosts := ecs.GetEntitiesWith3[
		*components.GhostComponent,
		*components.PositionComponent,
		*components.SpriteComponent,
	](s.entityManager)
	if len(ghosts) == 0 {
		return
	}

	id := ghosts[0]
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)

	entities.NewGhostTrail(s.entityManager, pos.X, pos.Y, sprite, s.tuning.TrailLifetime)
}
