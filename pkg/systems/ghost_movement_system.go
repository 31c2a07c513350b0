package systems

import (
	"math"

	"github.com/gonewx/spooky/pkg/components"
	"github.com/gonewx/spooky/pkg/ecs"
	"github.com/gonewx/spooky/pkg/game"
	"github.com/gonewx/spooky/pkg/utils"
)

// rotationDeadband 距离目标小于此值时不再转向/缩放，避免静止抖动
const rotationDeadband = 0.1

// GhostMovementSystem 幽灵移动系统
//
// 职责：
//   - 以缓出插值将幽灵移向光标目标位置
//   - 以缓出插值将幽灵朝向转向移动方向（精灵"头朝上"约定：+90°）
//   - 根据剩余距离产生速度脉冲缩放（最多 +10%）
//
// 移动只更新悬浮基准线 OriginalY，不触碰实际 Y 坐标，
// 悬浮动画与跟随移动互不干扰
type GhostMovementSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
}

// NewGhostMovementSystem 创建幽灵移动系统
func NewGhostMovementSystem(em *ecs.EntityManager, gs *game.GameState) *GhostMovementSystem {
	return &GhostMovementSystem{
		entityManager: em,
		gameState:     gs,
	}
}

// Update 将幽灵向光标目标推进一帧
// 幽灵尚未生成时本帧为空操作
func (s *GhostMovementSystem) Update(deltaTime float64) {
	ghosts := ecs.GetEntitiesWith3[
		*components.GhostComponent,
		*components.PositionComponent,
		*components.FloatAnimationComponent,
	](s.entityManager)
	if len(ghosts) == 0 {
		return
	}
	id := ghosts[0]

	ghost, _ := ecs.GetComponent[*components.GhostComponent](s.entityManager, id)
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	anim, _ := ecs.GetComponent[*components.FloatAnimationComponent](s.entityManager, id)

	targetX := s.gameState.CursorX
	targetY := s.gameState.CursorY

	// 当前位置取悬浮基准线，而不是叠加了悬浮偏移的实际 Y
	currentX := pos.X
	currentY := anim.OriginalY

	dx := targetX - currentX
	dy := targetY - currentY
	dist := math.Sqrt(dx*dx + dy*dy)

	if dist > rotationDeadband {
		if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok {
			// 精灵素材头朝上，面向移动方向需要额外偏转 90°
			facing := math.Atan2(dy, dx) + math.Pi/2
			tRot := utils.EaseOutCubic(utils.Clamp(deltaTime*ghost.RotationSpeed, 0, 1))
			sprite.Rotation = utils.LerpAngle(sprite.Rotation, facing, tRot)

			speedFactor := math.Min(dist*0.01, 1.0)
			sprite.Scale = ghost.BaseScale * (1 + speedFactor*0.1)
		}
	}

	tMove := utils.EaseOutCubic(utils.Clamp(deltaTime*ghost.Speed, 0, 1))
	pos.X = utils.Lerp(currentX, targetX, tMove)
	anim.OriginalY = utils.Lerp(currentY, targetY, tMove)
}
