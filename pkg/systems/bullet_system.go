package systems

import (
	"log"
	"math"

	"github.com/gonewx/spooky/pkg/components"
	"github.com/gonewx/spooky/pkg/config"
	"github.com/gonewx/spooky/pkg/ecs"
	"github.com/gonewx/spooky/pkg/entities"
	"github.com/gonewx/spooky/pkg/game"
	"github.com/gonewx/spooky/pkg/utils"
)

// BulletSystem 子弹与碰撞系统
//
// 职责：
//   - 响应开火指令：进度条满时从幽灵位置向光标方向发射子弹
//   - 每帧推进所有子弹
//   - 与气球南瓜做距离判定；命中时销毁双方，生成三圈递进的
//     爆炸粒子、尾随粒子和反馈文本
//   - 清理飞出世界边界的子弹（脱靶回收，不是错误）
//
// 气球每帧只解析一次；命中后同帧的其余子弹不会再次命中
// （销毁恰好发生一次）
type BulletSystem struct {
	entityManager   *ecs.EntityManager
	gameState       *game.GameState
	resourceManager *game.ResourceManager
	tuning          *config.TuningConfig
}

// NewBulletSystem 创建子弹系统
func NewBulletSystem(em *ecs.EntityManager, gs *game.GameState, rm *game.ResourceManager, cfg *config.TuningConfig) *BulletSystem {
	return &BulletSystem{
		entityManager:   em,
		gameState:       gs,
		resourceManager: rm,
		tuning:          cfg,
	}
}

// Update 处理开火、推进子弹并结算碰撞
func (s *BulletSystem) Update(deltaTime float64) {
	s.handleFireCommand()
	s.advanceBullets(deltaTime)
}

// handleFireCommand 响应本帧的开火指令
// 开火前提：进度条达到 100% 且幽灵已生成
func (s *BulletSystem) handleFireCommand() {
	if !s.gameState.CanShoot() {
		return
	}
	if !s.gameState.FirePrimary && !s.gameState.FireSecondary {
		return
	}

	ghosts := ecs.GetEntitiesWith2[
		*components.GhostComponent,
		*components.PositionComponent,
	](s.entityManager)
	if len(ghosts) == 0 {
		return
	}
	ghostPos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, ghosts[0])

	dirX, dirY := utils.Normalize(s.gameState.CursorX-ghostPos.X, s.gameState.CursorY-ghostPos.Y)
	if dirX == 0 && dirY == 0 {
		return
	}

	variant := entities.BulletPrimary
	if !s.gameState.FirePrimary {
		variant = entities.BulletSecondary
	}

	if _, err := entities.NewBullet(s.entityManager, ghostPos.X, ghostPos.Y, dirX, dirY, variant); err != nil {
		log.Printf("[BulletSystem] Failed to spawn bullet: %v", err)
	}
}

// advanceBullets 推进所有子弹并结算碰撞与出界
func (s *BulletSystem) advanceBullets(deltaTime float64) {
	// 气球本帧位置只解析一次（它可能不存在或已被击破）
	var balloonID ecs.EntityID
	var balloonX, balloonY float64
	balloonAlive := false
	if balloons := ecs.GetEntitiesWith2[
		*components.BalloonComponent,
		*components.PositionComponent,
	](s.entityManager); len(balloons) > 0 {
		balloonID = balloons[0]
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, balloonID)
		balloonX, balloonY = pos.X, pos.Y
		balloonAlive = true
	}

	bullets := ecs.GetEntitiesWith2[
		*components.BulletComponent,
		*components.PositionComponent,
	](s.entityManager)

	for _, bulletID := range bullets {
		bullet, _ := ecs.GetComponent[*components.BulletComponent](s.entityManager, bulletID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, bulletID)

		pos.X += bullet.DirX * bullet.Speed * deltaTime
		pos.Y += bullet.DirY * bullet.Speed * deltaTime

		if balloonAlive && utils.Distance(pos.X, pos.Y, balloonX, balloonY) < config.BulletHitRadius {
			s.popBalloon(balloonID, balloonX, balloonY)
			s.entityManager.DestroyEntity(bulletID)
			balloonAlive = false
			continue
		}

		// 脱靶回收：距原点过远的子弹直接清理
		if math.Sqrt(pos.X*pos.X+pos.Y*pos.Y) > config.WorldDespawnBound {
			s.entityManager.DestroyEntity(bulletID)
		}
	}
}

// popBalloon 结算一次命中：销毁气球并生成分层爆炸效果
func (s *BulletSystem) popBalloon(balloonID ecs.EntityID, x, y float64) {
	// 三圈粒子由内到外：数量递减、速度递减、尺寸和存活时间递增
	for _, tier := range s.tuning.BurstTiers {
		entities.SpawnParticleBurst(s.entityManager, s.resourceManager, x, y, tier)
	}
	entities.SpawnTrailingParticles(s.entityManager, s.resourceManager, x, y, 4)
	entities.NewFloatingText(s.entityManager, x, y, "JACKPOT!", s.tuning)

	s.entityManager.DestroyEntity(balloonID)
	s.gameState.PushEvent(game.Event{Kind: game.EventBalloonPopped})
	log.Printf("[BulletSystem] Balloon popped at (%.0f, %.0f)", x, y)
}
