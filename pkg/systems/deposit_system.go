package systems

import (
	"fmt"
	"log"

	"github.com/gonewx/spooky/pkg/components"
	"github.com/gonewx/spooky/pkg/config"
	"github.com/gonewx/spooky/pkg/ecs"
	"github.com/gonewx/spooky/pkg/entities"
	"github.com/gonewx/spooky/pkg/game"
	"github.com/gonewx/spooky/pkg/utils"
)

// DepositSystem 糖果存入系统
//
// 幽灵靠近南瓜枢纽且糖果袋非空时：
//   - 进度条增加 (current/capacity)·25%，上限 100%
//     （满袋固定贡献 25%，与绝对容量无关，恰好 4 满袋填满）
//   - 到达 100% 后进度条切换为"满"染色（单向，设计上不会回落）
//   - 糖果袋清零，袋满提示移除，发出存入事件和反馈文本
//
// 南瓜枢纽每帧按需查找，不缓存引用（它可能尚未生成）
type DepositSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	tuning        *config.TuningConfig
}

// NewDepositSystem 创建存入系统
func NewDepositSystem(em *ecs.EntityManager, gs *game.GameState, cfg *config.TuningConfig) *DepositSystem {
	return &DepositSystem{
		entityManager: em,
		gameState:     gs,
		tuning:        cfg,
	}
}

// Update 检查幽灵与枢纽的距离并结算存入
// 幽灵或枢纽缺失时本帧为空操作
func (s *DepositSystem) Update(deltaTime float64) {
	ghosts := ecs.GetEntitiesWith3[
		*components.GhostComponent,
		*components.PositionComponent,
		*components.CandySackComponent,
	](s.entityManager)
	if len(ghosts) == 0 {
		return
	}
	pumpkins := ecs.GetEntitiesWith2[
		*components.PumpkinComponent,
		*components.PositionComponent,
	](s.entityManager)
	if len(pumpkins) == 0 {
		return
	}

	ghostPos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, ghosts[0])
	sack, _ := ecs.GetComponent[*components.CandySackComponent](s.entityManager, ghosts[0])
	pumpkinPos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, pumpkins[0])

	if sack.Current <= 0 {
		return
	}
	if utils.Distance(ghostPos.X, ghostPos.Y, pumpkinPos.X, pumpkinPos.Y) >= config.DepositRange {
		return
	}

	deposited := sack.Current
	progressIncrease := float64(sack.Current) / float64(sack.Capacity) * config.DepositSlicePercent
	s.gameState.AddProgress(progressIncrease)

	entities.NewFloatingText(
		s.entityManager,
		pumpkinPos.X, pumpkinPos.Y,
		fmt.Sprintf("Deposited %d candies!", deposited),
		s.tuning,
	)

	sack.Current = 0

	// 袋已清空，移除袋满提示
	for _, id := range ecs.GetEntitiesWith1[*components.FullSackNoticeComponent](s.entityManager) {
		s.entityManager.DestroyEntity(id)
	}

	s.gameState.PushEvent(game.Event{Kind: game.EventDeposited, Amount: deposited})
	log.Printf("[DepositSystem] Deposited %d candies, progress %.1f%%", deposited, s.gameState.Progress)
}
