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

// HouseInteractionSystem 房屋互动系统（讨糖）
//
// 每帧对每栋亮灯的房屋：
//   - 幽灵在互动范围内：房屋染上"范围内"提示色，推进互动计时器；
//     计时器完成时糖果袋 +1（袋满则忽略）、更新库存、发出战利品事件、
//     战利品重置为默认糖果、计时器复位
//   - 幽灵在范围外：恢复默认染色，计时器清零
//     （互动必须连续停留：离开会重置进度，不是暂停）
//
// 另外负责"糖果袋已满"常驻提示的生命周期：
// 袋满且无提示时生成一条，袋不满的当帧移除
type HouseInteractionSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	tuning        *config.TuningConfig
}

// NewHouseInteractionSystem 创建房屋互动系统
func NewHouseInteractionSystem(em *ecs.EntityManager, gs *game.GameState, cfg *config.TuningConfig) *HouseInteractionSystem {
	return &HouseInteractionSystem{
		entityManager: em,
		gameState:     gs,
		tuning:        cfg,
	}
}

// Update 处理幽灵与所有房屋的互动
// 幽灵尚未生成时本帧为空操作
func (s *HouseInteractionSystem) Update(deltaTime float64) {
	ghosts := ecs.GetEntitiesWith3[
		*components.GhostComponent,
		*components.PositionComponent,
		*components.CandySackComponent,
	](s.entityManager)
	if len(ghosts) == 0 {
		return
	}
	ghostID := ghosts[0]

	ghostPos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, ghostID)
	sack, _ := ecs.GetComponent[*components.CandySackComponent](s.entityManager, ghostID)

	s.updateFullSackNotice(sack)

	houses := ecs.GetEntitiesWith3[
		*components.HouseComponent,
		*components.PositionComponent,
		*components.SpriteComponent,
	](s.entityManager)

	for _, houseID := range houses {
		house, _ := ecs.GetComponent[*components.HouseComponent](s.entityManager, houseID)
		housePos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, houseID)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, houseID)

		// 熄灯的房屋不参与互动
		if !house.LightStatus {
			continue
		}

		distance := utils.Distance(ghostPos.X, ghostPos.Y, housePos.X, housePos.Y)

		if distance < config.HouseInteractionRange {
			// 范围内提示色（淡绿）
			sprite.TintR, sprite.TintG, sprite.TintB = 0.8, 1.0, 0.8

			house.InteractionTimer.Tick(deltaTime)

			if house.InteractionTimer.JustFinished() {
				s.collectLoot(house, housePos, sack)
				house.InteractionTimer.Reset()
			}
		} else {
			// 离开范围：恢复默认色，进度清零
			sprite.TintR, sprite.TintG, sprite.TintB = 1.0, 1.0, 1.0
			house.InteractionTimer.Reset()
		}
	}
}

// collectLoot 完成一次讨糖：更新糖果袋、库存并发出事件
func (s *HouseInteractionSystem) collectLoot(house *components.HouseComponent, housePos *components.PositionComponent, sack *components.CandySackComponent) {
	// 袋满时多余的糖果被忽略（不回绕、不报错）
	if sack.Current < sack.Capacity {
		sack.Current++
		s.gameState.Inventory.AddLoot(house.Loot)

		entities.NewFloatingText(
			s.entityManager,
			housePos.X, housePos.Y,
			fmt.Sprintf("Total Candies: %d", s.gameState.Inventory.Candies),
			s.tuning,
		)

		s.gameState.PushEvent(game.Event{Kind: game.EventLootCollected, Loot: house.Loot})
		log.Printf("[HouseInteraction] Collected loot (sack %d/%d)", sack.Current, sack.Capacity)

		if sack.Current == sack.Capacity {
			s.gameState.PushEvent(game.Event{Kind: game.EventSackFull})
		}
	}

	// 被收集后的房屋回到默认战利品
	house.Loot = components.DefaultLoot()
}

// updateFullSackNotice 维护"糖果袋已满"的常驻提示
// 不变量：同一时刻至多存在一条提示
func (s *HouseInteractionSystem) updateFullSackNotice(sack *components.CandySackComponent) {
	notices := ecs.GetEntitiesWith1[*components.FullSackNoticeComponent](s.entityManager)

	if sack.Current >= sack.Capacity {
		if len(notices) == 0 {
			entities.NewFullSackNotice(s.entityManager)
		}
		return
	}

	// 袋不满的当帧移除提示（存糖后的下一帧生效）
	for _, id := range notices {
		s.entityManager.DestroyEntity(id)
	}
}
