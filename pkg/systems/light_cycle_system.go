package systems

import (
	"math"
	"math/rand"

	"github.com/gonewx/spooky/pkg/components"
	"github.com/gonewx/spooky/pkg/ecs"
	"github.com/gonewx/spooky/pkg/game"
)

// LightCycleSystem 房屋灯光随机切换系统
//
// 在固定的墙钟间隔边界上（elapsed mod interval < delta，
// 对可变帧时间鲁棒），每栋房屋独立地以固定概率翻转亮灯状态。
// 各房屋之间不相关：没有"全部同时切换"的全局开关
//
// 翻转为亮灯时重新随机一次战利品，熄灯期间战利品不可见
type LightCycleSystem struct {
	entityManager   *ecs.EntityManager
	gameState       *game.GameState
	resourceManager *game.ResourceManager

	// interval 切换判定间隔（秒）
	interval float64
	// flipChance 每栋房屋在判定时刻翻转的概率
	flipChance float64
	// rollLoot 翻转为亮灯时重新生成战利品，测试可替换
	rollLoot func() components.LootType
}

// NewLightCycleSystem 创建灯光切换系统
func NewLightCycleSystem(em *ecs.EntityManager, gs *game.GameState, rm *game.ResourceManager, interval, flipChance float64, rollLoot func() components.LootType) *LightCycleSystem {
	s := &LightCycleSystem{
		entityManager:   em,
		gameState:       gs,
		resourceManager: rm,
		interval:        interval,
		flipChance:      flipChance,
		rollLoot:        rollLoot,
	}
	if s.rollLoot == nil {
		s.rollLoot = components.DefaultLoot
	}
	return s
}

// Update 在间隔边界上随机翻转各房屋的灯光
func (s *LightCycleSystem) Update(deltaTime float64) {
	// 间隔穿越检测：只有跨过 interval 整数倍的那一帧才触发
	if math.Mod(s.gameState.ElapsedTime, s.interval) >= deltaTime {
		return
	}

	houses := ecs.GetEntitiesWith2[
		*components.HouseComponent,
		*components.SpriteComponent,
	](s.entityManager)

	for _, id := range houses {
		if rand.Float64() >= s.flipChance {
			continue
		}

		house, _ := ecs.GetComponent[*components.HouseComponent](s.entityManager, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)

		house.LightStatus = !house.LightStatus
		if house.LightStatus {
			house.State = components.HouseLit
			house.Loot = s.rollLoot()
			if s.resourceManager != nil {
				sprite.Image = s.resourceManager.GetSprite(game.SpriteHouseLit)
			}
		} else {
			house.State = components.HouseDark
			if s.resourceManager != nil {
				sprite.Image = s.resourceManager.GetSprite(game.SpriteHouseDark)
			}
		}
	}
}
