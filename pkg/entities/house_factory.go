package entities

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/gonewx/spooky/pkg/components"
	"github.com/gonewx/spooky/pkg/config"
	"github.com/gonewx/spooky/pkg/ecs"
	"github.com/gonewx/spooky/pkg/game"
	"github.com/gonewx/spooky/pkg/utils"
)

// 稀有战利品的候选名称
var (
	rareItemNames     = []string{"Spider Ring", "Haunted Amulet", "Witch Charm"}
	specialTreatNames = []string{"Pumpkin Fudge", "Midnight Taffy"}
)

// RollLoot 随机生成一个战利品描述符
// 70% 普通糖果，20% 稀有物品，10% 特殊糖果
func RollLoot() components.LootType {
	roll := rand.Float64()
	switch {
	case roll < 0.7:
		return components.DefaultLoot()
	case roll < 0.9:
		return components.LootType{
			Kind: components.LootRareItem,
			Name: rareItemNames[rand.Intn(len(rareItemNames))],
		}
	default:
		return components.LootType{
			Kind: components.LootSpecialTreat,
			Name: specialTreatNames[rand.Intn(len(specialTreatNames))],
		}
	}
}

// NewHouse 在指定位置创建一栋房屋
// 初始亮灯状态随机，战利品随机
func NewHouse(em *ecs.EntityManager, rm ResourceLoader, x, y float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	lit := rand.Intn(2) == 0

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})

	spriteName := game.SpriteHouseDark
	state := components.HouseDark
	if lit {
		spriteName = game.SpriteHouseLit
		state = components.HouseLit
	}

	var sprite *components.SpriteComponent
	if rm != nil {
		sprite = components.NewSpriteComponent(rm.GetSprite(spriteName), 0.5)
	} else {
		sprite = components.NewSpriteComponent(nil, 0.5)
	}
	em.AddComponent(id, sprite)

	em.AddComponent(id, &components.HouseComponent{
		State:            state,
		LightStatus:      lit,
		Loot:             RollLoot(),
		InteractionTimer: utils.NewTimer(config.HouseInteractionDuration, utils.TimerOnce),
	})

	return id, nil
}

// SpawnHouses 按网格布局批量创建房屋，并在中心生成南瓜枢纽和气球
//
// 网格以原点为中心，中心格子跳过（留给南瓜）
//
// 返回:
//   - []ecs.EntityID: 创建的房屋实体ID列表
//   - error: 如果创建失败返回错误信息
func SpawnHouses(em *ecs.EntityManager, rm ResourceLoader, cfg *config.TuningConfig) ([]ecs.EntityID, error) {
	if em == nil {
		return nil, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return nil, fmt.Errorf("tuning config cannot be nil")
	}

	positions := config.GetHouseGridPositions()
	houses := make([]ecs.EntityID, 0, len(positions))

	for _, pos := range positions {
		id, err := NewHouse(em, rm, pos[0], pos[1])
		if err != nil {
			return nil, err
		}
		houses = append(houses, id)
	}
	log.Printf("[HouseFactory] Spawned %d houses in a %dx%d grid", len(houses), config.GridRows, config.GridColumns)

	if _, err := NewPumpkin(em, rm); err != nil {
		return nil, err
	}
	if _, err := NewBalloon(em, rm, cfg); err != nil {
		return nil, err
	}

	return houses, nil
}

// NewPumpkin 在原点创建南瓜枢纽（糖果存放点，固定不动）
func NewPumpkin(em *ecs.EntityManager, rm ResourceLoader) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: 0, Y: 0})

	var sprite *components.SpriteComponent
	if rm != nil {
		sprite = components.NewSpriteComponent(rm.GetSprite(game.SpritePumpkin), 0.4)
	} else {
		sprite = components.NewSpriteComponent(nil, 0.4)
	}
	em.AddComponent(id, sprite)
	em.AddComponent(id, &components.PumpkinComponent{})

	return id, nil
}

// NewBalloon 在原点创建漂浮的气球南瓜（射击目标）
func NewBalloon(em *ecs.EntityManager, rm ResourceLoader, cfg *config.TuningConfig) (ecs.EntityID, error) {
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
		sprite = components.NewSpriteComponent(rm.GetSprite(game.SpriteBalloon), 0.4)
	} else {
		sprite = components.NewSpriteComponent(nil, 0.4)
	}
	em.AddComponent(id, sprite)
	em.AddComponent(id, &components.BalloonComponent{})

	em.AddComponent(id, &components.FloatAnimationComponent{
		OriginalY: 0,
		Amplitude: cfg.BalloonFloatAmplitude,
		Frequency: cfg.BalloonFloatFrequency,
	})

	return id, nil
}
