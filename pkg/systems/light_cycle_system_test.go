package systems

import (
	"testing"

	"github.com/gonewx/spooky/pkg/components"
	"github.com/gonewx/spooky/pkg/ecs"
	"github.com/gonewx/spooky/pkg/game"
)

// TestLightFlipOnIntervalBoundary 测试只在间隔边界帧触发翻转
func TestLightFlipOnIntervalBoundary(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := game.NewGameState()
	// 翻转概率 1.0：边界帧上必然翻转
	system := NewLightCycleSystem(em, gs, nil, 5.0, 1.0, nil)

	houseID := spawnTestHouse(em, 0, 0, true)
	house, _ := ecs.GetComponent[*components.HouseComponent](em, houseID)

	// 间隔中段：不翻转
	gs.ElapsedTime = 2.5
	system.Update(1.0 / 60.0)
	if !house.LightStatus {
		t.Error("Expected no flip mid-interval")
	}

	// 恰好跨过 5 秒边界的帧：翻转
	gs.ElapsedTime = 5.0
	system.Update(1.0 / 60.0)
	if house.LightStatus {
		t.Error("Expected flip on interval boundary")
	}
}

// TestLightStateMatchesStatus 测试 State 与 LightStatus 保持一致
func TestLightStateMatchesStatus(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := game.NewGameState()
	system := NewLightCycleSystem(em, gs, nil, 5.0, 1.0, nil)

	houseID := spawnTestHouse(em, 0, 0, true)
	house, _ := ecs.GetComponent[*components.HouseComponent](em, houseID)

	for cycle := 1; cycle <= 4; cycle++ {
		gs.ElapsedTime = float64(cycle) * 5.0
		system.Update(1.0 / 60.0)

		lit := house.State == components.HouseLit
		if lit != house.LightStatus {
			t.Fatalf("Expected State and LightStatus in sync, got State=%v LightStatus=%v",
				house.State, house.LightStatus)
		}
	}
}

// TestRelightRerollsLoot 测试翻转为亮灯时重新随机战利品
func TestRelightRerollsLoot(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := game.NewGameState()

	rigged := components.LootType{Kind: components.LootRareItem, Name: "Haunted Amulet"}
	system := NewLightCycleSystem(em, gs, nil, 5.0, 1.0, func() components.LootType {
		return rigged
	})

	houseID := spawnTestHouse(em, 0, 0, false)
	house, _ := ecs.GetComponent[*components.HouseComponent](em, houseID)

	gs.ElapsedTime = 5.0
	system.Update(1.0 / 60.0)

	if !house.LightStatus {
		t.Fatal("Expected house to light up")
	}
	if house.Loot != rigged {
		t.Errorf("Expected rerolled loot %v, got %v", rigged, house.Loot)
	}
}

// TestLightFlipChanceStatistical 测试翻转概率的统计特性
func TestLightFlipChanceStatistical(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := game.NewGameState()
	system := NewLightCycleSystem(em, gs, nil, 5.0, 0.3, nil)

	houseID := spawnTestHouse(em, 0, 0, true)
	house, _ := ecs.GetComponent[*components.HouseComponent](em, houseID)

	flips := 0
	trials := 2000
	prev := house.LightStatus
	for i := 1; i <= trials; i++ {
		gs.ElapsedTime = float64(i) * 5.0
		system.Update(1.0 / 60.0)
		if house.LightStatus != prev {
			flips++
			prev = house.LightStatus
		}
	}

	// 期望 30%，给宽容差避免测试抖动
	rate := float64(flips) / float64(trials)
	if rate < 0.22 || rate > 0.38 {
		t.Errorf("Expected flip rate ≈0.30, got %f over %d trials", rate, trials)
	}
}
