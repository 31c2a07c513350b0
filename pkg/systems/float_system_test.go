package systems

import (
	"math"
	"testing"

	"github.com/gonewx/spooky/pkg/components"
	"github.com/gonewx/spooky/pkg/ecs"
	"github.com/gonewx/spooky/pkg/game"
)

// TestFloatOffsetAtQuarterPeriod 测试主波峰值处的悬浮偏移
func TestFloatOffsetAtQuarterPeriod(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := game.NewGameState()
	system := NewFloatSystem(em, gs)

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: 0, Y: 40})
	em.AddComponent(id, &components.FloatAnimationComponent{
		OriginalY: 40,
		Amplitude: 10,
		Frequency: 2,
	})

	// t·freq = π/2：主波达到峰值 amp，次波 = 0.3·amp·sin(1.25π)
	gs.ElapsedTime = math.Pi / 4
	system.Update(0.016)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	expected := 40.0 + 10.0 + 0.3*10.0*math.Sin(1.25*math.Pi)
	if math.Abs(pos.Y-expected) > 1e-9 {
		t.Errorf("Expected Y=%f, got %f", expected, pos.Y)
	}
}

// TestFloatZeroTime 测试 t=0 时偏移为零
func TestFloatZeroTime(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := game.NewGameState()
	system := NewFloatSystem(em, gs)

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{Y: -123})
	em.AddComponent(id, &components.FloatAnimationComponent{
		OriginalY: 77,
		Amplitude: 15,
		Frequency: 1.5,
	})

	system.Update(0.016)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.Y != 77 {
		t.Errorf("Expected Y=OriginalY at t=0, got %f", pos.Y)
	}
}

// TestFloatBounded 测试偏移幅度不超过 1.3 倍振幅
func TestFloatBounded(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := game.NewGameState()
	system := NewFloatSystem(em, gs)

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{})
	em.AddComponent(id, &components.FloatAnimationComponent{
		OriginalY: 0,
		Amplitude: 10,
		Frequency: 2,
	})

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	for i := 0; i < 1000; i++ {
		gs.ElapsedTime += 0.031
		system.Update(0.031)
		if math.Abs(pos.Y) > 13.0+1e-9 {
			t.Fatalf("Expected |offset| ≤ 1.3·amplitude, got %f at t=%f", pos.Y, gs.ElapsedTime)
		}
	}
}

// TestFloatMultipleEntities 测试多个悬浮实体互不干扰
func TestFloatMultipleEntities(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := game.NewGameState()
	system := NewFloatSystem(em, gs)

	a := em.CreateEntity()
	em.AddComponent(a, &components.PositionComponent{})
	em.AddComponent(a, &components.FloatAnimationComponent{OriginalY: 100, Amplitude: 10, Frequency: 2})

	b := em.CreateEntity()
	em.AddComponent(b, &components.PositionComponent{})
	em.AddComponent(b, &components.FloatAnimationComponent{OriginalY: -100, Amplitude: 15, Frequency: 1.5})

	gs.ElapsedTime = 0.7
	system.Update(0.016)

	posA, _ := ecs.GetComponent[*components.PositionComponent](em, a)
	posB, _ := ecs.GetComponent[*components.PositionComponent](em, b)

	if math.Abs(posA.Y-100) > 13 {
		t.Errorf("Expected entity A near its baseline 100, got %f", posA.Y)
	}
	if math.Abs(posB.Y+100) > 19.5 {
		t.Errorf("Expected entity B near its baseline -100, got %f", posB.Y)
	}
}
