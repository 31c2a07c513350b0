package systems

import (
	"testing"

	"github.com/gonewx/spooky/pkg/components"
	"github.com/gonewx/spooky/pkg/config"
	"github.com/gonewx/spooky/pkg/ecs"
)

// TestTrailSpawnCadence 测试残影按固定间隔生成
func TestTrailSpawnCadence(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultTuning()
	system := NewTrailSpawnSystem(em, cfg)

	spawnTestGhost(t, em)

	// 间隔 0.05 秒，dt=0.025：每两帧生成一个
	trailCount := func() int {
		return len(ecs.GetEntitiesWith1[*components.GhostTrailComponent](em))
	}

	system.Update(0.025)
	if trailCount() != 0 {
		t.Errorf("Expected no trail before interval, got %d", trailCount())
	}

	system.Update(0.025)
	if trailCount() != 1 {
		t.Errorf("Expected 1 trail after one interval, got %d", trailCount())
	}

	for i := 0; i < 4; i++ {
		system.Update(0.025)
	}
	if trailCount() != 3 {
		t.Errorf("Expected 3 trails after three intervals, got %d", trailCount())
	}
}

// TestTrailClonesGhostPose 测试残影克隆幽灵当前姿态
func TestTrailClonesGhostPose(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultTuning()
	system := NewTrailSpawnSystem(em, cfg)

	ghostID := spawnTestGhost(t, em)

	ghostPos, _ := ecs.GetComponent[*components.PositionComponent](em, ghostID)
	ghostPos.X, ghostPos.Y = 123, -45
	ghostSprite, _ := ecs.GetComponent[*components.SpriteComponent](em, ghostID)
	ghostSprite.Rotation = 0.7

	system.Update(cfg.TrailSpawnInterval)

	trails := ecs.GetEntitiesWith1[*components.GhostTrailComponent](em)
	if len(trails) != 1 {
		t.Fatalf("Expected 1 trail, got %d", len(trails))
	}

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, trails[0])
	if pos.X != 123 || pos.Y != -45 {
		t.Errorf("Expected trail at ghost position (123, -45), got (%f, %f)", pos.X, pos.Y)
	}

	sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, trails[0])
	// 缩放抖动 ×[0.95, 1.05)，旋转抖动 ±0.05
	if sprite.Scale < ghostSprite.Scale*0.95 || sprite.Scale > ghostSprite.Scale*1.05 {
		t.Errorf("Expected jittered scale near %f, got %f", ghostSprite.Scale, sprite.Scale)
	}
	if sprite.Rotation < 0.65 || sprite.Rotation > 0.75 {
		t.Errorf("Expected jittered rotation near 0.7, got %f", sprite.Rotation)
	}
	if sprite.Alpha != 0.8 {
		t.Errorf("Expected initial trail alpha 0.8, got %f", sprite.Alpha)
	}
}

// TestTrailSpawnWithoutGhost 测试没有幽灵时不生成残影
func TestTrailSpawnWithoutGhost(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewTrailSpawnSystem(em, config.DefaultTuning())

	for i := 0; i < 10; i++ {
		system.Update(0.05)
	}

	trails := ecs.GetEntitiesWith1[*components.GhostTrailComponent](em)
	if len(trails) != 0 {
		t.Errorf("Expected no trails without ghost, got %d", len(trails))
	}
}
