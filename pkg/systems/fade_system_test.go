package systems

import (
	"testing"

	"github.com/gonewx/spooky/pkg/components"
	"github.com/gonewx/spooky/pkg/ecs"
)

// TestFadeToggleAtPeriod 测试淡化周期完成时状态切换
func TestFadeToggleAtPeriod(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewFadeSystem(em, nil)

	ghostID := spawnTestGhost(t, em)

	ghost, _ := ecs.GetComponent[*components.GhostComponent](em, ghostID)
	if ghost.State != components.GhostNormal {
		t.Fatalf("Expected initial state Normal, got %v", ghost.State)
	}

	// 默认淡化周期 3 秒：2.5 秒后仍未切换
	for i := 0; i < 5; i++ {
		system.Update(0.5)
	}
	if ghost.State != components.GhostNormal {
		t.Error("Expected state Normal before period elapses")
	}

	// 跨过 3 秒边界的那一帧切换为 Faded
	system.Update(0.5)
	if ghost.State != components.GhostFaded {
		t.Error("Expected state Faded after period elapses")
	}
}

// TestFadeTogglesBack 测试重复计时器驱动往返切换
func TestFadeTogglesBack(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewFadeSystem(em, nil)

	ghostID := spawnTestGhost(t, em)
	ghost, _ := ecs.GetComponent[*components.GhostComponent](em, ghostID)

	// 第一个周期：Normal -> Faded
	for i := 0; i < 6; i++ {
		system.Update(0.5)
	}
	if ghost.State != components.GhostFaded {
		t.Fatal("Expected Faded after first period")
	}

	// 第二个周期：Faded -> Normal
	for i := 0; i < 6; i++ {
		system.Update(0.5)
	}
	if ghost.State != components.GhostNormal {
		t.Error("Expected Normal after second period")
	}
}
