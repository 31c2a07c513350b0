package entities

import (
	"testing"

	"github.com/gonewx/spooky/pkg/components"
	"github.com/gonewx/spooky/pkg/config"
	"github.com/gonewx/spooky/pkg/ecs"
)

// TestSpawnParticleBurst 测试一圈爆炸粒子的数量与参数范围
func TestSpawnParticleBurst(t *testing.T) {
	em := ecs.NewEntityManager()
	tier := config.BurstTier{
		Count: 12, MinSpeed: 200, MaxSpeed: 300, MinScale: 0.1, Lifetime: 0.5,
		TintR: 1.0, TintG: 0.9, TintB: 0.3,
	}

	ids := SpawnParticleBurst(em, nil, 50, -30, tier)
	if len(ids) != 12 {
		t.Fatalf("Expected 12 particles, got %d", len(ids))
	}

	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		if pos.X != 50 || pos.Y != -30 {
			t.Errorf("Expected particle at burst origin, got (%f, %f)", pos.X, pos.Y)
		}

		particle, _ := ecs.GetComponent[*components.ParticleComponent](em, id)
		speed := particle.VelocityX*particle.VelocityX + particle.VelocityY*particle.VelocityY
		if speed < 200*200-1e-6 || speed > 300*300+1e-6 {
			t.Errorf("Expected squared speed in [200², 300²], got %f", speed)
		}

		sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
		if sprite.Scale < 0.1 || sprite.Scale > 0.2 {
			t.Errorf("Expected scale in [0.1, 0.2], got %f", sprite.Scale)
		}
		if sprite.TintR != 1.0 || sprite.TintG != 0.9 || sprite.TintB != 0.3 {
			t.Errorf("Expected tier tint, got (%f, %f, %f)", sprite.TintR, sprite.TintG, sprite.TintB)
		}
	}
}

// TestSpawnTrailingParticles 测试尾随粒子的数量与速度范围
func TestSpawnTrailingParticles(t *testing.T) {
	em := ecs.NewEntityManager()

	ids := SpawnTrailingParticles(em, nil, 0, 0, 4)
	if len(ids) != 4 {
		t.Fatalf("Expected 4 trailing particles, got %d", len(ids))
	}

	for _, id := range ids {
		particle, _ := ecs.GetComponent[*components.ParticleComponent](em, id)
		speed := particle.VelocityX*particle.VelocityX + particle.VelocityY*particle.VelocityY
		if speed < 25*25-1e-6 || speed > 75*75+1e-6 {
			t.Errorf("Expected squared speed in [25², 75²], got %f", speed)
		}
	}
}

// TestNewFloatingTextSpawnOffset 测试反馈文本出生在目标上方 30 像素
func TestNewFloatingTextSpawnOffset(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultTuning()

	id := NewFloatingText(em, 100, 200, "Total Candies: 3", cfg)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != 100 || pos.Y != 230 {
		t.Errorf("Expected spawn at (100, 230), got (%f, %f)", pos.X, pos.Y)
	}

	text, _ := ecs.GetComponent[*components.FloatingTextComponent](em, id)
	if text.InitialY != 230 {
		t.Errorf("Expected InitialY matches spawn Y, got %f", text.InitialY)
	}
	if text.Text != "Total Candies: 3" {
		t.Errorf("Expected text preserved, got %q", text.Text)
	}
}

// TestNewGhostTrailRequiresSource 测试缺少源精灵时不生成残影
func TestNewGhostTrailRequiresSource(t *testing.T) {
	em := ecs.NewEntityManager()

	if id := NewGhostTrail(em, 0, 0, nil, 0.8); id != 0 {
		t.Errorf("Expected no trail without source sprite, got id %d", id)
	}
}
