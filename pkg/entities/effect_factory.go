package entities

import (
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/spooky/pkg/components"
	"github.com/gonewx/spooky/pkg/config"
	"github.com/gonewx/spooky/pkg/ecs"
	"github.com/gonewx/spooky/pkg/game"
	"github.com/gonewx/spooky/pkg/utils"
)

// SpawnParticleBurst 按一圈爆炸参数生成粒子
// 粒子角度沿圆周均匀分布（angle_i = 2π·i/count），
// 每个粒子附加 ±0.1 弧度的随机偏移和区间内的随机速度
func SpawnParticleBurst(em *ecs.EntityManager, rm ResourceLoader, x, y float64, tier config.BurstTier) []ecs.EntityID {
	if em == nil {
		return nil
	}

	img := spriteOrNil(rm, game.SpriteMoneyShot)
	ids := make([]ecs.EntityID, 0, tier.Count)

	for i := 0; i < tier.Count; i++ {
		angle := float64(i) / float64(tier.Count) * 2 * math.Pi
		speed := tier.MinSpeed + rand.Float64()*(tier.MaxSpeed-tier.MinSpeed)
		vx := math.Cos(angle) * speed
		vy := math.Sin(angle) * speed

		spread := rand.Float64()*0.2 - 0.1
		particleAngle := angle + spread
		scale := tier.MinScale + rand.Float64()*0.1

		id := em.CreateEntity()
		em.AddComponent(id, &components.PositionComponent{X: x, Y: y})

		sprite := components.NewSpriteComponent(img, scale)
		sprite.Rotation = particleAngle
		sprite.TintR, sprite.TintG, sprite.TintB = tier.TintR, tier.TintG, tier.TintB
		em.AddComponent(id, sprite)

		em.AddComponent(id, &components.ParticleComponent{
			VelocityX: vx,
			VelocityY: vy,
			Lifetime:  utils.NewTimer(tier.Lifetime, utils.TimerOnce),
		})
		ids = append(ids, id)
	}

	return ids
}

// SpawnTrailingParticles 生成命中后缓慢飘散的尾随粒子
// 角度完全随机，速度 25~75 像素/秒，生命周期 1.5 秒
func SpawnTrailingParticles(em *ecs.EntityManager, rm ResourceLoader, x, y float64, count int) []ecs.EntityID {
	if em == nil {
		return nil
	}

	img := spriteOrNil(rm, game.SpriteMoneyShot)
	ids := make([]ecs.EntityID, 0, count)

	for i := 0; i < count; i++ {
		angle := rand.Float64() * 2 * math.Pi
		speed := 25 + rand.Float64()*50

		id := em.CreateEntity()
		em.AddComponent(id, &components.PositionComponent{X: x, Y: y})

		sprite := components.NewSpriteComponent(img, 0.25)
		sprite.Rotation = angle
		sprite.TintR, sprite.TintG, sprite.TintB = 1.0, 0.6, 0.0
		em.AddComponent(id, sprite)

		em.AddComponent(id, &components.ParticleComponent{
			VelocityX: math.Cos(angle) * speed,
			VelocityY: math.Sin(angle) * speed,
			Lifetime:  utils.NewTimer(1.5, utils.TimerOnce),
		})
		ids = append(ids, id)
	}

	return ids
}

// NewSparkle 在指定位置创建一个缓慢漂移的闪光粒子
// 进度条满后的庆祝效果
func NewSparkle(em *ecs.EntityManager, rm ResourceLoader, x, y, vx, vy float64) ecs.EntityID {
	if em == nil {
		return 0
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})

	sprite := components.NewSpriteComponent(spriteOrNil(rm, game.SpriteSparkle), 0.2)
	sprite.TintR, sprite.TintG, sprite.TintB = 1.0, 0.9, 0.3
	em.AddComponent(id, sprite)

	em.AddComponent(id, &components.ParticleComponent{
		VelocityX: vx,
		VelocityY: vy,
		Lifetime:  utils.NewTimer(1.0, utils.TimerOnce),
	})

	return id
}

// NewFloatingText 创建漂浮反馈文本
// 文本出生在目标位置上方 30 像素处，随后上升并淡出
func NewFloatingText(em *ecs.EntityManager, x, y float64, text string, cfg *config.TuningConfig) ecs.EntityID {
	if em == nil {
		return 0
	}

	lifetime := 1.0
	if cfg != nil {
		lifetime = cfg.FloatingTextLifetime
	}

	spawnY := y + 30
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: spawnY})
	em.AddComponent(id, &components.FloatingTextComponent{
		Text:     text,
		Timer:    utils.NewTimer(lifetime, utils.TimerOnce),
		InitialY: spawnY,
	})

	return id
}

// NewFullSackNotice 创建"糖果袋已满"常驻提示
// 固定显示在枢纽上方，直到糖果袋被清空才由互动系统移除
func NewFullSackNotice(em *ecs.EntityManager) ecs.EntityID {
	if em == nil {
		return 0
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: 0, Y: 100})
	em.AddComponent(id, &components.FloatingTextComponent{
		Text:     "Move to center pumpkin to deposit!",
		InitialY: 100,
	})
	em.AddComponent(id, &components.FullSackNoticeComponent{})

	return id
}

// NewGhostTrail 克隆幽灵当前的精灵姿态作为残影
// 缩放抖动 ×[0.95, 1.05)，旋转抖动 ±0.05 弧度
func NewGhostTrail(em *ecs.EntityManager, x, y float64, source *components.SpriteComponent, lifetime float64) ecs.EntityID {
	if em == nil || source == nil {
		return 0
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})

	sprite := components.NewSpriteComponent(source.Image, source.Scale*(0.95+rand.Float64()*0.1))
	sprite.Rotation = source.Rotation + rand.Float64()*0.1 - 0.05
	sprite.Alpha = 0.8
	em.AddComponent(id, sprite)

	em.AddComponent(id, &components.GhostTrailComponent{
		Lifetime: utils.NewTimer(lifetime, utils.TimerOnce),
	})

	return id
}

func spriteOrNil(rm ResourceLoader, name string) *ebiten.Image {
	if rm == nil {
		return nil
	}
	return rm.GetSprite(name)
}
