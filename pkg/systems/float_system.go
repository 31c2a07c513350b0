package systems

import (
	"math"

	"github.com/gonewx/spooky/pkg/components"
	"github.com/gonewx/spooky/pkg/ecs"
	"github.com/gonewx/spooky/pkg/game"
)

// FloatSystem 悬浮动画系统
//
// 对所有带 FloatAnimationComponent 的实体（幽灵、气球南瓜），
// 在基准线 OriginalY 之上叠加双正弦偏移：
//
//	offset = amp·sin(t·freq) + 0.3·amp·sin(t·2.5·freq)
//
// 两个频率错开的正弦波叠加让漂浮看起来更自然
type FloatSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
}

// NewFloatSystem 创建悬浮动画系统
func NewFloatSystem(em *ecs.EntityManager, gs *game.GameState) *FloatSystem {
	return &FloatSystem{
		entityManager: em,
		gameState:     gs,
	}
}

// Update 更新所有悬浮实体的 Y 坐标
func (s *FloatSystem) Update(deltaTime float64) {
	t := s.gameState.ElapsedTime

	entities := ecs.GetEntitiesWith2[
		*components.FloatAnimationComponent,
		*components.PositionComponent,
	](s.entityManager)

	for _, id := range entities {
		anim, _ := ecs.GetComponent[*components.FloatAnimationComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		primaryWave := math.Sin(t*anim.Frequency) * anim.Amplitude
		secondaryWave := math.Sin(t*anim.Frequency*2.5) * anim.Amplitude * 0.3
		pos.Y = anim.OriginalY + primaryWave + secondaryWave
	}
}
