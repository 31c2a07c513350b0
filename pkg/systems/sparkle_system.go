package systems

import (
	"math/rand"

	"github.com/gonewx/spooky/pkg/config"
	"github.com/gonewx/spooky/pkg/ecs"
	"github.com/gonewx/spooky/pkg/entities"
	"github.com/gonewx/spooky/pkg/game"
)

// SparkleSystem 进度条庆祝系统
//
// 进度条到达 100% 后，每帧有 10% 的概率在屏幕内随机位置
// 生成一个缓慢漂移的闪光粒子，持续营造庆祝氛围
type SparkleSystem struct {
	entityManager   *ecs.EntityManager
	gameState       *game.GameState
	resourceManager *game.ResourceManager
}

// NewSparkleSystem 创建庆祝系统
func NewSparkleSystem(em *ecs.EntityManager, gs *game.GameState, rm *game.ResourceManager) *SparkleSystem {
	return &SparkleSystem{
		entityManager:   em,
		gameState:       gs,
		resourceManager: rm,
	}
}

// Update 进度条满时随机撒闪光
func (s *SparkleSystem) Update(deltaTime float64) {
	if !s.gameState.MeterFull {
		return
	}
	if rand.Float64() >= 0.1 {
		return
	}

	x := rand.Float64()*float64(config.ScreenWidth) - float64(config.ScreenWidth)/2
	y := rand.Float64()*float64(config.ScreenHeight) - float64(config.ScreenHeight)/2
	vx := rand.Float64()*50 - 25
	vy := rand.Float64()*50 - 25

	entities.NewSparkle(s.entityManager, s.resourceManager, x, y, vx, vy)
}
