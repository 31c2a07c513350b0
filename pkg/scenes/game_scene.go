package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/gonewx/spooky/pkg/components"
	"github.com/gonewx/spooky/pkg/config"
	"github.com/gonewx/spooky/pkg/ecs"
	"github.com/gonewx/spooky/pkg/entities"
	"github.com/gonewx/spooky/pkg/game"
	"github.com/gonewx/spooky/pkg/systems"
	"github.com/gonewx/spooky/pkg/utils"
)

// tickDelta 固定逻辑帧时长（秒）
// ebiten 以 60TPS 调用 Update，模拟以固定步长推进
const tickDelta = 1.0 / 60.0

// GameScene 游戏主场景
//
// 持有实体管理器、游戏状态和全部系统，按固定顺序每帧推进模拟。
// 固定的系统顺序保证每个共享状态在一个 tick 内只有一个写入者，
// 因此整个模拟无需加锁
type GameScene struct {
	entityManager   *ecs.EntityManager
	gameState       *game.GameState
	resourceManager *game.ResourceManager
	saveManager     *game.SaveManager
	tuning          *config.TuningConfig

	// 模拟系统（按执行顺序排列）
	trailSpawnSystem       *systems.TrailSpawnSystem
	ghostMovementSystem    *systems.GhostMovementSystem
	floatSystem            *systems.FloatSystem
	fadeSystem             *systems.FadeSystem
	houseInteractionSystem *systems.HouseInteractionSystem
	lightCycleSystem       *systems.LightCycleSystem
	depositSystem          *systems.DepositSystem
	bulletSystem           *systems.BulletSystem
	sparkleSystem          *systems.SparkleSystem
	transientSystem        *systems.TransientSystem

	renderSystem *systems.RenderSystem

	paused bool
}

// NewGameScene 创建并初始化游戏场景
// 生成幽灵、房屋网格、南瓜枢纽和气球，装配全部系统
func NewGameScene(sm *game.SceneManager, rm *game.ResourceManager, cfg *config.TuningConfig) (*GameScene, error) {
	em := ecs.NewEntityManager()
	gs := game.NewGameState()

	if _, err := entities.NewGhost(em, rm, cfg); err != nil {
		return nil, fmt.Errorf("failed to spawn ghost: %w", err)
	}
	if _, err := entities.SpawnHouses(em, rm, cfg); err != nil {
		return nil, fmt.Errorf("failed to spawn houses: %w", err)
	}

	scene := &GameScene{
		entityManager:   em,
		gameState:       gs,
		resourceManager: rm,
		saveManager:     game.NewSaveManager(),
		tuning:          cfg,

		trailSpawnSystem:       systems.NewTrailSpawnSystem(em, cfg),
		ghostMovementSystem:    systems.NewGhostMovementSystem(em, gs),
		floatSystem:            systems.NewFloatSystem(em, gs),
		fadeSystem:             systems.NewFadeSystem(em, rm),
		houseInteractionSystem: systems.NewHouseInteractionSystem(em, gs, cfg),
		lightCycleSystem: systems.NewLightCycleSystem(
			em, gs, rm, cfg.LightSwitchInterval, cfg.LightFlipChance, entities.RollLoot),
		depositSystem:   systems.NewDepositSystem(em, gs, cfg),
		bulletSystem:    systems.NewBulletSystem(em, gs, rm, cfg),
		sparkleSystem:   systems.NewSparkleSystem(em, gs, rm),
		transientSystem: systems.NewTransientSystem(em, cfg),

		renderSystem: systems.NewRenderSystem(em, gs),
	}

	return scene, nil
}

// Update 推进一个模拟 tick
//
// 系统按固定顺序运行，帧末统一清理被标记删除的实体。
// 暂停时整个 tick 跳过（包括时间累计）
func (s *GameScene) Update() error {
	input := utils.ReadInputState()

	if input.ExitRequested {
		return ebiten.Termination
	}
	if input.PauseToggled {
		s.paused = !s.paused
		log.Printf("[GameScene] Paused: %v", s.paused)
	}
	if s.paused {
		return nil
	}

	if input.SaveRequested {
		if err := s.saveManager.SaveInventory(s.gameState.Inventory); err != nil {
			log.Printf("[GameScene] Save failed: %v", err)
		}
	}
	if input.LoadRequested {
		s.saveManager.LoadInventory(s.gameState.Inventory)
	}

	// 输入采样：屏幕坐标 -> 世界坐标的光标目标，开火指令
	s.gameState.CursorX = float64(input.CursorX) - float64(config.ScreenWidth)/2
	s.gameState.CursorY = float64(config.ScreenHeight)/2 - float64(input.CursorY)
	s.gameState.FirePrimary = input.FirePrimary
	s.gameState.FireSecondary = input.FireSecondary

	s.gameState.ElapsedTime += tickDelta

	// 固定的系统顺序（见各系统的单写入者约定）
	s.trailSpawnSystem.Update(tickDelta)
	s.ghostMovementSystem.Update(tickDelta)
	s.floatSystem.Update(tickDelta)
	s.fadeSystem.Update(tickDelta)
	s.houseInteractionSystem.Update(tickDelta)
	s.lightCycleSystem.Update(tickDelta)
	s.depositSystem.Update(tickDelta)
	s.bulletSystem.Update(tickDelta)
	s.sparkleSystem.Update(tickDelta)
	s.transientSystem.Update(tickDelta)

	// 排空本帧事件（外部反馈钩子；目前只做日志）
	for _, event := range s.gameState.DrainEvents() {
		s.logEvent(event)
	}

	s.entityManager.RemoveMarkedEntities()
	return nil
}

// logEvent 记录本帧事件
func (s *GameScene) logEvent(event game.Event) {
	switch event.Kind {
	case game.EventLootCollected:
		if event.Loot.Kind == components.LootCandy {
			log.Printf("[Event] Collected candy")
		} else {
			log.Printf("[Event] Collected %q", event.Loot.Name)
		}
	case game.EventSackFull:
		log.Printf("[Event] Candy sack full")
	case game.EventDeposited:
		log.Printf("[Event] Deposited %d candies", event.Amount)
	case game.EventBalloonPopped:
		log.Printf("[Event] Balloon popped!")
	}
}

// Draw 绘制场景
func (s *GameScene) Draw(screen *ebiten.Image) {
	// 深色夜空背景
	screen.Fill(color.RGBA{R: 26, G: 26, B: 38, A: 255})

	s.renderSystem.Draw(screen)

	if s.paused {
		text.Draw(screen, "PAUSED", basicfont.Face7x13,
			config.ScreenWidth/2-20, config.ScreenHeight/2, color.White)
	}
}
