package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/gonewx/spooky/pkg/components"
	"github.com/gonewx/spooky/pkg/config"
	"github.com/gonewx/spooky/pkg/ecs"
	"github.com/gonewx/spooky/pkg/game"
)

// RenderSystem 渲染系统
//
// 模拟核心只产出纯数据（位置、精灵引用、染色、透明度、文本），
// 本系统负责把它们画到屏幕上，以及绘制 HUD（糖果计数、进度条）。
// 世界坐标以屏幕中心为原点、Y 向上；绘制时转换为屏幕坐标
type RenderSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, gs *game.GameState) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		gameState:     gs,
	}
}

// worldToScreen 世界坐标 -> 屏幕坐标
func worldToScreen(x, y float64) (float64, float64) {
	return x + float64(config.ScreenWidth)/2, float64(config.ScreenHeight)/2 - y
}

// Draw 绘制所有实体和 HUD
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	s.drawSprites(screen)
	s.drawBullets(screen)
	s.drawFloatingTexts(screen)
	s.drawHUD(screen)
}

// drawSprites 绘制所有带精灵组件的实体
func (s *RenderSystem) drawSprites(screen *ebiten.Image) {
	ids := ecs.GetEntitiesWith2[
		*components.SpriteComponent,
		*components.PositionComponent,
	](s.entityManager)

	for _, id := range ids {
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		if sprite.Image == nil {
			continue
		}

		op := &ebiten.DrawImageOptions{}
		w, h := sprite.Image.Bounds().Dx(), sprite.Image.Bounds().Dy()
		op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
		op.GeoM.Scale(sprite.Scale, sprite.Scale)
		// 世界旋转为逆时针，屏幕 Y 轴向下，因此取负
		op.GeoM.Rotate(-sprite.Rotation)

		sx, sy := worldToScreen(pos.X, pos.Y)
		op.GeoM.Translate(sx, sy)

		op.ColorScale.Scale(
			float32(sprite.TintR*sprite.Alpha),
			float32(sprite.TintG*sprite.Alpha),
			float32(sprite.TintB*sprite.Alpha),
			float32(sprite.Alpha),
		)

		screen.DrawImage(sprite.Image, op)
	}
}

// drawBullets 子弹没有图像资源，渲染为 10x10 的染色方块
func (s *RenderSystem) drawBullets(screen *ebiten.Image) {
	bullets := ecs.GetEntitiesWith2[
		*components.BulletComponent,
		*components.PositionComponent,
	](s.entityManager)

	for _, id := range bullets {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		if !ok {
			continue
		}

		sx, sy := worldToScreen(pos.X, pos.Y)
		clr := color.RGBA{
			R: uint8(sprite.TintR * 255),
			G: uint8(sprite.TintG * 255),
			B: uint8(sprite.TintB * 255),
			A: 255,
		}
		vector.DrawFilledRect(screen, float32(sx-5), float32(sy-5), 10, 10, clr, false)
	}
}

// drawFloatingTexts 绘制漂浮文本，透明度由计时器进度派生
func (s *RenderSystem) drawFloatingTexts(screen *ebiten.Image) {
	texts := ecs.GetEntitiesWith2[
		*components.FloatingTextComponent,
		*components.PositionComponent,
	](s.entityManager)

	for _, id := range texts {
		ft, _ := ecs.GetComponent[*components.FloatingTextComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		alpha := 1.0
		if _, isNotice := ecs.GetComponent[*components.FullSackNoticeComponent](s.entityManager, id); !isNotice {
			alpha = 1 - ft.Timer.Fraction()
		}

		sx, sy := worldToScreen(pos.X, pos.Y)
		clr := color.RGBA{R: 255, G: 255, B: 255, A: uint8(alpha * 255)}
		text.Draw(screen, ft.Text, basicfont.Face7x13, int(sx), int(sy), clr)
	}
}

// drawHUD 绘制糖果计数和进度条
func (s *RenderSystem) drawHUD(screen *ebiten.Image) {
	text.Draw(screen,
		fmt.Sprintf("Candies: %d", s.gameState.Inventory.Candies),
		basicfont.Face7x13, 10, 20, color.White)

	// 进度条：300x20，顶部居中
	barX := float32(config.ScreenWidth)/2 - 150
	barY := float32(10)
	vector.DrawFilledRect(screen, barX, barY, 300, 20, color.RGBA{R: 51, G: 51, B: 51, A: 255}, false)

	fillWidth := float32(s.gameState.Progress / 100 * 300)
	fillColor := color.RGBA{R: 204, G: 102, B: 0, A: 255}
	if s.gameState.MeterFull {
		// 满格后的单向"满"染色
		fillColor = color.RGBA{R: 255, G: 128, B: 0, A: 255}
	}
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, barX, barY, fillWidth, 20, fillColor, false)
	}
}
