package game

import (
	"fmt"
	"image"
	_ "image/png"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// 精灵名称常量
// 模拟核心通过这些名称在一小组封闭的图像引用之间切换
const (
	SpriteGhost      = "ghost"
	SpriteGhostFaded = "ghost_faded"
	SpriteHouseLit   = "house_lit"
	SpriteHouseDark  = "house_dark"
	SpritePumpkin    = "pumpkin"
	SpriteBalloon    = "balloon_pumpkin"
	SpriteMoneyShot  = "money_shot"
	SpriteSparkle    = "sparkle"
)

// ResourceManager 资源管理器
// 负责加载并缓存图像资源，再以命名引用的方式提供给系统和工厂。
// 系统只持有名称和 *ebiten.Image 指针，从不接触文件路径
type ResourceManager struct {
	// imageCache 路径 -> 已解码图像的缓存
	imageCache map[string]*ebiten.Image

	// sprites 名称 -> 图像引用注册表
	sprites map[string]*ebiten.Image
}

// NewResourceManager 创建资源管理器
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		imageCache: make(map[string]*ebiten.Image),
		sprites:    make(map[string]*ebiten.Image),
	}
}

// LoadImage 从文件加载图像，带缓存
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if img, ok := rm.imageCache[path]; ok {
		return img, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image %s: %w", path, err)
	}
	defer f.Close()

	decoded, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	img := ebiten.NewImageFromImage(decoded)
	rm.imageCache[path] = img
	return img, nil
}

// RegisterSprite 将图像注册到命名引用表
// 测试可以注册 nil 图像，精灵切换逻辑不受影响
func (rm *ResourceManager) RegisterSprite(name string, img *ebiten.Image) {
	rm.sprites[name] = img
}

// LoadSprite 加载图像文件并注册为命名精灵
// 加载失败时注册 nil 引用并继续（缺资源不是致命错误）
func (rm *ResourceManager) LoadSprite(name, path string) {
	img, err := rm.LoadImage(path)
	if err != nil {
		log.Printf("[ResourceManager] Warning: %v (sprite %q will be blank)", err, name)
		rm.sprites[name] = nil
		return
	}
	rm.sprites[name] = img
}

// GetSprite 按名称返回图像引用，未注册时返回 nil
// 接收者为 nil 时同样返回 nil（无资源的无头运行模式）
func (rm *ResourceManager) GetSprite(name string) *ebiten.Image {
	if rm == nil {
		return nil
	}
	return rm.sprites[name]
}

// LoadGameSprites 加载游戏用到的全部精灵
func (rm *ResourceManager) LoadGameSprites(assetDir string) {
	rm.LoadSprite(SpriteGhost, assetDir+"/sprites/ghost.png")
	rm.LoadSprite(SpriteGhostFaded, assetDir+"/sprites/ghost_faded.png")
	rm.LoadSprite(SpriteHouseLit, assetDir+"/sprites/houses/house_lit.png")
	rm.LoadSprite(SpriteHouseDark, assetDir+"/sprites/houses/house_dark.png")
	rm.LoadSprite(SpritePumpkin, assetDir+"/sprites/pumpkin.png")
	rm.LoadSprite(SpriteBalloon, assetDir+"/sprites/balloon_pumpkin.png")
	rm.LoadSprite(SpriteMoneyShot, assetDir+"/sprites/money_shot.png")
	rm.LoadSprite(SpriteSparkle, assetDir+"/sprites/sparkle.png")
}
