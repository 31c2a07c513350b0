package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// 存储路径常量
const (
	saveObject        = "spooky"
	inventoryProperty = "inventory"
)

// SaveManager 存档管理器
//
// 职责：
//   - 将玩家库存序列化为 YAML 并写入 gdata 跨平台存储
//   - 从存储读取并反序列化库存
//
// 架构说明：
//   - 数据损坏不是致命错误：加载是尽力而为的刷新，失败时
//     内存中的库存保持不变
//   - gdataManager 为 nil 时进入降级模式（仅内存，不持久化）
type SaveManager struct {
	gdataManager *gdata.Manager
}

// NewSaveManager 创建存档管理器
//
// 返回：
//   - *SaveManager: 管理器实例；gdata 初始化失败时返回降级模式实例
func NewSaveManager() *SaveManager {
	manager, err := gdata.Open(gdata.Config{
		AppName: "spooky_pranks",
	})
	if err != nil {
		// 受限环境下无法持久化，降级为仅内存模式
		log.Printf("[SaveManager] Warning: gdata unavailable: %v (saves disabled)", err)
		return &SaveManager{gdataManager: nil}
	}
	return &SaveManager{gdataManager: manager}
}

// NewSaveManagerWith 使用现成的 gdata Manager 创建存档管理器（测试用）
func NewSaveManagerWith(manager *gdata.Manager) *SaveManager {
	return &SaveManager{gdataManager: manager}
}

// SaveInventory 将库存序列化为 YAML 并持久化
//
// 返回：
//   - error: 序列化或写入失败时返回错误；降级模式下返回 nil
func (sm *SaveManager) SaveInventory(inv *Inventory) error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(inv)
	if err != nil {
		return fmt.Errorf("failed to marshal inventory: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(saveObject, inventoryProperty, data); err != nil {
		return fmt.Errorf("failed to save inventory: %w", err)
	}

	log.Printf("[SaveManager] Inventory saved (%d candies, %d rare items)", inv.Candies, len(inv.RareItems))
	return nil
}

// LoadInventory 从存储加载库存，覆盖 inv 的内容
//
// 加载是尽力而为的：存档不存在、读取失败或数据损坏时
// 静默跳过，inv 保持原值不变
func (sm *SaveManager) LoadInventory(inv *Inventory) {
	if sm.gdataManager == nil {
		return
	}

	if !sm.gdataManager.ObjectPropExists(saveObject, inventoryProperty) {
		return
	}

	data, err := sm.gdataManager.LoadObjectProp(saveObject, inventoryProperty)
	if err != nil {
		log.Printf("[SaveManager] Warning: failed to read save data: %v", err)
		return
	}

	var loaded Inventory
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		// 数据损坏：保持内存库存不变
		log.Printf("[SaveManager] Warning: corrupt save data ignored: %v", err)
		return
	}

	inv.CopyFrom(&loaded)
	log.Printf("[SaveManager] Inventory loaded (%d candies, %d rare items)", inv.Candies, len(inv.RareItems))
}
