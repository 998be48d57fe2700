package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/decker502/hanabi/pkg/card"
)

// ClientSettings 客户端显示设置
// 注意：这些设置是全局的，不绑定到特定牌局
type ClientSettings struct {
	// KeldonMode 围桌布局模式，手牌间距使用更紧的压缩上限
	KeldonMode bool `yaml:"keldonMode"`

	// SpeedrunMode 速通/观战快进：动画机制照常运行但立即完成
	SpeedrunMode bool `yaml:"speedrunMode"`

	// AnimationsEnabled 是否播放过渡动画；关闭时布局直接吸附
	AnimationsEnabled bool `yaml:"animationsEnabled"`

	// EmpathyDefault 新建手牌容器是否默认开启共情模式
	EmpathyDefault bool `yaml:"empathyDefault"`
}

// DefaultSettings 返回默认设置
func DefaultSettings() *ClientSettings {
	return &ClientSettings{
		KeldonMode:        false,
		SpeedrunMode:      false,
		AnimationsEnabled: true,
		EmpathyDefault:    false,
	}
}

// SettingsManager 设置管理器
// 负责客户端设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager  // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *ClientSettings // 当前设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "client"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例
//   - error: 如果加载设置失败返回错误（不影响创建）
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	// 尝试加载已保存的设置
	if err := sm.Load(); err != nil {
		// 加载失败不是致命错误，使用默认设置
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置
//
// 返回：
//   - error: 如果反序列化失败返回错误
func (sm *SettingsManager) Load() error {
	// 降级模式：无法持久化，使用默认设置
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	// 检查设置文件是否存在
	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	var loadedSettings ClientSettings
	if err := yaml.Unmarshal(data, &loadedSettings); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.settings = &loadedSettings
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
//
// 返回：
//   - error: 如果序列化或保存失败返回错误
func (sm *SettingsManager) Save() error {
	// 降级模式：无法持久化，但不报错
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
//
// 返回的指针指向内部状态，修改后需调用 Save 持久化
func (sm *SettingsManager) GetSettings() *ClientSettings {
	return sm.settings
}

// LayoutOptions 将当前设置映射为一次布局的全局开关。
// 布局调用显式接收开关而不读取环境状态，这里是两者的桥接点。
func (sm *SettingsManager) LayoutOptions() card.LayoutOptions {
	return card.LayoutOptions{
		Instant:          !sm.settings.AnimationsEnabled,
		CompressionLimit: sm.settings.KeldonMode,
		SkipAnimation:    sm.settings.SpeedrunMode,
	}
}
