package game

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings == nil {
		t.Fatal("DefaultSettings() returned nil")
	}

	if settings.KeldonMode {
		t.Error("KeldonMode: got true, want false")
	}
	if settings.SpeedrunMode {
		t.Error("SpeedrunMode: got true, want false")
	}
	if !settings.AnimationsEnabled {
		t.Error("AnimationsEnabled: got false, want true")
	}
	if settings.EmpathyDefault {
		t.Error("EmpathyDefault: got true, want false")
	}
}

// TestNewSettingsManagerNilGdata 测试降级模式（无持久化存储）
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) 失败: %v", err)
	}

	if sm.GetSettings() == nil {
		t.Fatal("降级模式下设置为 nil")
	}
	if !sm.GetSettings().AnimationsEnabled {
		t.Error("降级模式应使用默认设置")
	}

	// 降级模式下保存不报错
	if err := sm.Save(); err != nil {
		t.Errorf("降级模式 Save() 返回错误: %v", err)
	}
}

// TestSettingsSaveLoadRoundTrip 测试设置保存后可以完整读回
func TestSettingsSaveLoadRoundTrip(t *testing.T) {
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	defer os.Setenv("HOME", originalHome)

	gdataManager, err := gdata.Open(gdata.Config{
		AppName: "hanabi_test",
	})
	if err != nil {
		t.Fatalf("gdata.Open 失败: %v", err)
	}

	sm, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager 失败: %v", err)
	}

	sm.GetSettings().KeldonMode = true
	sm.GetSettings().SpeedrunMode = true
	sm.GetSettings().AnimationsEnabled = false
	if err := sm.Save(); err != nil {
		t.Fatalf("Save 失败: %v", err)
	}

	sm2, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("第二次 NewSettingsManager 失败: %v", err)
	}
	loaded := sm2.GetSettings()
	if !loaded.KeldonMode || !loaded.SpeedrunMode || loaded.AnimationsEnabled {
		t.Errorf("读回设置不一致: %+v", loaded)
	}
}

// TestSettingsYAMLTags 测试序列化字段名稳定（存档兼容性）
func TestSettingsYAMLTags(t *testing.T) {
	data, err := yaml.Marshal(DefaultSettings())
	if err != nil {
		t.Fatalf("yaml.Marshal 失败: %v", err)
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		t.Fatalf("yaml.Unmarshal 失败: %v", err)
	}

	for _, key := range []string{"keldonMode", "speedrunMode", "animationsEnabled", "empathyDefault"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("序列化结果缺少字段 %q", key)
		}
	}
}

// TestLayoutOptionsMapping 测试设置到布局开关的映射
func TestLayoutOptionsMapping(t *testing.T) {
	sm, _ := NewSettingsManager(nil)
	s := sm.GetSettings()

	s.AnimationsEnabled = false
	s.KeldonMode = true
	s.SpeedrunMode = true

	opts := sm.LayoutOptions()
	if !opts.Instant {
		t.Error("动画关闭时 Instant 应为 true")
	}
	if !opts.CompressionLimit {
		t.Error("KeldonMode 应映射为 CompressionLimit")
	}
	if !opts.SkipAnimation {
		t.Error("SpeedrunMode 应映射为 SkipAnimation")
	}

	s.AnimationsEnabled = true
	s.KeldonMode = false
	s.SpeedrunMode = false
	opts = sm.LayoutOptions()
	if opts.Instant || opts.CompressionLimit || opts.SkipAnimation {
		t.Errorf("默认设置下所有开关应关闭: %+v", opts)
	}
}
