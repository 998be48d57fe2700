package config

import (
	"strings"
	"testing"
)

// TestDefaultTableConfig 测试内置默认布局可以成功解析
func TestDefaultTableConfig(t *testing.T) {
	cfg := DefaultTableConfig()

	if len(cfg.Hands) != 2 {
		t.Errorf("默认布局手牌区域数 = %d, 期望 2", len(cfg.Hands))
	}
	if len(cfg.Stacks) != 5 {
		t.Errorf("默认布局牌堆数 = %d, 期望 5", len(cfg.Stacks))
	}
	if cfg.StackHeight <= 0 {
		t.Errorf("默认布局 stackHeight = %v, 期望正数", cfg.StackHeight)
	}
	if cfg.Discard.Width <= 0 || cfg.Discard.Height <= 0 {
		t.Error("默认布局弃牌区尺寸非法")
	}
}

// TestLoadTableConfigInvalidYAML 测试非法 YAML 返回错误
func TestLoadTableConfigInvalidYAML(t *testing.T) {
	_, err := LoadTableConfig([]byte("hands: [broken"))
	if err == nil {
		t.Fatal("非法 YAML 应返回错误")
	}
}

// TestLoadTableConfigValidation 测试布局参数校验
func TestLoadTableConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name: "宽度为零",
			yaml: `
hands:
  - name: bad
    width: 0
    height: 100
discard:
  name: discard
  width: 100
  height: 100
stackHeight: 100
`,
			wantErr: "width and height must be positive",
		},
		{
			name: "未知对齐方式",
			yaml: `
hands:
  - name: bad
    width: 100
    height: 100
    align: middle
discard:
  name: discard
  width: 100
  height: 100
stackHeight: 100
`,
			wantErr: "unknown align",
		},
		{
			name: "牌堆高度缺失",
			yaml: `
hands: []
discard:
  name: discard
  width: 100
  height: 100
`,
			wantErr: "stackHeight must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTableConfig([]byte(tt.yaml))
			if err == nil {
				t.Fatal("期望返回错误")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("错误信息 %q 不包含 %q", err.Error(), tt.wantErr)
			}
		})
	}
}

// TestLoadTableConfigAlignDefault 测试对齐方式留空时通过校验
func TestLoadTableConfigAlignDefault(t *testing.T) {
	cfg, err := LoadTableConfig([]byte(`
hands:
  - name: h
    width: 200
    height: 100
discard:
  name: discard
  width: 100
  height: 100
stackHeight: 100
`))
	if err != nil {
		t.Fatalf("留空对齐方式不应报错: %v", err)
	}
	if cfg.Hands[0].Align != "" {
		t.Errorf("Align = %q, 期望空字符串（默认 left）", cfg.Hands[0].Align)
	}
}
