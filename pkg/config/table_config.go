package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// 桌面布局配置
// 定义每个手牌区域和弃牌/打出区域在桌面上的位置、尺寸和朝向。
// 配置使用 YAML 格式，便于针对不同人数的牌局调整布局。

// HandPlacement 单个卡牌容器的摆放参数
type HandPlacement struct {
	// Name 区域名称（如 "hand-0"、"discard"），仅用于日志和调试
	Name string `yaml:"name"`

	// X, Y 容器左上角的绝对坐标（像素）
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`

	// Width, Height 容器的布局边界框（像素），必须为正数
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Rotation 容器的初始朝向（顺时针角度，围桌布局下侧位手牌会旋转）
	Rotation float64 `yaml:"rotation"`

	// Align 对齐方式："left"（默认）或 "center"
	Align string `yaml:"align"`

	// Reverse 是否从右向左镜像布局
	Reverse bool `yaml:"reverse"`
}

// StackPlacement 打出牌堆锚点的摆放参数
type StackPlacement struct {
	// Suit 牌堆对应的花色标识
	Suit string `yaml:"suit"`

	// X, Y 牌堆左上角的绝对坐标（像素）
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// TableConfig 整张桌面的布局配置
type TableConfig struct {
	// Hands 手牌区域列表（按座位顺序）
	Hands []HandPlacement `yaml:"hands"`

	// Discard 弃牌区域
	Discard HandPlacement `yaml:"discard"`

	// Stacks 打出牌堆锚点列表（按花色）
	Stacks []StackPlacement `yaml:"stacks"`

	// StackHeight 打出牌堆中卡牌的显示高度（像素）
	StackHeight float64 `yaml:"stackHeight"`
}

// defaultTableYAML 双人局的默认桌面布局
const defaultTableYAML = `
hands:
  - name: hand-0
    x: 340
    y: 560
    width: 600
    height: 120
    align: center
  - name: hand-1
    x: 340
    y: 40
    width: 600
    height: 120
    align: center
discard:
  name: discard
  x: 1020
  y: 240
  width: 220
  height: 100
  align: left
stacks:
  - suit: red
    x: 200
    y: 280
  - suit: yellow
    x: 320
    y: 280
  - suit: green
    x: 440
    y: 280
  - suit: blue
    x: 560
    y: 280
  - suit: purple
    x: 680
    y: 280
stackHeight: 160
`

// LoadTableConfig 从 YAML 数据解析桌面布局配置
//
// 返回：
//   - *TableConfig: 解析后的配置
//   - error: YAML 解析失败或布局参数非法时返回错误
func LoadTableConfig(data []byte) (*TableConfig, error) {
	var cfg TableConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse table config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DefaultTableConfig 返回内置的默认桌面布局
func DefaultTableConfig() *TableConfig {
	cfg, err := LoadTableConfig([]byte(defaultTableYAML))
	if err != nil {
		// 内置配置非法属于程序错误
		panic(fmt.Sprintf("builtin table config is invalid: %v", err))
	}
	return cfg
}

// validate 校验布局参数
// 容器的宽高必须为正数；对齐方式只接受 "left"/"center"/空（默认 left）
func (c *TableConfig) validate() error {
	placements := make([]*HandPlacement, 0, len(c.Hands)+1)
	for i := range c.Hands {
		placements = append(placements, &c.Hands[i])
	}
	placements = append(placements, &c.Discard)

	for _, p := range placements {
		if p.Width <= 0 || p.Height <= 0 {
			return fmt.Errorf("placement %q: width and height must be positive (got %vx%v)",
				p.Name, p.Width, p.Height)
		}
		switch p.Align {
		case "", "left", "center":
		default:
			return fmt.Errorf("placement %q: unknown align %q", p.Name, p.Align)
		}
	}

	if c.StackHeight <= 0 {
		return fmt.Errorf("stackHeight must be positive (got %v)", c.StackHeight)
	}
	return nil
}
