// Package hud 实现侧边栏统计标签的展示胶水层。
//
// 牌局统计（效率、节奏/风险）由规则引擎计算并经服务器下发，
// 这里只负责把数字写成文本、按风险档位着色、并对齐标签位置。
package hud

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/decker502/hanabi/pkg/config"
)

// PaceRisk 节奏风险档位
type PaceRisk int

const (
	// PaceRiskZero 节奏耗尽，不能再弃牌
	PaceRiskZero PaceRisk = iota

	// PaceRiskHigh 高风险
	PaceRiskHigh

	// PaceRiskMedium 中风险
	PaceRiskMedium

	// PaceRiskLow 低风险
	PaceRiskLow

	// PaceRiskNull 非法档位（上游计算缺陷），按默认样式展示并告警
	PaceRiskNull
)

// ParsePaceRisk 解析服务器下发的风险档位字符串。
// 未知值归入 PaceRiskNull。
func ParsePaceRisk(s string) PaceRisk {
	switch s {
	case "Zero":
		return PaceRiskZero
	case "HighRisk":
		return PaceRiskHigh
	case "MediumRisk":
		return PaceRiskMedium
	case "LowRisk":
		return PaceRiskLow
	default:
		return PaceRiskNull
	}
}

// EfficiencyStats 效率统计记录
type EfficiencyStats struct {
	// CardsGotten 已确定能打出的卡数
	CardsGotten float64

	// PotentialCluesLost 已消耗的潜在提示数
	PotentialCluesLost float64

	// MaxScore 当前牌局可达的最高分
	MaxScore int

	// CluesStillUsable 剩余可用提示数
	CluesStillUsable float64
}

// PaceStats 节奏统计记录
type PaceStats struct {
	// Pace 剩余弃牌余量（可为负）
	Pace int

	// Risk 风险档位
	Risk PaceRisk
}

// Label 可写文本标签（外部协作者，画布渲染层实现）
type Label interface {
	SetText(s string)
	SetFill(c color.RGBA)
	X() float64
	SetX(x float64)

	// Width 返回当前文本的测量宽度。
	// 返回 NaN 属于渲染层的编程错误，更新器直接断言失败。
	Width() float64
}

// 各风险档位的固定文字颜色
var (
	paceColorDefault = color.RGBA{R: 255, G: 255, B: 255, A: 255} // 白
	paceColorZero    = color.RGBA{R: 223, G: 28, B: 45, A: 255}   // 红
	paceColorHigh    = color.RGBA{R: 239, G: 140, B: 32, A: 255}  // 橙
	paceColorMedium  = color.RGBA{R: 239, G: 211, B: 32, A: 255}  // 黄
)

// paceRiskColor 返回风险档位对应的文字颜色。
// PaceRiskNull 表示上游数据缺陷：记录告警后按默认样式展示。
func paceRiskColor(risk PaceRisk) color.RGBA {
	switch risk {
	case PaceRiskZero:
		return paceColorZero
	case PaceRiskHigh:
		return paceColorHigh
	case PaceRiskMedium:
		return paceColorMedium
	case PaceRiskLow:
		return paceColorDefault
	default:
		log.Printf("[StatsPanel] Warning: invalid pace risk %d (upstream computation defect)", risk)
		return paceColorDefault
	}
}

// StatsPanel 侧边栏统计面板更新器。
// 持有两对相互独立的标签：效率（标题 + 数值）和节奏（标题 + 数值）。
type StatsPanel struct {
	effTitle  Label
	effValue  Label
	paceTitle Label
	paceValue Label
}

// NewStatsPanel 创建统计面板更新器
func NewStatsPanel(effTitle, effValue, paceTitle, paceValue Label) *StatsPanel {
	return &StatsPanel{
		effTitle:  effTitle,
		effValue:  effValue,
		paceTitle: paceTitle,
		paceValue: paceValue,
	}
}

// UpdateEfficiency 刷新效率标签对。
// 文本格式为“当前效率 / 达成满分所需效率”；数值标签重新对齐到
// 标题文本之后（标题宽度随语言/内容变化）。
func (p *StatsPanel) UpdateEfficiency(s EfficiencyStats) {
	current := "-"
	if s.PotentialCluesLost > 0 {
		current = fmt.Sprintf("%.2f", s.CardsGotten/s.PotentialCluesLost)
	}

	required := "∞"
	if s.CluesStillUsable > 0 {
		required = fmt.Sprintf("%.2f", (float64(s.MaxScore)-s.CardsGotten)/s.CluesStillUsable)
	}

	p.effValue.SetText(current + " / " + required)
	p.effValue.SetFill(paceColorDefault)
	p.alignValue(p.effTitle, p.effValue)
}

// UpdatePace 刷新节奏标签对。
// 数值带符号展示，颜色由风险档位决定（与节奏数值大小无关）。
func (p *StatsPanel) UpdatePace(s PaceStats) {
	text := fmt.Sprintf("%d", s.Pace)
	if s.Pace > 0 {
		text = fmt.Sprintf("+%d", s.Pace)
	}

	p.paceValue.SetText(text)
	p.paceValue.SetFill(paceRiskColor(s.Risk))
	p.alignValue(p.paceTitle, p.paceValue)
}

// alignValue 把数值标签对齐到标题文本之后
func (p *StatsPanel) alignValue(title, value Label) {
	w := title.Width()
	if math.IsNaN(w) {
		// 渲染层返回非数值宽度属于编程错误，立即失败
		panic(fmt.Sprintf("hud: label width is NaN (title at x=%v)", title.X()))
	}
	value.SetX(title.X() + w + config.StatsLabelPadding)
}
