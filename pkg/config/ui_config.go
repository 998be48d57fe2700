package config

// UI 布局相关的常量配置
// 包括卡牌几何尺寸、手牌间距压缩上限、动画时长等布局参数

const (
	// CardNaturalWidth 卡面的自然（未缩放）宽度（像素）
	CardNaturalWidth = 286.0

	// CardNaturalHeight 卡面的自然（未缩放）高度（像素）
	CardNaturalHeight = 406.0

	// CardAnimationDuration 卡牌移动/缩放补间的标准时长（秒）
	// 归位动画和飞向牌堆动画共用此时长
	CardAnimationDuration = 0.6

	// HandSpacingCapRatio 普通模式下手牌间距上限（相对已占用宽度的比例）
	// 手牌很少时限制卡牌散开的最大距离
	HandSpacingCapRatio = 0.04

	// KeldonSpacingCapRatio Keldon 桌面模式下的手牌间距上限
	// 围桌布局下手牌区域更窄，压缩得更紧
	KeldonSpacingCapRatio = 0.025

	// MisplayFinishRotation 飞向牌堆动画收尾时的旋转标记（度）
	// 第一段补间完成后直接置为整圈，表示翻转动画结束
	MisplayFinishRotation = 360.0
)

// 窗口与演示场景布局常量
const (
	// WindowWidth 游戏窗口逻辑宽度（像素）
	WindowWidth = 1280

	// WindowHeight 游戏窗口逻辑高度（像素）
	WindowHeight = 720

	// StatsLabelPadding 统计标签与数值之间的水平间距（像素）
	StatsLabelPadding = 8.0
)
