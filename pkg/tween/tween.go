// Package tween 提供基于共享时钟的属性补间动画驱动。
//
// 与传统逐实体移动系统不同，tween 驱动不关心目标对象是什么：
// 任何实现 Target 接口的对象都可以被补间。布局容器在每次布局时
// 为每张卡牌创建补间，由场景每帧调用 Manager.Update 统一推进。
//
// 工作流程：
//  1. 调用方通过 Manager.Animate 注册补间（记录起始值和目标值）
//  2. 场景每帧调用 Manager.Update(deltaTime) 推进所有活跃补间
//  3. 进度到达 1.0 时精确吸附到目标值并触发 OnFinish 回调
//  4. 被 Kill 的补间直接丢弃，OnFinish 不会触发
package tween

import (
	"github.com/decker502/hanabi/pkg/utils"
)

// Target 可补间对象需要暴露的几何属性。
// 未在 Params 中指定的属性保持当前值不变。
type Target interface {
	Position() (x, y float64)
	SetPosition(x, y float64)
	Scale() (sx, sy float64)
	SetScale(sx, sy float64)
	Rotation() float64
	SetRotation(deg float64)
	Opacity() float64
	SetOpacity(a float64)
}

// Params 描述一次补间的目标属性集合。
// 指针为 nil 的属性不参与插值（保持对象当前值）。
type Params struct {
	// Duration 补间总时长（秒），<= 0 时视为立即完成
	Duration float64

	// 目标属性值（nil = 不驱动该属性）
	X        *float64
	Y        *float64
	ScaleX   *float64
	ScaleY   *float64
	Rotation *float64
	Opacity  *float64

	// Easing 缓动函数，nil 时默认 EaseOutCubic
	Easing func(t float64) float64

	// OnFinish 完成回调（被 Kill 的补间不触发）
	OnFinish func()
}

// Float 返回 v 的指针，用于内联构造 Params 的可选属性
func Float(v float64) *float64 {
	return &v
}

// Tween 一次进行中的补间。
// 由 Manager.Animate 创建，调用方只应持有它用于 Kill 或查询状态。
type Tween struct {
	target Target
	params Params

	// 起始快照（Animate 时捕获）
	fromX, fromY   float64
	fromSX, fromSY float64
	fromRot        float64
	fromOpacity    float64

	elapsed float64
	skip    bool
	killed  bool
	done    bool
}

// Kill 立即取消补间。
// 目标对象保持当前中间状态，OnFinish 不会触发。
func (t *Tween) Kill() {
	t.killed = true
}

// Alive 返回补间是否仍在驱动目标（未完成且未被取消）
func (t *Tween) Alive() bool {
	return !t.killed && !t.done
}

// step 将补间推进 dt 秒，写入插值后的属性。
// 进度达到 1.0 时吸附到精确目标值并触发 OnFinish。
func (t *Tween) step(dt float64) {
	t.elapsed += dt

	progress := 1.0
	if !t.skip && t.params.Duration > 0 {
		progress = t.elapsed / t.params.Duration
		if progress > 1.0 {
			progress = 1.0
		}
	}

	eased := t.params.Easing(progress)
	if progress >= 1.0 {
		// 完成帧不受缓动函数影响，精确吸附到目标值
		eased = 1.0
	}

	if t.params.X != nil || t.params.Y != nil {
		curX, curY := t.target.Position()
		newX, newY := curX, curY
		if t.params.X != nil {
			newX = utils.Lerp(t.fromX, *t.params.X, eased)
		}
		if t.params.Y != nil {
			newY = utils.Lerp(t.fromY, *t.params.Y, eased)
		}
		t.target.SetPosition(newX, newY)
	}

	if t.params.ScaleX != nil || t.params.ScaleY != nil {
		curSX, curSY := t.target.Scale()
		newSX, newSY := curSX, curSY
		if t.params.ScaleX != nil {
			newSX = utils.Lerp(t.fromSX, *t.params.ScaleX, eased)
		}
		if t.params.ScaleY != nil {
			newSY = utils.Lerp(t.fromSY, *t.params.ScaleY, eased)
		}
		t.target.SetScale(newSX, newSY)
	}

	if t.params.Rotation != nil {
		t.target.SetRotation(utils.Lerp(t.fromRot, *t.params.Rotation, eased))
	}

	if t.params.Opacity != nil {
		t.target.SetOpacity(utils.Lerp(t.fromOpacity, *t.params.Opacity, eased))
	}

	if progress >= 1.0 {
		t.done = true
		if t.params.OnFinish != nil {
			t.params.OnFinish()
		}
	}
}

// Manager 补间调度器（共享动画时钟）。
// 所有补间由同一个事件循环推进，单 goroutine 使用，无需加锁。
type Manager struct {
	tweens  []*Tween
	skipAll bool
}

// NewManager 创建补间调度器
func NewManager() *Manager {
	return &Manager{
		tweens: make([]*Tween, 0),
	}
}

// SetSkipAll 设置全局快进模式（速通/观战回放）。
// 开启后，allowSkip 的补间在下一次 Update 中立即完成并触发 OnFinish。
func (m *Manager) SetSkipAll(skip bool) {
	m.skipAll = skip
}

// Animate 为 target 注册一个补间并返回句柄。
//
// 参数：
//   - target: 被驱动的对象
//   - p: 目标属性集合（nil 属性不驱动）
//   - allowSkip: 是否允许被全局快进模式立即完成
//
// 补间在下一次 Update 才开始写属性；起始值在本次调用时捕获。
func (m *Manager) Animate(target Target, p Params, allowSkip bool) *Tween {
	if p.Easing == nil {
		p.Easing = utils.EaseOutCubic
	}

	t := &Tween{
		target: target,
		params: p,
		skip:   allowSkip && m.skipAll,
	}
	t.fromX, t.fromY = target.Position()
	t.fromSX, t.fromSY = target.Scale()
	t.fromRot = target.Rotation()
	t.fromOpacity = target.Opacity()

	m.tweens = append(m.tweens, t)
	return t
}

// Update 推进所有活跃补间 dt 秒。
//
// 完成回调里允许注册新补间（如两段式动画的第二段）。
// 本帧新注册的补间以 dt=0 访问一次：普通补间从下一帧才开始消耗
// 时间，快进补间则立即完成，保证整条快进动画链在一帧内收敛。
func (m *Manager) Update(dt float64) {
	// 注意：OnFinish 可能 append 新补间，必须用索引循环
	initial := len(m.tweens)
	for i := 0; i < len(m.tweens); i++ {
		t := m.tweens[i]
		if t.killed || t.done {
			continue
		}
		step := dt
		if i >= initial {
			step = 0
		}
		t.step(step)
	}

	// 压缩存活补间，丢弃已完成和已取消的
	alive := m.tweens[:0]
	for _, t := range m.tweens {
		if t.Alive() {
			alive = append(alive, t)
		}
	}
	// 清理尾部引用，帮助 GC
	for i := len(alive); i < len(m.tweens); i++ {
		m.tweens[i] = nil
	}
	m.tweens = alive
}

// ActiveCount 返回当前存活的补间数量（测试与调试用）
func (m *Manager) ActiveCount() int {
	n := 0
	for _, t := range m.tweens {
		if t.Alive() {
			n++
		}
	}
	return n
}
