package scenes

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/hanabi/pkg/card"
	"github.com/decker502/hanabi/pkg/config"
	"github.com/decker502/hanabi/pkg/game"
	"github.com/decker502/hanabi/pkg/hud"
	"github.com/decker502/hanabi/pkg/tween"
)

// 演示发牌参数
const (
	handSize     = 5
	demoMaxScore = 25
)

// sampleStatsPayload 演示用的服务器统计消息
const sampleStatsPayload = `{
  "efficiency": {
    "cardsGotten": 0,
    "potentialCluesLost": 0,
    "maxScore": 25,
    "cluesStillUsable": 8
  },
  "pace": {
    "pace": 5,
    "risk": "LowRisk"
  }
}`

// PlayStacks 按花色组织的打出牌堆集合。
// 实现 card.StackFinder：失误动画据此查找飞行目标锚点。
type PlayStacks struct {
	layouts map[string]*card.CardLayout
	order   []string
	height  float64
}

// StackLocation 返回指定花色牌堆的锚点位置和显示高度
func (p *PlayStacks) StackLocation(suit string) (card.Point, float64, bool) {
	l, ok := p.layouts[suit]
	if !ok {
		return card.Point{}, 0, false
	}
	return card.Point{X: l.X(), Y: l.Y()}, p.height, true
}

// TableScene 牌桌演示场景。
//
// 把布局引擎的所有协作者接到一起：卡面精灵、手牌/弃牌容器、
// 打出牌堆锚点、补间调度器、统计面板。
// 操作说明：左键打出指向的手牌，右键失误（先飞向牌堆再落入弃牌区），
// E 切换共情模式，K 切换 Keldon 压缩模式，S 切换速通快进。
type TableScene struct {
	settings *game.SettingsManager
	tweens   *tween.Manager

	hands   []*card.CardLayout
	discard *card.CardLayout
	stacks  *PlayStacks

	panel      *hud.StatsPanel
	hudLabels  []*ScreenLabel
	cardsDealt int
	played     int
	misplayed  int

	rng *rand.Rand
}

// NewTableScene 创建牌桌场景并完成初始发牌
//
// 参数：
//   - cfg: 桌面布局配置
//   - settings: 客户端设置（布局开关的来源）
//
// 返回：
//   - *TableScene: 场景实例
//   - error: 布局配置非法时返回错误
func NewTableScene(cfg *config.TableConfig, settings *game.SettingsManager) (*TableScene, error) {
	s := &TableScene{
		settings: settings,
		tweens:   tween.NewManager(),
		rng:      rand.New(rand.NewSource(1)),
	}
	s.tweens.SetSkipAll(settings.GetSettings().SpeedrunMode)

	// 打出牌堆：每个花色一个窄容器，同时充当失误动画的锚点表
	s.stacks = &PlayStacks{
		layouts: make(map[string]*card.CardLayout),
		height:  cfg.StackHeight,
	}
	stackWidth := config.CardNaturalWidth * cfg.StackHeight / config.CardNaturalHeight
	for _, sp := range cfg.Stacks {
		l, err := card.NewCardLayout(card.Options{
			X: sp.X, Y: sp.Y,
			Width:  stackWidth,
			Height: cfg.StackHeight,
		}, s.tweens, s.stacks)
		if err != nil {
			return nil, fmt.Errorf("failed to create stack %q: %w", sp.Suit, err)
		}
		s.stacks.layouts[sp.Suit] = l
		s.stacks.order = append(s.stacks.order, sp.Suit)
	}

	// 手牌容器
	for _, hp := range cfg.Hands {
		l, err := newPlacementLayout(hp, s.tweens, s.stacks)
		if err != nil {
			return nil, err
		}
		if settings.GetSettings().EmpathyDefault {
			l.SetEmpathy(true)
		}
		s.hands = append(s.hands, l)
	}

	// 弃牌容器
	discard, err := newPlacementLayout(cfg.Discard, s.tweens, s.stacks)
	if err != nil {
		return nil, err
	}
	s.discard = discard

	// 初始发牌
	opts := settings.LayoutOptions()
	for _, hand := range s.hands {
		for i := 0; i < handSize; i++ {
			hand.AddChild(card.NewLayoutChild(s.drawCard()), opts)
		}
	}

	// 统计面板
	effTitle := NewScreenLabel("Efficiency:", 1020, 60)
	effValue := NewScreenLabel("", 1020, 60)
	paceTitle := NewScreenLabel("Pace:", 1020, 90)
	paceValue := NewScreenLabel("", 1020, 90)
	s.hudLabels = []*ScreenLabel{effTitle, effValue, paceTitle, paceValue}
	s.panel = hud.NewStatsPanel(effTitle, effValue, paceTitle, paceValue)

	// 初始统计来自服务器消息（演示用内置样例）
	eff, pace, err := hud.ParseStatsPayload([]byte(sampleStatsPayload))
	if err != nil {
		return nil, fmt.Errorf("failed to parse initial stats: %w", err)
	}
	s.panel.UpdateEfficiency(eff)
	s.panel.UpdatePace(pace)

	log.Printf("[TableScene] Initialized with %d hands, %d stacks", len(s.hands), len(s.stacks.layouts))
	return s, nil
}

// newPlacementLayout 按布局配置创建卡牌容器
func newPlacementLayout(hp config.HandPlacement, tm *tween.Manager, stacks card.StackFinder) (*card.CardLayout, error) {
	align := card.AlignLeft
	if hp.Align == "center" {
		align = card.AlignCenter
	}
	l, err := card.NewCardLayout(card.Options{
		X: hp.X, Y: hp.Y,
		Width:    hp.Width,
		Height:   hp.Height,
		Rotation: hp.Rotation,
		Align:    align,
		Reverse:  hp.Reverse,
	}, tm, stacks)
	if err != nil {
		return nil, fmt.Errorf("failed to create layout %q: %w", hp.Name, err)
	}
	return l, nil
}

// drawCard 从牌库抽一张演示卡
func (s *TableScene) drawCard() *CardSprite {
	suit := s.stacks.order[s.rng.Intn(len(s.stacks.order))]
	rank := 1 + s.rng.Intn(5)
	s.cardsDealt++
	return NewCardSprite(suit, rank)
}

// Update 推进补间时钟并处理输入
func (s *TableScene) Update(deltaTime float64) {
	s.tweens.Update(deltaTime)
	s.handleKeys()
	s.handleMouse()
}

// handleKeys 处理模式切换快捷键
func (s *TableScene) handleKeys() {
	settings := s.settings.GetSettings()

	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		// 共情模式只作用于自己的手牌（0 号位）
		if len(s.hands) > 0 {
			hand := s.hands[0]
			hand.SetEmpathy(!hand.Empathy())
			log.Printf("[TableScene] Empathy: %v", hand.Empathy())
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyK) {
		settings.KeldonMode = !settings.KeldonMode
		log.Printf("[TableScene] Keldon mode: %v", settings.KeldonMode)
		s.relayoutAll()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		settings.SpeedrunMode = !settings.SpeedrunMode
		s.tweens.SetSkipAll(settings.SpeedrunMode)
		log.Printf("[TableScene] Speedrun mode: %v", settings.SpeedrunMode)
	}
}

// handleMouse 处理出牌/失误点击
func (s *TableScene) handleMouse() {
	leftClick := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	rightClick := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	if !leftClick && !rightClick {
		return
	}

	mx, my := ebiten.CursorPosition()
	c := s.pickHandCard(float64(mx), float64(my))
	if c == nil {
		return
	}

	if leftClick {
		s.PlayCard(c)
	} else {
		s.MisplayCard(c)
	}
}

// pickHandCard 返回命中点下最上层的手牌（顺序靠后的先命中）
func (s *TableScene) pickHandCard(x, y float64) *card.LayoutChild {
	for _, hand := range s.hands {
		children := hand.Children()
		for i := len(children) - 1; i >= 0; i-- {
			c := children[i]
			v, ok := c.Visual().(*CardSprite)
			if !ok || !c.Visible() {
				continue
			}
			w, h := v.NaturalSize()
			sx, sy := c.Scale()
			abs := c.AbsolutePosition()
			if x >= abs.X && x < abs.X+w*sx && y >= abs.Y && y < abs.Y+h*sy {
				return c
			}
		}
	}
	return nil
}

// PlayCard 把手牌打到对应花色的牌堆
func (s *TableScene) PlayCard(c *card.LayoutChild) {
	v, ok := c.Visual().(*CardSprite)
	if !ok {
		return
	}
	stack, ok := s.stacks.layouts[v.Suit()]
	if !ok {
		return
	}

	opts := s.settings.LayoutOptions()
	from := c.Parent()
	stack.AddChild(c, opts)
	s.refill(from, opts)

	s.played++
	s.refreshStats()
}

// MisplayCard 失误出牌：卡牌先飞向对应牌堆，再落入弃牌区
func (s *TableScene) MisplayCard(c *card.LayoutChild) {
	opts := s.settings.LayoutOptions()
	from := c.Parent()
	c.SetMisplayPending()
	s.discard.AddChild(c, opts)
	s.refill(from, opts)

	s.misplayed++
	s.refreshStats()
}

// refill 打出后给原手牌补一张
func (s *TableScene) refill(hand *card.CardLayout, opts card.LayoutOptions) {
	if hand == nil {
		return
	}
	hand.AddChild(card.NewLayoutChild(s.drawCard()), opts)
}

// relayoutAll 全局模式切换后对所有容器整体重排
func (s *TableScene) relayoutAll() {
	opts := s.settings.LayoutOptions()
	for _, hand := range s.hands {
		hand.DoLayout(opts)
	}
	s.discard.DoLayout(opts)
	for _, suit := range s.stacks.order {
		s.stacks.layouts[suit].DoLayout(opts)
	}
}

// refreshStats 用演示规则重算统计并刷新面板。
// 真实客户端中这些数字来自服务器消息，这里只做演示推导。
func (s *TableScene) refreshStats() {
	eff := hud.EfficiencyStats{
		CardsGotten:        float64(s.played),
		PotentialCluesLost: float64(s.played+s.misplayed) / 2,
		MaxScore:           demoMaxScore,
		CluesStillUsable:   8,
	}

	pace := hud.PaceStats{Pace: demoMaxScore - s.played - s.misplayed*2}
	switch {
	case pace.Pace <= 0:
		pace.Risk = hud.PaceRiskZero
	case pace.Pace <= 3:
		pace.Risk = hud.PaceRiskHigh
	case pace.Pace <= 6:
		pace.Risk = hud.PaceRiskMedium
	default:
		pace.Risk = hud.PaceRiskLow
	}

	s.panel.UpdateEfficiency(eff)
	s.panel.UpdatePace(pace)
}

// Draw 绘制牌桌
func (s *TableScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 24, G: 60, B: 42, A: 255})

	// 牌堆底框
	for _, suit := range s.stacks.order {
		l := s.stacks.layouts[suit]
		vector.StrokeRect(screen,
			float32(l.X()), float32(l.Y()),
			float32(l.Width()), float32(l.Height()),
			2, color.RGBA{R: 255, G: 255, B: 255, A: 90}, false)
		s.drawLayout(screen, l)
	}

	// 弃牌区与手牌
	s.drawLayout(screen, s.discard)
	for _, hand := range s.hands {
		s.drawLayout(screen, hand)
	}

	for _, label := range s.hudLabels {
		label.Draw(screen)
	}

	ebitenutil.DebugPrintAt(screen,
		"LMB: play   RMB: misplay   E: empathy   K: keldon   S: speedrun",
		20, config.WindowHeight-20)
}

// drawLayout 按容器顺序绘制子卡牌（顺序即显示层级）
func (s *TableScene) drawLayout(screen *ebiten.Image, l *card.CardLayout) {
	for _, c := range l.Children() {
		if v, ok := c.Visual().(*CardSprite); ok {
			v.Draw(screen, c, l.Rotation())
		}
	}
}
