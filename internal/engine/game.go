package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"dungeon-core/internal/core/types"
	"dungeon-core/internal/domain"
	"dungeon-core/internal/engine/handlers"
	"dungeon-core/internal/engine/handlers/actions"
	"dungeon-core/internal/input"
	"dungeon-core/internal/systems"
	"dungeon-core/pkg/api"
	"dungeon-core/pkg/dungeon"
	"dungeon-core/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Режимы ввода
const (
	ModeNormal    = "normal"
	ModeInventory = "inventory"
)

// ErrNoStart - генератор вернул стартовую клетку, на которую нельзя встать.
var ErrNoStart = errors.New("start position is blocked")

// Game - драйвер сессии: ходы по кольцу текущего уровня и кадры с анимационными часами.
// Все методы, кроме Status, вызываются из одной горутины игрового цикла.
type Game struct {
	cfg   Config
	queue *input.Queue
	ids   *types.IDAllocator

	player   *domain.Entity
	behavior *PlayerBehavior
	level    *domain.Level
	levels   []*domain.Level

	normal    map[input.Command]handlers.HandlerFunc
	inventory map[input.Command]handlers.HandlerFunc
	mode      string

	turns  int
	frame  int
	lastHP int
	over   bool
	quit   bool

	journal []api.LogEntry
	fresh   []api.LogEntry

	mu     sync.RWMutex
	status Status
}

// NewGame генерирует первый уровень и ставит на него героя.
func NewGame(cfg Config, queue *input.Queue) (*Game, error) {
	g := &Game{
		cfg:       cfg,
		queue:     queue,
		ids:       new(types.IDAllocator),
		normal:    commandHandlers(),
		inventory: inventoryHandlers(),
		mode:      ModeNormal,
	}
	g.behavior = NewPlayerBehavior(g.report)
	g.player = dungeon.CreatePlayer(g.ids, g.behavior)

	if _, err := g.Descend(g.player); err != nil {
		return nil, err
	}
	if h, err := g.player.Health(); err == nil {
		g.lastHP = h.HP
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "game",
		"seed":      cfg.Seed,
		"width":     cfg.Width,
		"height":    cfg.Height,
	}).Info("Game session started")

	if res, err := actions.HandleInit(g.context()); err == nil {
		g.report(res)
	}
	g.refreshStatus()
	return g, nil
}

// Descend реализует handlers.Descender: строит следующий уровень и переводит туда актера.
// Прежние уровни остаются в памяти: их помнит Memory игрока.
func (g *Game) Descend(actor *domain.Entity) (*domain.Level, error) {
	depth := 1
	if g.level != nil {
		depth = g.level.Depth + 1
	}

	rng := rand.New(rand.NewSource(g.cfg.Seed + int64(depth)))
	next, start := dungeon.Generate(depth, g.cfg.Width, g.cfg.Height, g.ids, rng)

	m, err := actor.Mover()
	if err != nil {
		return nil, fmt.Errorf("descend to depth %d: %w", depth, err)
	}
	if !m.TryMove(start, next) {
		return nil, fmt.Errorf("descend to depth %d at %v: %w", depth, start, ErrNoStart)
	}

	g.level = next
	g.levels = append(g.levels, next)

	logger.Log.WithFields(logrus.Fields{
		"component": "game",
		"depth":     depth,
		"actors":    next.Scheduler().Len(),
	}).Debug("Level entered")
	return next, nil
}

// Step продвигает ходовую линию времени на один шаг.
// Если голова кольца - игрок без команды, опрашивает очередь ввода;
// пустая очередь означает ожидание. Иначе выполняет ровно один Tick.
// Возвращает false, если ничего не произошло.
func (g *Game) Step() bool {
	if g.over {
		cmd, ok := g.queue.Poll()
		if !ok {
			return false
		}
		if cmd == input.CommandQuit {
			g.quit = true
		}
		return true
	}

	head, ok := g.level.Scheduler().Peek()
	if !ok {
		return false
	}
	if e, isEntity := head.(*domain.Entity); isEntity && e == g.player && !g.behavior.Ready() {
		cmd, ok := g.queue.Poll()
		if !ok {
			return false
		}
		g.handle(cmd)
		return true
	}

	g.level.Scheduler().Tick()
	g.turns++
	g.checkPlayer()
	return true
}

// handle разбирает команду игрока. Бесплатные команды отвечают сразу,
// остальные ставят действие в PlayerBehavior до хода игрока.
func (g *Game) handle(cmd input.Command) {
	cmdLogger := logger.Log.WithFields(logrus.Fields{
		"component": "game",
		"command":   cmd.String(),
		"mode":      g.mode,
	})

	if cmd == input.CommandQuit {
		g.quit = true
		return
	}

	registry := g.normal
	if g.mode == ModeInventory {
		switch cmd {
		case input.CommandEscape, input.CommandInventory:
			g.mode = ModeNormal
			g.addLog("You close your pack.", handlers.MsgInfo)
			return
		}
		if _, isDigit := cmd.Digit(); isDigit {
			registry = g.inventory
		}
		g.mode = ModeNormal
	}

	h, ok := registry[cmd]
	if !ok {
		cmdLogger.Debug("No handler for command")
		return
	}

	res, err := h(g.context(), cmd)
	if err != nil {
		cmdLogger.WithError(err).Warn("Command rejected")
		return
	}
	if cmd == input.CommandInventory && g.carriesAnything() {
		g.mode = ModeInventory
	}

	g.report(handlers.Result{Msg: res.Msg, MsgType: res.MsgType})
	if res.TakesTurn() {
		g.behavior.Stage(res.Perform)
	}
}

func (g *Game) carriesAnything() bool {
	inv, err := g.player.Inventory()
	return err == nil && inv.Len() > 0
}

func (g *Game) context() handlers.Context {
	return handlers.Context{Actor: g.player, Level: g.level, Switcher: g}
}

// report пишет результат действия в журнал.
func (g *Game) report(res handlers.Result) {
	if res.Msg == "" {
		return
	}
	g.addLog(res.Msg, res.MsgType)
}

// checkPlayer сообщает о полученном уроне и смерти героя.
func (g *Game) checkPlayer() {
	h, err := g.player.Health()
	if err != nil {
		return
	}
	if h.HP < g.lastHP {
		g.addLog(fmt.Sprintf("You take %d damage.", g.lastHP-h.HP), handlers.MsgCombat)
	}
	g.lastHP = h.HP

	if h.IsDead() && !g.over {
		g.over = true
		g.addLog(fmt.Sprintf("You were killed by the %s on depth %d. Press q to quit.", h.KilledBy(), g.level.Depth), handlers.MsgCombat)
		logger.Log.WithFields(logrus.Fields{
			"component": "game",
			"killer":    h.KilledBy(),
			"depth":     g.level.Depth,
			"turns":     g.turns,
		}).Info("Player died")
	}
}

// Frame продвигает анимационные часы и рисует уровень игрока:
// видимое - как есть (и запоминается, если клетка изменилась), остальное - из памяти или заглушкой.
func (g *Game) Frame(cv domain.Canvas) {
	g.frame++

	l := g.level
	vision := systems.RefreshVision(g.player)
	if g.player.Level() != l {
		vision = nil
	}
	mem, _ := g.player.Memory()
	unknown := domain.NewUnknownTile()

	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			p := domain.Point{X: x, Y: y}
			tile, _ := l.Tile(p)

			if vision != nil && vision.CanSee(p) {
				tile.DrawSeen(cv, p, g.frame)
				if mem != nil {
					mem.Remember(l, p)
				}
				continue
			}
			if mem != nil {
				if known, ok := mem.Recall(l, p); ok {
					known.DrawUnseen(cv, p)
					continue
				}
			}
			unknown.DrawSeen(cv, p, g.frame)
		}
	}
	g.refreshStatus()
}

// Snapshot собирает кадр для наблюдателей из записанных клеток и новых сообщений журнала.
func (g *Game) Snapshot(cells []api.CellView) api.Frame {
	f := api.Frame{
		Type:  api.FrameType,
		Tick:  g.turns,
		Frame: g.frame,
		Depth: g.level.Depth,
		Grid:  api.GridMeta{Width: g.level.Width, Height: g.level.Height},
		Cells: cells,
		Logs:  g.fresh,
	}
	g.fresh = nil
	if !g.over {
		f.Player = g.playerView()
	}
	return f
}

func (g *Game) playerView() *api.EntityView {
	p := g.player
	v := &api.EntityView{ID: p.ID.String(), Name: p.Name()}
	v.Pos.X, v.Pos.Y = p.Pos().X, p.Pos().Y

	if h, err := p.Health(); err == nil {
		v.Stats = &api.StatsView{HP: h.HP, MaxHP: h.MaxHP, IsDead: h.IsDead()}
	}
	if inv, err := p.Inventory(); err == nil {
		view := &api.InventoryView{Items: []api.ItemView{}, MaxSlots: domain.InventoryCapacity}
		for _, it := range inv.Items() {
			look := it.Appearance()
			view.Items = append(view.Items, api.ItemView{
				ID:     it.ID.String(),
				Name:   it.Name(),
				Symbol: string(look.Symbol),
				Color:  look.Fg.Hex(),
			})
		}
		v.Inventory = view
	}
	return v
}

// --- Состояние для чтения извне ---

// Player - герой сессии.
func (g *Game) Player() *domain.Entity { return g.player }

// Level - уровень, на котором находится герой.
func (g *Game) Level() *domain.Level { return g.level }

// Levels - все посещенные уровни, от первого.
func (g *Game) Levels() []*domain.Level { return append([]*domain.Level(nil), g.levels...) }

// Mode - текущий режим ввода.
func (g *Game) Mode() string { return g.mode }

// Turns - сколько тиков выполнено за сессию.
func (g *Game) Turns() int { return g.turns }

// CurrentFrame - показания анимационных часов.
func (g *Game) CurrentFrame() int { return g.frame }

func (g *Game) IsOver() bool { return g.over }

// Quitting - игрок попросил выйти.
func (g *Game) Quitting() bool { return g.quit }
