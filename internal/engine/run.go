package engine

import (
	"context"
	"fmt"
	"time"

	"dungeon-core/internal/core/types"
	"dungeon-core/internal/engine/handlers"
	"dungeon-core/internal/infrastructure/storage"
	"dungeon-core/internal/input"
	"dungeon-core/internal/network"
	"dungeon-core/internal/render"
	"dungeon-core/pkg/logger"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

const (
	// MaxStepsPerFrame ограничивает число ходов между кадрами,
	// чтобы уровень без игрока не подвесил цикл.
	MaxStepsPerFrame = 256
	// MessageLines - сколько последних сообщений видно под картой.
	MessageLines = 3
)

var (
	hudFg     = types.RGB(0xE7E5E4)
	hudBg     = types.RGB(0x1C1917)
	combatFg  = types.RGB(0xF87171)
	errorFg   = types.RGB(0x78716C)
	messageFg = types.RGB(0xD6D3D1)
)

// Run крутит игровой цикл с фиксированной частотой кадров: опрос ввода и ходы,
// затем кадр на экран и, если есть наблюдатели, в broadcaster.
// Выходит, когда отменен ctx или игрок нажал выход. hub может быть nil.
// Экран должен быть инициализирован; Fini вызывает вызывающий.
func (g *Game) Run(ctx context.Context, screen tcell.Screen, hub *network.Broadcaster) error {
	runLogger := logger.Log.WithFields(logrus.Fields{
		"component": "game_loop",
		"fps":       g.cfg.FPS,
	})

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go input.NewListener(screen, g.queue).Run(ctx)

	term := render.NewTerminal(screen, 0, 1)
	rec := render.NewRecorder()
	canvas := render.Multi{term, rec}

	ticker := time.NewTicker(g.cfg.FrameInterval())
	defer ticker.Stop()

	runLogger.Info("Game loop started")
	for {
		select {
		case <-ctx.Done():
			runLogger.Info("Game loop cancelled")
			return g.finish()
		case <-ticker.C:
		}

		steps := 0
		for steps < MaxStepsPerFrame && g.Step() {
			steps++
		}
		if g.quit {
			runLogger.WithField("turns", g.turns).Info("Player quit")
			return g.finish()
		}

		term.Clear()
		rec.Reset()
		g.Frame(canvas)
		g.drawHUD(term)
		term.Show()

		if hub != nil && hub.SubscriberCount() > 0 {
			hub.Broadcast(g.Snapshot(rec.Cells()))
		}
	}
}

// drawHUD пишет строку состояния над картой и журнал под ней.
func (g *Game) drawHUD(term *render.Terminal) {
	s := g.Status()
	line := fmt.Sprintf(" Depth %d  HP %d/%d  Turn %d  Seen %d ", s.Depth, s.HP, s.MaxHP, s.Turn, s.Known)
	if g.mode == ModeInventory {
		line += " [pack: 0-5 use, Esc close] "
	}
	if g.over {
		line += " [dead] "
	}
	term.DrawText(0, 0, line, hudFg, hudBg)

	row := g.level.Height + 1
	for _, entry := range g.Logs(MessageLines) {
		fg := messageFg
		switch entry.Type {
		case handlers.MsgCombat:
			fg = combatFg
		case handlers.MsgError:
			fg = errorFg
		}
		term.DrawText(0, row, entry.Text, fg, types.NoColor)
		row++
	}
}

// finish сохраняет снимок памяти карты, если задан каталог.
func (g *Game) finish() error {
	if g.cfg.SaveDir == "" {
		return nil
	}
	path, err := g.SaveMemory(storage.NewSnapshotService(g.cfg.SaveDir))
	if err != nil {
		return fmt.Errorf("save memory: %w", err)
	}
	logger.Log.WithFields(logrus.Fields{
		"component": "game",
		"path":      path,
	}).Info("Map memory saved")
	return nil
}

// SaveMemory записывает то, что герой помнит о текущем уровне.
func (g *Game) SaveMemory(svc *storage.SnapshotService) (string, error) {
	mem, err := g.player.Memory()
	if err != nil {
		return "", err
	}
	return svc.Save(storage.Capture(g.level, mem, g.cfg.Seed))
}
