package engine

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"dungeon-core/internal/input"
	"dungeon-core/internal/network"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 30)
	t.Cleanup(screen.Fini)
	return screen
}

func TestRun_QuitKeyStopsLoopAndSavesMemory(t *testing.T) {
	cfg := NewConfig()
	cfg.Seed = 7
	cfg.FPS = 100
	cfg.SaveDir = filepath.Join(t.TempDir(), "saves")
	g, err := NewGame(cfg, input.NewQueue(cfg.QueueSize))
	require.NoError(t, err)

	hub := network.NewBroadcaster()
	frames := hub.Register("spectator")

	screen := newScreen(t)
	done := make(chan error, 1)
	go func() { done <- g.Run(context.Background(), screen, hub) }()

	select {
	case f := <-frames:
		assert.Equal(t, cfg.Width*cfg.Height, len(f.Cells))
		require.NotNil(t, f.Player)
	case <-time.After(2 * time.Second):
		t.Fatal("no frame was broadcast")
	}

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("game loop did not stop on quit")
	}

	entries, err := os.ReadDir(cfg.SaveDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestRun_StopsOnCancel(t *testing.T) {
	cfg := NewConfig()
	cfg.Seed = 3
	cfg.FPS = 100
	g, err := NewGame(cfg, input.NewQueue(cfg.QueueSize))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	screen := newScreen(t)
	done := make(chan error, 1)
	go func() { done <- g.Run(ctx, screen, nil) }()

	require.Eventually(t, func() bool { return g.Status().Frame > 0 }, 2*time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("game loop did not stop on cancel")
	}

	// Строка состояния нарисована над картой
	cells, w, _ := screen.GetContents()
	line := ""
	for x := 0; x < 8; x++ {
		line += string(cells[x].Runes)
	}
	assert.Equal(t, " Depth 1", line)
	assert.Equal(t, 80, w)
}
