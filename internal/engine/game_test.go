package engine

import (
	"math/rand"
	"os"
	"testing"

	"dungeon-core/internal/domain"
	"dungeon-core/internal/engine/handlers"
	"dungeon-core/internal/input"
	"dungeon-core/internal/render"
	"dungeon-core/pkg/api"
	"dungeon-core/pkg/dungeon"
	"dungeon-core/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init("error", "text")
	os.Exit(m.Run())
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	cfg := NewConfig()
	cfg.Seed = 42
	g, err := NewGame(cfg, input.NewQueue(16))
	require.NoError(t, err)
	return g
}

// arena переносит героя в закрытую комнату 7x5 без обитателей, на клетку (1,1).
func arena(t *testing.T, g *Game) *domain.Level {
	t.Helper()
	l := domain.NewLevel(1, 7, 5)
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			tile, _ := l.Tile(domain.Point{X: x, Y: y})
			if x == 0 || y == 0 || x == l.Width-1 || y == l.Height-1 {
				tile.ReplaceTerrain(dungeon.Wall)
			} else {
				tile.ReplaceTerrain(dungeon.Floor)
			}
		}
	}
	m, err := g.player.Mover()
	require.NoError(t, err)
	require.True(t, m.TryMove(domain.Point{X: 1, Y: 1}, l))
	g.level = l
	return l
}

// run кладет команды в очередь и крутит Step, пока игра не встанет в ожидание.
func run(t *testing.T, g *Game, cmds ...input.Command) {
	t.Helper()
	for _, c := range cmds {
		require.True(t, g.queue.Push(c))
	}
	for i := 0; i < 1000 && g.Step(); i++ {
	}
	require.Zero(t, g.queue.Len(), "all commands consumed")
}

func lastLog(g *Game) string {
	logs := g.Logs(1)
	if len(logs) == 0 {
		return ""
	}
	return logs[0].Text
}

func TestNewGame(t *testing.T) {
	g := newTestGame(t)

	assert.Equal(t, 1, g.Level().Depth)
	assert.Equal(t, g.Level(), g.Player().Level())
	assert.True(t, g.Level().Scheduler().Contains(g.Player()))
	assert.Contains(t, lastLog(g), "Welcome")
	assert.Equal(t, ModeNormal, g.Mode())

	s := g.Status()
	assert.Equal(t, int64(42), s.Seed)
	assert.Equal(t, dungeon.PlayerHP, s.HP)
	assert.Equal(t, 1, s.Visited)
}

func TestStep_WaitsForInput(t *testing.T) {
	g := newTestGame(t)
	arena(t, g)

	head, ok := g.level.Scheduler().Peek()
	require.True(t, ok)
	assert.Same(t, g.player, head.(*domain.Entity))

	assert.False(t, g.Step(), "empty queue means waiting")
	assert.Zero(t, g.Turns())
}

func TestStep_RestTakesExactlyOneTurn(t *testing.T) {
	g := newTestGame(t)
	arena(t, g)
	a, err := g.player.Actor()
	require.NoError(t, err)

	require.True(t, g.queue.Push(input.CommandRest))
	require.True(t, g.Step())
	assert.True(t, g.behavior.Ready(), "action is staged")
	assert.Zero(t, g.Turns())

	require.True(t, g.Step())
	assert.Equal(t, 1, g.Turns())
	assert.Equal(t, 1, a.Turns())
	assert.False(t, g.behavior.Ready())
	assert.False(t, g.Step())
}

func TestStep_FreeCommandsDoNotTick(t *testing.T) {
	g := newTestGame(t)
	arena(t, g)

	run(t, g, input.CommandExamine, input.CommandInventory, input.CommandFive)
	assert.Zero(t, g.Turns())
	assert.Equal(t, ModeNormal, g.Mode(), "empty pack never opens")
}

func TestMove(t *testing.T) {
	g := newTestGame(t)
	arena(t, g)

	run(t, g, input.CommandNorth)
	assert.Equal(t, "There is a wall in the way.", lastLog(g))
	assert.Zero(t, g.Turns())

	run(t, g, input.CommandEast, input.CommandSouthEast)
	assert.Equal(t, domain.Point{X: 3, Y: 2}, g.player.Pos())
	assert.Equal(t, 2, g.Turns())
}

func TestMove_BumpAttacksHostile(t *testing.T) {
	g := newTestGame(t)
	l := arena(t, g)
	rat := dungeon.Rat.Spawn(g.ids, 1, rand.New(rand.NewSource(1)))
	require.True(t, l.Place(rat, domain.Point{X: 2, Y: 1}))
	h, err := rat.Health()
	require.NoError(t, err)

	require.True(t, g.queue.Push(input.CommandEast))
	g.Step()
	g.Step()

	assert.Equal(t, dungeon.Rat.HP-3, h.HP)
	assert.Equal(t, domain.Point{X: 1, Y: 1}, g.player.Pos(), "attack does not move")
	assert.Contains(t, lastLog(g), "hits the rat")
}

func TestPickupAndDrink(t *testing.T) {
	g := newTestGame(t)
	l := arena(t, g)
	potion := dungeon.HealthPotion.Spawn(g.ids, 1)
	require.True(t, l.Place(potion, domain.Point{X: 1, Y: 1}))

	ph, err := g.player.Health()
	require.NoError(t, err)
	ph.Hurt(5, "trap")
	g.lastHP = ph.HP

	run(t, g, input.CommandPickUp)
	inv, err := g.player.Inventory()
	require.NoError(t, err)
	require.Equal(t, 1, inv.Len())

	run(t, g, input.CommandInventory)
	assert.Equal(t, ModeInventory, g.Mode())
	assert.Contains(t, lastLog(g), "0) ")

	run(t, g, input.CommandZero)
	assert.Equal(t, ModeNormal, g.Mode())
	assert.Zero(t, inv.Len())
	assert.Equal(t, dungeon.PlayerHP, ph.HP)
	assert.Contains(t, lastLog(g), "recovers 5 HP")
}

func TestInventoryMode_EscapeCloses(t *testing.T) {
	g := newTestGame(t)
	l := arena(t, g)
	require.True(t, l.Place(dungeon.Dagger.Spawn(g.ids, 1), domain.Point{X: 1, Y: 1}))

	run(t, g, input.CommandPickUp, input.CommandInventory)
	require.Equal(t, ModeInventory, g.Mode())
	turns := g.Turns()

	run(t, g, input.CommandEscape)
	assert.Equal(t, ModeNormal, g.Mode())
	assert.Equal(t, turns, g.Turns())
}

func TestDescend(t *testing.T) {
	g := newTestGame(t)
	l := arena(t, g)

	run(t, g, input.CommandDescend)
	assert.Equal(t, "There are no stairs here.", lastLog(g))

	stairs := dungeon.StairsDown.Spawn(g.ids, 1)
	require.True(t, l.Place(stairs, domain.Point{X: 1, Y: 1}))

	run(t, g, input.CommandDescend)
	assert.Equal(t, 2, g.Level().Depth)
	assert.Equal(t, g.Level(), g.player.Level())
	assert.False(t, l.Scheduler().Contains(g.player), "released from the old ring")
	assert.True(t, g.Level().Scheduler().Contains(g.player))
	assert.Contains(t, lastLog(g), "Depth 2")
}

func TestPlayerDeath(t *testing.T) {
	g := newTestGame(t)
	arena(t, g)

	require.True(t, g.queue.Push(input.CommandRest))
	require.True(t, g.Step())
	h, err := g.player.Health()
	require.NoError(t, err)
	h.Hurt(h.HP, "goblin")
	require.True(t, g.Step())

	assert.True(t, g.IsOver())
	assert.Contains(t, lastLog(g), "killed by the goblin")

	run(t, g, input.CommandEast, input.CommandQuit)
	assert.True(t, g.Quitting())
}

func TestQuitCommand(t *testing.T) {
	g := newTestGame(t)
	run(t, g, input.CommandQuit)
	assert.True(t, g.Quitting())
}

func TestFrame_DrawsWholeLevel(t *testing.T) {
	g := newTestGame(t)
	l := arena(t, g)
	rec := render.NewRecorder()

	g.Frame(rec)
	assert.Equal(t, 1, g.CurrentFrame())
	assert.Equal(t, l.Width*l.Height, rec.Len())

	gl, ok := rec.Glyph(domain.Point{X: 1, Y: 1})
	require.True(t, ok)
	assert.Equal(t, '@', gl.Symbol)

	mem, err := g.player.Memory()
	require.NoError(t, err)
	assert.Positive(t, mem.Known(l))
	assert.Equal(t, mem.Known(l), g.Status().Known)
}

func TestFrame_RemembersWhatLeftSight(t *testing.T) {
	g := newTestGame(t)
	l := arena(t, g)
	rec := render.NewRecorder()
	g.Frame(rec)

	// Герой ушел на другой уровень: арена рисуется только из памяти
	mem, _ := g.player.Memory()
	m, _ := g.player.Mover()
	other := domain.NewLevel(1, 3, 3)
	tile, _ := other.Tile(domain.Point{X: 1, Y: 1})
	tile.ReplaceTerrain(dungeon.Floor)
	require.True(t, m.TryMove(domain.Point{X: 1, Y: 1}, other))

	g.level = l
	rec.Reset()
	g.Frame(rec)

	gl, ok := rec.Glyph(domain.Point{X: 1, Y: 1})
	require.True(t, ok)
	assert.Equal(t, '@', gl.Symbol, "memory keeps the hero image")
	assert.Equal(t, domain.UnseenFg, gl.Fg)
	assert.Positive(t, mem.Known(l))
}

func TestFrame_CopiesOnlyChangedCells(t *testing.T) {
	g := newTestGame(t)
	l := arena(t, g)
	rec := render.NewRecorder()
	mem, err := g.player.Memory()
	require.NoError(t, err)
	floor := domain.Point{X: 4, Y: 3}

	g.Frame(rec)
	first, ok := mem.Recall(l, floor)
	require.True(t, ok)

	g.Frame(rec)
	again, _ := mem.Recall(l, floor)
	assert.Same(t, first, again, "quiet cell is not copied every frame")

	require.True(t, l.Place(dungeon.Dagger.Spawn(g.ids, 1), floor))
	g.Frame(rec)
	updated, _ := mem.Recall(l, floor)
	assert.NotSame(t, first, updated)
	assert.Equal(t, domain.CategoryItem, updated.TopCategory())
}

func TestSnapshot(t *testing.T) {
	g := newTestGame(t)
	arena(t, g)
	rec := render.NewRecorder()
	g.Frame(rec)

	f := g.Snapshot(rec.Cells())
	require.NoError(t, f.Validate())
	assert.Equal(t, api.FrameType, f.Type)
	assert.Len(t, f.Cells, 35)
	require.NotNil(t, f.Player)
	assert.Equal(t, 1, f.Player.Pos.X)
	assert.Equal(t, dungeon.PlayerHP, f.Player.Stats.HP)
	assert.Equal(t, domain.InventoryCapacity, f.Player.Inventory.MaxSlots)
	require.NotEmpty(t, f.Logs)
	assert.Contains(t, f.Logs[0].Text, "Welcome")

	again := g.Snapshot(rec.Cells())
	assert.Empty(t, again.Logs, "logs are sent once")
}

func TestJournalLimit(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < JournalLimit+10; i++ {
		g.addLog("line", handlers.MsgInfo)
	}
	assert.Len(t, g.Logs(0), JournalLimit)
	assert.Len(t, g.Logs(3), 3)

	ids := map[string]bool{}
	for _, e := range g.Logs(0) {
		assert.False(t, ids[e.ID], "ids are unique")
		ids[e.ID] = true
	}
}

func TestCommandRegistryCoversVocabulary(t *testing.T) {
	normal := commandHandlers()
	for _, c := range []input.Command{
		input.CommandNorth, input.CommandSouthWest, input.CommandRest, input.CommandPickUp,
		input.CommandInventory, input.CommandExamine, input.CommandDescend, input.CommandFire,
	} {
		assert.Contains(t, normal, c, c.String())
	}

	inv := inventoryHandlers()
	assert.Len(t, inv, 6)
	for c := range inv {
		_, isDigit := c.Digit()
		assert.True(t, isDigit, c.String())
	}
}
