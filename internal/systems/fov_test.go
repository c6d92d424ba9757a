package systems

import (
	"testing"

	"dungeon-core/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasLineOfSight(t *testing.T) {
	// Карта 5x5
	// . . . . .
	// . . # . .  (2,1) - стена
	// . # # # .  (1,2), (2,2), (3,2) - стена
	// . . # . .  (2,3) - стена
	// . . . . .
	l := createTestLevel(5, 5,
		domain.Point{X: 2, Y: 1},
		domain.Point{X: 1, Y: 2}, domain.Point{X: 2, Y: 2}, domain.Point{X: 3, Y: 2},
		domain.Point{X: 2, Y: 3},
	)

	tests := []struct {
		name string
		p1   domain.Point
		p2   domain.Point
		want bool
	}{
		{"Clear horizontal", domain.Point{X: 0, Y: 0}, domain.Point{X: 4, Y: 0}, true},
		{"Blocked horizontal", domain.Point{X: 0, Y: 2}, domain.Point{X: 4, Y: 2}, false},
		{"Clear diagonal", domain.Point{X: 0, Y: 0}, domain.Point{X: 1, Y: 1}, true},
		{"Blocked diagonal", domain.Point{X: 0, Y: 0}, domain.Point{X: 4, Y: 4}, false}, // через (2,2)
		{"Adjacent wall", domain.Point{X: 2, Y: 1}, domain.Point{X: 2, Y: 2}, true},
		{"Behind wall", domain.Point{X: 2, Y: 1}, domain.Point{X: 2, Y: 3}, false},
		{"Same point", domain.Point{X: 4, Y: 4}, domain.Point{X: 4, Y: 4}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasLineOfSight(l, tt.p1, tt.p2); got != tt.want {
				t.Errorf("HasLineOfSight(%v, %v) = %v, want %v", tt.p1, tt.p2, got, tt.want)
			}
		})
	}
}

func TestComputeVisibleTiles_WallCastsShadow(t *testing.T) {
	// Наблюдатель в (1,3), стена в (3,3): клетка (5,3) за стеной не видна
	l := createTestLevel(9, 7, domain.Point{X: 3, Y: 3})
	origin := domain.Point{X: 1, Y: 3}

	visible := ComputeVisibleTiles(l, origin, 6)

	assert.Contains(t, visible, origin)
	assert.Contains(t, visible, domain.Point{X: 3, Y: 3}, "the wall itself is visible")
	assert.Contains(t, visible, domain.Point{X: 2, Y: 1})
	assert.NotContains(t, visible, domain.Point{X: 5, Y: 3})
}

func TestComputeVisibleTiles_RadiusAndBlindness(t *testing.T) {
	l := createTestLevel(20, 20)
	origin := domain.Point{X: 10, Y: 10}

	visible := ComputeVisibleTiles(l, origin, 3)
	assert.Contains(t, visible, domain.Point{X: 12, Y: 10})
	assert.NotContains(t, visible, domain.Point{X: 14, Y: 10})

	assert.Empty(t, ComputeVisibleTiles(l, origin, 0))
	assert.Empty(t, ComputeVisibleTiles(l, domain.Point{X: -1, Y: 0}, 5))
}

func TestRefreshVision_CachesUntilMoved(t *testing.T) {
	l := createTestLevel(10, 10)
	hero := newTestCreature("hero", domain.FactionPlayer, nil)
	place(l, hero, 5, 5)

	v := RefreshVision(hero)
	require.NotNil(t, v)
	assert.False(t, v.IsDirty())
	first := v.Len()
	assert.Positive(t, first)

	mem, _ := hero.Memory()
	assert.Equal(t, first, mem.Known(l), "everything seen is remembered")

	require.True(t, Step(hero, 1, 0).HasMoved)
	assert.True(t, v.IsDirty())
	assert.True(t, CanSee(hero, domain.Point{X: 6, Y: 5}))
	assert.False(t, v.IsDirty())
}

func TestRefreshVision_NoVisionComponent(t *testing.T) {
	item := newTestItem("potion")
	assert.Nil(t, RefreshVision(item))
	assert.False(t, CanSee(item, domain.Point{}))
	assert.Empty(t, SeenEntities(item))
}
