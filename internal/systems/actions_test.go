package systems

import (
	"errors"
	"math/rand"
	"testing"

	"dungeon-core/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateMove(t *testing.T) {
	l := createTestLevel(10, 10, domain.Point{X: 5, Y: 5})
	actor := newTestCreature("hero", domain.FactionPlayer, nil)
	other := newTestCreature("rat", domain.FactionMonster, nil)
	place(l, actor, 4, 5)
	place(l, other, 4, 6)

	// Test 1: Move into empty space
	res := CalculateMove(actor, 0, -1)
	if !res.HasMoved {
		t.Error("Expected move to succeed")
	}
	if res.Target != (domain.Point{X: 4, Y: 4}) {
		t.Errorf("Expected pos (4,4), got %v", res.Target)
	}

	// Test 2: Move into wall
	res = CalculateMove(actor, 1, 0)
	if res.HasMoved || !res.IsWall {
		t.Errorf("Expected wall collision, got %+v", res)
	}

	// Test 3: Move into creature
	res = CalculateMove(actor, 0, 1)
	if res.HasMoved || res.BlockedBy != other {
		t.Errorf("Expected to be blocked by rat, got %+v", res)
	}

	// Test 4: Off the map
	bat := newTestCreature("bat", domain.FactionMonster, nil)
	place(l, bat, 0, 0)
	res = CalculateMove(bat, -1, 0)
	if !res.IsWall {
		t.Error("Expected map edge to behave as a wall")
	}

	// CalculateMove не меняет мир
	if actor.Pos() != (domain.Point{X: 4, Y: 5}) {
		t.Errorf("CalculateMove must not move the entity, got %v", actor.Pos())
	}
}

func TestApplyAttack(t *testing.T) {
	l := createTestLevel(5, 5)
	hero := newTestCreature("hero", domain.FactionPlayer, nil)
	orc := newTestCreature("orc", domain.FactionMonster, nil)
	place(l, hero, 1, 1)
	place(l, orc, 2, 1)

	msg := ApplyAttack(hero, orc, 4)
	h, _ := orc.Health()
	assert.Equal(t, 6, h.HP)
	assert.Contains(t, msg, "for 4")

	ApplyAttack(hero, orc, 0)
	assert.Equal(t, 5, h.HP, "minimum damage is 1")

	msg = ApplyAttack(hero, orc, 100)
	assert.True(t, h.IsDead())
	assert.Contains(t, msg, "dies")
	assert.Equal(t, []*domain.Entity{hero}, l.Entities())

	msg = ApplyAttack(hero, orc, 1)
	assert.Contains(t, msg, "corpse")
}

func TestMonsterAI_AttacksAdjacentEnemy(t *testing.T) {
	l := createTestLevel(6, 6)
	ai := &MonsterAI{Damage: 3}
	orc := newTestCreature("orc", domain.FactionMonster, ai)
	hero := newTestCreature("hero", domain.FactionPlayer, nil)
	place(l, orc, 2, 2)
	place(l, hero, 3, 3)

	orc.TakeTurn(1)

	h, _ := hero.Health()
	assert.Equal(t, 7, h.HP)
	assert.Equal(t, domain.Point{X: 2, Y: 2}, orc.Pos())
}

func TestMonsterAI_ChasesVisibleEnemy(t *testing.T) {
	l := createTestLevel(10, 3)
	orc := newTestCreature("orc", domain.FactionMonster, &MonsterAI{Damage: 1})
	hero := newTestCreature("hero", domain.FactionPlayer, nil)
	place(l, orc, 1, 1)
	place(l, hero, 6, 0)

	orc.TakeTurn(1)

	assert.Equal(t, 1, orc.Pos().ChessDistance(domain.Point{X: 1, Y: 1}), "moved exactly one step")
	assert.Less(t, orc.Pos().ChessDistance(hero.Pos()), 5)
}

func TestMonsterAI_WandersWithoutTarget(t *testing.T) {
	l := createTestLevel(5, 5)
	orc := newTestCreature("orc", domain.FactionMonster, &MonsterAI{Rng: rand.New(rand.NewSource(7))})
	place(l, orc, 2, 2)

	for turn := 1; turn <= 10; turn++ {
		orc.TakeTurn(turn)
		require.True(t, l.InBounds(orc.Pos()))
	}
}

func TestTryPickupAndDrop(t *testing.T) {
	l := createTestLevel(5, 5)
	hero := newTestCreature("hero", domain.FactionPlayer, nil)
	potion := newTestItem("potion")
	place(l, potion, 1, 1)
	place(l, hero, 1, 1)

	msg, err := TryPickup(hero)
	require.NoError(t, err)
	assert.Equal(t, "hero picks up the potion.", msg)

	_, err = TryPickup(hero)
	assert.ErrorIs(t, err, ErrNothingHere)

	msg, err = TryDrop(hero, -1)
	require.NoError(t, err)
	assert.Equal(t, "hero drops the potion.", msg)

	_, err = TryDrop(hero, 0)
	assert.ErrorIs(t, err, ErrNothingToDrop)

	_, err = TryPickup(potion)
	assert.True(t, errors.Is(err, ErrNoInventory))
}

func TestValidateInteraction(t *testing.T) {
	l := createTestLevel(10, 3, domain.Point{X: 3, Y: 0}, domain.Point{X: 3, Y: 1}, domain.Point{X: 3, Y: 2})
	hero := newTestCreature("hero", domain.FactionPlayer, nil)
	near := newTestCreature("rat", domain.FactionMonster, nil)
	behind := newTestCreature("orc", domain.FactionMonster, nil)
	place(l, hero, 1, 1)
	place(l, near, 2, 1)
	place(l, behind, 5, 1)

	tests := []struct {
		name   string
		target *domain.Entity
		limit  float64
		los    bool
		valid  bool
	}{
		{"adjacent", near, 1.5, true, true},
		{"too far", behind, 1.5, false, false},
		{"behind wall", behind, 8, true, false},
		{"behind wall without LOS check", behind, 8, false, true},
		{"nil target", nil, 8, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidateInteraction(hero, tt.target, tt.limit, tt.los)
			assert.Equal(t, tt.valid, res.Valid, res.Message)
		})
	}
}
