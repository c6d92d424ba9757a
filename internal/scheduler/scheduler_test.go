package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	name string
	log  *[]string
}

func (r *recorder) TakeTurn(turn int) { *r.log = append(*r.log, r.name) }

// spatial - второй тип актера для проверки проекции Members.
type spatial struct{ recorder }

// selfReleasing освобождает себя во время хода (истекший эффект).
type selfReleasing struct {
	s     *ActionScheduler
	turns int
}

func (a *selfReleasing) TakeTurn(turn int) {
	a.turns++
	a.s.Release(a)
}

func TestTick_RoundRobin(t *testing.T) {
	var log []string
	s := New()
	a := &recorder{"A", &log}
	b := &recorder{"B", &log}
	c := &recorder{"C", &log}
	s.Register(a)
	s.Register(b)
	s.Register(c)

	for i := 0; i < 4; i++ {
		s.Tick()
	}

	assert.Equal(t, []string{"A", "B", "C", "A"}, log)
	assert.Equal(t, 4, s.Turns())
}

func TestTick_EmptyRingIsNoop(t *testing.T) {
	s := New()
	s.Tick()
	assert.Equal(t, 0, s.Turns())

	_, ok := s.Peek()
	assert.False(t, ok)
}

func TestRelease_RemovesOneAndKeepsOrder(t *testing.T) {
	var log []string
	s := New()
	a := &recorder{"A", &log}
	b := &recorder{"B", &log}
	c := &recorder{"C", &log}
	s.Register(a)
	s.Register(b)
	s.Register(c)
	s.Register(b) // b дважды

	require.True(t, s.Release(b))

	got := s.Actors()
	require.Len(t, got, 3)
	assert.Same(t, a, got[0])
	assert.Same(t, c, got[1])
	assert.Same(t, b, got[2])
}

func TestRelease_AbsentIsNoop(t *testing.T) {
	var log []string
	s := New()
	a := &recorder{"A", &log}
	s.Register(a)

	assert.False(t, s.Release(&recorder{"ghost", &log}))
	assert.Equal(t, 1, s.Len())
}

func TestRelease_DuringOwnTurn(t *testing.T) {
	var log []string
	s := New()
	effect := &selfReleasing{s: s}
	a := &recorder{"A", &log}
	s.Register(effect)
	s.Register(a)

	s.Tick()
	s.Tick()
	s.Tick()

	assert.Equal(t, 1, effect.turns)
	assert.False(t, s.Contains(effect))
	assert.Equal(t, []string{"A", "A"}, log)
}

func TestPeek_ReturnsHead(t *testing.T) {
	var log []string
	s := New()
	a := &recorder{"A", &log}
	b := &recorder{"B", &log}
	s.Register(a)
	s.Register(b)

	head, ok := s.Peek()
	require.True(t, ok)
	assert.Same(t, a, head)

	s.Tick()

	head, _ = s.Peek()
	assert.Same(t, b, head)
}

func TestMembers_FiltersByType(t *testing.T) {
	var log []string
	s := New()
	s.Register(&recorder{"timer", &log})
	p := &spatial{recorder{"P", &log}}
	s.Register(p)

	members := Members[*spatial](s)
	require.Len(t, members, 1)
	assert.Same(t, p, members[0])

	assert.Len(t, s.Actors(), 2)
}
