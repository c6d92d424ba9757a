package composite

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// probe - тестовый лист, записывающий вызовы хуков.
type probe struct {
	Leaf
	name  string
	calls *[]string
	msgs  []Message

	onMessage func(msg Message)
}

func newProbe(t TypeTag, name string, calls *[]string, tags ...Tag) *probe {
	return &probe{Leaf: NewLeaf(t, tags...), name: name, calls: calls}
}

func (p *probe) record(s string) {
	if p.calls != nil {
		*p.calls = append(*p.calls, p.name+"."+s)
	}
}

func (p *probe) Update()             { p.record("update") }
func (p *probe) BeforeTick(turn int) { p.record("before") }
func (p *probe) OnTick(turn int)     { p.record("on") }
func (p *probe) AfterTick(turn int)  { p.record("after") }
func (p *probe) Message(msg Message) {
	p.msgs = append(p.msgs, msg)
	if p.onMessage != nil {
		p.onMessage(msg)
	}
}

// observer считает уведомления о смене родителя.
type observer struct {
	Leaf
	changes int
}

func (o *observer) OnParentChanged() { o.changes++ }

func TestAttach_ResolveReturnsChild(t *testing.T) {
	c := NewComposite(TypeEntity)
	pos := newProbe(TypePosition, "pos", nil)

	require.NoError(t, c.Attach(pos))

	assert.True(t, c.HasChild(TypePosition))
	got, err := c.Resolve(TypePosition)
	require.NoError(t, err)
	assert.Same(t, pos, got)

	parent, err := pos.Parent()
	require.NoError(t, err)
	assert.Same(t, c, parent)
}

func TestAttach_StructuralErrors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(c *Composite) Node
	}{
		{
			name:  "nil child",
			setup: func(c *Composite) Node { return nil },
		},
		{
			name:  "missing type tag",
			setup: func(c *Composite) Node { return &probe{Leaf: Leaf{tags: NewTags("x")}} },
		},
		{
			name:  "missing tags",
			setup: func(c *Composite) Node { return &probe{Leaf: Leaf{typ: TypeHealth}} },
		},
		{
			name: "already parented",
			setup: func(c *Composite) Node {
				other := NewComposite(TypeEntity)
				p := newProbe(TypeHealth, "hp", nil)
				require.NoError(t, other.Attach(p))
				return p
			},
		},
		{
			name: "occupied slot",
			setup: func(c *Composite) Node {
				require.NoError(t, c.Attach(newProbe(TypeHealth, "first", nil)))
				return newProbe(TypeHealth, "second", nil)
			},
		},
		{
			name: "attach to itself",
			setup: func(c *Composite) Node {
				return c
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewComposite(TypeEntity)
			child := tt.setup(c)

			err := c.Attach(child)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrStructural), "got %v", err)

			var se *StructuralError
			assert.True(t, errors.As(err, &se))
		})
	}
}

func TestAttach_AncestorCycle(t *testing.T) {
	root := NewComposite(TypeEntity)
	inner := NewComposite(TypeInventory)
	require.NoError(t, root.Attach(inner))

	// root уже без родителя, но является предком inner
	err := inner.Attach(root)
	require.ErrorIs(t, err, ErrStructural)
}

func TestAttach_OccupiedSlotKeepsOriginal(t *testing.T) {
	c := NewComposite(TypeEntity)
	first := newProbe(TypeHealth, "first", nil)
	second := newProbe(TypeHealth, "second", nil)

	require.NoError(t, c.Attach(first))
	require.Error(t, c.Attach(second))

	got, err := c.Resolve(TypeHealth)
	require.NoError(t, err)
	assert.Same(t, first, got)
	assert.False(t, second.HasParent(), "refused child must stay unparented")
}

func TestReplace_DetachesThenAttaches(t *testing.T) {
	c := NewComposite(TypeEntity)
	first := newProbe(TypeHealth, "first", nil)
	second := newProbe(TypeHealth, "second", nil)

	require.NoError(t, c.Attach(first))
	require.NoError(t, c.Replace(second))

	got, _ := c.Resolve(TypeHealth)
	assert.Same(t, second, got)
	assert.False(t, first.HasParent())
	assert.Len(t, c.Children(), 1)
}

func TestAttachOverlay_RequiresRealChild(t *testing.T) {
	c := NewComposite(TypeEntity)

	err := c.AttachOverlay(newProbe(TypeGraphicChar, "flash", nil))
	require.ErrorIs(t, err, ErrStructural)
	assert.False(t, c.HasOverlay(TypeGraphicChar))
}

func TestOverlay_LIFOAndClear(t *testing.T) {
	c := NewComposite(TypeEntity)
	orig := newProbe(TypeGraphicChar, "orig", nil)
	o1 := newProbe(TypeGraphicChar, "o1", nil)
	o2 := newProbe(TypeGraphicChar, "o2", nil)

	require.NoError(t, c.Attach(orig))
	require.NoError(t, c.AttachOverlay(o1))
	require.NoError(t, c.AttachOverlay(o2))

	got, err := c.Resolve(TypeGraphicChar)
	require.NoError(t, err)
	assert.Same(t, o2, got)

	original, ok := c.Original(TypeGraphicChar)
	require.True(t, ok)
	assert.Same(t, orig, original)

	c.ClearOverlays()

	got, err = c.Resolve(TypeGraphicChar)
	require.NoError(t, err)
	assert.Same(t, orig, got)
	assert.False(t, o1.HasParent())
	assert.False(t, o2.HasParent())
}

func TestNext_WalksDecorationChain(t *testing.T) {
	c := NewComposite(TypeEntity)
	orig := newProbe(TypeGraphicChar, "orig", nil)
	o1 := newProbe(TypeGraphicChar, "o1", nil)
	o2 := newProbe(TypeGraphicChar, "o2", nil)
	require.NoError(t, c.Attach(orig))
	require.NoError(t, c.AttachOverlay(o1))
	require.NoError(t, c.AttachOverlay(o2))

	next, ok := c.Next(o2)
	require.True(t, ok)
	assert.Same(t, o1, next)

	next, ok = c.Next(o1)
	require.True(t, ok)
	assert.Same(t, orig, next)

	_, ok = c.Next(orig)
	assert.False(t, ok)
}

func TestOverlay_ExcludedFromFanOut(t *testing.T) {
	var calls []string
	c := NewComposite(TypeEntity)
	require.NoError(t, c.Attach(newProbe(TypeGraphicChar, "orig", &calls)))
	require.NoError(t, c.AttachOverlay(newProbe(TypeGraphicChar, "overlay", &calls)))

	c.Update()
	c.Message(MessagePositionChanged)

	assert.Equal(t, []string{"orig.update"}, calls)
}

func TestDetach(t *testing.T) {
	c := NewComposite(TypeEntity)
	hp := newProbe(TypeHealth, "hp", nil)
	stranger := newProbe(TypeHealth, "stranger", nil)
	require.NoError(t, c.Attach(hp))

	assert.False(t, c.Detach(stranger), "identity mismatch must be a no-op")
	assert.True(t, c.HasChild(TypeHealth))

	assert.True(t, c.Detach(hp))
	assert.False(t, c.HasChild(TypeHealth))
	assert.False(t, hp.HasParent())

	_, err := c.Resolve(TypeHealth)
	assert.ErrorIs(t, err, ErrLookup)

	assert.False(t, c.Detach(hp), "second detach is a no-op")
}

func TestDetach_ReleasesOverlays(t *testing.T) {
	c := NewComposite(TypeEntity)
	orig := newProbe(TypeGraphicChar, "orig", nil)
	flash := newProbe(TypeGraphicChar, "flash", nil)
	require.NoError(t, c.Attach(orig))
	require.NoError(t, c.AttachOverlay(flash))

	require.True(t, c.Detach(orig))
	assert.False(t, flash.HasParent())
	assert.False(t, c.HasOverlay(TypeGraphicChar))

	// оба узла свободны и снова встают на место
	other := NewComposite(TypeEntity)
	require.NoError(t, other.Attach(orig))
	require.NoError(t, other.AttachOverlay(flash))
	got, err := other.Resolve(TypeGraphicChar)
	require.NoError(t, err)
	assert.Same(t, flash, got)
}

func TestParentObserver(t *testing.T) {
	c := NewComposite(TypeEntity)
	o := &observer{Leaf: NewLeaf(TypeMemory)}

	require.NoError(t, c.Attach(o))
	assert.Equal(t, 1, o.changes)

	c.Detach(o)
	assert.Equal(t, 2, o.changes)
}

func TestParent_LookupErrorOnRoot(t *testing.T) {
	c := NewComposite(TypeEntity)

	_, err := c.Parent()
	require.ErrorIs(t, err, ErrLookup)

	var le *LookupError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, TypeEntity, le.Type)
}

func TestHasSibling_NeverFails(t *testing.T) {
	lonely := newProbe(TypePosition, "pos", nil)
	assert.False(t, lonely.HasSibling(TypeActor))

	_, err := lonely.Sibling(TypeActor)
	assert.ErrorIs(t, err, ErrLookup)

	c := NewComposite(TypeEntity)
	require.NoError(t, c.Attach(lonely))
	require.NoError(t, c.Attach(newProbe(TypeActor, "actor", nil)))

	assert.True(t, lonely.HasSibling(TypeActor))
	assert.False(t, lonely.HasSibling(TypeVision))

	sib, err := lonely.Sibling(TypeActor)
	require.NoError(t, err)
	assert.Equal(t, TypeActor, sib.Type())
}

func TestChildrenWithTag(t *testing.T) {
	c := NewComposite(TypeEntity)
	drink := newProbe(TypeHealth, "drink", nil, "usable")
	read := newProbe(TypeDescription, "read", nil, "usable")
	plain := newProbe(TypePosition, "plain", nil)
	require.NoError(t, c.Attach(drink))
	require.NoError(t, c.Attach(plain))
	require.NoError(t, c.Attach(read))

	got := c.ChildrenWithTag("usable")
	require.Len(t, got, 2)
	assert.Same(t, drink, got[0])
	assert.Same(t, read, got[1])

	// Имя типа - всегда метка
	assert.Len(t, c.ChildrenWithTag(Tag(TypePosition.String())), 1)
	assert.Empty(t, c.ChildrenWithTag("missing"))
}

func TestRunTurn_PhaseOrder(t *testing.T) {
	var calls []string
	c := NewComposite(TypeEntity)
	require.NoError(t, c.Attach(newProbe(TypePosition, "a", &calls)))
	require.NoError(t, c.Attach(newProbe(TypeHealth, "b", &calls)))

	RunTurn(c, 1)

	assert.Equal(t, []string{
		"a.before", "b.before",
		"a.on", "b.on",
		"a.after", "b.after",
	}, calls)
}

func TestAfterTick_ClearsOverlays(t *testing.T) {
	c := NewComposite(TypeEntity)
	orig := newProbe(TypeGraphicChar, "orig", nil)
	require.NoError(t, c.Attach(orig))
	require.NoError(t, c.AttachOverlay(newProbe(TypeGraphicChar, "flash", nil)))

	c.AfterTick(1)

	got, err := c.Resolve(TypeGraphicChar)
	require.NoError(t, err)
	assert.Same(t, orig, got)
}

func TestMessage_DepthFirst(t *testing.T) {
	root := NewComposite(TypeEntity)
	inner := NewComposite(TypeInventory)
	deep := newProbe(TypeHealth, "deep", nil)
	shallow := newProbe(TypePosition, "shallow", nil)

	require.NoError(t, inner.Attach(deep))
	require.NoError(t, root.Attach(inner))
	require.NoError(t, root.Attach(shallow))

	root.Message(MessageDungeonLevelChanged)

	assert.Equal(t, []Message{MessageDungeonLevelChanged}, deep.msgs)
	assert.Equal(t, []Message{MessageDungeonLevelChanged}, shallow.msgs)
}

func TestMessage_StructuralMutationForbidden(t *testing.T) {
	root := NewComposite(TypeEntity)
	inner := NewComposite(TypeInventory)
	handler := newProbe(TypePosition, "handler", nil)
	require.NoError(t, inner.Attach(handler))
	require.NoError(t, root.Attach(inner))

	var attachErr error
	handler.onMessage = func(Message) {
		attachErr = root.Attach(newProbe(TypeHealth, "late", nil))
	}

	root.Message(MessagePositionChanged)

	require.ErrorIs(t, attachErr, ErrStructural)
	assert.False(t, root.HasChild(TypeHealth))

	// После рассылки структура снова изменяема.
	require.NoError(t, root.Attach(newProbe(TypeHealth, "now", nil)))
}

func TestMessage_DetachDuringBroadcastPanics(t *testing.T) {
	root := NewComposite(TypeEntity)
	victim := newProbe(TypeHealth, "victim", nil)
	handler := newProbe(TypePosition, "handler", nil)
	require.NoError(t, root.Attach(handler))
	require.NoError(t, root.Attach(victim))

	handler.onMessage = func(Message) { root.Detach(victim) }

	assert.Panics(t, func() { root.Message(MessagePositionChanged) })
}

func TestDefer_RunsAtTickBoundary(t *testing.T) {
	root := NewComposite(TypeEntity)
	handler := newProbe(TypePosition, "handler", nil)
	require.NoError(t, root.Attach(handler))

	late := newProbe(TypeHealth, "late", nil)
	handler.onMessage = func(Message) {
		root.Defer(func() error { return root.Attach(late) })
	}

	root.Message(MessagePositionChanged)
	assert.False(t, root.HasChild(TypeHealth), "deferred change must wait for the tick boundary")

	root.AfterTick(1)
	assert.True(t, root.HasChild(TypeHealth))
}

func TestAs_TypedAccessor(t *testing.T) {
	c := NewComposite(TypeEntity)
	hp := newProbe(TypeHealth, "hp", nil)
	require.NoError(t, c.Attach(hp))

	got, err := As[*probe](c, TypeHealth)
	require.NoError(t, err)
	assert.Same(t, hp, got)

	_, err = As[*observer](c, TypeHealth)
	assert.ErrorIs(t, err, ErrLookup)

	_, err = As[*probe](c, TypeVision)
	assert.ErrorIs(t, err, ErrLookup)
}

func TestMustAttach_Panics(t *testing.T) {
	c := NewComposite(TypeEntity)
	assert.Panics(t, func() {
		MustAttach(c, newProbe(TypeHealth, "a", nil), newProbe(TypeHealth, "b", nil))
	})
}

func TestRemovalFlag(t *testing.T) {
	p := newProbe(TypeHealth, "hp", nil)
	assert.False(t, p.ToBeRemoved())
	p.MarkForRemoval()
	assert.True(t, p.ToBeRemoved())
}

func TestTypeTag_StringParse(t *testing.T) {
	tests := []struct {
		tag  TypeTag
		name string
	}{
		{TypePosition, "POSITION"},
		{TypeDungeonLevel, "DUNGEON_LEVEL"},
		{TypeIsDungeonFeature, "IS_DUNGEON_FEATURE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.tag.String())
			assert.Equal(t, tt.tag, ParseTypeTag(tt.name))
		})
	}
	assert.Equal(t, TypeUnknown, ParseTypeTag("nope"))
	assert.Equal(t, "UNKNOWN", TypeTag(250).String())
}

func TestMessage_StringParse(t *testing.T) {
	assert.Equal(t, "POSITION_CHANGED", MessagePositionChanged.String())
	assert.Equal(t, MessageDungeonLevelChanged, ParseMessage("dungeon_level_changed"))
	assert.Equal(t, MessageUnknown, ParseMessage("other"))
}
