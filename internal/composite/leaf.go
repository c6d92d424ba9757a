package composite

// Node - единица композиции: лист (атрибут/поведение) или композит (контейнер).
//
// Реализовать Node можно только встраиванием Leaf или Composite из этого пакета:
// базовое состояние (родитель, тип, метки) хранится там.
type Node interface {
	Type() TypeTag
	Tags() Tags

	HasParent() bool
	// Parent возвращает LookupError для корневого узла.
	Parent() (*Composite, error)

	MarkForRemoval()
	ToBeRemoved() bool

	// Хуки жизненного цикла. Композит раздает их настоящим потомкам.
	Update()
	BeforeTick(turn int)
	OnTick(turn int)
	AfterTick(turn int)
	Message(msg Message)

	base() *Leaf
}

// ParentObserver реализуют узлы, которым нужно знать о смене родителя.
// Вызывается после Attach и после Detach настоящего потомка.
type ParentObserver interface {
	OnParentChanged()
}

// Leaf - базовая реализация Node. Встраивается в конкретные компоненты,
// которые переопределяют нужные хуки.
type Leaf struct {
	parent  *Composite
	typ     TypeTag
	tags    Tags
	removed bool
}

// NewLeaf создает базу листа. Имя типа всегда входит в метки.
func NewLeaf(t TypeTag, tags ...Tag) Leaf {
	ts := NewTags(tags...)
	ts.Add(Tag(t.String()))
	return Leaf{typ: t, tags: ts}
}

func (l *Leaf) base() *Leaf { return l }

func (l *Leaf) Type() TypeTag { return l.typ }

func (l *Leaf) Tags() Tags { return l.tags }

func (l *Leaf) HasParent() bool { return l.parent != nil }

func (l *Leaf) Parent() (*Composite, error) {
	if l.parent == nil {
		return nil, &LookupError{Type: l.typ, Reason: "node has no parent"}
	}
	return l.parent, nil
}

func (l *Leaf) MarkForRemoval() { l.removed = true }

func (l *Leaf) ToBeRemoved() bool { return l.removed }

func (l *Leaf) Update()             {}
func (l *Leaf) BeforeTick(turn int) {}
func (l *Leaf) OnTick(turn int)     {}
func (l *Leaf) AfterTick(turn int)  {}
func (l *Leaf) Message(msg Message) {}

// HasSibling - есть ли у родителя настоящий потомок типа t. Никогда не падает:
// для корня возвращает false.
func (l *Leaf) HasSibling(t TypeTag) bool {
	return l.parent != nil && l.parent.HasChild(t)
}

// Sibling разрешает соседа типа t через родителя (с учетом оверлеев).
func (l *Leaf) Sibling(t TypeTag) (Node, error) {
	if l.parent == nil {
		return nil, &LookupError{Type: t, Reason: "sibling requested on a root node"}
	}
	return l.parent.Resolve(t)
}
