package composite

import (
	"dungeon-core/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Composite - узел-контейнер.
//
// Инварианты:
//   - не более одного настоящего потомка на TypeTag;
//   - стек оверлеев на TypeTag существует только поверх настоящего потомка того же типа
//     и живет ровно один тик (очищается в AfterTick);
//   - хуки раздаются только настоящим потомкам, в порядке их добавления;
//   - пока идет рассылка Message, структуру поддерева менять нельзя.
type Composite struct {
	Leaf

	host     Node
	children map[TypeTag]Node
	order    []TypeTag
	overlays map[TypeTag][]Node

	deferred     []func() error
	broadcasting int
}

// NewComposite создает пустой композит.
func NewComposite(t TypeTag, tags ...Tag) *Composite {
	return &Composite{
		Leaf:     NewLeaf(t, tags...),
		children: make(map[TypeTag]Node),
		overlays: make(map[TypeTag][]Node),
	}
}

// SetHost связывает композит с внешним типом, который его встраивает (например, Entity).
// Потомки получают доступ к нему через Host.
func (c *Composite) SetHost(n Node) { c.host = n }

// Host возвращает внешний тип или сам композит.
func (c *Composite) Host() Node {
	if c.host != nil {
		return c.host
	}
	return c
}

// Attach добавляет настоящего потомка.
// Занятый слот не перезаписывается: сначала Detach, потом Attach (или Replace).
func (c *Composite) Attach(child Node) error {
	if err := c.checkAttachable("attach", child); err != nil {
		return err
	}
	t := child.Type()
	if _, ok := c.children[t]; ok {
		return &StructuralError{Op: "attach", Type: t, Reason: "slot already occupied, detach the current child first"}
	}

	c.children[t] = child
	c.order = append(c.order, t)
	child.base().parent = c
	if o, ok := child.(ParentObserver); ok {
		o.OnParentChanged()
	}
	return nil
}

// AttachOverlay кладет узел на вершину стека оверлеев своего типа.
// Требует наличия настоящего потомка того же типа.
func (c *Composite) AttachOverlay(child Node) error {
	if err := c.checkAttachable("attach overlay", child); err != nil {
		return err
	}
	t := child.Type()
	if _, ok := c.children[t]; !ok {
		return &StructuralError{Op: "attach overlay", Type: t, Reason: "no real child of that type"}
	}

	c.overlays[t] = append(c.overlays[t], child)
	child.base().parent = c
	return nil
}

// Replace явно отсоединяет текущего потомка того же типа (если есть) и добавляет новый.
func (c *Composite) Replace(child Node) error {
	if child != nil {
		if old, ok := c.children[child.Type()]; ok && old != child {
			c.Detach(old)
		}
	}
	return c.Attach(child)
}

func (c *Composite) checkAttachable(op string, child Node) error {
	if child == nil {
		return &StructuralError{Op: op, Reason: "nil child"}
	}
	t := child.Type()
	if t == TypeUnknown {
		return &StructuralError{Op: op, Type: t, Reason: "child has no type tag"}
	}
	if len(child.Tags()) == 0 {
		return &StructuralError{Op: op, Type: t, Reason: "child has no tags"}
	}
	if child.HasParent() {
		return &StructuralError{Op: op, Type: t, Reason: "child already has a parent"}
	}
	for p := c; p != nil; p = p.parent {
		if p.base() == child.base() {
			return &StructuralError{Op: op, Type: t, Reason: "child is an ancestor of the composite"}
		}
	}
	if c.isBroadcasting() {
		return &StructuralError{Op: op, Type: t, Reason: "subtree is receiving a broadcast, use Defer"}
	}
	return nil
}

// Detach удаляет настоящего потомка, если именно он зарегистрирован в слоте своего типа.
// Изменение структуры во время рассылки - ошибка программиста, поэтому паника.
func (c *Composite) Detach(child Node) bool {
	if child == nil {
		return false
	}
	t := child.Type()
	current, ok := c.children[t]
	if !ok || current != child {
		return false
	}
	if c.isBroadcasting() {
		panic(&StructuralError{Op: "detach", Type: t, Reason: "subtree is receiving a broadcast, use Defer"})
	}

	delete(c.children, t)
	for i, ot := range c.order {
		if ot == t {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	for _, n := range c.overlays[t] {
		n.base().parent = nil
	}
	delete(c.overlays, t)
	child.base().parent = nil
	if o, ok := child.(ParentObserver); ok {
		o.OnParentChanged()
	}
	return true
}

// Resolve возвращает вершину стека оверлеев, иначе настоящего потомка.
func (c *Composite) Resolve(t TypeTag) (Node, error) {
	if stack := c.overlays[t]; len(stack) > 0 {
		return stack[len(stack)-1], nil
	}
	if child, ok := c.children[t]; ok {
		return child, nil
	}
	return nil, &LookupError{Type: t, Reason: "no such child"}
}

// MustResolve - как Resolve, но паникует. Только после проверки HasChild.
func (c *Composite) MustResolve(t TypeTag) Node {
	n, err := c.Resolve(t)
	if err != nil {
		panic(err)
	}
	return n
}

// Original возвращает настоящего потомка, игнорируя оверлеи.
func (c *Composite) Original(t TypeTag) (Node, bool) {
	n, ok := c.children[t]
	return n, ok
}

// Next возвращает узел, который n затеняет: следующий оверлей под ним или
// настоящего потомка. Для настоящего потомка и чужих узлов - false.
func (c *Composite) Next(n Node) (Node, bool) {
	stack := c.overlays[n.Type()]
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] != n {
			continue
		}
		if i > 0 {
			return stack[i-1], true
		}
		orig, ok := c.children[n.Type()]
		return orig, ok
	}
	return nil, false
}

// ClearOverlays очищает все стеки оверлеев.
func (c *Composite) ClearOverlays() {
	for t, stack := range c.overlays {
		for _, n := range stack {
			n.base().parent = nil
		}
		delete(c.overlays, t)
	}
}

// HasChild - есть ли настоящий потомок типа t.
func (c *Composite) HasChild(t TypeTag) bool {
	_, ok := c.children[t]
	return ok
}

// HasOverlay - есть ли хотя бы один оверлей типа t.
func (c *Composite) HasOverlay(t TypeTag) bool {
	return len(c.overlays[t]) > 0
}

// Children возвращает настоящих потомков в порядке добавления.
func (c *Composite) Children() []Node {
	out := make([]Node, 0, len(c.order))
	for _, t := range c.order {
		out = append(out, c.children[t])
	}
	return out
}

// ChildrenWithTag возвращает настоящих потомков с меткой tag.
func (c *Composite) ChildrenWithTag(tag Tag) []Node {
	var out []Node
	for _, t := range c.order {
		if child := c.children[t]; child.Tags().Has(tag) {
			out = append(out, child)
		}
	}
	return out
}

// Defer откладывает структурное изменение до границы тика (конец AfterTick).
func (c *Composite) Defer(fn func() error) {
	c.deferred = append(c.deferred, fn)
}

// Broadcasting - получает ли поддерево сейчас рассылку. Структура в это время неизменяема.
func (c *Composite) Broadcasting() bool { return c.isBroadcasting() }

func (c *Composite) isBroadcasting() bool {
	for p := c; p != nil; p = p.parent {
		if p.broadcasting > 0 {
			return true
		}
	}
	return false
}

func (c *Composite) Update() {
	for _, child := range c.Children() {
		child.Update()
	}
}

func (c *Composite) BeforeTick(turn int) {
	for _, child := range c.Children() {
		child.BeforeTick(turn)
	}
}

func (c *Composite) OnTick(turn int) {
	for _, child := range c.Children() {
		child.OnTick(turn)
	}
}

// AfterTick раздает хук, затем очищает оверлеи и выполняет отложенные изменения.
func (c *Composite) AfterTick(turn int) {
	for _, child := range c.Children() {
		child.AfterTick(turn)
	}
	c.ClearOverlays()

	pending := c.deferred
	c.deferred = nil
	for _, fn := range pending {
		if err := fn(); err != nil {
			logger.Log.WithFields(logrus.Fields{
				"component": "composite",
				"type":      c.Type(),
				"turn":      turn,
			}).WithError(err).Warn("Deferred structural change failed")
		}
	}
}

// Message синхронно рассылает сообщение в глубину по настоящим потомкам.
func (c *Composite) Message(msg Message) {
	c.broadcasting++
	defer func() { c.broadcasting-- }()

	for _, t := range c.order {
		c.children[t].Message(msg)
	}
}

// RunTurn выполняет фазы тика в фиксированном порядке.
func RunTurn(n Node, turn int) {
	n.BeforeTick(turn)
	n.OnTick(turn)
	n.AfterTick(turn)
}

// As разрешает потомка типа t и приводит его к конкретному типу T.
func As[T Node](c *Composite, t TypeTag) (T, error) {
	var zero T
	n, err := c.Resolve(t)
	if err != nil {
		return zero, err
	}
	v, ok := n.(T)
	if !ok {
		return zero, &LookupError{Type: t, Reason: "resolved node has unexpected Go type"}
	}
	return v, nil
}

// MustAttach добавляет потомков и паникует при ошибке. Для фабрик контента,
// где ошибка сборки - баг определения.
func MustAttach(c *Composite, children ...Node) {
	for _, child := range children {
		if err := c.Attach(child); err != nil {
			panic(err)
		}
	}
}
