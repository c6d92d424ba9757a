package domain

import (
	"dungeon-core/internal/composite"
)

// Behavior - решение, что делать в свой ход.
type Behavior interface {
	Act(self *Entity, turn int)
}

// InputAwaiter реализуют поведения, которым для хода нужна команда игрока.
type InputAwaiter interface {
	Ready() bool
}

// BehaviorFunc позволяет использовать функцию как Behavior.
type BehaviorFunc func(self *Entity, turn int)

func (f BehaviorFunc) Act(self *Entity, turn int) { f(self, turn) }

// Actor - способность ходить. Сущность с Actor регистрируется в кольце ходов уровня.
type Actor struct {
	composite.Leaf
	behavior Behavior
	turns    int
}

func NewActor(b Behavior) *Actor {
	return &Actor{Leaf: composite.NewLeaf(composite.TypeActor), behavior: b}
}

// OnTick выполняет поведение владельца.
func (a *Actor) OnTick(turn int) {
	owner, ok := ownerOf(&a.Leaf)
	if !ok || a.behavior == nil || owner.IsDead() {
		return
	}
	a.turns++
	a.behavior.Act(owner, turn)
}

// Ready - false, если поведение ждет ввода.
func (a *Actor) Ready() bool {
	if w, ok := a.behavior.(InputAwaiter); ok {
		return w.Ready()
	}
	return true
}

// Turns - сколько ходов сделал актер.
func (a *Actor) Turns() int { return a.turns }

func (a *Actor) Behavior() Behavior { return a.behavior }
