package scheduler

import (
	"container/list"

	"dungeon-core/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Actor - участник кольца ходов. Не обязан быть пространственной сущностью:
// таймеры эффектов тоже получают свой ход.
type Actor interface {
	// TakeTurn выполняет полный ход. turn - номер вызова Tick планировщика.
	TakeTurn(turn int)
}

// ActionScheduler - строгий round-robin по зарегистрированным актерам.
// За один Tick ходит ровно один актер (голова кольца), затем он уходит в хвост.
// Не потокобезопасен: симуляция последовательна.
type ActionScheduler struct {
	ring  *list.List
	turns int
}

func New() *ActionScheduler {
	return &ActionScheduler{ring: list.New()}
}

// Register добавляет актера в хвост кольца. O(1).
func (s *ActionScheduler) Register(a Actor) {
	s.ring.PushBack(a)
	logger.Log.WithFields(logrus.Fields{
		"component": "scheduler",
		"actors":    s.ring.Len(),
	}).Debugf("Actor %T registered", a)
}

// Release удаляет первое совпадение по идентичности. Отсутствующий актер - no-op.
func (s *ActionScheduler) Release(a Actor) bool {
	if e := s.find(a); e != nil {
		s.ring.Remove(e)
		logger.Log.WithFields(logrus.Fields{
			"component": "scheduler",
			"actors":    s.ring.Len(),
		}).Debugf("Actor %T released", a)
		return true
	}
	return false
}

// Contains проверяет членство по идентичности.
func (s *ActionScheduler) Contains(a Actor) bool {
	return s.find(a) != nil
}

func (s *ActionScheduler) find(a Actor) *list.Element {
	for e := s.ring.Front(); e != nil; e = e.Next() {
		if e.Value.(Actor) == a {
			return e
		}
	}
	return nil
}

// Peek возвращает актера, который сходит следующим.
func (s *ActionScheduler) Peek() (Actor, bool) {
	if front := s.ring.Front(); front != nil {
		return front.Value.(Actor), true
	}
	return nil, false
}

// Tick выполняет ход головы кольца и перемещает ее в хвост.
// Актер, освободивший себя во время хода, в кольцо не возвращается.
func (s *ActionScheduler) Tick() {
	head := s.ring.Front()
	if head == nil {
		return
	}
	s.turns++
	head.Value.(Actor).TakeTurn(s.turns)
	// MoveToBack - no-op, если элемент уже удален из списка
	s.ring.MoveToBack(head)
}

// Turns - сколько ходов выполнено.
func (s *ActionScheduler) Turns() int { return s.turns }

func (s *ActionScheduler) Len() int { return s.ring.Len() }

// Actors возвращает копию кольца, начиная с головы.
func (s *ActionScheduler) Actors() []Actor {
	out := make([]Actor, 0, s.ring.Len())
	for e := s.ring.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value.(Actor))
	}
	return out
}

// Members - отфильтрованная проекция кольца: только актеры типа T.
// Members[*domain.Entity](s) - пространственные сущности без таймеров эффектов.
func Members[T Actor](s *ActionScheduler) []T {
	var out []T
	for e := s.ring.Front(); e != nil; e = e.Next() {
		if v, ok := e.Value.(T); ok {
			out = append(out, v)
		}
	}
	return out
}
