package input

import (
	"dungeon-core/pkg/logger"
)

// DefaultQueueSize - емкость очереди команд по умолчанию.
const DefaultQueueSize = 16

// Queue - ограниченная потокобезопасная очередь команд.
// Слушатель пишет в нее из своей горутины, игровой цикл опрашивает без блокировки.
type Queue struct {
	ch chan Command
}

func NewQueue(size int) *Queue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &Queue{ch: make(chan Command, size)}
}

// Push добавляет команду. Если очередь полна, команда отбрасывается.
func (q *Queue) Push(c Command) bool {
	select {
	case q.ch <- c:
		return true
	default:
		logger.Log.WithField("command", c).Warn("Input queue is full, command dropped")
		return false
	}
}

// Poll возвращает следующую команду. false - команды пока нет.
func (q *Queue) Poll() (Command, bool) {
	select {
	case c := <-q.ch:
		return c, true
	default:
		return CommandNone, false
	}
}

// Len - сколько команд ждет обработки.
func (q *Queue) Len() int { return len(q.ch) }

// Drain отбрасывает все накопленные команды.
func (q *Queue) Drain() {
	for {
		if _, ok := q.Poll(); !ok {
			return
		}
	}
}
