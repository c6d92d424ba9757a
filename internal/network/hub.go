package network

import (
	"sync"

	"dungeon-core/pkg/api"
	"dungeon-core/pkg/logger"

	"github.com/sirupsen/logrus"
)

// SubscriberBuffer - сколько кадров может отстать наблюдатель, прежде чем кадры начнут теряться.
const SubscriberBuffer = 8

// Broadcaster занимается только рассылкой кадров подписчикам
type Broadcaster struct {
	mu sync.RWMutex
	// Мапа: ID сессии -> Личный канал
	subscribers map[string]chan api.Frame
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan api.Frame),
	}
}

// Register создает личный канал для сессии наблюдателя
func (b *Broadcaster) Register(id string) chan api.Frame {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Если канал был, закрываем
	if old, ok := b.subscribers[id]; ok {
		close(old)
	}

	ch := make(chan api.Frame, SubscriberBuffer)
	b.subscribers[id] = ch
	return ch
}

// Unregister удаляет подписчика
func (b *Broadcaster) Unregister(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[id]; ok {
		close(ch)
		delete(b.subscribers, id)
	}
}

// SendTo отправляет кадр конкретной сессии (Unicast)
func (b *Broadcaster) SendTo(id string, frame api.Frame) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	ch, ok := b.subscribers[id]
	if !ok {
		return false
	}
	return offer(id, ch, frame)
}

// Broadcast отправляет кадр всем. Медленные наблюдатели кадр теряют, игра не ждет.
// Возвращает число сессий, получивших кадр.
func (b *Broadcaster) Broadcast(frame api.Frame) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	sent := 0
	for id, ch := range b.subscribers {
		if offer(id, ch, frame) {
			sent++
		}
	}
	return sent
}

func offer(id string, ch chan api.Frame, frame api.Frame) bool {
	select {
	case ch <- frame:
		return true
	default:
		logger.Log.WithFields(logrus.Fields{
			"component":  "broadcaster",
			"session_id": id,
			"tick":       frame.Tick,
		}).Warn("Subscriber channel full, frame dropped")
		return false
	}
}

// HasSubscriber проверяет, подключена ли сессия
func (b *Broadcaster) HasSubscriber(id string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.subscribers[id]
	return ok
}

// SubscriberCount возвращает количество активных подписчиков.
// Движок не собирает кадр для рассылки, пока никого нет.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
