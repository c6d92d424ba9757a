package input

import (
	"context"
	"unicode"

	"dungeon-core/pkg/logger"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

// runeControls - раскладка: t/h/d/n и g/c/m/w для диагоналей.
var runeControls = map[rune]Command{
	't': CommandNorth,
	'h': CommandSouth,
	'd': CommandWest,
	'n': CommandEast,
	'g': CommandNorthWest,
	'c': CommandNorthEast,
	'm': CommandSouthWest,
	'w': CommandSouthEast,

	'f': CommandFire,
	'r': CommandRest,
	'p': CommandPickUp,
	'i': CommandInventory,
	'x': CommandExamine,
	'>': CommandDescend,
	'q': CommandQuit,

	'0': CommandZero,
	'1': CommandOne,
	'2': CommandTwo,
	'3': CommandThree,
	'4': CommandFour,
	'5': CommandFive,
}

var keyControls = map[tcell.Key]Command{
	tcell.KeyUp:     CommandNorth,
	tcell.KeyDown:   CommandSouth,
	tcell.KeyLeft:   CommandWest,
	tcell.KeyRight:  CommandEast,
	tcell.KeyHome:   CommandNorthWest,
	tcell.KeyPgUp:   CommandNorthEast,
	tcell.KeyEnd:    CommandSouthWest,
	tcell.KeyPgDn:   CommandSouthEast,
	tcell.KeyEnter:  CommandEnter,
	tcell.KeyEscape: CommandEscape,
	tcell.KeyCtrlC:  CommandQuit,
}

// DecodeKey переводит нажатие в команду. Буквы без учета регистра.
func DecodeKey(ev *tcell.EventKey) (Command, bool) {
	if ev.Key() == tcell.KeyRune {
		cmd, ok := runeControls[unicode.ToLower(ev.Rune())]
		return cmd, ok
	}
	cmd, ok := keyControls[ev.Key()]
	return cmd, ok
}

// EventSource - источник событий терминала (tcell.Screen).
type EventSource interface {
	PollEvent() tcell.Event
}

// Listener декодирует события терминала в команды и складывает их в очередь.
// Работает в собственной горутине: это единственная асинхронная граница ядра.
type Listener struct {
	source EventSource
	queue  *Queue
}

func NewListener(source EventSource, queue *Queue) *Listener {
	return &Listener{source: source, queue: queue}
}

// Run читает события, пока источник не остановлен (PollEvent вернул nil)
// или не отменен контекст. Отмена контекста наблюдается между событиями:
// чтобы разблокировать PollEvent, вызывающий останавливает экран (Fini).
func (l *Listener) Run(ctx context.Context) {
	listenerLogger := logger.Log.WithField("component", "input_listener")
	listenerLogger.Debug("Input listener started")
	defer listenerLogger.Debug("Input listener stopped")

	for {
		if ctx.Err() != nil {
			return
		}
		ev := l.source.PollEvent()
		if ev == nil {
			return
		}
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		cmd, ok := DecodeKey(key)
		if !ok {
			listenerLogger.WithFields(logrus.Fields{
				"key":  key.Name(),
				"rune": string(key.Rune()),
			}).Debug("Unmapped key ignored")
			continue
		}
		l.queue.Push(cmd)
	}
}
