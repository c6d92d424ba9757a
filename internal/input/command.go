package input

import (
	"strings"
)

// Command - логическая команда игрока, уже декодированная из нажатия клавиши.
type Command uint8

const (
	CommandNone Command = iota

	CommandNorth
	CommandSouth
	CommandWest
	CommandEast
	CommandNorthWest
	CommandNorthEast
	CommandSouthWest
	CommandSouthEast

	CommandEnter
	CommandEscape
	CommandRest
	CommandPickUp
	CommandInventory
	CommandExamine
	CommandDescend
	CommandFire

	CommandZero
	CommandOne
	CommandTwo
	CommandThree
	CommandFour
	CommandFive

	CommandQuit
)

// Маппинг для конвертации строк (конфиг, протокол наблюдателя) -> Command
var commandStringToCmd = map[string]Command{
	"NORTH":     CommandNorth,
	"SOUTH":     CommandSouth,
	"WEST":      CommandWest,
	"EAST":      CommandEast,
	"NORTHWEST": CommandNorthWest,
	"NORTHEAST": CommandNorthEast,
	"SOUTHWEST": CommandSouthWest,
	"SOUTHEAST": CommandSouthEast,
	"ENTER":     CommandEnter,
	"ESCAPE":    CommandEscape,
	"REST":      CommandRest,
	"PICKUP":    CommandPickUp,
	"INVENTORY": CommandInventory,
	"EXAMINE":   CommandExamine,
	"DESCEND":   CommandDescend,
	"FIRE":      CommandFire,
	"ZERO":      CommandZero,
	"ONE":       CommandOne,
	"TWO":       CommandTwo,
	"THREE":     CommandThree,
	"FOUR":      CommandFour,
	"FIVE":      CommandFive,
	"QUIT":      CommandQuit,
}

// Маппинг для логов Command -> String
var commandCmdToString = func() map[Command]string {
	m := make(map[Command]string, len(commandStringToCmd))
	for s, c := range commandStringToCmd {
		m[c] = s
	}
	return m
}()

// ParseCommand конвертирует строку в Command
func ParseCommand(s string) Command {
	if val, ok := commandStringToCmd[strings.ToUpper(s)]; ok {
		return val
	}
	return CommandNone
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (c Command) String() string {
	if val, ok := commandCmdToString[c]; ok {
		return val
	}
	return "NONE"
}

var directions = map[Command][2]int{
	CommandNorth:     {0, -1},
	CommandSouth:     {0, 1},
	CommandWest:      {-1, 0},
	CommandEast:      {1, 0},
	CommandNorthWest: {-1, -1},
	CommandNorthEast: {1, -1},
	CommandSouthWest: {-1, 1},
	CommandSouthEast: {1, 1},
}

// Direction возвращает вектор для команд движения.
func (c Command) Direction() (dx, dy int, ok bool) {
	d, ok := directions[c]
	return d[0], d[1], ok
}

// Digit возвращает номер для цифровых команд (выбор в меню).
func (c Command) Digit() (int, bool) {
	if c >= CommandZero && c <= CommandFive {
		return int(c - CommandZero), true
	}
	return 0, false
}
