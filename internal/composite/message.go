package composite

import "strings"

// Message - сообщение, рассылаемое синхронно и в глубину по дереву.
type Message uint8

const (
	MessageUnknown Message = iota
	MessageDungeonLevelChanged
	MessagePositionChanged
)

var messageStringToMessage = map[string]Message{
	"DUNGEON_LEVEL_CHANGED": MessageDungeonLevelChanged,
	"POSITION_CHANGED":      MessagePositionChanged,
}

var messageToString = map[Message]string{
	MessageDungeonLevelChanged: "DUNGEON_LEVEL_CHANGED",
	MessagePositionChanged:     "POSITION_CHANGED",
}

// ParseMessage конвертирует строку в Message
func ParseMessage(s string) Message {
	if val, ok := messageStringToMessage[strings.ToUpper(s)]; ok {
		return val
	}
	return MessageUnknown
}

func (m Message) String() string {
	if val, ok := messageToString[m]; ok {
		return val
	}
	return "UNKNOWN"
}
