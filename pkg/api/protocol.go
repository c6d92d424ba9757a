package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> НАБЛЮДАТЕЛЬ ---

// Frame это корневой объект, который сервер отправляет наблюдателям.
// Он представляет собой полный кадр экрана игрока: то же, что видит терминал.
// Отправляется на каждом кадре, в котором что-то изменилось.
type Frame struct {
	// Type тип сообщения. На данный момент всегда "FRAME".
	Type string `json:"type"`

	// Tick количество ходов, выполненных планировщиком уровня.
	Tick int `json:"tick"`

	// Frame номер кадра анимационных часов.
	Frame int `json:"frame"`

	// Depth глубина текущего уровня.
	Depth int `json:"depth"`

	// Grid метаданные о размере всей карты.
	Grid GridMeta `json:"grid"`

	// Cells все нарисованные клетки в порядке строк.
	Cells []CellView `json:"cells"`

	// Player состояние игрока. Отсутствует, если игрок мертв или не размещен.
	Player *EntityView `json:"player,omitempty"`

	// Logs новые сообщения, появившиеся с прошлого кадра.
	Logs []LogEntry `json:"logs,omitempty"`
}

// FrameType - значение Frame.Type.
const FrameType = "FRAME"

// GridMeta содержит общие размеры карты, чтобы клиент знал,
// какую сетку для рендеринга нужно подготовить.
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// CellView это DTO одной нарисованной клетки.
type CellView struct {
	X int `json:"x"`
	Y int `json:"y"`

	// Symbol пустой, если клетка рисуется без символа.
	Symbol string `json:"symbol,omitempty"`

	// Fg и Bg в формате "#RRGGBB", пустые - цвет не задан.
	Fg string `json:"fg,omitempty"`
	Bg string `json:"bg,omitempty"`
}

// EntityView это DTO для игровой сущности.
type EntityView struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	Pos struct {
		X int `json:"x"`
		Y int `json:"y"`
	} `json:"pos"`

	// Stats может отсутствовать, если у сущности нет здоровья.
	Stats *StatsView `json:"stats,omitempty"`

	// Inventory инвентарь сущности (для игрока)
	Inventory *InventoryView `json:"inventory,omitempty"`
}

// StatsView это DTO для характеристик сущности.
type StatsView struct {
	HP     int  `json:"hp"`
	MaxHP  int  `json:"maxHp"`
	IsDead bool `json:"isDead"`
}

// LogEntry представляет одну запись в игровом журнале.
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, COMBAT, ERROR
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// ItemView представляет предмет для клиента
type ItemView struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Color  string `json:"color"`
}

// InventoryView представляет инвентарь для клиента
type InventoryView struct {
	Items    []ItemView `json:"items"`
	MaxSlots int        `json:"maxSlots"`
}

// --- НАБЛЮДАТЕЛЬ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от наблюдателя к серверу.
type ClientCommand struct {
	// Action имя логической команды (NORTH, REST, PICKUP...) или PING.
	Action string `json:"action"`

	// Payload JSON-объект с данными для действия. Пока не используется.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// ActionPing - служебная команда проверки связи.
const ActionPing = "PING"

// --- ДАННЫЕ КОМАНД ---

// DirectionPayload - вектор шага или удара.
type DirectionPayload struct {
	Dx int `json:"dx"`
	Dy int `json:"dy"`
}

// SlotPayload - номер ячейки инвентаря.
type SlotPayload struct {
	Slot int `json:"slot"`
}

// MaxInventorySlots - верхняя граница номера ячейки.
const MaxInventorySlots = 16
