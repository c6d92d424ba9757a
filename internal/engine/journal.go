package engine

import (
	"time"

	"dungeon-core/pkg/api"
	"dungeon-core/pkg/logger"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// JournalLimit - сколько сообщений хранится в журнале сессии.
const JournalLimit = 100

// addLog добавляет сообщение в журнал сессии
func (g *Game) addLog(text, logType string) {
	entry := api.LogEntry{
		ID:        uuid.NewString(),
		Text:      text,
		Type:      logType,
		Timestamp: time.Now().UnixMilli(),
	}

	g.journal = append(g.journal, entry)
	if len(g.journal) > JournalLimit {
		g.journal = g.journal[len(g.journal)-JournalLimit:]
	}
	g.fresh = append(g.fresh, entry)
	if len(g.fresh) > JournalLimit {
		g.fresh = g.fresh[len(g.fresh)-JournalLimit:]
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "game_log",
		"log_type":  logType,
		"turn":      g.turns,
	}).Info(text)
}

// Logs возвращает последние n сообщений, старые первыми. n <= 0 - весь журнал.
func (g *Game) Logs(n int) []api.LogEntry {
	from := 0
	if n > 0 && len(g.journal) > n {
		from = len(g.journal) - n
	}
	return append([]api.LogEntry(nil), g.journal[from:]...)
}
