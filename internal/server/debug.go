package server

import (
	"encoding/json"
	"net/http"

	"dungeon-core/internal/network"
	"dungeon-core/pkg/logger"
)

// DebugHandler предоставляет доступ к состоянию сессии
type DebugHandler struct {
	Game StatusProvider
	Hub  *network.Broadcaster
}

func NewDebugHandler(game StatusProvider, hub *network.Broadcaster) *DebugHandler {
	return &DebugHandler{Game: game, Hub: hub}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/status", h.handleStatus)
	mux.HandleFunc("/debug/spectators", h.handleSpectators)
}

// /debug/status - снимок текущего уровня и героя
func (h *DebugHandler) handleStatus(w http.ResponseWriter, r *http.Request) {
	if h.Game == nil {
		http.Error(w, "Game is not running", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, h.Game.Status())
}

// /debug/spectators - сколько наблюдателей подключено
func (h *DebugHandler) handleSpectators(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]int{"count": h.Hub.SubscriberCount()})
}

func writeJSON(w http.ResponseWriter, data any) {
	// Разрешаем запросы с любого источника
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Log.WithError(err).Warn("failed to encode debug response")
	}
}
