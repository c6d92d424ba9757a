package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"dungeon-core/internal/engine"
	"dungeon-core/internal/input"
	"dungeon-core/internal/network"
	"dungeon-core/internal/version"
	"dungeon-core/pkg/logger"
)

// StatusProvider - источник снимка состояния игры. engine.Game реализует этот интерфейс.
type StatusProvider interface {
	Status() engine.Status
}

// Server раздает кадры наблюдателям по WebSocket.
type Server struct {
	Hub   *network.Broadcaster
	Game  StatusProvider
	Addr  string
	Input *input.Queue // nil - наблюдатели не управляют героем

	httpServer *http.Server
}

func New(hub *network.Broadcaster, game StatusProvider, addr string) *Server {
	return &Server{
		Hub:  hub,
		Game: game,
		Addr: addr,
	}
}

// WithInput разрешает наблюдателям отправлять команды в очередь ввода.
func (s *Server) WithInput(q *input.Queue) *Server {
	s.Input = q
	return s
}

// Handler собирает маршруты сервера.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Регистрируем роуты
	mux.HandleFunc("/ws", enableCORS(s.handleWS))
	mux.HandleFunc("/health", enableCORS(s.handleHealth))
	mux.HandleFunc("/version", enableCORS(s.handleVersion))

	debugHandler := NewDebugHandler(s.Game, s.Hub)
	debugHandler.RegisterRoutes(mux)

	return mux
}

// Run запускает HTTP сервер. Возвращает nil после Shutdown.
func (s *Server) Run() error {
	s.httpServer = &http.Server{
		Addr:              s.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Log.WithField("addr", s.Addr).Info("Spectator server running")
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown останавливает сервер, дожидаясь активных запросов.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Разрешаем запросы с фронтенда
		w.Header().Set("Access-Control-Allow-Origin", "*")
		// Разрешаем заголовки, если фронт шлет что-то нестандартное
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		next(w, r)
	}
}

// handleWS обрабатывает подключение по WebSocket
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.WithError(err).Error("Upgrade error")
		return
	}

	client := NewClient(s.Hub, s.Input, conn)

	// Запускаем пампы
	go client.writePump()
	go client.readPump()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(version.Info()); err != nil {
		logger.Log.WithError(err).Warn("failed to encode version")
	}
}
