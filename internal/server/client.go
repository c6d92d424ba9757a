package server

import (
	"net/http"
	"time"

	"dungeon-core/internal/input"
	"dungeon-core/internal/network"
	"dungeon-core/pkg/api"
	"dungeon-core/pkg/logger"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между Websocket и Broadcaster
type Client struct {
	ID    string
	Hub   *network.Broadcaster
	Input *input.Queue
	Conn  *websocket.Conn
	Send  chan api.Frame

	log *logrus.Entry
}

// NewClient регистрирует сессию в broadcaster. Кадры начинают копиться сразу.
func NewClient(hub *network.Broadcaster, queue *input.Queue, conn *websocket.Conn) *Client {
	id := uuid.NewString()
	c := &Client{
		ID:    id,
		Hub:   hub,
		Input: queue,
		Conn:  conn,
		Send:  hub.Register(id),
		log: logger.Log.WithFields(logrus.Fields{
			"component":  "ws_client",
			"session_id": id,
		}),
	}
	c.log.WithField("remote", conn.RemoteAddr().String()).Info("Spectator connected")
	return c
}

// readPump читает команды от клиента
func (c *Client) readPump() {
	defer func() {
		c.Hub.Unregister(c.ID)
		if err := c.Conn.Close(); err != nil {
			c.log.WithError(err).Debug("failed to close websocket connection")
		}
		c.log.Info("Spectator disconnected")
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			c.log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	for {
		var cmd api.ClientCommand
		err := c.Conn.ReadJSON(&cmd)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.log.WithError(err).Error("WS Error")
			}
			return
		}
		c.handleCommand(cmd)
	}
}

// handleCommand передает команду наблюдателя в очередь ввода, если это разрешено.
// Выход из игры доступен только с терминала.
func (c *Client) handleCommand(cmd api.ClientCommand) {
	if err := cmd.Validate(); err != nil {
		c.log.WithError(err).Warn("Invalid command")
		return
	}
	if cmd.Action == api.ActionPing {
		return
	}
	if c.Input == nil {
		c.log.WithField("action", cmd.Action).Debug("Remote input disabled, command ignored")
		return
	}

	command := input.ParseCommand(cmd.Action)
	if command == input.CommandNone || command == input.CommandQuit {
		c.log.WithField("action", cmd.Action).Warn("Unknown action")
		return
	}
	c.Input.Push(command)
}

// writePump отправляет кадры клиенту + Ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			c.log.WithError(err).Debug("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case frame, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					c.log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(frame); err != nil {
				c.log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
