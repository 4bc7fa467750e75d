// Package socket relays map events to websocket clients
package socket

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"golang.org/x/exp/slices"
)

var tracer = otel.Tracer("socket")

const channelPrefix = "map/"

// Handler is the interface for handling websocket connections
type Handler interface {
	Connect(c echo.Context) error
	CurrentConnectionCount() int64
}

type handler struct {
	rdb         *redis.Client
	connections atomic.Int64
}

// NewHandler creates a new handler
func NewHandler(rdb *redis.Client) Handler {
	return &handler{rdb: rdb}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// CurrentConnectionCount returns the number of open sockets
func (h *handler) CurrentConnectionCount() int64 {
	return h.connections.Load()
}

// Connect upgrades the request and relays events of the requested channels.
// Every connection owns one redis subscription which is closed on disconnect.
func (h *handler) Connect(c echo.Context) error {
	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		slog.Error(
			"failed to upgrade websocket",
			slog.String("error", err.Error()),
			slog.String("module", "socket"),
		)
		return nil
	}
	defer ws.Close()

	h.connections.Add(1)
	defer h.connections.Add(-1)

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	pubsub := h.rdb.Subscribe(ctx)
	defer pubsub.Close()

	go relay(ws, pubsub)

	var subscribed []string
	for {
		var req ChannelRequest
		err := ws.ReadJSON(&req)
		if err != nil {
			break
		}

		channels := filterChannels(req.Channels)

		if len(subscribed) > 0 {
			err = pubsub.Unsubscribe(ctx, subscribed...)
			if err != nil {
				slog.ErrorContext(
					ctx, "failed to unsubscribe",
					slog.String("error", err.Error()),
					slog.String("module", "socket"),
				)
				break
			}
		}
		if len(channels) > 0 {
			err = pubsub.Subscribe(ctx, channels...)
			if err != nil {
				slog.ErrorContext(
					ctx, "failed to subscribe",
					slog.String("error", err.Error()),
					slog.String("module", "socket"),
				)
				break
			}
		}
		subscribed = channels
	}

	return nil
}

// relay is the only writer of the connection
func relay(ws *websocket.Conn, pubsub *redis.PubSub) {
	for msg := range pubsub.Channel() {
		err := ws.WriteMessage(websocket.TextMessage, []byte(msg.Payload))
		if err != nil {
			return
		}
	}
}

func filterChannels(requested []string) []string {
	channels := []string{}
	for _, ch := range requested {
		if !strings.HasPrefix(ch, channelPrefix) || len(ch) == len(channelPrefix) {
			continue
		}
		if slices.Contains(channels, ch) {
			continue
		}
		channels = append(channels, ch)
	}
	return channels
}
