package socket

import (
	"context"
	"encoding/json"
	"log"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/totegamma/chronicle/core"
	"github.com/totegamma/chronicle/internal/testutil"
)

var ctx = context.Background()
var rdb *redis.Client

func TestMain(m *testing.M) {
	log.Println("Test Start")

	var cleanup_rdb func()
	rdb, cleanup_rdb = testutil.CreateRDB()
	defer cleanup_rdb()

	m.Run()

	log.Println("Test End")
}

func TestFilterChannels(t *testing.T) {
	assert.Equal(t, []string{"map/1", "map/2"}, filterChannels([]string{"map/1", "timeline/x", "map/2", "map/1", "map/"}))
	assert.Equal(t, []string{}, filterChannels(nil))
}

func TestRelay(t *testing.T) {
	h := NewHandler(rdb)
	events := NewService(rdb)

	e := echo.New()
	e.GET("/socket", h.Connect)
	server := httptest.NewServer(e)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/socket"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if !assert.NoError(t, err) {
		return
	}
	defer conn.Close()

	err = conn.WriteJSON(ChannelRequest{Channels: []string{"map/42"}})
	assert.NoError(t, err)

	assert.Eventually(t, func() bool {
		subs, err := rdb.PubSubNumSub(ctx, "map/42").Result()
		return err == nil && subs["map/42"] == 1
	}, 5*time.Second, 50*time.Millisecond)
	assert.Equal(t, int64(1), h.CurrentConnectionCount())

	err = events.Publish(ctx, core.Event{
		Type:     core.EventTypeRegion,
		Action:   core.EventActionCreate,
		MapID:    42,
		Resource: core.Region{ID: 1, WorldMapID: 42, Path: "M 0 0 Z"},
	})
	assert.NoError(t, err)

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, message, err := conn.ReadMessage()
	if assert.NoError(t, err) {
		var event core.Event
		assert.NoError(t, json.Unmarshal(message, &event))
		assert.Equal(t, "map/42", event.Channel)
		assert.Equal(t, core.EventActionCreate, event.Action)
		assert.Equal(t, uint(42), event.MapID)
	}

	// switching channels drops the previous subscription
	err = conn.WriteJSON(ChannelRequest{Channels: []string{"map/43"}})
	assert.NoError(t, err)

	assert.Eventually(t, func() bool {
		subs, err := rdb.PubSubNumSub(ctx, "map/42", "map/43").Result()
		return err == nil && subs["map/42"] == 0 && subs["map/43"] == 1
	}, 5*time.Second, 50*time.Millisecond)

	conn.Close()
	assert.Eventually(t, func() bool {
		subs, err := rdb.PubSubNumSub(ctx, "map/43").Result()
		return err == nil && subs["map/43"] == 0 && h.CurrentConnectionCount() == 0
	}, 5*time.Second, 50*time.Millisecond)
}
