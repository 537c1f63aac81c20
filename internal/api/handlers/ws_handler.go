package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/linskybing/bodhi-go/internal/notify"
	"github.com/linskybing/bodhi-go/pkg/response"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Batching: Maximum number of messages to buffer before forcing a send
	batchSize = 50

	// Batching: Maximum time to wait before sending buffered messages
	flushFrequency = 100 * time.Millisecond
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// EventLog replays recently published events.
type EventLog interface {
	Recent(ctx context.Context, n int64) ([]notify.Event, error)
}

type EventHandler struct {
	hub *notify.Hub
	log EventLog
}

// NewEventHandler serves live events from hub. log may be nil when no
// durable event log is configured.
func NewEventHandler(hub *notify.Hub, log EventLog) *EventHandler {
	return &EventHandler{hub: hub, log: log}
}

// topicFilter matches topics against comma separated prefixes, e.g. "update.request,compose".
func topicFilter(raw string) func(string) bool {
	var prefixes []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			prefixes = append(prefixes, p)
		}
	}
	return func(topic string) bool {
		if len(prefixes) == 0 {
			return true
		}
		for _, p := range prefixes {
			if strings.HasPrefix(topic, p) {
				return true
			}
		}
		return false
	}
}

// RecentEvents godoc
// @Summary Replay recent events
// @Tags events
// @Produce json
// @Param limit query int false "Number of events" default(100)
// @Param topic query string false "Comma separated topic prefixes"
// @Success 200 {array} notify.Event
// @Failure 503 {object} response.ErrorResponse "No event log configured"
// @Router /events [get]
func (h *EventHandler) RecentEvents(c *gin.Context) {
	if h.log == nil {
		c.JSON(http.StatusServiceUnavailable, response.ErrorResponse{Error: "event log not configured"})
		return
	}
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "100"), 10, 64)
	if err != nil || limit <= 0 || limit > 1000 {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "limit must be between 1 and 1000"})
		return
	}
	events, err := h.log.Recent(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	match := topicFilter(c.Query("topic"))
	out := make([]notify.Event, 0, len(events))
	for _, e := range events {
		if match(e.Topic) {
			out = append(out, e)
		}
	}
	c.JSON(http.StatusOK, out)
}

// StreamEvents pushes live events to a websocket client as JSON arrays.
func (h *EventHandler) StreamEvents(c *gin.Context) {
	match := topicFilter(c.Query("topic"))

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[ws] upgrade failed: %v", err)
		return
	}

	events, unsubscribe := h.hub.Subscribe()
	defer unsubscribe()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	// Reader: only needed to process control frames and notice disconnects.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	defer func() { _ = conn.Close() }()

	pingTicker := time.NewTicker(pingPeriod)
	defer pingTicker.Stop()
	flushTicker := time.NewTicker(flushFrequency)
	defer flushTicker.Stop()

	var buffer []notify.Event
	flush := func() error {
		if len(buffer) == 0 {
			return nil
		}
		data, err := json.Marshal(buffer)
		if err != nil {
			return err
		}
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return err
		}
		buffer = buffer[:0]
		return nil
	}

	for {
		select {
		case e, ok := <-events:
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if !match(e.Topic) {
				continue
			}
			buffer = append(buffer, e)
			if len(buffer) >= batchSize {
				if err := flush(); err != nil {
					return
				}
			}
		case <-flushTicker.C:
			if err := flush(); err != nil {
				return
			}
		case <-pingTicker.C:
			if err := flush(); err != nil {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}
