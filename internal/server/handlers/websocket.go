// internal/server/handlers/websocket.go

package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/nats-io/nats.go"

	"github.com/Neerajupadhayay2004/hidden-spots-stories/internal/domain/geo"
	"github.com/Neerajupadhayay2004/hidden-spots-stories/internal/domain/location"
	"github.com/Neerajupadhayay2004/hidden-spots-stories/internal/domain/spot"
	locationService "github.com/Neerajupadhayay2004/hidden-spots-stories/internal/service/location"
	mapviewService "github.com/Neerajupadhayay2004/hidden-spots-stories/internal/service/mapview"
)

// MapSocketDeps bundles what a map websocket connection needs.
type MapSocketDeps struct {
	NatsConn       *nats.Conn
	Viewport       *mapviewService.Viewport
	Repo           spot.Repository
	Source         *locationService.ChannelSource
	ProviderConfig locationService.ProviderConfig
	SpotsTopic     string
	MapTopic       string
}

// mapClient represents one connected map websocket client
type mapClient struct {
	conn     *websocket.Conn
	send     chan []byte
	deps     MapSocketDeps
	provider *locationService.Provider
	watch    *locationService.Watch
	subs     []*nats.Subscription
}

// WebSocketConfig contains configuration for WebSocket connections
type WebSocketConfig struct {
	// Time allowed to write a message to the peer
	WriteWait time.Duration

	// Time allowed to read the next pong message from the peer
	PongWait time.Duration

	// Send pings to peer with this period
	PingPeriod time.Duration

	// Maximum message size allowed from peer
	MaxMessageSize int64
}

// DefaultWebSocketConfig returns the default WebSocket configuration
func DefaultWebSocketConfig() WebSocketConfig {
	return WebSocketConfig{
		WriteWait:      10 * time.Second,
		PongWait:       60 * time.Second,
		PingPeriod:     (60 * time.Second * 9) / 10,
		MaxMessageSize: 64 * 1024,
	}
}

// upgrader is used to upgrade HTTP connections to WebSocket
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// In production, this should be more restrictive
		return true
	},
}

// MapWebSocketHandler handles websocket connections for live map
// interaction: the client streams position fixes and selection gestures
// in, and receives spot/selection events and refreshed markers back.
func MapWebSocketHandler(deps MapSocketDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("Failed to upgrade to WebSocket: %v", err)
			return
		}

		client := &mapClient{
			conn: conn,
			send: make(chan []byte, 256),
			deps: deps,
			// Each connection owns its provider, so each holds its
			// own single watch over the shared position source.
			provider: locationService.NewProvider(deps.Source, deps.ProviderConfig),
		}

		go client.writePump()
		go client.readPump()

		if err := client.subscribeToEvents(); err != nil {
			log.Printf("Failed to subscribe to map events: %v", err)
			client.close()
			return
		}

		// Stream refreshed markers to this client on every position fix.
		watch, err := client.provider.WatchLocation(func(c geo.Coordinate) {
			client.sendMarkers(&c, nil)
		})
		if err != nil && err != location.ErrNotSupported {
			log.Printf("Failed to start location watch: %v", err)
		}
		client.watch = watch

		// First paint: render immediately with whatever we have.
		client.sendMarkers(client.provider.LastKnown(), nil)
	}
}

// readPump pumps messages from the WebSocket connection into the viewport
func (c *mapClient) readPump() {
	config := DefaultWebSocketConfig()

	defer func() {
		c.close()
	}()

	c.conn.SetReadLimit(config.MaxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(config.PongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(config.PongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}

		c.processIncomingMessage(message)
	}
}

// writePump pumps queued messages to the WebSocket connection
func (c *mapClient) writePump() {
	config := DefaultWebSocketConfig()
	ticker := time.NewTicker(config.PingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(config.WriteWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(config.WriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// processIncomingMessage dispatches one client message
func (c *mapClient) processIncomingMessage(message []byte) {
	var msg struct {
		Type   string  `json:"type"`
		Lat    float64 `json:"lat"`
		Lng    float64 `json:"lng"`
		SpotID string  `json:"spot_id"`
		Vibe   string  `json:"vibe"`
	}
	if err := json.Unmarshal(message, &msg); err != nil {
		log.Printf("Failed to parse WebSocket message: %v", err)
		return
	}

	switch msg.Type {
	case "position":
		c.deps.Source.Push(location.Position{
			Coordinate: geo.Coordinate{Lat: msg.Lat, Lng: msg.Lng},
			Timestamp:  time.Now(),
		})

	case "select":
		s, err := c.deps.Repo.GetByID(context.Background(), msg.SpotID)
		if err != nil {
			c.sendError(fmt.Sprintf("unknown spot %q", msg.SpotID))
			return
		}
		c.deps.Viewport.Select(*s)

	case "hover":
		c.deps.Viewport.Hover(msg.SpotID)
		c.sendMarkers(c.provider.LastKnown(), nil)

	case "leave":
		c.deps.Viewport.Leave(msg.SpotID)
		c.sendMarkers(c.provider.LastKnown(), nil)

	case "filter":
		c.sendMarkers(c.provider.LastKnown(), &msg.Vibe)

	case "reset":
		c.deps.Viewport.Reset()
		c.sendMarkers(c.provider.LastKnown(), nil)

	default:
		log.Printf("Unknown message type: %s", msg.Type)
	}
}

// sendMarkers recomputes the marker view and queues it for this client
func (c *mapClient) sendMarkers(userLocation *geo.Coordinate, filterVibe *string) {
	spots, err := c.deps.Repo.List(context.Background(), spot.Filter{})
	if err != nil {
		log.Printf("Failed to list spots for markers: %v", err)
		return
	}

	state := c.deps.Viewport.State()
	state.UserLocation = userLocation
	if filterVibe != nil {
		state.FilterVibe = *filterVibe
	}

	view := c.deps.Viewport.Render(spots, state)

	payload, err := json.Marshal(map[string]interface{}{
		"type": "markers",
		"view": view,
		"time": time.Now(),
	})
	if err != nil {
		log.Printf("Failed to marshal marker view: %v", err)
		return
	}

	select {
	case c.send <- payload:
	default:
		// Slow client; drop this refresh rather than block the watch.
	}
}

// sendError queues an error advisory for this client
func (c *mapClient) sendError(message string) {
	payload, _ := json.Marshal(map[string]string{
		"type":  "error",
		"error": message,
	})

	select {
	case c.send <- payload:
	default:
	}
}

// subscribeToEvents subscribes this client to the map event subjects
func (c *mapClient) subscribeToEvents() error {
	if c.deps.NatsConn == nil {
		return nil
	}

	createdSub, err := c.deps.NatsConn.Subscribe(fmt.Sprintf("%s.created", c.deps.SpotsTopic), func(msg *nats.Msg) {
		c.send <- msg.Data
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to created events: %w", err)
	}
	c.subs = append(c.subs, createdSub)

	selectedSub, err := c.deps.NatsConn.Subscribe(fmt.Sprintf("%s.selected", c.deps.MapTopic), func(msg *nats.Msg) {
		c.send <- msg.Data
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to selection events: %w", err)
	}
	c.subs = append(c.subs, selectedSub)

	return nil
}

// close releases the client's watch, subscriptions and connection
func (c *mapClient) close() {
	if c.watch != nil {
		c.watch.Stop()
	}

	for _, sub := range c.subs {
		sub.Unsubscribe()
	}

	c.conn.Close()
}
