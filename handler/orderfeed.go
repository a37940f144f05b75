package handler

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"

	"github.com/zacharvey88/teatime-collective-sub000/constants"
	"github.com/zacharvey88/teatime-collective-sub000/database"
	"github.com/zacharvey88/teatime-collective-sub000/model"
)

var (
	feedClients = make(map[*websocket.Conn]bool)
	feedMu      sync.Mutex
	feedOnce    sync.Once
)

// startFeedPump runs one Redis subscriber per process and fans incoming
// events out to every connected dashboard.
func startFeedPump() {
	pubsub := database.Redis.Subscribe(context.Background(), constants.ORDER_FEED_CHANNEL)
	go func() {
		for msg := range pubsub.Channel() {
			payload := []byte(msg.Payload)

			feedMu.Lock()
			for conn := range feedClients {
				if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
					conn.Close()
					delete(feedClients, conn)
				}
			}
			feedMu.Unlock()
		}
	}()
}

// OrderFeed streams newly submitted orders to connected admin dashboards.
// Fan-out goes through Redis so every instance of the service sees every
// submission.
func OrderFeed(c *websocket.Conn) {
	feedOnce.Do(startFeedPump)

	feedMu.Lock()
	feedClients[c] = true
	feedMu.Unlock()

	defer func() {
		feedMu.Lock()
		delete(feedClients, c)
		feedMu.Unlock()
		c.Close()
	}()

	// block until the client goes away; the feed is write-only
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}

// PublishNewOrder pushes a submitted order onto the feed channel. Failures
// are logged and swallowed; the feed is best-effort.
func PublishNewOrder(order model.Order) {
	payload, err := json.Marshal(map[string]interface{}{
		"event":          "order.created",
		"orderId":        order.ID,
		"publicCode":     order.PublicCode,
		"customerName":   order.CustomerName,
		"estimatedTotal": order.EstimatedTotalPence.Format(),
		"itemCount":      len(order.Items),
		"createdAt":      order.CreatedAt,
	})
	if err != nil {
		return
	}
	if err := database.Redis.Publish(context.Background(), constants.ORDER_FEED_CHANNEL, payload).Err(); err != nil {
		log.Printf("order feed publish failed: %v", err)
	}
}
