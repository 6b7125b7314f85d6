package handler

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"ddoslab/internal/eventbus"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// feedSubscriber 把事件总线上的攻击事件转发到websocket连接
type feedSubscriber struct {
	events chan eventbus.Event
}

func (f *feedSubscriber) HandleEvent(event eventbus.Event) error {
	if event.GetType() != eventbus.EventAttackRecorded {
		return nil
	}
	// 客户端消费太慢时丢弃，不阻塞总线
	select {
	case f.events <- event:
	default:
	}
	return nil
}

// AttackFeed 攻击实时推送处理器
func AttackFeed(bus eventbus.EventBus) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("websocket升级失败: %v", err)
			return
		}
		defer conn.Close()

		sub := &feedSubscriber{events: make(chan eventbus.Event, 16)}
		bus.Subscribe(sub)
		defer bus.Unsubscribe(sub)

		// 读协程只用来感知断连
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		// 定期ping保活
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				return
			case event := <-sub.events:
				if err := conn.WriteJSON(event); err != nil {
					return
				}
			case <-ticker.C:
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			}
		}
	}
}
