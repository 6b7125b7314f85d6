package eventbus

import (
	"fmt"
	"log"
	"sync"
	"time"
)

// 事件类型
const (
	EventAttackRecorded     = "attack_recorded"
	EventExperimentFinished = "experiment_finished"
)

// Event 事件接口
type Event interface {
	GetType() string
	GetTimestamp() time.Time
	GetData() map[string]interface{}
}

// EventHandler 事件处理器接口
type EventHandler interface {
	HandleEvent(event Event) error
}

// EventBus 事件总线接口
type EventBus interface {
	Publish(event Event) error
	Subscribe(handler EventHandler) error
	Unsubscribe(handler EventHandler) error
}

// eventBus 事件总线实现
type eventBus struct {
	handlers map[EventHandler]struct{}
	mu       sync.RWMutex
}

// NewEventBus 创建新的事件总线
func NewEventBus() EventBus {
	return &eventBus{
		handlers: make(map[EventHandler]struct{}),
	}
}

// Publish 发布事件
func (eb *eventBus) Publish(event Event) error {
	if event == nil {
		return fmt.Errorf("event cannot be nil")
	}

	eb.mu.RLock()
	defer eb.mu.RUnlock()

	// 异步处理事件，避免阻塞发布者
	for handler := range eb.handlers {
		go func(h EventHandler) {
			if err := h.HandleEvent(event); err != nil {
				// 记录错误，但不影响其他处理器
				log.Printf("event handler error: %v", err)
			}
		}(handler)
	}

	return nil
}

// Subscribe 订阅事件
func (eb *eventBus) Subscribe(handler EventHandler) error {
	if handler == nil {
		return fmt.Errorf("handler cannot be nil")
	}

	eb.mu.Lock()
	defer eb.mu.Unlock()

	eb.handlers[handler] = struct{}{}
	return nil
}

// Unsubscribe 取消订阅
func (eb *eventBus) Unsubscribe(handler EventHandler) error {
	if handler == nil {
		return fmt.Errorf("handler cannot be nil")
	}

	eb.mu.Lock()
	defer eb.mu.Unlock()

	delete(eb.handlers, handler)
	return nil
}

// BaseEvent 基础事件结构
type BaseEvent struct {
	Type      string                 `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Data      map[string]interface{} `json:"data"`
}

func (be *BaseEvent) GetType() string {
	return be.Type
}

func (be *BaseEvent) GetTimestamp() time.Time {
	return be.Timestamp
}

func (be *BaseEvent) GetData() map[string]interface{} {
	return be.Data
}

// NewBaseEvent 创建基础事件
func NewBaseEvent(eventType string, data map[string]interface{}) *BaseEvent {
	return &BaseEvent{
		Type:      eventType,
		Timestamp: time.Now(),
		Data:      data,
	}
}
