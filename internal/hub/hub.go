package hub

import (
	"context"
	"log/slog"
)

// Subscriber is one connected client. The Hub writes to Send; the client's
// write loop drains it.
type Subscriber struct {
	Send chan []byte
}

// NewSubscriber creates a subscriber with a small outbound buffer.
func NewSubscriber() *Subscriber {
	return &Subscriber{Send: make(chan []byte, 8)}
}

// Hub maintains the set of active subscribers and broadcasts messages to them.
// All subscriber bookkeeping happens on the Run goroutine.
type Hub struct {
	subscribers map[*Subscriber]bool

	// Broadcast delivers a message to every subscriber.
	Broadcast chan []byte

	Register   chan *Subscriber
	Unregister chan *Subscriber

	count chan chan int
	done  chan struct{}
}

// NewHub creates and returns a new Hub instance.
func NewHub() *Hub {
	return &Hub{
		Broadcast:   make(chan []byte),
		Register:    make(chan *Subscriber),
		Unregister:  make(chan *Subscriber),
		subscribers: make(map[*Subscriber]bool),
		count:       make(chan chan int),
		done:        make(chan struct{}),
	}
}

// Run processes hub traffic until ctx is canceled. It must run in its own
// goroutine and may only be called once.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for subscriber := range h.subscribers {
				close(subscriber.Send)
				delete(h.subscribers, subscriber)
			}
			return

		case subscriber := <-h.Register:
			h.subscribers[subscriber] = true
			slog.Debug("Live reload client registered", "total_subscribers", len(h.subscribers))

		case subscriber := <-h.Unregister:
			if _, ok := h.subscribers[subscriber]; ok {
				delete(h.subscribers, subscriber)
				close(subscriber.Send)
				slog.Debug("Live reload client unregistered", "total_subscribers", len(h.subscribers))
			}

		case message := <-h.Broadcast:
			slog.Debug("Broadcasting message", "recipient_count", len(h.subscribers))
			for subscriber := range h.subscribers {
				// A full buffer means the client is stuck; drop it rather than block everyone.
				select {
				case subscriber.Send <- message:
				default:
					close(subscriber.Send)
					delete(h.subscribers, subscriber)
					slog.Warn("Unregistering slow subscriber", "total_subscribers", len(h.subscribers))
				}
			}

		case reply := <-h.count:
			reply <- len(h.subscribers)
		}
	}
}

// Done is closed once Run has returned.
func (h *Hub) Done() <-chan struct{} {
	return h.done
}

// Join registers s. It reports false when the hub has already stopped, in
// which case s is never served.
func (h *Hub) Join(s *Subscriber) bool {
	select {
	case h.Register <- s:
		return true
	case <-h.done:
		return false
	}
}

// Leave unregisters s. It is a no-op once the hub has stopped.
func (h *Hub) Leave(s *Subscriber) {
	select {
	case h.Unregister <- s:
	case <-h.done:
	}
}

// Count returns the number of registered subscribers, or 0 once the hub has stopped.
func (h *Hub) Count() int {
	reply := make(chan int, 1)
	select {
	case h.count <- reply:
		return <-reply
	case <-h.done:
		return 0
	}
}
