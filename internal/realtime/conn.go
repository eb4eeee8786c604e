package realtime

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/fasthttp/websocket"
)

const (
	// writeBuffer bounds how many outbound events may queue per connection
	// before senders start timing out.
	writeBuffer = 100

	writeTimeout = 5 * time.Second
)

// sink is the outbound half of a connection. Sessions write through it so
// tests can substitute an in-memory fake.
type sink interface {
	WriteEvent(event string, data any) error
	Close() error
}

// Conn wraps a websocket connection with a single writer goroutine. All
// writes funnel through writeCh so concurrent broadcasts never interleave
// frames.
type Conn struct {
	ws        *websocket.Conn
	writeCh   chan []byte
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
}

func NewConn(ws *websocket.Conn) *Conn {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Conn{
		ws:      ws,
		writeCh: make(chan []byte, writeBuffer),
		ctx:     ctx,
		cancel:  cancel,
	}

	go c.writeLoop()

	return c
}

func (c *Conn) writeLoop() {
	for {
		select {
		case data := <-c.writeCh:
			if err := c.ws.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
				return
			}
			if err := c.ws.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-c.ctx.Done():
			return
		}
	}
}

// WriteEvent queues an outbound event. It fails fast when the connection is
// closed and times out when the peer stops draining.
func (c *Conn) WriteEvent(event string, data any) error {
	select {
	case <-c.ctx.Done():
		return ErrConnClosed
	default:
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	frame, err := json.Marshal(Envelope{Event: event, Data: raw})
	if err != nil {
		return err
	}

	select {
	case c.writeCh <- frame:
		return nil
	case <-time.After(writeTimeout):
		return ErrWriteTimeout
	case <-c.ctx.Done():
		return ErrConnClosed
	}
}

// ReadEnvelope blocks for the next inbound event.
func (c *Conn) ReadEnvelope() (*Envelope, error) {
	_, data, err := c.ws.ReadMessage()
	if err != nil {
		return nil, err
	}
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, ErrBadPayload
	}
	return &env, nil
}

func (c *Conn) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.cancel()
		err = c.ws.Close()
	})
	return err
}
