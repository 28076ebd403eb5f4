package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-docs-sync/internal/logger"
	"github.com/gorilla/websocket"
)

type wsTransport struct {
	endpoint     string
	handler      EventHandler
	writeTimeout time.Duration
	cancel       context.CancelFunc

	mu    sync.Mutex
	conn  *websocket.Conn
	state ConnState

	// gorilla/websocket allows one concurrent writer
	writeMu   sync.Mutex
	closeOnce sync.Once

	logger *logger.Logger
}

func (t *wsTransport) run(ctx context.Context, dialer *websocket.Dialer, maxMessageSize int64) {
	defer t.cancel()

	conn, _, err := dialer.DialContext(ctx, t.endpoint, nil)
	if err != nil {
		if t.State() == StateClosed {
			t.handler.OnClose()
			return
		}
		t.logger.Err(err).Msg("websocket dial failed")
		t.setState(StateErrored)
		t.handler.OnError(fmt.Errorf("%w: %w", ErrConnection, err))
		t.handler.OnClose()
		return
	}

	if maxMessageSize > 0 {
		conn.SetReadLimit(maxMessageSize)
	}

	t.mu.Lock()
	if t.state == StateClosed {
		// closed while the handshake was in flight
		t.mu.Unlock()
		_ = conn.Close()
		t.handler.OnClose()
		return
	}
	t.conn = conn
	t.state = StateOpen
	t.mu.Unlock()

	t.logger.Debug().Msg("websocket connected")
	t.handler.OnOpen()
	t.readLoop(conn)
}

func (t *wsTransport) readLoop(conn *websocket.Conn) {
	for {
		messageType, payload, err := conn.ReadMessage()
		if err != nil {
			mapped := mapReadError(err)
			if t.State() == StateClosed || mapped == nil {
				t.setState(StateClosed)
				_ = conn.Close()
				t.logger.Debug().Msg("websocket closed")
				t.handler.OnClose()
				return
			}

			t.logger.Err(err).Msg("websocket read failed")
			t.setState(StateErrored)
			_ = conn.Close()
			t.handler.OnError(mapped)
			t.handler.OnClose()
			return
		}

		switch messageType {
		case websocket.TextMessage, websocket.BinaryMessage:
			t.handler.OnMessage(payload)
		default:
			t.logger.Debug().Int("message_type", messageType).Msg("skipping non-data frame")
		}
	}
}

// Send implements [Transport].
func (t *wsTransport) Send(ctx context.Context, msg any) error {
	t.mu.Lock()
	conn, state := t.conn, t.state
	t.mu.Unlock()

	if state != StateOpen || conn == nil {
		return ErrNotConnected
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode outbound message: %w", err)
	}

	var deadline time.Time
	if t.writeTimeout > 0 {
		deadline = time.Now().Add(t.writeTimeout)
	}
	if d, ok := ctx.Deadline(); ok && (deadline.IsZero() || d.Before(deadline)) {
		deadline = d
	}

	t.writeMu.Lock()
	defer t.writeMu.Unlock()

	_ = conn.SetWriteDeadline(deadline)
	if err = conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		// a write deadline timeout cannot be recovered on a websocket
		t.setState(StateErrored)
		return fmt.Errorf("%w: %w", ErrConnection, err)
	}

	return nil
}

// Close implements [Transport].
func (t *wsTransport) Close() error {
	var err error
	t.closeOnce.Do(func() {
		t.mu.Lock()
		conn := t.conn
		t.state = StateClosed
		t.mu.Unlock()

		t.cancel()

		if conn == nil {
			return
		}

		timeout := t.writeTimeout
		if timeout <= 0 {
			timeout = time.Second
		}
		_ = conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(timeout),
		)
		err = conn.Close()
	})

	return err
}

// State implements [Transport].
func (t *wsTransport) State() ConnState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Endpoint implements [Transport].
func (t *wsTransport) Endpoint() string {
	return t.endpoint
}

func (t *wsTransport) setState(state ConnState) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == StateClosed {
		return
	}
	t.state = state
}
