package adapter

import (
	"errors"
	"fmt"

	"github.com/gorilla/websocket"
)

// mapReadError classifies a read failure. It returns nil for an orderly
// close initiated by either side.
func mapReadError(err error) error {
	if err == nil {
		return nil
	}

	if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
		return nil
	}

	if errors.Is(err, websocket.ErrReadLimit) || websocket.IsCloseError(err, websocket.CloseMessageTooBig) {
		return fmt.Errorf("%w: %w: %w", ErrConnection, ErrMessageTooLarge, err)
	}

	var closeErr *websocket.CloseError
	if errors.As(err, &closeErr) {
		return fmt.Errorf("%w: closed with code %d: %s", ErrConnection, closeErr.Code, closeErr.Text)
	}

	return fmt.Errorf("%w: %w", ErrConnection, err)
}
