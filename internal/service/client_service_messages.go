package service

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-docs-sync/models"
)

// unknownMessage is returned by decodeInbound for types the client does not
// handle.
type unknownMessage struct {
	Type string
}

// decodeInbound decodes payload into the typed message for its "type"
// discriminator: [models.ViewDataMessage], [models.SubscribedMessage],
// [models.CacheInvalidatedMessage], [models.ErrorMessage] or unknownMessage.
// Undecodable payloads return an error wrapping [ErrMalformedMessage].
func decodeInbound(payload []byte) (any, error) {
	var env models.Envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedMessage, err)
	}

	var msg any
	switch env.Type {
	case models.MessageTypeViewData:
		msg = &models.ViewDataMessage{}
	case models.MessageTypeSubscribed:
		msg = &models.SubscribedMessage{}
	case models.MessageTypeCacheInvalidated:
		msg = &models.CacheInvalidatedMessage{}
	case models.MessageTypeError:
		msg = &models.ErrorMessage{}
	default:
		return unknownMessage{Type: env.Type}, nil
	}

	if err := json.Unmarshal(payload, msg); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedMessage, env.Type, err)
	}

	return msg, nil
}
