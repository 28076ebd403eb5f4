package models

// Message types exchanged with the docs view service.
const (
	MessageTypeSubscribe        = "docs.subscribe"
	MessageTypeViewRequest      = "docs.view.request"
	MessageTypeViewData         = "docs.view.data"
	MessageTypeCacheInvalidated = "docs.cache.invalidated"
	MessageTypeSubscribed       = "docs.subscribed"
	MessageTypeError            = "error"
)

// Envelope is the part shared by every message: the type discriminator.
type Envelope struct {
	Type string `json:"type"`
}

// SubscribeMessage registers the connection for invalidation pushes of an
// organization.
type SubscribeMessage struct {
	Type string `json:"type"`
	Org  string `json:"org"`
}

// NewSubscribeMessage builds a docs.subscribe message for org.
func NewSubscribeMessage(org string) SubscribeMessage {
	return SubscribeMessage{Type: MessageTypeSubscribe, Org: org}
}

// ViewRequestMessage asks the service for a single view.
type ViewRequestMessage struct {
	Type      string `json:"type"`
	Org       string `json:"org"`
	ViewID    string `json:"view_id"`
	RequestID string `json:"request_id"`
}

// NewViewRequestMessage builds a docs.view.request message.
func NewViewRequestMessage(org, viewID, requestID string) ViewRequestMessage {
	return ViewRequestMessage{
		Type:      MessageTypeViewRequest,
		Org:       org,
		ViewID:    viewID,
		RequestID: requestID,
	}
}

// ViewDataMessage is the service response carrying a computed view.
type ViewDataMessage struct {
	Type string `json:"type"`
	ViewData
}

// SubscribedMessage acknowledges a docs.subscribe.
type SubscribedMessage struct {
	Type string `json:"type"`
	Org  string `json:"org"`
}

// CacheInvalidatedMessage tells subscribers that cached views of Org are stale.
type CacheInvalidatedMessage struct {
	Type      string `json:"type"`
	Org       string `json:"org"`
	Reason    string `json:"reason,omitempty"`
	EventType string `json:"event_type,omitempty"`
}

// ErrorMessage is an explicit server-side failure.
type ErrorMessage struct {
	Type      string `json:"type"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}
