package adapter

// ConnState is the lifecycle state of a [Transport].
type ConnState int

const (
	StateConnecting ConnState = iota
	StateOpen
	StateClosed
	StateErrored
)

func (s ConnState) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	case StateErrored:
		return "errored"
	default:
		return "unknown"
	}
}
