package protocol

// Kind discriminates the message variants carried on the wire.
type Kind int

const (
	KindRequest Kind = iota + 1
	KindDistance
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindRequest:
		return "request"
	case KindDistance:
		return "distance"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// CommandGetDistance is the only command the responder serves.
const CommandGetDistance = "GET_DISTANCE"

// Message is a tagged variant over the three wire shapes. Only the fields
// belonging to Kind are meaningful.
type Message struct {
	Kind     Kind
	Command  string  // KindRequest
	Distance float64 // KindDistance, metres
	Reason   string  // KindError
}

// NewRequest builds the distance request the master sends.
func NewRequest() Message {
	return Message{Kind: KindRequest, Command: CommandGetDistance}
}

// NewDistance builds the success response carrying the measured distance.
func NewDistance(d float64) Message {
	return Message{Kind: KindDistance, Distance: d}
}

// NewError builds the failure response carrying a human-readable reason.
func NewError(reason string) Message {
	return Message{Kind: KindError, Reason: reason}
}
