// Package input defines the event type exchanged between the capture
// listener and the overlay loop.
package input

// Kind distinguishes the two event variants.
type Kind uint8

const (
	KindKeyPress Kind = iota
	KindMouseClick
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindKeyPress:
		return "key_press"
	case KindMouseClick:
		return "mouse_click"
	default:
		return "unknown"
	}
}

// Bus topics for input events. The overlay subscribes to TopicPrefix.
const (
	TopicPrefix = "input."
	TopicKey    = "input.key"
	TopicMouse  = "input.mouse"
)

// Event is a single resolved key press or mouse click. Events are immutable
// once produced and are consumed exactly once by the overlay loop.
type Event struct {
	Kind  Kind
	Label string
}

// Topic returns the bus topic for this event's kind.
func (e Event) Topic() string {
	if e.Kind == KindMouseClick {
		return TopicMouse
	}
	return TopicKey
}
