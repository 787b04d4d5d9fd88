package drag

import "errors"

// ErrSessionActive is returned when a drag starts while another one is in
// progress
var ErrSessionActive = errors.New("drag already in progress")

// DefaultThreshold is the distance in cells the pointer must travel before
// a press becomes a drag
const DefaultThreshold = 1

// State is the phase of a drag session
type State int

const (
	Idle State = iota
	Active
	Resolving
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Active:
		return "active"
	case Resolving:
		return "resolving"
	default:
		return "unknown"
	}
}

// Session tracks at most one drag. The zero value is an idle session with
// the default threshold.
type Session struct {
	state     State
	threshold int

	// Candidate recorded by Press, promoted by Move
	armed  bool
	startX int
	startY int

	payload Payload
	target  *Target
	x, y    int
}

// NewSession returns an idle session. A threshold below 1 uses the default.
func NewSession(threshold int) *Session {
	return &Session{threshold: threshold}
}

func (s *Session) activation() int {
	if s.threshold < 1 {
		return DefaultThreshold
	}
	return s.threshold
}

// State returns the current phase
func (s *Session) State() State { return s.state }

// Payload returns the dragged entity, nil unless active or resolving
func (s *Session) Payload() Payload {
	if s.state == Idle {
		return nil
	}
	return s.payload
}

// Target returns the hovered drop zone, nil when outside every zone
func (s *Session) Target() *Target {
	if s.state == Idle || s.target == nil {
		return nil
	}
	t := *s.target
	return &t
}

// Armed reports whether a press is waiting to become a drag
func (s *Session) Armed() bool { return s.state == Idle && s.armed }

// Position returns the last pointer position seen
func (s *Session) Position() (int, int) { return s.x, s.y }

// Press records a candidate drag at (x, y). It becomes active once the
// pointer moves past the threshold.
func (s *Session) Press(p Payload, x, y int) error {
	if s.state != Idle {
		return ErrSessionActive
	}
	s.armed = true
	s.payload = p
	s.startX, s.startY = x, y
	s.x, s.y = x, y
	s.target = nil
	return nil
}

// Move updates the pointer position and reports whether the call
// activated the session.
func (s *Session) Move(x, y int) bool {
	s.x, s.y = x, y
	if s.state != Idle || !s.armed {
		return false
	}
	if chebyshev(s.startX, s.startY, x, y) < s.activation() {
		return false
	}
	s.armed = false
	s.state = Active
	return true
}

// Begin starts a drag immediately, skipping the threshold
func (s *Session) Begin(p Payload) error {
	if s.state != Idle {
		return ErrSessionActive
	}
	s.armed = false
	s.payload = p
	s.target = nil
	s.state = Active
	return nil
}

// Hover records the zone under the pointer; nil means no zone
func (s *Session) Hover(t *Target) {
	if s.state != Active {
		return
	}
	if t == nil {
		s.target = nil
		return
	}
	tt := *t
	s.target = &tt
}

// Release ends an active drag. Over a zone the session moves to
// Resolving and the drop is returned; elsewhere the drag is cancelled.
// A release that never passed the threshold is a click and also returns
// false.
func (s *Session) Release() (Drop, bool) {
	if s.state != Active {
		s.reset()
		return Drop{}, false
	}
	if s.target == nil {
		s.reset()
		return Drop{}, false
	}
	s.state = Resolving
	return Drop{Payload: s.payload, Target: *s.target}, true
}

// Finish returns a resolving session to idle
func (s *Session) Finish() {
	if s.state == Resolving {
		s.reset()
	}
}

// Cancel abandons an armed or active drag without dropping
func (s *Session) Cancel() {
	if s.state == Resolving {
		return
	}
	s.reset()
}

func (s *Session) reset() {
	s.state = Idle
	s.armed = false
	s.payload = nil
	s.target = nil
}

func chebyshev(x0, y0, x1, y1 int) int {
	return max(abs(x1-x0), abs(y1-y0))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
