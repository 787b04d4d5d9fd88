package drag

import "slices"

// Rect is a rectangle of terminal cells
type Rect struct {
	X, Y int
	W, H int
}

// Contains reports whether the cell (x, y) lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

func (r Rect) area() int { return r.W * r.H }

// Zone is a drop zone on screen. Accepts lists the payload kinds it takes;
// an empty list accepts everything.
type Zone struct {
	Rect    Rect
	Target  Target
	Accepts []Kind
}

func (z Zone) accepts(k Kind) bool {
	return len(z.Accepts) == 0 || slices.Contains(z.Accepts, k)
}

// Handle is a draggable region on screen
type Handle struct {
	Rect    Rect
	Payload Payload
}

// Layout is the hit map a view produces for the frame it rendered
type Layout struct {
	Zones   []Zone
	Handles []Handle
}

// AddZone registers a drop zone
func (l *Layout) AddZone(r Rect, t Target, accepts ...Kind) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	l.Zones = append(l.Zones, Zone{Rect: r, Target: t, Accepts: accepts})
}

// AddHandle registers a draggable region
func (l *Layout) AddHandle(r Rect, p Payload) {
	if r.W <= 0 || r.H <= 0 || p == nil {
		return
	}
	l.Handles = append(l.Handles, Handle{Rect: r, Payload: p})
}

// Offset shifts every rectangle, used when a view is drawn below a header
func (l Layout) Offset(dx, dy int) Layout {
	out := Layout{
		Zones:   make([]Zone, len(l.Zones)),
		Handles: make([]Handle, len(l.Handles)),
	}
	for i, z := range l.Zones {
		z.Rect.X += dx
		z.Rect.Y += dy
		out.Zones[i] = z
	}
	for i, h := range l.Handles {
		h.Rect.X += dx
		h.Rect.Y += dy
		out.Handles[i] = h
	}
	return out
}

// TargetAt returns the innermost zone under (x, y) that accepts the
// payload kind. Cards sit inside lanes, so a person chip dropped on a card
// hits the card while a project card dropped there falls through to the
// lane.
func (l Layout) TargetAt(x, y int, k Kind) *Target {
	var best *Zone
	for i := range l.Zones {
		z := &l.Zones[i]
		if !z.Rect.Contains(x, y) || !z.accepts(k) {
			continue
		}
		if best == nil || z.Rect.area() <= best.Rect.area() {
			best = z
		}
	}
	if best == nil {
		return nil
	}
	t := best.Target
	return &t
}

// HandleAt returns the payload of the innermost handle under (x, y)
func (l Layout) HandleAt(x, y int) Payload {
	var best *Handle
	for i := range l.Handles {
		h := &l.Handles[i]
		if !h.Rect.Contains(x, y) {
			continue
		}
		if best == nil || h.Rect.area() <= best.Rect.area() {
			best = h
		}
	}
	if best == nil {
		return nil
	}
	return best.Payload
}

// TargetsFor lists the distinct zones accepting k in layout order, used by
// the keyboard drag mode to cycle through drop zones.
func (l Layout) TargetsFor(k Kind) []Target {
	var out []Target
	for _, z := range l.Zones {
		if z.accepts(k) && !slices.Contains(out, z.Target) {
			out = append(out, z.Target)
		}
	}
	return out
}

// Payloads lists the distinct draggable entities in layout order
func (l Layout) Payloads() []Payload {
	var out []Payload
	for _, h := range l.Handles {
		if !slices.Contains(out, h.Payload) {
			out = append(out, h.Payload)
		}
	}
	return out
}
