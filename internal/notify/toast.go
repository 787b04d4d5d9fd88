package notify

import "time"

// DefaultToastTTL is how long a toast stays on screen
const DefaultToastTTL = 4 * time.Second

// Toast is a notice shown in the status bar until it expires
type Toast struct {
	Notice
	ID      uint64
	Expires time.Time
}

// Toasts queues notices for the status bar. The newest toast is shown.
type Toasts struct {
	ttl    time.Duration
	now    func() time.Time
	nextID uint64
	items  []Toast
}

// NewToasts creates a toast queue. A ttl of zero uses DefaultToastTTL.
func NewToasts(ttl time.Duration) *Toasts {
	if ttl <= 0 {
		ttl = DefaultToastTTL
	}
	return &Toasts{ttl: ttl, now: time.Now}
}

// TTL returns how long each toast lives
func (t *Toasts) TTL() time.Duration { return t.ttl }

// Send queues a toast
func (t *Toasts) Send(n Notice) error {
	t.Push(n)
	return nil
}

// Push queues a toast and returns it
func (t *Toasts) Push(n Notice) Toast {
	t.nextID++
	toast := Toast{Notice: n, ID: t.nextID, Expires: t.now().Add(t.ttl)}
	t.items = append(t.items, toast)
	return toast
}

// Current returns the newest unexpired toast
func (t *Toasts) Current() (Toast, bool) {
	now := t.now()
	for i := len(t.items) - 1; i >= 0; i-- {
		if now.Before(t.items[i].Expires) {
			return t.items[i], true
		}
	}
	return Toast{}, false
}

// Expire drops toasts past their deadline and reports how many remain
func (t *Toasts) Expire() int {
	now := t.now()
	kept := t.items[:0]
	for _, item := range t.items {
		if now.Before(item.Expires) {
			kept = append(kept, item)
		}
	}
	t.items = kept
	return len(t.items)
}

// Dismiss removes a toast by ID
func (t *Toasts) Dismiss(id uint64) {
	for i, item := range t.items {
		if item.ID == id {
			t.items = append(t.items[:i], t.items[i+1:]...)
			return
		}
	}
}
