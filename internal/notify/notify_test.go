package notify

import (
	"errors"
	"slices"
	"testing"
	"time"
)

func TestDesktopArgs(t *testing.T) {
	d := NewDesktop(true, 4*time.Second)

	got := d.args(Notice{Level: LevelError, Title: "could not move task", Body: "not found"})
	want := []string{"-u", "critical", "-i", "dialog-error-symbolic", "-t", "4000", "-a", "tablero", "could not move task", "not found"}
	if !slices.Equal(got, want) {
		t.Errorf("args = %q\nwant %q", got, want)
	}

	got = NewDesktop(true, 0).args(Notice{Level: LevelSuccess, Title: "moved"})
	want = []string{"-u", "low", "-a", "tablero", "moved"}
	if !slices.Equal(got, want) {
		t.Errorf("args = %q\nwant %q", got, want)
	}
}

func TestDisabledDesktopDoesNothing(t *testing.T) {
	d := NewDesktop(false, 0)
	d.command = "/nonexistent/notify-send"
	if err := d.Send(Notice{Title: "x"}); err != nil {
		t.Errorf("disabled notifier returned %v", err)
	}

	d.SetEnabled(true)
	if !d.IsEnabled() {
		t.Fatal("expected enabled")
	}
	if err := d.Send(Notice{Title: "x"}); err == nil {
		t.Error("expected an error from a missing binary")
	}
}

func TestToastsExpire(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	q := NewToasts(0)
	q.now = func() time.Time { return now }

	if q.TTL() != DefaultToastTTL {
		t.Fatalf("TTL() = %v", q.TTL())
	}

	first := q.Push(Notice{Title: "first"})
	now = now.Add(2 * time.Second)
	q.Send(Notice{Level: LevelError, Title: "second"})

	cur, ok := q.Current()
	if !ok || cur.Title != "second" {
		t.Fatalf("Current() = %+v, %v", cur, ok)
	}

	q.Dismiss(cur.ID)
	cur, ok = q.Current()
	if !ok || cur.ID != first.ID {
		t.Fatalf("after dismiss Current() = %+v", cur)
	}

	now = now.Add(3 * time.Second)
	if n := q.Expire(); n != 0 {
		t.Errorf("Expire() left %d toasts", n)
	}
	if _, ok := q.Current(); ok {
		t.Error("expected no toast after expiry")
	}
}

func TestMulti(t *testing.T) {
	var got []string
	record := SenderFunc(func(n Notice) error {
		got = append(got, n.Title)
		return nil
	})
	boom := errors.New("boom")
	failing := SenderFunc(func(Notice) error { return boom })

	err := Multi(record, nil, failing, record).Send(Notice{Title: "hi"})
	if !errors.Is(err, boom) {
		t.Errorf("Multi error = %v", err)
	}
	if len(got) != 2 {
		t.Errorf("recorded %d notices, want 2", len(got))
	}
}

func TestAsync(t *testing.T) {
	done := make(chan Notice, 1)
	s := Async(SenderFunc(func(n Notice) error {
		done <- n
		return errors.New("ignored")
	}), nil)

	if err := s.Send(Notice{Title: "later"}); err != nil {
		t.Fatalf("Async returned %v", err)
	}
	select {
	case n := <-done:
		if n.Title != "later" {
			t.Errorf("got %q", n.Title)
		}
	case <-time.After(time.Second):
		t.Fatal("notice never delivered")
	}
}
