package main

import (
	"testing"
	"time"

	"github.com/dori/tablero/internal/model"
)

// Wednesday
var refNow = time.Date(2026, 3, 4, 10, 30, 0, 0, time.UTC)

func TestParseQuickAdd(t *testing.T) {
	tests := []struct {
		input    string
		title    string
		client   string
		priority model.Priority
		due      string
	}{
		{"Rebrand", "Rebrand", "", "", ""},
		{"Rebrand client:acme_corp !high", "Rebrand", "acme corp", model.PriorityHigh, ""},
		{"Site refresh due:friday !auto", "Site refresh", "", model.PriorityAuto, "2026-03-06"},
		{"Site refresh due:Fri", "Site refresh", "", "", "2026-03-06"},
		{"Launch !HIGH due:2026-04-01", "Launch", "", model.PriorityHigh, "2026-04-01"},
		{"Fix !bogus flag", "Fix !bogus flag", "", "", ""},
		{"Audit due:tomorrow", "Audit", "", "", "2026-03-05"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			q, err := parseQuickAdd(tt.input, refNow, model.Priority.ValidForProject)
			if err != nil {
				t.Fatalf("parseQuickAdd: %v", err)
			}
			if q.Title != tt.title {
				t.Errorf("Title = %q, want %q", q.Title, tt.title)
			}
			if q.Client != tt.client {
				t.Errorf("Client = %q, want %q", q.Client, tt.client)
			}
			if q.Priority != tt.priority {
				t.Errorf("Priority = %q, want %q", q.Priority, tt.priority)
			}
			got := ""
			if q.Deadline != nil {
				got = q.Deadline.Format("2006-01-02")
			}
			if got != tt.due {
				t.Errorf("Deadline = %q, want %q", got, tt.due)
			}
		})
	}
}

func TestParseQuickAddErrors(t *testing.T) {
	tests := []struct {
		input string
		valid func(model.Priority) bool
	}{
		{"Thing !critical", model.Priority.ValidForProject},
		{"Thing !auto", model.Priority.ValidForTask},
		{"Thing due:someday", model.Priority.ValidForProject},
		{"!high due:today", model.Priority.ValidForProject},
	}

	for _, tt := range tests {
		if _, err := parseQuickAdd(tt.input, refNow, tt.valid); err == nil {
			t.Errorf("parseQuickAdd(%q): expected an error", tt.input)
		}
	}
}

func TestParseNaturalDate(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"today", "2026-03-04"},
		{"tom", "2026-03-05"},
		{"nextweek", "2026-03-11"},
		// Same weekday means next week
		{"wednesday", "2026-03-11"},
		{"wed", "2026-03-11"},
		{"mon", "2026-03-09"},
		{"sunday", "2026-03-08"},
		{"Friday", "2026-03-06"},
		{"FRI", "2026-03-06"},
		{"Today", "2026-03-04"},
		{"2026-12-24", "2026-12-24"},
		{"12/24/2026", "2026-12-24"},
		{"jan2", "2026-01-02"},
		{"nope", ""},
	}

	for _, tt := range tests {
		got := ""
		if d := parseNaturalDate(tt.input, refNow); d != nil {
			got = d.Format("2006-01-02")
			if d.Hour() != 23 || d.Minute() != 59 {
				t.Errorf("%s: deadline at %s, want end of day", tt.input, d.Format(time.Kitchen))
			}
		}
		if got != tt.want {
			t.Errorf("parseNaturalDate(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
