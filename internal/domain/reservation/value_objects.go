package reservation

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrMissingFields   = errors.New("Missing required fields: court_id, starts_at, and ends_at are required")
	ErrInvalidDatetime = errors.New("Invalid datetime format. Use ISO 8601 format.")
	ErrEndBeforeStart  = errors.New("End time must be after start time")
	ErrStartInPast     = errors.New("Cannot book in the past")
)

// accepted in order; zone-less layouts are read as UTC
var datetimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// TimeSlot keeps both the parsed instants and the caller's original text,
// which is what gets forwarded upstream.
type TimeSlot struct {
	start    time.Time
	end      time.Time
	rawStart string
	rawEnd   string
}

func NewTimeSlot(start, end string, now time.Time) (TimeSlot, error) {
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	if start == "" || end == "" {
		return TimeSlot{}, ErrMissingFields
	}

	s, err := parseDatetime(start)
	if err != nil {
		return TimeSlot{}, err
	}
	e, err := parseDatetime(end)
	if err != nil {
		return TimeSlot{}, err
	}

	if !e.After(s) {
		return TimeSlot{}, ErrEndBeforeStart
	}
	if s.Before(now) {
		return TimeSlot{}, ErrStartInPast
	}

	return TimeSlot{start: s, end: e, rawStart: start, rawEnd: end}, nil
}

func parseDatetime(v string) (time.Time, error) {
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDatetime
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) RawStart() string {
	return ts.rawStart
}

func (ts TimeSlot) RawEnd() string {
	return ts.rawEnd
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

// NewRequest validates a reservation request against now.
func NewRequest(courtID, start, end string, now time.Time) (Request, error) {
	if strings.TrimSpace(courtID) == "" {
		return Request{}, ErrMissingFields
	}
	slot, err := NewTimeSlot(start, end, now)
	if err != nil {
		return Request{}, err
	}
	return Request{CourtID: strings.TrimSpace(courtID), Slot: slot}, nil
}
