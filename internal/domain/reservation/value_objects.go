package reservation

import (
	"errors"
	"time"
)

var (
	ErrInvalidTimeRange = errors.New("end time must be after start time")
	ErrInvalidStatus    = errors.New("invalid reservation status")
)

// WireTimeFormat is the LocalDateTime layout the services exchange.
// No timezone is implied beyond what the server returns.
const WireTimeFormat = "2006-01-02T15:04:05"

type TimeRange struct {
	start time.Time
	end   time.Time
}

func NewTimeRange(start, end time.Time) (TimeRange, error) {
	if !end.After(start) {
		return TimeRange{}, ErrInvalidTimeRange
	}
	return TimeRange{start: start, end: end}, nil
}

func (tr TimeRange) Start() time.Time {
	return tr.start
}

func (tr TimeRange) End() time.Time {
	return tr.end
}

func (tr TimeRange) Duration() time.Duration {
	return tr.end.Sub(tr.start)
}

func (tr TimeRange) StartWire() string {
	return tr.start.Format(WireTimeFormat)
}

func (tr TimeRange) EndWire() string {
	return tr.end.Format(WireTimeFormat)
}

type Note struct {
	value string
}

func NewNote(value string) Note {
	return Note{value: value}
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
