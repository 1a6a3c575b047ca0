package month

import (
	"time"

	"github.com/jinzhu/now"
)

const Layout = "2006-01"

// ID is a calendar-month key, e.g. "2024-06". Lexicographic order of IDs
// equals chronological order.
type ID string

func FromTime(t time.Time) ID {
	return ID(t.Format(Layout))
}

// Current returns the ID of the real-world month in progress.
func Current() ID {
	return FromTime(now.BeginningOfMonth())
}

func Parse(s string) (ID, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return "", err
	}
	return FromTime(t), nil
}

func (id ID) String() string {
	return string(id)
}

// Next returns the chronological successor of id.
func (id ID) Next() ID {
	t, err := time.Parse(Layout, string(id))
	if err != nil {
		return id
	}
	return FromTime(t.AddDate(0, 1, 0))
}

func (id ID) Before(other ID) bool {
	return id < other
}
