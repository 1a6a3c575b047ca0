package user

import (
	"max.ks1230/budget-bot/internal/entity/month"
)

// Record is the per-user session state that lives outside the month
// snapshot: the month the user is currently working on.
type Record struct {
	currentMonth month.ID
}

// CurrentMonthOrDefault falls back to def when the user has not loaded any
// month yet.
func (r *Record) CurrentMonthOrDefault(def month.ID) month.ID {
	if r.currentMonth != "" {
		return r.currentMonth
	}
	return def
}

func (r *Record) CurrentMonth() (month.ID, bool) {
	return r.currentMonth, r.currentMonth != ""
}

func (r *Record) SetCurrentMonth(id month.ID) {
	r.currentMonth = id
}
