package ledger

import (
	"encoding/json"
	"sort"

	"go.uber.org/zap"
	"max.ks1230/budget-bot/internal/logger"

	"max.ks1230/budget-bot/internal/entity/month"
)

// Snapshot is the whole of one user's budget data: every month they have
// ever touched. It is persisted verbatim as a single JSON blob on every
// mutation.
type Snapshot map[month.ID]month.Record

// DecodeSnapshot tolerates a missing or malformed blob by falling back to an
// empty snapshot. A corrupt store should not take the process down.
func DecodeSnapshot(raw []byte) Snapshot {
	if len(raw) == 0 {
		return make(Snapshot)
	}
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		logger.Warn("malformed snapshot, starting empty", zap.Error(err))
		return make(Snapshot)
	}
	if snap == nil {
		snap = make(Snapshot)
	}
	return snap
}

func EncodeSnapshot(snap Snapshot) ([]byte, error) {
	return json.Marshal(snap)
}

// ensure returns the record for id, creating the default one on first
// access.
func (s Snapshot) ensure(id month.ID) month.Record {
	rec, ok := s[id]
	if !ok {
		rec = month.NewRecord()
		s[id] = rec
	}
	return rec
}

// MonthIDs lists every known month in chronological order.
func (s Snapshot) MonthIDs() []month.ID {
	ids := make([]month.ID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return ids[i] < ids[j]
	})
	return ids
}
