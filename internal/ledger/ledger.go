// Package ledger implements the append-only audit history attached to a property.
//
// The ledger has no update or delete operations. Entries are kept in insertion
// order, which is the only ordering guarantee readers get.
package ledger

import (
	"github.com/and161185/propledger/internal/model"
)

// Append returns a copy of history with ev added at the end. The input slice is
// never modified, so snapshots taken before the append stay valid.
func Append(history []model.Event, ev model.Event) []model.Event {
	out := make([]model.Event, len(history), len(history)+1)
	copy(out, history)
	return append(out, ev.Clone())
}

// Apply attaches ev to p's history and returns the resulting property.
// All other fields of p are taken as supplied by the caller.
func Apply(p model.Property, ev model.Event) model.Property {
	p.History = Append(p.History, ev)
	return p
}

// Page filters history by q.Type and slices it by offset/limit, preserving append order.
func Page(history []model.Event, q model.HistoryQuery) []model.Event {
	out := make([]model.Event, 0, len(history))
	skipped := 0
	for _, ev := range history {
		if q.Type != "" && ev.Type != q.Type {
			continue
		}
		if skipped < q.Offset {
			skipped++
			continue
		}
		if q.Limit > 0 && len(out) >= q.Limit {
			break
		}
		out = append(out, ev.Clone())
	}
	return out
}

// Count returns the number of entries of type t (all entries when t is empty).
func Count(history []model.Event, t model.EventType) int {
	if t == "" {
		return len(history)
	}
	n := 0
	for _, ev := range history {
		if ev.Type == t {
			n++
		}
	}
	return n
}
