package materialize

import (
	"github.com/google/uuid"

	"arbor/filetree"
)

// Action is the outcome recorded for one entry.
type Action int

const (
	Created Action = iota
	AlreadyExisted
	Failed
)

func (a Action) String() string {
	switch a {
	case Created:
		return "created"
	case AlreadyExisted:
		return "already existed"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Entry is the materialization outcome for a single node. PermApplied is
// tracked separately from Action because an entry that already existed can
// still have permissions (re)applied to it.
type Entry struct {
	Path        string
	Kind        filetree.Kind
	Action      Action
	PermApplied bool
	Err         error
}

// Result collects the outcome of one materialization run.
type Result struct {
	TreeId   uuid.UUID
	BasePath string
	Entries  []Entry
}

// Summary holds the aggregated counters of a run.
type Summary struct {
	Created      int
	Existed      int
	PermsApplied int
	Failed       int
}

func (result *Result) add(entry Entry) {
	result.Entries = append(result.Entries, entry)
}

// Summary aggregates the per-entry outcomes into counters.
func (result *Result) Summary() Summary {
	var s Summary
	for _, entry := range result.Entries {
		switch entry.Action {
		case Created:
			s.Created++
		case AlreadyExisted:
			s.Existed++
		case Failed:
			s.Failed++
		}
		if entry.PermApplied {
			s.PermsApplied++
		}
	}
	return s
}

// Failures returns the entries that could not be materialized.
func (result *Result) Failures() []Entry {
	var failures []Entry
	for _, entry := range result.Entries {
		if entry.Action == Failed {
			failures = append(failures, entry)
		}
	}
	return failures
}

// Ok reports whether the run completed without a single failed entry.
func (result *Result) Ok() bool {
	for _, entry := range result.Entries {
		if entry.Action == Failed {
			return false
		}
	}
	return true
}
