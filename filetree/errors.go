package filetree

import (
	"errors"
	"fmt"
)

// ErrEmptyTree is returned by Build when the token sequence holds no entries.
var ErrEmptyTree = errors.New("tree-text contains no entries")

// OrphanNodeError reports an entry whose depth has no open ancestor to attach
// to.
type OrphanNodeError struct {
	Line  int
	Label string
	Depth int
}

func (e *OrphanNodeError) Error() string {
	return fmt.Sprintf("line %d: entry %q at depth %d has no parent", e.Line, e.Label, e.Depth)
}

// DuplicateEntryError reports two siblings sharing one name, a symptom of
// corrupted or doubled paste input.
type DuplicateEntryError struct {
	Line   int
	Name   string
	Parent string
}

func (e *DuplicateEntryError) Error() string {
	return fmt.Sprintf("line %d: duplicate entry %q under %q", e.Line, e.Name, e.Parent)
}
