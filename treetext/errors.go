package treetext

import "fmt"

// MalformedLineError reports a line that cannot be interpreted as a tree
// entry: no recognizable connector, an indentation jump that skips a nesting
// level, or an unusable entry name.
type MalformedLineError struct {
	Line   int
	Label  string
	Reason string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("line %d: malformed tree line %q: %s", e.Line, e.Label, e.Reason)
}
