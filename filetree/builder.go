package filetree

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"arbor/treetext"
)

// Build consumes the ordered token sequence and assembles the hierarchy. The
// first token becomes the root and is always a directory; every other token
// attaches to the most recently seen node one level up. The token slice is
// fully buffered, so "does the next entry sit deeper" lookahead is available
// without backtracking.
func Build(tokens []treetext.Token) (*Tree, error) {
	if len(tokens) == 0 {
		return nil, ErrEmptyTree
	}

	rootTok := tokens[0]
	rootName := strings.TrimSuffix(rootTok.Label, "/")
	// "./" (or ".") names the base directory itself rather than a new entry
	if rootName != "." {
		if err := validateName(rootName); err != nil {
			return nil, &treetext.MalformedLineError{Line: rootTok.Line, Label: rootTok.Label, Reason: err.Error()}
		}
	}

	tree := NewTree(rootName)
	stack := []*Node{tree.Root}

	for i := 1; i < len(tokens); i++ {
		tok := tokens[i]

		if tok.Depth == 0 {
			return nil, &treetext.MalformedLineError{Line: tok.Line, Label: tok.Label, Reason: "tree already has a root"}
		}
		if tok.Depth > len(stack) {
			return nil, &OrphanNodeError{Line: tok.Line, Label: tok.Label, Depth: tok.Depth}
		}
		stack = stack[:tok.Depth]
		parent := stack[tok.Depth-1]
		if !parent.IsDir() {
			return nil, &treetext.MalformedLineError{Line: tok.Line, Label: tok.Label, Reason: fmt.Sprintf("parent %q is a file", parent.Name)}
		}

		hasChildren := i+1 < len(tokens) && tokens[i+1].Depth > tok.Depth
		name := strings.TrimSuffix(tok.Label, "/")
		if err := validateName(name); err != nil {
			return nil, &treetext.MalformedLineError{Line: tok.Line, Label: tok.Label, Reason: err.Error()}
		}
		if parent.Child(name) != nil {
			return nil, &DuplicateEntryError{Line: tok.Line, Name: name, Parent: parent.Name}
		}

		node := NewNode(parent, name, inferKind(tok.Label, hasChildren))
		tree.Size++
		stack = append(stack, node)
	}

	log.WithFields(log.Fields{"id": tree.Id, "entries": tree.Size}).Debug("built file tree")
	return tree, nil
}

// inferKind resolves the directory-vs-file ambiguity of a label. A trailing
// slash or a deeper entry on the following line is a directory signal;
// everything else is a childless leaf and defaults to file.
func inferKind(label string, hasChildren bool) Kind {
	if strings.HasSuffix(label, "/") || hasChildren {
		return Directory
	}
	return File
}

// validateName requires a single path segment: not empty, not "." or "..",
// no separators, not absolute. Keeps pasted input from escaping the base
// path at materialization time.
func validateName(name string) error {
	if name == "" {
		return errors.New("empty name")
	}
	if name == "." || name == ".." {
		return fmt.Errorf("invalid name %q", name)
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("name %q contains a path separator", name)
	}
	if filepath.IsAbs(name) {
		return fmt.Errorf("name %q is an absolute path", name)
	}
	return nil
}
