package materialize

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"arbor/filetree"
)

// Options controls a materialization run. A nil mode means "leave the
// platform default alone": no chmod is ever issued for it.
type Options struct {
	DirMode  *os.FileMode
	FileMode *os.FileMode
	DryRun   bool
}

// Materialize replays the tree onto the filesystem under basePath. Per-entry
// failures are collected in the result and never abort the walk; the returned
// error is non-nil only when basePath itself cannot be created or used as a
// directory, in which case nothing was touched beyond the base path.
func Materialize(tree *filetree.Tree, basePath string, opts Options) (*Result, error) {
	base, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("resolve base path %q: %w", basePath, err)
	}

	if info, statErr := os.Lstat(base); statErr == nil && !info.IsDir() {
		return nil, fmt.Errorf("base path %s is not a directory", base)
	}
	if !opts.DryRun {
		if err := os.MkdirAll(base, dirCreateMode(opts)); err != nil {
			return nil, fmt.Errorf("create base path %s: %w", base, err)
		}
		if opts.DirMode != nil {
			if err := os.Chmod(base, *opts.DirMode); err != nil {
				return nil, fmt.Errorf("chmod base path %s: %w", base, err)
			}
		}
	}

	m := &materializer{
		opts:   opts,
		base:   base,
		result: &Result{TreeId: tree.Id, BasePath: base},
	}

	if tree.Root.Name == "." {
		// "./" root: the entries live directly under the base path
		for _, child := range tree.Root.Children {
			m.walk(child, base)
		}
	} else {
		m.walk(tree.Root, base)
	}

	s := m.result.Summary()
	log.WithFields(log.Fields{
		"id":      tree.Id,
		"base":    base,
		"created": s.Created,
		"existed": s.Existed,
		"failed":  s.Failed,
	}).Debug("materialization finished")
	return m.result, nil
}

type materializer struct {
	opts   Options
	base   string
	result *Result
}

// walk materializes one node and recurses into its children, depth-first in
// source order. A directory that could not be brought into existence ends its
// subtree; siblings and every other subtree continue.
func (m *materializer) walk(node *filetree.Node, parentPath string) {
	path := filepath.Join(parentPath, node.Name)
	if !within(m.base, path) {
		m.result.add(Entry{
			Path:   path,
			Kind:   node.Kind,
			Action: Failed,
			Err:    fmt.Errorf("%s escapes base path %s", path, m.base),
		})
		return
	}

	if node.IsDir() {
		entry, usable := m.ensureDir(path)
		m.result.add(entry)
		if !usable {
			return
		}
		for _, child := range node.Children {
			m.walk(child, path)
		}
		return
	}

	m.result.add(m.ensureFile(path))
}

// ensureDir brings a directory into existence and returns its outcome plus
// whether the directory can hold children (it exists, even if a later chmod
// on it failed).
func (m *materializer) ensureDir(path string) (Entry, bool) {
	entry := Entry{Path: path, Kind: filetree.Directory}

	info, err := os.Lstat(path)
	switch {
	case err == nil && info.IsDir():
		entry.Action = AlreadyExisted
		entry.PermApplied, entry.Err = m.chmod(path, m.opts.DirMode)
		if entry.Err != nil {
			entry.Action = Failed
		}
		return entry, true

	case err == nil:
		entry.Action = Failed
		entry.Err = fmt.Errorf("%s exists and is not a directory", path)
		return entry, false

	case os.IsNotExist(err):
		if m.opts.DryRun {
			entry.Action = Created
			entry.PermApplied = m.opts.DirMode != nil
			return entry, true
		}
		if mkErr := os.Mkdir(path, dirCreateMode(m.opts)); mkErr != nil {
			entry.Action = Failed
			entry.Err = fmt.Errorf("mkdir %s: %w", path, mkErr)
			return entry, false
		}
		entry.Action = Created
		entry.PermApplied, entry.Err = m.chmod(path, m.opts.DirMode)
		if entry.Err != nil {
			entry.Action = Failed
		}
		return entry, true

	default:
		entry.Action = Failed
		entry.Err = fmt.Errorf("stat %s: %w", path, err)
		return entry, false
	}
}

// ensureFile brings an empty file into existence. Existing file content is
// never touched; only the mode is (re)applied when one was requested.
func (m *materializer) ensureFile(path string) Entry {
	entry := Entry{Path: path, Kind: filetree.File}

	info, err := os.Lstat(path)
	switch {
	case err == nil && info.IsDir():
		entry.Action = Failed
		entry.Err = fmt.Errorf("%s exists and is a directory", path)

	case err == nil:
		entry.Action = AlreadyExisted
		entry.PermApplied, entry.Err = m.chmod(path, m.opts.FileMode)
		if entry.Err != nil {
			entry.Action = Failed
		}

	case os.IsNotExist(err):
		if m.opts.DryRun {
			entry.Action = Created
			entry.PermApplied = m.opts.FileMode != nil
			return entry
		}
		f, createErr := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, fileCreateMode(m.opts))
		if createErr != nil {
			entry.Action = Failed
			entry.Err = fmt.Errorf("create %s: %w", path, createErr)
			return entry
		}
		_ = f.Close()
		entry.Action = Created
		entry.PermApplied, entry.Err = m.chmod(path, m.opts.FileMode)
		if entry.Err != nil {
			entry.Action = Failed
		}

	default:
		entry.Action = Failed
		entry.Err = fmt.Errorf("stat %s: %w", path, err)
	}
	return entry
}

// chmod applies mode to path when one was requested. Explicit chmod after
// create, since creation modes are subject to the umask.
func (m *materializer) chmod(path string, mode *os.FileMode) (bool, error) {
	if mode == nil || m.opts.DryRun {
		return mode != nil && m.opts.DryRun, nil
	}
	if err := os.Chmod(path, *mode); err != nil {
		return false, fmt.Errorf("chmod %s: %w", path, err)
	}
	return true, nil
}

func dirCreateMode(opts Options) os.FileMode {
	if opts.DirMode != nil {
		return *opts.DirMode
	}
	return 0o755
}

func fileCreateMode(opts Options) os.FileMode {
	if opts.FileMode != nil {
		return *opts.FileMode
	}
	return 0o666
}

// within reports whether path stays inside base once cleaned.
func within(base, path string) bool {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
