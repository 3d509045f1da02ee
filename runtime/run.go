package runtime

import (
	"errors"
	"fmt"

	"github.com/logrusorgru/aurora"
	log "github.com/sirupsen/logrus"

	"arbor/filetree"
	"arbor/input"
	"arbor/materialize"
	"arbor/treetext"
)

// ErrPartialFailure signals that the walk finished but some entries could not
// be created; the report lists them.
var ErrPartialFailure = errors.New("some entries could not be created")

func title(s string) string {
	return aurora.Bold(s).String()
}

// Run executes one invocation: acquire the tree-text, parse it, build the
// hierarchy and replay it under the base path. Parse errors abort before
// anything on disk is touched.
func Run(options Options) error {
	fmt.Println(title("Reading tree-text..."))
	text, err := input.Read(options.InputFile)
	if err != nil {
		return err
	}

	fmt.Println(title("Parsing tree..."))
	tokens, err := treetext.TokenizeString(text)
	if err != nil {
		return err
	}
	tree, err := filetree.Build(tokens)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{"id": tree.Id, "entries": tree.Size}).Info("parsed tree-text")

	if options.DryRun {
		fmt.Println(title("Dry run, nothing will be created:"))
		fmt.Print(tree.Render())
	}

	fmt.Println(title(fmt.Sprintf("Planting tree... (into '%s')", options.BasePath)))
	result, err := materialize.Materialize(tree, options.BasePath, materialize.Options{
		DirMode:  options.DirMode,
		FileMode: options.FileMode,
		DryRun:   options.DryRun,
	})
	if err != nil {
		return err
	}

	printReport(result)
	if !result.Ok() {
		return ErrPartialFailure
	}
	return nil
}
