package runtime

import "os"

// Options carries everything one invocation needs.
type Options struct {
	BasePath  string
	InputFile string
	DirMode   *os.FileMode
	FileMode  *os.FileMode
	DryRun    bool
}
