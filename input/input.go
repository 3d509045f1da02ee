package input

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	log "github.com/sirupsen/logrus"
)

// Read acquires the raw tree-text. An empty path means the clipboard, "-"
// means stdin, anything else is a file path.
func Read(path string) (string, error) {
	switch path {
	case "":
		text, err := clipboard.ReadAll()
		if err != nil {
			return "", fmt.Errorf("read clipboard: %w", err)
		}
		if strings.TrimSpace(text) == "" {
			return "", errors.New("the clipboard is empty")
		}
		log.Debug("read tree-text from clipboard")
		return text, nil

	case "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		if strings.TrimSpace(string(data)) == "" {
			return "", errors.New("stdin is empty")
		}
		return string(data), nil

	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read input file %q: %w", path, err)
		}
		if strings.TrimSpace(string(data)) == "" {
			return "", fmt.Errorf("the input file %q is empty", path)
		}
		return string(data), nil
	}
}
