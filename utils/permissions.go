package utils

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ParsePermissions turns an octal string such as "755" or "0644" into a file
// mode. An empty string yields nil: no explicit mode was requested and the
// platform default stays in effect.
func ParsePermissions(s string) (*os.FileMode, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	u, err := strconv.ParseUint(s, 8, 32)
	if err != nil || u > 0o777 {
		return nil, fmt.Errorf("permissions must be an octal number between 000 and 777, got %q", s)
	}

	mode := os.FileMode(u)
	return &mode, nil
}
