package treetext

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/lunixbochs/vtclean"
	log "github.com/sirupsen/logrus"
)

// Token is one parsed entry line: its nesting depth, its label (trailing
// slash preserved as a directory signal) and the 1-based line it came from.
type Token struct {
	Depth int
	Label string
	Line  int
}

// indentWidth is the number of visual columns one nesting level occupies in
// tree output ("│   " or four spaces).
const indentWidth = 4

// Branch connector markers, box-drawing first, ASCII fallbacks. The variants
// without a trailing space come last so the spaced forms win the scan.
var markers = []string{
	"├── ", "└── ", "|-- ", "`-- ", "+-- ",
	"├──", "└──", "|--", "`--", "+--",
}

// Tokenize reads tree-text line by line and produces the ordered token
// sequence. Blank lines and tree's trailing "N directories, M files" summary
// produce no token. The first non-blank line is always the root at depth 0.
func Tokenize(r io.Reader) ([]Token, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 1024), 1024*1024)

	var tokens []Token
	lineNum := 0
	prevDepth := 0

	for sc.Scan() {
		lineNum++
		// colored `tree -C` output keeps its escape codes when pasted
		raw := vtclean.Clean(sc.Text(), false)
		raw = strings.ReplaceAll(raw, "\t", strings.Repeat(" ", indentWidth))
		raw = strings.TrimRight(raw, " \r")

		if strings.TrimSpace(raw) == "" {
			continue
		}

		if len(tokens) == 0 {
			tokens = append(tokens, Token{Depth: 0, Label: rootLabel(raw), Line: lineNum})
			continue
		}

		depth, label, ok := splitLine(raw)
		if !ok {
			if isSummary(raw) {
				continue
			}
			return nil, &MalformedLineError{
				Line:   lineNum,
				Label:  strings.TrimSpace(raw),
				Reason: "no tree connector found",
			}
		}
		if depth > prevDepth+1 {
			return nil, &MalformedLineError{
				Line:   lineNum,
				Label:  label,
				Reason: fmt.Sprintf("indentation jumps from depth %d to %d", prevDepth, depth),
			}
		}

		tokens = append(tokens, Token{Depth: depth, Label: label, Line: lineNum})
		prevDepth = depth
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	log.WithField("tokens", len(tokens)).Debug("tokenized tree-text")
	return tokens, nil
}

// TokenizeString tokenizes an in-memory string.
func TokenizeString(s string) ([]Token, error) {
	return Tokenize(strings.NewReader(s))
}

// rootLabel extracts the root label from the first non-blank line. The root
// is depth 0 whatever its prefix looks like, so a leading connector is
// stripped rather than rejected.
func rootLabel(line string) string {
	if _, label, ok := splitLine(line); ok {
		return label
	}
	return strings.TrimSpace(line)
}

// splitLine locates the earliest branch connector, derives the depth from the
// prefix before it and returns the trimmed label after it.
func splitLine(line string) (depth int, label string, ok bool) {
	idx := -1
	used := ""
	for _, m := range markers {
		if i := strings.Index(line, m); i != -1 && (idx == -1 || i < idx) {
			idx = i
			used = m
		}
	}
	if idx == -1 {
		return 0, "", false
	}

	// Each rune of the prefix ("│   " columns, stray spaces, tabs already
	// expanded) is one visual column; the connector itself is one more level.
	depth = utf8.RuneCountInString(line[:idx])/indentWidth + 1
	label = strings.TrimSpace(line[idx+len(used):])
	if label == "" {
		return 0, "", false
	}
	return depth, label, true
}

// isSummary spots tree's closing "3 directories, 9 files" line.
func isSummary(line string) bool {
	s := strings.ToLower(strings.TrimSpace(line))
	return (strings.Contains(s, "directories") || strings.Contains(s, "directory")) &&
		(strings.Contains(s, "files") || strings.Contains(s, "file"))
}
