package treetext

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeBasicTree(t *testing.T) {
	input := "a/\n├── b.txt\n└── c/\n    └── d.txt\n"

	tokens, err := TokenizeString(input)
	require.NoError(t, err)
	require.Len(t, tokens, 4)

	assert.Equal(t, Token{Depth: 0, Label: "a/", Line: 1}, tokens[0])
	assert.Equal(t, Token{Depth: 1, Label: "b.txt", Line: 2}, tokens[1])
	assert.Equal(t, Token{Depth: 1, Label: "c/", Line: 3}, tokens[2])
	assert.Equal(t, Token{Depth: 2, Label: "d.txt", Line: 4}, tokens[3])
}

func TestTokenizeDepths(t *testing.T) {
	cases := []struct {
		name  string
		input string
		depth []int
	}{
		{
			name:  "unicode connectors",
			input: "r/\n├── a/\n│   ├── b/\n│   │   └── c.txt\n│   └── d.txt\n└── e.txt\n",
			depth: []int{0, 1, 2, 3, 2, 1},
		},
		{
			name:  "ascii connectors",
			input: "r/\n|-- a/\n|   `-- b.txt\n`-- c.txt\n",
			depth: []int{0, 1, 2, 1},
		},
		{
			name:  "tabs as indentation",
			input: "r/\n├── a/\n\t└── b.txt\n",
			depth: []int{0, 1, 2},
		},
		{
			name:  "slightly irregular spacing",
			input: "r/\n ├── a/\n│    └── b.txt\n",
			depth: []int{0, 1, 2},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tokens, err := TokenizeString(tc.input)
			require.NoError(t, err)
			require.Len(t, tokens, len(tc.depth))
			for i, want := range tc.depth {
				assert.Equal(t, want, tokens[i].Depth, "token %d (%q)", i, tokens[i].Label)
			}
		})
	}
}

func TestTokenizeStripsAnsiColors(t *testing.T) {
	// what `tree -C` output looks like when pasted from a terminal
	input := "\x1b[01;34mproj\x1b[0m/\n├── \x1b[01;34msrc\x1b[0m/\n│   └── \x1b[01;32mmain.go\x1b[0m\n└── README.md\n"

	tokens, err := TokenizeString(input)
	require.NoError(t, err)
	require.Len(t, tokens, 4)
	assert.Equal(t, "proj/", tokens[0].Label)
	assert.Equal(t, "src/", tokens[1].Label)
	assert.Equal(t, "main.go", tokens[2].Label)
	assert.Equal(t, "README.md", tokens[3].Label)
}

func TestTokenizeSkipsBlankAndSummaryLines(t *testing.T) {
	input := "\n\na/\n├── b.txt\n\n└── c/\n\n2 directories, 1 file\n"

	tokens, err := TokenizeString(input)
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	assert.Equal(t, "a/", tokens[0].Label)
	assert.Equal(t, 3, tokens[0].Line)
	assert.Equal(t, "c/", tokens[2].Label)
}

func TestTokenizeFirstLineIsAlwaysRoot(t *testing.T) {
	// even a connector-prefixed first line is the depth 0 root
	tokens, err := TokenizeString("└── etc/\n├── hosts\n")
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, Token{Depth: 0, Label: "etc/", Line: 1}, tokens[0])
	assert.Equal(t, Token{Depth: 1, Label: "hosts", Line: 2}, tokens[1])
}

func TestTokenizeRejectsDepthJump(t *testing.T) {
	input := "a/\n│   │   └── deep.txt\n"

	_, err := TokenizeString(input)
	require.Error(t, err)

	var malformed *MalformedLineError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, 2, malformed.Line)
	assert.Equal(t, "deep.txt", malformed.Label)
}

func TestTokenizeRejectsLineWithoutConnector(t *testing.T) {
	_, err := TokenizeString("a/\nstray line\n")
	require.Error(t, err)

	var malformed *MalformedLineError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, 2, malformed.Line)
	assert.Equal(t, "stray line", malformed.Label)
}

func TestTokenizeEmptyInput(t *testing.T) {
	tokens, err := TokenizeString("\n   \n\t\n")
	require.NoError(t, err)
	assert.Empty(t, tokens)
}
