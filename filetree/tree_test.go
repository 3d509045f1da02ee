package filetree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arbor/treetext"
)

func TestRenderMarksDirectories(t *testing.T) {
	tree := build(t, "proj\n├── docs\n│   └── guide.md\n└── README\n")

	assert.Equal(t, "proj/\n├── docs/\n│   └── guide.md\n└── README\n", tree.Render())
}

func TestRenderRoundTrip(t *testing.T) {
	input := "proj/\n├── cmd/\n│   └── main.go\n├── pkg/\n│   ├── a.go\n│   └── b/\n│       └── c.txt\n└── README.md\n"

	tree := build(t, input)
	rendered := tree.Render()
	assert.Equal(t, input, rendered)

	// re-tokenizing the rendering yields an isomorphic tree
	tokens, err := treetext.TokenizeString(rendered)
	require.NoError(t, err)
	again, err := Build(tokens)
	require.NoError(t, err)

	assertIsomorphic(t, tree.Root, again.Root)
}

func TestRenderDotRoot(t *testing.T) {
	tree := build(t, "./\n├── a/\n│   └── b.txt\n└── c.txt\n")

	assert.Equal(t, "./\n├── a/\n│   └── b.txt\n└── c.txt\n", tree.Render())
}

func assertIsomorphic(t *testing.T, want, got *Node) {
	t.Helper()
	assert.Equal(t, want.Name, got.Name)
	assert.Equal(t, want.Kind, got.Kind)
	require.Len(t, got.Children, len(want.Children), "children of %q", want.Name)
	for i := range want.Children {
		assertIsomorphic(t, want.Children[i], got.Children[i])
	}
}
