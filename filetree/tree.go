package filetree

import (
	"strings"

	"github.com/google/uuid"
)

const (
	newLine       = "\n"
	noBranchSpace = "    "
	branchSpace   = "│   "
	middleItem    = "├── "
	lastItem      = "└── "
)

// Tree represents one parsed hierarchy: a directory root plus everything
// under it.
type Tree struct {
	Root *Node
	Size int
	Id   uuid.UUID
}

// NewTree creates an empty FileTree with a directory root of the given name.
func NewTree(rootName string) (tree *Tree) {
	tree = new(Tree)
	tree.Root = NewNode(nil, rootName, Directory)
	tree.Id = uuid.New()
	return tree
}

// Render writes the tree back out as tree-text, directories marked with a
// trailing slash. Tokenizing and rebuilding the result yields the same
// hierarchy.
func (tree *Tree) Render() string {
	var sb strings.Builder
	sb.WriteString(tree.Root.Name + "/" + newLine)
	renderChildren(&sb, tree.Root, "")
	return sb.String()
}

func renderChildren(sb *strings.Builder, node *Node, prefix string) {
	for i, child := range node.Children {
		last := i == len(node.Children)-1

		connector := middleItem
		if last {
			connector = lastItem
		}
		name := child.Name
		if child.IsDir() {
			name += "/"
		}
		sb.WriteString(prefix + connector + name + newLine)

		if len(child.Children) > 0 {
			spacer := branchSpace
			if last {
				spacer = noBranchSpace
			}
			renderChildren(sb, child, prefix+spacer)
		}
	}
}
