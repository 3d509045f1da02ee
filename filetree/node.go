package filetree

// Kind discriminates directory entries from file entries.
type Kind int

const (
	Directory Kind = iota
	File
)

func (k Kind) String() string {
	if k == Directory {
		return "directory"
	}
	return "file"
}

// Node is one entry of the hierarchy. Children keep source order; Parent is a
// plain back-reference used during build, ownership flows parent to child.
type Node struct {
	Name     string
	Kind     Kind
	Parent   *Node
	Children []*Node
}

// NewNode creates a new Node relative to the given parent node (nil for the
// root) and attaches it.
func NewNode(parent *Node, name string, kind Kind) (node *Node) {
	node = &Node{Name: name, Kind: kind, Parent: parent}
	if parent != nil {
		parent.Children = append(parent.Children, node)
	}
	return node
}

// Child returns the direct child with the given name, or nil.
func (node *Node) Child(name string) *Node {
	for _, child := range node.Children {
		if child.Name == name {
			return child
		}
	}
	return nil
}

// Path returns the /-joined path of the node from the root, root name
// included.
func (node *Node) Path() string {
	if node.Parent == nil {
		return node.Name
	}
	return node.Parent.Path() + "/" + node.Name
}

// IsDir reports whether the node is a directory entry.
func (node *Node) IsDir() bool {
	return node.Kind == Directory
}
