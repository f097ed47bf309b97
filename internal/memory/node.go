package memory

// Node is a single node in the memory hierarchy. A level root carries no
// value and acts as a pure namespace; a leaf carries the stored value.
type Node struct {
	Value    string
	HasValue bool
	Children map[string]*Node
}

// newRoot creates a valueless namespace node.
func newRoot() *Node {
	return &Node{Children: make(map[string]*Node)}
}

// newLeaf creates a node holding a value.
func newLeaf(value string) *Node {
	return &Node{Value: value, HasValue: true, Children: make(map[string]*Node)}
}

// child returns the child node for key, or nil.
func (n *Node) child(key string) *Node {
	return n.Children[key]
}

// setChild inserts or overwrites the child named key with value.
// An existing child keeps its children; only its value is replaced.
func (n *Node) setChild(key, value string) {
	if existing, ok := n.Children[key]; ok {
		existing.Value = value
		existing.HasValue = true
		return
	}
	n.Children[key] = newLeaf(value)
}
