// Package tree provides the ordered tree used to group brushes by the
// hierarchy implied by their dotted names.
//
// Nodes own their children and values outright; there are no parent
// pointers and the tree lives only for a single generation pass. Sibling
// names are unique, and both children and values enumerate in first-seen
// order, so a tree built from a name-sorted input enumerates in lexical
// name order throughout.
package tree

// Item is one node of the tree. The root carries the empty name.
type Item[T any] struct {
	Name     string
	Children []*Item[T]
	Values   []T
}

// Child returns the child with the given name, or nil.
func (it *Item[T]) Child(name string) *Item[T] {
	for _, child := range it.Children {
		if child.Name == name {
			return child
		}
	}
	return nil
}

// descend returns the child with the given name, creating and appending
// it if none exists yet.
func (it *Item[T]) descend(name string) *Item[T] {
	if child := it.Child(name); child != nil {
		return child
	}
	child := &Item[T]{Name: name}
	it.Children = append(it.Children, child)
	return child
}

// Build groups a flat sequence of values into a tree. Each value's path
// is derived by pathOf; the value is appended to the node reached by
// walking (and extending) that path from the root. Input order is
// preserved for both children and values, and duplicate paths simply
// accumulate values.
func Build[T any](values []T, pathOf func(T) []string) *Item[T] {
	root := &Item[T]{}
	for _, value := range values {
		node := root
		for _, segment := range pathOf(value) {
			node = node.descend(segment)
		}
		node.Values = append(node.Values, value)
	}
	return root
}
