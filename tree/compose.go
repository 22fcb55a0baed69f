// SPDX-License-Identifier: Unlicense OR MIT

package tree

// Item describes a node at the point it is composed.
type Item struct {
	Node        Node
	ID          any
	Level       int
	Expanded    bool
	HasChildren bool
	// Path holds the index of the node and of each of its ancestors
	// among their siblings, root first. Unlike ID it is unique within
	// a forest.
	Path []int
}

// Compose walks nodes depth first, starting at level. For every node
// emit is called with the node's Item and the composed children, which
// are only present when the node has children and is expanded.
func Compose[V any](k Keys, e *Expansion, nodes []Node, level int, emit func(it Item, children []V) V) []V {
	return compose(k, e, nodes, level, nil, emit)
}

func compose[V any](k Keys, e *Expansion, nodes []Node, level int, parent []int, emit func(it Item, children []V) V) []V {
	out := make([]V, 0, len(nodes))
	for i, n := range nodes {
		id := k.IDOf(n)
		path := make([]int, len(parent)+1)
		copy(path, parent)
		path[len(parent)] = i
		it := Item{
			Node:        n,
			ID:          id,
			Level:       level,
			Expanded:    e.Expanded(id),
			HasChildren: k.HasChildren(n),
			Path:        path,
		}
		var children []V
		if it.HasChildren && it.Expanded {
			children = compose(k, e, k.ChildrenOf(n), level+1, path, emit)
		}
		out = append(out, emit(it, children))
	}
	return out
}
