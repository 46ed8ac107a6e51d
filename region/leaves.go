package region

// Leaves returns every depth-L node in the tree, in a deterministic
// pre-order walk (parents before children, siblings in birth order).
func (t *Tree) Leaves() []NodeID {
	var out []NodeID
	var walk func(id NodeID)
	walk = func(id NodeID) {
		children := t.children[id.Key()]
		if len(children) == 0 {
			out = append(out, id)
			return
		}
		for _, c := range children {
			walk(c)
		}
	}
	walk(RootID())
	return out
}
