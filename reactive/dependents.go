package reactive

// dependents is an insertion-ordered set of computations. Iteration follows the
// order of first subscription, which keeps the notification order of a Set
// stable from one run to the next.
type dependents struct {
	index map[*computation]int
	list  []*computation
}

func (d *dependents) add(c *computation) {
	if _, ok := d.index[c]; ok {
		return
	}
	if d.index == nil {
		d.index = make(map[*computation]int)
	}
	d.index[c] = len(d.list)
	d.list = append(d.list, c)
}

// snapshot copies the current members.
func (d *dependents) snapshot() []*computation {
	if len(d.list) == 0 {
		return nil
	}
	out := make([]*computation, len(d.list))
	copy(out, d.list)
	return out
}

// drain returns the members and empties the set.
func (d *dependents) drain() []*computation {
	out := d.list
	d.list = nil
	d.index = nil
	return out
}
