package dsets

// DisjointSet is a union-find forest over the labels 1..Len().
// The zero value is not usable; construct with New.
type DisjointSet struct {
	items []item
	count int // number of disjoint sets remaining
}

// New returns a DisjointSet of size singleton sets labeled 1..size.
// Panics with ErrInvalidArgument if size <= 0.
// Complexity: O(size).
func New(size int) *DisjointSet {
	if size <= 0 {
		violation("dsets: New(%d): %w", size, ErrInvalidArgument)
	}
	d := &DisjointSet{
		items: make([]item, size),
		count: size,
	}
	for i := range d.items {
		d.items[i] = item{parent: i, size: 1}
	}

	return d
}

// Len returns the number of labels, N.
func (d *DisjointSet) Len() int { return len(d.items) }

// Count returns the number of disjoint sets.
func (d *DisjointSet) Count() int { return d.count }

// index maps an external label to its slot, panicking when out of range.
func (d *DisjointSet) index(op string, x int) int {
	if x < 1 || x > len(d.items) {
		violation("dsets: %s(%d) outside [1, %d]: %w", op, x, len(d.items), ErrIndexOutOfRange)
	}

	return x - 1
}

// Find returns the root label of the set containing x.
//
// The first pass walks the parent chain to the root; the second pass re-points
// every slot on that chain directly at the root. Which root x resolves to never
// changes, only the length of the path to it.
// Panics with ErrIndexOutOfRange unless 1 <= x <= Len().
// Complexity: amortized O(α(N)).
func (d *DisjointSet) Find(x int) int {
	i := d.index("Find", x)

	root := i
	for d.items[root].parent != root {
		root = d.items[root].parent
	}
	for i != root {
		i, d.items[i].parent = d.items[i].parent, root
	}

	return root + 1
}

// Join merges the sets rooted at r and s.
//
// The root of the smaller tree is attached under the root of the larger one and
// the survivor absorbs its size. On equal sizes s is attached under r.
// Join does not resolve its arguments: both must already be roots.
// Panics with ErrInvalidArgument if r == s, ErrIndexOutOfRange if either label
// is out of range, and ErrNotRoot if either is not a root.
// Complexity: O(1).
func (d *DisjointSet) Join(r, s int) {
	if r == s {
		violation("dsets: Join(%d, %d): %w", r, s, ErrInvalidArgument)
	}
	ri, si := d.index("Join", r), d.index("Join", s)
	if d.items[ri].parent != ri {
		violation("dsets: Join(%d, %d): %d: %w", r, s, r, ErrNotRoot)
	}
	if d.items[si].parent != si {
		violation("dsets: Join(%d, %d): %d: %w", r, s, s, ErrNotRoot)
	}

	if d.items[si].size > d.items[ri].size {
		ri, si = si, ri
	}
	d.items[ri].size += d.items[si].size
	d.items[si].parent = ri
	d.count--
}

// Union merges the sets containing a and b, resolving both through Find.
// It reports false, doing nothing, when a and b are already in the same set.
func (d *DisjointSet) Union(a, b int) bool {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return false
	}
	d.Join(ra, rb)

	return true
}

// Connected reports whether a and b belong to the same set.
func (d *DisjointSet) Connected(a, b int) bool {
	return d.Find(a) == d.Find(b)
}

// IsRoot reports whether x is currently the root of its set.
func (d *DisjointSet) IsRoot(x int) bool {
	i := d.index("IsRoot", x)

	return d.items[i].parent == i
}

// SizeOf returns the number of labels in the set containing x.
func (d *DisjointSet) SizeOf(x int) int {
	return d.items[d.Find(x)-1].size
}

// Depth returns the number of parent links between x and its root without
// compressing anything. A root has depth 0.
func (d *DisjointSet) Depth(x int) int {
	i := d.index("Depth", x)
	depth := 0
	for d.items[i].parent != i {
		i = d.items[i].parent
		depth++
	}

	return depth
}

// Snapshot returns the forest in the classic signed encoding: position k-1
// holds -size when label k is a root, otherwise the label of k's parent.
func (d *DisjointSet) Snapshot() []int {
	out := make([]int, len(d.items))
	for i, it := range d.items {
		if it.parent == i {
			out[i] = -it.size
			continue
		}
		out[i] = it.parent + 1
	}

	return out
}

// Sets returns every set as a sorted slice of labels, ordered by smallest label.
// Complexity: O(N·α(N)).
func (d *DisjointSet) Sets() [][]int {
	byRoot := make(map[int][]int, d.count)
	order := make([]int, 0, d.count)
	for x := 1; x <= len(d.items); x++ {
		r := d.Find(x)
		if _, seen := byRoot[r]; !seen {
			order = append(order, r)
		}
		byRoot[r] = append(byRoot[r], x)
	}
	// Labels are scanned ascending, so first-seen order is smallest-label order.
	out := make([][]int, 0, len(order))
	for _, r := range order {
		out = append(out, byRoot[r])
	}

	return out
}
