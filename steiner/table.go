package steiner

import "github.com/katalvlaran/lvsteiner/bitmask"

// table is the mask-major cost storage: cells[mask*stride + v] for nodes
// v in 1..n (stride = n+1, column entry 0 unused).
type table struct {
	stride int
	masks  int
	cells  []int64
}

// reset sizes the table for n nodes and k terminals, reusing the backing
// array when it is large enough, and fills every cell with Inf.
func (t *table) reset(n, k int) {
	t.stride = n + 1
	t.masks = 1 << uint(k)
	size := t.stride * t.masks
	if cap(t.cells) < size {
		t.cells = make([]int64, size)
	}
	t.cells = t.cells[:size]
	for i := range t.cells {
		t.cells[i] = Inf
	}
}

// column returns the live slice of costs for mask m, indexed by node.
func (t *table) column(m bitmask.Mask) []int64 {
	lo := int(m) * t.stride
	return t.cells[lo : lo+t.stride]
}

func (t *table) at(v int, m bitmask.Mask) int64 {
	return t.cells[int(m)*t.stride+v]
}

func (t *table) set(v int, m bitmask.Mask, c int64) {
	t.cells[int(m)*t.stride+v] = c
}

// TableBytes is the storage a Solver holds for n nodes and k terminals: the
// cost table plus the forest table. It returns 0 for k outside
// 1..bitmask.MaxTerminals or n < 1.
func TableBytes(n, k int) uint64 {
	if n < 1 || k < 1 || k > bitmask.MaxTerminals {
		return 0
	}
	masks := uint64(1) << uint(k)

	return masks * uint64(n+2) * 8
}
