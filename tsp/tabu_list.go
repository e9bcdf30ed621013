package tsp

// Move is a tabu-list entry: the first and last city of a solution at the
// time it was current.
type Move struct {
	From int
	To   int
}

// TabuList is a bounded FIFO of recently forbidden moves, stored in a ring.
// When full, Push evicts the oldest entry before appending the newest, so
// Len never exceeds Cap. The zero value is unusable; use NewTabuList.
type TabuList struct {
	buf   []Move
	head  int // index of the oldest entry
	count int
}

// NewTabuList returns an empty list holding at most capacity moves.
// Errors: ErrInvalidOptions if capacity < 1.
func NewTabuList(capacity int) (*TabuList, error) {
	if capacity < 1 {
		return nil, ErrInvalidOptions
	}
	return &TabuList{buf: make([]Move, capacity)}, nil
}

// Len returns the number of moves currently held.
func (t *TabuList) Len() int { return t.count }

// Cap returns the maximum number of moves.
func (t *TabuList) Cap() int { return len(t.buf) }

// Contains reports whether m is in the list. O(Cap).
func (t *TabuList) Contains(m Move) bool {
	var i int
	for i = 0; i < t.count; i++ {
		if t.buf[(t.head+i)%len(t.buf)] == m {
			return true
		}
	}
	return false
}

// Push appends m, evicting the oldest move first when the list is full.
func (t *TabuList) Push(m Move) {
	if t.count == len(t.buf) {
		t.head = (t.head + 1) % len(t.buf)
		t.count--
	}
	t.buf[(t.head+t.count)%len(t.buf)] = m
	t.count++
}

// Moves returns a copy of the held moves, oldest first.
func (t *TabuList) Moves() []Move {
	out := make([]Move, t.count)
	var i int
	for i = 0; i < t.count; i++ {
		out[i] = t.buf[(t.head+i)%len(t.buf)]
	}
	return out
}
