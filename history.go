package paint

// History is a linear, indexed stack of snapshots.
//
// Invariant: 0 <= Index() < Len() once the history has been reset with an
// initial snapshot. Pushing while Index() < Len()-1 discards every snapshot
// after the index: the redo branch is truncated, never preserved.
type History struct {
	entries []Snapshot
	index   int
	limit   int
}

// NewHistory returns a history holding only initial.
// limit caps the number of retained snapshots; limit <= 0 means unlimited,
// and any positive limit below 2 is raised to 2 so that one step can
// always be undone.
func NewHistory(initial Snapshot, limit int) *History {
	if limit > 0 && limit < 2 {
		limit = 2
	}
	h := &History{limit: limit}
	h.Reset(initial)
	return h
}

// Reset discards all entries and starts over from a single snapshot.
func (h *History) Reset(initial Snapshot) {
	h.entries = append(h.entries[:0:0], initial)
	h.index = 0
}

// Push truncates the redo branch, appends snap and makes it current.
// When a limit is set and exceeded, the oldest snapshots are dropped.
func (h *History) Push(snap Snapshot) {
	clear(h.entries[h.index+1:])
	h.entries = append(h.entries[:h.index+1], snap)
	if h.limit > 0 && len(h.entries) > h.limit {
		drop := len(h.entries) - h.limit
		clear(h.entries[:drop])
		h.entries = h.entries[drop:]
	}
	h.index = len(h.entries) - 1
}

// Undo moves the index back one step and returns the snapshot to restore.
// It reports false, and changes nothing, at the oldest entry.
func (h *History) Undo() (Snapshot, bool) {
	if h.index == 0 {
		return Snapshot{}, false
	}
	h.index--
	return h.entries[h.index], true
}

// Redo moves the index forward one step and returns the snapshot to
// restore. It reports false, and changes nothing, at the newest entry.
func (h *History) Redo() (Snapshot, bool) {
	if h.index >= len(h.entries)-1 {
		return Snapshot{}, false
	}
	h.index++
	return h.entries[h.index], true
}

// Current returns the snapshot at the index.
func (h *History) Current() Snapshot {
	return h.entries[h.index]
}

// CanUndo reports whether Undo would move the index.
func (h *History) CanUndo() bool {
	return h.index > 0
}

// CanRedo reports whether Redo would move the index.
func (h *History) CanRedo() bool {
	return h.index < len(h.entries)-1
}

// Len returns the number of snapshots.
func (h *History) Len() int {
	return len(h.entries)
}

// Index returns the position of the current snapshot.
func (h *History) Index() int {
	return h.index
}
