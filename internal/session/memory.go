package session

// MemoryMarker keeps the marker in process memory. It survives as long as
// the value itself, which makes it handy for tests that "restart" a Store by
// calling Load again on the same marker.
type MemoryMarker struct {
	present bool
	// Sets and Clears count marker writes.
	Sets   int
	Clears int
}

// NewMemoryMarker returns a marker that starts present or absent.
func NewMemoryMarker(present bool) *MemoryMarker {
	return &MemoryMarker{present: present}
}

func (m *MemoryMarker) Present() bool { return m.present }

func (m *MemoryMarker) Set() error {
	m.present = true
	m.Sets++
	return nil
}

func (m *MemoryMarker) Clear() error {
	m.present = false
	m.Clears++
	return nil
}
