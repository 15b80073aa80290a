package mapping

// Session owns the mutable mapping state while a caller revises it between
// comparisons. Every mutating operation bumps the version, so callers can
// tell whether a cached result is stale. The reconciliation engine never
// sees a Session; it only receives the finalized Mapping snapshot.
type Session struct {
	version int
	current *Mapping
	removed map[string]string // left column -> right column it had when removed
}

// NewSession creates a session seeded with the given mapping. The seed is
// copied; later edits to it do not affect the session.
func NewSession(seed *Mapping) *Session {
	s := &Session{
		current: New(),
		removed: make(map[string]string),
	}
	if seed != nil {
		s.current = seed.Clone()
	}
	return s
}

// Version returns the session's edit counter. It starts at 0 and increments
// on every mutating operation.
func (s *Session) Version() int {
	return s.version
}

// SetMapping replaces the whole mapping and clears remove history.
func (s *Session) SetMapping(m *Mapping) {
	s.current = m.Clone()
	s.removed = make(map[string]string)
	s.version++
}

// Set adds or overrides a single pair.
func (s *Session) Set(left, right string) {
	s.current.Set(left, right)
	delete(s.removed, left)
	s.version++
}

// RemoveColumn drops the pair keyed by left, remembering it for a later
// RestoreColumn. Removing an absent column is a no-op and does not bump the
// version.
func (s *Session) RemoveColumn(left string) bool {
	right, ok := s.current.Get(left)
	if !ok {
		return false
	}
	s.current.Remove(left)
	s.removed[left] = right
	s.version++
	return true
}

// RestoreColumn adds back a previously removed pair with the right column it
// had at removal time.
func (s *Session) RestoreColumn(left string) bool {
	right, ok := s.removed[left]
	if !ok {
		return false
	}
	s.current.Set(left, right)
	delete(s.removed, left)
	s.version++
	return true
}

// Finalize returns an immutable snapshot of the current mapping, suitable
// for handing to the reconciliation engine.
func (s *Session) Finalize() *Mapping {
	return s.current.Clone()
}
