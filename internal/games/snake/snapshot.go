package snake

import "slices"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Moves         uint64
	Score         int
	Phase         Phase
	Segments      []Position
	Dir           Direction
	Queued        Direction
	PendingGrowth int
	Items         []Position
}

// Snapshot returns the current simulator snapshot.
func (s *Simulator) Snapshot() Snapshot {
	return Snapshot{
		Moves:         s.moves,
		Score:         s.state.Score,
		Phase:         s.state.Phase,
		Segments:      s.actor.Segments(),
		Dir:           s.actor.Direction(),
		Queued:        s.actor.QueuedDirection(),
		PendingGrowth: s.actor.PendingGrowth(),
		Items:         s.grid.Items(),
	}
}

// Equal reports whether two snapshots describe the same state.
func (s Snapshot) Equal(o Snapshot) bool {
	if s.Moves != o.Moves || s.Score != o.Score || s.Phase != o.Phase ||
		s.Dir != o.Dir || s.Queued != o.Queued || s.PendingGrowth != o.PendingGrowth {
		return false
	}
	return slices.Equal(s.Segments, o.Segments) && slices.Equal(s.Items, o.Items)
}
