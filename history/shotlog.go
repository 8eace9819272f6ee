// Package history keeps an in-memory record of the shots fired in a game.
package history

import "seabattle/types"

// Entry is a single legal shot.
type Entry struct {
	Seq     int // 1-based
	Shooter types.Side
	Target  types.Coord
	Result  types.ShotResult
}

// Stats summarises one side's shooting.
type Stats struct {
	Shots int
	Hits  int // includes the shot that sank a ship
	Sunk  int
}

// Accuracy returns hits as a percentage of shots.
func (s Stats) Accuracy() float64 {
	if s.Shots == 0 {
		return 0
	}
	return float64(s.Hits) * 100 / float64(s.Shots)
}

// ShotLog tracks shots in the order they were fired.
type ShotLog struct {
	entries []Entry
}

// NewShotLog creates an empty log.
func NewShotLog() *ShotLog {
	return &ShotLog{}
}

// Add appends a shot and returns the recorded entry.
func (l *ShotLog) Add(shooter types.Side, target types.Coord, result types.ShotResult) Entry {
	e := Entry{
		Seq:     len(l.entries) + 1,
		Shooter: shooter,
		Target:  target,
		Result:  result,
	}
	l.entries = append(l.entries, e)
	return e
}

// Len returns the number of shots recorded.
func (l *ShotLog) Len() int {
	return len(l.entries)
}

// Entries returns a copy of every entry, oldest first.
func (l *ShotLog) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Last returns up to n of the most recent entries, oldest first.
func (l *ShotLog) Last(n int) []Entry {
	if n <= 0 {
		return nil
	}
	start := 0
	if len(l.entries) > n {
		start = len(l.entries) - n
	}
	out := make([]Entry, len(l.entries)-start)
	copy(out, l.entries[start:])
	return out
}

// Stats returns the shooting summary for one side.
func (l *ShotLog) Stats(side types.Side) Stats {
	var s Stats
	for _, e := range l.entries {
		if e.Shooter != side {
			continue
		}
		s.Shots++
		switch e.Result {
		case types.Hit:
			s.Hits++
		case types.Destroyed:
			s.Hits++
			s.Sunk++
		}
	}
	return s
}

// Streak returns how many consecutive shots at the end of the log belong to
// the side that fired last.
func (l *ShotLog) Streak() int {
	if len(l.entries) == 0 {
		return 0
	}
	last := l.entries[len(l.entries)-1].Shooter
	n := 0
	for i := len(l.entries) - 1; i >= 0 && l.entries[i].Shooter == last; i-- {
		n++
	}
	return n
}
