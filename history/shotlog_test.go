package history

import (
	"testing"

	"seabattle/types"
)

func TestNewShotLog(t *testing.T) {
	log := NewShotLog()
	if log.Len() != 0 {
		t.Fatalf("new log should be empty, got %d entries", log.Len())
	}
	if got := log.Last(5); len(got) != 0 {
		t.Fatalf("Last on empty log should be empty, got %v", got)
	}
	if log.Streak() != 0 {
		t.Fatal("streak of empty log should be 0")
	}
}

func TestShotLogAdd(t *testing.T) {
	log := NewShotLog()
	e := log.Add(types.Human, types.Coord{Row: 1, Col: 2}, types.Hit)
	if e.Seq != 1 {
		t.Fatalf("first entry should have seq 1, got %d", e.Seq)
	}
	e = log.Add(types.Human, types.Coord{Row: 1, Col: 3}, types.Destroyed)
	if e.Seq != 2 {
		t.Fatalf("second entry should have seq 2, got %d", e.Seq)
	}
	if log.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", log.Len())
	}
}

func TestEntriesIsCopy(t *testing.T) {
	log := NewShotLog()
	log.Add(types.Computer, types.Coord{Row: 0, Col: 0}, types.Miss)
	entries := log.Entries()
	entries[0].Result = types.Destroyed
	if log.Entries()[0].Result != types.Miss {
		t.Fatal("mutating Entries() result should not change the log")
	}
}

func TestLast(t *testing.T) {
	log := NewShotLog()
	for i := 0; i < 5; i++ {
		log.Add(types.Human, types.Coord{Row: i, Col: 0}, types.Miss)
	}
	tests := []struct {
		n        int
		wantLen  int
		firstSeq int
	}{
		{0, 0, 0},
		{2, 2, 4},
		{5, 5, 1},
		{10, 5, 1},
	}
	for _, tt := range tests {
		got := log.Last(tt.n)
		if len(got) != tt.wantLen {
			t.Errorf("Last(%d) returned %d entries, want %d", tt.n, len(got), tt.wantLen)
			continue
		}
		if tt.wantLen > 0 && got[0].Seq != tt.firstSeq {
			t.Errorf("Last(%d)[0].Seq = %d, want %d", tt.n, got[0].Seq, tt.firstSeq)
		}
	}
}

func TestStats(t *testing.T) {
	log := NewShotLog()
	log.Add(types.Human, types.Coord{Row: 0, Col: 0}, types.Hit)
	log.Add(types.Human, types.Coord{Row: 0, Col: 1}, types.Destroyed)
	log.Add(types.Human, types.Coord{Row: 3, Col: 3}, types.Miss)
	log.Add(types.Computer, types.Coord{Row: 2, Col: 2}, types.Miss)

	human := log.Stats(types.Human)
	if human.Shots != 3 || human.Hits != 2 || human.Sunk != 1 {
		t.Fatalf("human stats = %+v, want {Shots:3 Hits:2 Sunk:1}", human)
	}
	if got, want := human.Accuracy(), 200.0/3; got != want {
		t.Errorf("human accuracy = %v, want %v", got, want)
	}

	computer := log.Stats(types.Computer)
	if computer.Shots != 1 || computer.Hits != 0 {
		t.Fatalf("computer stats = %+v, want {Shots:1 Hits:0 Sunk:0}", computer)
	}
	if computer.Accuracy() != 0 {
		t.Errorf("computer accuracy = %v, want 0", computer.Accuracy())
	}
	if (Stats{}).Accuracy() != 0 {
		t.Error("accuracy with no shots should be 0")
	}
}

func TestStreak(t *testing.T) {
	log := NewShotLog()
	log.Add(types.Human, types.Coord{Row: 0, Col: 0}, types.Miss)
	log.Add(types.Computer, types.Coord{Row: 0, Col: 0}, types.Hit)
	log.Add(types.Computer, types.Coord{Row: 0, Col: 1}, types.Hit)
	if got := log.Streak(); got != 2 {
		t.Fatalf("Streak() = %d, want 2", got)
	}
	log.Add(types.Computer, types.Coord{Row: 0, Col: 2}, types.Miss)
	if got := log.Streak(); got != 3 {
		t.Fatalf("Streak() = %d, want 3", got)
	}
}
