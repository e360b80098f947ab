package storage

import "time"

// RecordKind names the kind of a journaled event.
type RecordKind string

const (
	KindMove    RecordKind = "move"
	KindTick    RecordKind = "tick"
	KindRestart RecordKind = "restart"
)

// Record is one journaled event. Repeat is only meaningful for ticks,
// where a run of consecutive ticks is stored as a single record.
type Record struct {
	Kind   RecordKind
	DX, DY float64
	Repeat int
}

// Replay is a recorded run: the tuning it was played with and the events
// that drove it.
type Replay struct {
	ID         int64
	GameID     string
	Difficulty string
	Tuning     string // YAML tuning in effect for the run
	BestScore  int    // Best score reached during the session
	FinalLevel int
	Ticks      int
	CreatedAt  time.Time
	Records    []Record
}

// Compact merges consecutive tick records into runs.
func Compact(records []Record) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if r.Kind == KindTick {
			if r.Repeat <= 0 {
				r.Repeat = 1
			}
			if n := len(out); n > 0 && out[n-1].Kind == KindTick {
				out[n-1].Repeat += r.Repeat
				continue
			}
		} else {
			r.Repeat = 1
		}
		out = append(out, r)
	}
	return out
}

// Expand is the inverse of Compact: every tick run becomes single ticks.
func Expand(records []Record) []Record {
	out := make([]Record, 0, Ticks(records))
	for _, r := range records {
		if r.Kind != KindTick {
			out = append(out, r)
			continue
		}
		for range max(r.Repeat, 1) {
			out = append(out, Record{Kind: KindTick, Repeat: 1})
		}
	}
	return out
}

// Ticks counts the ticks in a record stream.
func Ticks(records []Record) int {
	n := 0
	for _, r := range records {
		if r.Kind == KindTick {
			n += max(r.Repeat, 1)
		}
	}
	return n
}
