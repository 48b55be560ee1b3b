package manager

import (
	"sort"
	"time"
)

const (
	GroupSize          = 10  // records folded into one aggregate
	MaxRecordsPerLevel = 100 // records kept at one compression level
)

// GameRecord is one finished game, or an aggregate of several
type GameRecord struct {
	ID               string    `json:"id"`
	StartTime        time.Time `json:"startTime"`
	EndTime          time.Time `json:"endTime"`
	Difficulty       string    `json:"difficulty,omitempty"`
	Score            int       `json:"score"`
	PowerUps         int       `json:"powerUps"`
	CompressionIndex int       `json:"compressionIndex"` // 0 for single games
	GamesCount       int       `json:"gamesCount"`
	AverageScore     float64   `json:"averageScore"`
	MaxScore         int       `json:"maxScore"`
	MinScore         int       `json:"minScore"`
}

// Duration is the play time of a single record
func (r GameRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// History keeps finished games, folding old ones into aggregates so the
// record stays bounded.
type History struct {
	Games []GameRecord `json:"games"`
}

// Add appends a single game and compresses if needed
func (h *History) Add(r GameRecord) {
	r.CompressionIndex = 0
	r.GamesCount = 1
	r.AverageScore = float64(r.Score)
	r.MaxScore = r.Score
	r.MinScore = r.Score
	h.Games = append(h.Games, r)
	h.groupGames()
}

func (h *History) groupGames() {
	for level := 0; level <= h.maxLevel(); level++ {
		for h.count(level) > MaxRecordsPerLevel {
			h.foldOldest(level)
		}
	}

	// aggregates first (they are older), then singles chronologically
	sort.SliceStable(h.Games, func(i, j int) bool {
		if h.Games[i].CompressionIndex != h.Games[j].CompressionIndex {
			return h.Games[i].CompressionIndex > h.Games[j].CompressionIndex
		}
		return h.Games[i].StartTime.Before(h.Games[j].StartTime)
	})
}

func (h *History) count(level int) int {
	n := 0
	for _, g := range h.Games {
		if g.CompressionIndex == level {
			n++
		}
	}
	return n
}

// foldOldest merges the GroupSize oldest records of level into one record
// of level+1
func (h *History) foldOldest(level int) {
	var group, kept []GameRecord
	for _, g := range h.Games {
		if g.CompressionIndex == level {
			group = append(group, g)
		} else {
			kept = append(kept, g)
		}
	}
	sort.SliceStable(group, func(i, j int) bool {
		return group[i].StartTime.Before(group[j].StartTime)
	})

	kept = append(kept, group[GroupSize:]...)
	h.Games = append(kept, fold(group[:GroupSize], level+1))
}

func (h *History) maxLevel() int {
	top := 0
	for _, g := range h.Games {
		if g.CompressionIndex > top {
			top = g.CompressionIndex
		}
	}
	return top
}

func fold(group []GameRecord, level int) GameRecord {
	out := GameRecord{
		ID:               group[0].ID,
		StartTime:        group[0].StartTime,
		EndTime:          group[0].EndTime,
		CompressionIndex: level,
		MaxScore:         group[0].MaxScore,
		MinScore:         group[0].MinScore,
	}

	var total float64
	for _, g := range group {
		if g.MaxScore > out.MaxScore {
			out.MaxScore = g.MaxScore
		}
		if g.MinScore < out.MinScore {
			out.MinScore = g.MinScore
		}
		if g.StartTime.Before(out.StartTime) {
			out.StartTime = g.StartTime
		}
		if g.EndTime.After(out.EndTime) {
			out.EndTime = g.EndTime
		}
		total += g.AverageScore * float64(g.GamesCount)
		out.GamesCount += g.GamesCount
		out.PowerUps += g.PowerUps
	}
	out.AverageScore = total / float64(out.GamesCount)
	out.Score = out.MaxScore
	return out
}

// GamesPlayed counts every game, including the folded ones
func (h History) GamesPlayed() int {
	total := 0
	for _, g := range h.Games {
		total += g.GamesCount
	}
	return total
}

// AverageScore over every game recorded
func (h History) AverageScore() float64 {
	games := h.GamesPlayed()
	if games == 0 {
		return 0
	}
	var total float64
	for _, g := range h.Games {
		total += g.AverageScore * float64(g.GamesCount)
	}
	return total / float64(games)
}

// MaxScore is the best score recorded
func (h History) MaxScore() int {
	best := 0
	for _, g := range h.Games {
		if g.MaxScore > best {
			best = g.MaxScore
		}
	}
	return best
}

// Recent returns up to n single-game records, newest last
func (h History) Recent(n int) []GameRecord {
	var singles []GameRecord
	for _, g := range h.Games {
		if g.CompressionIndex == 0 {
			singles = append(singles, g)
		}
	}
	if len(singles) > n {
		singles = singles[len(singles)-n:]
	}
	return singles
}
