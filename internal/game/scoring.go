package game

import "time"

const (
	pointsPerLine       = 100
	pointsPerLevel      = 1000
	baseFallInterval    = 1000 * time.Millisecond
	fallIntervalStep    = 100 * time.Millisecond
	minimumFallInterval = 100 * time.Millisecond
)

// Scoring tracks score, level and the auto-fall interval for one session.
type Scoring struct {
	Score        int
	Level        int
	Lines        int
	FallInterval time.Duration
}

func NewScoring() Scoring {
	return Scoring{
		Level:        1,
		FallInterval: baseFallInterval,
	}
}

// LevelFor returns the level reached at score.
func LevelFor(score int) int {
	return 1 + score/pointsPerLevel
}

// FallIntervalFor returns the auto-fall interval at level.
func FallIntervalFor(level int) time.Duration {
	return max(minimumFallInterval, baseFallInterval-time.Duration(level)*fallIntervalStep)
}

// Apply credits a line clear. Points are awarded at the level held before
// the clear; level and interval are then recomputed together. A zero count
// changes nothing. It reports whether the level went up.
func (s *Scoring) Apply(linesCleared int) bool {
	if linesCleared <= 0 {
		return false
	}
	prev := s.Level
	s.Score += pointsPerLine * linesCleared * s.Level
	s.Lines += linesCleared
	s.Level = LevelFor(s.Score)
	s.FallInterval = FallIntervalFor(s.Level)
	return s.Level > prev
}
