package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScoringApply(t *testing.T) {
	tests := []struct {
		name         string
		start        Scoring
		lines        int
		wantScore    int
		wantLevel    int
		wantInterval time.Duration
		wantLeveled  bool
	}{
		{
			name:         "two lines at level one",
			start:        NewScoring(),
			lines:        2,
			wantScore:    200,
			wantLevel:    1,
			wantInterval: 900 * time.Millisecond,
		},
		{
			name:         "crossing into level two",
			start:        Scoring{Score: 950, Level: 1, FallInterval: 900 * time.Millisecond},
			lines:        1,
			wantScore:    1050,
			wantLevel:    2,
			wantInterval: 800 * time.Millisecond,
			wantLeveled:  true,
		},
		{
			name:         "points use the level before the clear",
			start:        Scoring{Score: 1900, Level: 2, FallInterval: 800 * time.Millisecond},
			lines:        4,
			wantScore:    2700,
			wantLevel:    3,
			wantInterval: 700 * time.Millisecond,
			wantLeveled:  true,
		},
		{
			name:         "interval floor",
			start:        Scoring{Score: 9900, Level: 10, FallInterval: 100 * time.Millisecond},
			lines:        1,
			wantScore:    10900,
			wantLevel:    11,
			wantInterval: 100 * time.Millisecond,
			wantLeveled:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.start
			leveled := s.Apply(tt.lines)
			assert.Equal(t, tt.wantScore, s.Score)
			assert.Equal(t, tt.wantLevel, s.Level)
			assert.Equal(t, tt.wantInterval, s.FallInterval)
			assert.Equal(t, tt.start.Lines+tt.lines, s.Lines)
			assert.Equal(t, tt.wantLeveled, leveled)
		})
	}
}

func TestScoringZeroLinesIsNoop(t *testing.T) {
	s := NewScoring()
	assert.False(t, s.Apply(0))
	assert.Equal(t, NewScoring(), s)
	assert.Equal(t, time.Second, s.FallInterval)
}

func TestFallIntervalFor(t *testing.T) {
	assert.Equal(t, 900*time.Millisecond, FallIntervalFor(1))
	assert.Equal(t, 100*time.Millisecond, FallIntervalFor(9))
	assert.Equal(t, 100*time.Millisecond, FallIntervalFor(42))
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, 1, LevelFor(0))
	assert.Equal(t, 1, LevelFor(999))
	assert.Equal(t, 2, LevelFor(1000))
	assert.Equal(t, 5, LevelFor(4200))
}
