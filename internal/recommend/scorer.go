package recommend

import (
	"fmt"
	"sort"
	"time"

	"depth-chart-backend/internal/database/models"
)

const (
	DefaultLimit      = 10
	DefaultMaxReasons = 3

	// HealthPenalty applies to any player with a flagged medical condition
	HealthPenalty = -30
	healthBonus   = 20
)

// Ranked is a scored candidate for a position
type Ranked struct {
	Player  models.Player `json:"player"`
	Score   int           `json:"score"`
	Reasons []string      `json:"reasons"`
}

type reason struct {
	points int
	text   string
}

// Scorer ranks candidate players for a target position. It never touches the store.
type Scorer struct {
	limit      int
	maxReasons int
	now        func() time.Time
}

// Option configures a Scorer
type Option func(*Scorer)

// WithLimit sets how many candidates Recommend returns
func WithLimit(limit int) Option {
	return func(s *Scorer) {
		if limit > 0 {
			s.limit = limit
		}
	}
}

// WithClock sets the clock used to compute remaining eligibility
func WithClock(now func() time.Time) Option {
	return func(s *Scorer) {
		if now != nil {
			s.now = now
		}
	}
}

// NewScorer creates a scorer returning the top DefaultLimit candidates
func NewScorer(opts ...Option) *Scorer {
	s := &Scorer{
		limit:      DefaultLimit,
		maxReasons: DefaultMaxReasons,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Recommend scores every candidate against targetPosition and returns the best ones, highest score first.
// Candidates with equal scores keep their input order.
func (s *Scorer) Recommend(candidates []models.Player, targetPosition string) []Ranked {
	target := normalize(targetPosition)
	currentYear := s.now().Year()

	ranked := make([]Ranked, 0, len(candidates))
	for _, player := range candidates {
		ranked = append(ranked, s.score(player, target, currentYear))
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) > s.limit {
		ranked = ranked[:s.limit]
	}
	return ranked
}

func (s *Scorer) score(player models.Player, target string, currentYear int) Ranked {
	var reasons []reason
	reasons = append(reasons, positionFit(player, target))
	if IsPitchingPosition(target) {
		reasons = append(reasons, pitchingPerformance(player.Stats)...)
	} else {
		reasons = append(reasons, battingPerformance(player.Stats)...)
	}
	if r, ok := eligibility(player, currentYear); ok {
		reasons = append(reasons, r)
	}
	reasons = append(reasons, health(player))

	total := 0
	for _, r := range reasons {
		total += r.points
	}

	sort.SliceStable(reasons, func(i, j int) bool {
		return reasons[i].points > reasons[j].points
	})
	if len(reasons) > s.maxReasons {
		reasons = reasons[:s.maxReasons]
	}
	texts := make([]string, 0, len(reasons))
	for _, r := range reasons {
		texts = append(texts, r.text)
	}

	return Ranked{Player: player, Score: total, Reasons: texts}
}

func positionFit(player models.Player, target string) reason {
	position := normalize(player.Position)
	switch {
	case position == target:
		return reason{100, "Exact position match"}
	case inGroup(target, position):
		return reason{80, "Position group match"}
	case utilityPositions[position]:
		return reason{60, "Utility player"}
	default:
		return reason{20, "Position mismatch"}
	}
}

func pitchingPerformance(stats models.PlayerStats) []reason {
	var out []reason
	if stats.ERA != nil {
		era := *stats.ERA
		switch {
		case era < 3.00:
			out = append(out, reason{50, fmt.Sprintf("Excellent ERA: %.2f", era)})
		case era < 4.00:
			out = append(out, reason{30, fmt.Sprintf("Good ERA: %.2f", era)})
		}
	}
	if stats.Strikeouts > 50 {
		out = append(out, reason{20, fmt.Sprintf("High strikeouts: %d", stats.Strikeouts)})
	}
	if decisions := stats.Wins + stats.Losses; decisions > 0 {
		rate := float64(stats.Wins) / float64(decisions)
		if rate > 0.6 {
			out = append(out, reason{25, fmt.Sprintf("Strong win rate: %.0f%%", rate*100)})
		}
	}
	return out
}

func battingPerformance(stats models.PlayerStats) []reason {
	var out []reason
	if stats.BattingAverage != nil {
		avg := *stats.BattingAverage
		switch {
		case avg > 0.300:
			out = append(out, reason{40, fmt.Sprintf("Excellent batting average: %.3f", avg)})
		case avg > 0.250:
			out = append(out, reason{20, fmt.Sprintf("Good batting average: %.3f", avg)})
		}
	}
	if stats.HomeRuns > 5 {
		out = append(out, reason{15, fmt.Sprintf("Power hitter: %d home runs", stats.HomeRuns)})
	}
	if stats.RBI > 20 {
		out = append(out, reason{15, fmt.Sprintf("Run producer: %d RBI", stats.RBI)})
	}
	if stats.StolenBases > 10 {
		out = append(out, reason{15, fmt.Sprintf("Base stealer: %d stolen bases", stats.StolenBases)})
	}
	return out
}

func eligibility(player models.Player, currentYear int) (reason, bool) {
	if player.GraduationYear == nil || *player.GraduationYear <= currentYear {
		return reason{}, false
	}
	remaining := *player.GraduationYear - currentYear
	return reason{
		points: 5 * remaining,
		text:   fmt.Sprintf("Eligible until %d (%d years remaining)", *player.GraduationYear, remaining),
	}, true
}

func health(player models.Player) reason {
	if player.HasMedicalIssues() {
		return reason{HealthPenalty, "Has medical issues"}
	}
	return reason{healthBonus, "No medical issues"}
}
