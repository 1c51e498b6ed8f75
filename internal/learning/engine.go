package learning

import (
	"fmt"
	"math"
	"strings"

	"geowiz-backend/internal/game"
	"geowiz-backend/internal/sessions"
)

// The engine is a pure function of the session history handed in: no
// stored state, no clock, no randomness. Feeding it the same history
// twice yields identical output.

const (
	masteryThreshold    = 0.8
	weaknessThreshold   = 0.5
	focusThreshold      = 0.6
	exploreThreshold    = 0.7
	difficultyThreshold = 0.9

	regionMinQuestions = 5
	streakThreshold    = 5
	recentWindow       = 3
	maxRecommendations = 4
)

// groupTotals accumulates answer counts for one mode or region.
type groupTotals struct {
	questions int
	correct   int
}

// accuracy is zero-guarded: a group with no answered questions reports
// 0 and ok=false rather than NaN.
func (g groupTotals) accuracy() (float64, bool) {
	if g.questions == 0 {
		return 0, false
	}
	return float64(g.correct) / float64(g.questions), true
}

// statAccumulator groups totals by key, remembering the order keys were
// first encountered. Iteration over a bare map would make insight order
// nondeterministic.
type statAccumulator struct {
	order  []string
	totals map[string]*groupTotals
}

func newStatAccumulator() *statAccumulator {
	return &statAccumulator{totals: make(map[string]*groupTotals)}
}

func (a *statAccumulator) add(key string, questions, correct int) {
	t, ok := a.totals[key]
	if !ok {
		t = &groupTotals{}
		a.totals[key] = t
		a.order = append(a.order, key)
	}
	t.questions += questions
	t.correct += correct
}

func (a *statAccumulator) has(key string) bool {
	_, ok := a.totals[key]
	return ok
}

func modeTotals(history []sessions.GameSession) *statAccumulator {
	acc := newStatAccumulator()
	for _, s := range history {
		acc.add(string(s.Mode), s.QuestionsAnswered, s.CorrectAnswers)
	}
	return acc
}

func regionTotals(history []sessions.GameSession) *statAccumulator {
	acc := newStatAccumulator()
	for _, s := range history {
		acc.add(string(s.Region), s.QuestionsAnswered, s.CorrectAnswers)
	}
	return acc
}

// recentAccuracy computes accuracy over the last few sessions of the
// supplied order. Zero when the window answered no questions.
func recentAccuracy(history []sessions.GameSession) float64 {
	start := len(history) - recentWindow
	if start < 0 {
		start = 0
	}
	var questions, correct int
	for _, s := range history[start:] {
		questions += s.QuestionsAnswered
		correct += s.CorrectAnswers
	}
	if questions == 0 {
		return 0
	}
	return float64(correct) / float64(questions)
}

func peakStreak(history []sessions.GameSession) int {
	max := 0
	for _, s := range history {
		if s.MaxStreak > max {
			max = s.MaxStreak
		}
	}
	return max
}

func pct(accuracy float64) int {
	return int(math.Round(accuracy * 100))
}

// spaced renders a slug for prose, "hidden-outlines" -> "hidden outlines".
func spaced(slug string) string {
	return strings.ReplaceAll(slug, "-", " ")
}

// AnalyzePerformance derives qualitative insights from a user's session
// history. An empty history yields the single getting-started insight.
func AnalyzePerformance(history []sessions.GameSession) []Insight {
	if len(history) == 0 {
		return []Insight{{
			Type:        InsightOpportunity,
			Category:    "Getting Started",
			Description: "Ready to begin your geography journey",
			Evidence:    "No games played yet",
		}}
	}

	insights := make([]Insight, 0)

	modes := modeTotals(history)
	for _, mode := range modes.order {
		acc, ok := modes.totals[mode].accuracy()
		if !ok {
			continue
		}
		switch {
		case acc >= masteryThreshold:
			insights = append(insights, Insight{
				Type:        InsightStrength,
				Category:    fmt.Sprintf("%s Mastery", mode),
				Description: fmt.Sprintf("Excellent performance in %s questions", spaced(mode)),
				Evidence:    fmt.Sprintf("%d%% accuracy across %d questions", pct(acc), modes.totals[mode].questions),
			})
		case acc < weaknessThreshold:
			insights = append(insights, Insight{
				Type:        InsightWeakness,
				Category:    fmt.Sprintf("%s Challenge", mode),
				Description: fmt.Sprintf("Room for improvement in %s questions", spaced(mode)),
				Evidence:    fmt.Sprintf("%d%% accuracy - consider more practice", pct(acc)),
			})
		}
	}

	regions := regionTotals(history)
	for _, region := range regions.order {
		totals := regions.totals[region]
		acc, ok := totals.accuracy()
		if !ok {
			continue
		}
		if acc >= masteryThreshold && totals.questions >= regionMinQuestions {
			insights = append(insights, Insight{
				Type:        InsightStrength,
				Category:    fmt.Sprintf("%s Expert", region),
				Description: fmt.Sprintf("Strong knowledge of %s geography", spaced(region)),
				Evidence:    fmt.Sprintf("%d%% accuracy in %s", pct(acc), region),
			})
		}
	}

	if streak := peakStreak(history); streak >= streakThreshold {
		insights = append(insights, Insight{
			Type:        InsightStrength,
			Category:    "Consistency",
			Description: "Great ability to maintain focus and accuracy",
			Evidence:    fmt.Sprintf("Achieved %d question streak", streak),
		})
	}

	return insights
}

// Recommend produces at most four prioritized next-step suggestions.
// Rules fire in a fixed order and never re-sort, so output is stable for
// a given history.
func Recommend(history []sessions.GameSession) []Recommendation {
	if len(history) == 0 {
		return BeginnerRecommendations()
	}

	modes := modeTotals(history)
	regions := regionTotals(history)
	recent := recentAccuracy(history)

	recs := make([]Recommendation, 0, maxRecommendations)

	// Weakest mode below the focus threshold. Ties keep the mode seen
	// first in the history.
	if mode, totals, ok := weakestMode(modes); ok {
		acc, _ := totals.accuracy()
		recs = append(recs, Recommendation{
			ID:              fmt.Sprintf("improve-%s", mode),
			Title:           fmt.Sprintf("Master %s", mode.DisplayName()),
			Description:     fmt.Sprintf("Focus on improving your %s skills with targeted practice", mode.DisplayName()),
			Priority:        PriorityHigh,
			SuggestedMode:   modePtr(mode),
			SuggestedRegion: regionPtr(game.RegionGlobal),
			Reasoning:       fmt.Sprintf("Current accuracy: %d%%. Practice will help build confidence.", pct(acc)),
			Type:            TypeFocusArea,
		})
	}

	// A mastered mode unlocks the first advanced mode never played.
	if mastered, acc, ok := firstMasteredMode(modes); ok {
		for _, candidate := range game.ChallengeModes() {
			if modes.has(string(candidate)) {
				continue
			}
			recs = append(recs, Recommendation{
				ID:              fmt.Sprintf("challenge-%s", candidate),
				Title:           fmt.Sprintf("Try %s", candidate.DisplayName()),
				Description:     fmt.Sprintf("Ready for a new challenge? Test your skills with %s", candidate.DisplayName()),
				Priority:        PriorityMedium,
				SuggestedMode:   modePtr(candidate),
				SuggestedRegion: regionPtr(game.RegionGlobal),
				Reasoning:       fmt.Sprintf("Your %d%% accuracy in %s shows you're ready for more advanced challenges.", pct(acc), spaced(string(mastered))),
				Type:            TypeSkillBuilding,
			})
			break
		}
	}

	// Solid recent play unlocks the first unexplored region.
	if recent >= exploreThreshold {
		for _, candidate := range game.ExplorableRegions() {
			if regions.has(string(candidate)) {
				continue
			}
			recs = append(recs, Recommendation{
				ID:              fmt.Sprintf("explore-%s", candidate),
				Title:           fmt.Sprintf("Explore %s", candidate.DisplayName()),
				Description:     fmt.Sprintf("Expand your geographical knowledge to %s", candidate.DisplayName()),
				Priority:        PriorityMedium,
				SuggestedMode:   modePtr(bestMode(modes)),
				SuggestedRegion: regionPtr(candidate),
				Reasoning:       fmt.Sprintf("%d%% accuracy across your recent games suggests you're ready to explore new regions.", pct(recent)),
				Type:            TypeNewRegion,
			})
			break
		}
	}

	// Excellent recent play points at the hardest built-in mode.
	if recent >= difficultyThreshold {
		recs = append(recs, Recommendation{
			ID:              "difficulty-increase",
			Title:           "Challenge Yourself",
			Description:     "Your accuracy is excellent! Try harder game modes to push your limits",
			Priority:        PriorityLow,
			SuggestedMode:   modePtr(game.ModeMysteryMix),
			SuggestedRegion: regionPtr(game.RegionGlobal),
			Reasoning:       fmt.Sprintf("%d%% recent accuracy shows you're ready for harder challenges.", pct(recent)),
			Type:            TypeDifficultyAdjustment,
		})
	}

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

// weakestMode finds the lowest-accuracy mode strictly below the focus
// threshold, preferring the first-encountered mode on ties.
func weakestMode(modes *statAccumulator) (game.Mode, groupTotals, bool) {
	var (
		found    bool
		best     string
		bestAcc  float64
		bestStat groupTotals
	)
	for _, mode := range modes.order {
		totals := modes.totals[mode]
		acc, ok := totals.accuracy()
		if !ok || acc >= focusThreshold {
			continue
		}
		if !found || acc < bestAcc {
			found = true
			best = mode
			bestAcc = acc
			bestStat = *totals
		}
	}
	if !found {
		return "", groupTotals{}, false
	}
	return game.Mode(best), bestStat, true
}

// firstMasteredMode returns the first-encountered mode at or above the
// mastery threshold.
func firstMasteredMode(modes *statAccumulator) (game.Mode, float64, bool) {
	for _, mode := range modes.order {
		acc, ok := modes.totals[mode].accuracy()
		if ok && acc >= masteryThreshold {
			return game.Mode(mode), acc, true
		}
	}
	return "", 0, false
}

// bestMode returns the user's highest-accuracy mode, first-encountered
// on ties, falling back to capitals when nothing qualifies.
func bestMode(modes *statAccumulator) game.Mode {
	var (
		found   bool
		best    string
		bestAcc float64
	)
	for _, mode := range modes.order {
		acc, ok := modes.totals[mode].accuracy()
		if !ok {
			continue
		}
		if !found || acc > bestAcc {
			found = true
			best = mode
			bestAcc = acc
		}
	}
	if !found {
		return game.ModeCapitals
	}
	return game.Mode(best)
}

func modePtr(m game.Mode) *game.Mode {
	return &m
}

func regionPtr(r game.Region) *game.Region {
	return &r
}
