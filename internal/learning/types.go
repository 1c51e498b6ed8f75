package learning

import "geowiz-backend/internal/game"

// InsightType classifies a performance insight.
type InsightType string

const (
	InsightStrength    InsightType = "strength"
	InsightWeakness    InsightType = "weakness"
	InsightOpportunity InsightType = "opportunity"
)

// Insight is one qualitative observation about a user's play history.
// Insights are recomputed on every request and never persisted.
type Insight struct {
	Type        InsightType `json:"type"`
	Category    string      `json:"category"`
	Description string      `json:"description"`
	Evidence    string      `json:"evidence"`
}

// Priority orders recommendations for presentation.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// RecommendationType classifies what a recommendation asks the user to do.
type RecommendationType string

const (
	TypeFocusArea            RecommendationType = "focus_area"
	TypeDifficultyAdjustment RecommendationType = "difficulty_adjustment"
	TypeNewRegion            RecommendationType = "new_region"
	TypeSkillBuilding        RecommendationType = "skill_building"
)

// Recommendation is one next-step suggestion. SuggestedMode and
// SuggestedRegion pre-fill a "play this next" action when both are set.
type Recommendation struct {
	ID              string             `json:"id"`
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	Priority        Priority           `json:"priority"`
	SuggestedMode   *game.Mode         `json:"suggestedMode"`
	SuggestedRegion *game.Region       `json:"suggestedRegion"`
	Reasoning       string             `json:"reasoning"`
	Type            RecommendationType `json:"type"`
}
