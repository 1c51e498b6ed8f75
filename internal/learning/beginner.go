package learning

import "geowiz-backend/internal/game"

// beginnerRecommendations is the hand-authored list served to users with
// no play history. Static configuration, never derived from data.
var beginnerRecommendations = []Recommendation{
	{
		ID:              "start-capitals",
		Title:           "Master World Capitals",
		Description:     "Build your foundation with capital cities - the cornerstone of geography knowledge",
		Priority:        PriorityHigh,
		SuggestedMode:   modePtr(game.ModeCapitals),
		SuggestedRegion: regionPtr(game.RegionGlobal),
		Reasoning:       "Capital cities are the perfect starting point. Learn country-capital relationships that form the basis of all geographic knowledge.",
		Type:            TypeSkillBuilding,
	},
	{
		ID:              "explore-europe",
		Title:           "Explore European Geography",
		Description:     "Start with Europe - familiar names, manageable size, rich history",
		Priority:        PriorityHigh,
		SuggestedMode:   modePtr(game.ModeCapitals),
		SuggestedRegion: regionPtr(game.RegionEurope),
		Reasoning:       "Europe offers a perfect balance of challenge and familiarity, with countries you've likely heard of before.",
		Type:            TypeNewRegion,
	},
	{
		ID:              "try-asia",
		Title:           "Challenge Yourself with Asia",
		Description:     "Ready for something different? Test your knowledge of Asian capitals and cultures",
		Priority:        PriorityMedium,
		SuggestedMode:   modePtr(game.ModeCapitals),
		SuggestedRegion: regionPtr(game.RegionAsia),
		Reasoning:       "Asia provides an excellent challenge with diverse countries and fascinating capital cities.",
		Type:            TypeNewRegion,
	},
	{
		ID:              "flag-basics",
		Title:           "Learn Flag Patterns",
		Description:     "Discover the stories behind country flags and their unique quirks",
		Priority:        PriorityMedium,
		SuggestedMode:   modePtr(game.ModeFlagQuirks),
		SuggestedRegion: regionPtr(game.RegionGlobal),
		Reasoning:       "Flags are visual and memorable - a fun way to connect countries with their symbols and history.",
		Type:            TypeSkillBuilding,
	},
	{
		ID:              "americas-focus",
		Title:           "Discover the Americas",
		Description:     "From Canada to Chile - explore North and South American geography",
		Priority:        PriorityMedium,
		SuggestedMode:   modePtr(game.ModeCapitals),
		SuggestedRegion: regionPtr(game.RegionNorthAmerica),
		Reasoning:       "The Americas offer diverse geography and interesting capital cities to learn.",
		Type:            TypeNewRegion,
	},
	{
		ID:              "pronunciation-fun",
		Title:           "Pronunciation Challenge",
		Description:     "Think you know how to say those tricky capital names? Test yourself!",
		Priority:        PriorityLow,
		SuggestedMode:   modePtr(game.ModeMispronouncedCapitals),
		SuggestedRegion: regionPtr(game.RegionGlobal),
		Reasoning:       "Once you know the capitals, challenge yourself with correct pronunciation - it's trickier than you think!",
		Type:            TypeSkillBuilding,
	},
}

// BeginnerRecommendations returns a copy of the static starter list.
func BeginnerRecommendations() []Recommendation {
	return append([]Recommendation(nil), beginnerRecommendations...)
}
