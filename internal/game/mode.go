package game

import (
	"errors"
	"strings"
)

// Mode defines the supported game modes.
type Mode string

const (
	ModeCapitals              Mode = "capitals"
	ModeMispronouncedCapitals Mode = "mispronounced-capitals"
	ModeMultipleCapitals      Mode = "multiple-capitals"
	ModeHiddenOutlines        Mode = "hidden-outlines"
	ModeFlagQuirks            Mode = "flag-quirks"
	ModeMysteryMix            Mode = "mystery-mix"
	ModeCustom                Mode = "custom"
)

var modeOrder = []Mode{
	ModeCapitals,
	ModeMispronouncedCapitals,
	ModeMultipleCapitals,
	ModeHiddenOutlines,
	ModeFlagQuirks,
	ModeMysteryMix,
	ModeCustom,
}

var challengeModeOrder = []Mode{
	ModeMispronouncedCapitals,
	ModeMultipleCapitals,
	ModeHiddenOutlines,
	ModeFlagQuirks,
	ModeMysteryMix,
}

// Modes returns all game modes in canonical order.
func Modes() []Mode {
	return append([]Mode(nil), modeOrder...)
}

// ChallengeModes returns the advanced modes suggested to players who have
// mastered a starter mode, in canonical order.
func ChallengeModes() []Mode {
	return append([]Mode(nil), challengeModeOrder...)
}

// ParseMode normalizes and validates a mode string.
func ParseMode(raw string) (Mode, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return "", errors.New("game mode is required")
	}
	for _, mode := range modeOrder {
		if normalized == string(mode) {
			return mode, nil
		}
	}
	return "", errors.New("game mode is invalid")
}

// DisplayName renders the mode slug as a human-readable title,
// e.g. "mispronounced-capitals" -> "Mispronounced Capitals".
func (m Mode) DisplayName() string {
	return titleFromSlug(string(m))
}

func titleFromSlug(slug string) string {
	words := strings.Split(slug, "-")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
