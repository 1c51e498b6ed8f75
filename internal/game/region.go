package game

import (
	"errors"
	"strings"
)

// Region defines the supported geographic scopes.
type Region string

const (
	RegionGlobal       Region = "global"
	RegionEurope       Region = "europe"
	RegionAsia         Region = "asia"
	RegionAfrica       Region = "africa"
	RegionNorthAmerica Region = "north-america"
	RegionSouthAmerica Region = "south-america"
	RegionOceania      Region = "oceania"
	RegionCustom       Region = "custom"
)

var regionOrder = []Region{
	RegionGlobal,
	RegionEurope,
	RegionAsia,
	RegionAfrica,
	RegionNorthAmerica,
	RegionSouthAmerica,
	RegionOceania,
	RegionCustom,
}

var explorableRegionOrder = []Region{
	RegionEurope,
	RegionAsia,
	RegionAfrica,
	RegionNorthAmerica,
	RegionSouthAmerica,
	RegionOceania,
}

// Regions returns all regions in canonical order.
func Regions() []Region {
	return append([]Region(nil), regionOrder...)
}

// ExplorableRegions returns the concrete regions a player can be steered
// toward, excluding the global and custom scopes, in canonical order.
func ExplorableRegions() []Region {
	return append([]Region(nil), explorableRegionOrder...)
}

// ParseRegion normalizes and validates a region string.
func ParseRegion(raw string) (Region, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return "", errors.New("region is required")
	}
	for _, region := range regionOrder {
		if normalized == string(region) {
			return region, nil
		}
	}
	return "", errors.New("region is invalid")
}

// DisplayName renders the region slug as a human-readable title,
// e.g. "north-america" -> "North America".
func (r Region) DisplayName() string {
	return titleFromSlug(string(r))
}
