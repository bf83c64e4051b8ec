package catalog

import "strings"

// Level groups maturity ratings for badge colors.
type Level int

const (
	LevelUnrated Level = iota
	LevelKids
	LevelFamily
	LevelTeen
	LevelAdult
)

// MaturityLevel maps a US film or TV rating to a level.
func MaturityLevel(rating string) Level {
	switch strings.ToUpper(strings.TrimSpace(rating)) {
	case "TV-Y", "TV-Y7", "G", "TV-G":
		return LevelKids
	case "PG", "TV-PG":
		return LevelFamily
	case "PG-13", "TV-14":
		return LevelTeen
	case "R", "NC-17", "TV-MA":
		return LevelAdult
	default:
		return LevelUnrated
	}
}
