package recommend

import "strings"

// positionGroups lists, for each target position, the player positions that can substitute for it
var positionGroups = map[string][]string{
	"P":  {"P", "SP", "RP", "CP"},
	"SP": {"P", "SP", "RP", "CP"},
	"RP": {"P", "SP", "RP", "CP"},
	"CP": {"P", "SP", "RP", "CP"},
	"C":  {"C"},
	"1B": {"1B", "IF"},
	"2B": {"2B", "IF", "MI"},
	"3B": {"3B", "IF", "CI"},
	"SS": {"SS", "IF", "MI"},
	"LF": {"LF", "OF"},
	"CF": {"CF", "OF"},
	"RF": {"RF", "OF"},
	"DH": {"DH", "UTIL"},
}

var utilityPositions = map[string]bool{
	"UTIL": true,
	"IF":   true,
	"OF":   true,
}

// IsPitchingPosition reports whether code is one of the pitching roles
func IsPitchingPosition(code string) bool {
	switch normalize(code) {
	case "P", "SP", "RP", "CP":
		return true
	}
	return false
}

func inGroup(target, position string) bool {
	for _, code := range positionGroups[target] {
		if code == position {
			return true
		}
	}
	return false
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
