package validate

import "math"

const (
	MinRating = 1.0
	MaxRating = 5.0
)

// IsRating reports whether stars is a usable rating value.
func IsRating(stars float64) bool {
	if math.IsNaN(stars) {
		return false
	}
	return stars >= MinRating && stars <= MaxRating
}
