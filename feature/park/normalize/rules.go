package normalize

import "park-sync/feature/park/models"

// Wait thresholds, in minutes, inclusive upper bounds.
const (
	greenWaitMax  = 20
	orangeWaitMax = 45
)

// Countdown thresholds, in minutes until the show, inclusive upper bounds.
const (
	greenCountdownMax  = 30
	orangeCountdownMax = 60
)

// AttractionColor buckets a wait time. The checks run in a fixed order:
// closed or unknown, non-positive, then the green and orange ceilings.
func AttractionColor(minutes *int, closed bool) models.Color {
	switch {
	case closed, minutes == nil:
		return models.ColorGray
	case *minutes <= 0:
		return models.ColorGray
	case *minutes <= greenWaitMax:
		return models.ColorGreen
	case *minutes <= orangeWaitMax:
		return models.ColorOrange
	default:
		return models.ColorRed
	}
}

// ShowTimeColor buckets one show slot: full slots are red, elapsed slots gray,
// upcoming ones by minutes until start.
func ShowTimeColor(full bool, minutesUntil int) models.Color {
	switch {
	case full:
		return models.ColorRed
	case minutesUntil <= 0:
		return models.ColorGray
	default:
		return CountdownColor(minutesUntil)
	}
}

// CountdownColor buckets a positive number of minutes until a show.
func CountdownColor(minutes int) models.Color {
	switch {
	case minutes <= greenCountdownMax:
		return models.ColorGreen
	case minutes <= orangeCountdownMax:
		return models.ColorOrange
	default:
		return models.ColorRed
	}
}
