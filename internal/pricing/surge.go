package pricing

import (
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/guttosm/pricing-service/internal/domain/model"
)

// HighDemandThreshold is the demand level above which the demand rule fires.
const HighDemandThreshold = 80

var (
	unitMultiplier     = decimal.NewFromInt(1)
	peakFloor          = decimal.NewFromFloat(1.5)
	fridayEveningFloor = decimal.NewFromFloat(1.3)
	weekendFloor       = decimal.NewFromFloat(1.4)
	weatherFactor      = decimal.NewFromFloat(1.5)
	weatherCap         = decimal.NewFromFloat(3.0)
	demandFactor       = decimal.NewFromFloat(1.2)
	maxMultiplier      = decimal.NewFromFloat(5.0)
)

// CalculateSurgeMultiplier returns the delivery fee multiplier, in [1.0, 5.0],
// for the context. Hour and weekday are read from sc.Time in its own location.
//
// Time-of-day rules raise the multiplier to a floor and do not stack with each
// other; weather and demand compound on top, each with its own cap.
func CalculateSurgeMultiplier(sc model.SurgeContext) float64 {
	hour, day := sc.Time.Hour(), sc.Time.Weekday()
	m := unitMultiplier

	if isPeakHour(hour) {
		m = decimal.Max(m, peakFloor)
	}

	switch {
	case day == time.Friday && hour >= 18:
		m = decimal.Max(m, fridayEveningFloor)
	case day == time.Saturday || day == time.Sunday:
		m = decimal.Max(m, weekendFloor)
	}

	if sc.Weather.Severe() {
		m = decimal.Min(m.Mul(weatherFactor), weatherCap)
	}
	if isHighDemand(sc.Demand) {
		m = decimal.Min(m.Mul(demandFactor), maxMultiplier)
	}

	return decimal.Min(m, maxMultiplier).InexactFloat64()
}

// SurgeReason explains a multiplier computed for sc. It is empty when there
// is no surge.
func SurgeReason(sc model.SurgeContext, multiplier float64) string {
	if multiplier <= 1.0 {
		return ""
	}

	var reasons []string
	if isPeakHour(sc.Time.Hour()) {
		reasons = append(reasons, "Peak hours")
	}
	switch sc.Weather {
	case model.WeatherRain:
		reasons = append(reasons, "Rain")
	case model.WeatherExtremeHeat:
		reasons = append(reasons, "Extreme heat")
	}
	if isHighDemand(sc.Demand) {
		reasons = append(reasons, "High demand")
	}

	if len(reasons) == 0 {
		return "Surge pricing applied"
	}
	return strings.Join(reasons, " + ")
}

// ApplySurge scales a fee by multiplier, rounding half up to whole paise.
// Multipliers below 1 or not finite leave the fee unchanged.
func ApplySurge(baseFee int64, multiplier float64) int64 {
	if math.IsNaN(multiplier) || math.IsInf(multiplier, 0) || multiplier < 1 {
		return baseFee
	}
	return decimal.NewFromInt(baseFee).Mul(decimal.NewFromFloat(multiplier)).Round(0).IntPart()
}

func isPeakHour(hour int) bool {
	return (hour >= 12 && hour < 14) || (hour >= 18 && hour < 22)
}

func isHighDemand(demand *int) bool {
	return demand != nil && *demand > HighDemandThreshold
}
