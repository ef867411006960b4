package engine

import (
	"strings"
	"time"

	"github.com/strike9903/poliprint-studio-sub002/internal/models"
)

// AnalysisContext carries everything psychology inference looks at: the
// requesting device, past orders, the order being priced and the wall-clock
// moment of the request.
type AnalysisContext struct {
	UserAgent    string
	OrderHistory []models.Order
	CurrentOrder models.OrderDraft
	Timestamp    time.Time
}

// AnalyzePsychology derives a psychology profile from request context. It is
// a pure function: no randomness, no I/O, inputs are never mutated, and
// identical inputs always produce identical profiles.
//
// PreferredMethods is left empty here; mining it out of order history is a
// separate concern (see service.MinePreferredMethods).
func AnalyzePsychology(ctx AnalysisContext) models.PsychologyProfile {
	device := detectDevice(ctx.UserAgent)
	orderValue := ctx.CurrentOrder.Total()
	hasHistory := len(ctx.OrderHistory) > 0

	profile := models.PsychologyProfile{
		DeviceType:       device,
		OrderValue:       orderValue,
		IsFirstTime:      !hasHistory,
		TimeOfDay:        timeOfDay(ctx.Timestamp.Hour()),
		DayOfWeek:        dayOfWeek(ctx.Timestamp.Weekday()),
		PreferredMethods: []models.PaymentMethodID{},
		FailedAttempts:   []models.FailedAttempt{},
	}

	// Larger purchases make users more cautious.
	switch {
	case orderValue > 5000:
		profile.RiskTolerance = models.RiskLow
	case orderValue > 1000:
		profile.RiskTolerance = models.RiskMedium
	default:
		profile.RiskTolerance = models.RiskHigh
	}

	// Repeat customers are modeled as more price-aware.
	if hasHistory {
		profile.PriceSensitivity = models.PriceSensitivityHigh
	} else {
		profile.PriceSensitivity = models.PriceSensitivityMedium
	}

	switch {
	case device == models.DeviceMobile:
		profile.ConveniencePreference = models.PreferSpeed
	case hasHistory:
		profile.ConveniencePreference = models.PreferFamiliarity
	default:
		profile.ConveniencePreference = models.PreferSecurity
	}

	profile.HasApplePay = device == models.DeviceMobile && strings.Contains(ctx.UserAgent, "iPhone")
	profile.HasGooglePay = device == models.DeviceMobile && strings.Contains(ctx.UserAgent, "Android")

	return profile
}

func detectDevice(userAgent string) models.DeviceType {
	switch {
	case strings.Contains(userAgent, "Mobile"),
		strings.Contains(userAgent, "Android"),
		strings.Contains(userAgent, "iPhone"):
		return models.DeviceMobile
	case strings.Contains(userAgent, "iPad"),
		strings.Contains(userAgent, "Tablet"):
		return models.DeviceTablet
	default:
		return models.DeviceDesktop
	}
}

func timeOfDay(hour int) models.TimeOfDay {
	switch {
	case hour < 6:
		return models.TimeNight
	case hour < 12:
		return models.TimeMorning
	case hour < 18:
		return models.TimeAfternoon
	case hour < 22:
		return models.TimeEvening
	default:
		return models.TimeNight
	}
}

func dayOfWeek(day time.Weekday) models.DayOfWeek {
	if day == time.Saturday || day == time.Sunday {
		return models.DayWeekend
	}
	return models.DayWeekday
}
