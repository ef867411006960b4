package models

import "time"

type RiskTolerance string
type PriceSensitivity string
type ConveniencePreference string
type DeviceType string
type TimeOfDay string
type DayOfWeek string

const (
	RiskLow    RiskTolerance = "low"
	RiskMedium RiskTolerance = "medium"
	RiskHigh   RiskTolerance = "high"

	PriceSensitivityLow    PriceSensitivity = "low"
	PriceSensitivityMedium PriceSensitivity = "medium"
	PriceSensitivityHigh   PriceSensitivity = "high"

	PreferSpeed       ConveniencePreference = "speed"
	PreferSecurity    ConveniencePreference = "security"
	PreferCost        ConveniencePreference = "cost"
	PreferFamiliarity ConveniencePreference = "familiarity"

	DeviceMobile  DeviceType = "mobile"
	DeviceTablet  DeviceType = "tablet"
	DeviceDesktop DeviceType = "desktop"

	TimeMorning   TimeOfDay = "morning"
	TimeAfternoon TimeOfDay = "afternoon"
	TimeEvening   TimeOfDay = "evening"
	TimeNight     TimeOfDay = "night"

	DayWeekday DayOfWeek = "weekday"
	DayWeekend DayOfWeek = "weekend"
)

// FailedAttempt is a prior unsuccessful payment with a specific method.
type FailedAttempt struct {
	Method    PaymentMethodID `json:"method"`
	Reason    string          `json:"reason"`
	Timestamp time.Time       `json:"timestamp"`
}

// PsychologyProfile is the heuristic picture of a user inferred per request.
// It is never mutated after construction and never persisted.
type PsychologyProfile struct {
	RiskTolerance         RiskTolerance         `json:"risk_tolerance"`
	PriceSensitivity      PriceSensitivity      `json:"price_sensitivity"`
	ConveniencePreference ConveniencePreference `json:"convenience_preference"`
	DeviceType            DeviceType            `json:"device_type"`
	AgeGroup              string                `json:"age_group,omitempty"`
	HasApplePay           bool                  `json:"has_apple_pay"`
	HasGooglePay          bool                  `json:"has_google_pay"`
	OrderValue            float64               `json:"order_value"`
	IsFirstTime           bool                  `json:"is_first_time"`
	TimeOfDay             TimeOfDay             `json:"time_of_day"`
	DayOfWeek             DayOfWeek             `json:"day_of_week"`
	PreferredMethods      []PaymentMethodID     `json:"preferred_methods"`
	FailedAttempts        []FailedAttempt       `json:"failed_attempts"`
}
