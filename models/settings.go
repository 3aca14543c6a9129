package models

import "fmt"

// RepeatFrequencyPerDay is how many times per day the user wants phrases
// repeated to them. Only the declared discrete values are legal.
type RepeatFrequencyPerDay int16

const (
	FrequencyNone   RepeatFrequencyPerDay = 0
	FrequencyThree  RepeatFrequencyPerDay = 3
	FrequencyFour   RepeatFrequencyPerDay = 4
	FrequencySix    RepeatFrequencyPerDay = 6
	FrequencyTwelve RepeatFrequencyPerDay = 12
)

// Validate reports whether the frequency is one of the declared values.
func (f RepeatFrequencyPerDay) Validate() error {
	switch f {
	case FrequencyNone, FrequencyThree, FrequencyFour, FrequencySix, FrequencyTwelve:
		return nil
	default:
		return fmt.Errorf("%w: RepeatFrequencyPerDay(%d)", ErrUnknownFrequency, int16(f))
	}
}

// ParseRepeatFrequency interprets free-form user input ("3", "4", "6", "12",
// or "none" case-insensitively) as a frequency value.
func ParseRepeatFrequency(text string) (RepeatFrequencyPerDay, error) {
	switch normalizeToken(text) {
	case "none", "0":
		return FrequencyNone, nil
	case "3", "three":
		return FrequencyThree, nil
	case "4", "four":
		return FrequencyFour, nil
	case "6", "six":
		return FrequencySix, nil
	case "12", "twelve":
		return FrequencyTwelve, nil
	default:
		return FrequencyNone, fmt.Errorf("%w: %q", ErrUnknownFrequency, text)
	}
}

// UserSettings is the one-to-one settings row owned by a User.
type UserSettings struct {
	// UserID is both the primary and the foreign key.
	UserID int64 `json:"user_id"`

	// TimeZone is the IANA timezone identifier resolved from the location
	// the user shared during onboarding (e.g. "America/New_York").
	TimeZone string `json:"time_zone"`

	// RepeatFrequencyPerDay controls the repetition schedule. The scheduler
	// itself lives outside this service.
	RepeatFrequencyPerDay RepeatFrequencyPerDay `json:"repeat_frequency_per_day"`
}

// TableName returns the name of the database table
// associated with the UserSettings model.
func (s UserSettings) TableName() string {
	return "user_settings"
}
