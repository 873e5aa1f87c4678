package kernel

import (
	"fmt"
	"time"

	// Conversion must work even without a system zoneinfo database.
	_ "time/tzdata"

	"inspection/internal/pkg/errs"
)

// Allowed timezone identifiers. The system supports exactly these zones
// for inspector local-time rendering and schedule input parsing.
const (
	TimezoneMadrid     = "Europe/Madrid"
	TimezoneMexicoCity = "America/Mexico_City"
	TimezoneLondon     = "Europe/London"
)

// isoOffsetLayout renders ISO-8601 with a numeric UTC offset. time.RFC3339
// is not used for output because it renders a zero offset as "Z", and the
// API contract requires "+00:00".
const isoOffsetLayout = "2006-01-02T15:04:05-07:00"

// localLayout parses datetime text without an explicit offset; such text is
// interpreted as wall-clock time in the timezone it is parsed against.
const localLayout = "2006-01-02T15:04:05"

// ErrTimezoneIsNotConstructed indicates a zero-value Timezone that was not
// created via NewTimezone.
var ErrTimezoneIsNotConstructed = errs.NewValueIsRequiredError("Timezone must be created via NewTimezone")

// FormatUTC renders an instant as ISO-8601 UTC text with an explicit
// "+00:00" offset. Used wherever a timestamp is shown outside the context
// of a specific inspector timezone.
func FormatUTC(instant time.Time) string {
	return instant.UTC().Format(isoOffsetLayout)
}

// AllowedTimezones returns the fixed allow-list of timezone identifiers.
func AllowedTimezones() []string {
	return []string{TimezoneMadrid, TimezoneMexicoCity, TimezoneLondon}
}

// IsAllowedTimezone reports whether the identifier is in the allow-list.
func IsAllowedTimezone(name string) bool {
	switch name {
	case TimezoneMadrid, TimezoneMexicoCity, TimezoneLondon:
		return true
	}
	return false
}

// Timezone is a value object that converts between a canonical UTC instant
// and the wall-clock representation of one of the allowed timezones.
// It holds no mutable state and is safe for concurrent use.
//
// All persisted timestamps are UTC; Timezone is the only place where local
// datetime text is parsed and where UTC instants are rendered for display.
// Offsets follow the zone's rules at the instant in question, so the same
// wall-clock hour in March and July can render with different offsets.
//
// Example usage:
//
//	tz, _ := kernel.NewTimezone(kernel.TimezoneMadrid)
//	utc, err := tz.ToUTC("2025-03-15T09:00:00+01:00")
//	if err != nil {
//	    // handle malformed datetime
//	}
//	fmt.Println(tz.Format(utc)) // "2025-03-15T09:00:00+01:00"
type Timezone struct {
	name string
	loc  *time.Location
}

// NewTimezone creates a Timezone from an identifier in the allow-list.
// Returns a value-is-invalid error for identifiers outside the allow-list.
func NewTimezone(name string) (Timezone, error) {
	if !IsAllowedTimezone(name) {
		return Timezone{}, errs.NewValueIsInvalidErrorWithCause(
			"timezone",
			fmt.Errorf("%q is not allowed, allowed values are %v", name, AllowedTimezones()),
		)
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return Timezone{}, errs.NewValueIsInvalidErrorWithCause("timezone", err)
	}

	return Timezone{name: name, loc: loc}, nil
}

// Name returns the timezone identifier, e.g. "Europe/Madrid".
func (t Timezone) Name() string {
	return t.name
}

// Validate returns ErrTimezoneIsNotConstructed for a zero-value Timezone.
func (t Timezone) Validate() error {
	if t.loc == nil {
		return ErrTimezoneIsNotConstructed
	}
	return nil
}

// IsEqual compares two timezones by identifier.
func (t Timezone) IsEqual(other Timezone) bool {
	return t.name == other.name
}

// ToUTC parses ISO-8601 datetime text and converts it to a canonical UTC
// instant. Text carrying an explicit offset is honored as written; text
// without an offset is interpreted as wall-clock time in this timezone.
// Returns a value-is-invalid error when the text cannot be parsed.
func (t Timezone) ToUTC(text string) (time.Time, error) {
	if err := t.Validate(); err != nil {
		return time.Time{}, err
	}

	if parsed, err := time.Parse(time.RFC3339, text); err == nil {
		return parsed.UTC(), nil
	}

	parsed, err := time.ParseInLocation(localLayout, text, t.loc)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause(
			"datetime",
			fmt.Errorf("%q is not an ISO-8601 datetime", text),
		)
	}

	return parsed.UTC(), nil
}

// FromUTC converts a canonical UTC instant to this timezone's wall clock.
func (t Timezone) FromUTC(instant time.Time) (time.Time, error) {
	if err := t.Validate(); err != nil {
		return time.Time{}, err
	}
	return instant.In(t.loc), nil
}

// Format renders a canonical UTC instant as ISO-8601 text in this timezone
// with a numeric UTC offset, e.g. "2025-03-15T09:00:00+01:00". A zero
// offset renders as "+00:00", never as "Z".
func (t Timezone) Format(instant time.Time) string {
	if t.loc == nil {
		return instant.UTC().Format(isoOffsetLayout)
	}
	return instant.In(t.loc).Format(isoOffsetLayout)
}
