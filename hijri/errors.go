package hijri

import "errors"

// Sentinel errors surfaced by the Hijri calendar operations.
// None are wrapped in a custom type; callers compare with errors.Is.
var (
	// ErrUnknownEra is returned when an era string is neither "ah" nor "bh".
	ErrUnknownEra = errors.New("hijri: unknown era")

	// ErrOutOfRange is returned when (year, month, day) does not name a
	// valid date: month outside [1,12], or day outside [1, days-in-month].
	ErrOutOfRange = errors.New("hijri: date out of range")

	// ErrMonthCodeNotInCalendar is returned for a leap month code (never
	// supported) or an (ordinal month, day) pair the reference-year table
	// cannot cover.
	ErrMonthCodeNotInCalendar = errors.New("hijri: month code not in calendar")

	// ErrEcmaReferenceYearUnimplemented is returned when a Rules variant
	// has no reference-year table at all.
	ErrEcmaReferenceYearUnimplemented = errors.New("hijri: ECMA reference year unimplemented for this calendar")
)
