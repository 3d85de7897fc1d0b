package hijri

// Date is a validated (rules, extended_year, month, day) triple.
type Date struct {
	Rules        Rules
	ExtendedYear int64
	Month        int
	Day          int
}

// NewDate validates and constructs a Date from an era-relative year.
// It returns ErrUnknownEra or ErrOutOfRange.
func NewDate(rules Rules, era Era, year int64, month, day int) (Date, error) {
	extendedYear, err := ExtendedYear(era, year)
	if err != nil {
		return Date{}, err
	}
	return NewDateFromExtendedYear(rules, extendedYear, month, day)
}

// NewDateFromExtendedYear is NewDate without the era indirection.
func NewDateFromExtendedYear(rules Rules, extendedYear int64, month, day int) (Date, error) {
	if month < 1 || month > 12 {
		return Date{}, ErrOutOfRange
	}
	yd := rules.YearData(extendedYear)
	if day < 1 || day > yd.Packed.DaysInMonth(month) {
		return Date{}, ErrOutOfRange
	}
	return Date{Rules: rules, ExtendedYear: extendedYear, Month: month, Day: day}, nil
}

// ToRataDie converts d to its Rata Die:
// start_day + last_day_of_month(month-1) + (day-1).
func (d Date) ToRataDie() RataDie {
	yd := d.Rules.YearData(d.ExtendedYear)
	return yd.StartDay + RataDie(yd.Packed.LastDayOfMonth(d.Month-1)) + RataDie(d.Day-1)
}

// DayOfYear returns the 1-indexed ordinal day within the year.
func (d Date) DayOfYear() int {
	yd := d.Rules.YearData(d.ExtendedYear)
	return yd.Packed.LastDayOfMonth(d.Month-1) + d.Day
}

// IsLeapYear reports whether d's year has 355 days.
func (d Date) IsLeapYear() bool {
	return d.Rules.YearData(d.ExtendedYear).Packed.IsLeapYear()
}

// DaysInMonth returns the length of d's month.
func (d Date) DaysInMonth() int {
	return d.Rules.YearData(d.ExtendedYear).Packed.DaysInMonth(d.Month)
}

// FromRataDie converts rd to a Date under the given rules, using an
// estimate-then-correct algorithm: approximate the
// extended year from the mean tabular year length, request that year's
// data, nudge by one year if rd fell outside it, then walk months.
func FromRataDie(rules Rules, rd RataDie) Date {
	atOrAfterEpoch := int64(0)
	if rd >= IslamicEpochFriday {
		atOrAfterEpoch = 1
	}
	estYear := clampExtendedYear(floorDiv(int64(rd-IslamicEpochFriday)*30, 10631) + atOrAfterEpoch)

	yd := rules.YearData(estYear)
	for rd < yd.StartDay {
		estYear--
		yd = rules.YearData(estYear)
	}
	for rd >= yd.StartDay+RataDie(yd.Packed.DaysInYear()) {
		estYear++
		yd = rules.YearData(estYear)
	}

	dayOfYear := int(rd - yd.StartDay)
	month := dayOfYear/30 + 1
	for yd.Packed.LastDayOfMonth(month) <= dayOfYear {
		month++
	}
	day := dayOfYear + 1 - yd.Packed.LastDayOfMonth(month-1)

	return Date{Rules: rules, ExtendedYear: estYear, Month: month, Day: day}
}
