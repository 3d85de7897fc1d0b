package hijri

// TabularAlgorithmEpoch selects which Rata Die anchors year 1 AH.
type TabularAlgorithmEpoch int

const (
	// EpochFriday is the conventional epoch (1 Muharram AH 1 fell on a
	// Friday) and the one nearly every tabular variant in practice uses.
	EpochFriday TabularAlgorithmEpoch = iota
	// EpochThursday shifts the whole calendar back one day.
	EpochThursday
)

func (e TabularAlgorithmEpoch) rataDie() RataDie {
	if e == EpochThursday {
		return IslamicEpochThursday
	}
	return IslamicEpochFriday
}

func (e TabularAlgorithmEpoch) name() string {
	if e == EpochThursday {
		return "thursday"
	}
	return "friday"
}

// TabularAlgorithmLeapYears selects the leap-year rule. Type II (the
// only variant implemented here) marks years {2,5,7,10,13,16,18,21,24,26,29}
// of the 30-year cycle as leap.
type TabularAlgorithmLeapYears int

const (
	LeapYearsTypeII TabularAlgorithmLeapYears = iota
)

// TabularAlgorithm is the deterministic 30-year-cycle Rules variant:
// a closed-form leap rule plus alternating 30/29-day
// months, no table lookups at all.
type TabularAlgorithm struct {
	Epoch    TabularAlgorithmEpoch
	LeapYear TabularAlgorithmLeapYears
}

// NewTabularAlgorithm constructs a TabularAlgorithm. Type II with the
// Friday epoch is the common configuration; Thursday
// is offered as a first-class constructor rather than requiring
// callers to hand-roll an epoch offset.
func NewTabularAlgorithm(leapYears TabularAlgorithmLeapYears, epoch TabularAlgorithmEpoch) TabularAlgorithm {
	return TabularAlgorithm{Epoch: epoch, LeapYear: leapYears}
}

// NewTabularAlgorithmFriday is the common configuration: Type II leap
// years, Friday epoch.
func NewTabularAlgorithmFriday() TabularAlgorithm {
	return NewTabularAlgorithm(LeapYearsTypeII, EpochFriday)
}

// NewTabularAlgorithmThursday is the Friday variant's one-day-earlier
// sibling.
func NewTabularAlgorithmThursday() TabularAlgorithm {
	return NewTabularAlgorithm(LeapYearsTypeII, EpochThursday)
}

// isLeapYearTypeII implements the Type II leap rule:
// (14 + 11*year) mod 30 < 11.
func isLeapYearTypeII(year int64) bool {
	return floorMod(14+11*year, 30) < 11
}

func (t TabularAlgorithm) isLeapYear(year int64) bool {
	switch t.LeapYear {
	case LeapYearsTypeII:
		return isLeapYearTypeII(year)
	default:
		return isLeapYearTypeII(year)
	}
}

// fixedFromTabularIslamic implements the closed-form Rata Die formula
// for the tabular calendar (Calendrical Calculations, ch. on the
// Islamic calendar): epoch plus the cumulative length of all full years
// before `year`, plus the cumulative month lengths before `month` within
// the year (valid for month in [1,12], which is always the case here),
// plus the day offset.
func fixedFromTabularIslamic(year int64, month, day int, epoch RataDie) RataDie {
	return epoch - 1 +
		RataDie((year-1)*354) +
		RataDie(floorDiv(11*year+3, 30)) +
		RataDie(29*(month-1)) +
		RataDie(month/2) +
		RataDie(day)
}

// monthLengthBitsFor builds the 12-bit month-length bitmap: odd months
// (1-indexed) have 30 days, even months 29, plus one extra day on month
// 12 in a leap year.
func monthLengthBitsFor(leap bool) uint16 {
	const nonLeap uint16 = 0b0000_0101_0101_0101 // bits 0,2,4,6,8,10
	if leap {
		return nonLeap | (1 << 11)
	}
	return nonLeap
}

func (t TabularAlgorithm) YearData(extendedYear int64) YearData {
	epoch := t.Epoch.rataDie()
	startDay := fixedFromTabularIslamic(extendedYear, 1, 1, epoch)
	bits := monthLengthBitsFor(t.isLeapYear(extendedYear))
	offset := int(startDay - meanTabularStartDay(epoch, extendedYear))
	packed, ok := PackHijriYearData(bits, offset)
	if !ok {
		// Unreachable for the Type II rule: the bitmap always has
		// exactly 6 or 7 bits set. GIGO fallback rather than a panic.
		packed = PackedHijriYearData(bits)
	}
	return YearData{ExtendedYear: extendedYear, Packed: packed, StartDay: startDay}
}

func (t TabularAlgorithm) EcmaReferenceYear(ordinalMonth, day int) (int64, error) {
	return searchReferenceYear(t, ordinalMonth, day)
}

func (t TabularAlgorithm) Name() string {
	return "tabular-" + t.Epoch.name()
}
