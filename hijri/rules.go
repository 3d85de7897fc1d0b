package hijri

// Era names the two proleptic Hijri eras.
type Era string

const (
	EraAH Era = "ah"
	EraBH Era = "bh"
)

// EraYear is the (era, era_year) view of an extended year, and the
// inverse of ExtendedYear: for "ah" era_year == extended_year, for "bh"
// era_year == 1 − extended_year (SPEC_FULL.md supplemented feature).
type EraYear struct {
	Era          Era
	Year         int64
	ExtendedYear int64
}

// ExtendedYear converts (era, year) to the extended year:
// extended_year = year for "ah", 1 − year for "bh".
func ExtendedYear(era Era, year int64) (int64, error) {
	switch era {
	case EraAH:
		return year, nil
	case EraBH:
		return 1 - year, nil
	default:
		return 0, ErrUnknownEra
	}
}

// NewEraYear builds the EraYear view of an extended year, always
// reporting it under the "ah" era for extendedYear > 0 and "bh"
// otherwise.
func NewEraYear(extendedYear int64) EraYear {
	if extendedYear >= 1 {
		return EraYear{Era: EraAH, Year: extendedYear, ExtendedYear: extendedYear}
	}
	return EraYear{Era: EraBH, Year: 1 - extendedYear, ExtendedYear: extendedYear}
}

// YearData is the per-year record: an extended
// year plus its packed 16-bit month-length/start-offset encoding.
type YearData struct {
	ExtendedYear int64
	Packed       PackedHijriYearData
	StartDay     RataDie
}

// Rules is the polymorphic capability set shared by the three concrete
// variants (TabularAlgorithm, UmmAlQura, Astronomical). It is an
// ordinary Go interface rather than a tagged sum: dispatch is a single
// indirect call, and the interface is not closed, so any type with
// these methods satisfies it.
type Rules interface {
	// YearData produces the packed year record for extendedYear. Must
	// be total: every possible extendedYear produces a valid result.
	YearData(extendedYear int64) YearData

	// EcmaReferenceYear resolves (month, day) to the earliest calendar
	// year containing that date. ordinalMonth is in
	// [1,12]; leap month codes are rejected by the caller before this
	// is reached (see referenceyear.go).
	EcmaReferenceYear(ordinalMonth, day int) (int64, error)

	// Name identifies the rules variant for debugging, the way a
	// shaping engine names OpenType script/feature tags for trace output.
	Name() string
}
