package readability

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnbandedValue is wrapped by every UnbandedError.
var ErrUnbandedValue = errors.New("value outside band table domain")

// UnbandedError reports a value that no band of a table covers.
type UnbandedError struct {
	Table string
	Value float64
}

func (e *UnbandedError) Error() string {
	return fmt.Sprintf("%s: value %g outside band table domain", e.Table, e.Value)
}

func (e *UnbandedError) Unwrap() error {
	return ErrUnbandedValue
}

// Band is one interval of a BandTable. It starts where the previous band
// ends and runs up to Upper, which it includes when Closed is set.
type Band struct {
	Upper  float64
	Closed bool
	Label  string
}

// BandTable maps a numeric value to a label. The domain starts at Min
// (inclusive) and the bands follow each other without gaps, so a table only
// rejects values below Min or above the last Upper.
type BandTable struct {
	Name  string
	Min   float64
	Bands []Band
}

// NewBandTable validates and returns a table. It panics on a table whose
// bounds are not strictly increasing; tables are package-level data.
func NewBandTable(name string, lower float64, bands ...Band) BandTable {
	t := BandTable{Name: name, Min: lower, Bands: bands}
	if err := t.Validate(); err != nil {
		panic(err)
	}
	return t
}

// Validate checks that the table has at least one band and strictly
// increasing bounds.
func (t BandTable) Validate() error {
	if len(t.Bands) == 0 {
		return fmt.Errorf("band table %s: no bands", t.Name)
	}
	prev := t.Min
	for i, b := range t.Bands {
		if b.Label == "" {
			return fmt.Errorf("band table %s: band %d has no label", t.Name, i)
		}
		if b.Upper < prev || (b.Upper == prev && !b.Closed) {
			return fmt.Errorf("band table %s: band %d upper bound %g not above %g", t.Name, i, b.Upper, prev)
		}
		prev = b.Upper
	}
	return nil
}

// Lookup returns the label of the band containing v.
func (t BandTable) Lookup(v float64) (string, error) {
	if math.IsNaN(v) || v < t.Min {
		return "", &UnbandedError{Table: t.Name, Value: v}
	}
	for _, b := range t.Bands {
		if v < b.Upper || (b.Closed && v == b.Upper) {
			return b.Label, nil
		}
	}
	return "", &UnbandedError{Table: t.Name, Value: v}
}

// Max returns the upper end of the table's domain.
func (t BandTable) Max() float64 {
	return t.Bands[len(t.Bands)-1].Upper
}

// Bounds returns every band boundary including Min.
func (t BandTable) Bounds() []float64 {
	bounds := []float64{t.Min}
	for _, b := range t.Bands {
		bounds = append(bounds, b.Upper)
	}
	return bounds
}

var inf = math.Inf(1)

// EFLAWBands rank the integer EFLAW score.
var EFLAWBands = NewBandTable("eflaw", 0,
	Band{Upper: 21, Label: "Very easy to understand."},
	Band{Upper: 26, Label: "Easy to understand."},
	Band{Upper: 30, Label: "Difficult to understand."},
	Band{Upper: inf, Closed: true, Label: "Very confusing."},
)

// GradeBands rank the integer Gunning-Fog grade level.
var GradeBands = NewBandTable("grade-level", 0,
	Band{Upper: 6, Label: "Below sixth grade."},
	Band{Upper: 7, Label: "6th grade level."},
	Band{Upper: 8, Label: "7th grade level."},
	Band{Upper: 9, Label: "8th grade level."},
	Band{Upper: 10, Label: "High school freshman level."},
	Band{Upper: 11, Label: "High school sophomore level."},
	Band{Upper: 12, Label: "High school junior level."},
	Band{Upper: 13, Label: "High school senior level."},
	Band{Upper: 14, Label: "College freshman level."},
	Band{Upper: 15, Label: "College sophomore level."},
	Band{Upper: 16, Label: "College junior level."},
	Band{Upper: 17, Label: "College senior level."},
	Band{Upper: 18, Label: "College graduate level."},
	Band{Upper: inf, Closed: true, Label: "Beyond college graduate level."},
)
