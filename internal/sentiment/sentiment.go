// Package sentiment estimates and ranks the polarity and subjectivity of a
// text.
package sentiment

import "github.com/pthm/readcheck/internal/readability"

// PolarityBands rank polarity on [-1, 1].
var PolarityBands = readability.NewBandTable("polarity", -1,
	readability.Band{Upper: -0.5, Closed: true, Label: "very negative"},
	readability.Band{Upper: -0.25, Label: "negative"},
	readability.Band{Upper: 0.25, Label: "neutral"},
	readability.Band{Upper: 0.5, Label: "positive"},
	readability.Band{Upper: 1, Closed: true, Label: "very positive"},
)

// SubjectivityBands rank subjectivity on [0, 1].
var SubjectivityBands = readability.NewBandTable("subjectivity", 0,
	readability.Band{Upper: 0.25, Label: "very objective"},
	readability.Band{Upper: 0.5, Label: "objective"},
	readability.Band{Upper: 0.75, Label: "subjective"},
	readability.Band{Upper: 1, Closed: true, Label: "very subjective"},
)

// Labels are the ranked sentiment of a text.
type Labels struct {
	Polarity          string  `json:"polarity"`
	Subjectivity      string  `json:"subjectivity"`
	PolarityValue     float64 `json:"polarityValue"`
	SubjectivityValue float64 `json:"subjectivityValue"`
}

// Classify ranks polarity and subjectivity values. A value outside its
// domain returns a *readability.UnbandedError.
func Classify(polarity, subjectivity float64) (Labels, error) {
	p, err := PolarityBands.Lookup(polarity)
	if err != nil {
		return Labels{}, err
	}
	s, err := SubjectivityBands.Lookup(subjectivity)
	if err != nil {
		return Labels{}, err
	}
	return Labels{
		Polarity:          p,
		Subjectivity:      s,
		PolarityValue:     polarity,
		SubjectivityValue: subjectivity,
	}, nil
}

// Estimator scores the polarity and subjectivity of a text.
type Estimator interface {
	Estimate(text string) (polarity, subjectivity float64)
}
