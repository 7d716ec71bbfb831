package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/pthm/readcheck/internal/config"
	"github.com/pthm/readcheck/internal/lexicon"
	"github.com/pthm/readcheck/internal/prose"
	"github.com/pthm/readcheck/internal/readability"
	"github.com/pthm/readcheck/internal/sentiment"
)

// Unit is one text to analyze. Source labels it in batch output, for
// example "notes.md:12".
type Unit struct {
	Source string
	Text   string
}

// Analyzer runs the full pipeline over texts. It only reads its lexicon and
// is safe for concurrent use.
type Analyzer struct {
	lexicon    *lexicon.Lexicon
	thresholds config.Thresholds
	estimator  sentiment.Estimator
	log        zerolog.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithEstimator replaces the default lexicon-based sentiment estimator.
func WithEstimator(e sentiment.Estimator) Option {
	return func(a *Analyzer) {
		a.estimator = e
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(a *Analyzer) {
		a.log = log
	}
}

// NewAnalyzer returns an analyzer over lex with the given thresholds.
func NewAnalyzer(lex *lexicon.Lexicon, thresholds config.Thresholds, opts ...Option) (*Analyzer, error) {
	a := &Analyzer{
		lexicon:    lex,
		thresholds: thresholds,
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.estimator == nil {
		e, err := sentiment.NewLexiconEstimator()
		if err != nil {
			return nil, fmt.Errorf("loading sentiment lexicon: %w", err)
		}
		a.estimator = e
	}

	return a, nil
}

// Thresholds returns the thresholds the analyzer scores against.
func (a *Analyzer) Thresholds() config.Thresholds {
	return a.thresholds
}

// CheckInput rejects text with fewer tokens than the minimum input length.
func (a *Analyzer) CheckInput(text string) error {
	tokens := len(strings.Fields(text))
	if tokens < a.thresholds.MinInputWords {
		return &InsufficientInputError{Tokens: tokens, Min: a.thresholds.MinInputWords}
	}
	return nil
}

// Validate reports whether text can be analyzed: it must be long enough and
// contain at least one scoring sentence.
func (a *Analyzer) Validate(text string) error {
	if err := a.CheckInput(text); err != nil {
		return err
	}
	if len(prose.Segment(prose.Normalize(text), prose.ModeScoring)) == 0 {
		return readability.ErrNoValidSentences
	}
	return nil
}

// Measure runs every scorer over u and returns the parts of its report.
func (a *Analyzer) Measure(u Unit) (Parts, error) {
	if err := a.CheckInput(u.Text); err != nil {
		return Parts{}, err
	}

	normalized := prose.Normalize(u.Text)

	eflaw, err := readability.ScoreEFLAW(normalized)
	if err != nil {
		return Parts{}, err
	}

	grade, err := readability.ScoreGradeLevel(u.Text)
	if err != nil {
		return Parts{}, fmt.Errorf("grade level: %w", err)
	}

	metrics, err := readability.ComputeMetrics(u.Text, a.lexicon.IgnorableDifficult)
	if err != nil {
		return Parts{}, err
	}

	long := readability.CountLongSentences(normalized, a.thresholds.MaxSentenceLength)
	jargon := a.lexicon.MatchJargon(u.Text)

	labels, err := sentiment.Classify(a.estimator.Estimate(u.Text))
	if err != nil {
		return Parts{}, fmt.Errorf("sentiment: %w", err)
	}

	return Parts{
		Source:        u.Source,
		EFLAW:         eflaw,
		GradeLevel:    grade,
		Metrics:       metrics,
		LongSentences: long,
		Jargon:        jargon,
		SimpleWords:   a.lexicon.MatchSimpleWords(u.Text),
		Suggestions: Suggest(SuggestionInput{
			EFLAWScore:        eflaw.Score.Value,
			Jargon:            jargon,
			LongSentenceCount: long.Count,
			MiniWordCount:     eflaw.MiniWordCount,
		}, a.thresholds),
		Sentiment: labels,
	}, nil
}

// Analyze produces the report of a single text. Its id is always 1.
func (a *Analyzer) Analyze(text string) (Report, error) {
	parts, err := a.Measure(Unit{Text: text})
	if err != nil {
		return Report{}, err
	}
	r := NewSequence().Append(parts)
	a.logReport(r)
	return r, nil
}

// AnalyzeAll produces one report per unit, in input order, measuring at
// most workers units at a time.
//
// If any unit fails, AnalyzeAll returns a *UnitError for the failing unit
// with the lowest position and no sequence.
func (a *Analyzer) AnalyzeAll(ctx context.Context, units []Unit, workers int) (*Sequence, error) {
	parts, err := a.MeasureAll(ctx, units, workers, nil)
	if err != nil {
		return nil, err
	}
	return a.Collect(parts), nil
}

// Collect assembles measured parts into a sequence, in order.
func (a *Analyzer) Collect(parts []Parts) *Sequence {
	seq := NewSequence()
	for _, p := range parts {
		a.logReport(seq.Append(p))
	}
	return seq
}

func (a *Analyzer) logReport(r Report) {
	a.log.Debug().
		Int("id", r.ID).
		Str("source", r.Source).
		Int("words", r.WordCount).
		Int("eflaw", r.EFLAW.Value).
		Int("grade", r.GradeLevel.Value).
		Msg("analyzed observation")
}

// MeasureAll measures every unit on at most workers goroutines. Results are
// stored by index so they keep the input order. done, if set, is called
// after each unit completes and must be safe for concurrent use.
func (a *Analyzer) MeasureAll(ctx context.Context, units []Unit, workers int, done func(Unit)) ([]Parts, error) {
	parts := make([]Parts, len(units))
	errs := make([]error, len(units))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))

	for i, u := range units {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			parts[i], errs[i] = a.Measure(u)
			if done != nil {
				done(u)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, err := range errs {
		if err != nil {
			return nil, &UnitError{Index: i, Source: units[i].Source, Err: err}
		}
	}
	return parts, nil
}
