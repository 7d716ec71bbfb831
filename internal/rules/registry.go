package rules

// Registry holds all registered rules
type Registry struct {
	rules []Rule
}

// NewRegistry creates a new rule registry
func NewRegistry() *Registry {
	return &Registry{
		rules: make([]Rule, 0),
	}
}

// Register adds a rule to the registry
func (r *Registry) Register(rule Rule) {
	r.rules = append(r.rules, rule)
}

// Rules returns all registered rules, optionally filtering informational ones.
// If includeInfo is false, rules with Informational=true are excluded.
func (r *Registry) Rules(includeInfo bool) []Rule {
	if includeInfo {
		return r.rules
	}

	var result []Rule
	for _, rule := range r.rules {
		if !rule.Config().Informational {
			result = append(result, rule)
		}
	}
	return result
}

// Get returns a rule by name
func (r *Registry) Get(name string) Rule {
	for _, rule := range r.rules {
		if rule.Name() == name {
			return rule
		}
	}
	return nil
}

// DefaultRegistry returns a registry with all default rules
func DefaultRegistry() *Registry {
	r := NewRegistry()

	// Threshold rules
	r.Register(&EFLAWScoreRule{})
	r.Register(&GradeLevelRule{})
	r.Register(&LongSentencesRule{})

	// Wording rules
	r.Register(&JargonRule{})
	r.Register(&VagueWordingRule{})

	// Informational rules (requires --all flag)
	r.Register(&SimpleWordsRule{})
	r.Register(&DifficultWordsRule{})
	r.Register(&ToneRule{})

	return r
}

// RunAll runs rules over ctx in order, collecting their issues. A failing
// rule stops the run.
func RunAll(ctx *AnalysisContext, rules []Rule, done func(Rule)) ([]Issue, error) {
	var all []Issue
	for _, rule := range rules {
		issues, err := rule.Run(ctx)
		if err != nil {
			return nil, err
		}
		all = append(all, issues...)
		if done != nil {
			done(rule)
		}
	}
	return all, nil
}
