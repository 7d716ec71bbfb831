package rules

import (
	"regexp"
)

// VagueWordingRule checks observations for wording that leaves the reader
// to guess the criteria, condition or scope
type VagueWordingRule struct{}

func (r *VagueWordingRule) Name() string {
	return "vague-wording"
}

func (r *VagueWordingRule) Description() string {
	return "Checks for vague wording that could be more specific"
}

func (r *VagueWordingRule) Config() RuleConfig {
	return RuleConfig{}
}

// vaguePattern defines a pattern to match and its sub-rule name
type vaguePattern struct {
	pattern *regexp.Regexp
	subRule string
	message string
}

var vaguePatterns = []vaguePattern{
	{
		regexp.MustCompile(`(?i)\b(appropriate|proper|adequate|sufficient)\s+(way|manner|level|extent)\b`),
		"unclear-criteria",
		"Vague criteria: state what makes it appropriate or adequate",
	},
	{
		regexp.MustCompile(`(?i)\b(as needed|when necessary|where necessary|if appropriate|as appropriate)\b`),
		"vague-condition",
		"Vague condition: state the concrete criteria",
	},
	{
		regexp.MustCompile(`(?i)\b(etc\.?|and so on|and so forth)(\s|$|[,;:])`),
		"incomplete-list",
		"Incomplete list: name every item",
	},
	{
		regexp.MustCompile(`(?i)\b(it appears that|it seems that|may possibly|might potentially)\b`),
		"hedging",
		"Hedged finding: state what was observed",
	},
	{
		regexp.MustCompile(`(?i)\b(some|several|various|a number of)\s+(cases|instances|transactions|items|users)\b`),
		"unquantified",
		"Unquantified finding: give the number",
	},
}

func (r *VagueWordingRule) Run(ctx *AnalysisContext) ([]Issue, error) {
	var issues []Issue

	for _, o := range ctx.Observations {
		for _, vp := range vaguePatterns {
			match := vp.pattern.FindString(o.Text)
			if match == "" {
				continue
			}
			issue := issueAt(r, Suggestion, o, vp.message)
			issue.Rule = r.Name() + "/" + vp.subRule
			issue.Context = match
			issues = append(issues, issue)
		}
	}

	return issues, nil
}
