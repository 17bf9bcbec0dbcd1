package rewrite

import (
	"context"

	"github.com/dlclark/regexp2"
	"github.com/rs/zerolog"
	"github.com/walteh/tsfix/pkg/rules"
	"gitlab.com/tozd/go/errors"
)

// Result contains the outcome of applying a rule set to one file's text
type Result struct {
	// Content is the text after all rules have been applied
	Content string

	// Changed indicates whether Content differs from the input
	Changed bool

	// RuleHits maps rule name to match count, for rules that matched
	RuleHits map[string]int

	// Total is the total number of substitutions made
	Total int
}

// compiledRule pairs a compiled pattern with its replacement template
type compiledRule struct {
	name        string
	re          *regexp2.Regexp
	replacement string
}

// Rewriter applies an ordered rule set over raw text. It has no awareness of
// string literals, comments or syntax beyond what each pattern encodes; the
// output of rule i is the input to rule i+1.
type Rewriter struct {
	set      string
	compiled []compiledRule
}

// New compiles a rule set into a Rewriter. Compilation failures surface here
// so that Apply cannot fail on pattern syntax.
func New(set rules.Set) (*Rewriter, error) {
	compiled := make([]compiledRule, 0, len(set.Rules))
	for _, r := range set.Rules {
		re, err := regexp2.Compile(r.Pattern, regexp2.None)
		if err != nil {
			return nil, errors.Errorf("compiling rule %q: %w", r.Name, err)
		}
		compiled = append(compiled, compiledRule{
			name:        r.Name,
			re:          re,
			replacement: r.Replacement,
		})
	}
	return &Rewriter{set: set.Name, compiled: compiled}, nil
}

// Apply runs every rule in order over the whole text. If no rule matches, the
// returned Content is the input unchanged; callers use Changed to decide
// whether a write is needed.
func (r *Rewriter) Apply(ctx context.Context, content string) (*Result, error) {
	logger := zerolog.Ctx(ctx)

	res := &Result{
		Content:  content,
		RuleHits: map[string]int{},
	}

	for _, cr := range r.compiled {
		n, err := countMatches(cr.re, res.Content)
		if err != nil {
			return nil, errors.Errorf("matching rule %q: %w", cr.name, err)
		}
		if n == 0 {
			continue
		}

		replaced, err := cr.re.Replace(res.Content, cr.replacement, -1, -1)
		if err != nil {
			return nil, errors.Errorf("applying rule %q: %w", cr.name, err)
		}

		res.Content = replaced
		res.RuleHits[cr.name] += n
		res.Total += n

		logger.Debug().
			Str("rule", cr.name).
			Int("matches", n).
			Msg("rule applied")
	}

	res.Changed = res.Content != content
	return res, nil
}

// SetName returns the name of the rule set the rewriter was compiled from
func (r *Rewriter) SetName() string {
	return r.set
}

// countMatches counts non-overlapping matches of re in content
func countMatches(re *regexp2.Regexp, content string) (int, error) {
	n := 0
	m, err := re.FindStringMatch(content)
	if err != nil {
		return 0, err
	}
	for m != nil {
		n++
		m, err = re.FindNextMatch(m)
		if err != nil {
			return 0, err
		}
	}
	return n, nil
}
