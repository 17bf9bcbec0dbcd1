package rules

import (
	"github.com/dlclark/regexp2"
	"gitlab.com/tozd/go/errors"
)

// Rule defines a single ordered substitution over raw file text.
//
// Pattern uses regexp2 syntax (the generic property rules rely on negative
// lookahead, which the stdlib engine cannot express). Replacement may
// reference capture groups with ${n}.
type Rule struct {
	// Name identifies the rule in logs and hit counts
	Name string `json:"name" yaml:"name" hcl:"name,label"`

	// Pattern is the regexp2 expression to match
	Pattern string `json:"pattern" yaml:"pattern" hcl:"pattern"`

	// Replacement is the substitution template
	Replacement string `json:"replacement" yaml:"replacement" hcl:"replacement"`
}

// Set is an ordered list of rules. Order is significant: each rule scans the
// text already rewritten by the rules before it.
type Set struct {
	Name  string
	Rules []Rule
}

// Profile names for the built-in rule sets.
const (
	ProfileEnv  = "env"
	ProfileFull = "full"
)

// envRule rewrites process.env.PROPERTY to process.env['PROPERTY']. Anchored
// to the process.env prefix; PROPERTY is uppercase letters, digits and
// underscores only.
var envRule = Rule{
	Name:        "process-env",
	Pattern:     `process\.env\.([A-Z_][A-Z0-9_]*)`,
	Replacement: `process.env['${1}']`,
}

// propertyIdents is the fixed list of identifiers rewritten by the full
// profile, in application order: translation keys, metadata, user/auth,
// order, product/customization, form fields, fallback state, query params,
// and the literal "unknown" error kind.
var propertyIdents = []string{
	"new", "read", "replied", "archived",
	"title", "description", "url", "alt", "keywords",
	"isAdmin", "email", "password", "confirmPassword", "name", "phone", "locale",
	"orderNumber", "firstName", "lastName", "itemCount", "method", "status", "address", "preferredDate",
	"productId", "orderId", "customerEmail", "options", "items", "choices",
	"name_cs", "name_en", "slug", "base_price", "category_id", "stock_quantity", "low_stock_threshold",
	"fallbackApplied", "svgFallbackApplied", "fallbackValue", "recoveryFailed",
	"q", "category", "sort", "page",
	"unknown",
}

// Property builds the generic rule for one identifier: a literal dot, the
// identifier at a word boundary, not followed by an opening parenthesis (so
// method calls are never rewritten).
func Property(ident string) Rule {
	return Rule{
		Name:        "prop-" + ident,
		Pattern:     `\.` + ident + `\b(?!\()`,
		Replacement: `['` + ident + `']`,
	}
}

// EnvOnly returns the rule set matching the original process.env-only script.
func EnvOnly() Set {
	return Set{
		Name:  ProfileEnv,
		Rules: []Rule{envRule},
	}
}

// Full returns the superset rule set: the process.env rule followed by one
// generic rule per identifier in propertyIdents.
func Full() Set {
	rs := make([]Rule, 0, len(propertyIdents)+1)
	rs = append(rs, envRule)
	for _, ident := range propertyIdents {
		rs = append(rs, Property(ident))
	}
	return Set{
		Name:  ProfileFull,
		Rules: rs,
	}
}

// ByProfile returns the built-in set for a profile name.
func ByProfile(profile string) (Set, error) {
	switch profile {
	case ProfileEnv:
		return EnvOnly(), nil
	case ProfileFull:
		return Full(), nil
	default:
		return Set{}, errors.Errorf("unknown rule profile: %q", profile)
	}
}

// Validate checks that every rule has a name and a compilable pattern.
func (s Set) Validate() error {
	seen := make(map[string]bool, len(s.Rules))
	for i, r := range s.Rules {
		if r.Name == "" {
			return errors.Errorf("rule %d: name is required", i)
		}
		if seen[r.Name] {
			return errors.Errorf("rule %d: duplicate name %q", i, r.Name)
		}
		seen[r.Name] = true
		if r.Pattern == "" {
			return errors.Errorf("rule %q: pattern is required", r.Name)
		}
		if _, err := regexp2.Compile(r.Pattern, regexp2.None); err != nil {
			return errors.Errorf("rule %q: compiling pattern: %w", r.Name, err)
		}
	}
	return nil
}

// Append returns a copy of s with extra rules appended after the built-in
// ones, preserving order.
func (s Set) Append(extra ...Rule) Set {
	out := Set{Name: s.Name, Rules: make([]Rule, 0, len(s.Rules)+len(extra))}
	out.Rules = append(out.Rules, s.Rules...)
	out.Rules = append(out.Rules, extra...)
	return out
}
