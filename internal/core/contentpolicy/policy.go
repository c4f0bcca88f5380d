// Package contentpolicy scans user-supplied post text for disallowed terms and
// strips unsafe markup before it is persisted.
package contentpolicy

import (
	"errors"
	"fmt"
	"html"
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

// ErrDisallowedContent is returned when a name or body matches the filter
var ErrDisallowedContent = errors.New("content contains disallowed terms")

// DefaultFilter is the term list applied when no override is configured
const DefaultFilter = `(fag(g|got|tard)?|maricos?|cock\s?sucker(s|ing)?|nig(\b|g?(a|er)?s?)\b|dindu(s?)|mudslime?s?|kikes?|mongoloids?|towel\s*heads?|\bspi(c|k)s?\b|\bchinks?|niglets?|beaners?|\bnips?\b|\bcoons?\b|jungle\s*bunn(y|ies?)|jigg?aboo?s?|\bpakis?\b|rag\s*heads?|gooks?|cunts?|bitch(es|ing|y)?|puss(y|ies?)|twats?|feminazis?|whor(es?|ing)|\bslut(s|t?y)?|\btrann?(y|ies?)|ladyboy(s?)|\b(b|re|r)tard(ed)?s?)`

// Policy checks and sanitizes post text
type Policy struct {
	filter *regexp.Regexp
	strict *bluemonday.Policy
	ugc    *bluemonday.Policy
}

// New compiles a policy from a filter expression.
// An empty expression selects DefaultFilter. Matching is case-insensitive.
func New(expr string) (*Policy, error) {
	if expr == "" {
		expr = DefaultFilter
	}

	filter, err := regexp.Compile("(?i)" + expr)
	if err != nil {
		return nil, fmt.Errorf("invalid content filter: %w", err)
	}

	return &Policy{
		filter: filter,
		strict: bluemonday.StrictPolicy(),
		ugc:    bluemonday.UGCPolicy(),
	}, nil
}

// MustNew is New for package-level defaults and tests
func MustNew(expr string) *Policy {
	p, err := New(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// Contains reports whether text matches the filter
func (p *Policy) Contains(text string) bool {
	return p.filter.MatchString(text)
}

// Check returns ErrDisallowedContent when either the name or the body matches
func (p *Policy) Check(name string, body *string) error {
	if p.Contains(name) {
		return ErrDisallowedContent
	}
	if body != nil && p.Contains(*body) {
		return ErrDisallowedContent
	}
	return nil
}

// Clean sanitizes the name and body and returns the form to store.
// The filter runs on the input and on the text a reader would see once the
// stored form is rendered, so markup or entities cannot split a term.
func (p *Policy) Clean(name string, body *string) (string, *string, error) {
	if err := p.Check(name, body); err != nil {
		return "", nil, err
	}

	cleanName := p.SanitizeName(name)
	cleanBody := p.SanitizeBody(body)

	var bodyText *string
	if cleanBody != nil {
		text := p.textOf(*cleanBody)
		bodyText = &text
	}
	if err := p.Check(p.textOf(cleanName), bodyText); err != nil {
		return "", nil, err
	}

	return cleanName, cleanBody, nil
}

// textOf renders sanitized markup as plain text
func (p *Policy) textOf(s string) string {
	return html.UnescapeString(p.strict.Sanitize(s))
}

// SanitizeName strips all markup from a post title.
// The result is HTML-escaped text; renderers decode entities.
func (p *Policy) SanitizeName(name string) string {
	return p.strict.Sanitize(name)
}

// SanitizeBody removes unsafe markup from an optional body, keeping
// the formatting user-generated content is allowed to carry.
// Escaped entities stay escaped.
func (p *Policy) SanitizeBody(body *string) *string {
	if body == nil {
		return nil
	}
	clean := p.ugc.Sanitize(*body)
	return &clean
}
