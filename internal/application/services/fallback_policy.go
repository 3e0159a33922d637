package services

import "regexp"

// FallbackPolicy picks the canned reply for a turn the parser could not
// interpret. Rules are evaluated in order; the first match wins and the last
// rule is a catch-all.
type FallbackPolicy struct {
	rules        []fallbackRule
	genericReply string
}

type fallbackRule struct {
	pattern *regexp.Regexp
	reply   string
}

const (
	greetingReply = "Hello! I'm Ajani, your Ibadan guide. Ask me something like \"cheapest hotels in Bodija\" or \"restaurants near me\"."
	genericReply  = "I can help you find places in Ibadan. Try something like \"cheapest hotels in Bodija\", \"food under 2000\" or \"salons near me\"."
)

// NewFallbackPolicy creates the default policy: greeting detection first,
// then generic help.
func NewFallbackPolicy() *FallbackPolicy {
	return &FallbackPolicy{
		rules: []fallbackRule{
			{
				pattern: regexp.MustCompile(`\b(?:hi|hello|hey|howdy|good morning|good afternoon|good evening|how far)\b`),
				reply:   greetingReply,
			},
		},
		genericReply: genericReply,
	}
}

// ReplyFor returns the canned reply for the lowercased input text.
func (p *FallbackPolicy) ReplyFor(text string) string {
	for _, rule := range p.rules {
		if rule.pattern.MatchString(text) {
			return rule.reply
		}
	}
	return p.genericReply
}
