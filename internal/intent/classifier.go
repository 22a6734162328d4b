// Package intent maps normalized user text to one label from a closed set.
package intent

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// Label is the coarse purpose of one utterance.
type Label string

const (
	LabelGreet     Label = "greet"
	LabelAskFAQ    Label = "ask_faq"
	LabelRecommend Label = "recommend"
	LabelBook      Label = "book"
	LabelOther     Label = "other"
)

// ErrNoRules is returned when a rule table is unreadable or empty.
var ErrNoRules = errors.New("no intent rules")

// Classifier predicts a label for already-normalized text.
type Classifier interface {
	Classify(text string) Label
}

// Rule assigns Label with Confidence when any phrase matches.
// Single-word phrases match whole tokens; longer phrases match as substrings.
type Rule struct {
	Label      Label    `yaml:"label"`
	Confidence float64  `yaml:"confidence"`
	Phrases    []string `yaml:"phrases"`
}

type ruleFile struct {
	Rules []Rule `yaml:"rules"`
}

// questionConfidence is assigned to unmatched text that reads as a question.
const questionConfidence = 0.6

// DefaultRules is the built-in table, in evaluation order.
func DefaultRules() []Rule {
	return []Rule{
		{
			Label:      LabelAskFAQ,
			Confidence: 0.85,
			Phrases: []string{
				"cancel", "cancellation", "refund", "change", "reschedule", "modify", "amend",
			},
		},
		{
			Label:      LabelBook,
			Confidence: 0.9,
			Phrases: []string{
				"book", "booking", "reserve", "reservation",
				"sign me up", "i want to go",
			},
		},
		{
			Label:      LabelRecommend,
			Confidence: 0.85,
			Phrases: []string{
				"recommend", "recommendation", "suggest", "suggestion", "ideas",
				"getaway", "vacation", "holiday", "holidays",
				"where should", "where can i go", "looking for", "plan a trip", "show me",
			},
		},
		{
			Label:      LabelAskFAQ,
			Confidence: 0.8,
			Phrases: []string{
				"policy", "visa", "passport",
				"payment", "pay", "insurance", "included", "include", "luggage", "baggage",
				"how do i", "how can i", "can i", "is there", "is it", "what is", "what are",
			},
		},
		{
			Label:      LabelGreet,
			Confidence: 0.9,
			Phrases: []string{
				"hi", "hello", "hey", "hiya", "namaste", "greetings",
				"good morning", "good afternoon", "good evening",
			},
		},
		{
			Label:      LabelRecommend,
			Confidence: 0.7,
			Phrases: []string{
				"beach", "adventure", "honeymoon", "family", "budget",
				"trip", "trips", "package", "packages", "destination", "destinations",
			},
		},
	}
}

// LoadRules reads a YAML rule table. An empty path yields DefaultRules.
func LoadRules(path string) ([]Rule, error) {
	if path == "" {
		return DefaultRules(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrNoRules, path, err)
	}

	var f ruleFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrNoRules, path, err)
	}

	rules := make([]Rule, 0, len(f.Rules))
	for i, r := range f.Rules {
		switch r.Label {
		case LabelGreet, LabelAskFAQ, LabelRecommend, LabelBook:
		default:
			return nil, fmt.Errorf("rule %d: unknown label %q", i, r.Label)
		}
		if len(r.Phrases) == 0 {
			continue
		}
		phrases := make([]string, 0, len(r.Phrases))
		for _, p := range r.Phrases {
			if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
				phrases = append(phrases, p)
			}
		}
		r.Phrases = phrases
		rules = append(rules, r)
	}

	if len(rules) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoRules, path)
	}
	return rules, nil
}

// RuleClassifier evaluates rules in order; the first rule with a matching phrase wins.
type RuleClassifier struct {
	rules     []Rule
	threshold float64
}

// NewRuleClassifier creates a classifier. Matches scoring below threshold are labelled other.
func NewRuleClassifier(rules []Rule, threshold float64) (*RuleClassifier, error) {
	if len(rules) == 0 {
		return nil, ErrNoRules
	}
	return &RuleClassifier{rules: rules, threshold: threshold}, nil
}

// Classify implements Classifier.
func (c *RuleClassifier) Classify(text string) Label {
	label, _ := c.Score(text)
	return label
}

// Score returns the label and the confidence it was assigned with.
func (c *RuleClassifier) Score(text string) (Label, float64) {
	tokens := tokenSet(text)

	label, confidence := LabelOther, 0.0
	for _, r := range c.rules {
		if r.matches(text, tokens) {
			label, confidence = r.Label, r.Confidence
			break
		}
	}

	// Unmatched questions are most likely FAQ lookups.
	if label == LabelOther && strings.HasSuffix(strings.TrimSpace(text), "?") {
		label, confidence = LabelAskFAQ, questionConfidence
	}

	if confidence < c.threshold {
		return LabelOther, confidence
	}
	return label, confidence
}

func (r Rule) matches(text string, tokens map[string]struct{}) bool {
	for _, p := range r.Phrases {
		if strings.ContainsRune(p, ' ') {
			if strings.Contains(text, p) {
				return true
			}
			continue
		}
		if _, ok := tokens[p]; ok {
			return true
		}
	}
	return false
}

func tokenSet(text string) map[string]struct{} {
	words := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
