package intent

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oyeadiiiiii/Travel-ChatBOt/internal/textnorm"
)

func newDefault(t *testing.T) *RuleClassifier {
	t.Helper()
	c, err := NewRuleClassifier(DefaultRules(), 0.5)
	require.NoError(t, err)
	return c
}

func TestRuleClassifier_Classify(t *testing.T) {
	c := newDefault(t)

	tests := []struct {
		text string
		want Label
	}{
		{"hi", LabelGreet},
		{"hello there", LabelGreet},
		{"good morning!", LabelGreet},
		{"i want to book a trip", LabelBook},
		{"can you recommend something", LabelRecommend},
		{"cheap beach getaway", LabelRecommend},
		{"honeymoon ideas please", LabelRecommend},
		{"what is the refund policy", LabelAskFAQ},
		{"how do i cancel my booking?", LabelAskFAQ},
		{"can i change my booking dates?", LabelAskFAQ},
		{"i'd like to reschedule my reservation", LabelAskFAQ},
		{"do i need a visa", LabelAskFAQ},
		{"are meals free?", LabelAskFAQ},
		{"adventure", LabelRecommend},
		{"purple elephants", LabelOther},
		{"", LabelOther},
	}

	for _, tc := range tests {
		t.Run(tc.text, func(t *testing.T) {
			assert.Equal(t, tc.want, c.Classify(tc.text))
		})
	}
}

func TestRuleClassifier_ShippedFAQsRouteToFAQ(t *testing.T) {
	rules, err := LoadRules("../../data/intents.yaml")
	require.NoError(t, err)
	c, err := NewRuleClassifier(rules, 0.5)
	require.NoError(t, err)

	f, err := os.Open("../../data/faq.csv")
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Greater(t, len(records), 1)

	for _, rec := range records[1:] {
		question := textnorm.Normalize(rec[0])
		t.Run(question, func(t *testing.T) {
			assert.Equal(t, LabelAskFAQ, c.Classify(question))
		})
	}
}

func TestDefaultRules_MatchShippedTable(t *testing.T) {
	rules, err := LoadRules("../../data/intents.yaml")
	require.NoError(t, err)
	assert.Equal(t, DefaultRules(), rules)
}

func TestRuleClassifier_WholeTokenMatch(t *testing.T) {
	c := newDefault(t)

	// "hi" must not match inside "this" or "ship".
	assert.Equal(t, LabelOther, c.Classify("this ship"))
}

func TestRuleClassifier_FirstRuleWins(t *testing.T) {
	c := newDefault(t)

	label, confidence := c.Score("hello, please book a beach trip")
	assert.Equal(t, LabelBook, label)
	assert.Equal(t, 0.9, confidence)
}

func TestRuleClassifier_Threshold(t *testing.T) {
	c, err := NewRuleClassifier(DefaultRules(), 0.75)
	require.NoError(t, err)

	label, confidence := c.Score("beach")
	assert.Equal(t, LabelOther, label)
	assert.Equal(t, 0.7, confidence)

	assert.Equal(t, LabelRecommend, c.Classify("suggest a beach"))
}

func TestNewRuleClassifier_Empty(t *testing.T) {
	_, err := NewRuleClassifier(nil, 0.5)
	assert.True(t, errors.Is(err, ErrNoRules))
}

func TestLoadRules(t *testing.T) {
	dir := t.TempDir()

	t.Run("empty path uses defaults", func(t *testing.T) {
		rules, err := LoadRules("")
		require.NoError(t, err)
		assert.Equal(t, DefaultRules(), rules)
	})

	t.Run("yaml table", func(t *testing.T) {
		path := filepath.Join(dir, "intents.yaml")
		doc := `
rules:
  - label: book
    confidence: 0.95
    phrases: [" Reserve ", "lock it in"]
  - label: greet
    confidence: 0.9
    phrases: []
`
		require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

		rules, err := LoadRules(path)
		require.NoError(t, err)
		require.Len(t, rules, 1)
		assert.Equal(t, []string{"reserve", "lock it in"}, rules[0].Phrases)

		c, err := NewRuleClassifier(rules, 0.5)
		require.NoError(t, err)
		assert.Equal(t, LabelBook, c.Classify("please lock it in"))
		assert.Equal(t, LabelOther, c.Classify("hello"))
	})

	t.Run("no usable rules", func(t *testing.T) {
		path := filepath.Join(dir, "empty.yaml")
		require.NoError(t, os.WriteFile(path, []byte("rules: []\n"), 0o644))

		_, err := LoadRules(path)
		assert.True(t, errors.Is(err, ErrNoRules))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadRules(filepath.Join(dir, "missing.yaml"))
		assert.True(t, errors.Is(err, ErrNoRules))
	})

	t.Run("unknown label", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("rules:\n  - label: dance\n    confidence: 1\n    phrases: [x]\n"), 0o644))

		_, err := LoadRules(path)
		assert.Error(t, err)
	})
}
