package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Goa  ", "goa"},
		{"BOOK a Trip\n", "book a trip"},
		{"", ""},
		{"\t3 \t", "3"},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, Normalize(tc.in))
		})
	}
}

func TestContainsAny(t *testing.T) {
	exits := []string{"bye", "see you"}

	assert.True(t, ContainsAny("ok bye now", exits))
	assert.True(t, ContainsAny("see you later", exits))
	assert.False(t, ContainsAny("book goa", exits))
	assert.False(t, ContainsAny("anything", []string{""}))
}
