package region

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		location string
		want     Region
	}{
		{"Paris, France", Europe},
		{"LONDON", Europe},
		{"a week in eastern europe", Europe},
		{"Tokyo, Japan", Asia},
		{"Bali", Asia},
		{"New York, United States", Americas},
		{"Buenos Aires, Argentina", Americas},
		{"Cape Town, South Africa", Africa},
		{"Marrakech", Africa},
		{"Sydney, Australia", Oceania},
		{"Queenstown", Oceania},
		{"Atlantis", Other},
		{"", Other},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.location), "location %q", tt.location)
	}
}

func TestClassify_PriorityOrder(t *testing.T) {
	// When keywords from several regions appear, the first region in
	// Priority order wins.
	assert.Equal(t, Europe, Classify("Paris or Tokyo"))
	assert.Equal(t, Asia, Classify("Tokyo then Nairobi"))
}

func TestSameCountry_CountryToken(t *testing.T) {
	assert.True(t, SameCountry("Paris, France", "Nice, France"))
	assert.True(t, SameCountry("tokyo japan", "Kyoto, Japan"))
	assert.False(t, SameCountry("Paris, France", "Berlin, Germany"))
}

func TestSameCountry_TrailingSegment(t *testing.T) {
	// Countries outside the known token list still match on the literal
	// trailing comma segment.
	assert.True(t, SameCountry("Tbilisi, Georgia", "Batumi, GEORGIA"))
	assert.False(t, SameCountry("Tbilisi, Georgia", "Yerevan, Armenia"))
	// No comma means no trailing segment to compare.
	assert.False(t, SameCountry("Tbilisi", "Batumi"))
}

func TestClassify_Total(t *testing.T) {
	// Every input classifies to a member of Priority.
	for _, loc := range []string{"??", "1234", "somewhere remote"} {
		got := Classify(loc)
		assert.Contains(t, Priority, got)
	}
}
