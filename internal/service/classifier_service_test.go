package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"skillcheck/config"
)

func TestClassify_Bands(t *testing.T) {
	classifier := NewClassifierService(testConfig())

	cases := []struct {
		percentage int
		label      string
		passed     bool
	}{
		{0, "Beginner", false},
		{49, "Beginner", false},
		{50, "Intermediate", false},
		{59, "Intermediate", false},
		{60, "Intermediate", true},
		{69, "Intermediate", true},
		{70, "Advanced", true},
		{84, "Advanced", true},
		{85, "Expert", true},
		{100, "Expert", true},
	}
	for _, tc := range cases {
		label, passed := classifier.Classify(tc.percentage)
		assert.Equal(t, tc.label, label, "label at %d%%", tc.percentage)
		assert.Equal(t, tc.passed, passed, "verdict at %d%%", tc.percentage)
	}
}

func TestClassify_FloorBandWithoutZeroMinimum(t *testing.T) {
	cfg := testConfig()
	cfg.Assessment.ProficiencyBands = []config.ProficiencyBand{
		{MinPercent: 80, Label: "Strong"},
		{MinPercent: 40, Label: "Fair"},
	}
	classifier := NewClassifierService(cfg)

	// A band list that never reaches 0 still classifies low scores into its
	// lowest band instead of returning an empty label.
	label, _ := classifier.Classify(10)
	assert.Equal(t, "Fair", label)

	label, _ = classifier.Classify(90)
	assert.Equal(t, "Strong", label)
}

func TestClassify_Monotonic(t *testing.T) {
	classifier := NewClassifierService(testConfig())

	rank := map[string]int{"Beginner": 0, "Intermediate": 1, "Advanced": 2, "Expert": 3}
	prev := -1
	for p := 0; p <= 100; p++ {
		label, _ := classifier.Classify(p)
		assert.GreaterOrEqual(t, rank[label], prev, "label rank dropped at %d%%", p)
		prev = rank[label]
	}
}
