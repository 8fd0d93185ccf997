package freshness

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInterval(t *testing.T) {
	tests := []struct {
		raw  string
		want Interval
	}{
		{"30", 30},
		{" 14 ", 14},
		{"365", 365},
		{"45.7", 45},
		{"1e2", 100},
		{"", NotConfigured},
		{"0", NotConfigured},
		{"-10", NotConfigured},
		{"0.5", NotConfigured},
		{"abc", NotConfigured},
		{"30days", NotConfigured},
		{"NaN", NotConfigured},
		{"1e300", NotConfigured},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := ParseInterval(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want != NotConfigured, got.Configured())
		})
	}
}

func TestNewInterval(t *testing.T) {
	assert.Equal(t, Interval(7), NewInterval(7))
	assert.Equal(t, NotConfigured, NewInterval(0))
	assert.Equal(t, NotConfigured, NewInterval(-1))
	assert.Equal(t, 0, Interval(-3).Days())
	assert.Equal(t, 90, Interval(90).Days())
}

func TestResolveSelection(t *testing.T) {
	tests := []struct {
		name     string
		selected string
		custom   string
		want     Interval
	}{
		{"predefined", "30", "", 30},
		{"predefined year", "365", "999", 365},
		{"predefined outside choices", "45", "", DefaultInterval},
		{"predefined non numeric", "monthly", "", DefaultInterval},
		{"predefined zero", "0", "", DefaultInterval},
		{"custom", "custom", "45", 45},
		{"custom padded", "custom", " 7 ", 7},
		{"custom zero", "custom", "0", DefaultInterval},
		{"custom negative", "custom", "-3", DefaultInterval},
		{"custom empty", "custom", "", DefaultInterval},
		{"custom garbage", "custom", "soon", DefaultInterval},
		{"nothing selected", "", "", DefaultInterval},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveSelection(tt.selected, tt.custom))
		})
	}
}

func TestSelectionFor(t *testing.T) {
	sel, custom := SelectionFor(NotConfigured)
	assert.Equal(t, "120", sel)
	assert.Empty(t, custom)

	sel, custom = SelectionFor(60)
	assert.Equal(t, "60", sel)
	assert.Empty(t, custom)

	sel, custom = SelectionFor(45)
	assert.Equal(t, CustomChoice, sel)
	assert.Equal(t, "45", custom)
}

func TestChoices(t *testing.T) {
	days := make([]Interval, 0, len(Choices))
	for _, c := range Choices {
		days = append(days, c.Days)
		assert.NotEmpty(t, c.Label)
	}
	assert.Equal(t, []Interval{14, 30, 60, 90, 120, 180, 365}, days)
	assert.True(t, DefaultInterval.IsChoice())
}
