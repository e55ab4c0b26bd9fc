package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundTwo(t *testing.T) {
	assert.Equal(t, 33.33, RoundTwo(100.0/3.0))
	assert.Equal(t, 66.67, RoundTwo(200.0/3.0))
	assert.Equal(t, 0.0, RoundTwo(0))
	assert.Equal(t, 100.0, RoundTwo(100))
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 50.0, Percentage(1, 2))
	assert.Equal(t, 33.33, Percentage(1, 3))
	assert.Equal(t, 0.0, Percentage(0, 10))

	// Zero denominator is the neutral value, never a panic or NaN.
	assert.Equal(t, 0.0, Percentage(5, 0))
}

func TestCommitTotalLines(t *testing.T) {
	c := Commit{Insertions: 50, Deletions: 10}
	assert.Equal(t, 60, c.TotalLines())
}
