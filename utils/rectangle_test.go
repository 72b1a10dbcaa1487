package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectangle_Intersects(t *testing.T) {
	base := NewRectangle(10, 10, 20, 20)

	testCases := []struct {
		name     string
		other    Rectangle
		expected bool
	}{
		{"overlapping corner", NewRectangle(25, 25, 10, 10), true},
		{"contained", NewRectangle(15, 15, 2, 2), true},
		{"containing", NewRectangle(0, 0, 100, 100), true},
		{"touching right edge", NewRectangle(30, 10, 5, 5), false},
		{"touching bottom edge", NewRectangle(10, 30, 5, 5), false},
		{"left of", NewRectangle(0, 10, 5, 5), false},
		{"above", NewRectangle(10, -10, 5, 5), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, base.Intersects(tc.other))
			assert.Equal(t, tc.expected, tc.other.Intersects(base), "intersection must be symmetric")
		})
	}
}

func TestRectangle_Edges(t *testing.T) {
	r := NewRectangle(1, 2, 3, 4)
	assert.Equal(t, 1.0, r.Left())
	assert.Equal(t, 4.0, r.Right())
	assert.Equal(t, 2.0, r.Top())
	assert.Equal(t, 6.0, r.Bottom())
}
