package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTotalPages(t *testing.T) {
	assert.Equal(t, 0, CalculateTotalPages(0, 10))
	assert.Equal(t, 1, CalculateTotalPages(8, 8))
	assert.Equal(t, 2, CalculateTotalPages(9, 8))
	assert.Equal(t, 0, CalculateTotalPages(5, 0))
}

func TestCalculateOffset(t *testing.T) {
	assert.Equal(t, 0, CalculateOffset(1, 10))
	assert.Equal(t, 16, CalculateOffset(3, 8))
	assert.Equal(t, 0, CalculateOffset(-1, 8))
	assert.Equal(t, 0, CalculateOffset(3, 0))
}

func TestCalculateOffset_HugePageNeverNegative(t *testing.T) {
	page := ParseInt("9223372036854775807", 1)

	offset := CalculateOffset(page, 8)

	assert.GreaterOrEqual(t, offset, 0)
	assert.Equal(t, math.MaxInt, offset)
	assert.Equal(t, math.MaxInt, CalculateOffset(math.MaxInt/8+2, 8))
	assert.Equal(t, math.MaxInt/8*8, CalculateOffset(math.MaxInt/8+1, 8))
}

func TestParseInt(t *testing.T) {
	assert.Equal(t, 4, ParseInt("4", 1))
	assert.Equal(t, 1, ParseInt("", 1))
	assert.Equal(t, 1, ParseInt("abc", 1))
	assert.Equal(t, 1, ParseInt("0", 1))
}
