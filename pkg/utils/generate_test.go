package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateReservationCode_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^TIX-[A-Z0-9]{8}$`)

	seen := make(map[string]struct{})
	for i := 0; i < 200; i++ {
		code, err := GenerateReservationCode()
		require.NoError(t, err)
		assert.Regexp(t, pattern, code)
		seen[code] = struct{}{}
	}

	// 36^8 kombinasi, 200 kode tidak boleh tabrakan
	assert.Len(t, seen, 200)
}
