package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeNext(t *testing.T) {
	testCases := []struct {
		Name     string
		Next     string
		Expected string
	}{
		{Name: "Local path", Next: "/cart", Expected: "/cart"},
		{Name: "Empty falls back to feed", Next: "", Expected: "/"},
		{Name: "Relative path is rejected", Next: "cart", Expected: "/"},
		{Name: "Protocol-relative host is rejected", Next: "//evil.example", Expected: "/"},
		{Name: "Absolute URL is rejected", Next: "https://evil.example", Expected: "/"},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Expected, safeNext(tc.Next))
		})
	}
}
