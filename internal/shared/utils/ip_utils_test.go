package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPrivateIP(t *testing.T) {
	testCases := map[string]bool{
		"127.0.0.1":   true,
		"::1":         true,
		"10.1.2.3":    true,
		"172.16.0.1":  true,
		"192.168.1.1": true,
		"fd00::1":     true,
		"8.8.8.8":     false,
		"203.0.113.7": false,
		"2001:db8::1": false,
		"":            false,
		"not-an-ip":   false,
	}

	for ip, expected := range testCases {
		assert.Equal(t, expected, IsPrivateIP(ip), ip)
	}
}

func TestIsValidIP(t *testing.T) {
	assert.True(t, isValidIP("203.0.113.7"))
	assert.True(t, isValidIP("2001:db8::1"))
	assert.False(t, isValidIP(""))
	assert.False(t, isValidIP("203.0.113.7:80"))
}
