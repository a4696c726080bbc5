package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActiveNav(t *testing.T) {
	tests := map[string]string{
		"/":                         NavPatterns,
		"/pattern/integer-overflow": NavPatterns,
		"/pattern/x/code/secure":    NavPatterns,
		"/deep-dive":                NavDeepDive,
		"/deep-dive/":               NavDeepDive,
		"/patterns":                 "",
		"/deep-diver":               "",
		"/static/style.css":         "",
	}

	for path, want := range tests {
		assert.Equal(t, want, ActiveNav(path), path)
	}
}
