package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUserKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"a@x.com", true},
		{"position:1", false},
		{"verify:5f0c3f4e", false},
		{"wallet:0xabc", false},
		{"position:a@x.com", false},
		{"verify:a@x.com", false},
		{"wallet:a@x.com", false},
		{"no-at-sign", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUserKey(tt.key))
		})
	}
}
