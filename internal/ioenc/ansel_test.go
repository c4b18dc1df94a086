package ioenc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeANSEL(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{
			name:  "plain ascii passthrough",
			input: []byte("1 NAME John /Smith/"),
			want:  "1 NAME John /Smith/",
		},
		{
			name:  "acute becomes precomposed",
			input: []byte{0xE2, 'a'},
			want:  "á",
		},
		{
			name:  "grave uppercase",
			input: []byte{0xE1, 'E'},
			want:  "È",
		},
		{
			name:  "diaeresis lowercase",
			input: []byte{'M', 0xE8, 'u', 'l', 'l', 'e', 'r'},
			want:  "Müller",
		},
		{
			name:  "unknown pair emits base then combining",
			input: []byte{0xE2, 'q'},
			want:  "q́",
		},
		{
			name:  "bare mark at end of input",
			input: []byte{'a', 0xE2},
			want:  "á",
		},
		{
			name:  "extended byte passthrough",
			input: []byte{0xA9},
			want:  "©",
		},
		{
			name:  "empty input",
			input: nil,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeANSEL(tt.input))
		})
	}
}

func TestDecodeANSELWord(t *testing.T) {
	// "Renée": marks stored before their base letters.
	input := []byte{'R', 'e', 'n', 0xE2, 'e', 0xE2, 'e'}
	assert.Equal(t, "Renéé", DecodeANSEL(input))
}

func TestIsANSEL(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		limit int
		want  bool
	}{
		{
			name:  "combining mark present",
			input: []byte{'a', 0xE2, 'e'},
			limit: 0,
			want:  true,
		},
		{
			name:  "pure ascii",
			input: []byte("0 HEAD"),
			limit: 0,
			want:  false,
		},
		{
			name:  "mark beyond scan limit",
			input: append(make([]byte, 100), 0xE2),
			limit: 100,
			want:  false,
		},
		{
			name:  "limit larger than data",
			input: []byte{0xE2},
			limit: 4096,
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsANSEL(tt.input, tt.limit))
		})
	}
}
