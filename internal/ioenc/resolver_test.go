package ioenc

import (
	"testing"

	"github.com/gedtk/gedtree/pkg/config"
	"github.com/stretchr/testify/assert"
)

func header(charToken string) []byte {
	return []byte("0 HEAD\n1 SOUR test\n1 CHAR " + charToken + "\n")
}

func TestDetectEncoding(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Encoding
	}{
		{"ansel declared", header("ANSEL"), EncodingANSEL},
		{"ascii declared", header("ASCII"), EncodingASCII},
		{"utf-8 declared", header("UTF-8"), EncodingUTF8},
		{"utf8 without dash", header("UTF8"), EncodingUTF8},
		{"unicode token means utf-8", header("UNICODE"), EncodingUTF8},
		{"utf-16 declared", header("UTF-16"), EncodingUTF16},
		{"lowercase token", header("ansel"), EncodingANSEL},
		{"unknown token falls back", header("EBCDIC"), EncodingLatin1},
		{"no char line falls back", []byte("0 HEAD\n1 SOUR test\n"), EncodingLatin1},
		{"empty file falls back", nil, EncodingLatin1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, DetectEncoding(tt.data, 1024), tt.want)
		})
	}
}

func TestDetectEncodingPreviewBound(t *testing.T) {
	// CHAR line outside the preview window is not seen.
	data := append(make([]byte, 0, 2048), []byte("0 HEAD\n")...)
	for len(data) < 1024 {
		data = append(data, []byte("1 NOTE padding\n")...)
	}
	data = append(data, []byte("1 CHAR ANSEL\n")...)

	assert.Equal(t, EncodingLatin1, DetectEncoding(data, 1024))
	assert.Equal(t, EncodingANSEL, DetectEncoding(data, len(data)))
}

func TestDecodeFile(t *testing.T) {
	cfg := &config.ParserConfig{
		HeaderPreviewSize: 1024,
		AnselScanLimit:    4096,
	}

	t.Run("ansel with combining marks", func(t *testing.T) {
		data := append(header("ANSEL"), []byte("1 NAME ")...)
		data = append(data, 0xE2, 'a')
		got := DecodeFile(data, cfg)
		assert.Contains(t, got, "1 NAME á")
	})

	t.Run("ansel declared but pure latin-1", func(t *testing.T) {
		// 0xE9 is é in Latin-1 and would be a combining mark prefix in
		// ANSEL; with no bytes in the combining range the declaration
		// is not trusted.
		data := append(header("ANSEL"), []byte("1 NAME Jos")...)
		data = append(data, 0xD6)
		got := DecodeFile(data, cfg)
		assert.Contains(t, got, "JosÖ")
	})

	t.Run("utf-8 preserved", func(t *testing.T) {
		data := append(header("UTF-8"), []byte("1 NAME Grün\n")...)
		got := DecodeFile(data, cfg)
		assert.Contains(t, got, "Grün")
	})

	t.Run("invalid utf-8 replaced", func(t *testing.T) {
		data := append(header("UTF-8"), 0xFF, 0xFE)
		got := DecodeFile(data, cfg)
		assert.Contains(t, got, "�")
	})

	t.Run("ascii strict", func(t *testing.T) {
		data := append(header("ASCII"), []byte("1 NAME Jo")...)
		data = append(data, 0xE9)
		got := DecodeFile(data, cfg)
		assert.Contains(t, got, "Jo�")
	})

	t.Run("no declaration decodes latin-1", func(t *testing.T) {
		data := []byte("0 HEAD\n1 NAME Jos")
		data = append(data, 0xE9) // é in Latin-1
		got := DecodeFile(data, cfg)
		assert.Contains(t, got, "José")
	})
}
