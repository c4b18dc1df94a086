// Package ioenc detects the character encoding a GEDCOM file declares
// in its header and decodes its bytes into text.
//
// GEDCOM files self-declare their encoding in a "1 CHAR <token>"
// header line, which itself is always plain ASCII. The resolver
// decodes a bounded prefix as ASCII, finds the token and picks a
// decoding strategy. Unknown or absent tokens never fail: the file
// degrades to a Latin-1-style decode, which maps every byte to some
// character.
package ioenc

import (
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/gedtk/gedtree/pkg/config"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Encoding is the decoding strategy selected for a file.
type Encoding int

const (
	// EncodingLatin1 is the fallback: a single-byte decode that
	// cannot fail.
	EncodingLatin1 Encoding = iota
	EncodingASCII
	EncodingANSEL
	EncodingUTF8
	EncodingUTF16
)

// String returns the encoding name for logs.
func (e Encoding) String() string {
	switch e {
	case EncodingASCII:
		return "ASCII"
	case EncodingANSEL:
		return "ANSEL"
	case EncodingUTF8:
		return "UTF-8"
	case EncodingUTF16:
		return "UTF-16"
	default:
		return "Latin-1"
	}
}

var charRe = regexp.MustCompile(`(?m)^\s*1\s+CHAR\s+(\S+)`)

// DetectEncoding inspects up to previewSize leading bytes for the
// "1 CHAR <token>" header line and maps the token to an Encoding.
// The prefix is decoded as 7-bit ASCII; the CHAR line is only valid
// at level 1, but the header always appears first, so a plain prefix
// scan suffices.
func DetectEncoding(data []byte, previewSize int) Encoding {
	if previewSize <= 0 || previewSize > len(data) {
		previewSize = len(data)
	}
	preview := asciiString(data[:previewSize])

	m := charRe.FindStringSubmatch(preview)
	if m == nil {
		return EncodingLatin1
	}

	switch strings.ToUpper(m[1]) {
	case "ANSEL":
		return EncodingANSEL
	case "ASCII":
		return EncodingASCII
	case "UNICODE", "UTF-8", "UTF8":
		return EncodingUTF8
	case "UTF-16", "UTF16":
		return EncodingUTF16
	default:
		return EncodingLatin1
	}
}

// DecodeFile decodes a raw GEDCOM byte buffer into text following the
// encoding the file declares.
//
// A file declared ANSEL is double-checked with the IsANSEL heuristic;
// when no combining-mark bytes appear within the scan limit the file
// is treated as mislabeled and decoded as Latin-1 instead. Decoding
// itself never fails; reading the bytes is the caller's only fatal
// error surface.
func DecodeFile(data []byte, cfg *config.ParserConfig) string {
	enc := DetectEncoding(data, cfg.HeaderPreviewSize)

	switch enc {
	case EncodingANSEL:
		if !IsANSEL(data, cfg.AnselScanLimit) {
			slog.Warn("File declared ANSEL contains no ANSEL bytes, " +
				"falling back to Latin-1")
			return decodeLatin1(data)
		}
		return DecodeANSEL(data)
	case EncodingASCII:
		return asciiString(data)
	case EncodingUTF8:
		return strings.ToValidUTF8(string(data), string(utf8.RuneError))
	case EncodingUTF16:
		return decodeUTF16(data)
	default:
		return decodeLatin1(data)
	}
}

// asciiString performs a strict 7-bit decode; bytes with the high bit
// set become the replacement character.
func asciiString(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data))
	for _, b := range data {
		if b < 0x80 {
			sb.WriteByte(b)
		} else {
			sb.WriteRune(utf8.RuneError)
		}
	}
	return sb.String()
}

func decodeLatin1(data []byte) string {
	res, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		// ISO 8859-1 maps every byte; decoding cannot really fail.
		return string(data)
	}
	return string(res)
}

func decodeUTF16(data []byte) string {
	dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	res, err := dec.Bytes(data)
	if err != nil {
		slog.Warn("UTF-16 decoding failed, falling back to Latin-1",
			"error", err)
		return decodeLatin1(data)
	}
	return string(res)
}
