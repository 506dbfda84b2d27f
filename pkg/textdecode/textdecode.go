// Package textdecode turns uploaded bytes into normalized UTF-8 text.
package textdecode

import (
	"errors"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var ErrInvalidUTF8 = errors.New("input is not valid UTF-8")

// Decode strips a UTF-8 BOM, converts BOM-marked UTF-16 to UTF-8 and returns
// the text in NFC form, so "o" + combining acute and "ó" classify the same.
func Decode(data []byte) (string, error) {
	out, _, err := transform.Bytes(unicode.BOMOverride(encoding.Nop.NewDecoder()), data)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(out) {
		return "", ErrInvalidUTF8
	}
	return norm.NFC.String(string(out)), nil
}

// Normalize applies NFC to text that is already a Go string.
func Normalize(s string) string {
	return norm.NFC.String(s)
}
