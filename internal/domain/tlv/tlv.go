// Package tlv encodes and parses EMV Merchant Presented Mode data objects:
// a two-digit numeric tag, a two-digit decimal length and the value itself.
package tlv

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	tagLen = 2
	lenLen = 2

	MaxValueLen = 99
)

var (
	ErrInvalidTag   = errors.New("tag must be two digits")
	ErrValueTooLong = errors.New("value exceeds 99 characters")
	ErrMalformed    = errors.New("malformed tlv data")
)

// Field is a single data object. When Children is non-empty the field is a
// template and its value is the encoding of the children; Value is ignored.
type Field struct {
	Tag      string
	Value    string
	Children []Field
}

func New(tag, value string) Field {
	return Field{Tag: tag, Value: value}
}

func Template(tag string, children ...Field) Field {
	return Field{Tag: tag, Children: children}
}

// Encode renders the field as tag + length + value. The length is taken from
// the value at call time.
func (f Field) Encode() (string, error) {
	if !validTag(f.Tag) {
		return "", fmt.Errorf("%w: %q", ErrInvalidTag, f.Tag)
	}

	value := f.Value
	if len(f.Children) > 0 {
		v, err := Encode(f.Children...)
		if err != nil {
			return "", fmt.Errorf("template %s: %w", f.Tag, err)
		}
		value = v
	}

	if len(value) > MaxValueLen {
		return "", fmt.Errorf("tag %s: %w (%d)", f.Tag, ErrValueTooLong, len(value))
	}

	return f.Tag + fmt.Sprintf("%02d", len(value)) + value, nil
}

func Encode(fields ...Field) (string, error) {
	var sb strings.Builder
	for _, f := range fields {
		s, err := f.Encode()
		if err != nil {
			return "", err
		}
		sb.WriteString(s)
	}
	return sb.String(), nil
}

// Parse splits data into consecutive top-level fields. Templates are not
// expanded; call Parse again on a field's Value to read its children.
func Parse(data string) ([]Field, error) {
	var fields []Field

	offset := 0
	for offset < len(data) {
		if offset+tagLen+lenLen > len(data) {
			return nil, fmt.Errorf("%w: truncated header at offset %d", ErrMalformed, offset)
		}

		tag := data[offset : offset+tagLen]
		if !validTag(tag) {
			return nil, fmt.Errorf("%w: %w %q at offset %d", ErrMalformed, ErrInvalidTag, tag, offset)
		}
		offset += tagLen

		lengthStr := data[offset : offset+lenLen]
		length, err := strconv.Atoi(lengthStr)
		if err != nil || !isDigits(lengthStr) {
			return nil, fmt.Errorf("%w: invalid length %q at offset %d", ErrMalformed, lengthStr, offset)
		}
		offset += lenLen

		if offset+length > len(data) {
			return nil, fmt.Errorf("%w: tag %s needs %d characters, %d left", ErrMalformed, tag, length, len(data)-offset)
		}
		fields = append(fields, Field{Tag: tag, Value: data[offset : offset+length]})
		offset += length
	}

	return fields, nil
}

// Find returns the first field with the given tag.
func Find(fields []Field, tag string) (Field, bool) {
	for _, f := range fields {
		if f.Tag == tag {
			return f, true
		}
	}
	return Field{}, false
}

func validTag(tag string) bool {
	return len(tag) == tagLen && isDigits(tag)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
