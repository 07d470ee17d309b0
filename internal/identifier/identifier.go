// SPDX-License-Identifier: AGPL-3.0-or-later

// Package identifier expands short Bluetooth identifiers into canonical
// 128-bit identifier strings on the Bluetooth base UUID.
package identifier

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// BaseSuffix is the fixed tail of the Bluetooth base UUID.
const BaseSuffix = "-0000-1000-8000-00805F9B34FB"

// ErrInvalid is returned by Validate for short codes that cannot expand
// into a well-formed identifier.
var ErrInvalid = errors.New("invalid short identifier")

// Expand right-aligns short in an 8-wide field, turns every space into '0'
// and appends BaseSuffix.
//
// No validation is performed: a malformed short code yields a well-formed
// looking string that is not a valid identifier.
func Expand(short string) string {
	return strings.ReplaceAll(fmt.Sprintf("%8s", short), " ", "0") + BaseSuffix
}

// Validate reports whether short is 1 to 8 hex digits and expands into a
// parseable identifier.
func Validate(short string) error {
	if short == "" || len(short) > 8 {
		return fmt.Errorf("%w: %q must be 1 to 8 hex digits", ErrInvalid, short)
	}
	for _, r := range short {
		if !isHex(r) {
			return fmt.Errorf("%w: %q contains non-hex rune %q", ErrInvalid, short, r)
		}
	}
	if _, err := uuid.Parse(Expand(short)); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalid, short, err)
	}
	return nil
}

// Parse returns the UUID for a canonical identifier string, or uuid.Nil when
// the string does not parse.
func Parse(canonical string) uuid.UUID {
	u, err := uuid.Parse(canonical)
	if err != nil {
		return uuid.Nil
	}
	return u
}

func isHex(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
