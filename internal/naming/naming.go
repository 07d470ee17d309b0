// SPDX-License-Identifier: AGPL-3.0-or-later

// Package naming derives collision-free constant names from display names.
package naming

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// separators matches the runs that collapse into a single underscore:
// hyphens, parentheses and whitespace as defined by unicode.IsSpace, the
// same rule gattxml.Clean applies to descriptions.
var separators = regexp.MustCompile(`[\t\n\v\f\r\x{85}\p{Z}()\-]+`)

var upper = cases.Upper(language.Und)

// BaseName upper-cases display and replaces runs of whitespace, hyphens and
// parentheses with an underscore. Any remaining rune that cannot appear in a
// Go identifier is replaced by an underscore as well, and a leading digit
// gets an underscore prefix.
func BaseName(display string) string {
	s := separators.ReplaceAllString(upper.String(display), "_")
	s = strings.Map(func(r rune) rune {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, s)

	if s == "" || s == "_" {
		return "UNNAMED"
	}
	if unicode.IsDigit([]rune(s)[0]) {
		s = "_" + s
	}
	return s
}

// Namer hands out unique constant names for one generation run.
// The zero value is not usable; use NewNamer.
type Namer struct {
	prefix string
	used   map[string]struct{}
}

// NewNamer returns a Namer that prepends prefix to every base name.
func NewNamer(prefix string) *Namer {
	return &Namer{prefix: prefix, used: make(map[string]struct{})}
}

// Next returns the constant name for display. The first occurrence of a
// base name is returned as is; later ones get the first free _1, _2, ... suffix.
func (n *Namer) Next(display string) string {
	base := n.prefix + BaseName(display)
	name := base
	for i := 1; n.taken(name); i++ {
		name = base + "_" + strconv.Itoa(i)
	}
	n.used[name] = struct{}{}
	return name
}

func (n *Namer) taken(name string) bool {
	_, ok := n.used[name]
	return ok
}
