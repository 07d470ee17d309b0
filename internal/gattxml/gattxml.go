// SPDX-License-Identifier: AGPL-3.0-or-later

// Package gattxml binds Bluetooth GATT specification documents to records.
package gattxml

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrSchema is returned when a document does not match the expected record schema.
var ErrSchema = errors.New("document does not match schema")

// Kind identifies which GATT record shape a parser binds.
type Kind string

const (
	KindService        Kind = "service"
	KindCharacteristic Kind = "characteristic"
)

// Record is the reduced form shared by every GATT document shape.
type Record struct {
	Kind        Kind
	Name        string
	ShortCode   string
	Description string

	// Source is the file the record came from, when known.
	Source string
}

// Parser turns a single document into a Record.
// Implementations must not retain r after returning.
type Parser interface {
	Kind() Kind
	Parse(r io.Reader) (Record, error)
}

// ParseKind accepts singular and plural spellings of a kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "service", "services":
		return KindService, nil
	case "characteristic", "characteristics":
		return KindCharacteristic, nil
	default:
		return "", fmt.Errorf("unknown kind %q (want service or characteristic)", s)
	}
}

// ParserFor returns the parser bound to kind.
func ParserFor(kind Kind) (Parser, error) {
	switch kind {
	case KindService:
		return ServiceParser{}, nil
	case KindCharacteristic:
		return CharacteristicParser{}, nil
	default:
		return nil, fmt.Errorf("no parser for kind %q", kind)
	}
}

// Clean collapses runs of whitespace (unicode.IsSpace) into single spaces
// and trims the result.
func Clean(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

type informativeText struct {
	Abstract string `xml:"Abstract"`
	Summary  string `xml:"Summary"`
}

// document covers the attributes and elements both record shapes share.
type document struct {
	XMLName         xml.Name
	Name            string            `xml:"name,attr"`
	UUID            string            `xml:"uuid,attr"`
	Type            string            `xml:"type,attr"`
	InformativeText []informativeText `xml:"InformativeText"`
}

// description joins the summaries, or the abstracts when no summary exists.
func (d *document) description() string {
	var summaries, abstracts []string
	for _, t := range d.InformativeText {
		if s := strings.TrimSpace(t.Summary); s != "" {
			summaries = append(summaries, t.Summary)
		}
		if a := strings.TrimSpace(t.Abstract); a != "" {
			abstracts = append(abstracts, t.Abstract)
		}
	}
	if len(summaries) == 0 {
		summaries = abstracts
	}
	return Clean(strings.Join(summaries, "<p>"))
}

func decode(r io.Reader, kind Kind, root string) (Record, error) {
	var doc document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return Record{}, fmt.Errorf("decoding %s document: %w", kind, err)
	}
	if doc.XMLName.Local != root {
		return Record{}, fmt.Errorf("%w: root element <%s>, want <%s>", ErrSchema, doc.XMLName.Local, root)
	}
	if doc.Name == "" {
		return Record{}, fmt.Errorf("%w: <%s> missing name attribute", ErrSchema, root)
	}
	if doc.UUID == "" {
		return Record{}, fmt.Errorf("%w: <%s name=%q> missing uuid attribute", ErrSchema, root, doc.Name)
	}
	return Record{
		Kind:        kind,
		Name:        doc.Name,
		ShortCode:   doc.UUID,
		Description: doc.description(),
	}, nil
}

// ServiceParser binds <Service> documents.
type ServiceParser struct{}

func (ServiceParser) Kind() Kind { return KindService }

func (ServiceParser) Parse(r io.Reader) (Record, error) {
	return decode(r, KindService, "Service")
}

// CharacteristicParser binds <Characteristic> documents.
type CharacteristicParser struct{}

func (CharacteristicParser) Kind() Kind { return KindCharacteristic }

func (CharacteristicParser) Parse(r io.Reader) (Record, error) {
	return decode(r, KindCharacteristic, "Characteristic")
}
