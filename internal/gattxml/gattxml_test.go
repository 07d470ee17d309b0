// SPDX-License-Identifier: AGPL-3.0-or-later
package gattxml

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseFile(t *testing.T, p Parser, path string) (Record, error) {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	return p.Parse(f)
}

func TestServiceParser(t *testing.T) {
	rec, err := parseFile(t, ServiceParser{}, filepath.Join("..", "..", "specs", "services", "org.bluetooth.service.battery_service.xml"))
	require.NoError(t, err)

	assert.Equal(t, KindService, rec.Kind)
	assert.Equal(t, "Battery Service", rec.Name)
	assert.Equal(t, "180F", rec.ShortCode)
	assert.Equal(t, "The Battery Service exposes the Battery State and Battery Level of a single battery or set of batteries in a device.", rec.Description)
}

func TestCharacteristicParser_FallsBackToAbstract(t *testing.T) {
	rec, err := parseFile(t, CharacteristicParser{}, filepath.Join("..", "..", "specs", "characteristics", "org.bluetooth.characteristic.battery_level.xml"))
	require.NoError(t, err)

	assert.Equal(t, KindCharacteristic, rec.Kind)
	assert.Equal(t, "Battery Level", rec.Name)
	assert.Equal(t, "2A19", rec.ShortCode)
	assert.Equal(t, "The current charge level of a battery. 100% represents fully charged while 0% represents fully discharged.", rec.Description)
}

func TestCharacteristicParser_NoInformativeText(t *testing.T) {
	rec, err := parseFile(t, CharacteristicParser{}, filepath.Join("..", "..", "specs", "characteristics", "org.bluetooth.characteristic.body_sensor_location.xml"))
	require.NoError(t, err)
	assert.Equal(t, "Body Sensor Location", rec.Name)
	assert.Empty(t, rec.Description)
}

func TestServiceParser_JoinsSummaries(t *testing.T) {
	rec, err := parseFile(t, ServiceParser{}, filepath.Join("testdata", "multi_summary_service.xml"))
	require.NoError(t, err)
	assert.Equal(t, "This service defines how the current time can be exposed. <p> Second paragraph.", rec.Description)
}

func TestParse_SchemaMismatch(t *testing.T) {
	tests := []struct {
		name   string
		parser Parser
		doc    string
	}{
		{"wrong root", ServiceParser{}, `<Characteristic name="Battery Level" uuid="2A19"/>`},
		{"descriptor root", CharacteristicParser{}, `<Descriptor name="Client Characteristic Configuration" uuid="2902"/>`},
		{"missing name", ServiceParser{}, `<Service uuid="180F"/>`},
		{"missing uuid", CharacteristicParser{}, `<Characteristic name="Battery Level"/>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.parser.Parse(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrSchema)
		})
	}
}

func TestParse_SyntaxError(t *testing.T) {
	_, err := ServiceParser{}.Parse(strings.NewReader(`<Service name="Battery`))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSchema)

	_, err = ServiceParser{}.Parse(strings.NewReader(""))
	require.Error(t, err)
}

func TestParse_ShortCodeKeptVerbatim(t *testing.T) {
	rec, err := ServiceParser{}.Parse(strings.NewReader(`<Service name="Odd" uuid="ZZ"/>`))
	require.NoError(t, err)
	assert.Equal(t, "ZZ", rec.ShortCode)
}

func TestClean(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"   ", ""},
		{"plain", "plain"},
		{"  leading and trailing  ", "leading and trailing"},
		{"runs\n\t of   whitespace", "runs of whitespace"},
	}

	for _, tt := range tests {
		got := Clean(tt.in)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, got, Clean(got), "Clean must be idempotent for %q", tt.in)
	}
}

func TestParseKind(t *testing.T) {
	for _, s := range []string{"service", "Services", " SERVICE "} {
		k, err := ParseKind(s)
		require.NoError(t, err)
		assert.Equal(t, KindService, k)
	}
	for _, s := range []string{"characteristic", "characteristics"} {
		k, err := ParseKind(s)
		require.NoError(t, err)
		assert.Equal(t, KindCharacteristic, k)
	}
	_, err := ParseKind("descriptor")
	assert.Error(t, err)
}

func TestParserFor(t *testing.T) {
	p, err := ParserFor(KindService)
	require.NoError(t, err)
	assert.Equal(t, KindService, p.Kind())

	p, err = ParserFor(KindCharacteristic)
	require.NoError(t, err)
	assert.Equal(t, KindCharacteristic, p.Kind())

	_, err = ParserFor(Kind("descriptor"))
	assert.Error(t, err)
}
