package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bassista/go_unis/internal/university"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func strPtr(s string) *string { return &s }

func sampleUniversity() university.University {
	return university.University{
		ID:            "u-1",
		AlphaTwoCode:  strPtr("AE"),
		Country:       "United Arab Emirates",
		Domains:       []string{"a.ac.ae", "alpha.ae"},
		Name:          "Alpha University",
		StateProvince: nil,
		WebPages:      []string{"http://a.ac.ae"},
	}
}

func newTestPrinter(asYAML bool) (*Printer, *bytes.Buffer) {
	color.NoColor = true
	buf := &bytes.Buffer{}
	return NewPrinter(buf, asYAML), buf
}

func TestPrinter_ShowUniversities(t *testing.T) {
	p, buf := newTestPrinter(false)

	p.ShowUniversities([]university.University{sampleUniversity()})
	assert.Equal(t, "Loaded 1 universities\n", buf.String())

	buf.Reset()
	p.ShowUniversities(nil)
	assert.Equal(t, "No universities to show\n", buf.String())
}

func TestPrinter_ShowError(t *testing.T) {
	p, buf := newTestPrinter(false)

	p.ShowError("There's no internet connection.")

	assert.Equal(t, "Error: There's no internet connection.\n", buf.String())
}

func TestPrinter_ShowUniversityRows(t *testing.T) {
	p, buf := newTestPrinter(false)

	p.ShowUniversity(sampleUniversity())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "Alpha University", lines[0])
	assert.Equal(t, "Country:         United Arab Emirates", lines[1])
	assert.Equal(t, "Code:            AE", lines[2])
	assert.Equal(t, "State/Province:  -", lines[3])
	assert.Equal(t, "Domains:         a.ac.ae, alpha.ae", lines[4])
	assert.Equal(t, "Web pages:       http://a.ac.ae", lines[5])
}

func TestPrinter_ShowUniversityYAML(t *testing.T) {
	p, buf := newTestPrinter(true)

	p.ShowUniversity(sampleUniversity())

	var decoded university.University
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sampleUniversity(), decoded)
}

func TestDetailRows_EmptyLists(t *testing.T) {
	u := sampleUniversity()
	u.Domains = []string{}
	u.WebPages = nil

	rows := detailRows(u)

	assert.Equal(t, missingValue, rows[3].value)
	assert.Equal(t, missingValue, rows[4].value)
}
