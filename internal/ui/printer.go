package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/bassista/go_unis/internal/listing"
	"github.com/bassista/go_unis/internal/university"
	"github.com/fatih/color"
	runewidth "github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"
)

const missingValue = "-"

// Printer renders the list and detail screens on a terminal.
type Printer struct {
	out    io.Writer
	asYAML bool

	success *color.Color
	info    *color.Color
	label   *color.Color
	error   *color.Color
}

// NewPrinter writes to out. With asYAML the detail screen prints the record
// as a YAML document instead of aligned rows.
func NewPrinter(out io.Writer, asYAML bool) *Printer {
	return &Printer{
		out:     out,
		asYAML:  asYAML,
		success: color.New(color.FgGreen, color.Bold),
		info:    color.New(color.FgBlue, color.Bold),
		label:   color.New(color.FgCyan),
		error:   color.New(color.FgRed, color.Bold),
	}
}

func (p *Printer) ShowUniversities(unis []university.University) {
	if len(unis) == 0 {
		p.info.Fprintln(p.out, "No universities to show")
		return
	}
	p.success.Fprintf(p.out, "Loaded %d universities\n", len(unis))
}

func (p *Printer) ShowError(message string) {
	p.error.Fprintf(p.out, "Error: %s\n", message)
}

func (p *Printer) ShowUniversity(u university.University) {
	if p.asYAML {
		data, err := yaml.Marshal(u)
		if err != nil {
			p.ShowError(err.Error())
			return
		}
		fmt.Fprint(p.out, string(data))
		return
	}

	p.info.Fprintln(p.out, u.Name)
	for _, row := range detailRows(u) {
		p.label.Fprint(p.out, row.label)
		fmt.Fprintf(p.out, "  %s\n", row.value)
	}
}

func (p *Printer) Dismiss() {
	fmt.Fprintln(p.out)
}

type detailRow struct {
	label string
	value string
}

// detailRows returns the labelled fields with labels padded to one width.
func detailRows(u university.University) []detailRow {
	rows := []detailRow{
		{"Country", orMissing(u.Country)},
		{"Code", orMissing(deref(u.AlphaTwoCode))},
		{"State/Province", orMissing(deref(u.StateProvince))},
		{"Domains", joinOrMissing(u.Domains)},
		{"Web pages", joinOrMissing(u.WebPages)},
	}

	width := 0
	for _, r := range rows {
		if w := runewidth.StringWidth(r.label); w > width {
			width = w
		}
	}
	for i := range rows {
		rows[i].label = runewidth.FillRight(rows[i].label+":", width+1)
	}
	return rows
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func orMissing(s string) string {
	if strings.TrimSpace(s) == "" {
		return missingValue
	}
	return s
}

func joinOrMissing(values []string) string {
	return orMissing(strings.Join(values, ", "))
}

var (
	_ listing.View        = (*Printer)(nil)
	_ listing.DetailsView = (*Printer)(nil)
)
