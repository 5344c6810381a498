package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bassista/go_unis/internal/university"
	runewidth "github.com/mattn/go-runewidth"
)

const (
	maxNameWidth = 48
	ellipsis     = "…"
)

// formatListItems builds one aligned line per university: a right-aligned
// number, the name padded to a common width and the state or province.
func formatListItems(unis []university.University) []string {
	if len(unis) == 0 {
		return nil
	}

	numberWidth := len(strconv.Itoa(len(unis)))
	nameWidth := 0
	names := make([]string, len(unis))
	for i, u := range unis {
		names[i] = runewidth.Truncate(u.Name, maxNameWidth, ellipsis)
		if w := runewidth.StringWidth(names[i]); w > nameWidth {
			nameWidth = w
		}
	}

	items := make([]string, 0, len(unis))
	for i, u := range unis {
		line := fmt.Sprintf("%*d. %s", numberWidth, i+1, runewidth.FillRight(names[i], nameWidth))
		if region := deref(u.StateProvince); region != "" {
			line += "  " + region
		}
		items = append(items, strings.TrimRight(line, " "))
	}
	return items
}
