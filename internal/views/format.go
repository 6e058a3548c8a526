package views

import (
	"fmt"
	"studydesk/pkg/domain"
)

// FormatDate renders d as "Jan 2, 2006". The zero date renders as "".
func FormatDate(d domain.Date) string {
	if d.IsZero() {
		return ""
	}
	return d.Time().Format("Jan 2, 2006")
}

// FormatPercent renders a percentage with one decimal, e.g. "82.5%".
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}
