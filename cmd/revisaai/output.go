package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/revisaai/revisaai/internal/validate"
)

// emit prints v as indented JSON when --json is set, otherwise it calls human.
func (c *cli) emit(v any, human func()) error {
	if !c.json {
		human()
		return nil
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Fprintln(c.out, string(b))
	return nil
}

func (c *cli) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// table prints a header and rows aligned in columns, trimming trailing blanks.
func (c *cli) table(header string, rows [][]string) {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, header)
	for _, r := range rows {
		fmt.Fprintln(w, strings.Join(r, "\t"))
	}
	w.Flush()
	for _, line := range strings.Split(strings.TrimRight(sb.String(), "\n"), "\n") {
		fmt.Fprintln(c.out, strings.TrimRight(line, " "))
	}
}

// formatKm renders an odometer value the way it is typed: 20500 as "20.500".
func formatKm(km float64) string {
	if km == 0 {
		return "-"
	}
	whole := int64(km)
	s := strconv.FormatInt(whole, 10)
	var sb strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			sb.WriteByte('.')
		}
		sb.WriteRune(r)
	}
	if frac := km - float64(whole); frac > 0 {
		dec := strconv.FormatFloat(frac, 'f', -1, 64)
		sb.WriteString("," + strings.TrimPrefix(dec, "0."))
	}
	return sb.String()
}

// formatDate shows an ISO-8601 value as dd/mm/yyyy, or as-is when unparsable.
func formatDate(s string) string {
	if s == "" {
		return "-"
	}
	t, err := validate.ParseISODate(s)
	if err != nil {
		return s
	}
	return t.Format("02/01/2006")
}

func formatTime(s string) string {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return "-"
	}
	return t.Format("15:04")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
