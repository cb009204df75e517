// Command seedhsn converts a GST rate workbook into a SQL seed file for the
// hsn_codes table. Without an argument it emits the built-in catalog.
// Usage: go run ./cmd/seedhsn [rates.xlsx]
// Output: db/seeds/hsn_codes.sql
package main

import (
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"

	"billforge/internal/catalog"
)

const batchSize = 500

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	outPath := "db/seeds/hsn_codes.sql"

	var entries []catalog.Entry
	if len(os.Args) > 1 {
		parsed, err := parseWorkbook(os.Args[1])
		if err != nil {
			return err
		}
		entries = parsed
		log.Printf("workbook: %d entries", len(entries))
	} else {
		entries = catalog.Default()
		log.Printf("no workbook given, seeding the built-in catalog: %d entries", len(entries))
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() { _ = out.Close() }()

	w := func(s string) error { _, werr := fmt.Fprintln(out, s); return werr }

	for _, line := range []string{
		"-- HSN code seed data.",
		fmt.Sprintf("-- %d entries in batches of %d.", len(entries), batchSize),
		"-- Run: make seed-hsn",
		"BEGIN;",
		"",
	} {
		if werr := w(line); werr != nil {
			return fmt.Errorf("write header: %w", werr)
		}
	}

	for i := 0; i < len(entries); i += batchSize {
		end := i + batchSize
		if end > len(entries) {
			end = len(entries)
		}
		if err := writeBatch(out, entries[i:end]); err != nil {
			return fmt.Errorf("write batch at offset %d: %w", i, err)
		}
	}

	for _, line := range []string{"", "COMMIT;"} {
		if werr := w(line); werr != nil {
			return fmt.Errorf("write footer: %w", werr)
		}
	}

	log.Printf("Generated %d entries (%d batches) in %s",
		len(entries), (len(entries)+batchSize-1)/batchSize, outPath)
	return nil
}

// parseWorkbook reads sheet 0 of a rate workbook. Columns: A=code,
// B=description, C=total GST rate (e.g. "12%"), D=cess rate (optional).
// The total rate is split evenly between CGST and SGST; IGST carries the
// full rate. Data starts at row index 1, below the header.
func parseWorkbook(path string) ([]catalog.Entry, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("read sheet: %w", err)
	}

	seen := make(map[string]bool)
	var entries []catalog.Entry
	for i := 1; i < len(rows); i++ {
		row := rows[i]

		code := strings.TrimSpace(cellVal(row, 0))
		if code == "" || !isNumeric(code) || seen[code] {
			continue
		}

		rate, ok := parseRate(cellVal(row, 2))
		if !ok {
			continue
		}
		cess, _ := parseRate(cellVal(row, 3))

		seen[code] = true
		entries = append(entries, catalog.Entry{
			Code:        code,
			Description: strings.TrimSpace(cellVal(row, 1)),
			CGSTRate:    rate / 2,
			SGSTRate:    rate / 2,
			IGSTRate:    rate,
			CessRate:    cess,
		})
	}
	return entries, nil
}

// ratePattern matches a number optionally followed by "%".
var ratePattern = regexp.MustCompile(`(\d+(?:\.\d+)?)%?`)

// parseRate extracts a percentage from free-text rate strings.
// "Exempt" and "Nil" count as zero.
func parseRate(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	lower := strings.ToLower(s)
	if lower == "exempt" || lower == "nil" {
		return 0, true
	}

	m := ratePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	var rate float64
	if _, err := fmt.Sscanf(m[1], "%f", &rate); err != nil {
		return 0, false
	}
	return rate, true
}

func writeBatch(out *os.File, batch []catalog.Entry) error {
	if len(batch) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString("INSERT INTO hsn_codes (code, description, cgst_rate, sgst_rate, igst_rate, cess_rate) VALUES\n")

	for i := range batch {
		e := &batch[i]
		if i > 0 {
			b.WriteString(",\n")
		}
		fmt.Fprintf(&b, "  ('%s', '%s', %.2f, %.2f, %.2f, %.2f)",
			escapeSQL(e.Code), escapeSQL(e.Description),
			e.CGSTRate, e.SGSTRate, e.IGSTRate, e.CessRate)
	}

	b.WriteString("\nON CONFLICT (code) DO NOTHING;\n")

	_, err := out.WriteString(b.String())
	return err
}

func cellVal(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

func isNumeric(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return s != ""
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
