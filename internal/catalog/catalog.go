package catalog

import (
	"sort"
	"strings"
)

// Entry is one HSN/SAC classification with its default GST rates.
// For every entry the IGST rate equals CGST+SGST: the total tax burden is
// the same whichever regime applies.
type Entry struct {
	Code        string  `json:"code"`
	Description string  `json:"description"`
	CGSTRate    float64 `json:"cgst_rate"`
	SGSTRate    float64 `json:"sgst_rate"`
	IGSTRate    float64 `json:"igst_rate"`
	CessRate    float64 `json:"cess_rate"`
}

// Normalize canonicalizes an HSN code for lookup: trimmed and uppercased,
// so "4404", " 4404 " and "4404" resolve identically.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Lookup provides in-memory HSN catalog lookups.
// It is immutable after construction and safe for concurrent access.
type Lookup struct {
	byCode map[string]Entry
	codes  []string
}

// NewLookup builds a Lookup from catalog entries. Later duplicates of a
// code win, so a database-loaded catalog can shadow built-in entries.
func NewLookup(entries []Entry) *Lookup {
	m := make(map[string]Entry, len(entries))
	for _, e := range entries {
		m[Normalize(e.Code)] = e
	}
	codes := make([]string, 0, len(m))
	for code := range m {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return &Lookup{byCode: m, codes: codes}
}

// Get returns the entry for a code after normalization.
// An unknown code returns (Entry{}, false); it is never an error.
func (l *Lookup) Get(code string) (Entry, bool) {
	e, ok := l.byCode[Normalize(code)]
	return e, ok
}

// Search returns all entries whose code starts with q or whose description
// contains q (case-insensitive), in code order.
func (l *Lookup) Search(q string) []Entry {
	q = strings.TrimSpace(q)
	if q == "" {
		return l.All()
	}
	qUpper := strings.ToUpper(q)
	qLower := strings.ToLower(q)
	var out []Entry
	for _, code := range l.codes {
		e := l.byCode[code]
		if strings.HasPrefix(code, qUpper) || strings.Contains(strings.ToLower(e.Description), qLower) {
			out = append(out, e)
		}
	}
	return out
}

// All returns every entry in code order.
func (l *Lookup) All() []Entry {
	out := make([]Entry, 0, len(l.codes))
	for _, code := range l.codes {
		out = append(out, l.byCode[code])
	}
	return out
}

// Len returns the number of distinct codes in the catalog.
func (l *Lookup) Len() int { return len(l.byCode) }

// Default returns the built-in wood and forest-produce catalog used when no
// database-backed catalog is configured.
func Default() []Entry {
	return []Entry{
		{Code: "4401", Description: "Wood in chips or particles; sawdust and wood waste", CGSTRate: 2.5, SGSTRate: 2.5, IGSTRate: 5},
		{Code: "4404", Description: "Hoopwood; split poles; piles, pickets and stakes (Casuarina Poles)", CGSTRate: 6, SGSTRate: 6, IGSTRate: 12},
		{Code: "4405", Description: "Wood wool; wood flour", CGSTRate: 6, SGSTRate: 6, IGSTRate: 12},
		{Code: "4406", Description: "Railway or tramway sleepers of wood", CGSTRate: 6, SGSTRate: 6, IGSTRate: 12},
		{Code: "4408", Description: "Sheets for veneering, for plywood", CGSTRate: 6, SGSTRate: 6, IGSTRate: 12},
		{Code: "4409", Description: "Bamboo flooring", CGSTRate: 6, SGSTRate: 6, IGSTRate: 12},
		{Code: "4601", Description: "Mats, matting and screens of vegetable material", CGSTRate: 2.5, SGSTRate: 2.5, IGSTRate: 5},
		{Code: "4823", Description: "Articles made of paper mache", CGSTRate: 2.5, SGSTRate: 2.5, IGSTRate: 5},
	}
}
