package dataio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// KnownSynergy is one row of the known-synergies CSV (columns
// `drug_a`,`drug_b`, optional `disease`), used only by `evaluate`.
type KnownSynergy struct {
	DrugA, DrugB string
	Disease      string // empty if the row has no disease column or value
}

// ReadKnownSynergies parses the known-synergies CSV. The `disease` column is
// optional; rows are returned unfiltered, leaving any disease-scoping to the
// caller (evaluate joins against the disease currently being scored).
func ReadKnownSynergies(r io.Reader) ([]KnownSynergy, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmptyInput, err)
	}
	iA, err := columnIndex(header, "drug_a")
	if err != nil {
		return nil, err
	}
	iB, err := columnIndex(header, "drug_b")
	if err != nil {
		return nil, err
	}
	iDisease := -1
	if idx, err := columnIndex(header, "disease"); err == nil {
		iDisease = idx
	}

	var out []KnownSynergy
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataio: read known synergies: %w", err)
		}
		rec := KnownSynergy{DrugA: strings.TrimSpace(row[iA]), DrugB: strings.TrimSpace(row[iB])}
		if iDisease >= 0 {
			rec.Disease = strings.TrimSpace(row[iDisease])
		}
		out = append(out, rec)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: known synergies file has no rows", ErrEmptyInput)
	}
	return out, nil
}

// FilterByDisease keeps only rows matching disease (case-insensitive);
// disease == "" disables filtering and returns rows unchanged.
func FilterByDisease(rows []KnownSynergy, disease string) []KnownSynergy {
	if disease == "" {
		return rows
	}
	want := strings.ToLower(disease)
	out := rows[:0:0]
	for _, r := range rows {
		if strings.ToLower(r.Disease) == want {
			out = append(out, r)
		}
	}
	return out
}
