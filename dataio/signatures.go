package dataio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadSignatures parses the optional disease-signatures TSV (columns
// `disease`,`gene`,`log_fc`) into disease id -> gene -> log-fold-change.
// Genes with no entry for a disease are absent, not zero; this reader
// only ever records genes explicitly present in the file.
func ReadSignatures(r io.Reader) (map[string]map[string]float64, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmptyInput, err)
	}
	iDisease, err := columnIndex(header, "disease")
	if err != nil {
		return nil, err
	}
	iGene, err := columnIndex(header, "gene")
	if err != nil {
		return nil, err
	}
	iLogFC, err := columnIndex(header, "log_fc")
	if err != nil {
		return nil, err
	}

	out := make(map[string]map[string]float64)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataio: read signatures: %w", err)
		}
		disease := strings.TrimSpace(row[iDisease])
		gene := strings.TrimSpace(row[iGene])
		if disease == "" || gene == "" {
			continue
		}
		logFC, err := strconv.ParseFloat(strings.TrimSpace(row[iLogFC]), 64)
		if err != nil {
			return nil, fmt.Errorf("dataio: disease %q gene %q: invalid log_fc %q: %w", disease, gene, row[iLogFC], err)
		}
		if out[disease] == nil {
			out[disease] = make(map[string]float64)
		}
		out[disease][gene] = logFC
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: signatures file has no rows", ErrEmptyInput)
	}
	return out, nil
}
