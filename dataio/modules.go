package dataio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ReadDiseaseModules parses the disease-modules CSV (columns
// `module`,`gene`) into disease id -> gene symbols, preserving each
// disease's first-seen gene order and de-duplicating repeats.
func ReadDiseaseModules(r io.Reader) (map[string][]string, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmptyInput, err)
	}
	iModule, err := columnIndex(header, "module")
	if err != nil {
		return nil, err
	}
	iGene, err := columnIndex(header, "gene")
	if err != nil {
		return nil, err
	}

	out := make(map[string][]string)
	seen := make(map[string]map[string]struct{})
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataio: read disease modules: %w", err)
		}
		module := strings.TrimSpace(row[iModule])
		gene := strings.TrimSpace(row[iGene])
		if module == "" || gene == "" {
			continue
		}
		if seen[module] == nil {
			seen[module] = make(map[string]struct{})
		}
		if _, dup := seen[module][gene]; dup {
			continue
		}
		seen[module][gene] = struct{}{}
		out[module] = append(out[module], gene)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: disease modules file has no rows", ErrEmptyInput)
	}
	return out, nil
}

// DrugModule is a drug's raw up/down gene sets as loaded from the drug
// modules CSV, before resolution against a graphindex.Index.
type DrugModule struct {
	Up   []string
	Down []string
}

// ReadDrugModules parses the drug-modules CSV (columns
// `drug`,`gene`,`direction` with direction in {up, down}) into drug id ->
// DrugModule.
func ReadDrugModules(r io.Reader) (map[string]*DrugModule, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmptyInput, err)
	}
	iDrug, err := columnIndex(header, "drug")
	if err != nil {
		return nil, err
	}
	iGene, err := columnIndex(header, "gene")
	if err != nil {
		return nil, err
	}
	iDir, err := columnIndex(header, "direction")
	if err != nil {
		return nil, err
	}

	out := make(map[string]*DrugModule)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataio: read drug modules: %w", err)
		}
		drug := strings.TrimSpace(row[iDrug])
		gene := strings.TrimSpace(row[iGene])
		direction := strings.ToLower(strings.TrimSpace(row[iDir]))
		if drug == "" || gene == "" {
			continue
		}
		m := out[drug]
		if m == nil {
			m = &DrugModule{}
			out[drug] = m
		}
		switch direction {
		case "up":
			m.Up = append(m.Up, gene)
		case "down":
			m.Down = append(m.Down, gene)
		default:
			return nil, fmt.Errorf("dataio: drug %q gene %q: direction must be up or down, got %q", drug, gene, row[iDir])
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: drug modules file has no rows", ErrEmptyInput)
	}
	return out, nil
}
