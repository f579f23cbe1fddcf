// Package dataio implements the file-format plumbing around the scoring
// core: GraphML/edge-list graph readers, CSV module and known-synergy
// readers, a TSV signature reader, and CSV writers for predictions and
// evaluation summaries.
//
// Tabular and XML parsing here is stdlib encoding/csv and encoding/xml
// throughout; the formats are simple enough that an external tabular/XML
// library would add a dependency without removing any code.
package dataio

import (
	"errors"
	"fmt"
)

// ErrMissingColumn is returned when a required CSV/TSV header is absent.
// Fatal at load time.
var ErrMissingColumn = errors.New("dataio: missing required column")

// ErrEmptyInput is returned when a tabular input has a header but no data
// rows, or no header at all. Also fatal at load time.
var ErrEmptyInput = errors.New("dataio: empty input")

func columnIndex(header []string, name string) (int, error) {
	for i, h := range header {
		if h == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrMissingColumn, name)
}
