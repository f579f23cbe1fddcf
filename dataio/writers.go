package dataio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// PredictionRecord is one output row of the predictions CSV:
// `disease, drug_a, drug_b, tqab, pqab, cqab, prediction_score,
// topology_class, pqa, pqb, cqa, cqb`. Each row keeps (drug_a, drug_b) in
// the pair's enumeration order, not canonically sorted; pair
// canonicalization is an evaluation-only concern.
type PredictionRecord struct {
	Disease         string
	DrugA           string
	DrugB           string
	TQAB            float64
	PQAB            float64
	CQAB            float64
	PredictionScore float64
	TopologyClass   string
	PQA             float64
	PQB             float64
	CQA             float64
	CQB             float64
}

var predictionHeader = []string{
	"disease", "drug_a", "drug_b", "tqab", "pqab", "cqab",
	"prediction_score", "topology_class", "pqa", "pqb", "cqa", "cqb",
}

// WritePredictions writes records as CSV, in the order given (callers are
// responsible for any sort before calling this).
func WritePredictions(w io.Writer, records []PredictionRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(predictionHeader); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			r.Disease, r.DrugA, r.DrugB,
			formatFloat(r.TQAB), formatFloat(r.PQAB), formatFloat(r.CQAB),
			formatFloat(r.PredictionScore), r.TopologyClass,
			formatFloat(r.PQA), formatFloat(r.PQB), formatFloat(r.CQA), formatFloat(r.CQB),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// CancelledMarker is the trailing row appended to a predictions CSV whose
// run was aborted by cancellation, marking the output as partial.
const CancelledMarker = "#cancelled"

// WriteCancelledMarker appends the trailing cancellation marker row.
func WriteCancelledMarker(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{CancelledMarker}); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// ReadPredictions parses a predictions CSV previously written by
// WritePredictions, for the evaluate subcommand's join against known
// synergies.
func ReadPredictions(r io.Reader) ([]PredictionRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // a cancelled run appends a one-field marker row
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmptyInput, err)
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[h] = i
	}
	for _, name := range predictionHeader {
		if _, err := columnIndex(header, name); err != nil {
			return nil, err
		}
	}

	var out []PredictionRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataio: read predictions: %w", err)
		}
		if len(row) == 1 && row[0] == CancelledMarker {
			continue
		}
		rec := PredictionRecord{
			Disease:         row[idx["disease"]],
			DrugA:           row[idx["drug_a"]],
			DrugB:           row[idx["drug_b"]],
			TQAB:            parseFloat(row[idx["tqab"]]),
			PQAB:            parseFloat(row[idx["pqab"]]),
			CQAB:            parseFloat(row[idx["cqab"]]),
			PredictionScore: parseFloat(row[idx["prediction_score"]]),
			TopologyClass:   row[idx["topology_class"]],
			PQA:             parseFloat(row[idx["pqa"]]),
			PQB:             parseFloat(row[idx["pqb"]]),
			CQA:             parseFloat(row[idx["cqa"]]),
			CQB:             parseFloat(row[idx["cqb"]]),
		}
		out = append(out, rec)
	}
	return out, nil
}

func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

// EvaluationSummaryRow is one row of the per-disease evaluation summary CSV.
type EvaluationSummaryRow struct {
	Disease         string
	AUCROC          float64
	AUCPR           float64
	NPredictions    int
	NKnownSynergies int
	NTruePositives  int
}

var evaluationHeader = []string{
	"disease", "auc_roc", "auc_pr", "n_predictions", "n_known_synergies", "n_true_positives",
}

// WriteEvaluationSummary writes rows as CSV.
func WriteEvaluationSummary(w io.Writer, rows []EvaluationSummaryRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(evaluationHeader); err != nil {
		return err
	}
	for _, r := range rows {
		row := []string{
			r.Disease,
			formatFloat(r.AUCROC), formatFloat(r.AUCPR),
			strconv.Itoa(r.NPredictions), strconv.Itoa(r.NKnownSynergies), strconv.Itoa(r.NTruePositives),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
