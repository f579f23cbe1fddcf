package main

import (
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/syndrumnet/synergycore/dataio"
	"github.com/syndrumnet/synergycore/evaluate"
)

func newEvaluateCmd() *cobra.Command {
	var predictionsPath, knownSynergiesPath, diseaseFilter, outPath string

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Join predictions with known synergies and emit AUC metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			predFile, err := os.Open(predictionsPath)
			if err != nil {
				return err
			}
			defer predFile.Close()
			predictions, err := dataio.ReadPredictions(predFile)
			if err != nil {
				return err
			}

			synergyFile, err := os.Open(knownSynergiesPath)
			if err != nil {
				return err
			}
			defer synergyFile.Close()
			synergies, err := dataio.ReadKnownSynergies(synergyFile)
			if err != nil {
				return err
			}
			synergies = dataio.FilterByDisease(synergies, diseaseFilter)

			byDisease := map[string][]dataio.PredictionRecord{}
			for _, p := range predictions {
				byDisease[p.Disease] = append(byDisease[p.Disease], p)
			}

			diseases := make([]string, 0, len(byDisease))
			for disease := range byDisease {
				diseases = append(diseases, disease)
			}
			sort.Strings(diseases)

			var rows []dataio.EvaluationSummaryRow
			for _, disease := range diseases {
				preds := byDisease[disease]
				// A known-synergy row scopes to this disease if it names no
				// disease at all (a global gold-standard pair) or names this
				// one specifically; rows naming a different disease never
				// count here.
				known := map[evaluate.Pair]struct{}{}
				for _, s := range synergies {
					if s.Disease != "" && !strings.EqualFold(s.Disease, disease) {
						continue
					}
					known[evaluate.CanonicalPair(s.DrugA, s.DrugB)] = struct{}{}
				}

				drugA := make([]string, len(preds))
				drugB := make([]string, len(preds))
				score := make([]float64, len(preds))
				for i, p := range preds {
					drugA[i], drugB[i], score[i] = p.DrugA, p.DrugB, p.PredictionScore
				}
				labeled := evaluate.Join(drugA, drugB, score, known)
				summary := evaluate.Evaluate(labeled, len(known))

				rows = append(rows, dataio.EvaluationSummaryRow{
					Disease:         disease,
					AUCROC:          summary.AUCROC,
					AUCPR:           summary.AUCPR,
					NPredictions:    summary.NPredictions,
					NKnownSynergies: summary.NKnownSynergies,
					NTruePositives:  summary.NTruePositives,
				})
				logger.Info("evaluated disease", "disease", disease, "auc_roc", summary.AUCROC, "auc_pr", summary.AUCPR)
			}

			out := os.Stdout
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}
			return dataio.WriteEvaluationSummary(out, rows)
		},
	}

	cmd.Flags().StringVar(&predictionsPath, "predictions", "", "path to a predictions CSV produced by run")
	cmd.Flags().StringVar(&knownSynergiesPath, "known-synergies", "", "path to the known-synergies CSV")
	cmd.Flags().StringVar(&diseaseFilter, "disease", "", "restrict known synergies to this disease (optional)")
	cmd.Flags().StringVar(&outPath, "out", "", "path to write the evaluation summary CSV (default: stdout)")
	_ = cmd.MarkFlagRequired("predictions")
	_ = cmd.MarkFlagRequired("known-synergies")

	return cmd
}
