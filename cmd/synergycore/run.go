package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/syndrumnet/synergycore/config"
	"github.com/syndrumnet/synergycore/dataio"
	"github.com/syndrumnet/synergycore/diagnostics"
	"github.com/syndrumnet/synergycore/predictor"
	"github.com/syndrumnet/synergycore/propagate"
)

func newRunCmd() *cobra.Command {
	var graphPath, diseaseModulesPath, drugModulesPath, signaturesPath string
	var diseaseFilter, outDir string
	var maxPairs int
	var usePropagation bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Produce ranked drug-pair predictions for a set of diseases",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			diag := diagnostics.NewReport()

			idx, err := loadGraph(graphPath)
			if err != nil {
				return err
			}
			if n := idx.DroppedComponentSize(); n > 0 {
				diag.Unreachable(fmt.Sprintf("dropped %d vertices outside the largest connected component", n))
			}

			diseaseModules, drugModules, signatures, err := loadModules(diseaseModulesPath, drugModulesPath, signaturesPath)
			if err != nil {
				return err
			}

			var rewriter propagate.ModuleRewriter
			if usePropagation {
				propCfg := propagate.DefaultConfig()
				propCfg.Alpha = cfg.Alpha
				rewriter = propagate.New(idx, propCfg)
			}

			// Resolve drugs in sorted-id order so pair enumeration (and the
			// --max-pairs prefix of it) is a deterministic function of the
			// inputs, never of map iteration order.
			drugIDs := make([]string, 0, len(drugModules))
			for id := range drugModules {
				drugIDs = append(drugIDs, id)
			}
			sort.Strings(drugIDs)
			drugs := make([]*predictor.Drug, 0, len(drugIDs))
			for _, id := range drugIDs {
				m := drugModules[id]
				drugs = append(drugs, predictor.ResolveDrug(idx, id, m.Up, m.Down, rewriter))
			}

			orch := predictor.New(idx, cfg, diag)

			ctx, cancel := context.WithCancel(context.Background())
			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
			go func() {
				<-sig
				cancel()
			}()
			defer signal.Stop(sig)

			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}

			diseaseIDs := make([]string, 0, len(diseaseModules))
			for id := range diseaseModules {
				diseaseIDs = append(diseaseIDs, id)
			}
			sort.Strings(diseaseIDs)

			for _, diseaseID := range diseaseIDs {
				if !selected(diseaseID, diseaseFilter) {
					continue
				}
				disease := predictor.ResolveDisease(idx, diseaseID, diseaseModules[diseaseID], signatures[diseaseID], rewriter)
				records, runErr := orch.Run(ctx, disease, drugs, maxPairs)
				if writeErr := writePredictions(outDir, diseaseID, records, runErr != nil); writeErr != nil {
					return writeErr
				}
				logger.Info("disease scored", "disease", diseaseID, "pairs", len(records), "diagnostics", diag.Len())
				if runErr != nil {
					return runErr
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&graphPath, "graph", "", "path to a GraphML (.graphml) or edge-list (.csv) graph file")
	cmd.Flags().StringVar(&diseaseModulesPath, "disease-modules", "", "path to the disease-modules CSV")
	cmd.Flags().StringVar(&drugModulesPath, "drug-modules", "", "path to the drug-modules CSV")
	cmd.Flags().StringVar(&signaturesPath, "signatures", "", "path to the optional disease-signatures TSV")
	cmd.Flags().StringVar(&diseaseFilter, "diseases", "", "comma-separated disease ids to score (default: all)")
	cmd.Flags().StringVar(&outDir, "out-dir", ".", "directory to write one predictions CSV per disease into")
	cmd.Flags().IntVar(&maxPairs, "max-pairs", 0, "cap drug-pair enumeration per disease (0 = unbounded; testing path)")
	cmd.Flags().BoolVar(&usePropagation, "propagate", false, "rewrite modules through PRINCE-style propagation before scoring")
	_ = cmd.MarkFlagRequired("graph")
	_ = cmd.MarkFlagRequired("disease-modules")
	_ = cmd.MarkFlagRequired("drug-modules")

	return cmd
}

func loadModules(diseasePath, drugPath, signaturesPath string) (map[string][]string, map[string]*dataio.DrugModule, map[string]map[string]float64, error) {
	diseaseFile, err := os.Open(diseasePath)
	if err != nil {
		return nil, nil, nil, err
	}
	defer diseaseFile.Close()
	diseaseModules, err := dataio.ReadDiseaseModules(diseaseFile)
	if err != nil {
		return nil, nil, nil, err
	}

	drugFile, err := os.Open(drugPath)
	if err != nil {
		return nil, nil, nil, err
	}
	defer drugFile.Close()
	drugModules, err := dataio.ReadDrugModules(drugFile)
	if err != nil {
		return nil, nil, nil, err
	}

	signatures := map[string]map[string]float64{}
	if signaturesPath != "" {
		sigFile, err := os.Open(signaturesPath)
		if err != nil {
			return nil, nil, nil, err
		}
		defer sigFile.Close()
		signatures, err = dataio.ReadSignatures(sigFile)
		if err != nil {
			return nil, nil, nil, err
		}
	}

	return diseaseModules, drugModules, signatures, nil
}

func selected(diseaseID, filter string) bool {
	if filter == "" {
		return true
	}
	for _, id := range strings.Split(filter, ",") {
		if strings.TrimSpace(id) == diseaseID {
			return true
		}
	}
	return false
}

func writePredictions(outDir, diseaseID string, records []predictor.Record, cancelled bool) error {
	path := filepath.Join(outDir, diseaseID+".csv")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	rows := make([]dataio.PredictionRecord, len(records))
	for i, r := range records {
		rows[i] = dataio.PredictionRecord{
			Disease: r.Disease, DrugA: r.DrugA, DrugB: r.DrugB,
			TQAB: r.T, PQAB: r.P, CQAB: r.C, PredictionScore: r.Total,
			TopologyClass: string(r.TopologyClass),
			PQA:           r.PAZ, PQB: r.PBZ, CQA: r.CA, CQB: r.CB,
		}
	}
	if err := dataio.WritePredictions(f, rows); err != nil {
		return err
	}
	if cancelled {
		return dataio.WriteCancelledMarker(f)
	}
	return nil
}
