package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/syndrumnet/synergycore/dataio"
	"github.com/syndrumnet/synergycore/graphindex"
)

func newBuildCmd() *cobra.Command {
	var graphPath, diseaseModulesPath, drugModulesPath, signaturesPath string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the graph index and module collections from upstream sources",
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := loadGraph(graphPath)
			if err != nil {
				return err
			}
			logger.Info("graph built", "vertices", idx.Size(), "dropped_component_size", idx.DroppedComponentSize())

			diseaseFile, err := os.Open(diseaseModulesPath)
			if err != nil {
				return err
			}
			defer diseaseFile.Close()
			diseaseModules, err := dataio.ReadDiseaseModules(diseaseFile)
			if err != nil {
				return err
			}
			logger.Info("disease modules parsed", "count", len(diseaseModules))

			drugFile, err := os.Open(drugModulesPath)
			if err != nil {
				return err
			}
			defer drugFile.Close()
			drugModules, err := dataio.ReadDrugModules(drugFile)
			if err != nil {
				return err
			}
			logger.Info("drug modules parsed", "count", len(drugModules))

			if signaturesPath != "" {
				sigFile, err := os.Open(signaturesPath)
				if err != nil {
					return err
				}
				defer sigFile.Close()
				signatures, err := dataio.ReadSignatures(sigFile)
				if err != nil {
					return err
				}
				logger.Info("signatures parsed", "diseases", len(signatures))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&graphPath, "graph", "", "path to a GraphML (.graphml) or edge-list (.csv) graph file")
	cmd.Flags().StringVar(&diseaseModulesPath, "disease-modules", "", "path to the disease-modules CSV")
	cmd.Flags().StringVar(&drugModulesPath, "drug-modules", "", "path to the drug-modules CSV")
	cmd.Flags().StringVar(&signaturesPath, "signatures", "", "path to the optional disease-signatures TSV")
	_ = cmd.MarkFlagRequired("graph")
	_ = cmd.MarkFlagRequired("disease-modules")
	_ = cmd.MarkFlagRequired("drug-modules")

	return cmd
}

// loadGraph reads graphPath, picking GraphML or edge-list parsing by file
// extension.
func loadGraph(graphPath string) (*graphindex.Index, error) {
	f, err := os.Open(graphPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var triples []graphindex.Triple
	if strings.EqualFold(filepath.Ext(graphPath), ".graphml") {
		triples, err = dataio.ReadGraphML(f)
	} else {
		triples, err = dataio.ReadEdgeList(f)
	}
	if err != nil {
		return nil, err
	}
	return graphindex.Build(triples)
}
