package dataio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/syndrumnet/synergycore/dataio"
)

func TestReadEdgeListParsesTriples(t *testing.T) {
	csv := "gene_a,gene_b,sources\nA,B,db1\nB,C,db1;db2\n"
	triples, err := dataio.ReadEdgeList(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, triples, 2)
	require.Equal(t, "A", triples[0].GeneA)
	require.Equal(t, "B", triples[0].GeneB)
	require.Equal(t, "db1", triples[0].SourceTag)
}

func TestReadEdgeListMissingColumnIsInputError(t *testing.T) {
	_, err := dataio.ReadEdgeList(strings.NewReader("foo,bar\n1,2\n"))
	require.ErrorIs(t, err, dataio.ErrMissingColumn)
}

func TestReadGraphMLParsesEdgesAndSources(t *testing.T) {
	doc := `<?xml version="1.0"?>
<graphml>
  <key id="d0" for="edge" attr.name="sources"/>
  <key id="d1" for="edge" attr.name="interaction_type"/>
  <graph edgedefault="undirected">
    <node id="A"/>
    <node id="B"/>
    <edge source="A" target="B">
      <data key="d0">string_db</data>
      <data key="d1">binding</data>
    </edge>
  </graph>
</graphml>`
	triples, err := dataio.ReadGraphML(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, triples, 1)
	require.Equal(t, "A", triples[0].GeneA)
	require.Equal(t, "B", triples[0].GeneB)
	require.Equal(t, "string_db:binding", triples[0].SourceTag)
}

func TestReadDiseaseModulesGroupsByModule(t *testing.T) {
	csv := "module,gene\nD1,G1\nD1,G2\nD2,G3\n"
	modules, err := dataio.ReadDiseaseModules(strings.NewReader(csv))
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"G1", "G2"}, modules["D1"])
	require.ElementsMatch(t, []string{"G3"}, modules["D2"])
}

func TestReadDrugModulesSplitsUpDown(t *testing.T) {
	csv := "drug,gene,direction\nDrugA,G1,up\nDrugA,G2,down\n"
	modules, err := dataio.ReadDrugModules(strings.NewReader(csv))
	require.NoError(t, err)
	require.Equal(t, []string{"G1"}, modules["DrugA"].Up)
	require.Equal(t, []string{"G2"}, modules["DrugA"].Down)
}

func TestReadDrugModulesRejectsBadDirection(t *testing.T) {
	csv := "drug,gene,direction\nDrugA,G1,sideways\n"
	_, err := dataio.ReadDrugModules(strings.NewReader(csv))
	require.Error(t, err)
}

func TestReadSignaturesParsesTSV(t *testing.T) {
	tsv := "disease\tgene\tlog_fc\nD1\tG1\t2.5\nD1\tG2\t-1.0\n"
	sigs, err := dataio.ReadSignatures(strings.NewReader(tsv))
	require.NoError(t, err)
	require.InDelta(t, 2.5, sigs["D1"]["G1"], 1e-9)
	require.InDelta(t, -1.0, sigs["D1"]["G2"], 1e-9)
}

func TestReadKnownSynergiesWithOptionalDisease(t *testing.T) {
	csv := "drug_a,drug_b,disease\nA,B,D1\nC,D,\n"
	rows, err := dataio.ReadKnownSynergies(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "D1", rows[0].Disease)
	require.Equal(t, "", rows[1].Disease)
}

func TestFilterByDiseaseIsCaseInsensitive(t *testing.T) {
	rows := []dataio.KnownSynergy{{DrugA: "A", DrugB: "B", Disease: "Alzheimer"}, {DrugA: "C", DrugB: "D", Disease: "Cancer"}}
	filtered := dataio.FilterByDisease(rows, "alzheimer")
	require.Len(t, filtered, 1)
	require.Equal(t, "A", filtered[0].DrugA)
}

func TestWritePredictionsRoundTripsHeaderAndRows(t *testing.T) {
	var buf bytes.Buffer
	err := dataio.WritePredictions(&buf, []dataio.PredictionRecord{
		{Disease: "D1", DrugA: "A", DrugB: "B", TQAB: 1, PQAB: 2, CQAB: 3, PredictionScore: 6, TopologyClass: "complementary", PQA: 0.1, PQB: 0.2, CQA: 0.3, CQB: 0.4},
	})
	require.NoError(t, err)
	out := buf.String()
	require.Contains(t, out, "disease,drug_a,drug_b,tqab,pqab,cqab,prediction_score,topology_class,pqa,pqb,cqa,cqb")
	require.Contains(t, out, "D1,A,B,1,2,3,6,complementary,0.1,0.2,0.3,0.4")
}

func TestReadPredictionsRoundTripsWhatWritePredictionsWrote(t *testing.T) {
	var buf bytes.Buffer
	want := []dataio.PredictionRecord{
		{Disease: "D1", DrugA: "A", DrugB: "B", TQAB: 1, PQAB: 2, CQAB: 3, PredictionScore: 6, TopologyClass: "complementary", PQA: 0.1, PQB: 0.2, CQA: 0.3, CQB: 0.4},
	}
	require.NoError(t, dataio.WritePredictions(&buf, want))

	got, err := dataio.ReadPredictions(&buf)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestReadPredictionsSkipsCancelledMarker(t *testing.T) {
	var buf bytes.Buffer
	want := []dataio.PredictionRecord{
		{Disease: "D1", DrugA: "A", DrugB: "B", TQAB: 1, PredictionScore: 1, TopologyClass: "redundant"},
	}
	require.NoError(t, dataio.WritePredictions(&buf, want))
	require.NoError(t, dataio.WriteCancelledMarker(&buf))

	got, err := dataio.ReadPredictions(&buf)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestWriteEvaluationSummaryRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	err := dataio.WriteEvaluationSummary(&buf, []dataio.EvaluationSummaryRow{
		{Disease: "D1", AUCROC: 0.9, AUCPR: 0.8, NPredictions: 10, NKnownSynergies: 3, NTruePositives: 2},
	})
	require.NoError(t, err)
	require.Contains(t, buf.String(), "D1,0.9,0.8,10,3,2")
}
