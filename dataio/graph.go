package dataio

import (
	"encoding/csv"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/syndrumnet/synergycore/graphindex"
)

// graphmlDocument is the minimal subset of the GraphML schema this reader
// understands: a single graph element with key-typed edge data attributes
// `sources` (a semicolon-separated list) and `interaction_type`.
type graphmlDocument struct {
	XMLName xml.Name     `xml:"graphml"`
	Keys    []graphmlKey `xml:"key"`
	Graph   graphmlGraph `xml:"graph"`
}

type graphmlKey struct {
	ID   string `xml:"id,attr"`
	Name string `xml:"attr.name,attr"`
	For  string `xml:"for,attr"`
}

type graphmlGraph struct {
	Edges []graphmlEdge `xml:"edge"`
}

type graphmlEdge struct {
	Source string            `xml:"source,attr"`
	Target string            `xml:"target,attr"`
	Data   []graphmlEdgeData `xml:"data"`
}

type graphmlEdgeData struct {
	Key   string `xml:"key,attr"`
	Value string `xml:",chardata"`
}

// ReadGraphML parses a GraphML document into interaction triples. Edge data
// keyed `sources` is a semicolon-separated provenance list joined back into
// a single SourceTag for graphindex.Triple (the graph index treats source
// tags as an observability string, never splitting them further); data keyed
// `interaction_type` is folded into the same tag, separated by a colon, when
// present.
func ReadGraphML(r io.Reader) ([]graphindex.Triple, error) {
	var doc graphmlDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("dataio: parse graphml: %w", err)
	}
	if len(doc.Graph.Edges) == 0 {
		return nil, fmt.Errorf("%w: graphml has no edges", ErrEmptyInput)
	}

	// Map key id -> attribute name, since GraphML stores the human-readable
	// name in a separate <key> declaration referenced by id.
	keyName := make(map[string]string, len(doc.Keys))
	for _, k := range doc.Keys {
		keyName[k.ID] = k.Name
	}

	triples := make([]graphindex.Triple, 0, len(doc.Graph.Edges))
	for _, e := range doc.Graph.Edges {
		var sources, interactionType string
		for _, d := range e.Data {
			name := keyName[d.Key]
			if name == "" {
				name = d.Key
			}
			switch name {
			case "sources":
				sources = d.Value
			case "interaction_type":
				interactionType = d.Value
			}
		}
		tag := sources
		if interactionType != "" {
			if tag != "" {
				tag += ":" + interactionType
			} else {
				tag = interactionType
			}
		}
		triples = append(triples, graphindex.Triple{GeneA: e.Source, GeneB: e.Target, SourceTag: tag})
	}
	return triples, nil
}

// ReadEdgeList parses a simple CSV edge list with header columns
// gene_a,gene_b and an optional sources column, the plain-text alternative
// to GraphML.
func ReadEdgeList(r io.Reader) ([]graphindex.Triple, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmptyInput, err)
	}
	iA, err := columnIndex(header, "gene_a")
	if err != nil {
		return nil, err
	}
	iB, err := columnIndex(header, "gene_b")
	if err != nil {
		return nil, err
	}
	iSrc := -1
	if idx, err := columnIndex(header, "sources"); err == nil {
		iSrc = idx
	}

	var triples []graphindex.Triple
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataio: read edge list: %w", err)
		}
		t := graphindex.Triple{GeneA: strings.TrimSpace(row[iA]), GeneB: strings.TrimSpace(row[iB])}
		if iSrc >= 0 {
			t.SourceTag = row[iSrc]
		}
		triples = append(triples, t)
	}
	if len(triples) == 0 {
		return nil, fmt.Errorf("%w: edge list has no rows", ErrEmptyInput)
	}
	return triples, nil
}
