// Copyright 2026 UNICEF Data Contributors

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at

//     http://www.apache.org/licenses/LICENSE-2.0

// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package metadata

import (
	"encoding/xml"
	"sort"

	"github.com/stockparfait/errors"
)

// SDMX-ML v2.1 structure documents. Element matching is by local name, so
// the message/structure/common namespace prefixes are irrelevant here.

type structureDoc struct {
	XMLName   xml.Name      `xml:"Structure"`
	Dataflows []xmlDataflow `xml:"Structures>Dataflows>Dataflow"`
	Codelists []xmlCodelist `xml:"Structures>Codelists>Codelist"`
	DSDs      []xmlDSD      `xml:"Structures>DataStructures>DataStructure"`
}

type xmlDataflow struct {
	ID      string `xml:"id,attr"`
	Agency  string `xml:"agencyID,attr"`
	Version string `xml:"version,attr"`
	Name    string `xml:"Name"`
}

type xmlCodelist struct {
	ID    string    `xml:"id,attr"`
	Codes []xmlCode `xml:"Code"`
}

type xmlCode struct {
	ID   string `xml:"id,attr"`
	Name string `xml:"Name"`
}

type xmlDSD struct {
	ID         string         `xml:"id,attr"`
	Version    string         `xml:"version,attr"`
	Name       string         `xml:"Name"`
	Dimensions []xmlDimension `xml:"DataStructureComponents>DimensionList>Dimension"`
	Attributes []xmlAttribute `xml:"DataStructureComponents>AttributeList>Attribute"`
}

type xmlDimension struct {
	ID       string `xml:"id,attr"`
	Position int    `xml:"position,attr"`
	Enum     xmlRef `xml:"LocalRepresentation>Enumeration>Ref"`
}

type xmlAttribute struct {
	ID   string `xml:"id,attr"`
	Enum xmlRef `xml:"LocalRepresentation>Enumeration>Ref"`
}

type xmlRef struct {
	ID string `xml:"id,attr"`
}

func parseStructure(body []byte) (*structureDoc, error) {
	var doc structureDoc
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, errors.Annotate(err, "failed to parse structure document")
	}
	return &doc, nil
}

// dataflowRecords converts parsed dataflows into cache records keyed by ID.
func (doc *structureDoc) dataflowRecords(defaultAgency string) map[string]DataflowRecord {
	records := make(map[string]DataflowRecord)
	for _, df := range doc.Dataflows {
		r := DataflowRecord{
			ID:      df.ID,
			Agency:  df.Agency,
			Version: df.Version,
			Name:    df.Name,
		}
		if r.Agency == "" {
			r.Agency = defaultAgency
		}
		if r.Version == "" {
			r.Version = "1.0"
		}
		records[r.ID] = r
	}
	return records
}

// codelist extracts the first codelist of the document, if any.
func (doc *structureDoc) codelist() (Codelist, bool) {
	if len(doc.Codelists) == 0 {
		return Codelist{}, false
	}
	cl := doc.Codelists[0]
	codes := make(map[string]string, len(cl.Codes))
	for _, c := range cl.Codes {
		name := c.Name
		if name == "" {
			name = c.ID
		}
		codes[c.ID] = name
	}
	return Codelist{ID: cl.ID, Codes: codes}, true
}

// schema extracts the dataflow schema from a references=all document.
func (doc *structureDoc) schema(id, version string) (*DataflowSchema, error) {
	if len(doc.DSDs) == 0 {
		return nil, errors.Reason("structure document for %s has no data structure", id)
	}
	dsd := doc.DSDs[0]
	s := &DataflowSchema{
		ID:             id,
		Name:           dsd.Name,
		Version:        version,
		TimeDimension:  TimeDimensionID,
		PrimaryMeasure: PrimaryMeasureID,
	}
	for _, d := range dsd.Dimensions {
		s.Dimensions = append(s.Dimensions, Dimension{
			ID:       d.ID,
			Position: d.Position,
			Codelist: d.Enum.ID,
		})
	}
	sort.Slice(s.Dimensions, func(i, j int) bool {
		return s.Dimensions[i].Position < s.Dimensions[j].Position
	})
	for _, a := range dsd.Attributes {
		s.Attributes = append(s.Attributes, Attribute{ID: a.ID, Codelist: a.Enum.ID})
	}
	return s, nil
}
