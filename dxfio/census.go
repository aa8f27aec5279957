package dxfio

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Census summarizes the entity population of a drawing without
// converting anything: entity counts by DXF type and by layer.
type Census struct {
	ByType  map[string]int
	ByLayer map[string]int
}

// Records that delimit sections or belong to a compound entity rather
// than standing alone as drawable geometry.
var structuralRecords = map[string]bool{
	"SECTION": true,
	"ENDSEC":  true,
	"BLOCK":   true,
	"ENDBLK":  true,
	"TABLE":   true,
	"ENDTAB":  true,
	"VERTEX":  true,
	"SEQEND":  true,
	"EOF":     true,
}

// TakeCensus counts the entities in the ENTITIES and BLOCKS sections of
// a drawing. It scans the raw tag stream on purpose: the document parser
// keeps only the entity types it models, and the census has to report
// exactly what is in the file, including what conversion will skip.
func TakeCensus(r io.Reader) (*Census, error) {
	c := &Census{
		ByType:  make(map[string]int),
		ByLayer: make(map[string]int),
	}

	sc := bufio.NewScanner(r)
	section := ""
	sectionPending := false
	entity := ""
	layerCounted := false

	for {
		code, ok := scanLine(sc)
		if !ok {
			break
		}
		value, ok := scanLine(sc)
		if !ok {
			break
		}

		switch code {
		case "0":
			entity = ""
			layerCounted = false
			switch value {
			case "SECTION":
				sectionPending = true
			case "ENDSEC":
				section = ""
			default:
				inScope := section == "ENTITIES" || section == "BLOCKS"
				if inScope && !structuralRecords[value] {
					c.ByType[value]++
					entity = value
				}
			}
		case "2":
			if sectionPending {
				section = value
				sectionPending = false
			}
		case "8":
			if entity != "" && !layerCounted {
				c.ByLayer[value]++
				layerCounted = true
			}
		}
	}
	return c, sc.Err()
}

// TakeCensusFile opens and surveys one drawing.
func TakeCensusFile(path string) (*Census, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return TakeCensus(f)
}

func scanLine(sc *bufio.Scanner) (string, bool) {
	if !sc.Scan() {
		return "", false
	}
	return strings.TrimSpace(sc.Text()), true
}
