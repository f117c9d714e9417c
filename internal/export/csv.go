package export

import (
	"fmt"
	"strconv"
	"strings"

	"netviz/internal/model"
)

// CSV renders the four-section comma-separated export: STRUCTURE, WEIGHTS,
// SAMPLE_SIZE and COORDINATES, separated by single blank lines. Weight
// values within a row are joined with "|". These formats are bespoke line
// protocols, not rectangular records, so they are assembled by hand rather
// than through encoding/csv.
func CSV(c model.Configuration) string {
	var lines []string

	lines = append(lines, "STRUCTURE", "layer,neurons,activation")
	for i, layer := range c.Layers {
		lines = append(lines, fmt.Sprintf("%d,%d,%s", i, layer.NumNeurons, activationOrNone(layer)))
	}

	lines = append(lines, "", "WEIGHTS", "from_layer,to_layer,weights")
	for i := 0; i < len(c.Layers)-1; i++ {
		weights, ok := c.Weights[model.PairKey(i)]
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("%d,%d,%s", i, i+1, joinFloats(weights, "|")))
	}

	lines = append(lines, "", "SAMPLE_SIZE", strconv.Itoa(sampleSize(c)))

	lines = append(lines, "", "COORDINATES")
	for _, coord := range c.ComputedCoordinates {
		lines = append(lines, joinFloats(coord, ","))
	}

	return strings.Join(lines, "\n")
}
