package export

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"netviz/internal/model"
)

// TSV renders the tab-separated export. It carries the same sections as CSV
// plus a comment header and two derived columns: a layer Type
// (input/hidden/output) and the neuron counts on each weight row. The
// generation time is a parameter so encoding stays deterministic under test.
func TSV(c model.Configuration, now time.Time) string {
	var lines []string

	lines = append(lines,
		"# Neural Network Configuration",
		"# Generated: "+now.Format(time.RFC3339),
		"# Format: TSV",
		"")

	lines = append(lines, "STRUCTURE", "Layer\tNeurons\tActivation\tType")
	for i, layer := range c.Layers {
		layerType := "hidden"
		switch {
		case i == 0:
			layerType = "input"
		case i == len(c.Layers)-1:
			layerType = "output"
		}
		lines = append(lines, fmt.Sprintf("%d\t%d\t%s\t%s", i, layer.NumNeurons, activationOrNone(layer), layerType))
	}

	lines = append(lines, "", "WEIGHTS", "FromLayer\tToLayer\tFromNeurons\tToNeurons\tValues")
	for i := 0; i < len(c.Layers)-1; i++ {
		weights, ok := c.Weights[model.PairKey(i)]
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("%d\t%d\t%d\t%d\t%s",
			i, i+1, c.Layers[i].NumNeurons, c.Layers[i+1].NumNeurons, joinFloats(weights, "|")))
	}

	lines = append(lines, "", "SAMPLE_SIZE", strconv.Itoa(sampleSize(c)))

	lines = append(lines, "", "COORDINATES")
	for _, coord := range c.ComputedCoordinates {
		lines = append(lines, joinFloats(coord, "\t"))
	}

	return strings.Join(lines, "\n")
}
