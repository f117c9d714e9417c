package export

import (
	"strconv"
	"strings"

	"netviz/internal/model"
)

// Simple renders the positional "/"-delimited export the lightweight
// frontend parser consumes. Seven fields: first-layer activation, layer
// count, neuron counts, weight blocks, sample size, computed coordinates,
// target coordinates.
func Simple(c model.Configuration) string {
	parts := make([]string, 0, 7)

	activation := "none"
	if len(c.Layers) > 0 && c.Layers[0].ActivationFunction != nil {
		activation = *c.Layers[0].ActivationFunction
	}
	parts = append(parts, activation)

	parts = append(parts, strconv.Itoa(len(c.Layers)))

	counts := make([]string, len(c.Layers))
	for i, layer := range c.Layers {
		counts[i] = strconv.Itoa(layer.NumNeurons)
	}
	parts = append(parts, strings.Join(counts, "|"))

	parts = append(parts, weightField(c))

	parts = append(parts, strconv.Itoa(sampleSize(c)))

	parts = append(parts, coordinateField(c.ComputedCoordinates))
	parts = append(parts, coordinateField(c.TargetCoordinates))

	return strings.Join(parts, "/")
}

// weightField emits one block per adjacent layer pair, visiting pairs from
// last to first. Within a block the flattened matrix is walked with both
// neuron indices descending, then the collected values are reversed before
// joining. The consumer depends on this exact byte sequence; do not collapse
// the two reversal steps even though they may cancel out.
func weightField(c model.Configuration) string {
	var blocks []string
	for i := len(c.Layers) - 2; i >= 0; i-- {
		weights, ok := c.Weights[model.PairKey(i)]
		if !ok {
			continue
		}
		fromNeurons := c.Layers[i].NumNeurons
		toNeurons := c.Layers[i+1].NumNeurons

		var reordered []float64
		for from := fromNeurons - 1; from >= 0; from-- {
			for to := toNeurons - 1; to >= 0; to-- {
				idx := to + from*toNeurons
				if idx < len(weights) {
					reordered = append(reordered, weights[idx])
				}
			}
		}
		for l, r := 0, len(reordered)-1; l < r; l, r = l+1, r-1 {
			reordered[l], reordered[r] = reordered[r], reordered[l]
		}
		blocks = append(blocks, joinFloats(reordered, "|"))
	}
	return strings.Join(blocks, "|") + "|"
}

func coordinateField(coords [][]float64) string {
	if len(coords) == 0 {
		return ""
	}
	rows := make([]string, len(coords))
	for i, coord := range coords {
		rows[i] = joinFloats(coord, ",")
	}
	return strings.Join(rows, "|") + "|"
}
