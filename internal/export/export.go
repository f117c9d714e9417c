// Package export renders a configuration into the four textual formats the
// visualization frontend consumes. Every encoder is a pure function: the
// same configuration always produces the same bytes (the TSV encoder takes
// its timestamp as an argument for that reason).
package export

import (
	"strconv"
	"strings"

	"netviz/internal/model"
)

// formatFloat renders a weight or coordinate the shortest way that
// round-trips, matching the stored JSON representation.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func joinFloats(vals []float64, sep string) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = formatFloat(v)
	}
	return strings.Join(parts, sep)
}

func activationOrNone(l model.Layer) string {
	if l.ActivationFunction != nil {
		return *l.ActivationFunction
	}
	return "none"
}

func sampleSize(c model.Configuration) int {
	if c.SampleSize == nil || *c.SampleSize <= 0 {
		return model.DefaultSampleSize
	}
	return *c.SampleSize
}
