package export

import "netviz/internal/model"

// Document is the JSON export envelope.
type Document struct {
	Status  string  `json:"status"`
	Network Network `json:"network"`
}

type Network struct {
	Structure   Structure    `json:"structure"`
	Connections []Connection `json:"connections"`
}

type Structure struct {
	TotalLayers         int                      `json:"total_layers"`
	Layers              []LayerInfo              `json:"layers"`
	SampleSize          int                      `json:"sample_size"`
	DatasetType         string                   `json:"dataset_type"`
	Biases              [][]float64              `json:"biases"`
	ComputedCoordinates [][]float64              `json:"computed_coordinates"`
	InputPoints         [][]float64              `json:"input_points"`
	TargetCoordinates   [][]float64              `json:"target_coordinates"`
	TrainingParams      model.TrainingParameters `json:"training_params"`
}

type LayerInfo struct {
	Index      int     `json:"index"`
	Neurons    int     `json:"neurons"`
	IsInput    bool    `json:"is_input"`
	IsOutput   bool    `json:"is_output"`
	Activation *string `json:"activation"`
}

// Connection carries the flattened weight matrix between two adjacent
// layers. A pair with no stored weights gets an empty slice, not null.
type Connection struct {
	FromLayer int       `json:"from_layer"`
	ToLayer   int       `json:"to_layer"`
	Weights   []float64 `json:"weights"`
}

// JSON builds the structured document for the default export format.
func JSON(c model.Configuration) Document {
	layers := make([]LayerInfo, len(c.Layers))
	for i, l := range c.Layers {
		layers[i] = LayerInfo{
			Index:      i,
			Neurons:    l.NumNeurons,
			IsInput:    i == 0,
			IsOutput:   i == len(c.Layers)-1,
			Activation: l.ActivationFunction,
		}
	}

	connections := make([]Connection, 0, len(c.Layers))
	for i := 0; i < len(c.Layers)-1; i++ {
		weights := c.Weights[model.PairKey(i)]
		if weights == nil {
			weights = []float64{}
		}
		connections = append(connections, Connection{
			FromLayer: i,
			ToLayer:   i + 1,
			Weights:   weights,
		})
	}

	return Document{
		Status: "success",
		Network: Network{
			Structure: Structure{
				TotalLayers:         len(c.Layers),
				Layers:              layers,
				SampleSize:          sampleSize(c),
				DatasetType:         c.DatasetType,
				Biases:              nonNil(c.Biases),
				ComputedCoordinates: nonNil(c.ComputedCoordinates),
				InputPoints:         nonNil(c.InputPoints),
				TargetCoordinates:   nonNil(c.TargetCoordinates),
				TrainingParams:      c.TrainingParams,
			},
			Connections: connections,
		},
	}
}

func nonNil(rows [][]float64) [][]float64 {
	if rows == nil {
		return [][]float64{}
	}
	return rows
}
