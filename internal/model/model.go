package model

import (
	"encoding/json"
	"fmt"
)

// Activation function names accepted on the first layer.
const (
	ActivationReLU    = "relu"
	ActivationSigmoid = "sigmoid"
	ActivationTanh    = "tanh"
	ActivationLinear  = "linear"
)

// Dataset types a configuration may select.
const (
	DatasetRandom   = "random"
	DatasetCircle   = "circle"
	DatasetXOR      = "xor"
	DatasetSpiral   = "spiral"
	DatasetGaussian = "gaussian"
)

const DefaultSampleSize = 100

// Layer describes one layer of the network.
type Layer struct {
	NumNeurons         int     `json:"num_neurons" binding:"required,gt=0"`
	ActivationFunction *string `json:"activation_function" binding:"omitempty,oneof=relu sigmoid tanh linear"`
}

// TrainingParameters holds the hyperparameters the frontend lets users tune.
type TrainingParameters struct {
	LearningRate float64 `json:"learning_rate" binding:"omitempty,gte=0.0001,lte=1"`
	Epochs       int     `json:"epochs" binding:"omitempty,gte=1,lte=1000"`
	BatchSize    int     `json:"batch_size" binding:"omitempty,gte=1,lte=1000"`
	L2Factor     float64 `json:"l2_factor" binding:"omitempty,gte=0,lte=1"`
}

// UnmarshalJSON starts from the defaults and overlays whatever fields the
// payload carries, so a partial training_params object keeps per-field
// defaults for everything it leaves out.
func (t *TrainingParameters) UnmarshalJSON(data []byte) error {
	type plain TrainingParameters
	p := plain(DefaultTrainingParameters())
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*t = TrainingParameters(p)
	return nil
}

// DefaultTrainingParameters returns the hyperparameter defaults used when a
// payload omits them.
func DefaultTrainingParameters() TrainingParameters {
	return TrainingParameters{
		LearningRate: 0.01,
		Epochs:       100,
		BatchSize:    32,
		L2Factor:     0.00005,
	}
}

// Configuration is the persisted network description. Weights are keyed by
// PairKey and hold the flattened num_neurons[i] x num_neurons[i+1] matrix in
// row-major order. Biases are stored and echoed verbatim.
type Configuration struct {
	Layers              []Layer              `json:"layers" binding:"required,min=1,dive"`
	Weights             map[string][]float64 `json:"weights"`
	Biases              [][]float64          `json:"biases"`
	SampleSize          *int                 `json:"sample_size" binding:"omitempty,gt=0"`
	DatasetType         string               `json:"dataset_type"`
	ComputedCoordinates [][]float64          `json:"computed_coordinates"`
	InputPoints         [][]float64          `json:"input_points"`
	TargetCoordinates   [][]float64          `json:"target_coordinates"`
	TrainingParams      TrainingParameters   `json:"training_params"`
}

// UnmarshalJSON pre-fills the training parameters with their defaults so a
// payload that omits the section entirely still gets them, while explicit
// values — including explicit zeros — survive for Validate to judge.
func (c *Configuration) UnmarshalJSON(data []byte) error {
	type plain Configuration
	var p plain
	p.TrainingParams = DefaultTrainingParameters()
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*c = Configuration(p)
	return nil
}

// PairKey returns the weights key for the connection between layer i and i+1.
func PairKey(i int) string {
	return fmt.Sprintf("layer%d_%d", i, i+1)
}

// Default is the configuration served when storage holds nothing: a 2-neuron
// relu input layer feeding a 3-neuron output layer with a known weight vector.
func Default() Configuration {
	relu := ActivationReLU
	sample := DefaultSampleSize
	return Configuration{
		Layers: []Layer{
			{NumNeurons: 2, ActivationFunction: &relu},
			{NumNeurons: 3},
		},
		Weights: map[string][]float64{
			PairKey(0): {0.1, 0.2, 0.3, 0.4, 0.5, 0.6},
		},
		Biases:              [][]float64{},
		SampleSize:          &sample,
		DatasetType:         DatasetRandom,
		ComputedCoordinates: [][]float64{},
		InputPoints:         [][]float64{},
		TargetCoordinates:   [][]float64{},
		TrainingParams:      DefaultTrainingParameters(),
	}
}

// ApplyDefaults fills fields a decoded payload may have omitted.
func (c *Configuration) ApplyDefaults() {
	if c.Weights == nil {
		c.Weights = map[string][]float64{}
	}
	if c.Biases == nil {
		c.Biases = [][]float64{}
	}
	if c.SampleSize == nil {
		sample := DefaultSampleSize
		c.SampleSize = &sample
	}
	if c.DatasetType == "" {
		c.DatasetType = DatasetRandom
	}
	if c.ComputedCoordinates == nil {
		c.ComputedCoordinates = [][]float64{}
	}
	if c.InputPoints == nil {
		c.InputPoints = [][]float64{}
	}
	if c.TargetCoordinates == nil {
		c.TargetCoordinates = [][]float64{}
	}
}

// Normalize enforces the write-path rule that only the first layer carries an
// activation function.
func (c *Configuration) Normalize() {
	for i := 1; i < len(c.Layers); i++ {
		c.Layers[i].ActivationFunction = nil
	}
}

// Validate checks the business rules a persisted configuration must satisfy:
// every stored weight vector matches its layer pair's dimensions, and the
// dataset type is one of the known generators.
func (c *Configuration) Validate() error {
	for i := 0; i < len(c.Layers)-1; i++ {
		key := PairKey(i)
		weights, ok := c.Weights[key]
		if !ok {
			continue
		}
		expected := c.Layers[i].NumNeurons * c.Layers[i+1].NumNeurons
		if len(weights) != expected {
			return &ValidationError{
				Field:   key,
				Message: fmt.Sprintf("invalid number of weights for %s: expected %d, got %d", key, expected, len(weights)),
			}
		}
	}
	switch c.DatasetType {
	case DatasetRandom, DatasetCircle, DatasetXOR, DatasetSpiral, DatasetGaussian:
	default:
		return &ValidationError{
			Field:   "dataset_type",
			Message: fmt.Sprintf("invalid dataset type: %s", c.DatasetType),
		}
	}
	return c.TrainingParams.validate()
}

// validate enforces the hyperparameter ranges. The binding tags skip zero
// values (validator's omitempty cannot tell an explicit 0 from an omitted
// field), so the ranges are re-checked here after defaults are applied.
func (t TrainingParameters) validate() error {
	if t.LearningRate < 0.0001 || t.LearningRate > 1 {
		return &ValidationError{
			Field:   "training_params.learning_rate",
			Message: fmt.Sprintf("learning_rate must be between 0.0001 and 1, got %g", t.LearningRate),
		}
	}
	if t.Epochs < 1 || t.Epochs > 1000 {
		return &ValidationError{
			Field:   "training_params.epochs",
			Message: fmt.Sprintf("epochs must be between 1 and 1000, got %d", t.Epochs),
		}
	}
	if t.BatchSize < 1 || t.BatchSize > 1000 {
		return &ValidationError{
			Field:   "training_params.batch_size",
			Message: fmt.Sprintf("batch_size must be between 1 and 1000, got %d", t.BatchSize),
		}
	}
	if t.L2Factor < 0 || t.L2Factor > 1 {
		return &ValidationError{
			Field:   "training_params.l2_factor",
			Message: fmt.Sprintf("l2_factor must be between 0 and 1, got %g", t.L2Factor),
		}
	}
	return nil
}
