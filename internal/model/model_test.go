package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if len(cfg.Layers) != 2 {
		t.Fatalf("expected 2 layers, got %d", len(cfg.Layers))
	}
	if cfg.Layers[0].NumNeurons != 2 || cfg.Layers[1].NumNeurons != 3 {
		t.Errorf("unexpected neuron counts: %d, %d", cfg.Layers[0].NumNeurons, cfg.Layers[1].NumNeurons)
	}
	if cfg.Layers[0].ActivationFunction == nil || *cfg.Layers[0].ActivationFunction != ActivationReLU {
		t.Error("first layer should default to relu")
	}
	if cfg.Layers[1].ActivationFunction != nil {
		t.Error("second layer should have no activation")
	}
	if len(cfg.Weights[PairKey(0)]) != 6 {
		t.Errorf("expected 6 default weights, got %d", len(cfg.Weights[PairKey(0)]))
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default configuration should validate: %v", err)
	}
}

func TestPairKey(t *testing.T) {
	if got := PairKey(0); got != "layer0_1" {
		t.Errorf("expected layer0_1, got %s", got)
	}
	if got := PairKey(3); got != "layer3_4" {
		t.Errorf("expected layer3_4, got %s", got)
	}
}

func TestValidateWeightMismatch(t *testing.T) {
	cfg := Default()
	cfg.Weights[PairKey(0)] = []float64{0.1, 0.2, 0.3, 0.4}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !IsValidationError(err) {
		t.Errorf("expected *ValidationError, got %T", err)
	}
	msg := err.Error()
	for _, want := range []string{"layer0_1", "expected 6", "got 4"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q should mention %q", msg, want)
		}
	}
}

func TestValidateMissingPairAllowed(t *testing.T) {
	cfg := Default()
	delete(cfg.Weights, PairKey(0))

	if err := cfg.Validate(); err != nil {
		t.Errorf("absent weight entries should not fail validation: %v", err)
	}
}

func TestValidateDatasetType(t *testing.T) {
	for _, valid := range []string{DatasetRandom, DatasetCircle, DatasetXOR, DatasetSpiral, DatasetGaussian} {
		cfg := Default()
		cfg.DatasetType = valid
		if err := cfg.Validate(); err != nil {
			t.Errorf("dataset type %q should be valid: %v", valid, err)
		}
	}

	cfg := Default()
	cfg.DatasetType = "parabola"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error for unknown dataset type")
	}
	if !strings.Contains(err.Error(), "parabola") {
		t.Errorf("error %q should name the offending value", err.Error())
	}
}

func TestNormalizeClearsLaterActivations(t *testing.T) {
	sigmoid := ActivationSigmoid
	tanh := ActivationTanh
	cfg := Configuration{
		Layers: []Layer{
			{NumNeurons: 2, ActivationFunction: &sigmoid},
			{NumNeurons: 4, ActivationFunction: &tanh},
			{NumNeurons: 1, ActivationFunction: &tanh},
		},
	}

	cfg.Normalize()

	if cfg.Layers[0].ActivationFunction == nil || *cfg.Layers[0].ActivationFunction != ActivationSigmoid {
		t.Error("first layer activation must survive normalization")
	}
	for i := 1; i < len(cfg.Layers); i++ {
		if cfg.Layers[i].ActivationFunction != nil {
			t.Errorf("layer %d activation should be cleared", i)
		}
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Configuration{Layers: []Layer{{NumNeurons: 1}}}
	cfg.ApplyDefaults()

	if cfg.SampleSize == nil || *cfg.SampleSize != DefaultSampleSize {
		t.Error("sample size should default to 100")
	}
	if cfg.DatasetType != DatasetRandom {
		t.Errorf("dataset type should default to random, got %q", cfg.DatasetType)
	}
	if cfg.Weights == nil || cfg.Biases == nil || cfg.ComputedCoordinates == nil {
		t.Error("collection fields should be non-nil after defaults")
	}
}

func TestConfigurationDecodeFillsTrainingDefaults(t *testing.T) {
	var cfg Configuration
	payload := `{"layers": [{"num_neurons": 2}, {"num_neurons": 3}]}`
	if err := json.Unmarshal([]byte(payload), &cfg); err != nil {
		t.Fatal(err)
	}

	if cfg.TrainingParams != DefaultTrainingParameters() {
		t.Errorf("omitted training_params should decode to defaults, got %+v", cfg.TrainingParams)
	}
}

func TestValidateTrainingParameterRanges(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*TrainingParameters)
		field  string
	}{
		{"zero learning rate", func(p *TrainingParameters) { p.LearningRate = 0 }, "learning_rate"},
		{"learning rate above one", func(p *TrainingParameters) { p.LearningRate = 1.5 }, "learning_rate"},
		{"zero epochs", func(p *TrainingParameters) { p.Epochs = 0 }, "epochs"},
		{"too many epochs", func(p *TrainingParameters) { p.Epochs = 1001 }, "epochs"},
		{"zero batch size", func(p *TrainingParameters) { p.BatchSize = 0 }, "batch_size"},
		{"negative l2 factor", func(p *TrainingParameters) { p.L2Factor = -0.1 }, "l2_factor"},
		{"l2 factor above one", func(p *TrainingParameters) { p.L2Factor = 1.1 }, "l2_factor"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg.TrainingParams)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("error %q should mention %q", err.Error(), tc.field)
			}
		})
	}
}

func TestValidateTrainingParameterBoundaries(t *testing.T) {
	cfg := Default()
	cfg.TrainingParams = TrainingParameters{
		LearningRate: 0.0001,
		Epochs:       1000,
		BatchSize:    1,
		L2Factor:     0,
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("boundary values should be accepted: %v", err)
	}

	cfg.TrainingParams = TrainingParameters{
		LearningRate: 1,
		Epochs:       1,
		BatchSize:    1000,
		L2Factor:     1,
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("boundary values should be accepted: %v", err)
	}
}

func TestTrainingParametersPartialPayload(t *testing.T) {
	var params TrainingParameters
	if err := json.Unmarshal([]byte(`{"epochs": 250}`), &params); err != nil {
		t.Fatal(err)
	}

	if params.Epochs != 250 {
		t.Errorf("expected epochs 250, got %d", params.Epochs)
	}
	if params.LearningRate != 0.01 {
		t.Errorf("omitted learning_rate should default to 0.01, got %g", params.LearningRate)
	}
	if params.BatchSize != 32 {
		t.Errorf("omitted batch_size should default to 32, got %d", params.BatchSize)
	}
	if params.L2Factor != 0.00005 {
		t.Errorf("omitted l2_factor should default to 0.00005, got %g", params.L2Factor)
	}
}
