package inference

import (
	"fmt"
	"image"
	"math"

	"github.com/Tutortoise/image-safety-service/preprocess"
)

// Prediction holds calibrated class probabilities in [normal, unsafe] order.
type Prediction struct {
	Probabilities [NumClasses]float32
	ModelVersion  string
}

func (p Prediction) Normal() float32 { return p.Probabilities[ClassNormal] }
func (p Prediction) Unsafe() float32 { return p.Probabilities[ClassUnsafe] }

// Model is a loaded engine plus the preprocessing it expects. It is read-only
// after construction and shared by all requests.
type Model struct {
	engine       Engine
	preprocessor *preprocess.Preprocessor
	version      string
}

func NewModel(engine Engine, cfg preprocess.Config, fallbackVersion string) *Model {
	version := engine.Version()
	if version == "" {
		version = fallbackVersion
	}
	if version == "" {
		version = DefaultModelVersion
	}
	return &Model{
		engine:       engine,
		preprocessor: preprocess.New(cfg),
		version:      version,
	}
}

func (m *Model) Version() string {
	return m.version
}

func (m *Model) Config() preprocess.Config {
	return m.preprocessor.Config()
}

// Predict preprocesses img, runs the engine and applies softmax.
func (m *Model) Predict(img image.Image) (Prediction, error) {
	tensor, err := m.Preprocess(img)
	if err != nil {
		return Prediction{}, err
	}
	return m.PredictTensor(tensor)
}

func (m *Model) Preprocess(img image.Image) (preprocess.Tensor, error) {
	return m.preprocessor.Tensor(img)
}

func (m *Model) PredictTensor(tensor preprocess.Tensor) (Prediction, error) {
	logits, err := m.engine.Run(tensor)
	if err != nil {
		return Prediction{}, fmt.Errorf("inference failed: %w", err)
	}
	if len(logits) != NumClasses {
		return Prediction{}, fmt.Errorf("model output format unexpected: got %d scores, want %d", len(logits), NumClasses)
	}

	for i, v := range logits {
		if !finite(v) {
			return Prediction{}, fmt.Errorf("model output format unexpected: non-finite score %v at index %d", v, i)
		}
	}

	probs := Softmax(logits)
	for _, p := range probs {
		if !finite(p) || p < 0 || p > 1 {
			return Prediction{}, fmt.Errorf("model output format unexpected: probability %v out of range", p)
		}
	}

	pred := Prediction{ModelVersion: m.version}
	copy(pred.Probabilities[:], probs)
	return pred, nil
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func (m *Model) Close() error {
	return m.engine.Close()
}
