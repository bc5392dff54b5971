package inference

import "github.com/Tutortoise/image-safety-service/preprocess"

// Engine is the opaque inference backend: a tensor goes in, raw per-class
// scores come out. Implementations must be safe for concurrent Run calls.
type Engine interface {
	Run(input preprocess.Tensor) ([]float32, error)
	// Version describes the loaded model. Empty means unknown.
	Version() string
	Close() error
}

// EngineFactory opens an Engine for the model file at modelPath whose input
// is described by cfg.
type EngineFactory func(modelPath string, cfg preprocess.Config) (Engine, error)
