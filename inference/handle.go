package inference

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Tutortoise/image-safety-service/preprocess"
)

// Handle is the outcome of the one model load a process performs. A failed
// load is kept and returned unchanged to every caller; it is never retried.
type Handle struct {
	model *Model
	err   error
}

// NewHandle wraps an already known load outcome.
func NewHandle(model *Model, err error) *Handle {
	if model == nil && err == nil {
		err = fmt.Errorf("model not initialized")
	}
	return &Handle{model: model, err: err}
}

// Load opens the model in dir. It always returns a Handle; inspect
// Model() for the outcome.
func Load(dir string, factory EngineFactory, fallbackVersion string) *Handle {
	model, err := load(dir, factory, fallbackVersion)
	return NewHandle(model, err)
}

func load(dir string, factory EngineFactory, fallbackVersion string) (*Model, error) {
	modelPath := filepath.Join(dir, ModelFileName)
	configPath := filepath.Join(dir, preprocess.ConfigFileName)

	if err := checkArtifact("model file", modelPath); err != nil {
		return nil, err
	}
	if err := checkArtifact("preprocessor config file", configPath); err != nil {
		return nil, err
	}

	cfg, err := preprocess.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	engine, err := factory(modelPath, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create inference engine: %w", err)
	}

	return NewModel(engine, cfg, fallbackVersion), nil
}

func checkArtifact(kind, path string) error {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%s not found: %s: %w", kind, path, err)
	default:
		return fmt.Errorf("cannot access %s %s: %w", kind, path, err)
	}
}

// Model returns the loaded model or the cached load error.
func (h *Handle) Model() (*Model, error) {
	return h.model, h.err
}

func (h *Handle) Ready() bool {
	return h.err == nil
}

func (h *Handle) Close() error {
	if h.model == nil {
		return nil
	}
	return h.model.Close()
}
