package inference

import (
	"errors"
	"fmt"

	ort "github.com/yalue/onnxruntime_go"

	"github.com/Tutortoise/image-safety-service/preprocess"
)

// VersionMetadataKey is the custom ONNX metadata entry read as model version.
const VersionMetadataKey = "model_version"

type ONNXOptions struct {
	LibraryPath    string
	IntraOpThreads int
	InterOpThreads int
}

// ONNXFactory returns an EngineFactory backed by ONNX Runtime.
func ONNXFactory(opts ONNXOptions) EngineFactory {
	return func(modelPath string, cfg preprocess.Config) (Engine, error) {
		return NewONNXEngine(modelPath, cfg, opts)
	}
}

// ONNXEngine runs a single-input, single-output ONNX graph. Tensors are
// allocated per call, so concurrent Run calls share nothing but the session.
type ONNXEngine struct {
	session     *ort.DynamicAdvancedSession
	inputName   string
	outputName  string
	inputShape  ort.Shape
	outputShape ort.Shape
	version     string
}

func NewONNXEngine(modelPath string, cfg preprocess.Config, opts ONNXOptions) (*ONNXEngine, error) {
	if err := initializeRuntime(opts.LibraryPath); err != nil {
		return nil, err
	}

	inputs, outputs, err := ort.GetInputOutputInfo(modelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read model inputs and outputs: %w", err)
	}
	if len(inputs) == 0 || len(outputs) == 0 {
		return nil, errors.New("model has no inputs or outputs")
	}

	want := cfg.InputShape()
	inputShape := ort.NewShape(want[:]...)
	if err := checkInputShape(inputs[0].Dimensions, inputShape); err != nil {
		return nil, err
	}

	options, err := ort.NewSessionOptions()
	if err != nil {
		return nil, fmt.Errorf("error creating session options: %w", err)
	}
	defer options.Destroy()

	if opts.IntraOpThreads > 0 {
		if err := options.SetIntraOpNumThreads(opts.IntraOpThreads); err != nil {
			return nil, fmt.Errorf("error setting intra-op threads: %w", err)
		}
	}
	if opts.InterOpThreads > 0 {
		if err := options.SetInterOpNumThreads(opts.InterOpThreads); err != nil {
			return nil, fmt.Errorf("error setting inter-op threads: %w", err)
		}
	}

	session, err := ort.NewDynamicAdvancedSession(
		modelPath,
		[]string{inputs[0].Name},
		[]string{outputs[0].Name},
		options,
	)
	if err != nil {
		return nil, fmt.Errorf("error creating session: %w", err)
	}

	return &ONNXEngine{
		session:     session,
		inputName:   inputs[0].Name,
		outputName:  outputs[0].Name,
		inputShape:  inputShape,
		outputShape: concreteShape(outputs[0].Dimensions),
		version:     readModelVersion(modelPath),
	}, nil
}

// checkInputShape accepts symbolic (negative) dims and requires every fixed
// dim to match the configured shape.
func checkInputShape(declared, want ort.Shape) error {
	if len(declared) != len(want) {
		return fmt.Errorf("model input rank %d does not match expected shape %v", len(declared), want)
	}
	for i, d := range declared {
		if d > 0 && d != want[i] {
			return fmt.Errorf("model input shape %v does not match expected shape %v", declared, want)
		}
	}
	return nil
}

// concreteShape pins symbolic dims (such as batch) to 1.
func concreteShape(dims ort.Shape) ort.Shape {
	out := make(ort.Shape, len(dims))
	for i, d := range dims {
		if d <= 0 {
			d = 1
		}
		out[i] = d
	}
	return out
}

func readModelVersion(modelPath string) string {
	meta, err := ort.GetModelMetadata(modelPath)
	if err != nil {
		return ""
	}
	defer meta.Destroy()

	version, ok, err := meta.LookupCustomMetadataMap(VersionMetadataKey)
	if err != nil || !ok {
		return ""
	}
	return version
}

func (e *ONNXEngine) Run(t preprocess.Tensor) ([]float32, error) {
	shape := ort.NewShape(t.Shape[:]...)
	if !shapesEqual(shape, e.inputShape) {
		return nil, fmt.Errorf("%w: got %v, want %v", preprocess.ErrShapeMismatch, shape, e.inputShape)
	}

	input, err := ort.NewTensor(shape, t.Data)
	if err != nil {
		return nil, fmt.Errorf("error creating input tensor: %w", err)
	}
	defer input.Destroy()

	output, err := ort.NewEmptyTensor[float32](e.outputShape)
	if err != nil {
		return nil, fmt.Errorf("error creating output tensor: %w", err)
	}
	defer output.Destroy()

	if err := e.session.Run([]ort.Value{input}, []ort.Value{output}); err != nil {
		return nil, fmt.Errorf("model inference: %w", err)
	}

	scores := make([]float32, len(output.GetData()))
	copy(scores, output.GetData())
	return scores, nil
}

func shapesEqual(a, b ort.Shape) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (e *ONNXEngine) Version() string {
	return e.version
}

func (e *ONNXEngine) Close() error {
	if e.session == nil {
		return nil
	}
	return e.session.Destroy()
}
