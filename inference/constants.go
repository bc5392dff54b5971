package inference

const (
	// ModelFileName is the ONNX graph expected in the model directory.
	ModelFileName = "model.onnx"

	// DefaultModelVersion is reported when the model carries no version metadata.
	DefaultModelVersion = "0.1.0"

	// UnsafeThreshold is the minimum unsafe probability for an Unsafe label.
	UnsafeThreshold = 0.5

	// Output classes, in model output order.
	ClassNormal = 0
	ClassUnsafe = 1
	NumClasses  = 2
)
