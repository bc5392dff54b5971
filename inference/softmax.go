package inference

import (
	"math"

	"github.com/Tutortoise/image-safety-service/models"
)

// Softmax converts raw scores into probabilities. The maximum is subtracted
// before exponentiation so large logits do not overflow.
func Softmax(logits []float32) []float32 {
	if len(logits) == 0 {
		return nil
	}

	maxVal := math.Inf(-1)
	for _, v := range logits {
		maxVal = math.Max(maxVal, float64(v))
	}

	exps := make([]float64, len(logits))
	var sum float64
	for i, v := range logits {
		exps[i] = math.Exp(float64(v) - maxVal)
		sum += exps[i]
	}

	probs := make([]float32, len(logits))
	for i, e := range exps {
		probs[i] = float32(e / sum)
	}
	return probs
}

// Decide applies the binary decision rule. Both comparisons are strict, so a
// tie at exactly 0.5 is Normal.
func Decide(pNormal, pUnsafe float32) models.Label {
	if pUnsafe > pNormal && pUnsafe > UnsafeThreshold {
		return models.LabelUnsafe
	}
	return models.LabelNormal
}
