package pipeline

import (
	"github.com/Tutortoise/image-safety-service/inference"
	"github.com/Tutortoise/image-safety-service/models"
)

// Success builds the result for a completed prediction.
func Success(requestID string, pred inference.Prediction) models.ClassificationResult {
	return models.ClassificationResult{
		RequestID: requestID,
		Label:     inference.Decide(pred.Normal(), pred.Unsafe()),
		Scores: []models.Score{
			{Label: models.LabelNormal, Score: pred.Normal()},
			{Label: models.LabelUnsafe, Score: pred.Unsafe()},
		},
		ModelVersion: pred.ModelVersion,
	}
}

// Failure builds the result for any pipeline stage error.
func Failure(requestID string, err error) models.ClassificationResult {
	return models.ClassificationResult{
		RequestID:    requestID,
		Label:        models.LabelUnknown,
		Scores:       []models.Score{},
		ModelVersion: models.UnknownModelVersion,
		ErrorMessage: err.Error(),
	}
}
