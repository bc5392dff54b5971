package api

import (
	"errors"

	"github.com/Tutortoise/image-safety-service/models"
)

// ErrConflictingSources is returned when a request carries both image_data
// and image_url.
var ErrConflictingSources = errors.New("image_data and image_url are mutually exclusive")

// DetectRequest is the request body of the DetectNsfw operation. A nil
// field is absent; a non-nil empty field is present but empty.
type DetectRequest struct {
	RequestID string  `json:"request_id"`
	ImageData *[]byte `json:"image_data,omitempty"`
	ImageURL  *string `json:"image_url,omitempty"`
}

// InlineRequest builds a request carrying the encoded image directly.
func InlineRequest(requestID string, data []byte) *DetectRequest {
	return &DetectRequest{RequestID: requestID, ImageData: &data}
}

// RemoteRequest builds a request pointing at an image URL.
func RemoteRequest(requestID, url string) *DetectRequest {
	return &DetectRequest{RequestID: requestID, ImageURL: &url}
}

// ToRequest converts the wire shape into the pipeline request.
func (r *DetectRequest) ToRequest() (models.ClassificationRequest, error) {
	req := models.ClassificationRequest{RequestID: r.RequestID}
	switch {
	case r.ImageData != nil && r.ImageURL != nil:
		return req, ErrConflictingSources
	case r.ImageData != nil:
		req.Source = models.InlineImage{Data: *r.ImageData}
	case r.ImageURL != nil:
		req.Source = models.RemoteImage{URL: *r.ImageURL}
	}
	return req, nil
}

type Score struct {
	Label models.Label `json:"label"`
	Score float32      `json:"score"`
}

// DetectResponse is the response body of the DetectNsfw operation.
// OverallClassification uses the enum numbering Unknown=0, Normal=1, Unsafe=2.
type DetectResponse struct {
	RequestID             string       `json:"request_id"`
	OverallClassification models.Label `json:"overall_classification"`
	Scores                []Score      `json:"scores"`
	ModelVersion          string       `json:"model_version"`
	ErrorMessage          string       `json:"error_message"`
}

func FromResult(r models.ClassificationResult) *DetectResponse {
	scores := make([]Score, 0, len(r.Scores))
	for _, s := range r.Scores {
		scores = append(scores, Score{Label: s.Label, Score: s.Score})
	}
	return &DetectResponse{
		RequestID:             r.RequestID,
		OverallClassification: r.Label,
		Scores:                scores,
		ModelVersion:          r.ModelVersion,
		ErrorMessage:          r.ErrorMessage,
	}
}

// Failed reports whether the response describes a pipeline failure.
func (r *DetectResponse) Failed() bool {
	return r.ErrorMessage != ""
}
