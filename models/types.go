package models

import "time"

// Label is the overall classification of an image.
type Label int32

const (
	LabelUnknown Label = 0
	LabelNormal  Label = 1
	LabelUnsafe  Label = 2
)

func (l Label) String() string {
	switch l {
	case LabelNormal:
		return "NORMAL"
	case LabelUnsafe:
		return "UNSAFE"
	default:
		return "UNKNOWN"
	}
}

// ImageSource is where the encoded image bytes come from. A nil ImageSource
// means the caller did not provide one.
type ImageSource interface {
	isImageSource()
}

// InlineImage carries the encoded image in the request itself.
type InlineImage struct {
	Data []byte
}

// RemoteImage points at an image that has to be fetched.
type RemoteImage struct {
	URL string
}

func (InlineImage) isImageSource() {}
func (RemoteImage) isImageSource() {}

type ClassificationRequest struct {
	RequestID string
	Source    ImageSource
}

type Score struct {
	Label Label   `json:"label"`
	Score float32 `json:"score"`
}

// ClassificationResult is built once per request and never mutated.
type ClassificationResult struct {
	RequestID    string
	Label        Label
	Scores       []Score
	ModelVersion string
	ErrorMessage string
}

// Failed reports whether the result describes a pipeline failure.
func (r ClassificationResult) Failed() bool {
	return r.ErrorMessage != ""
}

type ProcessingTimings struct {
	RequestID  string
	Acquire    time.Duration
	Decode     time.Duration
	Preprocess time.Duration
	Inference  time.Duration
	Total      time.Duration
}
