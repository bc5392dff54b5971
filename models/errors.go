package models

import (
	"errors"
	"fmt"
)

// Stage identifies the pipeline stage a ProcessingError came from.
type Stage int

const (
	StageModel Stage = iota
	StageInput
	StageAcquire
	StageDecode
	StageInference
)

func (s Stage) String() string {
	switch s {
	case StageModel:
		return "model"
	case StageInput:
		return "input"
	case StageAcquire:
		return "acquire"
	case StageDecode:
		return "decode"
	case StageInference:
		return "inference"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

type ProcessingError struct {
	Stage   Stage
	Message string
	Cause   error
}

func (e *ProcessingError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ProcessingError) Unwrap() error {
	return e.Cause
}

// NewProcessingError is a shorthand used by every pipeline stage.
func NewProcessingError(stage Stage, message string, cause error) *ProcessingError {
	return &ProcessingError{Stage: stage, Message: message, Cause: cause}
}

// StageOf returns the stage of the first ProcessingError in err's chain.
func StageOf(err error) (Stage, bool) {
	var pe *ProcessingError
	if errors.As(err, &pe) {
		return pe.Stage, true
	}
	return 0, false
}
