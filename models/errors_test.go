package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcessingError(t *testing.T) {
	t.Run("message only", func(t *testing.T) {
		err := NewProcessingError(StageInput, MsgEmptyImageData, nil)

		assert.Equal(t, "Received empty image_data.", err.Error())
		assert.Nil(t, errors.Unwrap(err))
	})

	t.Run("message and cause", func(t *testing.T) {
		cause := errors.New("unexpected EOF")
		err := NewProcessingError(StageDecode, MsgDecodeFailed, cause)

		assert.Equal(t, "Failed to decode image: unexpected EOF", err.Error())
		assert.ErrorIs(t, err, cause)
	})

	t.Run("stage survives wrapping", func(t *testing.T) {
		err := fmt.Errorf("request r1: %w", NewProcessingError(StageAcquire, "fetch", nil))

		stage, ok := StageOf(err)

		assert.True(t, ok)
		assert.Equal(t, StageAcquire, stage)
		assert.Equal(t, "acquire", stage.String())
	})

	t.Run("plain errors have no stage", func(t *testing.T) {
		_, ok := StageOf(errors.New("boom"))

		assert.False(t, ok)
	})
}

func TestLabelString(t *testing.T) {
	assert.Equal(t, "UNKNOWN", LabelUnknown.String())
	assert.Equal(t, "NORMAL", LabelNormal.String())
	assert.Equal(t, "UNSAFE", LabelUnsafe.String())
	assert.Equal(t, "UNKNOWN", Label(7).String())
}

func TestClassificationResultFailed(t *testing.T) {
	assert.False(t, ClassificationResult{Label: LabelNormal}.Failed())
	assert.True(t, ClassificationResult{ErrorMessage: MsgNoImageSource}.Failed())
}
