package preprocess

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/Tutortoise/image-safety-service/models"
)

// Decode turns encoded bytes into a pixel grid. Failures are reported as
// decode-stage ProcessingErrors.
func Decode(data []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, models.NewProcessingError(models.StageDecode, models.MsgDecodeFailed, err)
	}
	return img, nil
}
