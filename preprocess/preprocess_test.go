package preprocess

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tutortoise/image-safety-service/models"
)

const vitConfig = `{
  "do_normalize": true,
  "do_rescale": true,
  "do_resize": true,
  "image_mean": [0.5, 0.5, 0.5],
  "image_processor_type": "ViTImageProcessor",
  "image_std": [0.5, 0.5, 0.5],
  "resample": 2,
  "rescale_factor": 0.00392156862745098,
  "size": {"height": 4, "width": 4}
}`

func solidImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestParseConfig(t *testing.T) {
	t.Run("parses processor document", func(t *testing.T) {
		cfg, err := ParseConfig([]byte(vitConfig))

		require.NoError(t, err)
		assert.True(t, cfg.DoNormalize)
		assert.True(t, cfg.DoResize)
		assert.Equal(t, 4, cfg.Size.Height)
		assert.Equal(t, [3]float32{0.5, 0.5, 0.5}, cfg.ImageMean)
		assert.Equal(t, 2, cfg.Resample)
		assert.Equal(t, [4]int64{1, 3, 4, 4}, cfg.InputShape())
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		_, err := ParseConfig([]byte(`{"size":`))
		assert.Error(t, err)
	})

	t.Run("rejects zero size", func(t *testing.T) {
		_, err := ParseConfig([]byte(`{"size": {"height": 0, "width": 224}}`))
		assert.Error(t, err)
	})

	t.Run("rejects zero std when normalizing", func(t *testing.T) {
		_, err := ParseConfig([]byte(`{"do_normalize": true, "image_std": [0.5, 0, 0.5], "size": {"height": 2, "width": 2}}`))
		assert.Error(t, err)
	})
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(vitConfig), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "ViTImageProcessor", cfg.ImageProcessorType)

	_, err = LoadConfig(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestDecode(t *testing.T) {
	t.Run("decodes png", func(t *testing.T) {
		img, err := Decode(encodePNG(t, solidImage(3, 2, color.NRGBA{R: 1, A: 255})))

		require.NoError(t, err)
		assert.Equal(t, 3, img.Bounds().Dx())
		assert.Equal(t, 2, img.Bounds().Dy())
	})

	t.Run("truncated payload is a decode error", func(t *testing.T) {
		data := encodePNG(t, solidImage(8, 8, color.NRGBA{A: 255}))

		_, err := Decode(data[:len(data)/2])

		require.Error(t, err)
		stage, ok := models.StageOf(err)
		assert.True(t, ok)
		assert.Equal(t, models.StageDecode, stage)
		assert.Contains(t, err.Error(), "Failed to decode image")
	})

	t.Run("non-image payload is a decode error", func(t *testing.T) {
		_, err := Decode([]byte("definitely not an image"))
		assert.Error(t, err)
	})
}

func TestPreprocessorTensor(t *testing.T) {
	t.Run("normalizes to [-1, 1] with mean and std of 0.5", func(t *testing.T) {
		cfg, err := ParseConfig([]byte(vitConfig))
		require.NoError(t, err)

		tensor, err := New(cfg).Tensor(solidImage(4, 4, color.NRGBA{R: 255, G: 0, B: 51, A: 255}))
		require.NoError(t, err)

		assert.Equal(t, [4]int64{1, 3, 4, 4}, tensor.Shape)
		require.Len(t, tensor.Data, 3*4*4)
		assert.InDelta(t, 1.0, tensor.Data[0], 1e-6)
		assert.InDelta(t, -1.0, tensor.Data[16], 1e-6)
		assert.InDelta(t, -0.6, tensor.Data[32], 1e-6)
	})

	t.Run("divides by 255 when rescale is disabled", func(t *testing.T) {
		cfg := Config{Size: Size{Height: 2, Width: 2}}

		tensor, err := New(cfg).Tensor(solidImage(2, 2, color.NRGBA{R: 255, G: 51, B: 0, A: 255}))
		require.NoError(t, err)

		assert.InDelta(t, 1.0, tensor.Data[0], 1e-6)
		assert.InDelta(t, 0.2, tensor.Data[4], 1e-6)
		assert.InDelta(t, 0.0, tensor.Data[8], 1e-6)
	})

	t.Run("lays out channels row major", func(t *testing.T) {
		cfg := Config{DoRescale: true, RescaleFactor: 1, Size: Size{Height: 2, Width: 3}}
		img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
		for y := 0; y < 2; y++ {
			for x := 0; x < 3; x++ {
				img.SetNRGBA(x, y, color.NRGBA{R: uint8(y*3 + x), G: uint8(100 + y*3 + x), B: 200, A: 255})
			}
		}

		tensor, err := New(cfg).Tensor(img)
		require.NoError(t, err)

		assert.Equal(t, []float32{0, 1, 2, 3, 4, 5}, tensor.Data[0:6])
		assert.Equal(t, []float32{100, 101, 102, 103, 104, 105}, tensor.Data[6:12])
		assert.Equal(t, []float32{200, 200, 200, 200, 200, 200}, tensor.Data[12:18])
	})

	t.Run("resizes to the exact target size", func(t *testing.T) {
		cfg := Config{DoResize: true, Size: Size{Height: 7, Width: 5}}

		tensor, err := New(cfg).Tensor(solidImage(40, 13, color.NRGBA{G: 128, A: 255}))
		require.NoError(t, err)

		assert.Equal(t, [4]int64{1, 3, 7, 5}, tensor.Shape)
		assert.Len(t, tensor.Data, 3*7*5)
		for _, v := range tensor.Data {
			assert.False(t, math.IsNaN(float64(v)) || math.IsInf(float64(v), 0))
		}
	})

	t.Run("rejects size mismatch without resize", func(t *testing.T) {
		cfg := Config{Size: Size{Height: 4, Width: 4}}

		_, err := New(cfg).Tensor(solidImage(5, 4, color.NRGBA{A: 255}))

		assert.ErrorIs(t, err, ErrShapeMismatch)
	})

	t.Run("identical input gives bit identical tensors", func(t *testing.T) {
		cfg, err := ParseConfig([]byte(vitConfig))
		require.NoError(t, err)
		src := image.NewNRGBA(image.Rect(0, 0, 17, 9))
		for i := range src.Pix {
			src.Pix[i] = uint8(i * 31)
		}
		data := encodePNG(t, src)

		p := New(cfg)
		first, err := Decode(data)
		require.NoError(t, err)
		second, err := Decode(data)
		require.NoError(t, err)
		a, err := p.Tensor(first)
		require.NoError(t, err)
		b, err := p.Tensor(second)
		require.NoError(t, err)

		require.Equal(t, len(a.Data), len(b.Data))
		for i := range a.Data {
			assert.Equal(t, math.Float32bits(a.Data[i]), math.Float32bits(b.Data[i]))
		}
	})
}
