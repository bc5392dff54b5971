package inference

import (
	"errors"
	"image"
	"image/color"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ort "github.com/yalue/onnxruntime_go"

	"github.com/Tutortoise/image-safety-service/models"
	"github.com/Tutortoise/image-safety-service/preprocess"
)

const testProcessorConfig = `{
  "do_normalize": true,
  "do_rescale": true,
  "do_resize": true,
  "image_mean": [0.5, 0.5, 0.5],
  "image_std": [0.5, 0.5, 0.5],
  "resample": 2,
  "rescale_factor": 0.00392156862745098,
  "size": {"height": 8, "width": 8}
}`

type fakeEngine struct {
	logits  []float32
	err     error
	version string
	calls   atomic.Int64
	last    preprocess.Tensor
}

func (f *fakeEngine) Run(t preprocess.Tensor) ([]float32, error) {
	f.calls.Add(1)
	f.last = t
	return f.logits, f.err
}

func (f *fakeEngine) Version() string { return f.version }
func (f *fakeEngine) Close() error    { return nil }

func writeModelDir(t *testing.T, withModel, withConfig bool) string {
	t.Helper()
	dir := t.TempDir()
	if withModel {
		require.NoError(t, os.WriteFile(filepath.Join(dir, ModelFileName), []byte("onnx"), 0o644))
	}
	if withConfig {
		require.NoError(t, os.WriteFile(filepath.Join(dir, preprocess.ConfigFileName), []byte(testProcessorConfig), 0o644))
	}
	return dir
}

func grayImage(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 128, G: 128, B: 128, A: 255})
		}
	}
	return img
}

func TestSoftmax(t *testing.T) {
	t.Run("sums to one", func(t *testing.T) {
		cases := [][]float32{
			{0, 0},
			{1.5, -2.25},
			{-7, 3},
			{1000, 1001},
			{-1000, 1000},
		}
		for _, logits := range cases {
			probs := Softmax(logits)
			require.Len(t, probs, len(logits))
			var sum float64
			for _, p := range probs {
				assert.False(t, math.IsNaN(float64(p)))
				assert.GreaterOrEqual(t, p, float32(0))
				assert.LessOrEqual(t, p, float32(1))
				sum += float64(p)
			}
			assert.InDelta(t, 1.0, sum, 1e-5, "logits %v", logits)
		}
	})

	t.Run("equal logits split evenly", func(t *testing.T) {
		probs := Softmax([]float32{3, 3})
		assert.Equal(t, float32(0.5), probs[0])
		assert.Equal(t, float32(0.5), probs[1])
	})

	t.Run("is stable for large logits", func(t *testing.T) {
		probs := Softmax([]float32{1000, 1001})
		assert.InDelta(t, 0.2689414, probs[0], 1e-6)
		assert.InDelta(t, 0.7310586, probs[1], 1e-6)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, Softmax(nil))
	})
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name   string
		normal float32
		unsafe float32
		want   models.Label
	}{
		{"tie at one half is normal", 0.5, 0.5, models.LabelNormal},
		{"just above one half is unsafe", 0.49999, 0.50001, models.LabelUnsafe},
		{"clearly unsafe", 0.1, 0.9, models.LabelUnsafe},
		{"clearly normal", 0.9, 0.1, models.LabelNormal},
		{"unsafe larger but below threshold", 0.2, 0.4, models.LabelNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.normal, tt.unsafe))
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("missing model file is a load failure", func(t *testing.T) {
		var calls int
		factory := func(string, preprocess.Config) (Engine, error) {
			calls++
			return &fakeEngine{}, nil
		}

		h := Load(writeModelDir(t, false, true), factory, "")

		_, err := h.Model()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "model file not found")
		assert.False(t, h.Ready())
		assert.Zero(t, calls)
	})

	t.Run("missing preprocessor config is a load failure", func(t *testing.T) {
		h := Load(writeModelDir(t, true, false), func(string, preprocess.Config) (Engine, error) {
			return &fakeEngine{}, nil
		}, "")

		_, err := h.Model()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "preprocessor config file not found")
	})

	t.Run("stat errors other than not-exist are reported as such", func(t *testing.T) {
		notADir := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(notADir, []byte("x"), 0o644))

		_, err := Load(notADir, func(string, preprocess.Config) (Engine, error) {
			return &fakeEngine{}, nil
		}, "").Model()

		require.Error(t, err)
		assert.ErrorIs(t, err, syscall.ENOTDIR)
		assert.NotContains(t, err.Error(), "not found")
	})

	t.Run("not-exist cause is kept", func(t *testing.T) {
		_, err := Load(writeModelDir(t, false, true), func(string, preprocess.Config) (Engine, error) {
			return &fakeEngine{}, nil
		}, "").Model()

		assert.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("load failure is sticky", func(t *testing.T) {
		var calls int
		engineErr := errors.New("bad graph")
		h := Load(writeModelDir(t, true, true), func(string, preprocess.Config) (Engine, error) {
			calls++
			return nil, engineErr
		}, "")

		_, first := h.Model()
		_, second := h.Model()

		assert.ErrorIs(t, first, engineErr)
		assert.Same(t, first, second)
		assert.Equal(t, 1, calls)
	})

	t.Run("loads model and config", func(t *testing.T) {
		var gotPath string
		var gotCfg preprocess.Config
		dir := writeModelDir(t, true, true)
		h := Load(dir, func(path string, cfg preprocess.Config) (Engine, error) {
			gotPath, gotCfg = path, cfg
			return &fakeEngine{}, nil
		}, "2024.1")

		m, err := h.Model()
		require.NoError(t, err)
		assert.True(t, h.Ready())
		assert.Equal(t, filepath.Join(dir, ModelFileName), gotPath)
		assert.Equal(t, 8, gotCfg.Size.Width)
		assert.Equal(t, "2024.1", m.Version())
		assert.NoError(t, h.Close())
	})
}

func TestNewHandle(t *testing.T) {
	_, err := NewHandle(nil, nil).Model()
	assert.Error(t, err)
}

func TestModelVersion(t *testing.T) {
	cfg, err := preprocess.ParseConfig([]byte(testProcessorConfig))
	require.NoError(t, err)

	assert.Equal(t, "from-metadata", NewModel(&fakeEngine{version: "from-metadata"}, cfg, "configured").Version())
	assert.Equal(t, "configured", NewModel(&fakeEngine{}, cfg, "configured").Version())
	assert.Equal(t, DefaultModelVersion, NewModel(&fakeEngine{}, cfg, "").Version())
}

func TestModelPredict(t *testing.T) {
	cfg, err := preprocess.ParseConfig([]byte(testProcessorConfig))
	require.NoError(t, err)

	t.Run("returns calibrated probabilities", func(t *testing.T) {
		engine := &fakeEngine{logits: []float32{-1.2, 2.3}}
		m := NewModel(engine, cfg, "")

		pred, err := m.Predict(grayImage(32, 20))
		require.NoError(t, err)

		assert.InDelta(t, 1.0, pred.Normal()+pred.Unsafe(), 1e-5)
		assert.Greater(t, pred.Unsafe(), pred.Normal())
		assert.Equal(t, DefaultModelVersion, pred.ModelVersion)
		assert.Equal(t, [4]int64{1, 3, 8, 8}, engine.last.Shape)
		assert.Len(t, engine.last.Data, 3*8*8)
	})

	t.Run("engine error is an inference failure", func(t *testing.T) {
		m := NewModel(&fakeEngine{err: errors.New("boom")}, cfg, "")

		_, err := m.Predict(grayImage(8, 8))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "boom")
	})

	t.Run("unexpected output length is an inference failure", func(t *testing.T) {
		m := NewModel(&fakeEngine{logits: []float32{0.1, 0.2, 0.7}}, cfg, "")

		_, err := m.Predict(grayImage(8, 8))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "model output format unexpected")
	})

	t.Run("non-finite output is an inference failure", func(t *testing.T) {
		for _, logits := range [][]float32{
			{float32(math.NaN()), 0},
			{float32(math.Inf(1)), 0},
			{0, float32(math.Inf(-1))},
		} {
			m := NewModel(&fakeEngine{logits: logits}, cfg, "")

			_, err := m.Predict(grayImage(8, 8))

			require.Error(t, err, "logits %v", logits)
			assert.Contains(t, err.Error(), "non-finite score")
		}
	})

	t.Run("extreme finite logits stay in range", func(t *testing.T) {
		m := NewModel(&fakeEngine{logits: []float32{-math.MaxFloat32, math.MaxFloat32}}, cfg, "")

		pred, err := m.Predict(grayImage(8, 8))

		require.NoError(t, err)
		assert.Equal(t, float32(0), pred.Normal())
		assert.Equal(t, float32(1), pred.Unsafe())
	})

	t.Run("identical input gives identical probabilities", func(t *testing.T) {
		m := NewModel(&fakeEngine{logits: []float32{0.3, 0.4}}, cfg, "")

		a, err := m.Predict(grayImage(10, 10))
		require.NoError(t, err)
		b, err := m.Predict(grayImage(10, 10))
		require.NoError(t, err)

		assert.Equal(t, a, b)
	})
}

func TestCheckInputShape(t *testing.T) {
	want := ort.NewShape(1, 3, 224, 224)

	assert.NoError(t, checkInputShape(ort.NewShape(1, 3, 224, 224), want))
	assert.NoError(t, checkInputShape(ort.NewShape(-1, 3, 224, 224), want))
	assert.Error(t, checkInputShape(ort.NewShape(1, 3, 256, 256), want))
	assert.Error(t, checkInputShape(ort.NewShape(1, 224, 224), want))
}

func TestConcreteShape(t *testing.T) {
	assert.Equal(t, ort.NewShape(1, 2), concreteShape(ort.NewShape(-1, 2)))
}

func TestResolveSharedLibrary(t *testing.T) {
	t.Run("empty path defers to the runtime default", func(t *testing.T) {
		path, err := ResolveSharedLibrary("")
		require.NoError(t, err)
		assert.Empty(t, path)
	})

	t.Run("directory is joined with the platform library name", func(t *testing.T) {
		dir := t.TempDir()
		lib := filepath.Join(dir, SharedLibraryName())
		require.NoError(t, os.WriteFile(lib, []byte{0x7f}, 0o755))

		path, err := ResolveSharedLibrary(dir)
		require.NoError(t, err)
		assert.Equal(t, lib, path)
	})

	t.Run("missing library", func(t *testing.T) {
		_, err := ResolveSharedLibrary(filepath.Join(t.TempDir(), "nope.so"))
		assert.Error(t, err)

		_, err = ResolveSharedLibrary(t.TempDir())
		assert.Error(t, err)
	})
}
