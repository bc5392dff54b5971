package preprocess

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

var ErrShapeMismatch = errors.New("input shape mismatch")

// Tensor is a dense float32 array in (batch, channel, height, width) order.
type Tensor struct {
	Shape [4]int64
	Data  []float32
}

// Preprocessor turns decoded images into model input tensors.
type Preprocessor struct {
	cfg Config
}

func New(cfg Config) *Preprocessor {
	return &Preprocessor{cfg: cfg}
}

func (p *Preprocessor) Config() Config {
	return p.cfg
}

// Tensor resizes (if configured), extracts RGB planes and applies
// rescaling and normalization.
func (p *Preprocessor) Tensor(img image.Image) (Tensor, error) {
	w, h := p.cfg.Size.Width, p.cfg.Size.Height

	var pic *image.NRGBA
	if p.cfg.DoResize {
		pic = imaging.Resize(img, w, h, imaging.Linear)
	} else {
		pic = imaging.Clone(img)
	}

	if b := pic.Bounds(); b.Dx() != w || b.Dy() != h {
		return Tensor{}, fmt.Errorf("%w: got %dx%d, want %dx%d", ErrShapeMismatch, b.Dx(), b.Dy(), w, h)
	}

	cp := newChannelProcessor(&p.cfg)
	cp.processChannels(pic)

	return Tensor{Shape: p.cfg.InputShape(), Data: cp.buffer}, nil
}
