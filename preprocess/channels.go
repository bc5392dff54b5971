package preprocess

import (
	"image"
	"sync"
)

// Channels is the number of colour planes in the model input.
const Channels = 3

type channelProcessor struct {
	width, height int
	channelSize   int
	cfg           *Config
	buffer        []float32
}

func newChannelProcessor(cfg *Config) *channelProcessor {
	w, h := cfg.Size.Width, cfg.Size.Height
	return &channelProcessor{
		width:       w,
		height:      h,
		channelSize: w * h,
		cfg:         cfg,
		buffer:      make([]float32, Channels*w*h),
	}
}

// processChannels fills each colour plane on its own goroutine. Planes never
// overlap, so the output does not depend on scheduling.
func (cp *channelProcessor) processChannels(img *image.NRGBA) {
	var wg sync.WaitGroup
	wg.Add(Channels)

	for c := 0; c < Channels; c++ {
		go func(channel int) {
			defer wg.Done()
			offset := channel * cp.channelSize
			for y := 0; y < cp.height; y++ {
				row := img.Pix[y*img.Stride:]
				for x := 0; x < cp.width; x++ {
					cp.buffer[offset+y*cp.width+x] = cp.transform(row[x*4+channel], channel)
				}
			}
		}(c)
	}

	wg.Wait()
}

func (cp *channelProcessor) transform(v uint8, channel int) float32 {
	var out float32
	if cp.cfg.DoRescale {
		out = float32(v) * cp.cfg.RescaleFactor
	} else {
		out = float32(v) / 255.0
	}
	if cp.cfg.DoNormalize {
		out = (out - cp.cfg.ImageMean[channel]) / cp.cfg.ImageStd[channel]
	}
	return out
}
