package preprocess

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ConfigFileName is the preprocessing document expected next to the model.
const ConfigFileName = "preprocessor_config.json"

type Size struct {
	Height int `json:"height"`
	Width  int `json:"width"`
}

// Config mirrors preprocessor_config.json. It is loaded once and never
// modified afterwards.
type Config struct {
	DoNormalize        bool       `json:"do_normalize"`
	DoRescale          bool       `json:"do_rescale"`
	DoResize           bool       `json:"do_resize"`
	ImageMean          [3]float32 `json:"image_mean"`
	ImageStd           [3]float32 `json:"image_std"`
	ImageProcessorType string     `json:"image_processor_type,omitempty"`
	Resample           int        `json:"resample"`
	RescaleFactor      float32    `json:"rescale_factor"`
	Size               Size       `json:"size"`
}

// LoadConfig reads and validates a preprocessing document from path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read preprocessor config: %w", err)
	}
	return ParseConfig(data)
}

func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse preprocessor config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Size.Height <= 0 || c.Size.Width <= 0 {
		return fmt.Errorf("invalid target size %dx%d", c.Size.Width, c.Size.Height)
	}
	if c.DoRescale && c.RescaleFactor <= 0 {
		return errors.New("rescale_factor must be positive when do_rescale is set")
	}
	if c.DoNormalize {
		for i, s := range c.ImageStd {
			if s == 0 {
				return fmt.Errorf("image_std[%d] must be non-zero when do_normalize is set", i)
			}
		}
	}
	return nil
}

// InputShape is the (batch, channel, height, width) shape the model is fed.
func (c Config) InputShape() [4]int64 {
	return [4]int64{1, Channels, int64(c.Size.Height), int64(c.Size.Width)}
}
