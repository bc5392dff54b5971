package cmd

import (
	"go.uber.org/zap"

	"github.com/Tutortoise/image-safety-service/acquire"
	"github.com/Tutortoise/image-safety-service/config"
	"github.com/Tutortoise/image-safety-service/inference"
	"github.com/Tutortoise/image-safety-service/pipeline"
)

// service is everything a command needs to classify images in-process.
type service struct {
	handle   *inference.Handle
	pool     *pipeline.WorkerPool
	detector *pipeline.Detector
}

// newService performs the single model load of the process. A load failure
// is logged and kept in the handle; it does not stop the service.
func newService(cfg *config.Config, log *zap.Logger) *service {
	factory := inference.ONNXFactory(inference.ONNXOptions{
		LibraryPath:    cfg.ONNX.LibraryPath,
		IntraOpThreads: cfg.ONNX.IntraOpThreads,
		InterOpThreads: cfg.ONNX.InterOpThreads,
	})

	handle := inference.Load(cfg.ModelDir, factory, cfg.Model.Version)
	if model, err := handle.Model(); err != nil {
		log.Error("model load failed; every request will report it",
			zap.String("model_dir", cfg.ModelDir),
			zap.Error(err))
	} else {
		mc := model.Config()
		log.Info("model loaded",
			zap.String("model_dir", cfg.ModelDir),
			zap.String("model_version", model.Version()),
			zap.Int("height", mc.Size.Height),
			zap.Int("width", mc.Size.Width),
			zap.String("image_processor_type", mc.ImageProcessorType),
			zap.Int("resample", mc.Resample),
			zap.Strings("cpu_features", inference.CPUFeatures()))
	}

	fetcher := acquire.NewFetcher(acquire.Options{
		Timeout:   cfg.Fetch.Timeout,
		MaxBytes:  cfg.Fetch.MaxBytes,
		UserAgent: cfg.Fetch.UserAgent,
	})
	pool := pipeline.NewWorkerPool(cfg.Pool.Size, cfg.Pool.AcquireTimeout)

	return &service{
		handle:   handle,
		pool:     pool,
		detector: pipeline.NewDetector(handle, fetcher, pool, log, cfg.Debug),
	}
}

func (s *service) Close(log *zap.Logger) {
	s.pool.Close()
	if err := s.handle.Close(); err != nil {
		log.Warn("failed to close model", zap.Error(err))
	}
	if err := inference.DestroyRuntime(); err != nil {
		log.Warn("failed to destroy onnx runtime", zap.Error(err))
	}
}
