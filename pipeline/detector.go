package pipeline

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Tutortoise/image-safety-service/inference"
	"github.com/Tutortoise/image-safety-service/models"
	"github.com/Tutortoise/image-safety-service/preprocess"
)

// Source resolves an image source into encoded bytes.
type Source interface {
	Resolve(ctx context.Context, src models.ImageSource) ([]byte, error)
}

// Detector runs the classification pipeline for one request at a time;
// any number of requests may call Detect concurrently.
type Detector struct {
	handle *inference.Handle
	source Source
	pool   *WorkerPool
	log    *zap.Logger
	debug  bool
}

func NewDetector(handle *inference.Handle, source Source, pool *WorkerPool, log *zap.Logger, debug bool) *Detector {
	return &Detector{
		handle: handle,
		source: source,
		pool:   pool,
		log:    log,
		debug:  debug,
	}
}

// Detect classifies the image referenced by req. Stage failures are reported
// in the returned result; a non-nil error means the worker pool itself
// failed and the request could not be processed.
func (d *Detector) Detect(ctx context.Context, req models.ClassificationRequest) (models.ClassificationResult, error) {
	start := time.Now()
	timings := &models.ProcessingTimings{RequestID: req.RequestID}

	result, err := d.detect(ctx, req, timings)
	if err != nil {
		d.log.Error("classification aborted",
			zap.String("request_id", req.RequestID),
			zap.Error(err))
		return models.ClassificationResult{}, err
	}

	timings.Total = time.Since(start)
	d.logResult(result, timings)
	return result, nil
}

func (d *Detector) detect(ctx context.Context, req models.ClassificationRequest, timings *models.ProcessingTimings) (models.ClassificationResult, error) {
	model, err := d.handle.Model()
	if err != nil {
		return Failure(req.RequestID, models.NewProcessingError(models.StageModel, models.MsgModelLoadFailed, err)), nil
	}

	acquireStart := time.Now()
	data, err := d.source.Resolve(ctx, req.Source)
	timings.Acquire = time.Since(acquireStart)
	if err != nil {
		return Failure(req.RequestID, err), nil
	}

	var (
		pred     inference.Prediction
		stageErr error
	)
	if err := d.pool.Submit(ctx, func() {
		pred, stageErr = classify(model, data, timings)
	}); err != nil {
		return models.ClassificationResult{}, err
	}
	if stageErr != nil {
		return Failure(req.RequestID, stageErr), nil
	}

	return Success(req.RequestID, pred), nil
}

// classify is the CPU-bound part of the pipeline and runs on a pool worker.
func classify(model *inference.Model, data []byte, timings *models.ProcessingTimings) (inference.Prediction, error) {
	decodeStart := time.Now()
	img, err := preprocess.Decode(data)
	timings.Decode = time.Since(decodeStart)
	if err != nil {
		return inference.Prediction{}, err
	}

	prepStart := time.Now()
	tensor, err := model.Preprocess(img)
	timings.Preprocess = time.Since(prepStart)
	if err != nil {
		return inference.Prediction{}, models.NewProcessingError(models.StageInference, models.MsgPredictionFailed, err)
	}

	inferStart := time.Now()
	pred, err := model.PredictTensor(tensor)
	timings.Inference = time.Since(inferStart)
	if err != nil {
		return inference.Prediction{}, models.NewProcessingError(models.StageInference, models.MsgPredictionFailed, err)
	}
	return pred, nil
}

// Ready reports whether the model loaded and, if not, why.
func (d *Detector) Ready() (string, error) {
	model, err := d.handle.Model()
	if err != nil {
		return models.UnknownModelVersion, err
	}
	return model.Version(), nil
}

func (d *Detector) PoolStats() PoolStats {
	return d.pool.GetMetrics()
}

func (d *Detector) logResult(r models.ClassificationResult, t *models.ProcessingTimings) {
	if r.Failed() {
		d.log.Warn("classification failed",
			zap.String("request_id", r.RequestID),
			zap.String("error", r.ErrorMessage))
	} else {
		d.log.Info("classification complete",
			zap.String("request_id", r.RequestID),
			zap.Stringer("label", r.Label),
			zap.String("model_version", r.ModelVersion))
	}

	if d.debug {
		d.log.Info("processing times",
			zap.String("request_id", t.RequestID),
			zap.Duration("acquire", t.Acquire),
			zap.Duration("decode", t.Decode),
			zap.Duration("preprocess", t.Preprocess),
			zap.Duration("inference", t.Inference),
			zap.Duration("total", t.Total))
	}
}
