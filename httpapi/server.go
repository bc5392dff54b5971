package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/Tutortoise/image-safety-service/api"
	"github.com/Tutortoise/image-safety-service/inference"
	"github.com/Tutortoise/image-safety-service/models"
	"github.com/Tutortoise/image-safety-service/pipeline"
)

// DefaultMaxBodyBytes bounds request bodies; base64 inflates inline images
// by a third so this leaves headroom over the fetch size cap.
const DefaultMaxBodyBytes = 32 << 20

// Detector is the part of pipeline.Detector the HTTP layer needs.
type Detector interface {
	Detect(ctx context.Context, req models.ClassificationRequest) (models.ClassificationResult, error)
	Ready() (string, error)
	PoolStats() pipeline.PoolStats
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

type HealthResponse struct {
	Status       string   `json:"status"`
	ModelLoaded  bool     `json:"model_loaded"`
	ModelVersion string   `json:"model_version"`
	Error        string   `json:"error,omitempty"`
	CPUFeatures  []string `json:"cpu_features"`
}

type Server struct {
	detector     Detector
	log          *zap.Logger
	maxBodyBytes int64
}

func NewServer(detector Detector, log *zap.Logger, maxBodyBytes int64) *Server {
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxBodyBytes
	}
	return &Server{detector: detector, log: log, maxBodyBytes: maxBodyBytes}
}

func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/v1/detect", s.handleDetect).Methods(http.MethodPost)
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	s.addMonitoringRoutes(r)
	return r
}

func (s *Server) addMonitoringRoutes(r *mux.Router) {
	r.HandleFunc("/metrics", s.handleMetrics).Methods(http.MethodGet)
}

func (s *Server) handleDetect(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBodyBytes)

	wire, err := readRequest(r)
	if err != nil {
		sendErrorResponse(w, "invalid_request", err.Error(), http.StatusBadRequest)
		return
	}

	req, err := wire.ToRequest()
	if err != nil {
		sendErrorResponse(w, "invalid_request", err.Error(), http.StatusBadRequest)
		return
	}

	result, err := s.detector.Detect(r.Context(), req)
	if err != nil {
		code, status := classifyError(err)
		s.log.Error("detect request failed",
			zap.String("request_id", req.RequestID),
			zap.Int("status", status),
			zap.Error(err))
		sendErrorResponse(w, code, err.Error(), status)
		return
	}

	writeJSON(w, http.StatusOK, api.FromResult(result))
}

// classifyError maps an infrastructure failure to an error code and status.
func classifyError(err error) (string, int) {
	switch {
	case errors.Is(err, pipeline.ErrPoolExhausted), errors.Is(err, pipeline.ErrPoolClosed):
		return "worker_unavailable", http.StatusServiceUnavailable
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "request_cancelled", http.StatusServiceUnavailable
	default:
		return "processing_error", http.StatusInternalServerError
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	version, err := s.detector.Ready()
	resp := HealthResponse{
		Status:       "ok",
		ModelLoaded:  err == nil,
		ModelVersion: version,
		CPUFeatures:  inference.CPUFeatures(),
	}
	status := http.StatusOK
	if err != nil {
		resp.Status = "unavailable"
		resp.Error = err.Error()
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, resp)
}

func (s *Server) handleMetrics(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.detector.PoolStats())
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func sendErrorResponse(w http.ResponseWriter, code, message string, status int) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}
