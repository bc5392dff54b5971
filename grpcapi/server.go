package grpcapi

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"github.com/Tutortoise/image-safety-service/models"
	"github.com/Tutortoise/image-safety-service/pipeline"
	pb "github.com/Tutortoise/image-safety-service/proto"
)

// Detector is the part of pipeline.Detector the gRPC layer needs.
type Detector interface {
	Detect(ctx context.Context, req models.ClassificationRequest) (models.ClassificationResult, error)
}

type server struct {
	pb.UnimplementedNsfwDetectorServer
	detector Detector
}

// NewServer returns a grpc.Server with the NsfwDetector and reflection
// services registered.
func NewServer(detector Detector, log *zap.Logger, opts ...grpc.ServerOption) *grpc.Server {
	opts = append(opts, grpc.ChainUnaryInterceptor(loggingInterceptor(log)))
	s := grpc.NewServer(opts...)
	pb.RegisterNsfwDetectorServer(s, &server{detector: detector})
	reflection.Register(s)
	return s
}

// DetectNsfw answers every pipeline failure with a response; only worker
// pool faults become gRPC errors.
func (s *server) DetectNsfw(ctx context.Context, in *pb.NsfwDetectionRequest) (*pb.NsfwDetectionResponse, error) {
	result, err := s.detector.Detect(ctx, RequestFromProto(in))
	if err != nil {
		return nil, status.Error(errorCode(err), err.Error())
	}
	return ResponseToProto(result), nil
}

func errorCode(err error) codes.Code {
	switch {
	case errors.Is(err, pipeline.ErrPoolExhausted), errors.Is(err, pipeline.ErrPoolClosed):
		return codes.Unavailable
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	default:
		return codes.Internal
	}
}

func loggingInterceptor(log *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		log.Debug("grpc call",
			zap.String("method", info.FullMethod),
			zap.Stringer("code", status.Code(err)),
			zap.Duration("duration", time.Since(start)))
		return resp, err
	}
}
