package grpcapi

import (
	"github.com/Tutortoise/image-safety-service/api"
	"github.com/Tutortoise/image-safety-service/models"
	pb "github.com/Tutortoise/image-safety-service/proto"
)

func toProtoLabel(l models.Label) pb.ClassificationLabel {
	switch l {
	case models.LabelNormal:
		return pb.ClassificationLabel_NORMAL
	case models.LabelUnsafe:
		return pb.ClassificationLabel_NSFW
	default:
		return pb.ClassificationLabel_UNKNOWN
	}
}

func fromProtoLabel(l pb.ClassificationLabel) models.Label {
	switch l {
	case pb.ClassificationLabel_NORMAL:
		return models.LabelNormal
	case pb.ClassificationLabel_NSFW:
		return models.LabelUnsafe
	default:
		return models.LabelUnknown
	}
}

// RequestFromProto maps the oneof image_source onto the pipeline's
// ImageSource; an unset oneof becomes a nil source.
func RequestFromProto(in *pb.NsfwDetectionRequest) models.ClassificationRequest {
	req := models.ClassificationRequest{RequestID: in.GetRequestId()}
	switch src := in.GetImageSource().(type) {
	case *pb.NsfwDetectionRequest_ImageData:
		req.Source = models.InlineImage{Data: src.ImageData}
	case *pb.NsfwDetectionRequest_ImageUrl:
		req.Source = models.RemoteImage{URL: src.ImageUrl}
	}
	return req
}

// RequestToProto fails with api.ErrConflictingSources when both sources are
// set, since the oneof can carry only one.
func RequestToProto(in *api.DetectRequest) (*pb.NsfwDetectionRequest, error) {
	out := &pb.NsfwDetectionRequest{RequestId: in.RequestID}
	switch {
	case in.ImageData != nil && in.ImageURL != nil:
		return nil, api.ErrConflictingSources
	case in.ImageData != nil:
		data := *in.ImageData
		if data == nil {
			data = []byte{}
		}
		out.ImageSource = &pb.NsfwDetectionRequest_ImageData{ImageData: data}
	case in.ImageURL != nil:
		out.ImageSource = &pb.NsfwDetectionRequest_ImageUrl{ImageUrl: *in.ImageURL}
	}
	return out, nil
}

func ResponseToProto(r models.ClassificationResult) *pb.NsfwDetectionResponse {
	scores := make([]*pb.DetectionScore, 0, len(r.Scores))
	for _, s := range r.Scores {
		scores = append(scores, &pb.DetectionScore{Label: toProtoLabel(s.Label), Score: s.Score})
	}
	return &pb.NsfwDetectionResponse{
		RequestId:             r.RequestID,
		OverallClassification: toProtoLabel(r.Label),
		Scores:                scores,
		ModelVersion:          r.ModelVersion,
		ErrorMessage:          r.ErrorMessage,
	}
}

func ResponseFromProto(in *pb.NsfwDetectionResponse) *api.DetectResponse {
	scores := make([]api.Score, 0, len(in.GetScores()))
	for _, s := range in.GetScores() {
		scores = append(scores, api.Score{Label: fromProtoLabel(s.GetLabel()), Score: s.GetScore()})
	}
	return &api.DetectResponse{
		RequestID:             in.GetRequestId(),
		OverallClassification: fromProtoLabel(in.GetOverallClassification()),
		Scores:                scores,
		ModelVersion:          in.GetModelVersion(),
		ErrorMessage:          in.GetErrorMessage(),
	}
}
