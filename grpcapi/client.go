package grpcapi

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/Tutortoise/image-safety-service/api"
	pb "github.com/Tutortoise/image-safety-service/proto"
)

// Client calls a remote NsfwDetector service using the api wire types.
type Client struct {
	conn *grpc.ClientConn
	rpc  pb.NsfwDetectorClient
}

// NewClient connects lazily to target over plaintext. Extra options are
// appended after the defaults.
func NewClient(target string, opts ...grpc.DialOption) (*Client, error) {
	defaults := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
	conn, err := grpc.NewClient(target, append(defaults, opts...)...)
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn, rpc: pb.NewNsfwDetectorClient(conn)}, nil
}

func (c *Client) DetectNsfw(ctx context.Context, in *api.DetectRequest, opts ...grpc.CallOption) (*api.DetectResponse, error) {
	req, err := RequestToProto(in)
	if err != nil {
		return nil, err
	}
	out, err := c.rpc.DetectNsfw(ctx, req, opts...)
	if err != nil {
		return nil, err
	}
	return ResponseFromProto(out), nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}
