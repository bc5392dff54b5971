package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Tutortoise/image-safety-service/api"
	"github.com/Tutortoise/image-safety-service/grpcapi"
)

type classifyOptions struct {
	Remote    string
	RequestID string
}

var classifyOpts classifyOptions

var classifyCmd = &cobra.Command{
	Use:   "classify <file-or-url>...",
	Short: "Classify images and print one JSON response per input",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runClassify(cmd.Context(), classifyOpts, args)
	},
}

func init() {
	classifyCmd.Flags().StringVar(&classifyOpts.Remote, "remote", "", "Address of a running server (host:port); classify in-process when empty")
	classifyCmd.Flags().StringVar(&classifyOpts.RequestID, "request-id", "", "Request id to send (default: a random UUID per input)")
	rootCmd.AddCommand(classifyCmd)
}

// detectFunc performs one DetectNsfw call, locally or remotely.
type detectFunc func(ctx context.Context, req *api.DetectRequest) (*api.DetectResponse, error)

func runClassify(ctx context.Context, opts classifyOptions, inputs []string) error {
	detect, closeFn, err := newDetectFunc(opts)
	if err != nil {
		return err
	}
	defer closeFn()

	var bar *progressbar.ProgressBar
	if len(inputs) > 1 {
		bar = progressbar.NewOptions(len(inputs),
			progressbar.OptionSetDescription("Classifying"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
		)
	}

	enc := json.NewEncoder(os.Stdout)
	var failed int
	for i, input := range inputs {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		req, err := buildRequest(input, requestID(opts.RequestID, i, len(inputs)))
		if err != nil {
			return err
		}

		resp, err := detect(ctx, req)
		if err != nil {
			failed++
			log.Error("classification call failed", zap.String("input", input), zap.Error(err))
		} else if err := enc.Encode(resp); err != nil {
			return fmt.Errorf("failed to write response: %w", err)
		}

		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
		fmt.Fprintln(os.Stderr)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d classification calls failed", failed, len(inputs))
	}
	return nil
}

func newDetectFunc(opts classifyOptions) (detectFunc, func(), error) {
	if opts.Remote != "" {
		client, err := grpcapi.NewClient(opts.Remote)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to %s: %w", opts.Remote, err)
		}
		detect := func(ctx context.Context, req *api.DetectRequest) (*api.DetectResponse, error) {
			return client.DetectNsfw(ctx, req)
		}
		return detect, func() { client.Close() }, nil
	}

	svc := newService(cfg, log)
	detect := func(ctx context.Context, req *api.DetectRequest) (*api.DetectResponse, error) {
		in, err := req.ToRequest()
		if err != nil {
			return nil, err
		}
		result, err := svc.detector.Detect(ctx, in)
		if err != nil {
			return nil, err
		}
		return api.FromResult(result), nil
	}
	return detect, func() { svc.Close(log) }, nil
}

// buildRequest treats http(s) inputs as URLs and everything else as a path.
func buildRequest(input, id string) (*api.DetectRequest, error) {
	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		return api.RemoteRequest(id, input), nil
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", input, err)
	}
	return api.InlineRequest(id, data), nil
}

func requestID(base string, index, total int) string {
	switch {
	case base == "":
		return uuid.New().String()
	case total == 1:
		return base
	default:
		return fmt.Sprintf("%s-%d", base, index+1)
	}
}
