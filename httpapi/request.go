package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/Tutortoise/image-safety-service/api"
)

const (
	// RequestIDHeader carries the request id for raw-body uploads.
	RequestIDHeader = "X-Request-ID"

	multipartMemory = 10 << 20
)

func readRequest(r *http.Request) (*api.DetectRequest, error) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		mediaType = ""
	}

	switch mediaType {
	case "application/json":
		return handleJSONRequest(r)
	case "multipart/form-data":
		return handleMultipartRequest(r)
	default:
		return handleRawRequest(r)
	}
}

func handleJSONRequest(r *http.Request) (*api.DetectRequest, error) {
	var req api.DetectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, fmt.Errorf("invalid JSON body: %w", err)
	}
	return &req, nil
}

// handleMultipartRequest reads the image from the "file" part; the request
// id and an optional image_url come from form fields.
func handleMultipartRequest(r *http.Request) (*api.DetectRequest, error) {
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		return nil, fmt.Errorf("invalid multipart body: %w", err)
	}

	req := &api.DetectRequest{RequestID: r.FormValue("request_id")}
	if _, ok := r.MultipartForm.Value["image_url"]; ok {
		url := r.FormValue("image_url")
		req.ImageURL = &url
	}

	file, _, err := r.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) {
		return req, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file part: %w", err)
	}
	req.ImageData = &data
	return req, nil
}

func handleRawRequest(r *http.Request) (*api.DetectRequest, error) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}
	return api.InlineRequest(r.Header.Get(RequestIDHeader), data), nil
}
