package models

// Messages reported back to callers in ClassificationResult.ErrorMessage.
const (
	MsgModelLoadFailed  = "Model loading failed"
	MsgEmptyImageData   = "Received empty image_data."
	MsgEmptyImageURL    = "Received empty image_url."
	MsgNoImageSource    = "No image_source provided in the request."
	MsgFetchFailed      = "Failed to fetch image from URL %s"
	MsgReadFailed       = "Failed to read bytes from URL %s"
	MsgDecodeFailed     = "Failed to decode image"
	MsgPredictionFailed = "Model prediction error"
	UnknownModelVersion = "unknown"
)
