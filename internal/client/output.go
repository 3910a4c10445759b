package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by the --output flag.
const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Machine-readable error codes used in the output envelope.
const (
	ErrCodeInvalidConfig    = "INVALID_CONFIG"
	ErrCodeInvalidArgument  = "INVALID_ARGUMENT"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodePermissionDenied = "PERMISSION_DENIED"
	ErrCodeConnectionError  = "CONNECTION_ERROR"
	ErrCodeTimeoutError     = "TIMEOUT_ERROR"
	ErrCodeAPIError         = "API_ERROR"
)

// Response is the output envelope written for every command. Data and Error
// are mutually exclusive.
type Response struct {
	Success   bool        `json:"success" yaml:"success"`
	Data      interface{} `json:"data,omitempty" yaml:"data,omitempty"`
	Error     *Error      `json:"error,omitempty" yaml:"error,omitempty"`
	Timestamp time.Time   `json:"timestamp" yaml:"timestamp"`
}

// Error carries a machine-readable code alongside the human-readable
// message in an error envelope.
type Error struct {
	Code    string `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

// ValidOutputFormat reports whether format names a supported rendering.
func ValidOutputFormat(format string) bool {
	return format == OutputJSON || format == OutputYAML
}

// WriteSuccess writes a success envelope containing data to w in the given
// format.
func WriteSuccess(w io.Writer, format string, data interface{}) error {
	return writeResponse(w, format, Response{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC(),
	})
}

// WriteError writes an error envelope with the given code and message to w.
func WriteError(w io.Writer, format, code, message string) error {
	return writeResponse(w, format, Response{
		Success:   false,
		Error:     &Error{Code: code, Message: message},
		Timestamp: time.Now().UTC(),
	})
}

func writeResponse(w io.Writer, format string, resp Response) error {
	if format == OutputYAML {
		data, err := yaml.Marshal(resp)
		if err != nil {
			return fmt.Errorf("failed to encode response: %w", err)
		}
		_, err = w.Write(data)
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

// ClassifyError maps a handler error to an envelope error code. gRPC status
// codes from the Firestore SDK take priority; message sniffing covers plain
// transport errors.
func ClassifyError(err error) string {
	if errors.Is(err, ErrDocumentNotFound) {
		return ErrCodeNotFound
	}

	switch status.Code(err) {
	case codes.NotFound:
		return ErrCodeNotFound
	case codes.InvalidArgument:
		return ErrCodeInvalidArgument
	case codes.PermissionDenied, codes.Unauthenticated:
		return ErrCodePermissionDenied
	case codes.DeadlineExceeded:
		return ErrCodeTimeoutError
	case codes.Unavailable:
		return ErrCodeConnectionError
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "context deadline exceeded"):
		return ErrCodeTimeoutError
	case strings.Contains(msg, "connection refused"), strings.Contains(msg, "no such host"):
		return ErrCodeConnectionError
	default:
		return ErrCodeAPIError
	}
}
