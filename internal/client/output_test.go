package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gopkg.in/yaml.v3"
)

// TestValidOutputFormat verifies accepted format names.
func TestValidOutputFormat(t *testing.T) {
	t.Parallel()

	assert.True(t, ValidOutputFormat(OutputJSON))
	assert.True(t, ValidOutputFormat(OutputYAML))
	assert.False(t, ValidOutputFormat("xml"))
	assert.False(t, ValidOutputFormat(""))
}

// TestWriteSuccess_JSON verifies the success envelope shape in JSON mode.
func TestWriteSuccess_JSON(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := WriteSuccess(&out, OutputJSON, map[string]string{"hello": "world"})
	require.NoError(t, err)

	var resp Response
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Error)
	assert.False(t, resp.Timestamp.IsZero())

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "world", data["hello"])
}

// TestWriteError_JSON verifies the error envelope carries code and message
// and excludes the data field.
func TestWriteError_JSON(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := WriteError(&out, OutputJSON, ErrCodeNotFound, "document not found: users/alice")
	require.NoError(t, err)

	var resp Response
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Nil(t, resp.Data)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeNotFound, resp.Error.Code)
	assert.Equal(t, "document not found: users/alice", resp.Error.Message)
}

// TestWriteSuccess_YAML verifies the envelope renders as YAML when selected.
func TestWriteSuccess_YAML(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := WriteSuccess(&out, OutputYAML, DeleteConfirmation{
		Collection: "users",
		Document:   "alice",
		Deleted:    true,
	})
	require.NoError(t, err)

	var resp struct {
		Success bool `yaml:"success"`
		Data    struct {
			Collection string `yaml:"collection"`
			Document   string `yaml:"document"`
			Deleted    bool   `yaml:"deleted"`
		} `yaml:"data"`
	}
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "users", resp.Data.Collection)
	assert.True(t, resp.Data.Deleted)
}

// TestClassifyError verifies error-to-code mapping for sentinel, gRPC
// status, and transport errors.
func TestClassifyError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "wrapped document-not-found sentinel",
			err:  fmt.Errorf("%w: users/alice", ErrDocumentNotFound),
			want: ErrCodeNotFound,
		},
		{
			name: "grpc not found",
			err:  status.Error(codes.NotFound, "missing"),
			want: ErrCodeNotFound,
		},
		{
			name: "grpc invalid argument",
			err:  status.Error(codes.InvalidArgument, "malformed document path"),
			want: ErrCodeInvalidArgument,
		},
		{
			name: "grpc permission denied",
			err:  status.Error(codes.PermissionDenied, "nope"),
			want: ErrCodePermissionDenied,
		},
		{
			name: "grpc unauthenticated",
			err:  status.Error(codes.Unauthenticated, "bad credentials"),
			want: ErrCodePermissionDenied,
		},
		{
			name: "grpc deadline exceeded",
			err:  status.Error(codes.DeadlineExceeded, "too slow"),
			want: ErrCodeTimeoutError,
		},
		{
			name: "grpc unavailable",
			err:  status.Error(codes.Unavailable, "down"),
			want: ErrCodeConnectionError,
		},
		{
			name: "plain deadline message",
			err:  errors.New("context deadline exceeded"),
			want: ErrCodeTimeoutError,
		},
		{
			name: "connection refused",
			err:  errors.New("dial tcp 127.0.0.1:443: connection refused"),
			want: ErrCodeConnectionError,
		},
		{
			name: "unknown host",
			err:  errors.New("lookup firestore.googleapis.com: no such host"),
			want: ErrCodeConnectionError,
		},
		{
			name: "anything else",
			err:  errors.New("boom"),
			want: ErrCodeAPIError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, ClassifyError(tt.err))
		})
	}
}
