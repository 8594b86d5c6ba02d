package client

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/googleapi"

	"github.com/researchaccelerator-hub/channel-categorizer/model"
)

func TestClassifyAPIError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantIs   error
		wantPlat bool
	}{
		{
			name: "quota exceeded reason",
			err: &googleapi.Error{
				Code:    403,
				Message: "The request cannot be completed because you have exceeded your quota.",
				Errors:  []googleapi.ErrorItem{{Reason: "quotaExceeded"}},
			},
			wantIs: model.ErrQuotaExceeded,
		},
		{
			name: "quota only in message body",
			err: &googleapi.Error{
				Code:    403,
				Message: "daily quota exceeded for this project",
			},
			wantIs: model.ErrQuotaExceeded,
		},
		{
			name: "forbidden without quota is platform error",
			err: &googleapi.Error{
				Code:    403,
				Message: "API key not valid",
			},
			wantPlat: true,
		},
		{
			name: "not found status",
			err: &googleapi.Error{
				Code:    404,
				Message: "channel not found",
			},
			wantIs: model.ErrNotFound,
		},
		{
			name: "bad request is platform error",
			err: &googleapi.Error{
				Code:    400,
				Message: "invalid filter parameter",
				Errors:  []googleapi.ErrorItem{{Reason: "invalidParameter"}},
			},
			wantPlat: true,
		},
		{
			name:   "non-API error wrapped generically",
			err:    fmt.Errorf("connection refused"),
			wantIs: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyAPIError(tt.err)
			assert.Error(t, got)

			if tt.wantIs != nil {
				assert.ErrorIs(t, got, tt.wantIs)
			}
			if tt.wantPlat {
				var perr *model.PlatformError
				assert.ErrorAs(t, got, &perr)
			}
			if tt.wantIs == nil && !tt.wantPlat {
				// Transport-level failures keep their original cause.
				assert.False(t, errors.Is(got, model.ErrQuotaExceeded))
				assert.False(t, errors.Is(got, model.ErrNotFound))
			}
		})
	}
}

func TestPlatformErrorMessagePassedThrough(t *testing.T) {
	got := classifyAPIError(&googleapi.Error{Code: 400, Message: "invalid filter parameter"})
	assert.Contains(t, got.Error(), "invalid filter parameter")
}

func TestNewYouTubeDataClientRequiresKey(t *testing.T) {
	_, err := NewYouTubeDataClient("")
	assert.Error(t, err)

	c, err := NewYouTubeDataClient("some-key")
	assert.NoError(t, err)
	assert.NotNil(t, c)
}
