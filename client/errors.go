package client

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/api/googleapi"

	"github.com/researchaccelerator-hub/channel-categorizer/model"
)

// classifyAPIError maps an error returned by the YouTube API client onto the
// pipeline's failure taxonomy: quota exhaustion and missing resources are
// surfaced as their sentinels, everything else the API reported becomes a
// PlatformError with the message passed through verbatim.
func classifyAPIError(err error) error {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return fmt.Errorf("youtube API request failed: %w", err)
	}

	for _, item := range apiErr.Errors {
		if item.Reason == "quotaExceeded" {
			return model.ErrQuotaExceeded
		}
	}
	// Some quota responses only carry the reason in the message body.
	if apiErr.Code == http.StatusForbidden && strings.Contains(apiErr.Message, "quota") {
		return model.ErrQuotaExceeded
	}

	if apiErr.Code == http.StatusNotFound {
		return model.NotFoundError("resource not found")
	}

	return &model.PlatformError{Message: apiErr.Message}
}
