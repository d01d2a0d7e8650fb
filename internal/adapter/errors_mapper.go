package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/dkozyrev/tablesync/models"
)

// mapHTTPError translates a backend response into a sentinel error. The
// structured error codes in the body take precedence over the HTTP status:
// conflict handling keys on codes, not on status classes.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	var errResp models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &errResp); err == nil && len(errResp.Errors) > 0 {
		switch {
		case errResp.HasCode(models.APIErrorAccessTokenMustBeRenewed):
			return ErrSessionExpired
		case errResp.HasCode(models.APIErrorUuidAlreadyInUse):
			return ErrUuidAlreadyInUse
		case errResp.HasCode(models.APIErrorTableObjectDoesNotExist):
			return ErrTableObjectDoesNotExist
		case errResp.HasCode(models.APIErrorActionNotAllowed):
			return ErrActionNotAllowed
		}
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		if resp.StatusCode() >= http.StatusInternalServerError {
			return fmt.Errorf("%w: http %d: %s", ErrServer, resp.StatusCode(), body)
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}
