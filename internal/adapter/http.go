package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/dkozyrev/tablesync/internal/config"
	"github.com/dkozyrev/tablesync/internal/logger"
	"github.com/dkozyrev/tablesync/models"
)

type httpServerAdapter struct {
	client *resty.Client
	logger *logger.Logger

	mu    sync.RWMutex
	token string

	// onTokenRenewed, when set, persists a freshly renewed access token.
	onTokenRenewed func(token string)
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
// It normalises and validates the base URL and configures the underlying
// resty client with the resolved base URL and request timeout.
func NewHTTPServerAdapter(cfg config.API, log *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &httpServerAdapter{client: cli, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// OnTokenRenewed registers the hook persisting renewed access tokens.
func (h *httpServerAdapter) OnTokenRenewed(fn func(token string)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onTokenRenewed = fn
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) GetTable(ctx context.Context, tableID, page int) (models.TableResponse, error) {
	resp, err := h.doWithRenew(ctx, func(req *resty.Request) (*resty.Response, error) {
		return req.
			SetQueryParam("page", strconv.Itoa(page)).
			Get("/v1/table/" + strconv.Itoa(tableID))
	})
	if err != nil {
		return models.TableResponse{}, fmt.Errorf("get table %d page %d: %w", tableID, page, err)
	}

	var table models.TableResponse
	if err = json.Unmarshal(resp.Body(), &table); err != nil {
		return models.TableResponse{}, fmt.Errorf("decode table response: %w", err)
	}
	return table, nil
}

func (h *httpServerAdapter) GetTableObject(ctx context.Context, uuid string) (models.TableObjectResponse, error) {
	resp, err := h.doWithRenew(ctx, func(req *resty.Request) (*resty.Response, error) {
		return req.Get("/v1/table_object/" + uuid)
	})
	if err != nil {
		return models.TableObjectResponse{}, fmt.Errorf("get table object %s: %w", uuid, err)
	}

	return decodeTableObjectResponse(resp)
}

func (h *httpServerAdapter) CreateTableObject(ctx context.Context, createReq models.CreateTableObjectRequest) (models.TableObjectResponse, error) {
	resp, err := h.doWithRenew(ctx, func(req *resty.Request) (*resty.Response, error) {
		return req.
			SetHeader("Content-Type", "application/json").
			SetBody(createReq).
			Post("/v1/table_object")
	})
	if err != nil {
		return models.TableObjectResponse{}, fmt.Errorf("create table object %s: %w", createReq.UUID, err)
	}

	return decodeTableObjectResponse(resp)
}

func (h *httpServerAdapter) UpdateTableObject(ctx context.Context, updateReq models.UpdateTableObjectRequest) (models.TableObjectResponse, error) {
	resp, err := h.doWithRenew(ctx, func(req *resty.Request) (*resty.Response, error) {
		return req.
			SetHeader("Content-Type", "application/json").
			SetBody(updateReq).
			Put("/v1/table_object/" + updateReq.UUID)
	})
	if err != nil {
		return models.TableObjectResponse{}, fmt.Errorf("update table object %s: %w", updateReq.UUID, err)
	}

	return decodeTableObjectResponse(resp)
}

func (h *httpServerAdapter) DeleteTableObject(ctx context.Context, uuid string) error {
	_, err := h.doWithRenew(ctx, func(req *resty.Request) (*resty.Response, error) {
		return req.Delete("/v1/table_object/" + uuid)
	})
	if err != nil {
		return fmt.Errorf("delete table object %s: %w", uuid, err)
	}
	return nil
}

func (h *httpServerAdapter) SetTableObjectFile(ctx context.Context, uuid, filePath, contentType string) (models.TableObjectResponse, error) {
	resp, err := h.doWithRenew(ctx, func(req *resty.Request) (*resty.Response, error) {
		f, err := os.Open(filePath)
		if err != nil {
			return nil, fmt.Errorf("open blob file: %w", err)
		}
		defer f.Close()

		return req.
			SetHeader("Content-Type", contentType).
			SetBody(f).
			Put("/v1/table_object/" + uuid + "/file")
	})
	if err != nil {
		return models.TableObjectResponse{}, fmt.Errorf("set table object file %s: %w", uuid, err)
	}

	return decodeTableObjectResponse(resp)
}

func (h *httpServerAdapter) DownloadTableObjectFile(ctx context.Context, uuid string, w io.Writer, progress func(written, total int64)) error {
	send := func() (*resty.Response, error) {
		return h.authedRequest(ctx).
			SetDoNotParseResponse(true).
			Get("/v1/table_object/" + uuid + "/file")
	}

	resp, err := send()
	if err != nil {
		return fmt.Errorf("download file %s: %w", uuid, err)
	}
	if resp.StatusCode() == 403 || resp.StatusCode() == 401 {
		resp.RawBody().Close()
		if err = h.renewSession(ctx); err != nil {
			return fmt.Errorf("download file %s: %w", uuid, ErrSessionExpired)
		}
		if resp, err = send(); err != nil {
			return fmt.Errorf("download file %s: %w", uuid, err)
		}
	}
	defer resp.RawBody().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return fmt.Errorf("download file %s: http %d", uuid, resp.StatusCode())
	}

	total := int64(-1)
	if resp.RawResponse != nil && resp.RawResponse.ContentLength > 0 {
		total = resp.RawResponse.ContentLength
	}

	var written int64
	buf := make([]byte, 32*1024)
	for {
		n, readErr := resp.RawBody().Read(buf)
		if n > 0 {
			if _, writeErr := w.Write(buf[:n]); writeErr != nil {
				return fmt.Errorf("write blob %s: %w", uuid, writeErr)
			}
			written += int64(n)
			if progress != nil {
				progress(written, total)
			}
		}
		if readErr == io.EOF {
			return nil
		}
		if readErr != nil {
			return fmt.Errorf("read blob %s: %w", uuid, readErr)
		}
	}
}

func (h *httpServerAdapter) GetUser(ctx context.Context) (models.User, error) {
	resp, err := h.doWithRenew(ctx, func(req *resty.Request) (*resty.Response, error) {
		return req.Get("/v1/user")
	})
	if err != nil {
		return models.User{}, fmt.Errorf("get user: %w", err)
	}

	var user models.User
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("decode user response: %w", err)
	}
	return user, nil
}

// doWithRenew executes send with an authenticated request, renewing the
// session once when the server answers with the "must renew" code, and
// retrying the original call with the fresh token. A token whose exp claim
// already passed is renewed before the first attempt to save a round trip.
func (h *httpServerAdapter) doWithRenew(ctx context.Context, send func(req *resty.Request) (*resty.Response, error)) (*resty.Response, error) {
	if h.tokenExpired() {
		// Best effort; the server is authoritative about expiry.
		_ = h.renewSession(ctx)
	}

	resp, err := send(h.authedRequest(ctx))
	if err != nil {
		return nil, err
	}

	mapped := mapHTTPError(resp)
	if !errors.Is(mapped, ErrSessionExpired) {
		return resp, mapped
	}

	if err = h.renewSession(ctx); err != nil {
		return nil, mapped
	}

	resp, err = send(h.authedRequest(ctx))
	if err != nil {
		return nil, err
	}
	return resp, mapHTTPError(resp)
}

func (h *httpServerAdapter) renewSession(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Put("/v1/session/renew")
	if err != nil {
		return fmt.Errorf("renew session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("renew session: %w", err)
	}

	var session models.SessionResponse
	if err = json.Unmarshal(resp.Body(), &session); err != nil {
		return fmt.Errorf("decode session response: %w", err)
	}
	if session.AccessToken == "" {
		return fmt.Errorf("renew session: empty access token")
	}

	h.SetToken(session.AccessToken)

	h.mu.RLock()
	hook := h.onTokenRenewed
	h.mu.RUnlock()
	if hook != nil {
		hook(session.AccessToken)
	}

	h.logger.Debug().Str("func", "httpServerAdapter.renewSession").Msg("access token renewed")
	return nil
}

// tokenExpired reports whether the held token is a JWT whose exp claim is in
// the past. Opaque or claim-less tokens are treated as valid.
func (h *httpServerAdapter) tokenExpired() bool {
	token := h.Token()
	if token == "" {
		return false
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return false
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func decodeTableObjectResponse(resp *resty.Response) (models.TableObjectResponse, error) {
	var out models.TableObjectResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return models.TableObjectResponse{}, fmt.Errorf("decode table object response: %w", err)
	}
	return out, nil
}
