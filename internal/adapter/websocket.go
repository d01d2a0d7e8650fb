package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/coder/websocket"

	"github.com/dkozyrev/tablesync/internal/config"
	"github.com/dkozyrev/tablesync/internal/logger"
	"github.com/dkozyrev/tablesync/models"
)

type websocketChannel struct {
	endpoint string
	tokenFn  func() string
	logger   *logger.Logger

	mu   sync.Mutex
	conn *websocket.Conn
}

// NewWebsocketChannel constructs the live update [LiveChannel] over a
// websocket. The endpoint is cfg.WebsocketURL, or derived from cfg.BaseURL by
// swapping the scheme to ws/wss when unset. tokenFn supplies the current
// access token at dial time, so a renewed session is picked up on reconnect.
func NewWebsocketChannel(cfg config.API, tokenFn func() string, log *logger.Logger) (LiveChannel, error) {
	endpoint := cfg.WebsocketURL
	if endpoint == "" {
		derived, err := deriveWebsocketURL(cfg.BaseURL)
		if err != nil {
			return nil, err
		}
		endpoint = derived
	}

	return &websocketChannel{endpoint: endpoint, tokenFn: tokenFn, logger: log}, nil
}

func deriveWebsocketURL(baseURL string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("derive websocket url: %w", err)
	}

	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/v1/cable"

	return u.String(), nil
}

func (c *websocketChannel) Subscribe(ctx context.Context, channel string) (<-chan models.ChannelMessage, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse websocket endpoint: %w", err)
	}

	q := u.Query()
	q.Set("channel", channel)
	if token := c.tokenFn(); token != "" {
		q.Set("access_token", token)
	}
	u.RawQuery = q.Encode()

	conn, _, err := websocket.Dial(ctx, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("dial live channel: %w", err)
	}

	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()

	out := make(chan models.ChannelMessage)
	go c.readLoop(ctx, conn, out)

	return out, nil
}

func (c *websocketChannel) readLoop(ctx context.Context, conn *websocket.Conn, out chan<- models.ChannelMessage) {
	defer close(out)
	defer conn.Close(websocket.StatusNormalClosure, "")

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			c.logger.Debug().
				Str("func", "websocketChannel.readLoop").
				Err(err).
				Msg("live channel closed")
			return
		}

		var msg models.ChannelMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			// Malformed frames are dropped, never propagated.
			c.logger.Debug().
				Str("func", "websocketChannel.readLoop").
				Err(err).
				Msg("dropping malformed live channel frame")
			continue
		}

		select {
		case out <- msg:
		case <-ctx.Done():
			return
		}
	}
}

func (c *websocketChannel) Close() error {
	c.mu.Lock()
	conn := c.conn
	c.conn = nil
	c.mu.Unlock()

	if conn != nil {
		return conn.Close(websocket.StatusNormalClosure, "")
	}
	return nil
}
