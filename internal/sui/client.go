package sui

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/tidwall/gjson"

	"github.com/kelsos/sui-wallet/internal/config"
	"github.com/kelsos/sui-wallet/internal/logger"
)

// RPCError is an error object returned by the fullnode
type RPCError struct {
	Code    int64
	Message string
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

var ErrEmptyResult = errors.New("rpc returned an empty result")

// Client talks to a Sui fullnode over JSON-RPC 2.0
type Client struct {
	endpoint       string
	httpClient     *http.Client
	nextID         atomic.Int64
	gasBudget      uint64
	confirmRetries int
	confirmDelay   time.Duration
}

// NewClient creates a fullnode client with the given configuration
func NewClient(cfg *config.Config) *Client {
	return &Client{
		endpoint: cfg.RPCURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		gasBudget:      cfg.GasBudget,
		confirmRetries: cfg.ConfirmRetries,
		confirmDelay:   cfg.ConfirmDelay,
	}
}

type rpcRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      int64         `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

// call performs a JSON-RPC request and decodes the result into result, which
// may be nil. The raw result is returned for callers that read it with gjson.
func (c *Client) call(ctx context.Context, result interface{}, method string, params ...interface{}) (json.RawMessage, error) {
	if params == nil {
		params = []interface{}{}
	}

	payload, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      c.nextID.Add(1),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return nil, fmt.Errorf("error marshaling %s request: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("%s failed after %v: %v", method, time.Since(start), err)
		return nil, fmt.Errorf("%s request failed: %w", method, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s response: %w", method, err)
	}
	logger.Debug("%s completed in %v with status %d", method, time.Since(start), resp.StatusCode)

	if errMsg := gjson.GetBytes(data, "error.message"); errMsg.Exists() {
		return nil, &RPCError{
			Code:    gjson.GetBytes(data, "error.code").Int(),
			Message: errMsg.String(),
		}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: HTTP error %d: %s", method, resp.StatusCode, string(data))
	}

	raw := gjson.GetBytes(data, "result")
	if !raw.Exists() || raw.Type == gjson.Null {
		return nil, fmt.Errorf("%s: %w", method, ErrEmptyResult)
	}

	if result != nil {
		if err := json.Unmarshal([]byte(raw.Raw), result); err != nil {
			return nil, fmt.Errorf("error decoding %s result: %w", method, err)
		}
	}

	return json.RawMessage(raw.Raw), nil
}
