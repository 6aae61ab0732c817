package wallet

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// rpcProvider implements Provider over JSON-RPC 2.0 on HTTP, the transport
// exposed by wallet bridges and local signer nodes.
type rpcProvider struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewRPCProvider creates a Provider that posts JSON-RPC requests to
// cfg.Endpoint. When no endpoint is configured it returns Unavailable.
func NewRPCProvider(cfg Config, observer Observer) Provider {
	if !cfg.Enabled() {
		return Unavailable{}
	}
	if observer == nil {
		observer = NoopObserver{}
	}
	return &rpcProvider{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// rpcRequest is the JSON body of every call.
type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  Method `json:"method"`
	Params  []any  `json:"params"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      string          `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *RPCError       `json:"error"`
}

func (p *rpcProvider) Accounts(ctx context.Context) ([]string, error) {
	var accounts []string
	if err := p.call(ctx, MethodAccounts, nil, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (p *rpcProvider) RequestAccounts(ctx context.Context) ([]string, error) {
	var accounts []string
	if err := p.call(ctx, MethodRequestAccounts, nil, &accounts); err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, ErrNoAccounts
	}
	return accounts, nil
}

func (p *rpcProvider) SendTransaction(ctx context.Context, tx Tx) (string, error) {
	var hash string
	if err := p.call(ctx, MethodSendTransaction, []any{tx}, &hash); err != nil {
		return "", err
	}
	if hash == "" {
		return "", fmt.Errorf("%w: empty transaction hash", ErrRequestFailed)
	}
	return hash, nil
}

func (p *rpcProvider) call(ctx context.Context, method Method, params []any, out any) error {
	start := time.Now()
	id := uuid.New().String()

	timeoutMs := p.cfg.MethodTimeout(method)
	ctx, cancel := context.WithTimeout(ctx, time.Duration(timeoutMs)*time.Millisecond)
	defer cancel()

	if params == nil {
		params = []any{}
	}
	err := p.doRequest(ctx, rpcRequest{JSONRPC: "2.0", ID: id, Method: method, Params: params}, out)

	p.observer.OnCallComplete(CallEvent{
		Method:    method,
		RequestID: id,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
		ErrorCode: errorCode(err),
	})
	return err
}

func (p *rpcProvider) doRequest(ctx context.Context, body rpcRequest, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.Endpoint, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: creating request: %w", ErrProviderUnavailable, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := p.http.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%w: %s: %w", ErrRequestFailed, body.Method, ctx.Err())
		}
		if isConnectionError(err) {
			return fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
		}
		return fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %w", ErrRequestFailed, err)
	}

	var resp rpcResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		if httpResp.StatusCode != http.StatusOK {
			return fmt.Errorf("%w: provider returned status %d: %s", ErrRequestFailed, httpResp.StatusCode, string(respBody))
		}
		return fmt.Errorf("%w: decoding response: %w", ErrRequestFailed, err)
	}
	if resp.Error != nil {
		return resp.Error.classify()
	}
	if httpResp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: provider returned status %d", ErrRequestFailed, httpResp.StatusCode)
	}
	if resp.ID != body.ID {
		return fmt.Errorf("%w: response id %q does not match request %q", ErrRequestFailed, resp.ID, body.ID)
	}

	if len(resp.Result) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Result, out); err != nil {
		return fmt.Errorf("%w: decoding %s result: %w", ErrRequestFailed, body.Method, err)
	}
	return nil
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}
