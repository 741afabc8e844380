// Copyright 2025 Nova Foundation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package client provides an HTTP client for the node API: the REST
// endpoints (/health, /status, /blocks, /transactions, /accounts) and the
// JSON-RPC 2.0 gateway at /rpc.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/alissonlinneker/nova-protocol/ledger"
)

const defaultTimeout = 30 * time.Second

// Client talks to a single node. It is safe for concurrent use. The
// JSON-RPC request id counter is scoped to the client instance, so
// independent clients never share id sequences.
type Client struct {
	baseURL    string
	httpClient *http.Client
	requestID  atomic.Uint64
}

type ClientOptionFunc func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOptionFunc {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the per-request timeout on the default HTTP client.
func WithTimeout(timeout time.Duration) ClientOptionFunc {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// New creates a client for the node at baseURL.
func New(baseURL string, options ...ClientOptionFunc) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// Health reports node liveness via GET /health. Any transport error or
// non-200 response counts as unhealthy.
func (c *Client) Health(ctx context.Context) bool {
	resp, err := c.get(ctx, "/health")
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// Status fetches the node status summary via GET /status.
func (c *Client) Status(ctx context.Context) (*NodeStatus, error) {
	var status NodeStatus
	if err := c.getJSON(ctx, "/status", &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// Block fetches a block by height via GET /blocks/:height.
func (c *Client) Block(ctx context.Context, height uint64) (*Block, error) {
	var block Block
	err := c.getJSON(ctx, fmt.Sprintf("/blocks/%d", height), &block)
	if err != nil {
		var notFound *NotFoundError
		if errors.As(err, &notFound) {
			return nil, &NotFoundError{
				Resource: "block",
				Key:      fmt.Sprintf("height %d", height),
			}
		}
		return nil, err
	}
	return &block, nil
}

// Transaction fetches a transaction by hash via GET /transactions/:hash.
func (c *Client) Transaction(ctx context.Context, hash string) (*TransactionInfo, error) {
	var info TransactionInfo
	err := c.getJSON(ctx, "/transactions/"+hash, &info)
	if err != nil {
		var notFound *NotFoundError
		if errors.As(err, &notFound) {
			return nil, &NotFoundError{Resource: "transaction", Key: hash}
		}
		return nil, err
	}
	return &info, nil
}

// Account fetches account state via GET /accounts/:address.
func (c *Client) Account(ctx context.Context, address string) (*Account, error) {
	var account Account
	err := c.getJSON(ctx, "/accounts/"+address, &account)
	if err != nil {
		var notFound *NotFoundError
		if errors.As(err, &notFound) {
			return nil, &NotFoundError{Resource: "account", Key: address}
		}
		return nil, err
	}
	return &account, nil
}

// BlockHeight returns the latest confirmed block height (nova_blockHeight).
func (c *Client) BlockHeight(ctx context.Context) (uint64, error) {
	var height uint64
	if err := c.rpcCall(ctx, "nova_blockHeight", nil, &height); err != nil {
		return 0, err
	}
	return height, nil
}

// NetworkID returns the network identifier (nova_networkId).
func (c *Client) NetworkID(ctx context.Context) (string, error) {
	var networkID string
	if err := c.rpcCall(ctx, "nova_networkId", nil, &networkID); err != nil {
		return "", err
	}
	return networkID, nil
}

// Version returns the node software version (nova_version).
func (c *Client) Version(ctx context.Context) (string, error) {
	var version string
	if err := c.rpcCall(ctx, "nova_version", nil, &version); err != nil {
		return "", err
	}
	return version, nil
}

// Balance queries the native balance for address (nova_getBalance). The
// node may answer with either a bare number or a {"balance": n} object.
func (c *Client) Balance(ctx context.Context, address string) (uint64, error) {
	var raw json.RawMessage
	err := c.rpcCall(ctx, "nova_getBalance", []any{address}, &raw)
	if err != nil {
		return 0, err
	}
	var balance uint64
	if json.Unmarshal(raw, &balance) == nil {
		return balance, nil
	}
	var wrapped struct {
		Balance uint64 `json:"balance"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return 0, fmt.Errorf("unexpected balance result: %w", err)
	}
	return wrapped.Balance, nil
}

// SendTransaction broadcasts a signed transaction (nova_sendTransaction).
func (c *Client) SendTransaction(
	ctx context.Context,
	signed ledger.SignedTransaction,
) (*SendResult, error) {
	var result SendResult
	err := c.rpcCall(ctx, "nova_sendTransaction", []any{signed}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

type rpcRequest struct {
	Jsonrpc string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
	ID      uint64 `json:"id"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *RPCError       `json:"error"`
}

func (c *Client) rpcCall(
	ctx context.Context,
	method string,
	params []any,
	result any,
) error {
	if params == nil {
		params = []any{}
	}
	body, err := json.Marshal(rpcRequest{
		Jsonrpc: "2.0",
		Method:  method,
		Params:  params,
		ID:      c.requestID.Add(1),
	})
	if err != nil {
		return fmt.Errorf("encode rpc request: %w", err)
	}
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/rpc",
		bytes.NewReader(body),
	)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &ConnectionError{URL: c.baseURL, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("rpc endpoint returned HTTP %d", resp.StatusCode)
	}
	var rpcResp rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&rpcResp); err != nil {
		return fmt.Errorf("decode rpc response: %w", err)
	}
	if rpcResp.Error != nil {
		return rpcResp.Error
	}
	if result == nil {
		return nil
	}
	if err := json.Unmarshal(rpcResp.Result, result); err != nil {
		return fmt.Errorf("decode rpc result: %w", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		c.baseURL+path,
		nil,
	)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ConnectionError{URL: c.baseURL, Err: err}
	}
	return resp, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	resp, err := c.get(ctx, path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	switch {
	case resp.StatusCode == http.StatusNotFound:
		io.Copy(io.Discard, resp.Body)
		return &NotFoundError{Resource: "resource", Key: path}
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("%s returned HTTP %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
