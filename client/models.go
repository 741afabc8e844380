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

package client

import "fmt"

// NodeStatus is the payload of GET /status.
type NodeStatus struct {
	Version     string `json:"version"`
	Network     string `json:"network"`
	BlockHeight uint64 `json:"block_height"`
	PeerCount   int    `json:"peer_count"`
	Synced      bool   `json:"synced"`
}

// Block is the payload of GET /blocks/:height.
type Block struct {
	Height     uint64 `json:"height"`
	Hash       string `json:"hash"`
	ParentHash string `json:"parent_hash"`
	Proposer   string `json:"proposer"`
	TxCount    int    `json:"tx_count"`
	Timestamp  uint64 `json:"timestamp"`
	StateRoot  string `json:"state_root,omitempty"`
}

// TransactionInfo is the payload of GET /transactions/:hash.
type TransactionInfo struct {
	Hash        string `json:"hash"`
	Sender      string `json:"sender"`
	Recipient   string `json:"recipient"`
	Amount      uint64 `json:"amount"`
	Fee         uint64 `json:"fee"`
	BlockHeight uint64 `json:"block_height,omitempty"`
	Status      string `json:"status,omitempty"`
	Timestamp   uint64 `json:"timestamp,omitempty"`
}

// Account is the payload of GET /accounts/:address.
type Account struct {
	Address string `json:"address"`
	Balance uint64 `json:"balance"`
	Nonce   uint64 `json:"nonce"`
}

// SendResult is the result of the nova_sendTransaction RPC method.
type SendResult struct {
	TxHash string `json:"tx_hash"`
	Status string `json:"status"`
}

// ConnectionError wraps transport-level failures reaching the node.
type ConnectionError struct {
	URL string
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("cannot reach %s: %s", e.URL, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// NotFoundError reports a REST 404 for a specific resource.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.Key)
}

// RPCError is a JSON-RPC 2.0 error object returned by the node.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}
