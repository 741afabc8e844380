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

package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReportsAllMissingFields(t *testing.T) {
	_, err := NewTxBuilder().Build()
	var missingErr *MissingFieldsError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(
		t,
		[]string{"type", "sender", "receiver", "amount", "nonce"},
		missingErr.Fields,
	)
}

func TestBuildReportsPartialMissingFields(t *testing.T) {
	amount, err := NewAmount(10, "NOVA")
	require.NoError(t, err)
	_, err = NewTxBuilder().
		Type(TxTypeTransfer).
		Amount(amount).
		Build()
	var missingErr *MissingFieldsError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, []string{"sender", "receiver", "nonce"}, missingErr.Fields)
}

func TestBuildDefaults(t *testing.T) {
	amount, err := NewAmount(10, "NOVA")
	require.NoError(t, err)
	before := uint64(time.Now().UnixMilli())
	tx, err := NewTxBuilder().
		Type(TxTypeTransfer).
		Sender("nova1aaaa").
		Receiver("nova1bbbb").
		Amount(amount).
		Nonce(7).
		Build()
	require.NoError(t, err)
	after := uint64(time.Now().UnixMilli())

	assert.Equal(t, TransactionVersion, tx.Version)
	assert.Equal(t, uint64(0), tx.Fee)
	assert.Empty(t, tx.Payload)
	assert.GreaterOrEqual(t, tx.Timestamp, before)
	assert.LessOrEqual(t, tx.Timestamp, after)
}

func TestBuildZeroNonceIsSet(t *testing.T) {
	// Nonce(0) counts as set: "missing" and "zero" are different things.
	amount, err := NewAmount(10, "NOVA")
	require.NoError(t, err)
	tx, err := NewTxBuilder().
		Type(TxTypeTransfer).
		Sender("nova1aaaa").
		Receiver("nova1bbbb").
		Amount(amount).
		Nonce(0).
		Build()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), tx.Nonce)
}

func TestBuilderExplicitValues(t *testing.T) {
	amount, err := NewAmount(123, "USD")
	require.NoError(t, err)
	tx, err := NewTxBuilder().
		Version(3).
		Type(TxTypeCreditSettlement).
		Sender("nova1aaaa").
		Receiver("nova1bbbb").
		Amount(amount).
		Fee(55).
		Nonce(9).
		Timestamp(1_700_000_000_000).
		Payload([]byte("memo")).
		Build()
	require.NoError(t, err)
	assert.Equal(t, uint16(3), tx.Version)
	assert.Equal(t, TxTypeCreditSettlement, tx.Type)
	assert.Equal(t, uint64(55), tx.Fee)
	assert.Equal(t, uint64(9), tx.Nonce)
	assert.Equal(t, uint64(1_700_000_000_000), tx.Timestamp)
	assert.Equal(t, []byte("memo"), tx.Payload)
}
