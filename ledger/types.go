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
	"fmt"
	"strings"
)

// TransactionType is the closed set of operations a transaction can
// represent.
type TransactionType uint8

const (
	TxTypeTransfer TransactionType = iota
	TxTypeCreditRequest
	TxTypeCreditSettlement
	TxTypeTokenMint
	TxTypeTokenBurn
)

// Wire labels appear inside the canonical signable bytes. Interchange
// tokens appear in the JSON objects exchanged with nodes. The two
// vocabularies are independently fixed contracts: neither is ever derived
// from the other by case transformation.
var (
	txTypeWireLabels = map[TransactionType]string{
		TxTypeTransfer:         "Transfer",
		TxTypeCreditRequest:    "CreditRequest",
		TxTypeCreditSettlement: "CreditSettlement",
		TxTypeTokenMint:        "TokenMint",
		TxTypeTokenBurn:        "TokenBurn",
	}
	txTypeTokens = map[TransactionType]string{
		TxTypeTransfer:         "transfer",
		TxTypeCreditRequest:    "credit_request",
		TxTypeCreditSettlement: "credit_settlement",
		TxTypeTokenMint:        "token_mint",
		TxTypeTokenBurn:        "token_burn",
	}
)

// WireLabel returns the fixed ASCII label embedded in signable bytes.
func (t TransactionType) WireLabel() string {
	return txTypeWireLabels[t]
}

// InterchangeToken returns the lowercase token used in the JSON
// interchange schema.
func (t TransactionType) InterchangeToken() string {
	return txTypeTokens[t]
}

func (t TransactionType) String() string {
	if label, ok := txTypeWireLabels[t]; ok {
		return label
	}
	return fmt.Sprintf("TransactionType(%d)", uint8(t))
}

// TransactionTypeFromToken maps an interchange token back to its variant.
func TransactionTypeFromToken(token string) (TransactionType, error) {
	for txType, t := range txTypeTokens {
		if t == token {
			return txType, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTransactionType, token)
}

// MaxCurrencyLength is the longest permitted currency ticker.
const MaxCurrencyLength = 12

// Amount is a monetary value in the smallest indivisible unit of its
// currency. The currency ticker is always stored upper case.
type Amount struct {
	Value    uint64 `json:"value"`
	Currency string `json:"currency"`
}

// NewAmount builds an Amount, normalizing the currency ticker to upper
// case. The ticker must be 1-12 characters of letters and digits.
func NewAmount(value uint64, currency string) (Amount, error) {
	currency = strings.ToUpper(currency)
	if len(currency) == 0 || len(currency) > MaxCurrencyLength {
		return Amount{}, fmt.Errorf(
			"%w: ticker must be 1-%d characters, got %d",
			ErrInvalidCurrency,
			MaxCurrencyLength,
			len(currency),
		)
	}
	for i := 0; i < len(currency); i++ {
		c := currency[i]
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return Amount{}, fmt.Errorf(
				"%w: ticker contains %q",
				ErrInvalidCurrency,
				c,
			)
		}
	}
	return Amount{
		Value:    value,
		Currency: currency,
	}, nil
}

func (a Amount) String() string {
	return fmt.Sprintf("%d %s", a.Value, a.Currency)
}
