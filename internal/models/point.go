package models

import (
	"encoding/json"
	"fmt"
)

type UserPoint struct {
	ID           int64 `json:"id" dynamodbav:"id"`
	Point        int64 `json:"point" dynamodbav:"point"`
	UpdateMillis int64 `json:"updateMillis" dynamodbav:"update_millis"`
}

// EmptyUserPoint is the implicit balance of a user that was never charged.
func EmptyUserPoint(id int64) UserPoint {
	return UserPoint{ID: id}
}

type TransactionType string

const (
	TxnCharge TransactionType = "CHARGE"
	TxnUse    TransactionType = "USE"
)

func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case TxnCharge, TxnUse:
		return TransactionType(s), nil
	}
	return "", fmt.Errorf("unknown transaction type %q", s)
}

func (t *TransactionType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := ParseTransactionType(s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// PointHistory is one immutable entry of a user's point ledger.
type PointHistory struct {
	ID         int64           `json:"id" dynamodbav:"seq"`
	UserID     int64           `json:"userId" dynamodbav:"user_id"`
	Amount     int64           `json:"amount" dynamodbav:"amount"`
	Type       TransactionType `json:"type" dynamodbav:"type"`
	TimeMillis int64           `json:"timeMillis" dynamodbav:"time_millis"`
}
