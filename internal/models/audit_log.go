package models

import "time"

// AuditLog records a point operation that was rejected before touching
// the balance or the history.
type AuditLog struct {
	ID        string          `json:"id" dynamodbav:"id"`
	UserID    int64           `json:"user_id" dynamodbav:"user_id"`
	Action    TransactionType `json:"action" dynamodbav:"action"`
	Amount    int64           `json:"amount" dynamodbav:"amount"`
	Reason    string          `json:"reason" dynamodbav:"reason"`
	Details   map[string]any  `json:"details,omitempty" dynamodbav:"details,omitempty"`
	CreatedAt time.Time       `json:"created_at" dynamodbav:"created_at"`
}
