package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointHistoryJSON(t *testing.T) {
	t.Run("Round Trip", func(t *testing.T) {
		h := PointHistory{ID: 3, UserID: 1, Amount: 40, Type: TxnUse, TimeMillis: 1700}

		b, err := json.Marshal(h)
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":3,"userId":1,"amount":40,"type":"USE","timeMillis":1700}`, string(b))

		var got PointHistory
		require.NoError(t, json.Unmarshal(b, &got))
		assert.Equal(t, h, got)
	})

	t.Run("Unknown Type", func(t *testing.T) {
		var got PointHistory
		err := json.Unmarshal([]byte(`{"id":1,"type":"REFUND"}`), &got)

		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown transaction type "REFUND"`)
	})

	t.Run("Type Must Be String", func(t *testing.T) {
		var typ TransactionType
		assert.Error(t, json.Unmarshal([]byte(`1`), &typ))
	})
}

func TestParseTransactionType(t *testing.T) {
	typ, err := ParseTransactionType("CHARGE")
	require.NoError(t, err)
	assert.Equal(t, TxnCharge, typ)

	_, err = ParseTransactionType("charge")
	assert.Error(t, err)
}
