package transaction

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_String(t *testing.T) {
	assert.Equal(t, "Deposit", KindDeposit.String())
	assert.Equal(t, "Withdrawal", KindWithdrawal.String())
	assert.Equal(t, "Unknown", Kind(9).String())
}

func TestTable_InsertAssignsSequencePerAccount(t *testing.T) {
	table := NewTable()
	alice := uuid.Must(uuid.NewV4())
	bob := uuid.Must(uuid.NewV4())

	first, err := table.Insert(context.Background(), &TransactionCreate{AccountID: alice, Kind: KindDeposit, Amount: decimal.NewFromInt(10)})
	require.NoError(t, err)
	other, err := table.Insert(context.Background(), &TransactionCreate{AccountID: bob, Kind: KindDeposit, Amount: decimal.NewFromInt(1)})
	require.NoError(t, err)
	second, err := table.Insert(context.Background(), &TransactionCreate{AccountID: alice, Kind: KindWithdrawal, Amount: decimal.NewFromInt(-4)})
	require.NoError(t, err)

	assert.Equal(t, 1, first.Sequence)
	assert.Equal(t, 1, other.Sequence)
	assert.Equal(t, 2, second.Sequence)
	assert.NotEqual(t, first.ID, second.ID)
	assert.False(t, first.CreatedAt.IsZero())
}

func TestTable_ListByAccount(t *testing.T) {
	table := NewTable()
	alice := uuid.Must(uuid.NewV4())

	empty, err := table.ListByAccount(context.Background(), alice)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	for _, amount := range []string{"1.10", "2.20", "-3.30"} {
		_, err := table.Insert(context.Background(), &TransactionCreate{AccountID: alice, Amount: decimal.RequireFromString(amount)})
		require.NoError(t, err)
	}

	rows, err := table.ListByAccount(context.Background(), alice)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "1.10", rows[0].Amount.StringFixed(2))
	assert.Equal(t, "-3.30", rows[2].Amount.StringFixed(2))

	rows[0].Amount = decimal.NewFromInt(99)
	again, err := table.ListByAccount(context.Background(), alice)
	require.NoError(t, err)
	assert.Equal(t, "1.10", again[0].Amount.StringFixed(2), "returned rows are copies")
}

func TestWriter_CommitAndDiscard(t *testing.T) {
	table := NewTable()
	alice := uuid.Must(uuid.NewV4())
	writer := NewWriter(table)

	writer.Insert(context.Background(), &TransactionCreate{AccountID: alice, Amount: decimal.NewFromInt(1)})
	writer.Discard()
	assert.Equal(t, 0, writer.Pending())

	writer.Insert(context.Background(), &TransactionCreate{AccountID: alice, Amount: decimal.NewFromInt(2)})
	inserted, err := writer.Commit(context.Background())
	require.NoError(t, err)
	require.Len(t, inserted, 1)
	assert.Equal(t, 1, inserted[0].Sequence)

	rows, err := table.ListByAccount(context.Background(), alice)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
