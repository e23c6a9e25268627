package records

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/cmdengine/internal/command"
	"github.com/dshills/cmdengine/internal/queue"
)

func TestStore(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Add("a"))
	require.NoError(t, s.Add("b"))
	assert.ErrorIs(t, s.Add("a"), ErrDuplicate)
	assert.ErrorIs(t, s.Add(""), ErrEmpty)

	require.NoError(t, s.Insert(1, "x"))
	assert.Equal(t, []string{"a", "x", "b"}, s.Records())

	i, err := s.Remove("x")
	require.NoError(t, err)
	assert.Equal(t, 1, i)
	_, err = s.Remove("x")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.True(t, s.Contains("b"))
	assert.Equal(t, 2, s.Len())
}

func TestRemoveCommandRestoresPosition(t *testing.T) {
	s := NewStore()
	for _, r := range []string{"one", "two", "three"} {
		require.NoError(t, s.Add(r))
	}

	cmd := NewRemoveCommand(s, "two")
	require.NoError(t, cmd.Execute())
	assert.Equal(t, []string{"one", "three"}, s.Records())
	require.NoError(t, cmd.Undo())
	assert.Equal(t, []string{"one", "two", "three"}, s.Records())
	assert.Equal(t, "Remove record: two", cmd.Description())
}

func TestTransactionalAdds(t *testing.T) {
	s := NewStore()
	tx1 := command.NewTransaction(NewAddCommand(s, "Record 1"))
	tx2 := command.NewTransaction(NewAddCommand(s, "Record 2"))

	require.NoError(t, tx1.Commit())
	require.NoError(t, tx2.Commit())
	assert.Equal(t, []string{"Record 1", "Record 2"}, s.Records())

	require.NoError(t, tx2.Rollback())
	assert.Equal(t, command.StateRolledBack, tx2.State())
	assert.Equal(t, []string{"Record 1"}, s.Records())
}

func TestTransactionDuplicateFailsCleanly(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Add("dup"))

	tx := command.NewTransaction(NewAddCommand(s, "dup"))
	err := tx.Commit()

	var ce *command.CommitError
	require.True(t, errors.As(err, &ce))
	assert.ErrorIs(t, ce.Exec, ErrDuplicate)
	assert.True(t, ce.RolledBack())
	assert.Equal(t, command.StatePending, tx.State())
	assert.Equal(t, []string{"dup"}, s.Records())
}

func TestTransactionOfMacro(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Add("existing"))

	batch := command.NewMacro("import",
		NewAddCommand(s, "r1"),
		NewAddCommand(s, "r2"),
		NewAddCommand(s, "existing"),
	)
	tx := command.NewTransaction(batch)

	err := tx.Commit()
	require.Error(t, err)
	var se *command.StepError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 2, se.Step)

	// The transaction rolled back the partially applied macro.
	assert.Equal(t, []string{"existing"}, s.Records())
	assert.Equal(t, 0, batch.Applied())
}

func TestQueuedAdds(t *testing.T) {
	s := NewStore()
	q := queue.New()
	for _, r := range []string{"a", "b", "c", "d"} {
		require.NoError(t, q.Enqueue(NewAddCommand(s, r)))
	}
	require.NoError(t, q.Close())
	assert.Equal(t, []string{"a", "b", "c", "d"}, s.Records())
}
