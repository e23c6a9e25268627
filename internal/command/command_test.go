package command

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder logs execute and undo calls in order.
type recorder struct {
	calls []string
}

func (r *recorder) cmd(name string) *Func {
	return New(name,
		func() error { r.calls = append(r.calls, "exec:"+name); return nil },
		func() error { r.calls = append(r.calls, "undo:"+name); return nil },
	)
}

func (r *recorder) failing(name string, err error) *Func {
	return New(name,
		func() error { r.calls = append(r.calls, "exec:"+name); return err },
		func() error { r.calls = append(r.calls, "undo:"+name); return nil },
	)
}

func (r *recorder) reset() {
	r.calls = nil
}

var errBoom = errors.New("boom")

// Func

func TestFuncRoundTrip(t *testing.T) {
	value := 0
	cmd := New("add 5",
		func() error { value += 5; return nil },
		func() error { value -= 5; return nil },
	)

	require.NoError(t, cmd.Execute())
	assert.Equal(t, 5, value)
	require.NoError(t, cmd.Undo())
	assert.Equal(t, 0, value)
	assert.Equal(t, 1, cmd.Runs())
	assert.Equal(t, 1, cmd.Undone())
	assert.Equal(t, "add 5", cmd.Description())
}

func TestFuncNilUndo(t *testing.T) {
	cmd := New("fire", func() error { return nil }, nil)
	require.NoError(t, cmd.Execute())
	assert.NoError(t, cmd.Undo())
	assert.Equal(t, 0, cmd.Undone())
}

func TestFuncExecuteError(t *testing.T) {
	cmd := New("fail", func() error { return errBoom }, nil)
	assert.ErrorIs(t, cmd.Execute(), errBoom)
	assert.Equal(t, 0, cmd.Runs())
}

// Macro

func TestMacroOrder(t *testing.T) {
	r := &recorder{}
	m := NewMacro("format", r.cmd("c1"), r.cmd("c2"), r.cmd("c3"))

	require.NoError(t, m.Execute())
	assert.Equal(t, []string{"exec:c1", "exec:c2", "exec:c3"}, r.calls)
	assert.Equal(t, 3, m.Applied())

	r.reset()
	require.NoError(t, m.Undo())
	assert.Equal(t, []string{"undo:c3", "undo:c2", "undo:c1"}, r.calls)
	assert.Equal(t, 0, m.Applied())
}

func TestMacroAdd(t *testing.T) {
	r := &recorder{}
	m := NewMacro("build")
	assert.True(t, m.IsEmpty())

	require.NoError(t, m.Add(r.cmd("a")))
	require.NoError(t, m.Add(r.cmd("b")))
	assert.Equal(t, 2, m.Len())
	assert.ErrorIs(t, m.Add(nil), ErrNilCommand)

	require.NoError(t, m.Execute())
	assert.ErrorIs(t, m.Add(r.cmd("late")), ErrMacroExecuted)
	assert.Equal(t, 2, m.Len())
}

func TestMacroPartialFailure(t *testing.T) {
	r := &recorder{}
	m := NewMacro("partial", r.cmd("c1"), r.failing("c2", errBoom), r.cmd("c3"))

	err := m.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, errBoom)

	var se *StepError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 1, se.Step)
	assert.False(t, se.Undo)

	// c1 stays applied; no automatic rollback.
	assert.Equal(t, []string{"exec:c1", "exec:c2"}, r.calls)
	assert.Equal(t, 1, m.Applied())

	r.reset()
	require.NoError(t, m.Undo())
	assert.Equal(t, []string{"undo:c1"}, r.calls)
}

func TestMacroUndoFailure(t *testing.T) {
	r := &recorder{}
	bad := New("bad",
		func() error { return nil },
		func() error { return errBoom },
	)
	m := NewMacro("undo-fail", r.cmd("c1"), bad, r.cmd("c3"))
	require.NoError(t, m.Execute())

	r.reset()
	err := m.Undo()
	var se *StepError
	require.ErrorAs(t, err, &se)
	assert.True(t, se.Undo)
	assert.Equal(t, 1, se.Step)
	assert.Equal(t, []string{"undo:c3"}, r.calls)
	assert.Equal(t, 2, m.Applied())
}

func TestMacroDescription(t *testing.T) {
	r := &recorder{}
	m := NewMacro("Format Text", r.cmd("a"), r.cmd("b"), r.cmd("c"))
	assert.Equal(t, "Macro: Format Text (3 commands)", m.Description())
	assert.Equal(t, "Format Text", m.Name())
}

func TestMacroReexecute(t *testing.T) {
	r := &recorder{}
	m := NewMacro("again", r.cmd("a"), r.cmd("b"))
	require.NoError(t, m.Execute())
	require.NoError(t, m.Undo())
	r.reset()
	require.NoError(t, m.Execute())
	assert.Equal(t, []string{"exec:a", "exec:b"}, r.calls)
}

// Transaction

func TestTransactionCommitAndRollback(t *testing.T) {
	value := 0
	tx := NewTransaction(New("set",
		func() error { value = 42; return nil },
		func() error { value = 0; return nil },
	))
	assert.Equal(t, StatePending, tx.State())

	require.NoError(t, tx.Commit())
	assert.Equal(t, StateCommitted, tx.State())
	assert.True(t, tx.Committed())
	assert.Equal(t, 42, value)

	assert.ErrorIs(t, tx.Commit(), ErrAlreadyCommitted)

	require.NoError(t, tx.Rollback())
	assert.Equal(t, StateRolledBack, tx.State())
	assert.Equal(t, 0, value)

	// Second rollback is a no-op.
	require.NoError(t, tx.Rollback())
	assert.Equal(t, StateRolledBack, tx.State())
	assert.Equal(t, 0, value)
}

func TestTransactionCommitFailure(t *testing.T) {
	undos := 0
	tx := NewTransaction(New("fail",
		func() error { return errBoom },
		func() error { undos++; return nil },
	))

	err := tx.Commit()
	require.Error(t, err)
	assert.ErrorIs(t, err, errBoom)

	var ce *CommitError
	require.ErrorAs(t, err, &ce)
	assert.True(t, ce.RolledBack())
	assert.NoError(t, ce.Rollback)
	assert.Equal(t, 1, undos)
	assert.Equal(t, StatePending, tx.State())

	// Rollback from pending is a no-op.
	require.NoError(t, tx.Rollback())
	assert.Equal(t, 1, undos)
	assert.Equal(t, StatePending, tx.State())
}

func TestTransactionFailedRecommitStaysRolledBack(t *testing.T) {
	fail := false
	value := 0
	tx := NewTransaction(New("flaky",
		func() error {
			if fail {
				return errBoom
			}
			value++
			return nil
		},
		func() error {
			if value > 0 {
				value--
			}
			return nil
		},
	))

	require.NoError(t, tx.Commit())
	require.NoError(t, tx.Rollback())
	assert.Equal(t, StateRolledBack, tx.State())

	fail = true
	err := tx.Commit()
	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, StateRolledBack, tx.State())
	assert.Equal(t, 0, value)

	fail = false
	require.NoError(t, tx.Commit())
	assert.Equal(t, StateCommitted, tx.State())
	assert.Equal(t, 1, value)
}

func TestTransactionRollbackFailureReportedSeparately(t *testing.T) {
	errUndo := errors.New("undo broke")
	tx := NewTransaction(New("fail twice",
		func() error { return errBoom },
		func() error { return errUndo },
	))

	err := tx.Commit()
	var ce *CommitError
	require.ErrorAs(t, err, &ce)
	assert.ErrorIs(t, ce.Exec, errBoom)
	assert.ErrorIs(t, ce.Rollback, errUndo)
	assert.False(t, ce.RolledBack())
	assert.ErrorIs(t, err, errBoom)
	assert.ErrorIs(t, err, errUndo)
	assert.Contains(t, err.Error(), "rollback failed")
}

func TestTransactionRollbackUndoFails(t *testing.T) {
	tx := NewTransaction(New("sticky",
		func() error { return nil },
		func() error { return errBoom },
	))
	require.NoError(t, tx.Commit())
	assert.ErrorIs(t, tx.Rollback(), errBoom)
	assert.Equal(t, StateCommitted, tx.State())
}

func TestTransactionAsCommand(t *testing.T) {
	value := 0
	var cmd Command = NewTransaction(New("inc",
		func() error { value++; return nil },
		func() error { value--; return nil },
	))

	require.NoError(t, cmd.Execute())
	require.NoError(t, cmd.Undo())
	require.NoError(t, cmd.Execute())
	assert.Equal(t, 1, value)
	assert.Equal(t, "Transaction: inc", cmd.Description())
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StatePending, "pending"},
		{StateCommitted, "committed"},
		{StateRolledBack, "rolled-back"},
		{State(99), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.String())
		})
	}
}

func TestStepErrorMessage(t *testing.T) {
	err := &StepError{Macro: "m", Step: 2, Err: fmt.Errorf("inner")}
	assert.Equal(t, `macro "m" step 2: inner`, err.Error())
	err.Undo = true
	assert.Equal(t, `undo macro "m" step 2: inner`, err.Error())
}
