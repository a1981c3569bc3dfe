package calc_go

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestLog(t *testing.T) *EvalLog {
	log, err := OpenEvalLog(filepath.Join(t.TempDir(), "calc_log.db"))
	require.NoError(t, err)
	t.Cleanup(func() { log.Close() })
	return log
}

func TestEvalLogRecord(t *testing.T) {
	log := openTestLog(t)

	ev, err := Run("6*7")
	require.NoError(t, err)
	require.NoError(t, log.Record("6*7", ev, nil))
	require.NoError(t, log.Record("6*7", ev, nil))

	_, evalErr := Run("1/0")
	require.Error(t, evalErr)
	require.NoError(t, log.Record("1/0", nil, evalErr))

	entries, err := log.Entries(10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	byExpr := map[string]*LogEntry{}
	for _, e := range entries {
		byExpr[e.Expression] = e
	}
	ok := byExpr["6*7"]
	require.NotNil(t, ok)
	assert.Equal(t, "6 7 *", ok.Postfix)
	assert.EqualValues(t, 42, ok.Result)
	assert.Equal(t, "", ok.Error)
	assert.EqualValues(t, 2, ok.Hits)
	assert.GreaterOrEqual(t, ok.LastAccess, ok.CreatedAt)

	failed := byExpr["1/0"]
	require.NotNil(t, failed)
	assert.Equal(t, "division by zero: 1 / 0", failed.Error)
	assert.Equal(t, "", failed.Postfix)
	assert.EqualValues(t, 1, failed.Hits)

	entries, err = log.Entries(1)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestEvalLogClearAndReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calc_log.db")
	log, err := OpenEvalLog(path)
	require.NoError(t, err)
	ev, err := Run("1+1")
	require.NoError(t, err)
	require.NoError(t, log.Record("1+1", ev, nil))
	require.NoError(t, log.Close())
	require.NoError(t, log.Close())

	log, err = OpenEvalLog(path)
	require.NoError(t, err)
	defer log.Close()
	entries, err := log.Entries(10)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	require.NoError(t, log.Clear())
	entries, err = log.Entries(10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
