package clicycle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Living-Content/clicycle/pkg/theme"
)

func TestWithSpinner_RecordsOneComponent_AndReportsSuccess(t *testing.T) {
	t.Parallel()

	cli, buf := newTestSession()

	err := cli.WithSpinner("syncing", func() error { return nil })
	require.NoError(t, err)

	out := stripANSI(buf.String())
	assert.Contains(t, out, "syncing")
	assert.Contains(t, out, cli.Theme().Icons.Success)
	assert.Equal(t, 1, cli.History().Len())

	last, ok := cli.History().Last()
	require.True(t, ok)
	assert.Equal(t, theme.KindSpinner, last.Kind)
}

func TestWithSpinner_ReportsFailure_AndReturnsErrorUnmodified(t *testing.T) {
	t.Parallel()

	cli, buf := newTestSession()
	boom := errors.New("boom")

	err := cli.WithSpinner("syncing", func() error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, stripANSI(buf.String()), cli.Theme().Icons.Error)
}

func TestProgressTask_ClampsValues_ToUnitRange(t *testing.T) {
	t.Parallel()

	cli, _ := newTestSession()

	err := cli.WithProgress("downloading", func(p *ProgressTask) error {
		p.Update(-0.5, "")
		assert.Equal(t, 0.0, p.value)
		p.Update(1.7, "almost")
		assert.Equal(t, 1.0, p.value)
		return nil
	})
	require.NoError(t, err)
}

func TestWithProgress_RendersDescription_AndFinalBar(t *testing.T) {
	t.Parallel()

	cli, buf := newTestSession()

	err := cli.WithProgress("downloading", func(p *ProgressTask) error {
		p.Update(1.0, "done")
		return nil
	})
	require.NoError(t, err)

	out := stripANSI(buf.String())
	assert.Contains(t, out, "downloading")
	assert.Contains(t, out, "100%")

	last, ok := cli.History().Last()
	require.True(t, ok)
	assert.Equal(t, theme.KindProgress, last.Kind)
	assert.Equal(t, 1, cli.History().Len(), "updates must not append history entries")
}

func TestMultiProgress_ClampsSubTasks_AtDeclaredTotal(t *testing.T) {
	t.Parallel()

	cli, buf := newTestSession()

	err := cli.WithMultiProgress("deploying", func(mp *MultiProgress) error {
		web := mp.AddTask("web servers", 4, "web")
		db := mp.AddTask("databases", 2, "db")

		mp.Advance(web, 3)
		mp.Advance(web, 10) // past total, clamped
		mp.Advance(db, 1)

		assert.Equal(t, 4, web.Current)
		assert.Equal(t, 1, db.Current)
		return nil
	})
	require.NoError(t, err)

	out := stripANSI(buf.String())
	assert.Contains(t, out, "deploying")
	assert.Contains(t, out, "web servers 4/4")
	assert.Contains(t, out, "databases 1/2")
	assert.Equal(t, 1, cli.History().Len())
}

func TestWithProgress_PropagatesBodyError(t *testing.T) {
	t.Parallel()

	cli, _ := newTestSession()
	boom := errors.New("fetch failed")

	err := cli.WithProgress("fetching", func(*ProgressTask) error { return boom })
	assert.ErrorIs(t, err, boom)
}
