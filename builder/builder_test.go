package builder_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/busroute/builder"
	"github.com/katalvlaran/busroute/core"
)

// firstStops is the original dataset: 1221 and 1225 share line 100.
func firstStops() []core.Stop {
	return []core.Stop{
		{ID: 1221, Lines: []core.Line{34, 291, 292, 8, 7, 100}},
		{ID: 1222, Lines: []core.Line{8, 7, 4}},
		{ID: 1223, Lines: []core.Line{5, 678, 888}},
		{ID: 1224, Lines: []core.Line{34, 5, 10, 40}},
		{ID: 1225, Lines: []core.Line{300, 295, 100}},
	}
}

func firstWalks() []core.Walk {
	return []core.Walk{{From: 1221, To: 1222}, {From: 1224, To: 1225}}
}

func TestBuild_FirstDataset(t *testing.T) {
	n, err := builder.Build(firstStops(), firstWalks())
	require.NoError(t, err)
	assert.True(t, n.Frozen())

	cases := []struct {
		from, to core.StopID
		want     core.Link
	}{
		{1221, 1222, core.Walking()}, // shares 8 and 7, walk overrides
		{1221, 1224, core.Bus(34)},
		{1221, 1225, core.Bus(100)},
		{1223, 1224, core.Bus(5)},
		{1224, 1225, core.Walking()},
	}
	for _, c := range cases {
		got, ok := n.Link(c.from, c.to)
		require.True(t, ok, "%d→%d", c.from, c.to)
		assert.Equal(t, c.want, got, "%d→%d", c.from, c.to)
	}

	for _, p := range []core.Pair{{From: 1221, To: 1223}, {From: 1222, To: 1224}, {From: 1223, To: 1225}} {
		_, ok := n.Link(p.From, p.To)
		assert.False(t, ok, "%v must not be adjacent", p)
	}

	nbs, err := n.Neighbors(1221)
	require.NoError(t, err)
	assert.Equal(t, []core.StopID{1222, 1224, 1225}, nbs)

	nbs, err = n.Neighbors(1224)
	require.NoError(t, err)
	assert.Equal(t, []core.StopID{1221, 1223, 1225}, nbs, "bus neighbours ascending, then walks")

	assert.Equal(t, []core.Line{8, 7}, n.SharedLines(1221, 1222))
}

func TestBuild_TieBreak(t *testing.T) {
	stops := []core.Stop{
		{ID: 1, Lines: []core.Line{8, 7, 4}},
		{ID: 2, Lines: []core.Line{4, 7, 8}},
	}

	last, err := builder.Build(stops, nil)
	require.NoError(t, err)
	l, _ := last.Link(1, 2)
	assert.Equal(t, core.Bus(8), l, "last shared line in the later stop's order")
	assert.Equal(t, []core.Line{4, 7, 8}, last.SharedLines(2, 1))

	first, err := builder.Build(stops, nil, builder.WithTieBreak(builder.TieBreakFirst))
	require.NoError(t, err)
	l, _ = first.Link(2, 1)
	assert.Equal(t, core.Bus(4), l)
}

func TestBuild_WalksAreAdditive(t *testing.T) {
	withWalks, err := builder.Build(firstStops(), firstWalks())
	require.NoError(t, err)
	busOnly, err := builder.Build(firstStops(), nil)
	require.NoError(t, err)

	for _, a := range busOnly.StopIDs() {
		nbs, _ := busOnly.Neighbors(a)
		for _, b := range nbs {
			_, ok := withWalks.Link(a, b)
			assert.True(t, ok, "bus edge %d–%d lost when walks are added", a, b)
		}
	}

	l, ok := busOnly.Link(1221, 1222)
	require.True(t, ok)
	assert.Equal(t, core.Bus(7), l, "without the walk the shared bus label remains")

	_, ok = busOnly.Link(1224, 1225)
	assert.False(t, ok)
}

func TestBuild_Errors(t *testing.T) {
	t.Run("unknown stop in walk", func(t *testing.T) {
		_, err := builder.Build(firstStops(), []core.Walk{{From: 1221, To: 9999}})
		assert.ErrorIs(t, err, core.ErrUnknownStop)
		assert.Contains(t, err.Error(), builder.MethodWalkLinks)
	})
	t.Run("duplicate stop", func(t *testing.T) {
		stops := append(firstStops(), core.Stop{ID: 1221})
		_, err := builder.Build(stops, nil)
		assert.ErrorIs(t, err, core.ErrDuplicateStop)
		assert.Contains(t, err.Error(), builder.MethodAddStops)
	})
	t.Run("self walk", func(t *testing.T) {
		_, err := builder.Build(firstStops(), []core.Walk{{From: 1223, To: 1223}})
		assert.ErrorIs(t, err, core.ErrSelfLink)
	})
}

func TestBuild_Empty(t *testing.T) {
	n, err := builder.Build(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, core.Stats{}, n.Stats())
}

func TestBuild_StrategiesAgree(t *testing.T) {
	stops := append(firstStops(),
		core.Stop{ID: 1226, Lines: []core.Line{4, 100, 5}},
		core.Stop{ID: 1227, Lines: []core.Line{999}},
	)
	walks := append(firstWalks(), core.Walk{From: 1227, To: 1223})

	for _, tb := range []builder.TieBreak{builder.TieBreakLast, builder.TieBreakFirst} {
		pw, err := builder.Build(stops, walks, builder.WithTieBreak(tb))
		require.NoError(t, err)
		li, err := builder.Build(stops, walks, builder.WithTieBreak(tb), builder.WithStrategy(builder.LineIndex))
		require.NoError(t, err)
		assertSameNetwork(t, pw, li)
	}
}

func TestBuild_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := builder.Build(firstStops(), firstWalks(), builder.WithLogger(logger))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "bus link")
	assert.Contains(t, out, "walk link")
	assert.Contains(t, out, "network built")
	assert.Contains(t, out, "edges=5")
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { builder.WithLogger(nil) })
	assert.Panics(t, func() { builder.WithStrategy(builder.Strategy(42)) })
	assert.Panics(t, func() { builder.WithTieBreak(builder.TieBreak(42)) })
}

func TestParse(t *testing.T) {
	s, err := builder.ParseStrategy("line-index")
	require.NoError(t, err)
	assert.Equal(t, builder.LineIndex, s)
	s, err = builder.ParseStrategy("")
	require.NoError(t, err)
	assert.Equal(t, builder.Pairwise, s)
	_, err = builder.ParseStrategy("quantum")
	assert.ErrorIs(t, err, builder.ErrUnknownStrategy)

	tb, err := builder.ParseTieBreak("first")
	require.NoError(t, err)
	assert.Equal(t, builder.TieBreakFirst, tb)
	_, err = builder.ParseTieBreak("middle")
	assert.ErrorIs(t, err, builder.ErrUnknownTieBreak)

	assert.Equal(t, "pairwise", builder.Pairwise.String())
	assert.Equal(t, "last", builder.TieBreakLast.String())
}

// assertSameNetwork compares stops, neighbour order, labels and shared lines.
func assertSameNetwork(t *testing.T, want, got *core.Network) {
	t.Helper()
	require.Equal(t, want.StopIDs(), got.StopIDs())
	for _, a := range want.StopIDs() {
		wn, _ := want.Neighbors(a)
		gn, _ := got.Neighbors(a)
		require.Equal(t, wn, gn, "neighbours of %d", a)
		for _, b := range wn {
			wl, _ := want.Link(a, b)
			gl, _ := got.Link(a, b)
			assert.Equal(t, wl, gl, "label %d→%d", a, b)
			assert.Equal(t, want.SharedLines(a, b), got.SharedLines(a, b), "shared %d→%d", a, b)
		}
	}
}
