package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/busroute/builder"
	"github.com/katalvlaran/busroute/core"
	"github.com/katalvlaran/busroute/render"
)

var twoRoutes = []core.Route{
	{
		{Stop: 1221, Via: core.Start()},
		{Stop: 1224, Via: core.Bus(34)},
		{Stop: 1225, Via: core.Walking()},
	},
	{
		{Stop: 1221, Via: core.Start()},
		{Stop: 1225, Via: core.Bus(100)},
	},
}

func TestStep(t *testing.T) {
	p := render.New()

	assert.Equal(t, "Start at stop 1221", p.Step(core.Step{Stop: 1221, Via: core.Start()}))
	assert.Equal(t, "Walk to stop 1222", p.Step(core.Step{Stop: 1222, Via: core.Walking()}))
	assert.Equal(t, "Take bus line 4 to stop 1224", p.Step(core.Step{Stop: 1224, Via: core.Bus(4)}))
}

func TestAllRoutes(t *testing.T) {
	p := render.New()

	want := strings.Join([]string{
		"All routes from 1221 to 1225:",
		"Route 1:",
		"  Start at stop 1221",
		"  Take bus line 34 to stop 1224",
		"  Walk to stop 1225",
		"Route 2:",
		"  Start at stop 1221",
		"  Take bus line 100 to stop 1225",
		"",
	}, "\n")
	assert.Equal(t, want, p.AllRoutes(1221, 1225, twoRoutes))
	assert.Equal(t, "No route found from 1221 to 1225\n", p.AllRoutes(1221, 1225, nil))
}

func TestShortest(t *testing.T) {
	p := render.New(render.WithIndent("\t"))

	route := core.Route{
		{Stop: 1221, Via: core.Start()},
		{Stop: 1222, Via: core.Walking()},
		{Stop: 1224, Via: core.Bus(4)},
		{Stop: 1225, Via: core.Walking()},
	}
	want := "Shortest route from 1221 to 1225 (3 hops):\n" +
		"\tStart at stop 1221\n" +
		"\tWalk to stop 1222\n" +
		"\tTake bus line 4 to stop 1224\n" +
		"\tWalk to stop 1225\n"
	assert.Equal(t, want, p.Shortest(1221, 1225, route, true))
	assert.Equal(t, "No route found from 1221 to 1225\n", p.Shortest(1221, 1225, nil, false))
}

func TestAlternatives(t *testing.T) {
	n, err := builder.Build([]core.Stop{
		{ID: 1221, Lines: []core.Line{34, 291, 292, 8, 7}},
		{ID: 1222, Lines: []core.Line{8, 7, 4}},
	}, nil)
	require.NoError(t, err)

	route := core.Route{
		{Stop: 1221, Via: core.Start()},
		{Stop: 1222, Via: core.Bus(7)},
	}
	p := render.New(render.WithAlternatives(n))
	assert.Equal(t, "  Start at stop 1221\n  Take bus line 7 to stop 1222 (also: 8)\n", p.Route(route))

	// Without route context there is no previous stop to look up.
	assert.Equal(t, "Take bus line 7 to stop 1222", p.Step(route[1]))

	// Single shared line: nothing to add.
	single := core.Route{{Stop: 1222, Via: core.Start()}, {Stop: 1221, Via: core.Bus(8)}}
	n2, err := builder.Build([]core.Stop{
		{ID: 1221, Lines: []core.Line{8}},
		{ID: 1222, Lines: []core.Line{8, 4}},
	}, nil)
	require.NoError(t, err)
	assert.NotContains(t, render.New(render.WithAlternatives(n2)).Route(single), "also")
}

func TestColor(t *testing.T) {
	plain := render.New().AllRoutes(1221, 1225, twoRoutes)
	colored := render.New(render.WithColor(true)).AllRoutes(1221, 1225, twoRoutes)

	assert.NotContains(t, plain, "\x1b[")
	assert.Contains(t, colored, "\x1b[")
	assert.Contains(t, colored, "1221 to 1225")
	assert.Contains(t, colored, "bus line 100")
}

func TestCompact(t *testing.T) {
	assert.Equal(t, "", render.Compact(nil))
	assert.Equal(t, "1221", render.Compact(core.NewRoute(1221)))
	assert.Equal(t, "1221 -walk-> 1222 -4-> 1224 -walk-> 1225", render.Compact(core.Route{
		{Stop: 1221, Via: core.Start()},
		{Stop: 1222, Via: core.Walking()},
		{Stop: 1224, Via: core.Bus(4)},
		{Stop: 1225, Via: core.Walking()},
	}))
}

func TestFprint(t *testing.T) {
	var b strings.Builder
	require.NoError(t, render.Fprint(&b, "x\n"))
	assert.Equal(t, "x\n", b.String())
}
