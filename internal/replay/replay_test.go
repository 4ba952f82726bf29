package replay

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/vcrobe/elmish/internal/config"
)

func parse(t *testing.T, src string) *config.Scenario {
	t.Helper()
	sc, err := config.Parse(context.Background(), []byte(src), "test.hcl")
	require.NoError(t, err)
	return sc
}

func TestRun_CounterReset(t *testing.T) {
	sc := parse(t, `
app   = "counter"
model = 7

step "click" {
  target = ".reset"
}
step "click" {
  target = ".inc"
}
`)
	var out bytes.Buffer

	require.NoError(t, Run(context.Background(), sc, &out))

	assert.Equal(t,
		`<section class="counter"><button class="inc">+</button><div class="count">1</div><button class="dec">-</button><button class="reset">Reset</button></section>`+"\n",
		out.String())
}

func TestRun_MountsIntoPage(t *testing.T) {
	sc := parse(t, `
app         = "counter"
container   = "root"
focus_delay = "0s"
page        = "<main><h1>Demo</h1><div id=\"root\"><p>loading</p></div></main>"

step "click" {
  target = ".dec"
}
`)
	var out bytes.Buffer

	require.NoError(t, Run(context.Background(), sc, &out))

	assert.Contains(t, out.String(), `<div class="count">-1</div>`)
	assert.NotContains(t, out.String(), "loading", "the page's placeholder content is replaced too")
}

func TestRun_PageWithoutContainer(t *testing.T) {
	sc := parse(t, `
app  = "counter"
page = "<main></main>"
`)

	err := Run(context.Background(), sc, &bytes.Buffer{})

	assert.ErrorContains(t, err, "failed to mount counter")
}

func TestRun_TodoSnapshots(t *testing.T) {
	sc := parse(t, `
app                = "todo"
container          = "todo-root"
snapshot_each_step = true
model              = ["walk dog"]

step "input" {
  target = "#new-todo"
  value  = "buy milk"
}
step "click" {
  target = "#add"
}
`)
	var out bytes.Buffer

	require.NoError(t, Run(context.Background(), sc, &out))

	got := out.String()
	assert.Equal(t, 3, strings.Count(got, "<!-- step "))
	last := got[strings.LastIndex(got, "<!-- step 2 -->"):]
	assert.Contains(t, last, "<label>walk dog</label>")
	assert.Contains(t, last, "<label>buy milk</label>")
	assert.Contains(t, last, "2 items left")
}

func TestRun_Errors(t *testing.T) {
	tests := map[string]string{
		"unknown app":     `app = "pong"`,
		"bad model":       "app = \"counter\"\nmodel = \"seven\"",
		"missing target":  "app = \"counter\"\nstep \"click\" {\n target = \"#nope\"\n}",
		"bad todo model":  "app = \"todo\"\nmodel = 3",
		"untitled object": "app = \"todo\"\nmodel = [{ done = true }]",
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			err := Run(context.Background(), parse(t, src), &bytes.Buffer{})
			assert.Error(t, err)
		})
	}
}

func TestRun_CancelledContext(t *testing.T) {
	sc := parse(t, "app = \"counter\"\nstep \"click\" {\n target = \".inc\"\n}")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx, sc, &bytes.Buffer{})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestDecodeTodo(t *testing.T) {
	m, err := decodeTodo(cty.TupleVal([]cty.Value{
		cty.StringVal("a"),
		cty.ObjectVal(map[string]cty.Value{"title": cty.StringVal("b"), "done": cty.True}),
	}))
	require.NoError(t, err)

	require.Len(t, m.Items, 2)
	assert.Equal(t, 1, m.Items[0].ID)
	assert.Equal(t, 2, m.Items[1].ID)
	assert.True(t, m.Items[1].Done)
	assert.Equal(t, 3, m.NextID)
}

func TestApps(t *testing.T) {
	assert.Equal(t, []string{"counter", "todo"}, Apps())
}
