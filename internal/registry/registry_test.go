package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/advent2020/internal/report"
)

func noop(ctx context.Context, input string, params any) ([]report.Answer, error) {
	return nil, nil
}

type fakeModule struct{ day string }

func (m fakeModule) Register(r *Registry) {
	r.RegisterPuzzle(m.day, &RegisteredPuzzle{Title: "fake " + m.day, Fn: noop})
}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	r := New()
	for _, m := range []Module{fakeModule{"07"}, fakeModule{"01"}, fakeModule{"03"}} {
		m.Register(r)
	}

	assert.Equal(t, []string{"01", "03", "07"}, r.Days())

	p, err := r.Lookup("03")
	require.NoError(t, err)
	assert.Equal(t, "fake 03", p.Title)
}

func TestRegistry_LookupUnknown(t *testing.T) {
	r := New()

	_, err := r.Lookup("42")

	assert.ErrorIs(t, err, ErrUnknownPuzzle)
	assert.ErrorContains(t, err, `"42"`)
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	r := New()
	fakeModule{"01"}.Register(r)

	assert.PanicsWithValue(t, "puzzle for day '01' already registered", func() {
		fakeModule{"01"}.Register(r)
	})
}

func TestRegistry_MissingFnPanics(t *testing.T) {
	r := New()

	assert.Panics(t, func() {
		r.RegisterPuzzle("02", &RegisteredPuzzle{Title: "no fn"})
	})
}
