package restify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func namedHandler(name string, calls *[]string) HandlerFunc {
	return func(c Context) error {
		*calls = append(*calls, name)
		return nil
	}
}

func TestResolveHandler_FirstMatchWins(t *testing.T) {
	calls := []string{}
	descriptors := []RouteDescriptor{
		{Method: "get", Path: "/all", Handler: namedHandler("first", &calls)},
		{Method: MethodGet, Path: "/all", Handler: namedHandler("second", &calls)},
		{Method: MethodPost, Path: "/", Handler: namedHandler("create", &calls)},
	}

	handler, ok := resolveHandler(descriptors, MethodGet, "/all")
	require.True(t, ok)

	require.NoError(t, handler(newMockContext()))
	assert.Equal(t, []string{"first"}, calls)
}

func TestResolveHandler_MethodNormalization(t *testing.T) {
	calls := []string{}
	descriptors := []RouteDescriptor{
		{Method: "PoSt", Path: "/", Handler: namedHandler("create", &calls)},
	}

	_, ok := resolveHandler(descriptors, MethodPost, "/")
	assert.True(t, ok)

	_, ok = resolveHandler(descriptors, MethodPost, "/other")
	assert.False(t, ok)
}

func TestResolveHandler_NoMatchReturnsPassthrough(t *testing.T) {
	handler, ok := resolveHandler(nil, MethodGet, "/all")
	require.False(t, ok)

	ctx := newMockContext()
	require.NoError(t, handler(ctx))
	assert.True(t, ctx.nextCalled)
	assert.False(t, ctx.jsonCalled)
}

func TestChain_RunsStagesInOrder(t *testing.T) {
	order := []string{}
	stage := func(name string) HandlerFunc {
		return func(c Context) error {
			order = append(order, name)
			return c.Next()
		}
	}

	err := Chain(stage("before"), stage("action"), stage("after"))(newMockContext())
	require.NoError(t, err)
	assert.Equal(t, []string{"before", "action", "after"}, order)
}

func TestChain_StageCanTerminate(t *testing.T) {
	reached := false
	first := func(c Context) error {
		return c.Status(401).JSON(map[string]any{"error": "denied"})
	}
	second := func(c Context) error {
		reached = true
		return nil
	}

	ctx := newMockContext()
	require.NoError(t, Chain(first, second)(ctx))
	assert.False(t, reached)
	assert.Equal(t, 401, ctx.status)
}

func TestChain_RecoversPanics(t *testing.T) {
	boom := func(c Context) error {
		panic("kaboom")
	}

	err := Chain(boom)(newMockContext())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "handler panic")
}

func TestDispatch_ImmediateSendsJSON(t *testing.T) {
	ctx := newMockContext()

	require.NoError(t, dispatch(ctx, map[string]any{"ok": true}, false))
	assert.True(t, ctx.jsonCalled)
	assert.False(t, ctx.nextCalled)
}

func TestDispatch_DeferredAttachesResultAndContinues(t *testing.T) {
	ctx := newMockContext()
	payload := []string{"a", "b"}

	require.NoError(t, dispatch(ctx, payload, true))
	assert.False(t, ctx.jsonCalled)
	assert.True(t, ctx.nextCalled)
	assert.Equal(t, payload, PendingResult(ctx))
}
