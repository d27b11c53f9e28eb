package logger

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)

	// must not panic and must be disabled
	l.Info().Msg("should go nowhere")
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}

func TestGetChildLogger_IndependentContext(t *testing.T) {
	parent := Nop()
	child := parent.GetChildLogger()

	require.NotNil(t, child)
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("extra", "field")
	})

	// parent must not observe the child's added field
	assert.NotSame(t, parent, child)
}

func TestFromContext_NoLoggerAttached(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
}

func TestFromRequest_RoundTrip(t *testing.T) {
	base := Nop()
	req := httptest.NewRequest("GET", "/", nil)
	req = req.WithContext(base.WithContext(req.Context()))

	got := FromRequest(req)
	require.NotNil(t, got)
	assert.Equal(t, base.GetLevel(), got.GetLevel())
}
