package auther

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/auther/config"
	"go.uber.org/zap/zaptest"
)

func TestNewServer(t *testing.T) {
	ctx := context.Background()
	cfg := config.New()
	cfg.TokensPath = filepath.Join(t.TempDir(), "tokens")
	cfg.TokenLength = 12

	tokens, err := NewStore(ctx, cfg)
	require.NoError(t, err)
	assert.Equal(t, 12, tokens.TokenLength())

	minted, err := tokens.Issue(ctx, time.Minute)
	require.NoError(t, err)
	assert.Len(t, minted.Identifier(), 16)

	srv, err := NewServer(tokens, cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/auth", nil)
	req.Header.Set("Authorization", "Bearer "+minted.Identifier())
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	_, err = NewServer(nil, cfg, nil)
	assert.Error(t, err)
}
