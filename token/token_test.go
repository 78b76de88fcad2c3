package token

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	clock := func() time.Time { return now }

	var testCases = []struct {
		description string
		options     []Option
		expectErr   bool
		expectID    string
		expectAt    time.Time
		expectWarn  bool
	}{
		{
			description: "neither lifetime nor expires",
			options:     []Option{WithIdentifier("abc")},
			expectErr:   true,
		},
		{
			description: "lifetime only",
			options:     []Option{WithLifetime(time.Second), WithClock(clock)},
			expectAt:    now.Add(time.Second),
		},
		{
			description: "expires only with identifier",
			options:     []Option{WithIdentifier("abc"), WithExpires(now.Add(time.Hour))},
			expectID:    "abc",
			expectAt:    now.Add(time.Hour),
		},
		{
			description: "lifetime takes precedence over expires",
			options:     []Option{WithLifetime(1000 * time.Millisecond), WithExpires(now.Add(-time.Hour)), WithClock(clock)},
			expectAt:    now.Add(1000 * time.Millisecond),
			expectWarn:  true,
		},
	}

	for _, testCase := range testCases {
		core, logs := observer.New(zapcore.WarnLevel)
		undo := zap.ReplaceGlobals(zap.New(core))
		actual, err := New(testCase.options...)
		undo()
		if testCase.expectErr {
			var cfgErr *ConfigurationError
			require.ErrorAs(t, err, &cfgErr, testCase.description)
			assert.Contains(t, err.Error(), "no lifetime specified", testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		if testCase.expectID != "" {
			assert.Equal(t, testCase.expectID, actual.Identifier(), testCase.description)
		} else {
			assert.NotEmpty(t, actual.Identifier(), testCase.description)
		}
		assert.True(t, testCase.expectAt.Equal(actual.ExpiresAt()), testCase.description)
		if testCase.expectWarn {
			assert.Equal(t, 1, logs.Len(), testCase.description)
		} else {
			assert.Equal(t, 0, logs.Len(), testCase.description)
		}
	}
}

func TestMintNew(t *testing.T) {
	first, err := MintNew(time.Minute, 0)
	require.NoError(t, err)
	second, err := MintNew(time.Minute, 0)
	require.NoError(t, err)
	assert.NotEqual(t, first.Identifier(), second.Identifier())
	assert.Len(t, first.Identifier(), base64.RawURLEncoding.EncodedLen(DefaultLength))

	for _, length := range []int{1, 16, 32, 100} {
		tok, err := MintNew(time.Minute, length)
		require.NoError(t, err)
		assert.Len(t, tok.Identifier(), base64.RawURLEncoding.EncodedLen(length))
		assert.NotContains(t, tok.Identifier(), "=")
		_, err = base64.RawURLEncoding.DecodeString(tok.Identifier())
		assert.NoError(t, err)
	}
}

func TestToken_Expired(t *testing.T) {
	now := time.Now()
	past := Reconstruct("past", now.Add(-time.Millisecond))
	future := Reconstruct("future", now.Add(10*time.Second))
	assert.True(t, past.Expired())
	assert.False(t, future.Expired())
	assert.True(t, future.ExpiredAt(now.Add(11*time.Second)))

	edge := Reconstruct("edge", now)
	assert.False(t, edge.ExpiredAt(edge.ExpiresAt()))
}

func TestReconstruct(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 6_789_000, time.UTC)
	tok := Reconstruct("any format/+=", at)
	assert.Equal(t, "any format/+=", tok.Identifier())
	assert.Equal(t, at.UnixMilli(), tok.ExpiresAt().UnixMilli())
	assert.NotContains(t, tok.String(), "format/+=")
}
