package invite

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateLengthAndAlphabet(t *testing.T) {
	code, err := Generate(DefaultAlphabet, DefaultLength)
	require.NoError(t, err)
	require.Len(t, code, DefaultLength)
	for _, r := range code {
		require.True(t, strings.ContainsRune(DefaultAlphabet, r), "unexpected rune %q", r)
	}
}

func TestGenerateRejectsBadInput(t *testing.T) {
	_, err := Generate("", 8)
	require.Error(t, err)

	_, err = Generate(DefaultAlphabet, 0)
	require.Error(t, err)
}

func TestGenerateUniqueRetriesUntilFree(t *testing.T) {
	calls := 0
	exists := func(_ context.Context, _ string) (bool, error) {
		calls++
		return calls < 3, nil
	}

	code, err := GenerateUnique(context.Background(), DefaultAlphabet, DefaultLength, exists)
	require.NoError(t, err)
	require.Len(t, code, DefaultLength)
	require.Equal(t, 3, calls)
}

func TestGenerateUniquePropagatesCheckError(t *testing.T) {
	boom := errors.New("boom")
	exists := func(_ context.Context, _ string) (bool, error) {
		return false, boom
	}

	_, err := GenerateUnique(context.Background(), DefaultAlphabet, DefaultLength, exists)
	require.ErrorIs(t, err, boom)
}

func TestGenerateUniqueStopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exists := func(_ context.Context, _ string) (bool, error) {
		return true, nil
	}

	_, err := GenerateUnique(ctx, DefaultAlphabet, DefaultLength, exists)
	require.ErrorIs(t, err, context.Canceled)
}
