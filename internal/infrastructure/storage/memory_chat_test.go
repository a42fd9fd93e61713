package storage

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yourusername/laptop-storefront/internal/domain/entity"
)

func TestMemoryChatRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryChatRepository(3)

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.SaveMessage(ctx, entity.Message{SessionID: "s1", Text: fmt.Sprint(i)}))
	}
	require.NoError(t, repo.SaveMessage(ctx, entity.Message{SessionID: "s2", Text: "other"}))

	history, err := repo.GetHistory(ctx, "s1", 0)
	require.NoError(t, err)
	require.Len(t, history, 3)
	require.Equal(t, "2", history[0].Text)
	require.Equal(t, "4", history[2].Text)

	history, err = repo.GetHistory(ctx, "s1", 1)
	require.NoError(t, err)
	require.Equal(t, "4", history[0].Text)

	require.NoError(t, repo.ClearHistory(ctx, "s1"))
	history, err = repo.GetHistory(ctx, "s1", 0)
	require.NoError(t, err)
	require.Empty(t, history)

	history, _ = repo.GetHistory(ctx, "s2", 0)
	require.Len(t, history, 1)
}
