package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"starshot-analyzer/internal/domain/entity"
)

func TestMemoryStarlineRepository_AddAndAll(t *testing.T) {
	repo := NewMemoryStarlineRepository()
	ctx := context.Background()

	a := entity.NewGrayFrame(2, 2)
	a.Pix[0] = 1
	b := entity.NewGrayFrame(2, 2)
	b.Pix[0] = 2

	require.NoError(t, repo.Add(ctx, 0, a))
	require.NoError(t, repo.Add(ctx, 90, b))

	frames, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, frames, 2)
	require.Equal(t, uint8(1), frames[0].Pix[0])
	require.Equal(t, uint8(2), frames[1].Pix[0])
}

func TestMemoryStarlineRepository_StoresCopies(t *testing.T) {
	repo := NewMemoryStarlineRepository()
	ctx := context.Background()

	f := entity.NewGrayFrame(2, 2)
	require.NoError(t, repo.Add(ctx, 0, f))
	f.Pix[0] = 200 // мутация исходника не должна видна в хранилище

	frames, err := repo.All(ctx)
	require.NoError(t, err)
	require.Equal(t, uint8(0), frames[0].Pix[0])

	frames[0].Pix[0] = 50 // и обратно
	again, err := repo.All(ctx)
	require.NoError(t, err)
	require.Equal(t, uint8(0), again[0].Pix[0])
}

func TestMemoryStarlineRepository_RejectsEmptyFrame(t *testing.T) {
	repo := NewMemoryStarlineRepository()
	require.ErrorIs(t, repo.Add(context.Background(), 0, entity.Frame{}), entity.ErrInvalidFrame)
}

func TestMemoryStarlineRepository_Clear(t *testing.T) {
	repo := NewMemoryStarlineRepository()
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, 0, entity.NewGrayFrame(2, 2)))
	require.NoError(t, repo.Clear(ctx))

	frames, err := repo.All(ctx)
	require.NoError(t, err)
	require.Empty(t, frames)
}
