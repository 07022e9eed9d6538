package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WHSBrasil/IS-PAT/internal/dto"
	"github.com/WHSBrasil/IS-PAT/internal/model"
)

func TestDashboardStatsSomamAoTotal(t *testing.T) {
	f := newMovFixture()
	svc := NewDashboardService(f.tombamentos)

	f.seedTombamento(t, "PAT-0001", model.StatusDisponivel)
	f.seedTombamento(t, "PAT-0002", model.StatusDisponivel)
	f.seedTombamento(t, "PAT-0003", model.StatusAlocado)
	f.seedTombamento(t, "PAT-0004", model.StatusManutencao)

	// Soft-deleted assets stay out of every bucket.
	excluido := f.seedTombamento(t, "PAT-0005", model.StatusDisponivel)
	require.NoError(t, f.tombamentos.SoftDelete(context.Background(), excluido.ID))

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dto.DashboardStats{
		TotalItems:  4,
		Available:   2,
		Allocated:   1,
		Maintenance: 1,
	}, *stats)
	assert.Equal(t, stats.TotalItems, stats.Available+stats.Allocated+stats.Maintenance)
}

func TestDashboardStatsAcompanhamOCiclo(t *testing.T) {
	f := newMovFixture()
	svc := NewDashboardService(f.tombamentos)

	tomb := f.seedTombamento(t, "PAT-0001", model.StatusDisponivel)
	unidade := f.seedUnidade(t, "UBS Centro")

	aloc, err := f.svc.Alocar(context.Background(), alocarReq(tomb.ID, unidade.ID), nil)
	require.NoError(t, err)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Allocated)
	assert.Equal(t, int64(0), stats.Available)

	require.NoError(t, f.svc.Desalocar(context.Background(), aloc.ID))
	stats, err = svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.Allocated)
	assert.Equal(t, int64(1), stats.Available)
}
