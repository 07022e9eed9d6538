package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/WHSBrasil/IS-PAT/internal/model"
)

// TransferenciaRepository is the data access contract for transfer history.
// Transfers are plain audit rows, so creation needs no transaction.
type TransferenciaRepository interface {
	Criar(ctx context.Context, t *model.Transferencia) error
	BuscarPorID(ctx context.Context, id uuid.UUID) (*model.Transferencia, error)
	ListarDetalhadas(ctx context.Context) ([]model.Transferencia, error)
}

type transferenciaRepo struct{ db *gorm.DB }

func NewTransferenciaRepository(db *gorm.DB) TransferenciaRepository {
	return &transferenciaRepo{db: db}
}

func (r *transferenciaRepo) Criar(ctx context.Context, t *model.Transferencia) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *transferenciaRepo) BuscarPorID(ctx context.Context, id uuid.UUID) (*model.Transferencia, error) {
	var t model.Transferencia
	err := r.db.WithContext(ctx).
		Preload("Tombamento").Preload("Tombamento.Produto").
		Preload("UnidadeOrigem").Preload("UnidadeDestino").
		Preload("SetorOrigem").Preload("SetorDestino").
		First(&t, "id = ?", id).Error
	return &t, err
}

func (r *transferenciaRepo) ListarDetalhadas(ctx context.Context) ([]model.Transferencia, error) {
	var list []model.Transferencia
	err := r.db.WithContext(ctx).
		Preload("Tombamento").Preload("Tombamento.Produto").
		Preload("UnidadeOrigem").Preload("UnidadeDestino").
		Preload("SetorOrigem").Preload("SetorDestino").
		Where("ativo = true").Order("created_at DESC").Find(&list).Error
	return list, err
}
