package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/WHSBrasil/IS-PAT/internal/dto"
	"github.com/WHSBrasil/IS-PAT/internal/model"
)

// TombamentoRepository is the data access contract for assets. Status writes
// only happen through AtualizarStatusTx, called by MovimentacaoService
// inside the transaction that also writes the movement record.
type TombamentoRepository interface {
	Criar(ctx context.Context, t *model.Tombamento) error
	BuscarPorID(ctx context.Context, id uuid.UUID) (*model.Tombamento, error)
	BuscarAtivoPorNumero(ctx context.Context, numero string) (*model.Tombamento, error)
	Listar(ctx context.Context) ([]model.Tombamento, error)
	AtualizarCampos(ctx context.Context, id uuid.UUID, campos map[string]interface{}, versaoEsperada *int) (int64, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error

	// AtualizarStatusTx runs inside a service-owned transaction.
	AtualizarStatusTx(tx *gorm.DB, id uuid.UUID, status string) error

	ContarPorStatus(ctx context.Context) (dto.DashboardStats, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type tombamentoRepo struct{ db *gorm.DB }

func NewTombamentoRepository(db *gorm.DB) TombamentoRepository {
	return &tombamentoRepo{db: db}
}

func (r *tombamentoRepo) Criar(ctx context.Context, t *model.Tombamento) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *tombamentoRepo) BuscarPorID(ctx context.Context, id uuid.UUID) (*model.Tombamento, error) {
	var t model.Tombamento
	err := r.db.WithContext(ctx).Preload("Produto").Preload("Produto.Classificacao").
		First(&t, "id = ?", id).Error
	return &t, err
}

func (r *tombamentoRepo) BuscarAtivoPorNumero(ctx context.Context, numero string) (*model.Tombamento, error) {
	var t model.Tombamento
	err := r.db.WithContext(ctx).Where("numero = ? AND ativo = true", numero).First(&t).Error
	return &t, err
}

func (r *tombamentoRepo) Listar(ctx context.Context) ([]model.Tombamento, error) {
	var list []model.Tombamento
	err := r.db.WithContext(ctx).Preload("Produto").
		Where("ativo = true").Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *tombamentoRepo) AtualizarCampos(ctx context.Context, id uuid.UUID, campos map[string]interface{}, versaoEsperada *int) (int64, error) {
	campos["version"] = gorm.Expr("version + 1")
	q := r.db.WithContext(ctx).Model(&model.Tombamento{}).Where("id = ?", id)
	if versaoEsperada != nil {
		q = q.Where("version = ?", *versaoEsperada)
	}
	res := q.Updates(campos)
	return res.RowsAffected, res.Error
}

func (r *tombamentoRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Tombamento{}).Where("id = ?", id).Update("ativo", false).Error
}

func (r *tombamentoRepo) AtualizarStatusTx(tx *gorm.DB, id uuid.UUID, status string) error {
	return tx.Model(&model.Tombamento{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":  status,
		"version": gorm.Expr("version + 1"),
	}).Error
}

func (r *tombamentoRepo) ContarPorStatus(ctx context.Context) (dto.DashboardStats, error) {
	var stats dto.DashboardStats
	base := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&model.Tombamento{}).Where("ativo = true")
	}
	if err := base().Count(&stats.TotalItems).Error; err != nil {
		return stats, err
	}
	if err := base().Where("status = ?", model.StatusDisponivel).Count(&stats.Available).Error; err != nil {
		return stats, err
	}
	if err := base().Where("status = ?", model.StatusAlocado).Count(&stats.Allocated).Error; err != nil {
		return stats, err
	}
	if err := base().Where("status = ?", model.StatusManutencao).Count(&stats.Maintenance).Error; err != nil {
		return stats, err
	}
	return stats, nil
}

func (r *tombamentoRepo) DB() *gorm.DB { return r.db }
