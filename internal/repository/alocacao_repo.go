package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/WHSBrasil/IS-PAT/internal/model"
)

// AlocacaoRepository is the data access contract for custody assignments.
// Create and soft-delete run inside MovimentacaoService transactions so the
// asset's status change commits or rolls back with the movement row.
type AlocacaoRepository interface {
	CriarTx(tx *gorm.DB, a *model.Alocacao) error
	BuscarPorID(ctx context.Context, id uuid.UUID) (*model.Alocacao, error)
	// BuscarAtivaPorTombamento returns the asset's current active allocation,
	// gorm.ErrRecordNotFound when there is none.
	BuscarAtivaPorTombamento(ctx context.Context, tombamentoID uuid.UUID) (*model.Alocacao, error)
	// ListarDetalhadas returns active allocations with asset, product, unit
	// and sector attached, newest first.
	ListarDetalhadas(ctx context.Context) ([]model.Alocacao, error)
	AtualizarCampos(ctx context.Context, id uuid.UUID, campos map[string]interface{}, versaoEsperada *int) (int64, error)
	SoftDeleteTx(tx *gorm.DB, id uuid.UUID) error
	DB() *gorm.DB
}

type alocacaoRepo struct{ db *gorm.DB }

func NewAlocacaoRepository(db *gorm.DB) AlocacaoRepository { return &alocacaoRepo{db: db} }

func (r *alocacaoRepo) CriarTx(tx *gorm.DB, a *model.Alocacao) error {
	return tx.Create(a).Error
}

func (r *alocacaoRepo) BuscarPorID(ctx context.Context, id uuid.UUID) (*model.Alocacao, error) {
	var a model.Alocacao
	err := r.db.WithContext(ctx).
		Preload("Tombamento").Preload("Tombamento.Produto").
		Preload("UnidadeSaude").Preload("Setor").
		First(&a, "id = ?", id).Error
	return &a, err
}

func (r *alocacaoRepo) BuscarAtivaPorTombamento(ctx context.Context, tombamentoID uuid.UUID) (*model.Alocacao, error) {
	var a model.Alocacao
	err := r.db.WithContext(ctx).
		Where("tombamento_id = ? AND ativo = true", tombamentoID).First(&a).Error
	return &a, err
}

func (r *alocacaoRepo) ListarDetalhadas(ctx context.Context) ([]model.Alocacao, error) {
	var list []model.Alocacao
	err := r.db.WithContext(ctx).
		Preload("Tombamento").Preload("Tombamento.Produto").
		Preload("UnidadeSaude").Preload("Setor").
		Where("ativo = true").Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *alocacaoRepo) AtualizarCampos(ctx context.Context, id uuid.UUID, campos map[string]interface{}, versaoEsperada *int) (int64, error) {
	campos["version"] = gorm.Expr("version + 1")
	q := r.db.WithContext(ctx).Model(&model.Alocacao{}).Where("id = ?", id)
	if versaoEsperada != nil {
		q = q.Where("version = ?", *versaoEsperada)
	}
	res := q.Updates(campos)
	return res.RowsAffected, res.Error
}

func (r *alocacaoRepo) SoftDeleteTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Model(&model.Alocacao{}).Where("id = ?", id).Updates(map[string]interface{}{
		"ativo":   false,
		"version": gorm.Expr("version + 1"),
	}).Error
}

func (r *alocacaoRepo) DB() *gorm.DB { return r.db }
