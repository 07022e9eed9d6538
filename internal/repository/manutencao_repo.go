package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/WHSBrasil/IS-PAT/internal/model"
)

// ManutencaoRepository is the data access contract for maintenance records.
type ManutencaoRepository interface {
	CriarTx(tx *gorm.DB, m *model.Manutencao) error
	BuscarPorID(ctx context.Context, id uuid.UUID) (*model.Manutencao, error)
	// BuscarAbertaPorTombamento returns the asset's open maintenance record
	// (active, null return date), gorm.ErrRecordNotFound when there is none.
	BuscarAbertaPorTombamento(ctx context.Context, tombamentoID uuid.UUID) (*model.Manutencao, error)
	ListarDetalhadas(ctx context.Context) ([]model.Manutencao, error)
	RegistrarRetornoTx(tx *gorm.DB, id uuid.UUID, dataRetorno time.Time) error
	SoftDeleteTx(tx *gorm.DB, id uuid.UUID) error
	DB() *gorm.DB
}

type manutencaoRepo struct{ db *gorm.DB }

func NewManutencaoRepository(db *gorm.DB) ManutencaoRepository { return &manutencaoRepo{db: db} }

func (r *manutencaoRepo) CriarTx(tx *gorm.DB, m *model.Manutencao) error {
	return tx.Create(m).Error
}

func (r *manutencaoRepo) BuscarPorID(ctx context.Context, id uuid.UUID) (*model.Manutencao, error) {
	var m model.Manutencao
	err := r.db.WithContext(ctx).
		Preload("Tombamento").Preload("Tombamento.Produto").
		First(&m, "id = ?", id).Error
	return &m, err
}

func (r *manutencaoRepo) BuscarAbertaPorTombamento(ctx context.Context, tombamentoID uuid.UUID) (*model.Manutencao, error) {
	var m model.Manutencao
	err := r.db.WithContext(ctx).
		Where("tombamento_id = ? AND ativo = true AND data_retorno IS NULL", tombamentoID).
		First(&m).Error
	return &m, err
}

func (r *manutencaoRepo) ListarDetalhadas(ctx context.Context) ([]model.Manutencao, error) {
	var list []model.Manutencao
	err := r.db.WithContext(ctx).
		Preload("Tombamento").Preload("Tombamento.Produto").
		Where("ativo = true").Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *manutencaoRepo) RegistrarRetornoTx(tx *gorm.DB, id uuid.UUID, dataRetorno time.Time) error {
	return tx.Model(&model.Manutencao{}).Where("id = ?", id).Updates(map[string]interface{}{
		"data_retorno": dataRetorno,
		"version":      gorm.Expr("version + 1"),
	}).Error
}

func (r *manutencaoRepo) SoftDeleteTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Model(&model.Manutencao{}).Where("id = ?", id).Updates(map[string]interface{}{
		"ativo":   false,
		"version": gorm.Expr("version + 1"),
	}).Error
}

func (r *manutencaoRepo) DB() *gorm.DB { return r.db }
