package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/WHSBrasil/IS-PAT/internal/model"
)

// ClassificacaoRepository is the data access contract for equipment classes.
type ClassificacaoRepository interface {
	Criar(ctx context.Context, c *model.Classificacao) error
	BuscarPorID(ctx context.Context, id uuid.UUID) (*model.Classificacao, error)
	Listar(ctx context.Context) ([]model.Classificacao, error)
	// AtualizarCampos performs a partial update with version increment.
	// When versaoEsperada is non-nil the update is guarded by it; the
	// returned count is the number of rows touched (0 on a stale version).
	AtualizarCampos(ctx context.Context, id uuid.UUID, campos map[string]interface{}, versaoEsperada *int) (int64, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type classificacaoRepo struct{ db *gorm.DB }

func NewClassificacaoRepository(db *gorm.DB) ClassificacaoRepository {
	return &classificacaoRepo{db: db}
}

func (r *classificacaoRepo) Criar(ctx context.Context, c *model.Classificacao) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *classificacaoRepo) BuscarPorID(ctx context.Context, id uuid.UUID) (*model.Classificacao, error) {
	var c model.Classificacao
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return &c, err
}

func (r *classificacaoRepo) Listar(ctx context.Context) ([]model.Classificacao, error) {
	var list []model.Classificacao
	err := r.db.WithContext(ctx).Where("ativo = true").Order("nome ASC").Find(&list).Error
	return list, err
}

func (r *classificacaoRepo) AtualizarCampos(ctx context.Context, id uuid.UUID, campos map[string]interface{}, versaoEsperada *int) (int64, error) {
	campos["version"] = gorm.Expr("version + 1")
	q := r.db.WithContext(ctx).Model(&model.Classificacao{}).Where("id = ?", id)
	if versaoEsperada != nil {
		q = q.Where("version = ?", *versaoEsperada)
	}
	res := q.Updates(campos)
	return res.RowsAffected, res.Error
}

func (r *classificacaoRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Classificacao{}).Where("id = ?", id).Update("ativo", false).Error
}
