package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/WHSBrasil/IS-PAT/internal/model"
)

// UnidadeRepository covers the location master data: health units and their
// sectors.
type UnidadeRepository interface {
	CriarUnidade(ctx context.Context, u *model.UnidadeSaude) error
	BuscarUnidadePorID(ctx context.Context, id uuid.UUID) (*model.UnidadeSaude, error)
	ListarUnidades(ctx context.Context) ([]model.UnidadeSaude, error)
	AtualizarUnidade(ctx context.Context, id uuid.UUID, campos map[string]interface{}, versaoEsperada *int) (int64, error)
	SoftDeleteUnidade(ctx context.Context, id uuid.UUID) error

	CriarSetor(ctx context.Context, s *model.Setor) error
	BuscarSetorPorID(ctx context.Context, id uuid.UUID) (*model.Setor, error)
	ListarSetores(ctx context.Context) ([]model.Setor, error)
	AtualizarSetor(ctx context.Context, id uuid.UUID, campos map[string]interface{}, versaoEsperada *int) (int64, error)
	SoftDeleteSetor(ctx context.Context, id uuid.UUID) error
}

type unidadeRepo struct{ db *gorm.DB }

func NewUnidadeRepository(db *gorm.DB) UnidadeRepository { return &unidadeRepo{db: db} }

func (r *unidadeRepo) CriarUnidade(ctx context.Context, u *model.UnidadeSaude) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *unidadeRepo) BuscarUnidadePorID(ctx context.Context, id uuid.UUID) (*model.UnidadeSaude, error) {
	var u model.UnidadeSaude
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return &u, err
}

func (r *unidadeRepo) ListarUnidades(ctx context.Context) ([]model.UnidadeSaude, error) {
	var list []model.UnidadeSaude
	err := r.db.WithContext(ctx).Where("ativo = true").Order("nome ASC").Find(&list).Error
	return list, err
}

func (r *unidadeRepo) AtualizarUnidade(ctx context.Context, id uuid.UUID, campos map[string]interface{}, versaoEsperada *int) (int64, error) {
	campos["version"] = gorm.Expr("version + 1")
	q := r.db.WithContext(ctx).Model(&model.UnidadeSaude{}).Where("id = ?", id)
	if versaoEsperada != nil {
		q = q.Where("version = ?", *versaoEsperada)
	}
	res := q.Updates(campos)
	return res.RowsAffected, res.Error
}

func (r *unidadeRepo) SoftDeleteUnidade(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.UnidadeSaude{}).Where("id = ?", id).Update("ativo", false).Error
}

func (r *unidadeRepo) CriarSetor(ctx context.Context, s *model.Setor) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *unidadeRepo) BuscarSetorPorID(ctx context.Context, id uuid.UUID) (*model.Setor, error) {
	var s model.Setor
	err := r.db.WithContext(ctx).Preload("UnidadeSaude").First(&s, "id = ?", id).Error
	return &s, err
}

func (r *unidadeRepo) ListarSetores(ctx context.Context) ([]model.Setor, error) {
	var list []model.Setor
	err := r.db.WithContext(ctx).Preload("UnidadeSaude").
		Where("ativo = true").Order("nome ASC").Find(&list).Error
	return list, err
}

func (r *unidadeRepo) AtualizarSetor(ctx context.Context, id uuid.UUID, campos map[string]interface{}, versaoEsperada *int) (int64, error) {
	campos["version"] = gorm.Expr("version + 1")
	q := r.db.WithContext(ctx).Model(&model.Setor{}).Where("id = ?", id)
	if versaoEsperada != nil {
		q = q.Where("version = ?", *versaoEsperada)
	}
	res := q.Updates(campos)
	return res.RowsAffected, res.Error
}

func (r *unidadeRepo) SoftDeleteSetor(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Setor{}).Where("id = ?", id).Update("ativo", false).Error
}
