package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/WHSBrasil/IS-PAT/internal/model"
)

// ProdutoRepository is the data access contract for the product catalog.
type ProdutoRepository interface {
	Criar(ctx context.Context, p *model.Produto) error
	BuscarPorID(ctx context.Context, id uuid.UUID) (*model.Produto, error)
	Listar(ctx context.Context) ([]model.Produto, error)
	AtualizarCampos(ctx context.Context, id uuid.UUID, campos map[string]interface{}, versaoEsperada *int) (int64, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type produtoRepo struct{ db *gorm.DB }

func NewProdutoRepository(db *gorm.DB) ProdutoRepository { return &produtoRepo{db: db} }

func (r *produtoRepo) Criar(ctx context.Context, p *model.Produto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *produtoRepo) BuscarPorID(ctx context.Context, id uuid.UUID) (*model.Produto, error) {
	var p model.Produto
	err := r.db.WithContext(ctx).Preload("Classificacao").First(&p, "id = ?", id).Error
	return &p, err
}

func (r *produtoRepo) Listar(ctx context.Context) ([]model.Produto, error) {
	var list []model.Produto
	err := r.db.WithContext(ctx).Preload("Classificacao").
		Where("ativo = true").Order("nome ASC").Find(&list).Error
	return list, err
}

func (r *produtoRepo) AtualizarCampos(ctx context.Context, id uuid.UUID, campos map[string]interface{}, versaoEsperada *int) (int64, error) {
	campos["version"] = gorm.Expr("version + 1")
	q := r.db.WithContext(ctx).Model(&model.Produto{}).Where("id = ?", id)
	if versaoEsperada != nil {
		q = q.Where("version = ?", *versaoEsperada)
	}
	res := q.Updates(campos)
	return res.RowsAffected, res.Error
}

func (r *produtoRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Produto{}).Where("id = ?", id).Update("ativo", false).Error
}
