package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/WHSBrasil/IS-PAT/internal/apierror"
	"github.com/WHSBrasil/IS-PAT/internal/dto"
	"github.com/WHSBrasil/IS-PAT/internal/model"
	"github.com/WHSBrasil/IS-PAT/internal/repository"
)

// TombamentoService covers asset registration CRUD. The generic update path
// cannot carry a status value — only MovimentacaoService transitions it.
type TombamentoService interface {
	Criar(ctx context.Context, req dto.CriarTombamentoRequest, fotos model.Fotos) (*dto.TombamentoResponse, error)
	Buscar(ctx context.Context, id uuid.UUID) (*dto.TombamentoResponse, error)
	Listar(ctx context.Context) ([]dto.TombamentoResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarTombamentoRequest, fotos model.Fotos) (*dto.TombamentoResponse, error)
	Excluir(ctx context.Context, id uuid.UUID) error
	// Publico is the read-only view behind the label's QR code.
	Publico(ctx context.Context, id uuid.UUID) (*dto.TombamentoPublicoResponse, error)
}

type tombamentoService struct {
	repo        repository.TombamentoRepository
	produtos    repository.ProdutoRepository
	mantenedora string
}

func NewTombamentoService(repo repository.TombamentoRepository, produtos repository.ProdutoRepository, mantenedora string) TombamentoService {
	return &tombamentoService{repo: repo, produtos: produtos, mantenedora: mantenedora}
}

func parseValor(raw *string) (*decimal.Decimal, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	v, err := decimal.NewFromString(*raw)
	if err != nil {
		return nil, apierror.Validationf("valor inválido")
	}
	if v.IsNegative() {
		return nil, apierror.Validationf("valor não pode ser negativo")
	}
	return &v, nil
}

func (s *tombamentoService) Criar(ctx context.Context, req dto.CriarTombamentoRequest, fotos model.Fotos) (*dto.TombamentoResponse, error) {
	produtoID, err := uuid.Parse(req.ProdutoID)
	if err != nil {
		return nil, apierror.Validationf("produtoId inválido")
	}
	valor, err := parseValor(req.Valor)
	if err != nil {
		return nil, err
	}

	if _, err := s.produtos.BuscarPorID(ctx, produtoID); err != nil {
		if isNotFound(err) {
			return nil, apierror.NotFoundf("produto não encontrado")
		}
		return nil, apierror.Storage(err)
	}

	// Tag uniqueness among active assets; the partial index backs this up.
	if _, err := s.repo.BuscarAtivoPorNumero(ctx, req.Numero); err == nil {
		return nil, apierror.Conflictf("já existe tombamento ativo com esse número")
	} else if !isNotFound(err) {
		return nil, apierror.Storage(err)
	}

	t := &model.Tombamento{
		ProdutoID:   produtoID,
		Numero:      req.Numero,
		Serial:      req.Serial,
		Responsavel: req.Responsavel,
		Valor:       valor,
		Fotos:       fotos,
		Status:      model.StatusDisponivel,
		Ativo:       true,
	}
	if err := s.repo.Criar(ctx, t); err != nil {
		return nil, apierror.Storage(err)
	}
	return s.Buscar(ctx, t.ID)
}

func (s *tombamentoService) Buscar(ctx context.Context, id uuid.UUID) (*dto.TombamentoResponse, error) {
	t, err := s.repo.BuscarPorID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apierror.NotFoundf("tombamento não encontrado")
		}
		return nil, apierror.Storage(err)
	}
	resp := mapTombamento(*t)
	return &resp, nil
}

func (s *tombamentoService) Listar(ctx context.Context) ([]dto.TombamentoResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, apierror.Storage(err)
	}
	result := make([]dto.TombamentoResponse, 0, len(list))
	for _, t := range list {
		result = append(result, mapTombamento(t))
	}
	return result, nil
}

func (s *tombamentoService) Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarTombamentoRequest, fotos model.Fotos) (*dto.TombamentoResponse, error) {
	atual, err := s.repo.BuscarPorID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apierror.NotFoundf("tombamento não encontrado")
		}
		return nil, apierror.Storage(err)
	}

	campos := map[string]interface{}{}
	if req.ProdutoID != nil {
		produtoID, err := uuid.Parse(*req.ProdutoID)
		if err != nil {
			return nil, apierror.Validationf("produtoId inválido")
		}
		if _, err := s.produtos.BuscarPorID(ctx, produtoID); err != nil {
			if isNotFound(err) {
				return nil, apierror.NotFoundf("produto não encontrado")
			}
			return nil, apierror.Storage(err)
		}
		campos["produto_id"] = produtoID
	}
	if req.Numero != nil && *req.Numero != atual.Numero {
		if _, err := s.repo.BuscarAtivoPorNumero(ctx, *req.Numero); err == nil {
			return nil, apierror.Conflictf("já existe tombamento ativo com esse número")
		} else if !isNotFound(err) {
			return nil, apierror.Storage(err)
		}
		campos["numero"] = *req.Numero
	}
	if req.Serial != nil {
		campos["serial"] = *req.Serial
	}
	if req.Responsavel != nil {
		campos["responsavel"] = *req.Responsavel
	}
	if req.Valor != nil {
		valor, err := parseValor(req.Valor)
		if err != nil {
			return nil, err
		}
		campos["valor"] = valor
	}
	if len(fotos) > 0 {
		campos["fotos"] = fotos
	}
	if len(campos) == 0 {
		return nil, apierror.Validationf("nenhum campo para atualizar")
	}

	rows, err := s.repo.AtualizarCampos(ctx, id, campos, req.VersaoEsperada)
	if err != nil {
		return nil, apierror.Storage(err)
	}
	if rows == 0 {
		return nil, apierror.Conflictf("registro foi alterado por outra operação")
	}
	return s.Buscar(ctx, id)
}

func (s *tombamentoService) Excluir(ctx context.Context, id uuid.UUID) error {
	t, err := s.repo.BuscarPorID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return apierror.NotFoundf("tombamento não encontrado")
		}
		return apierror.Storage(err)
	}
	if !t.Ativo {
		return apierror.NotFoundf("tombamento não encontrado")
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return apierror.Storage(err)
	}
	return nil
}

func (s *tombamentoService) Publico(ctx context.Context, id uuid.UUID) (*dto.TombamentoPublicoResponse, error) {
	t, err := s.repo.BuscarPorID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apierror.NotFoundf("tombamento não encontrado")
		}
		return nil, apierror.Storage(err)
	}
	if !t.Ativo {
		return nil, apierror.NotFoundf("tombamento não encontrado")
	}
	produto := ""
	if t.Produto != nil {
		produto = t.Produto.Nome
	}
	return &dto.TombamentoPublicoResponse{
		Numero:      t.Numero,
		Produto:     produto,
		Serial:      t.Serial,
		Status:      t.Status,
		Mantenedora: s.mantenedora,
	}, nil
}
