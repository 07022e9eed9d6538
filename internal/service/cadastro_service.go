package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/WHSBrasil/IS-PAT/internal/apierror"
	"github.com/WHSBrasil/IS-PAT/internal/dto"
	"github.com/WHSBrasil/IS-PAT/internal/model"
	"github.com/WHSBrasil/IS-PAT/internal/repository"
)

// CadastroService covers the master data the lifecycle engine references:
// classifications, products, health units and sectors. Updates accept an
// optional expected version for optimistic conflict detection.
type CadastroService interface {
	CriarClassificacao(ctx context.Context, req dto.CriarClassificacaoRequest) (*dto.ClassificacaoResponse, error)
	ListarClassificacoes(ctx context.Context) ([]dto.ClassificacaoResponse, error)
	BuscarClassificacao(ctx context.Context, id uuid.UUID) (*dto.ClassificacaoResponse, error)
	AtualizarClassificacao(ctx context.Context, id uuid.UUID, req dto.AtualizarClassificacaoRequest) (*dto.ClassificacaoResponse, error)
	ExcluirClassificacao(ctx context.Context, id uuid.UUID) error

	CriarProduto(ctx context.Context, req dto.CriarProdutoRequest) (*dto.ProdutoResponse, error)
	ListarProdutos(ctx context.Context) ([]dto.ProdutoResponse, error)
	AtualizarProduto(ctx context.Context, id uuid.UUID, req dto.AtualizarProdutoRequest) (*dto.ProdutoResponse, error)
	ExcluirProduto(ctx context.Context, id uuid.UUID) error

	CriarUnidade(ctx context.Context, req dto.CriarUnidadeRequest) (*dto.UnidadeResponse, error)
	ListarUnidades(ctx context.Context) ([]dto.UnidadeResponse, error)
	AtualizarUnidade(ctx context.Context, id uuid.UUID, req dto.AtualizarUnidadeRequest) (*dto.UnidadeResponse, error)
	ExcluirUnidade(ctx context.Context, id uuid.UUID) error

	CriarSetor(ctx context.Context, req dto.CriarSetorRequest) (*dto.SetorResponse, error)
	ListarSetores(ctx context.Context) ([]dto.SetorResponse, error)
	AtualizarSetor(ctx context.Context, id uuid.UUID, req dto.AtualizarSetorRequest) (*dto.SetorResponse, error)
	ExcluirSetor(ctx context.Context, id uuid.UUID) error
}

type cadastroService struct {
	classificacoes repository.ClassificacaoRepository
	produtos       repository.ProdutoRepository
	unidades       repository.UnidadeRepository
}

func NewCadastroService(
	classificacoes repository.ClassificacaoRepository,
	produtos repository.ProdutoRepository,
	unidades repository.UnidadeRepository,
) CadastroService {
	return &cadastroService{classificacoes: classificacoes, produtos: produtos, unidades: unidades}
}

// aplicarUpdate maps the compare-and-increment result to domain errors.
func aplicarUpdate(rows int64, err error, versaoEsperada *int) error {
	if err != nil {
		return apierror.Storage(err)
	}
	if rows == 0 {
		if versaoEsperada != nil {
			return apierror.Conflictf("registro foi alterado por outra operação")
		}
		return apierror.NotFoundf("registro não encontrado")
	}
	return nil
}

// ── Classificacao ─────────────────────────────────────────────────────────────

func (s *cadastroService) CriarClassificacao(ctx context.Context, req dto.CriarClassificacaoRequest) (*dto.ClassificacaoResponse, error) {
	c := &model.Classificacao{Nome: req.Nome, Ativo: true}
	if err := s.classificacoes.Criar(ctx, c); err != nil {
		return nil, apierror.Storage(err)
	}
	resp := mapClassificacao(*c)
	return &resp, nil
}

func (s *cadastroService) ListarClassificacoes(ctx context.Context) ([]dto.ClassificacaoResponse, error) {
	list, err := s.classificacoes.Listar(ctx)
	if err != nil {
		return nil, apierror.Storage(err)
	}
	result := make([]dto.ClassificacaoResponse, 0, len(list))
	for _, c := range list {
		result = append(result, mapClassificacao(c))
	}
	return result, nil
}

func (s *cadastroService) BuscarClassificacao(ctx context.Context, id uuid.UUID) (*dto.ClassificacaoResponse, error) {
	c, err := s.classificacoes.BuscarPorID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apierror.NotFoundf("classificação não encontrada")
		}
		return nil, apierror.Storage(err)
	}
	resp := mapClassificacao(*c)
	return &resp, nil
}

func (s *cadastroService) AtualizarClassificacao(ctx context.Context, id uuid.UUID, req dto.AtualizarClassificacaoRequest) (*dto.ClassificacaoResponse, error) {
	if _, err := s.BuscarClassificacao(ctx, id); err != nil {
		return nil, err
	}
	campos := map[string]interface{}{}
	if req.Nome != nil {
		campos["nome"] = *req.Nome
	}
	if len(campos) == 0 {
		return nil, apierror.Validationf("nenhum campo para atualizar")
	}
	rows, err := s.classificacoes.AtualizarCampos(ctx, id, campos, req.VersaoEsperada)
	if err := aplicarUpdate(rows, err, req.VersaoEsperada); err != nil {
		return nil, err
	}
	return s.BuscarClassificacao(ctx, id)
}

func (s *cadastroService) ExcluirClassificacao(ctx context.Context, id uuid.UUID) error {
	if _, err := s.BuscarClassificacao(ctx, id); err != nil {
		return err
	}
	if err := s.classificacoes.SoftDelete(ctx, id); err != nil {
		return apierror.Storage(err)
	}
	return nil
}

// ── Produto ───────────────────────────────────────────────────────────────────

func (s *cadastroService) CriarProduto(ctx context.Context, req dto.CriarProdutoRequest) (*dto.ProdutoResponse, error) {
	p := &model.Produto{Nome: req.Nome, Descricao: req.Descricao, Ativo: true}
	if req.ClassificacaoID != nil && *req.ClassificacaoID != "" {
		id, err := uuid.Parse(*req.ClassificacaoID)
		if err != nil {
			return nil, apierror.Validationf("classificacaoId inválido")
		}
		if _, err := s.classificacoes.BuscarPorID(ctx, id); err != nil {
			if isNotFound(err) {
				return nil, apierror.NotFoundf("classificação não encontrada")
			}
			return nil, apierror.Storage(err)
		}
		p.ClassificacaoID = &id
	}
	if err := s.produtos.Criar(ctx, p); err != nil {
		return nil, apierror.Storage(err)
	}
	full, err := s.produtos.BuscarPorID(ctx, p.ID)
	if err != nil {
		return nil, apierror.Storage(err)
	}
	resp := mapProduto(*full)
	return &resp, nil
}

func (s *cadastroService) ListarProdutos(ctx context.Context) ([]dto.ProdutoResponse, error) {
	list, err := s.produtos.Listar(ctx)
	if err != nil {
		return nil, apierror.Storage(err)
	}
	result := make([]dto.ProdutoResponse, 0, len(list))
	for _, p := range list {
		result = append(result, mapProduto(p))
	}
	return result, nil
}

func (s *cadastroService) AtualizarProduto(ctx context.Context, id uuid.UUID, req dto.AtualizarProdutoRequest) (*dto.ProdutoResponse, error) {
	if _, err := s.produtos.BuscarPorID(ctx, id); err != nil {
		if isNotFound(err) {
			return nil, apierror.NotFoundf("produto não encontrado")
		}
		return nil, apierror.Storage(err)
	}
	campos := map[string]interface{}{}
	if req.Nome != nil {
		campos["nome"] = *req.Nome
	}
	if req.Descricao != nil {
		campos["descricao"] = *req.Descricao
	}
	if req.ClassificacaoID != nil {
		cid, err := uuid.Parse(*req.ClassificacaoID)
		if err != nil {
			return nil, apierror.Validationf("classificacaoId inválido")
		}
		campos["classificacao_id"] = cid
	}
	if len(campos) == 0 {
		return nil, apierror.Validationf("nenhum campo para atualizar")
	}
	rows, err := s.produtos.AtualizarCampos(ctx, id, campos, req.VersaoEsperada)
	if err := aplicarUpdate(rows, err, req.VersaoEsperada); err != nil {
		return nil, err
	}
	full, err := s.produtos.BuscarPorID(ctx, id)
	if err != nil {
		return nil, apierror.Storage(err)
	}
	resp := mapProduto(*full)
	return &resp, nil
}

func (s *cadastroService) ExcluirProduto(ctx context.Context, id uuid.UUID) error {
	if _, err := s.produtos.BuscarPorID(ctx, id); err != nil {
		if isNotFound(err) {
			return apierror.NotFoundf("produto não encontrado")
		}
		return apierror.Storage(err)
	}
	if err := s.produtos.SoftDelete(ctx, id); err != nil {
		return apierror.Storage(err)
	}
	return nil
}

// ── UnidadeSaude ──────────────────────────────────────────────────────────────

func (s *cadastroService) CriarUnidade(ctx context.Context, req dto.CriarUnidadeRequest) (*dto.UnidadeResponse, error) {
	u := &model.UnidadeSaude{Nome: req.Nome, Endereco: req.Endereco, Ativo: true}
	if err := s.unidades.CriarUnidade(ctx, u); err != nil {
		return nil, apierror.Storage(err)
	}
	resp := mapUnidade(*u)
	return &resp, nil
}

func (s *cadastroService) ListarUnidades(ctx context.Context) ([]dto.UnidadeResponse, error) {
	list, err := s.unidades.ListarUnidades(ctx)
	if err != nil {
		return nil, apierror.Storage(err)
	}
	result := make([]dto.UnidadeResponse, 0, len(list))
	for _, u := range list {
		result = append(result, mapUnidade(u))
	}
	return result, nil
}

func (s *cadastroService) AtualizarUnidade(ctx context.Context, id uuid.UUID, req dto.AtualizarUnidadeRequest) (*dto.UnidadeResponse, error) {
	if _, err := s.unidades.BuscarUnidadePorID(ctx, id); err != nil {
		if isNotFound(err) {
			return nil, apierror.NotFoundf("unidade de saúde não encontrada")
		}
		return nil, apierror.Storage(err)
	}
	campos := map[string]interface{}{}
	if req.Nome != nil {
		campos["nome"] = *req.Nome
	}
	if req.Endereco != nil {
		campos["endereco"] = *req.Endereco
	}
	if len(campos) == 0 {
		return nil, apierror.Validationf("nenhum campo para atualizar")
	}
	rows, err := s.unidades.AtualizarUnidade(ctx, id, campos, req.VersaoEsperada)
	if err := aplicarUpdate(rows, err, req.VersaoEsperada); err != nil {
		return nil, err
	}
	u, err := s.unidades.BuscarUnidadePorID(ctx, id)
	if err != nil {
		return nil, apierror.Storage(err)
	}
	resp := mapUnidade(*u)
	return &resp, nil
}

func (s *cadastroService) ExcluirUnidade(ctx context.Context, id uuid.UUID) error {
	if _, err := s.unidades.BuscarUnidadePorID(ctx, id); err != nil {
		if isNotFound(err) {
			return apierror.NotFoundf("unidade de saúde não encontrada")
		}
		return apierror.Storage(err)
	}
	if err := s.unidades.SoftDeleteUnidade(ctx, id); err != nil {
		return apierror.Storage(err)
	}
	return nil
}

// ── Setor ─────────────────────────────────────────────────────────────────────

func (s *cadastroService) CriarSetor(ctx context.Context, req dto.CriarSetorRequest) (*dto.SetorResponse, error) {
	st := &model.Setor{Nome: req.Nome, Ativo: true}
	if req.UnidadeSaudeID != nil && *req.UnidadeSaudeID != "" {
		id, err := uuid.Parse(*req.UnidadeSaudeID)
		if err != nil {
			return nil, apierror.Validationf("unidadeSaudeId inválido")
		}
		if _, err := s.unidades.BuscarUnidadePorID(ctx, id); err != nil {
			if isNotFound(err) {
				return nil, apierror.NotFoundf("unidade de saúde não encontrada")
			}
			return nil, apierror.Storage(err)
		}
		st.UnidadeSaudeID = &id
	}
	if err := s.unidades.CriarSetor(ctx, st); err != nil {
		return nil, apierror.Storage(err)
	}
	full, err := s.unidades.BuscarSetorPorID(ctx, st.ID)
	if err != nil {
		return nil, apierror.Storage(err)
	}
	resp := mapSetor(*full)
	return &resp, nil
}

func (s *cadastroService) ListarSetores(ctx context.Context) ([]dto.SetorResponse, error) {
	list, err := s.unidades.ListarSetores(ctx)
	if err != nil {
		return nil, apierror.Storage(err)
	}
	result := make([]dto.SetorResponse, 0, len(list))
	for _, st := range list {
		result = append(result, mapSetor(st))
	}
	return result, nil
}

func (s *cadastroService) AtualizarSetor(ctx context.Context, id uuid.UUID, req dto.AtualizarSetorRequest) (*dto.SetorResponse, error) {
	if _, err := s.unidades.BuscarSetorPorID(ctx, id); err != nil {
		if isNotFound(err) {
			return nil, apierror.NotFoundf("setor não encontrado")
		}
		return nil, apierror.Storage(err)
	}
	campos := map[string]interface{}{}
	if req.Nome != nil {
		campos["nome"] = *req.Nome
	}
	if req.UnidadeSaudeID != nil {
		uid, err := uuid.Parse(*req.UnidadeSaudeID)
		if err != nil {
			return nil, apierror.Validationf("unidadeSaudeId inválido")
		}
		campos["unidade_saude_id"] = uid
	}
	if len(campos) == 0 {
		return nil, apierror.Validationf("nenhum campo para atualizar")
	}
	rows, err := s.unidades.AtualizarSetor(ctx, id, campos, req.VersaoEsperada)
	if err := aplicarUpdate(rows, err, req.VersaoEsperada); err != nil {
		return nil, err
	}
	st, err := s.unidades.BuscarSetorPorID(ctx, id)
	if err != nil {
		return nil, apierror.Storage(err)
	}
	resp := mapSetor(*st)
	return &resp, nil
}

func (s *cadastroService) ExcluirSetor(ctx context.Context, id uuid.UUID) error {
	if _, err := s.unidades.BuscarSetorPorID(ctx, id); err != nil {
		if isNotFound(err) {
			return apierror.NotFoundf("setor não encontrado")
		}
		return apierror.Storage(err)
	}
	if err := s.unidades.SoftDeleteSetor(ctx, id); err != nil {
		return apierror.Storage(err)
	}
	return nil
}
