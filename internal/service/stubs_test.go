package service

// In-memory repository stubs shared by the service tests. They mirror the
// GORM implementations closely enough to exercise the lifecycle engine:
// gorm.ErrRecordNotFound on misses, version compare-and-increment on partial
// updates, and nil *gorm.DB so runTx calls the callback directly.

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/WHSBrasil/IS-PAT/internal/dto"
	"github.com/WHSBrasil/IS-PAT/internal/model"
	"github.com/WHSBrasil/IS-PAT/internal/repository"
)

// ── Tombamento ───────────────────────────────────────────────────────────────

type stubTombamentoRepo struct {
	tombamentos map[uuid.UUID]*model.Tombamento
	produtos    map[uuid.UUID]*model.Produto
}

func newStubTombamentoRepo() *stubTombamentoRepo {
	return &stubTombamentoRepo{
		tombamentos: make(map[uuid.UUID]*model.Tombamento),
		produtos:    make(map[uuid.UUID]*model.Produto),
	}
}

func (r *stubTombamentoRepo) Criar(_ context.Context, t *model.Tombamento) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	t.CreatedAt = time.Now()
	cloned := *t
	r.tombamentos[t.ID] = &cloned
	return nil
}

func (r *stubTombamentoRepo) BuscarPorID(_ context.Context, id uuid.UUID) (*model.Tombamento, error) {
	t, ok := r.tombamentos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cloned := *t
	if p, ok := r.produtos[t.ProdutoID]; ok {
		cloned.Produto = p
	}
	return &cloned, nil
}

func (r *stubTombamentoRepo) BuscarAtivoPorNumero(_ context.Context, numero string) (*model.Tombamento, error) {
	for _, t := range r.tombamentos {
		if t.Numero == numero && t.Ativo {
			cloned := *t
			return &cloned, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubTombamentoRepo) Listar(_ context.Context) ([]model.Tombamento, error) {
	var list []model.Tombamento
	for _, t := range r.tombamentos {
		if t.Ativo {
			list = append(list, *t)
		}
	}
	return list, nil
}

func (r *stubTombamentoRepo) AtualizarCampos(_ context.Context, id uuid.UUID, campos map[string]interface{}, versaoEsperada *int) (int64, error) {
	t, ok := r.tombamentos[id]
	if !ok {
		return 0, nil
	}
	if versaoEsperada != nil && t.Version != *versaoEsperada {
		return 0, nil
	}
	for k, v := range campos {
		switch k {
		case "numero":
			t.Numero = v.(string)
		case "serial":
			s := v.(string)
			t.Serial = &s
		case "responsavel":
			s := v.(string)
			t.Responsavel = &s
		case "produto_id":
			t.ProdutoID = v.(uuid.UUID)
		case "fotos":
			t.Fotos = v.(model.Fotos)
		}
	}
	t.Version++
	return 1, nil
}

func (r *stubTombamentoRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	if t, ok := r.tombamentos[id]; ok {
		t.Ativo = false
		t.Version++
	}
	return nil
}

func (r *stubTombamentoRepo) AtualizarStatusTx(_ *gorm.DB, id uuid.UUID, status string) error {
	t, ok := r.tombamentos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	t.Status = status
	t.Version++
	return nil
}

func (r *stubTombamentoRepo) ContarPorStatus(_ context.Context) (dto.DashboardStats, error) {
	var stats dto.DashboardStats
	for _, t := range r.tombamentos {
		if !t.Ativo {
			continue
		}
		stats.TotalItems++
		switch t.Status {
		case model.StatusDisponivel:
			stats.Available++
		case model.StatusAlocado:
			stats.Allocated++
		case model.StatusManutencao:
			stats.Maintenance++
		}
	}
	return stats, nil
}

func (r *stubTombamentoRepo) DB() *gorm.DB { return nil }

var _ repository.TombamentoRepository = (*stubTombamentoRepo)(nil)

// ── Alocacao ─────────────────────────────────────────────────────────────────

type stubAlocacaoRepo struct {
	alocacoes map[uuid.UUID]*model.Alocacao
}

func newStubAlocacaoRepo() *stubAlocacaoRepo {
	return &stubAlocacaoRepo{alocacoes: make(map[uuid.UUID]*model.Alocacao)}
}

func (r *stubAlocacaoRepo) CriarTx(_ *gorm.DB, a *model.Alocacao) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	a.CreatedAt = time.Now()
	cloned := *a
	r.alocacoes[a.ID] = &cloned
	return nil
}

func (r *stubAlocacaoRepo) BuscarPorID(_ context.Context, id uuid.UUID) (*model.Alocacao, error) {
	a, ok := r.alocacoes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cloned := *a
	return &cloned, nil
}

func (r *stubAlocacaoRepo) BuscarAtivaPorTombamento(_ context.Context, tombamentoID uuid.UUID) (*model.Alocacao, error) {
	for _, a := range r.alocacoes {
		if a.TombamentoID == tombamentoID && a.Ativo {
			cloned := *a
			return &cloned, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubAlocacaoRepo) ListarDetalhadas(_ context.Context) ([]model.Alocacao, error) {
	var list []model.Alocacao
	for _, a := range r.alocacoes {
		if a.Ativo {
			list = append(list, *a)
		}
	}
	return list, nil
}

func (r *stubAlocacaoRepo) AtualizarCampos(_ context.Context, id uuid.UUID, campos map[string]interface{}, versaoEsperada *int) (int64, error) {
	a, ok := r.alocacoes[id]
	if !ok {
		return 0, nil
	}
	if versaoEsperada != nil && a.Version != *versaoEsperada {
		return 0, nil
	}
	for k, v := range campos {
		switch k {
		case "responsavel_unidade":
			a.ResponsavelUnidade = v.(string)
		case "termo":
			s := v.(string)
			a.Termo = &s
		case "responsavel":
			s := v.(string)
			a.Responsavel = &s
		}
	}
	a.Version++
	return 1, nil
}

func (r *stubAlocacaoRepo) SoftDeleteTx(_ *gorm.DB, id uuid.UUID) error {
	if a, ok := r.alocacoes[id]; ok {
		a.Ativo = false
		a.Version++
	}
	return nil
}

func (r *stubAlocacaoRepo) DB() *gorm.DB { return nil }

var _ repository.AlocacaoRepository = (*stubAlocacaoRepo)(nil)

// ── Manutencao ───────────────────────────────────────────────────────────────

type stubManutencaoRepo struct {
	manutencoes map[uuid.UUID]*model.Manutencao
}

func newStubManutencaoRepo() *stubManutencaoRepo {
	return &stubManutencaoRepo{manutencoes: make(map[uuid.UUID]*model.Manutencao)}
}

func (r *stubManutencaoRepo) CriarTx(_ *gorm.DB, m *model.Manutencao) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.CreatedAt = time.Now()
	cloned := *m
	r.manutencoes[m.ID] = &cloned
	return nil
}

func (r *stubManutencaoRepo) BuscarPorID(_ context.Context, id uuid.UUID) (*model.Manutencao, error) {
	m, ok := r.manutencoes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cloned := *m
	return &cloned, nil
}

func (r *stubManutencaoRepo) BuscarAbertaPorTombamento(_ context.Context, tombamentoID uuid.UUID) (*model.Manutencao, error) {
	for _, m := range r.manutencoes {
		if m.TombamentoID == tombamentoID && m.Aberta() {
			cloned := *m
			return &cloned, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubManutencaoRepo) ListarDetalhadas(_ context.Context) ([]model.Manutencao, error) {
	var list []model.Manutencao
	for _, m := range r.manutencoes {
		if m.Ativo {
			list = append(list, *m)
		}
	}
	return list, nil
}

func (r *stubManutencaoRepo) RegistrarRetornoTx(_ *gorm.DB, id uuid.UUID, dataRetorno time.Time) error {
	m, ok := r.manutencoes[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	m.DataRetorno = &dataRetorno
	m.Version++
	return nil
}

func (r *stubManutencaoRepo) SoftDeleteTx(_ *gorm.DB, id uuid.UUID) error {
	if m, ok := r.manutencoes[id]; ok {
		m.Ativo = false
		m.Version++
	}
	return nil
}

func (r *stubManutencaoRepo) DB() *gorm.DB { return nil }

var _ repository.ManutencaoRepository = (*stubManutencaoRepo)(nil)

// ── Transferencia ────────────────────────────────────────────────────────────

type stubTransferenciaRepo struct {
	transferencias map[uuid.UUID]*model.Transferencia
}

func newStubTransferenciaRepo() *stubTransferenciaRepo {
	return &stubTransferenciaRepo{transferencias: make(map[uuid.UUID]*model.Transferencia)}
}

func (r *stubTransferenciaRepo) Criar(_ context.Context, t *model.Transferencia) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	t.CreatedAt = time.Now()
	cloned := *t
	r.transferencias[t.ID] = &cloned
	return nil
}

func (r *stubTransferenciaRepo) BuscarPorID(_ context.Context, id uuid.UUID) (*model.Transferencia, error) {
	t, ok := r.transferencias[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cloned := *t
	return &cloned, nil
}

func (r *stubTransferenciaRepo) ListarDetalhadas(_ context.Context) ([]model.Transferencia, error) {
	var list []model.Transferencia
	for _, t := range r.transferencias {
		if t.Ativo {
			list = append(list, *t)
		}
	}
	return list, nil
}

var _ repository.TransferenciaRepository = (*stubTransferenciaRepo)(nil)

// ── Unidade / Setor ──────────────────────────────────────────────────────────

type stubUnidadeRepo struct {
	unidades map[uuid.UUID]*model.UnidadeSaude
	setores  map[uuid.UUID]*model.Setor
}

func newStubUnidadeRepo() *stubUnidadeRepo {
	return &stubUnidadeRepo{
		unidades: make(map[uuid.UUID]*model.UnidadeSaude),
		setores:  make(map[uuid.UUID]*model.Setor),
	}
}

func (r *stubUnidadeRepo) CriarUnidade(_ context.Context, u *model.UnidadeSaude) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	cloned := *u
	r.unidades[u.ID] = &cloned
	return nil
}

func (r *stubUnidadeRepo) BuscarUnidadePorID(_ context.Context, id uuid.UUID) (*model.UnidadeSaude, error) {
	u, ok := r.unidades[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cloned := *u
	return &cloned, nil
}

func (r *stubUnidadeRepo) ListarUnidades(_ context.Context) ([]model.UnidadeSaude, error) {
	var list []model.UnidadeSaude
	for _, u := range r.unidades {
		if u.Ativo {
			list = append(list, *u)
		}
	}
	return list, nil
}

func (r *stubUnidadeRepo) AtualizarUnidade(_ context.Context, id uuid.UUID, campos map[string]interface{}, versaoEsperada *int) (int64, error) {
	u, ok := r.unidades[id]
	if !ok {
		return 0, nil
	}
	if versaoEsperada != nil && u.Version != *versaoEsperada {
		return 0, nil
	}
	for k, v := range campos {
		switch k {
		case "nome":
			u.Nome = v.(string)
		case "endereco":
			s := v.(string)
			u.Endereco = &s
		}
	}
	u.Version++
	return 1, nil
}

func (r *stubUnidadeRepo) SoftDeleteUnidade(_ context.Context, id uuid.UUID) error {
	if u, ok := r.unidades[id]; ok {
		u.Ativo = false
		u.Version++
	}
	return nil
}

func (r *stubUnidadeRepo) CriarSetor(_ context.Context, s *model.Setor) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	cloned := *s
	r.setores[s.ID] = &cloned
	return nil
}

func (r *stubUnidadeRepo) BuscarSetorPorID(_ context.Context, id uuid.UUID) (*model.Setor, error) {
	s, ok := r.setores[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cloned := *s
	return &cloned, nil
}

func (r *stubUnidadeRepo) ListarSetores(_ context.Context) ([]model.Setor, error) {
	var list []model.Setor
	for _, s := range r.setores {
		if s.Ativo {
			list = append(list, *s)
		}
	}
	return list, nil
}

func (r *stubUnidadeRepo) AtualizarSetor(_ context.Context, id uuid.UUID, campos map[string]interface{}, versaoEsperada *int) (int64, error) {
	s, ok := r.setores[id]
	if !ok {
		return 0, nil
	}
	if versaoEsperada != nil && s.Version != *versaoEsperada {
		return 0, nil
	}
	for k, v := range campos {
		switch k {
		case "nome":
			s.Nome = v.(string)
		case "unidade_saude_id":
			id := v.(uuid.UUID)
			s.UnidadeSaudeID = &id
		}
	}
	s.Version++
	return 1, nil
}

func (r *stubUnidadeRepo) SoftDeleteSetor(_ context.Context, id uuid.UUID) error {
	if s, ok := r.setores[id]; ok {
		s.Ativo = false
		s.Version++
	}
	return nil
}

var _ repository.UnidadeRepository = (*stubUnidadeRepo)(nil)

// ── Classificacao / Produto ──────────────────────────────────────────────────

type stubClassificacaoRepo struct {
	classificacoes map[uuid.UUID]*model.Classificacao
}

func newStubClassificacaoRepo() *stubClassificacaoRepo {
	return &stubClassificacaoRepo{classificacoes: make(map[uuid.UUID]*model.Classificacao)}
}

func (r *stubClassificacaoRepo) Criar(_ context.Context, c *model.Classificacao) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	cloned := *c
	r.classificacoes[c.ID] = &cloned
	return nil
}

func (r *stubClassificacaoRepo) BuscarPorID(_ context.Context, id uuid.UUID) (*model.Classificacao, error) {
	c, ok := r.classificacoes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cloned := *c
	return &cloned, nil
}

func (r *stubClassificacaoRepo) Listar(_ context.Context) ([]model.Classificacao, error) {
	var list []model.Classificacao
	for _, c := range r.classificacoes {
		if c.Ativo {
			list = append(list, *c)
		}
	}
	return list, nil
}

func (r *stubClassificacaoRepo) AtualizarCampos(_ context.Context, id uuid.UUID, campos map[string]interface{}, versaoEsperada *int) (int64, error) {
	c, ok := r.classificacoes[id]
	if !ok {
		return 0, nil
	}
	if versaoEsperada != nil && c.Version != *versaoEsperada {
		return 0, nil
	}
	if nome, ok := campos["nome"]; ok {
		c.Nome = nome.(string)
	}
	c.Version++
	return 1, nil
}

func (r *stubClassificacaoRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	if c, ok := r.classificacoes[id]; ok {
		c.Ativo = false
		c.Version++
	}
	return nil
}

var _ repository.ClassificacaoRepository = (*stubClassificacaoRepo)(nil)

type stubProdutoRepo struct {
	produtos map[uuid.UUID]*model.Produto
}

func newStubProdutoRepo() *stubProdutoRepo {
	return &stubProdutoRepo{produtos: make(map[uuid.UUID]*model.Produto)}
}

func (r *stubProdutoRepo) Criar(_ context.Context, p *model.Produto) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	cloned := *p
	r.produtos[p.ID] = &cloned
	return nil
}

func (r *stubProdutoRepo) BuscarPorID(_ context.Context, id uuid.UUID) (*model.Produto, error) {
	p, ok := r.produtos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cloned := *p
	return &cloned, nil
}

func (r *stubProdutoRepo) Listar(_ context.Context) ([]model.Produto, error) {
	var list []model.Produto
	for _, p := range r.produtos {
		if p.Ativo {
			list = append(list, *p)
		}
	}
	return list, nil
}

func (r *stubProdutoRepo) AtualizarCampos(_ context.Context, id uuid.UUID, campos map[string]interface{}, versaoEsperada *int) (int64, error) {
	p, ok := r.produtos[id]
	if !ok {
		return 0, nil
	}
	if versaoEsperada != nil && p.Version != *versaoEsperada {
		return 0, nil
	}
	for k, v := range campos {
		switch k {
		case "nome":
			p.Nome = v.(string)
		case "descricao":
			s := v.(string)
			p.Descricao = &s
		case "classificacao_id":
			cid := v.(uuid.UUID)
			p.ClassificacaoID = &cid
		}
	}
	p.Version++
	return 1, nil
}

func (r *stubProdutoRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	if p, ok := r.produtos[id]; ok {
		p.Ativo = false
		p.Version++
	}
	return nil
}

var _ repository.ProdutoRepository = (*stubProdutoRepo)(nil)
