package service

import (
	"time"

	"github.com/WHSBrasil/IS-PAT/internal/dto"
	"github.com/WHSBrasil/IS-PAT/internal/model"
)

const dateLayout = "2006-01-02"

func mapClassificacao(c model.Classificacao) dto.ClassificacaoResponse {
	return dto.ClassificacaoResponse{ID: c.ID, Nome: c.Nome, Version: c.Version, Ativo: c.Ativo}
}

func mapProduto(p model.Produto) dto.ProdutoResponse {
	resp := dto.ProdutoResponse{
		ID:        p.ID,
		Nome:      p.Nome,
		Descricao: p.Descricao,
		Version:   p.Version,
		Ativo:     p.Ativo,
	}
	if p.Classificacao != nil {
		c := mapClassificacao(*p.Classificacao)
		resp.Classificacao = &c
	}
	return resp
}

func mapUnidade(u model.UnidadeSaude) dto.UnidadeResponse {
	return dto.UnidadeResponse{ID: u.ID, Nome: u.Nome, Endereco: u.Endereco, Version: u.Version, Ativo: u.Ativo}
}

func mapSetor(s model.Setor) dto.SetorResponse {
	resp := dto.SetorResponse{ID: s.ID, Nome: s.Nome, Version: s.Version, Ativo: s.Ativo}
	if s.UnidadeSaude != nil {
		u := mapUnidade(*s.UnidadeSaude)
		resp.UnidadeSaude = &u
	}
	return resp
}

func mapTombamento(t model.Tombamento) dto.TombamentoResponse {
	resp := dto.TombamentoResponse{
		ID:          t.ID,
		Numero:      t.Numero,
		Serial:      t.Serial,
		Responsavel: t.Responsavel,
		Valor:       t.Valor,
		Status:      t.Status,
		Fotos:       t.Fotos,
		Version:     t.Version,
		Ativo:       t.Ativo,
	}
	if t.Produto != nil {
		p := mapProduto(*t.Produto)
		resp.Produto = &p
	}
	return resp
}

func mapAlocacao(a model.Alocacao) dto.AlocacaoResponse {
	resp := dto.AlocacaoResponse{
		ID:                 a.ID,
		ResponsavelUnidade: a.ResponsavelUnidade,
		DataAlocacao:       a.DataAlocacao.Format(dateLayout),
		Termo:              a.Termo,
		Responsavel:        a.Responsavel,
		Fotos:              a.Fotos,
		Ativo:              a.Ativo,
	}
	if a.Tombamento != nil {
		t := mapTombamento(*a.Tombamento)
		resp.Tombamento = &t
	}
	if a.UnidadeSaude != nil {
		u := mapUnidade(*a.UnidadeSaude)
		resp.UnidadeSaude = &u
	}
	if a.Setor != nil {
		s := mapSetor(*a.Setor)
		resp.Setor = &s
	}
	return resp
}

func mapTransferencia(t model.Transferencia) dto.TransferenciaResponse {
	resp := dto.TransferenciaResponse{
		ID:                 t.ID,
		ResponsavelDestino: t.ResponsavelDestino,
		DataTransferencia:  t.DataTransferencia.Format(dateLayout),
		Responsavel:        t.Responsavel,
	}
	if t.Tombamento != nil {
		tb := mapTombamento(*t.Tombamento)
		resp.Tombamento = &tb
	}
	if t.UnidadeOrigem != nil {
		u := mapUnidade(*t.UnidadeOrigem)
		resp.UnidadeOrigem = &u
	}
	if t.UnidadeDestino != nil {
		u := mapUnidade(*t.UnidadeDestino)
		resp.UnidadeDestino = &u
	}
	if t.SetorOrigem != nil {
		s := mapSetor(*t.SetorOrigem)
		resp.SetorOrigem = &s
	}
	if t.SetorDestino != nil {
		s := mapSetor(*t.SetorDestino)
		resp.SetorDestino = &s
	}
	return resp
}

func mapManutencao(m model.Manutencao, agora time.Time) dto.ManutencaoResponse {
	resp := dto.ManutencaoResponse{
		ID:           m.ID,
		DataRetirada: m.DataRetirada.Format(dateLayout),
		Motivo:       m.Motivo,
		Responsavel:  m.Responsavel,
		Atrasada:     ManutencaoAtrasada(&m, agora),
		Ativo:        m.Ativo,
	}
	if m.DataRetorno != nil {
		s := m.DataRetorno.Format(dateLayout)
		resp.DataRetorno = &s
	}
	if m.Tombamento != nil {
		t := mapTombamento(*m.Tombamento)
		resp.Tombamento = &t
	}
	return resp
}
