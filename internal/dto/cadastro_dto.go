package dto

import "github.com/google/uuid"

// ── Classificacao ─────────────────────────────────────────────────────────────

type CriarClassificacaoRequest struct {
	Nome string `json:"nome" validate:"required,min=2,max=100"`
}

type AtualizarClassificacaoRequest struct {
	Nome *string `json:"nome" validate:"omitempty,min=2,max=100"`
	// VersaoEsperada enables optimistic conflict detection when supplied.
	VersaoEsperada *int `json:"versaoEsperada"`
}

type ClassificacaoResponse struct {
	ID      uuid.UUID `json:"id"`
	Nome    string    `json:"nome"`
	Version int       `json:"version"`
	Ativo   bool      `json:"ativo"`
}

// ── Produto ───────────────────────────────────────────────────────────────────

type CriarProdutoRequest struct {
	Nome            string  `json:"nome" validate:"required,min=2,max=200"`
	Descricao       *string `json:"descricao"`
	ClassificacaoID *string `json:"classificacaoId" validate:"omitempty,uuid"`
}

type AtualizarProdutoRequest struct {
	Nome            *string `json:"nome" validate:"omitempty,min=2,max=200"`
	Descricao       *string `json:"descricao"`
	ClassificacaoID *string `json:"classificacaoId" validate:"omitempty,uuid"`
	VersaoEsperada  *int    `json:"versaoEsperada"`
}

type ProdutoResponse struct {
	ID            uuid.UUID              `json:"id"`
	Nome          string                 `json:"nome"`
	Descricao     *string                `json:"descricao,omitempty"`
	Classificacao *ClassificacaoResponse `json:"classificacao,omitempty"`
	Version       int                    `json:"version"`
	Ativo         bool                   `json:"ativo"`
}

// ── UnidadeSaude ──────────────────────────────────────────────────────────────

type CriarUnidadeRequest struct {
	Nome     string  `json:"nome" validate:"required,min=2,max=200"`
	Endereco *string `json:"endereco"`
}

type AtualizarUnidadeRequest struct {
	Nome           *string `json:"nome" validate:"omitempty,min=2,max=200"`
	Endereco       *string `json:"endereco"`
	VersaoEsperada *int    `json:"versaoEsperada"`
}

type UnidadeResponse struct {
	ID       uuid.UUID `json:"id"`
	Nome     string    `json:"nome"`
	Endereco *string   `json:"endereco,omitempty"`
	Version  int       `json:"version"`
	Ativo    bool      `json:"ativo"`
}

// ── Setor ─────────────────────────────────────────────────────────────────────

type CriarSetorRequest struct {
	Nome           string  `json:"nome" validate:"required,min=2,max=200"`
	UnidadeSaudeID *string `json:"unidadeSaudeId" validate:"omitempty,uuid"`
}

type AtualizarSetorRequest struct {
	Nome           *string `json:"nome" validate:"omitempty,min=2,max=200"`
	UnidadeSaudeID *string `json:"unidadeSaudeId" validate:"omitempty,uuid"`
	VersaoEsperada *int    `json:"versaoEsperada"`
}

type SetorResponse struct {
	ID           uuid.UUID        `json:"id"`
	Nome         string           `json:"nome"`
	UnidadeSaude *UnidadeResponse `json:"unidadeSaude,omitempty"`
	Version      int              `json:"version"`
	Ativo        bool             `json:"ativo"`
}
