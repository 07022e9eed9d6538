package dto

import (
	"github.com/google/uuid"

	"github.com/WHSBrasil/IS-PAT/internal/model"
)

// ── Alocacao ──────────────────────────────────────────────────────────────────

type AlocarRequest struct {
	TombamentoID       string  `json:"tombamentoId" form:"tombamentoId" validate:"required,uuid"`
	UnidadeSaudeID     string  `json:"unidadeSaudeId" form:"unidadeSaudeId" validate:"required,uuid"`
	SetorID            *string `json:"setorId" form:"setorId" validate:"omitempty,uuid"`
	ResponsavelUnidade string  `json:"responsavelUnidade" form:"responsavelUnidade" validate:"required,min=2,max=200"`
	DataAlocacao       string  `json:"dataAlocacao" form:"dataAlocacao" validate:"required,datetime=2006-01-02"`
	Termo              *string `json:"termo" form:"termo"`
	Responsavel        *string `json:"responsavel" form:"responsavel"`
}

// AtualizarAlocacaoRequest edits descriptive fields of an active allocation.
// Moving an asset is deallocate + allocate, never an edit of these fields.
type AtualizarAlocacaoRequest struct {
	ResponsavelUnidade *string `json:"responsavelUnidade" validate:"omitempty,min=2,max=200"`
	Termo              *string `json:"termo"`
	Responsavel        *string `json:"responsavel"`
	VersaoEsperada     *int    `json:"versaoEsperada"`
}

type AlocacaoResponse struct {
	ID                 uuid.UUID           `json:"id"`
	Tombamento         *TombamentoResponse `json:"tombamento,omitempty"`
	UnidadeSaude       *UnidadeResponse    `json:"unidadeSaude,omitempty"`
	Setor              *SetorResponse      `json:"setor,omitempty"`
	ResponsavelUnidade string              `json:"responsavelUnidade"`
	DataAlocacao       string              `json:"dataAlocacao"`
	Termo              *string             `json:"termo,omitempty"`
	Responsavel        *string             `json:"responsavel,omitempty"`
	Fotos              model.Fotos         `json:"fotos,omitempty"`
	Ativo              bool                `json:"ativo"`
}

// ── Transferencia ─────────────────────────────────────────────────────────────

type RegistrarTransferenciaRequest struct {
	TombamentoID       string  `json:"tombamentoId" validate:"required,uuid"`
	UnidadeOrigemID    *string `json:"unidadeOrigemId" validate:"omitempty,uuid"`
	UnidadeDestinoID   string  `json:"unidadeDestinoId" validate:"required,uuid"`
	SetorOrigemID      *string `json:"setorOrigemId" validate:"omitempty,uuid"`
	SetorDestinoID     *string `json:"setorDestinoId" validate:"omitempty,uuid"`
	ResponsavelDestino *string `json:"responsavelDestino"`
	DataTransferencia  string  `json:"dataTransferencia" validate:"required,datetime=2006-01-02"`
	Responsavel        *string `json:"responsavel"`
}

type TransferenciaResponse struct {
	ID                 uuid.UUID           `json:"id"`
	Tombamento         *TombamentoResponse `json:"tombamento,omitempty"`
	UnidadeOrigem      *UnidadeResponse    `json:"unidadeOrigem,omitempty"`
	UnidadeDestino     *UnidadeResponse    `json:"unidadeDestino,omitempty"`
	SetorOrigem        *SetorResponse      `json:"setorOrigem,omitempty"`
	SetorDestino       *SetorResponse      `json:"setorDestino,omitempty"`
	ResponsavelDestino *string             `json:"responsavelDestino,omitempty"`
	DataTransferencia  string              `json:"dataTransferencia"`
	Responsavel        *string             `json:"responsavel,omitempty"`
}

// ── Manutencao ────────────────────────────────────────────────────────────────

type EnviarManutencaoRequest struct {
	TombamentoID string  `json:"tombamentoId" validate:"required,uuid"`
	DataRetirada string  `json:"dataRetirada" validate:"required,datetime=2006-01-02"`
	Motivo       string  `json:"motivo" validate:"required,min=2"`
	Responsavel  *string `json:"responsavel"`
	// DataRetorno at creation registers an already-concluded maintenance:
	// the record is stored as history and the asset's status is untouched.
	DataRetorno *string `json:"dataRetorno" validate:"omitempty,datetime=2006-01-02"`
}

type RegistrarRetornoRequest struct {
	DataRetorno string `json:"dataRetorno" validate:"required,datetime=2006-01-02"`
}

type ManutencaoResponse struct {
	ID           uuid.UUID           `json:"id"`
	Tombamento   *TombamentoResponse `json:"tombamento,omitempty"`
	DataRetirada string              `json:"dataRetirada"`
	Motivo       string              `json:"motivo"`
	Responsavel  *string             `json:"responsavel,omitempty"`
	DataRetorno  *string             `json:"dataRetorno,omitempty"`
	Atrasada     bool                `json:"atrasada"`
	Ativo        bool                `json:"ativo"`
}

// ── Dashboard ─────────────────────────────────────────────────────────────────

type DashboardStats struct {
	TotalItems  int64 `json:"totalItems"`
	Available   int64 `json:"available"`
	Allocated   int64 `json:"allocated"`
	Maintenance int64 `json:"maintenance"`
}
