package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/WHSBrasil/IS-PAT/internal/model"
)

// Create/update requests bind from multipart forms (photos travel in the
// same request) as well as JSON, so both tag sets are present.

type CriarTombamentoRequest struct {
	ProdutoID   string  `json:"produtoId" form:"produtoId" validate:"required,uuid"`
	Numero      string  `json:"numero" form:"numero" validate:"required,min=1,max=50"`
	Serial      *string `json:"serial" form:"serial"`
	Responsavel *string `json:"responsavel" form:"responsavel"`
	Valor       *string `json:"valor" form:"valor" validate:"omitempty,numeric"`
}

// AtualizarTombamentoRequest deliberately has no status field: the asset's
// status is derived from movement records and only lifecycle operations
// may change it.
type AtualizarTombamentoRequest struct {
	ProdutoID      *string `json:"produtoId" form:"produtoId" validate:"omitempty,uuid"`
	Numero         *string `json:"numero" form:"numero" validate:"omitempty,min=1,max=50"`
	Serial         *string `json:"serial" form:"serial"`
	Responsavel    *string `json:"responsavel" form:"responsavel"`
	Valor          *string `json:"valor" form:"valor" validate:"omitempty,numeric"`
	VersaoEsperada *int    `json:"versaoEsperada" form:"versaoEsperada"`
}

type TombamentoResponse struct {
	ID          uuid.UUID        `json:"id"`
	Numero      string           `json:"numero"`
	Serial      *string          `json:"serial,omitempty"`
	Responsavel *string          `json:"responsavel,omitempty"`
	Valor       *decimal.Decimal `json:"valor,omitempty"`
	Status      string           `json:"status"`
	Fotos       model.Fotos      `json:"fotos,omitempty"`
	Produto     *ProdutoResponse `json:"produto,omitempty"`
	Version     int              `json:"version"`
	Ativo       bool             `json:"ativo"`
}

// TombamentoPublicoResponse is the payload behind the label's QR code.
// It exposes only what a person standing next to the equipment needs.
type TombamentoPublicoResponse struct {
	Numero      string  `json:"numero"`
	Produto     string  `json:"produto"`
	Serial      *string `json:"serial,omitempty"`
	Status      string  `json:"status"`
	Mantenedora string  `json:"mantenedora"`
}
