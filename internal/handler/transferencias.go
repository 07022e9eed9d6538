package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/WHSBrasil/IS-PAT/internal/dto"
	"github.com/WHSBrasil/IS-PAT/internal/service"
)

type TransferenciasHandler struct{ svc service.MovimentacaoService }

func NewTransferenciasHandler(svc service.MovimentacaoService) *TransferenciasHandler {
	return &TransferenciasHandler{svc: svc}
}

func (h *TransferenciasHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarTransferenciaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarTransferencia(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *TransferenciasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.ListarTransferencias(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
