package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/WHSBrasil/IS-PAT/internal/dto"
	"github.com/WHSBrasil/IS-PAT/internal/service"
)

type ManutencoesHandler struct{ svc service.MovimentacaoService }

func NewManutencoesHandler(svc service.MovimentacaoService) *ManutencoesHandler {
	return &ManutencoesHandler{svc: svc}
}

func (h *ManutencoesHandler) Enviar(c *gin.Context) {
	var req dto.EnviarManutencaoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.EnviarParaManutencao(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar accepts ?situacao=abertas|atrasadas|concluidas; empty means all.
func (h *ManutencoesHandler) Listar(c *gin.Context) {
	resp, err := h.svc.ListarManutencoes(c.Request.Context(), c.Query("situacao"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ManutencoesHandler) RegistrarRetorno(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.RegistrarRetornoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarRetorno(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ManutencoesHandler) Excluir(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.ExcluirManutencao(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
