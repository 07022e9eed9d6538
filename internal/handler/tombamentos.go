package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/WHSBrasil/IS-PAT/internal/dto"
	"github.com/WHSBrasil/IS-PAT/internal/service"
)

// TombamentosHandler serves the asset registry. Create and update accept
// multipart bodies so photos can travel with the form fields.
type TombamentosHandler struct {
	svc       service.TombamentoService
	uploadDir string
}

func NewTombamentosHandler(svc service.TombamentoService, uploadDir string) *TombamentosHandler {
	return &TombamentosHandler{svc: svc, uploadDir: uploadDir}
}

func (h *TombamentosHandler) Criar(c *gin.Context) {
	var req dto.CriarTombamentoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	fotos, err := salvarFotos(c, h.uploadDir)
	if err != nil {
		respondError(c, err)
		return
	}
	resp, err := h.svc.Criar(c.Request.Context(), req, fotos)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *TombamentosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TombamentosHandler) Buscar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Buscar(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TombamentosHandler) Atualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.AtualizarTombamentoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	fotos, err := salvarFotos(c, h.uploadDir)
	if err != nil {
		respondError(c, err)
		return
	}
	resp, err := h.svc.Atualizar(c.Request.Context(), id, req, fotos)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TombamentosHandler) Excluir(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Excluir(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Publico is the unauthenticated landing behind the label's QR code.
func (h *TombamentosHandler) Publico(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Publico(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
