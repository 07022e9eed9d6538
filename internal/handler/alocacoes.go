package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/WHSBrasil/IS-PAT/internal/dto"
	"github.com/WHSBrasil/IS-PAT/internal/service"
)

// AlocacoesHandler serves allocation lifecycle endpoints, including the
// custody-term PDF download.
type AlocacoesHandler struct {
	svc       service.MovimentacaoService
	etiquetas service.EtiquetaService
	uploadDir string
}

func NewAlocacoesHandler(svc service.MovimentacaoService, etiquetas service.EtiquetaService, uploadDir string) *AlocacoesHandler {
	return &AlocacoesHandler{svc: svc, etiquetas: etiquetas, uploadDir: uploadDir}
}

func (h *AlocacoesHandler) Alocar(c *gin.Context) {
	var req dto.AlocarRequest
	if !bindAndValidate(c, &req) {
		return
	}
	fotos, err := salvarFotos(c, h.uploadDir)
	if err != nil {
		respondError(c, err)
		return
	}
	resp, err := h.svc.Alocar(c.Request.Context(), req, fotos)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AlocacoesHandler) Listar(c *gin.Context) {
	resp, err := h.svc.ListarAlocacoes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AlocacoesHandler) Buscar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.BuscarAlocacao(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AlocacoesHandler) Atualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.AtualizarAlocacaoRequest
	if !bindAndValidate(c, &req) {
		return
	}

	campos := map[string]interface{}{}
	if req.ResponsavelUnidade != nil {
		campos["responsavel_unidade"] = *req.ResponsavelUnidade
	}
	if req.Termo != nil {
		campos["termo"] = *req.Termo
	}
	if req.Responsavel != nil {
		campos["responsavel"] = *req.Responsavel
	}

	resp, err := h.svc.AtualizarAlocacao(c.Request.Context(), id, campos, req.VersaoEsperada)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Desalocar closes the active allocation and returns the asset to the pool.
func (h *AlocacoesHandler) Desalocar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Desalocar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Termo streams the signed-responsibility PDF for an allocation.
func (h *AlocacoesHandler) Termo(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	pdf, err := h.etiquetas.GerarTermo(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="termo-%s.pdf"`, id))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
