package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/WHSBrasil/IS-PAT/internal/dto"
	"github.com/WHSBrasil/IS-PAT/internal/service"
)

// CadastrosHandler serves the four master-data entities referenced by
// patrimony records: classificações, produtos, unidades de saúde and setores.
type CadastrosHandler struct{ svc service.CadastroService }

func NewCadastrosHandler(svc service.CadastroService) *CadastrosHandler {
	return &CadastrosHandler{svc: svc}
}

// ── Classificações ───────────────────────────────────────────────────────────

func (h *CadastrosHandler) CriarClassificacao(c *gin.Context) {
	var req dto.CriarClassificacaoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CriarClassificacao(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CadastrosHandler) ListarClassificacoes(c *gin.Context) {
	resp, err := h.svc.ListarClassificacoes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CadastrosHandler) BuscarClassificacao(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.BuscarClassificacao(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CadastrosHandler) AtualizarClassificacao(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.AtualizarClassificacaoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AtualizarClassificacao(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CadastrosHandler) ExcluirClassificacao(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.ExcluirClassificacao(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Produtos ─────────────────────────────────────────────────────────────────

func (h *CadastrosHandler) CriarProduto(c *gin.Context) {
	var req dto.CriarProdutoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CriarProduto(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CadastrosHandler) ListarProdutos(c *gin.Context) {
	resp, err := h.svc.ListarProdutos(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CadastrosHandler) AtualizarProduto(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.AtualizarProdutoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AtualizarProduto(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CadastrosHandler) ExcluirProduto(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.ExcluirProduto(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Unidades de saúde ────────────────────────────────────────────────────────

func (h *CadastrosHandler) CriarUnidade(c *gin.Context) {
	var req dto.CriarUnidadeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CriarUnidade(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CadastrosHandler) ListarUnidades(c *gin.Context) {
	resp, err := h.svc.ListarUnidades(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CadastrosHandler) AtualizarUnidade(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.AtualizarUnidadeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AtualizarUnidade(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CadastrosHandler) ExcluirUnidade(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.ExcluirUnidade(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Setores ──────────────────────────────────────────────────────────────────

func (h *CadastrosHandler) CriarSetor(c *gin.Context) {
	var req dto.CriarSetorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CriarSetor(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CadastrosHandler) ListarSetores(c *gin.Context) {
	resp, err := h.svc.ListarSetores(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CadastrosHandler) AtualizarSetor(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.AtualizarSetorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AtualizarSetor(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CadastrosHandler) ExcluirSetor(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.ExcluirSetor(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
