package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/WHSBrasil/IS-PAT/internal/service"
)

// EtiquetasHandler serves label generation for tagged assets: the ZPL
// payload (with best-effort printing) and the standalone QR code image.
type EtiquetasHandler struct{ svc service.EtiquetaService }

func NewEtiquetasHandler(svc service.EtiquetaService) *EtiquetasHandler {
	return &EtiquetasHandler{svc: svc}
}

func (h *EtiquetasHandler) Gerar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.GerarEtiqueta(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EtiquetasHandler) QRCode(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	png, err := h.svc.GerarQRCode(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="qrcode-%s.png"`, id))
	c.Data(http.StatusOK, "image/png", png)
}
