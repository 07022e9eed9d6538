package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WHSBrasil/IS-PAT/internal/apierror"
	"github.com/WHSBrasil/IS-PAT/internal/dto"
	"github.com/WHSBrasil/IS-PAT/internal/service"
)

type stubEtiquetaService struct {
	resp *dto.EtiquetaResponse
	png  []byte
	pdf  []byte
	err  error
}

func (s *stubEtiquetaService) GerarEtiqueta(_ context.Context, _ uuid.UUID) (*dto.EtiquetaResponse, error) {
	return s.resp, s.err
}
func (s *stubEtiquetaService) GerarQRCode(_ context.Context, _ uuid.UUID) ([]byte, error) {
	return s.png, s.err
}
func (s *stubEtiquetaService) GerarTermo(_ context.Context, _ uuid.UUID) ([]byte, error) {
	return s.pdf, s.err
}

var _ service.EtiquetaService = (*stubEtiquetaService)(nil)

func etiquetaRouter(svc service.EtiquetaService) *gin.Engine {
	r := gin.New()
	h := NewEtiquetasHandler(svc)
	r.POST("/api/tombamentos/:id/etiqueta", h.Gerar)
	r.GET("/api/tombamentos/:id/qrcode", h.QRCode)
	return r
}

func TestGerarEtiquetaHTTP(t *testing.T) {
	id := uuid.New()
	svc := &stubEtiquetaService{resp: &dto.EtiquetaResponse{
		TombamentoID: id,
		Numero:       "PAT-0100",
		ZPL:          "^XA^XZ",
		Enfileirada:  true,
	}}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/tombamentos/"+id.String()+"/etiqueta", nil)
	etiquetaRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.EtiquetaResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "PAT-0100", resp.Numero)
	assert.True(t, resp.Enfileirada)
}

func TestGerarEtiquetaTombamentoInexistenteHTTP(t *testing.T) {
	svc := &stubEtiquetaService{err: apierror.NotFoundf("tombamento não encontrado")}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/tombamentos/"+uuid.NewString()+"/etiqueta", nil)
	etiquetaRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestQRCodeHTTP(t *testing.T) {
	svc := &stubEtiquetaService{png: []byte("\x89PNG\r\n")}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/tombamentos/"+uuid.NewString()+"/qrcode", nil)
	etiquetaRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
}
