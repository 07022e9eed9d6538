package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WHSBrasil/IS-PAT/internal/apierror"
	"github.com/WHSBrasil/IS-PAT/internal/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testContext(method, path, body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	c.Request = req
	return c, w
}

func TestBindAndValidateCamposObrigatorios(t *testing.T) {
	c, w := testContext(http.MethodPost, "/api/alocacoes", `{"tombamentoId":"not-a-uuid"}`)

	var req dto.AlocarRequest
	ok := bindAndValidate(c, &req)
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var env apierror.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "uuid", env.Fields["TombamentoID"])
	assert.Equal(t, "required", env.Fields["UnidadeSaudeID"])
	assert.Equal(t, "required", env.Fields["DataAlocacao"])
}

func TestBindAndValidateJSONInvalido(t *testing.T) {
	c, w := testContext(http.MethodPost, "/api/alocacoes", `{"tombamentoId":`)

	var req dto.AlocarRequest
	ok := bindAndValidate(c, &req)
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBindAndValidateDataForaDoFormato(t *testing.T) {
	c, w := testContext(http.MethodPost, "/api/manutencoes",
		`{"tombamentoId":"7b8e9a40-1111-4222-8333-444455556666","dataRetirada":"01/04/2026","motivo":"revisão"}`)

	var req dto.EnviarManutencaoRequest
	ok := bindAndValidate(c, &req)
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var env apierror.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "datetime", env.Fields["DataRetirada"])
}

func TestParseIDInvalido(t *testing.T) {
	c, w := testContext(http.MethodGet, "/api/tombamentos/abc", "")
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	_, ok := parseID(c)
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRespondErrorMapeiaStatus(t *testing.T) {
	c, w := testContext(http.MethodPost, "/api/alocacoes", "")
	respondError(c, apierror.Conflictf("tombamento já possui alocação ativa"))
	assert.Equal(t, http.StatusConflict, w.Code)

	var env apierror.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "tombamento já possui alocação ativa", env.Detail)
}
