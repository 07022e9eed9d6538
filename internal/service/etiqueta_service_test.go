package service

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WHSBrasil/IS-PAT/internal/apierror"
)

func TestBuildZPLLayout(t *testing.T) {
	data := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	zpl := BuildZPL("http://pat.local/api/tomb/publico/abc", "PAT-0100", "Notebook Dell", "Secretaria Municipal de Saúde", data)

	assert.True(t, strings.HasPrefix(zpl, "^XA"))
	assert.True(t, strings.HasSuffix(zpl, "^XZ"))
	// 58x32mm at 8 dots/mm
	assert.Contains(t, zpl, "^PW464")
	assert.Contains(t, zpl, "^LL256")
	assert.Contains(t, zpl, "^FDMM,Ahttp://pat.local/api/tomb/publico/abc^FS")
	assert.Contains(t, zpl, "PAT-0100")
	assert.Contains(t, zpl, "Notebook Dell")
	assert.Contains(t, zpl, "Equipamento de propriedade de:")
	assert.Contains(t, zpl, "10/03/2026")
}

func TestBuildZPLTruncaTextosLongos(t *testing.T) {
	longo := strings.Repeat("Impressora multifuncional ", 4)
	zpl := BuildZPL("http://pat.local/x", "PAT-0100", longo, "Secretaria Municipal de Saúde e Assistência Social", time.Now())

	assert.NotContains(t, zpl, longo)
	assert.Contains(t, zpl, "...")
}

func TestGerarEtiquetaSemFilaRetornaZPL(t *testing.T) {
	f := newMovFixture()
	tomb := f.seedTombamento(t, "PAT-0100", "disponivel")

	svc := NewEtiquetaService(f.tombamentos, f.alocacoes, nil, "http://pat.local/", "Secretaria Municipal de Saúde")
	resp, err := svc.GerarEtiqueta(context.Background(), tomb.ID)
	require.NoError(t, err)

	assert.Equal(t, tomb.ID, resp.TombamentoID)
	assert.Equal(t, "http://pat.local/api/tomb/publico/"+tomb.ID.String(), resp.QRURL)
	assert.Contains(t, resp.ZPL, "PAT-0100")
	assert.Contains(t, resp.ZPL, "Notebook Dell")
	assert.False(t, resp.Enfileirada)
}

func TestGerarEtiquetaTombamentoInexistente(t *testing.T) {
	f := newMovFixture()
	svc := NewEtiquetaService(f.tombamentos, f.alocacoes, nil, "http://pat.local", "Secretaria")

	_, err := svc.GerarEtiqueta(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, 404, apierror.Status(err))
}

func TestGerarQRCodePNG(t *testing.T) {
	f := newMovFixture()
	tomb := f.seedTombamento(t, "PAT-0100", "disponivel")

	svc := NewEtiquetaService(f.tombamentos, f.alocacoes, nil, "http://pat.local", "Secretaria")
	png, err := svc.GerarQRCode(context.Background(), tomb.ID)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}
