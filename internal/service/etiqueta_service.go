package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/WHSBrasil/IS-PAT/internal/apierror"
	"github.com/WHSBrasil/IS-PAT/internal/dto"
	"github.com/WHSBrasil/IS-PAT/internal/infra"
	"github.com/WHSBrasil/IS-PAT/internal/repository"
	"github.com/WHSBrasil/IS-PAT/internal/worker"
)

// EtiquetaService builds patrimony labels (ZPL for a Zebra ZD220, 58x32mm),
// QR codes, and custody-term PDFs. Physical printing is asynchronous and
// best-effort: the generated ZPL always comes back in the response.
type EtiquetaService interface {
	GerarEtiqueta(ctx context.Context, tombamentoID uuid.UUID) (*dto.EtiquetaResponse, error)
	GerarQRCode(ctx context.Context, tombamentoID uuid.UUID) ([]byte, error)
	GerarTermo(ctx context.Context, alocacaoID uuid.UUID) ([]byte, error)
}

type etiquetaService struct {
	tombamentos repository.TombamentoRepository
	alocacoes   repository.AlocacaoRepository
	dispatcher  *worker.Dispatcher
	baseURL     string
	mantenedora string
}

func NewEtiquetaService(
	tombamentos repository.TombamentoRepository,
	alocacoes repository.AlocacaoRepository,
	dispatcher *worker.Dispatcher,
	baseURL, mantenedora string,
) EtiquetaService {
	return &etiquetaService{
		tombamentos: tombamentos,
		alocacoes:   alocacoes,
		dispatcher:  dispatcher,
		baseURL:     strings.TrimRight(baseURL, "/"),
		mantenedora: mantenedora,
	}
}

// truncar limits label text; the 58mm label fits ~40 chars per line.
func truncar(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

func (s *etiquetaService) qrURL(id uuid.UUID) string {
	return fmt.Sprintf("%s/api/tomb/publico/%s", s.baseURL, id)
}

// BuildZPL renders the 58x32mm label (464x256 dots at 8 dots/mm): QR code on
// the left, tag number and product name on the right, owner line and date at
// the bottom.
func BuildZPL(qrURL, numero, produto, mantenedora string, data time.Time) string {
	return strings.TrimSpace(fmt.Sprintf(`
^XA
^MMT
^PW464
^LL256

^FO10,10^BQN,2,4^FDMM,A%s^FS

^FO170,10^APN,18,10^FD%s^FS

^FO170,35^APN,12,8^FB280,3,0,L,0^FD%s^FS

^FO10,180^APN,10,6^FDEquipamento de propriedade de:^FS
^FO10,200^APN,12,8^FB440,2,0,L,0^FD%s^FS

^FO10,240^APN,8,5^FD%s^FS

^XZ`, qrURL, numero, truncar(produto, 40), truncar(mantenedora, 35), data.Format("02/01/2006")))
}

func (s *etiquetaService) GerarEtiqueta(ctx context.Context, tombamentoID uuid.UUID) (*dto.EtiquetaResponse, error) {
	t, err := s.tombamentos.BuscarPorID(ctx, tombamentoID)
	if err != nil {
		if isNotFound(err) {
			return nil, apierror.NotFoundf("tombamento não encontrado")
		}
		return nil, apierror.Storage(err)
	}
	if !t.Ativo {
		return nil, apierror.NotFoundf("tombamento não encontrado")
	}

	produto := "Produto não informado"
	if t.Produto != nil {
		produto = t.Produto.Nome
	}
	url := s.qrURL(t.ID)
	zpl := BuildZPL(url, t.Numero, produto, s.mantenedora, time.Now())

	// Best-effort: a full queue or dead redis must not fail label generation.
	enfileirada := false
	if s.dispatcher != nil {
		job := worker.EtiquetaJob{TombamentoID: t.ID, Numero: t.Numero, ZPL: zpl}
		if err := s.dispatcher.EnqueueEtiqueta(ctx, job); err != nil {
			log.Warn().Str("tombamento_id", t.ID.String()).Err(err).
				Msg("etiqueta: enqueue failed, returning ZPL only")
		} else {
			enfileirada = true
		}
	}

	return &dto.EtiquetaResponse{
		TombamentoID: t.ID,
		Numero:       t.Numero,
		QRURL:        url,
		ZPL:          zpl,
		Enfileirada:  enfileirada,
	}, nil
}

func (s *etiquetaService) GerarQRCode(ctx context.Context, tombamentoID uuid.UUID) ([]byte, error) {
	t, err := s.tombamentos.BuscarPorID(ctx, tombamentoID)
	if err != nil {
		if isNotFound(err) {
			return nil, apierror.NotFoundf("tombamento não encontrado")
		}
		return nil, apierror.Storage(err)
	}
	if !t.Ativo {
		return nil, apierror.NotFoundf("tombamento não encontrado")
	}

	png, err := qrcode.Encode(s.qrURL(t.ID), qrcode.Medium, 256)
	if err != nil {
		return nil, apierror.Storage(err)
	}
	return png, nil
}

func (s *etiquetaService) GerarTermo(ctx context.Context, alocacaoID uuid.UUID) ([]byte, error) {
	a, err := s.alocacoes.BuscarPorID(ctx, alocacaoID)
	if err != nil {
		if isNotFound(err) {
			return nil, apierror.NotFoundf("alocação não encontrada")
		}
		return nil, apierror.Storage(err)
	}

	pdf, err := infra.GerarTermoPDF(a, s.mantenedora)
	if err != nil {
		return nil, apierror.Storage(err)
	}
	return pdf, nil
}
