package worker

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/WHSBrasil/IS-PAT/internal/infra"
)

// EtiquetaWorker sends queued ZPL labels to the physical printer. A failed
// print is logged and dropped: the ZPL was already returned to the caller,
// who can resubmit or print manually. Never fails the originating request.
type EtiquetaWorker struct {
	printer *infra.PrinterClient
}

func NewEtiquetaWorker(printer *infra.PrinterClient) *EtiquetaWorker {
	return &EtiquetaWorker{printer: printer}
}

func (w *EtiquetaWorker) Process(_ context.Context, payload json.RawMessage) {
	var job EtiquetaJob
	if err := json.Unmarshal(payload, &job); err != nil {
		log.Error().Err(err).Msg("etiqueta: invalid job payload")
		return
	}

	if err := w.printer.Imprimir(job.ZPL); err != nil {
		log.Warn().
			Str("tombamento_id", job.TombamentoID.String()).
			Str("numero", job.Numero).
			Err(err).
			Msg("etiqueta: print failed, label dropped")
		return
	}

	log.Info().
		Str("tombamento_id", job.TombamentoID.String()).
		Str("numero", job.Numero).
		Msg("etiqueta: label sent to printer")
}
