package dto

import "github.com/google/uuid"

// EtiquetaResponse carries the generated ZPL so the UI can show or copy it
// even when the network printer is unreachable (printing is best-effort).
type EtiquetaResponse struct {
	TombamentoID uuid.UUID `json:"tombamentoId"`
	Numero       string    `json:"numero"`
	QRURL        string    `json:"qrUrl"`
	ZPL          string    `json:"zpl"`
	Enfileirada  bool      `json:"enfileirada"`
}
