package infra

// pdf.go — custody-term PDF generation using go-pdf/fpdf. Produces the A4
// "Termo de Responsabilidade de Patrimônio" signed when an asset is placed
// in custody at a health unit.

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/WHSBrasil/IS-PAT/internal/model"
)

var compromissos = []string{
	"1. Utilizar o bem exclusivamente para atividades relacionadas ao serviço;",
	"2. Manter o bem em perfeito estado de conservação;",
	"3. Comunicar imediatamente qualquer defeito, dano ou extravio;",
	"4. Não emprestar, ceder ou transferir o bem sem autorização prévia;",
	"5. Devolver o bem quando solicitado ou ao término do vínculo;",
	"6. Ressarcir eventuais danos causados por uso inadequado ou negligência.",
}

// GerarTermoPDF renders the custody term for an allocation. The Alocacao must
// come with Tombamento (and its Produto), UnidadeSaude and Setor preloaded.
func GerarTermoPDF(a *model.Alocacao, mantenedora string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("") // cp1252 covers pt-BR accents
	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 40

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, tr("TERMO DE RESPONSABILIDADE DE PATRIMÔNIO"), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(contentW, 6, tr(mantenedora), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Preamble and commitments ─────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(contentW, 5, tr("Por meio deste termo, declaro que recebi em perfeito estado de conservação e funcionamento o(s) bem(ns) patrimonial(is) relacionado(s) abaixo, comprometendo-me a:"), "", "L", false)
	pdf.Ln(2)
	for _, c := range compromissos {
		pdf.MultiCell(contentW, 5, tr(c), "", "L", false)
	}
	pdf.Ln(4)

	// ── Asset data ───────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 6, "DADOS DO BEM", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)

	linha := func(rotulo, valor string) {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(55, 6, tr(rotulo), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(contentW-55, 6, tr(valor), "", 1, "L", false, 0, "")
	}

	tomb := a.Tombamento
	numero, produto, serial, valor := "-", "-", "-", "-"
	if tomb != nil {
		numero = tomb.Numero
		if tomb.Produto != nil {
			produto = tomb.Produto.Nome
		}
		if tomb.Serial != nil {
			serial = *tomb.Serial
		}
		if tomb.Valor != nil {
			valor = "R$ " + tomb.Valor.StringFixed(2)
		}
	}
	linha("Tombamento:", numero)
	linha("Descrição:", produto)
	linha("Número de Série:", serial)
	linha("Valor de Aquisição:", valor)
	pdf.Ln(3)

	// ── Location ─────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 6, tr("LOCALIZAÇÃO"), "", 1, "L", false, 0, "")
	unidade, setor := "-", "-"
	if a.UnidadeSaude != nil {
		unidade = a.UnidadeSaude.Nome
	}
	if a.Setor != nil {
		setor = a.Setor.Nome
	}
	linha("Unidade:", unidade)
	linha("Setor:", setor)
	pdf.Ln(3)

	// ── Responsible parties ──────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 6, tr("RESPONSÁVEIS"), "", 1, "L", false, 0, "")
	respBem, respAloc := "-", "-"
	if tomb != nil && tomb.Responsavel != nil {
		respBem = *tomb.Responsavel
	}
	if a.Responsavel != nil {
		respAloc = *a.Responsavel
	}
	linha("Responsável na Unidade:", a.ResponsavelUnidade)
	linha("Responsável pelo Bem:", respBem)
	linha("Responsável pela Alocação:", respAloc)
	linha("Data da Alocação:", a.DataAlocacao.Format("02/01/2006"))
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(contentW, 5, tr("Declaro estar ciente das responsabilidades assumidas e concordo com todos os termos estabelecidos."), "", "L", false)
	pdf.Ln(2)
	pdf.CellFormat(contentW, 6, tr(fmt.Sprintf("Local e Data: ________________________, %s", time.Now().Format("02/01/2006"))), "", 1, "L", false, 0, "")
	pdf.Ln(8)

	// ── Signatures ───────────────────────────────────────────────────────────
	assinatura := func(titulo, nome string) {
		pdf.CellFormat(contentW, 5, "_____________________________________________", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(contentW, 5, tr(titulo), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(contentW, 5, tr(nome), "", 1, "L", false, 0, "")
		pdf.Ln(5)
	}
	assinatura("Assinatura do Responsável na Unidade", a.ResponsavelUnidade)
	assinatura("Assinatura do Responsável pelo Bem", respBem)
	assinatura("Assinatura do Responsável pela Alocação", respAloc)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render termo: %w", err)
	}
	return buf.Bytes(), nil
}
