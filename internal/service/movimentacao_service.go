package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/WHSBrasil/IS-PAT/internal/apierror"
	"github.com/WHSBrasil/IS-PAT/internal/dto"
	"github.com/WHSBrasil/IS-PAT/internal/model"
	"github.com/WHSBrasil/IS-PAT/internal/repository"
)

// DiasAtrasoManutencao is the business threshold after which an open
// maintenance is classified as delayed.
const DiasAtrasoManutencao = 15

// MovimentacaoService is the asset lifecycle engine. It owns every write to
// Tombamento.Status: each operation persists a movement record (Alocacao,
// Transferencia or Manutencao) and the matching status transition inside a
// single transaction, so status can never drift from movement history.
//
// Transitions:
//
//	disponivel --Alocar--> alocado
//	alocado    --Desalocar--> disponivel
//	disponivel|alocado --EnviarParaManutencao--> manutencao
//	manutencao --RegistrarRetorno|ExcluirManutencao--> disponivel
//
// RegistrarTransferencia is audit-only and touches no state.
type MovimentacaoService interface {
	Alocar(ctx context.Context, req dto.AlocarRequest, fotos model.Fotos) (*dto.AlocacaoResponse, error)
	Desalocar(ctx context.Context, alocacaoID uuid.UUID) error
	AtualizarAlocacao(ctx context.Context, id uuid.UUID, campos map[string]interface{}, versaoEsperada *int) (*dto.AlocacaoResponse, error)
	ListarAlocacoes(ctx context.Context) ([]dto.AlocacaoResponse, error)
	BuscarAlocacao(ctx context.Context, id uuid.UUID) (*dto.AlocacaoResponse, error)

	RegistrarTransferencia(ctx context.Context, req dto.RegistrarTransferenciaRequest) (*dto.TransferenciaResponse, error)
	ListarTransferencias(ctx context.Context) ([]dto.TransferenciaResponse, error)

	EnviarParaManutencao(ctx context.Context, req dto.EnviarManutencaoRequest) (*dto.ManutencaoResponse, error)
	RegistrarRetorno(ctx context.Context, manutencaoID uuid.UUID, req dto.RegistrarRetornoRequest) (*dto.ManutencaoResponse, error)
	ExcluirManutencao(ctx context.Context, manutencaoID uuid.UUID) error
	ListarManutencoes(ctx context.Context, situacao string) ([]dto.ManutencaoResponse, error)
}

type movimentacaoService struct {
	tombamentos    repository.TombamentoRepository
	alocacoes      repository.AlocacaoRepository
	transferencias repository.TransferenciaRepository
	manutencoes    repository.ManutencaoRepository
	unidades       repository.UnidadeRepository
	agora          func() time.Time
}

func NewMovimentacaoService(
	tombamentos repository.TombamentoRepository,
	alocacoes repository.AlocacaoRepository,
	transferencias repository.TransferenciaRepository,
	manutencoes repository.ManutencaoRepository,
	unidades repository.UnidadeRepository,
) MovimentacaoService {
	return &movimentacaoService{
		tombamentos:    tombamentos,
		alocacoes:      alocacoes,
		transferencias: transferencias,
		manutencoes:    manutencoes,
		unidades:       unidades,
		agora:          time.Now,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// ManutencaoAtrasada classifies an open maintenance as delayed when the
// retrieval date is more than DiasAtrasoManutencao in the past. A returned
// or deleted record is never delayed, whatever its age.
func ManutencaoAtrasada(m *model.Manutencao, agora time.Time) bool {
	if !m.Aberta() {
		return false
	}
	return m.DataRetirada.Before(agora.AddDate(0, 0, -DiasAtrasoManutencao))
}

// ── Alocacao ──────────────────────────────────────────────────────────────────

func (s *movimentacaoService) Alocar(ctx context.Context, req dto.AlocarRequest, fotos model.Fotos) (*dto.AlocacaoResponse, error) {
	tombamentoID, err := uuid.Parse(req.TombamentoID)
	if err != nil {
		return nil, apierror.Validationf("tombamentoId inválido")
	}
	unidadeID, err := uuid.Parse(req.UnidadeSaudeID)
	if err != nil {
		return nil, apierror.Validationf("unidadeSaudeId inválido")
	}
	dataAlocacao, err := time.Parse(dateLayout, req.DataAlocacao)
	if err != nil {
		return nil, apierror.Validationf("dataAlocacao inválida, use AAAA-MM-DD")
	}

	tomb, err := s.tombamentos.BuscarPorID(ctx, tombamentoID)
	if err != nil {
		if isNotFound(err) {
			return nil, apierror.NotFoundf("tombamento não encontrado")
		}
		return nil, apierror.Storage(err)
	}
	if !tomb.Ativo {
		return nil, apierror.NotFoundf("tombamento não encontrado")
	}

	if _, err := s.unidades.BuscarUnidadePorID(ctx, unidadeID); err != nil {
		if isNotFound(err) {
			return nil, apierror.NotFoundf("unidade de saúde não encontrada")
		}
		return nil, apierror.Storage(err)
	}

	var setorID *uuid.UUID
	if req.SetorID != nil && *req.SetorID != "" {
		id, err := uuid.Parse(*req.SetorID)
		if err != nil {
			return nil, apierror.Validationf("setorId inválido")
		}
		if _, err := s.unidades.BuscarSetorPorID(ctx, id); err != nil {
			if isNotFound(err) {
				return nil, apierror.NotFoundf("setor não encontrado")
			}
			return nil, apierror.Storage(err)
		}
		setorID = &id
	}

	// Precondition checks. The partial unique index on alocacoes is the
	// second line of defense against two racing allocations.
	switch tomb.Status {
	case model.StatusAlocado:
		return nil, apierror.Conflictf("tombamento já possui alocação ativa")
	case model.StatusManutencao:
		return nil, apierror.Conflictf("tombamento está em manutenção")
	}
	if _, err := s.alocacoes.BuscarAtivaPorTombamento(ctx, tombamentoID); err == nil {
		return nil, apierror.Conflictf("tombamento já possui alocação ativa")
	} else if !isNotFound(err) {
		return nil, apierror.Storage(err)
	}

	aloc := &model.Alocacao{
		TombamentoID:       tombamentoID,
		UnidadeSaudeID:     unidadeID,
		SetorID:            setorID,
		ResponsavelUnidade: req.ResponsavelUnidade,
		DataAlocacao:       dataAlocacao,
		Termo:              req.Termo,
		Responsavel:        req.Responsavel,
		Fotos:              fotos,
		Ativo:              true,
	}

	txErr := runTx(ctx, s.alocacoes.DB(), func(tx *gorm.DB) error {
		if err := s.alocacoes.CriarTx(tx, aloc); err != nil {
			return err
		}
		return s.tombamentos.AtualizarStatusTx(tx, tombamentoID, model.StatusAlocado)
	})
	if txErr != nil {
		return nil, apierror.Storage(txErr)
	}

	return s.BuscarAlocacao(ctx, aloc.ID)
}

func (s *movimentacaoService) Desalocar(ctx context.Context, alocacaoID uuid.UUID) error {
	aloc, err := s.alocacoes.BuscarPorID(ctx, alocacaoID)
	if err != nil {
		if isNotFound(err) {
			return apierror.NotFoundf("alocação não encontrada")
		}
		return apierror.Storage(err)
	}
	if !aloc.Ativo {
		return apierror.NotFoundf("alocação não encontrada")
	}

	tomb, err := s.tombamentos.BuscarPorID(ctx, aloc.TombamentoID)
	if err != nil && !isNotFound(err) {
		return apierror.Storage(err)
	}

	txErr := runTx(ctx, s.alocacoes.DB(), func(tx *gorm.DB) error {
		if err := s.alocacoes.SoftDeleteTx(tx, alocacaoID); err != nil {
			return err
		}
		// Only revert when the allocation still holds the asset: a later
		// maintenance record may have moved it elsewhere.
		if tomb != nil && tomb.Status == model.StatusAlocado {
			return s.tombamentos.AtualizarStatusTx(tx, aloc.TombamentoID, model.StatusDisponivel)
		}
		return nil
	})
	if txErr != nil {
		return apierror.Storage(txErr)
	}
	return nil
}

func (s *movimentacaoService) AtualizarAlocacao(ctx context.Context, id uuid.UUID, campos map[string]interface{}, versaoEsperada *int) (*dto.AlocacaoResponse, error) {
	if _, err := s.alocacoes.BuscarPorID(ctx, id); err != nil {
		if isNotFound(err) {
			return nil, apierror.NotFoundf("alocação não encontrada")
		}
		return nil, apierror.Storage(err)
	}
	if len(campos) == 0 {
		return nil, apierror.Validationf("nenhum campo para atualizar")
	}
	rows, err := s.alocacoes.AtualizarCampos(ctx, id, campos, versaoEsperada)
	if err != nil {
		return nil, apierror.Storage(err)
	}
	if rows == 0 {
		return nil, apierror.Conflictf("registro foi alterado por outra operação")
	}
	return s.BuscarAlocacao(ctx, id)
}

func (s *movimentacaoService) ListarAlocacoes(ctx context.Context) ([]dto.AlocacaoResponse, error) {
	list, err := s.alocacoes.ListarDetalhadas(ctx)
	if err != nil {
		return nil, apierror.Storage(err)
	}
	result := make([]dto.AlocacaoResponse, 0, len(list))
	for _, a := range list {
		result = append(result, mapAlocacao(a))
	}
	return result, nil
}

func (s *movimentacaoService) BuscarAlocacao(ctx context.Context, id uuid.UUID) (*dto.AlocacaoResponse, error) {
	a, err := s.alocacoes.BuscarPorID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apierror.NotFoundf("alocação não encontrada")
		}
		return nil, apierror.Storage(err)
	}
	resp := mapAlocacao(*a)
	return &resp, nil
}

// ── Transferencia ─────────────────────────────────────────────────────────────

// RegistrarTransferencia writes a history row and nothing else. The asset's
// status and any active Alocacao are deliberately untouched.
func (s *movimentacaoService) RegistrarTransferencia(ctx context.Context, req dto.RegistrarTransferenciaRequest) (*dto.TransferenciaResponse, error) {
	tombamentoID, err := uuid.Parse(req.TombamentoID)
	if err != nil {
		return nil, apierror.Validationf("tombamentoId inválido")
	}
	destinoID, err := uuid.Parse(req.UnidadeDestinoID)
	if err != nil {
		return nil, apierror.Validationf("unidadeDestinoId inválido")
	}
	data, err := time.Parse(dateLayout, req.DataTransferencia)
	if err != nil {
		return nil, apierror.Validationf("dataTransferencia inválida, use AAAA-MM-DD")
	}

	tomb, err := s.tombamentos.BuscarPorID(ctx, tombamentoID)
	if err != nil {
		if isNotFound(err) {
			return nil, apierror.NotFoundf("tombamento não encontrado")
		}
		return nil, apierror.Storage(err)
	}
	if !tomb.Ativo {
		return nil, apierror.NotFoundf("tombamento não encontrado")
	}
	if _, err := s.unidades.BuscarUnidadePorID(ctx, destinoID); err != nil {
		if isNotFound(err) {
			return nil, apierror.NotFoundf("unidade de destino não encontrada")
		}
		return nil, apierror.Storage(err)
	}

	parseOptional := func(raw *string, campo string) (*uuid.UUID, error) {
		if raw == nil || *raw == "" {
			return nil, nil
		}
		id, err := uuid.Parse(*raw)
		if err != nil {
			return nil, apierror.Validationf("%s inválido", campo)
		}
		return &id, nil
	}
	origemID, err := parseOptional(req.UnidadeOrigemID, "unidadeOrigemId")
	if err != nil {
		return nil, err
	}
	setorOrigemID, err := parseOptional(req.SetorOrigemID, "setorOrigemId")
	if err != nil {
		return nil, err
	}
	setorDestinoID, err := parseOptional(req.SetorDestinoID, "setorDestinoId")
	if err != nil {
		return nil, err
	}

	transf := &model.Transferencia{
		TombamentoID:       tombamentoID,
		UnidadeOrigemID:    origemID,
		UnidadeDestinoID:   destinoID,
		SetorOrigemID:      setorOrigemID,
		SetorDestinoID:     setorDestinoID,
		ResponsavelDestino: req.ResponsavelDestino,
		DataTransferencia:  data,
		Responsavel:        req.Responsavel,
		Ativo:              true,
	}
	if err := s.transferencias.Criar(ctx, transf); err != nil {
		return nil, apierror.Storage(err)
	}

	full, err := s.transferencias.BuscarPorID(ctx, transf.ID)
	if err != nil {
		return nil, apierror.Storage(err)
	}
	resp := mapTransferencia(*full)
	return &resp, nil
}

func (s *movimentacaoService) ListarTransferencias(ctx context.Context) ([]dto.TransferenciaResponse, error) {
	list, err := s.transferencias.ListarDetalhadas(ctx)
	if err != nil {
		return nil, apierror.Storage(err)
	}
	result := make([]dto.TransferenciaResponse, 0, len(list))
	for _, t := range list {
		result = append(result, mapTransferencia(t))
	}
	return result, nil
}

// ── Manutencao ────────────────────────────────────────────────────────────────

func (s *movimentacaoService) EnviarParaManutencao(ctx context.Context, req dto.EnviarManutencaoRequest) (*dto.ManutencaoResponse, error) {
	tombamentoID, err := uuid.Parse(req.TombamentoID)
	if err != nil {
		return nil, apierror.Validationf("tombamentoId inválido")
	}
	dataRetirada, err := time.Parse(dateLayout, req.DataRetirada)
	if err != nil {
		return nil, apierror.Validationf("dataRetirada inválida, use AAAA-MM-DD")
	}
	var dataRetorno *time.Time
	if req.DataRetorno != nil && *req.DataRetorno != "" {
		d, err := time.Parse(dateLayout, *req.DataRetorno)
		if err != nil {
			return nil, apierror.Validationf("dataRetorno inválida, use AAAA-MM-DD")
		}
		if d.Before(dataRetirada) {
			return nil, apierror.Validationf("dataRetorno anterior à dataRetirada")
		}
		dataRetorno = &d
	}

	tomb, err := s.tombamentos.BuscarPorID(ctx, tombamentoID)
	if err != nil {
		if isNotFound(err) {
			return nil, apierror.NotFoundf("tombamento não encontrado")
		}
		return nil, apierror.Storage(err)
	}
	if !tomb.Ativo {
		return nil, apierror.NotFoundf("tombamento não encontrado")
	}

	abre := dataRetorno == nil
	if abre {
		if _, err := s.manutencoes.BuscarAbertaPorTombamento(ctx, tombamentoID); err == nil {
			return nil, apierror.Conflictf("tombamento já possui manutenção em aberto")
		} else if !isNotFound(err) {
			return nil, apierror.Storage(err)
		}
	}

	manut := &model.Manutencao{
		TombamentoID: tombamentoID,
		DataRetirada: dataRetirada,
		Motivo:       req.Motivo,
		Responsavel:  req.Responsavel,
		DataRetorno:  dataRetorno,
		Ativo:        true,
	}

	txErr := runTx(ctx, s.manutencoes.DB(), func(tx *gorm.DB) error {
		if err := s.manutencoes.CriarTx(tx, manut); err != nil {
			return err
		}
		// A record created already concluded is history only.
		if abre {
			return s.tombamentos.AtualizarStatusTx(tx, tombamentoID, model.StatusManutencao)
		}
		return nil
	})
	if txErr != nil {
		return nil, apierror.Storage(txErr)
	}

	return s.buscarManutencao(ctx, manut.ID)
}

func (s *movimentacaoService) RegistrarRetorno(ctx context.Context, manutencaoID uuid.UUID, req dto.RegistrarRetornoRequest) (*dto.ManutencaoResponse, error) {
	dataRetorno, err := time.Parse(dateLayout, req.DataRetorno)
	if err != nil {
		return nil, apierror.Validationf("dataRetorno inválida, use AAAA-MM-DD")
	}

	manut, err := s.manutencoes.BuscarPorID(ctx, manutencaoID)
	if err != nil {
		if isNotFound(err) {
			return nil, apierror.NotFoundf("manutenção não encontrada")
		}
		return nil, apierror.Storage(err)
	}
	if !manut.Aberta() {
		return nil, apierror.Conflictf("manutenção já concluída")
	}
	if dataRetorno.Before(manut.DataRetirada) {
		return nil, apierror.Validationf("dataRetorno anterior à dataRetirada")
	}

	txErr := runTx(ctx, s.manutencoes.DB(), func(tx *gorm.DB) error {
		if err := s.manutencoes.RegistrarRetornoTx(tx, manutencaoID, dataRetorno); err != nil {
			return err
		}
		return s.tombamentos.AtualizarStatusTx(tx, manut.TombamentoID, model.StatusDisponivel)
	})
	if txErr != nil {
		return nil, apierror.Storage(txErr)
	}

	return s.buscarManutencao(ctx, manutencaoID)
}

func (s *movimentacaoService) ExcluirManutencao(ctx context.Context, manutencaoID uuid.UUID) error {
	manut, err := s.manutencoes.BuscarPorID(ctx, manutencaoID)
	if err != nil {
		if isNotFound(err) {
			return apierror.NotFoundf("manutenção não encontrada")
		}
		return apierror.Storage(err)
	}
	if !manut.Ativo {
		return apierror.NotFoundf("manutenção não encontrada")
	}

	aberta := manut.Aberta()
	txErr := runTx(ctx, s.manutencoes.DB(), func(tx *gorm.DB) error {
		if err := s.manutencoes.SoftDeleteTx(tx, manutencaoID); err != nil {
			return err
		}
		// Deleting a concluded record is pure history cleanup.
		if aberta {
			return s.tombamentos.AtualizarStatusTx(tx, manut.TombamentoID, model.StatusDisponivel)
		}
		return nil
	})
	if txErr != nil {
		return apierror.Storage(txErr)
	}
	return nil
}

// ListarManutencoes filters by situacao: abertas, atrasadas, concluidas or
// empty for all active records.
func (s *movimentacaoService) ListarManutencoes(ctx context.Context, situacao string) ([]dto.ManutencaoResponse, error) {
	list, err := s.manutencoes.ListarDetalhadas(ctx)
	if err != nil {
		return nil, apierror.Storage(err)
	}
	agora := s.agora()
	result := make([]dto.ManutencaoResponse, 0, len(list))
	for _, m := range list {
		switch situacao {
		case "abertas":
			if !m.Aberta() {
				continue
			}
		case "atrasadas":
			if !ManutencaoAtrasada(&m, agora) {
				continue
			}
		case "concluidas":
			if m.DataRetorno == nil {
				continue
			}
		}
		result = append(result, mapManutencao(m, agora))
	}
	return result, nil
}

func (s *movimentacaoService) buscarManutencao(ctx context.Context, id uuid.UUID) (*dto.ManutencaoResponse, error) {
	m, err := s.manutencoes.BuscarPorID(ctx, id)
	if err != nil {
		return nil, apierror.Storage(err)
	}
	resp := mapManutencao(*m, s.agora())
	return &resp, nil
}
