package model

import (
	"time"

	"github.com/google/uuid"
)

// Transferencia is a historical record of an asset moving between units or
// sectors. It is audit-only: creating one never touches the Tombamento's
// status nor any Alocacao row. Custody changes are recorded by closing the
// origin Alocacao and opening a new one at the destination.
type Transferencia struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TombamentoID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	UnidadeOrigemID      *uuid.UUID `gorm:"type:uuid"`
	UnidadeDestinoID     uuid.UUID  `gorm:"type:uuid;not null"`
	SetorOrigemID        *uuid.UUID `gorm:"type:uuid"`
	SetorDestinoID       *uuid.UUID `gorm:"type:uuid"`
	ResponsavelDestino   *string
	DataTransferencia    time.Time `gorm:"type:date;not null"`
	Responsavel          *string
	Version              int  `gorm:"not null;default:0"`
	Ativo                bool `gorm:"not null;default:true"`
	CreatedAt            time.Time

	Tombamento     *Tombamento   `gorm:"foreignKey:TombamentoID"`
	UnidadeOrigem  *UnidadeSaude `gorm:"foreignKey:UnidadeOrigemID"`
	UnidadeDestino *UnidadeSaude `gorm:"foreignKey:UnidadeDestinoID"`
	SetorOrigem    *Setor        `gorm:"foreignKey:SetorOrigemID"`
	SetorDestino   *Setor        `gorm:"foreignKey:SetorDestinoID"`
}

func (Transferencia) TableName() string { return "transferencias" }
