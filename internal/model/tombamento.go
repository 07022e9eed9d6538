package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Asset status values. Status is a derived field: it always reflects the
// asset's most recent unreversed movement record (Alocacao or Manutencao)
// and is only ever written by MovimentacaoService inside the same
// transaction as the movement row itself.
const (
	StatusDisponivel = "disponivel"
	StatusAlocado    = "alocado"
	StatusManutencao = "manutencao"
)

// Tombamento is one physical equipment unit under custody tracking,
// identified by its human-assigned patrimony tag (Numero).
type Tombamento struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProdutoID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Numero      string    `gorm:"not null;index"` // unique per active asset (partial index)
	Serial      *string
	Responsavel *string
	// Valor is the acquisition value printed on the custody term.
	Valor     *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Fotos     Fotos            `gorm:"type:jsonb"`
	Status    string           `gorm:"type:varchar(20);not null;default:'disponivel';index"`
	Version   int              `gorm:"not null;default:0"`
	Ativo     bool             `gorm:"not null;default:true"`
	CreatedAt time.Time

	Produto *Produto `gorm:"foreignKey:ProdutoID"`
}

func (Tombamento) TableName() string { return "tombamentos" }
