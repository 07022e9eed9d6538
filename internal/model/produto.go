package model

import (
	"time"

	"github.com/google/uuid"
)

// Produto is the catalog definition of an equipment type. Individual physical
// units are Tombamentos referencing a Produto.
type Produto struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome            string    `gorm:"not null;index"`
	Descricao       *string
	ClassificacaoID *uuid.UUID `gorm:"type:uuid;index"`
	Version         int        `gorm:"not null;default:0"`
	Ativo           bool       `gorm:"not null;default:true"`
	CreatedAt       time.Time

	Classificacao *Classificacao `gorm:"foreignKey:ClassificacaoID"`
}

func (Produto) TableName() string { return "produtos" }
