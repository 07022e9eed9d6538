package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// Foto describes one uploaded image attached to a Tombamento or Alocacao.
// OriginalName is what the user uploaded; StoredName is the uuid-based file
// name under the upload directory.
type Foto struct {
	OriginalName string `json:"originalName"`
	StoredName   string `json:"storedName"`
	MimeType     string `json:"mimeType"`
	Size         int64  `json:"size"`
}

// Fotos is an ordered list of attachments persisted as a JSONB column.
type Fotos []Foto

func (f Fotos) Value() (driver.Value, error) {
	if len(f) == 0 {
		return nil, nil
	}
	return json.Marshal(f)
}

func (f *Fotos) Scan(src interface{}) error {
	if src == nil {
		*f = nil
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, f)
	case string:
		return json.Unmarshal([]byte(v), f)
	default:
		return errors.New("fotos: unsupported scan type")
	}
}
