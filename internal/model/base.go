package model

import "time"

// BaseModel campos asignados por el almacén en cada colección.
// El id y created_at los escribe únicamente la capa de acceso a registros;
// los llamadores nunca los fijan.
type BaseModel struct {
	ID        string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}
