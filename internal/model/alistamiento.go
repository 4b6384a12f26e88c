package model

// Alistamiento registro de ingreso de un documento al flujo de archivo.
// Los tres identificadores TRD se guardan como cadenas independientes, no
// como claves foráneas: combinaciones obsoletas del catálogo son
// representables y los lectores las toleran.
type Alistamiento struct {
	BaseModel
	Codigo    string `gorm:"type:varchar(20);not null"  json:"codigo"`
	Serie     string `gorm:"type:varchar(20);not null"  json:"serie"`
	Subserie  string `gorm:"type:varchar(20);not null"  json:"subserie"`
	Asunto    string `gorm:"type:text;not null"         json:"asunto"`
	Checklist bool   `gorm:"not null;default:false"     json:"checklist"`
	Rotulado  bool   `gorm:"not null;default:false"     json:"rotulado"`
	Foliada   bool   `gorm:"not null;default:false"     json:"foliada"`
}

// TableName especifica el nombre de la tabla
func (Alistamiento) TableName() string { return "alistamiento" }
