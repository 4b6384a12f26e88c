package model

// InventarioItem registro de ubicación física (estante/caja/carpeta),
// independiente de la taxonomía TRD.
type InventarioItem struct {
	BaseModel
	NombreArchivo string `gorm:"column:nombre_archivo;type:text;not null" json:"nombre_archivo"`
	Ubicacion     string `gorm:"type:text;not null"                       json:"ubicacion"`
	Caja          string `gorm:"type:varchar(50)"                         json:"caja"`
	Carpeta       string `gorm:"type:varchar(100)"                        json:"carpeta"`
	Descripcion   string `gorm:"type:text"                                json:"descripcion"`
	FechaIngreso  string `gorm:"column:fecha_ingreso;type:varchar(10)"    json:"fecha_ingreso"`
}

// TableName especifica el nombre de la tabla
func (InventarioItem) TableName() string { return "inventario" }
