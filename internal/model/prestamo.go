package model

// ── Estados de préstamo ──

const (
	PrestamoPrestado = "Prestado"
	PrestamoDevuelto = "Devuelto"
)

// EstadosPrestamo valores admitidos para el estado de un préstamo.
var EstadosPrestamo = []string{PrestamoPrestado, PrestamoDevuelto}

// Prestamo préstamo de una carpeta física a un funcionario.
type Prestamo struct {
	BaseModel
	Persona       string `gorm:"type:varchar(100);not null" json:"persona"`
	Fecha         string `gorm:"type:varchar(10);not null"  json:"fecha"`
	Carpeta       string `gorm:"type:text;not null"         json:"carpeta"`
	Observaciones string `gorm:"type:text"                  json:"observaciones"`
	Estado        string `gorm:"type:varchar(20);not null"  json:"estado"`
}

// TableName especifica el nombre de la tabla
func (Prestamo) TableName() string { return "prestamos" }

// EstadoPrestamoValido indica si el valor pertenece a la enumeración.
func EstadoPrestamoValido(estado string) bool {
	for _, e := range EstadosPrestamo {
		if e == estado {
			return true
		}
	}
	return false
}
