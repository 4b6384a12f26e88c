package model

// ── Estados de tarea ──
//
// Enumeración cerrada pero sin restricción de transiciones: cualquier estado
// puede pasar a cualquier otro en cualquier momento.
const (
	TareaPendiente  = "Pendiente"
	TareaEnProceso  = "En Proceso"
	TareaCompletado = "Completado"
)

// EstadosTarea valores admitidos para el estado de una tarea.
var EstadosTarea = []string{TareaPendiente, TareaEnProceso, TareaCompletado}

// Tarea tarea interna de la oficina de archivo.
type Tarea struct {
	BaseModel
	Titulo string `gorm:"type:text;not null"        json:"titulo"`
	Fecha  string `gorm:"type:varchar(10);not null" json:"fecha"`
	Estado string `gorm:"type:varchar(20);not null" json:"estado"`
}

// TableName especifica el nombre de la tabla
func (Tarea) TableName() string { return "tareas" }

// EstadoTareaValido indica si el valor pertenece a la enumeración.
func EstadoTareaValido(estado string) bool {
	for _, e := range EstadosTarea {
		if e == estado {
			return true
		}
	}
	return false
}
