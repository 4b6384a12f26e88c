package dto

// ── DTO del módulo de seguimiento (tareas y préstamos) ──

// CreateTareaRequest registro de una tarea.
type CreateTareaRequest struct {
	Titulo string `json:"titulo" binding:"required,max=300"`
	Fecha  string `json:"fecha"  binding:"omitempty,datetime=2006-01-02"`
	Estado string `json:"estado" binding:"omitempty,oneof=Pendiente 'En Proceso' Completado"`
}

// UpdateEstadoTareaRequest cambio de estado de una tarea.
// Cualquier estado puede pasar a cualquier otro; no hay transiciones vetadas.
type UpdateEstadoTareaRequest struct {
	Estado string `json:"estado" binding:"required"`
}

// TareaResponse tarea registrada.
type TareaResponse struct {
	ID        string `json:"id"`
	Titulo    string `json:"titulo"`
	Fecha     string `json:"fecha"`
	Estado    string `json:"estado"`
	CreatedAt string `json:"created_at"`
}

// CreatePrestamoRequest registro de un préstamo de carpeta.
type CreatePrestamoRequest struct {
	Persona       string `json:"persona"       binding:"required,max=100"`
	Fecha         string `json:"fecha"         binding:"omitempty,datetime=2006-01-02"`
	Carpeta       string `json:"carpeta"       binding:"required"`
	Observaciones string `json:"observaciones" binding:"omitempty,max=500"`
}

// UpdateEstadoPrestamoRequest cambio de estado de un préstamo.
type UpdateEstadoPrestamoRequest struct {
	Estado string `json:"estado" binding:"required"`
}

// PrestamoResponse préstamo registrado.
type PrestamoResponse struct {
	ID            string `json:"id"`
	Persona       string `json:"persona"`
	Fecha         string `json:"fecha"`
	Carpeta       string `json:"carpeta"`
	Observaciones string `json:"observaciones,omitempty"`
	Estado        string `json:"estado"`
	CreatedAt     string `json:"created_at"`
}

// SeguimientoResumenResponse conteos derivados de ambas colecciones.
type SeguimientoResumenResponse struct {
	TareasPendientes  int `json:"tareas_pendientes"`
	TareasEnProceso   int `json:"tareas_en_proceso"`
	TareasCompletadas int `json:"tareas_completadas"`
	PrestamosActivos  int `json:"prestamos_activos"`
}
