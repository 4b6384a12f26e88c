package dto

// ── DTO del módulo de alistamiento ──

// CreateAlistamientoRequest registro de ingreso de un documento.
// Los tres identificadores TRD deben formar una ruta válida del catálogo.
type CreateAlistamientoRequest struct {
	Codigo    string `json:"codigo"    binding:"required"`
	Serie     string `json:"serie"     binding:"required"`
	Subserie  string `json:"subserie"  binding:"required"`
	Asunto    string `json:"asunto"    binding:"required,max=500"`
	Checklist bool   `json:"checklist"`
	Rotulado  bool   `json:"rotulado"`
	Foliada   bool   `json:"foliada"`
}

// UpdateCamposAlistamientoRequest actualización parcial de los indicadores
// de preparación. Solo los campos presentes se fusionan; el resto queda igual.
type UpdateCamposAlistamientoRequest struct {
	Checklist *bool `json:"checklist"`
	Rotulado  *bool `json:"rotulado"`
	Foliada   *bool `json:"foliada"`
}

// AlistamientoResponse registro de alistamiento.
type AlistamientoResponse struct {
	ID        string `json:"id"`
	Codigo    string `json:"codigo"`
	Serie     string `json:"serie"`
	Subserie  string `json:"subserie"`
	Asunto    string `json:"asunto"`
	Checklist bool   `json:"checklist"`
	Rotulado  bool   `json:"rotulado"`
	Foliada   bool   `json:"foliada"`
	CreatedAt string `json:"created_at"`
}

// ResumenAlistamientoResponse estadísticas derivadas de la colección.
type ResumenAlistamientoResponse struct {
	Total        int `json:"total"`
	ConChecklist int `json:"con_checklist"`
	Rotulados    int `json:"rotulados"`
	Foliadas     int `json:"foliadas"`
}
