package dto

// ── DTO del módulo de inventario ──

// CreateInventarioRequest alta manual de un ítem de inventario.
type CreateInventarioRequest struct {
	NombreArchivo string `json:"nombre_archivo" binding:"required,max=300"`
	Ubicacion     string `json:"ubicacion"      binding:"required,max=300"`
	Caja          string `json:"caja"           binding:"required,max=50"`
	Carpeta       string `json:"carpeta"        binding:"omitempty,max=100"`
	Descripcion   string `json:"descripcion"    binding:"omitempty,max=1000"`
	FechaIngreso  string `json:"fecha_ingreso"  binding:"omitempty,datetime=2006-01-02"`
}

// UpdateInventarioRequest actualización parcial de un ítem.
type UpdateInventarioRequest struct {
	NombreArchivo *string `json:"nombre_archivo" binding:"omitempty,max=300"`
	Ubicacion     *string `json:"ubicacion"      binding:"omitempty,max=300"`
	Caja          *string `json:"caja"           binding:"omitempty,max=50"`
	Carpeta       *string `json:"carpeta"        binding:"omitempty,max=100"`
	Descripcion   *string `json:"descripcion"    binding:"omitempty,max=1000"`
	FechaIngreso  *string `json:"fecha_ingreso"  binding:"omitempty,datetime=2006-01-02"`
}

// InventarioResponse ítem de inventario.
type InventarioResponse struct {
	ID            string `json:"id"`
	NombreArchivo string `json:"nombre_archivo"`
	Ubicacion     string `json:"ubicacion"`
	Caja          string `json:"caja,omitempty"`
	Carpeta       string `json:"carpeta,omitempty"`
	Descripcion   string `json:"descripcion,omitempty"`
	FechaIngreso  string `json:"fecha_ingreso,omitempty"`
	CreatedAt     string `json:"created_at"`
}

// ResumenInventarioResponse estadísticas derivadas de la colección.
type ResumenInventarioResponse struct {
	Total       int `json:"total"`
	Ubicaciones int `json:"ubicaciones"`
	Cajas       int `json:"cajas"`
}

// ImportInventarioResponse resultado de una importación de Excel.
// Las filas sin nombre de archivo o ubicación se omiten en silencio;
// solo se reporta el total creado y el omitido.
type ImportInventarioResponse struct {
	Importados int `json:"importados"`
	Omitidos   int `json:"omitidos"`
}
