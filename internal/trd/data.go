package trd

// Default devuelve el catálogo TRD vigente de la Oficina Asesora de
// Planeación (código 102), estructurado según el Acuerdo 594 de 2000.
func Default() *Catalogo {
	return NewCatalogo(datosTRD)
}

// datosTRD datos estructurados según requerimiento de la oficina.
var datosTRD = []Codigo{
	{
		ID:     "102",
		Nombre: "102 - OFICINA ASESORA DE PLANEACIÓN",
		Series: []Serie{
			{
				ID:     "102.2",
				Nombre: "102.2 - ACTAS",
				Subseries: []Subserie{
					{ID: "102.2.10", Nombre: "102.2.10 - Actas Comité Gestión Ambiental"},
					{ID: "102.2.11", Nombre: "102.2.11 - Comité de Investigación"},
					{ID: "102.2.15", Nombre: "102.2.15 - Innovación y Gestión del Conocimiento"},
					{ID: "102.2.xx", Nombre: "102.2.xx - Comité Institucional Gestión y Desempeño"},
				},
			},
			{
				ID:     "102.8",
				Nombre: "102.8 - CIRCULARES",
				Subseries: []Subserie{
					{ID: "102.8.1", Nombre: "102.8.1 - Circulares Informativas"},
				},
			},
			{
				ID:     "102.11",
				Nombre: "102.11 - CONCEPTOS",
				Subseries: []Subserie{
					{ID: "102.11.1", Nombre: "102.11.1 - Conceptos de Viabilidad"},
				},
			},
			{
				ID:     "102.18",
				Nombre: "102.18 - DERECHOS DE PETICIÓN",
				Subseries: []Subserie{
					{ID: "102.18.0", Nombre: "102.18 - Derechos de Petición (General)"},
				},
			},
			{
				ID:     "102.29",
				Nombre: "102.29 - INDICADORES",
				Subseries: []Subserie{
					{ID: "102.29.1", Nombre: "102.29.1 - Indicadores Gestión por Procesos"},
				},
			},
			{
				ID:     "102.30",
				Nombre: "102.30 - INFORMES",
				Subseries: []Subserie{
					{ID: "102.30.3", Nombre: "102.30.3 - Informes Organismos de Control"},
					{ID: "102.30.4", Nombre: "102.30.4 - Otros organismos"},
					{ID: "102.30.6", Nombre: "102.30.6 - Seguimiento MIPG"},
					{ID: "102.30.13", Nombre: "102.30.13 - Auditorías Internas SIG"},
					{ID: "102.30.17", Nombre: "102.30.17 - Comité Institucional"},
					{ID: "102.30.25", Nombre: "102.30.25 - Indicadores Gestión"},
					{ID: "102.30.26", Nombre: "102.30.26 - Seguimiento Riesgos"},
					{ID: "102.30.34", Nombre: "102.30.34 - SIG"},
					{ID: "102.30.37", Nombre: "102.30.37 - Informes Internos"},
					{ID: "102.30.40", Nombre: "102.30.40 - Rendición de Cuentas"},
				},
			},
			{
				ID:     "102.37",
				Nombre: "102.37 - MANUALES",
				Subseries: []Subserie{
					{ID: "102.37.4", Nombre: "102.37.4 - Manual Gestión Ambiental"},
					{ID: "102.37.17", Nombre: "102.37.17 - Manual SIG"},
				},
			},
			{
				ID:     "102.38",
				Nombre: "102.38 - MAPAS DE RIESGOS",
				Subseries: []Subserie{
					{ID: "102.38.0", Nombre: "102.38 - Mapas de Riesgos (General)"},
				},
			},
			{
				ID:     "102.41",
				Nombre: "102.41 - PLANES",
				Subseries: []Subserie{
					{ID: "102.41.7", Nombre: "102.41.7 - Acción"},
					{ID: "102.41.17", Nombre: "102.41.17 - Mejoramiento"},
					{ID: "102.41.27", Nombre: "102.41.27 - Estratégicos"},
					{ID: "102.41.29", Nombre: "102.41.29 - Operativos"},
				},
			},
			{
				ID:     "102.49",
				Nombre: "102.49 - PROGRAMAS",
				Subseries: []Subserie{
					{ID: "102.49.8", Nombre: "102.49.8 - SIG MIPG"},
					{ID: "102.49.9", Nombre: "102.49.9 - SIG INTEGRA"},
				},
			},
			{
				ID:     "102.52",
				Nombre: "102.52 - REGLAMENTOS",
				Subseries: []Subserie{
					{ID: "102.52.1", Nombre: "102.52.1 - Rendición de cuentas"},
				},
			},
		},
	},
}
