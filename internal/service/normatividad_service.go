package service

import (
	"strings"

	"github.com/tecnicoplaneacioninfi-lgtm/archivo-planeacion/internal/dto"
)

// NormatividadService asistente de consultas sobre normatividad
// archivística. Determinista y sin efectos: cada consulta se responde con el
// primer tema cuya palabra clave aparezca en el texto, en orden de
// declaración, o con el texto de ayuda por defecto.
type NormatividadService interface {
	Responder(mensaje string) *dto.ConsultaResponse
	Sugerencias() *dto.SugerenciasResponse
}

type normatividadService struct{}

// NewNormatividadService crea una instancia de NormatividadService.
func NewNormatividadService() NormatividadService {
	return &normatividadService{}
}

// temaConocimiento entrada de la base de conocimiento.
type temaConocimiento struct {
	Clave string
	Texto string
}

// baseConocimiento temas en orden de prioridad de coincidencia.
// El orden importa: se responde con el primer tema que coincida.
var baseConocimiento = []temaConocimiento{
	{
		Clave: "acuerdo 594",
		Texto: `El Acuerdo 594 de 2000 del Archivo General de la Nación establece las directrices para la elaboración de las Tablas de Retención Documental (TRD).

Puntos clave:
- Define la estructura de las TRD
- Establece series y subseries documentales
- Determina tiempos de retención
- Indica disposición final de documentos`,
	},
	{
		Clave: "trd",
		Texto: `Las Tablas de Retención Documental (TRD) son instrumentos archivísticos que determinan:

1. Organización de los documentos
2. Tiempos de permanencia en cada archivo
3. Disposición final (conservación total, eliminación, selección)

Estructura: Código - Serie - Subserie - Retención - Disposición`,
	},
	{
		Clave: "series documentales",
		Texto: `Las series documentales son conjuntos de documentos producidos en desarrollo de una misma función.

Ejemplos:
- Actas
- Informes
- Correspondencia
- Contratos
- Resoluciones

Cada serie puede tener subseries que especifican el tipo de documento.`,
	},
	{
		Clave: "retención",
		Texto: `Los tiempos de retención se dividen en:

1. **Archivo de Gestión**: 2-5 años (documentos activos)
2. **Archivo Central**: 5-15 años (documentos semiactivos)
3. **Archivo Histórico**: Permanente (documentos inactivos de valor histórico)

La disposición final puede ser:
- CT: Conservación Total
- E: Eliminación
- S: Selección`,
	},
	{
		Clave: "ley 594",
		Texto: `La Ley 594 de 2000 es la Ley General de Archivos de Colombia.

Establece:
- Principios generales de la función archivística
- Obligaciones de las entidades públicas
- Gestión de documentos
- Acceso a la información
- Conservación del patrimonio documental`,
	},
	{
		Clave: "organización",
		Texto: `Para organizar un archivo según normativa:

1. Identificar series y subseries documentales
2. Elaborar TRD
3. Clasificar documentos por código
4. Foliar y rotular carpetas
5. Ubicar en archivo de gestión
6. Transferir según tiempos de retención
7. Aplicar disposición final`,
	},
}

// respuestaPorDefecto ayuda incondicional cuando nada coincide.
const respuestaPorDefecto = `Soy un asistente básico de normatividad archivística colombiana.

Puedo ayudarte con:
- Acuerdo 594 de 2000 (TRD)
- Ley 594 de 2000 (Ley General de Archivos)
- Series y subseries documentales
- Tiempos de retención
- Organización de archivos

Escribe palabras clave como: "acuerdo 594", "TRD", "series", "retención", "ley 594", "organización"`

// saludoInicial mensaje de apertura del transcript (el transcript lo
// mantiene el cliente, no este servicio).
const saludoInicial = `Hola! Soy tu asistente de normatividad archivística. Puedo ayudarte con consultas sobre el Acuerdo 594 de 2000, Ley 594 de 2000, Tablas de Retención Documental y organización de archivos. ¿En qué puedo ayudarte?`

var preguntasSugeridas = []string{
	"¿Qué es el Acuerdo 594 de 2000?",
	"¿Cómo se organiza una TRD?",
	"¿Qué son las series documentales?",
	"¿Cuáles son los tiempos de retención?",
}

func (s *normatividadService) Responder(mensaje string) *dto.ConsultaResponse {
	consulta := strings.ToLower(mensaje)

	for _, tema := range baseConocimiento {
		if strings.Contains(consulta, tema.Clave) {
			return &dto.ConsultaResponse{Respuesta: tema.Texto, Tema: tema.Clave}
		}
	}

	// Palabras clave adicionales que redirigen a temas existentes
	if strings.Contains(consulta, "tabla") || strings.Contains(consulta, "retención") {
		return &dto.ConsultaResponse{Respuesta: textoDeTema("trd"), Tema: "trd"}
	}
	if strings.Contains(consulta, "tiempo") || strings.Contains(consulta, "archivo") {
		return &dto.ConsultaResponse{Respuesta: textoDeTema("retención"), Tema: "retención"}
	}
	if strings.Contains(consulta, "organiz") || strings.Contains(consulta, "cómo") {
		return &dto.ConsultaResponse{Respuesta: textoDeTema("organización"), Tema: "organización"}
	}

	return &dto.ConsultaResponse{Respuesta: respuestaPorDefecto, Tema: "default"}
}

func (s *normatividadService) Sugerencias() *dto.SugerenciasResponse {
	return &dto.SugerenciasResponse{
		Saludo:    saludoInicial,
		Preguntas: preguntasSugeridas,
	}
}

func textoDeTema(clave string) string {
	for _, tema := range baseConocimiento {
		if tema.Clave == clave {
			return tema.Texto
		}
	}
	return respuestaPorDefecto
}
