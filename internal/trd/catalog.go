// Package trd modela la Tabla de Retención Documental (TRD): la taxonomía
// estática de tres niveles Código → Serie → Subserie con la que se clasifican
// los documentos del archivo.
//
// El catálogo es un valor inmutable construido una sola vez al arrancar el
// proceso; ningún componente lo modifica en ejecución. Las búsquedas nunca
// devuelven error: un identificador desconocido produce un resultado vacío.
package trd

// Subserie nivel hoja de la taxonomía.
type Subserie struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}

// Serie agrupa subseries bajo un código.
type Serie struct {
	ID        string     `json:"id"`
	Nombre    string     `json:"nombre"`
	Subseries []Subserie `json:"subseries"`
}

// Codigo nivel superior de la taxonomía (ej. "102").
type Codigo struct {
	ID     string  `json:"id"`
	Nombre string  `json:"nombre"`
	Series []Serie `json:"series"`
}

// Catalogo conjunto ordenado de códigos TRD.
type Catalogo struct {
	codigos []Codigo
}

// NewCatalogo construye un catálogo a partir de la lista de códigos.
// El slice se copia para garantizar la inmutabilidad del catálogo.
func NewCatalogo(codigos []Codigo) *Catalogo {
	copia := make([]Codigo, len(codigos))
	copy(copia, codigos)
	return &Catalogo{codigos: copia}
}

// Codigos devuelve todos los códigos en orden de declaración.
func (c *Catalogo) Codigos() []Codigo {
	return c.codigos
}

// LookupCodigo busca un código por identificador.
func (c *Catalogo) LookupCodigo(id string) (Codigo, bool) {
	for _, cod := range c.codigos {
		if cod.ID == id {
			return cod, true
		}
	}
	return Codigo{}, false
}

// SeriesOf devuelve las series del código indicado, en orden.
// Código desconocido o sin series → slice vacío, nunca error.
func (c *Catalogo) SeriesOf(codigoID string) []Serie {
	cod, ok := c.LookupCodigo(codigoID)
	if !ok {
		return []Serie{}
	}
	if cod.Series == nil {
		return []Serie{}
	}
	return cod.Series
}

// SubseriesOf devuelve las subseries de la serie indicada dentro del código.
// Cualquier identificador desconocido → slice vacío, nunca error.
func (c *Catalogo) SubseriesOf(codigoID, serieID string) []Subserie {
	for _, s := range c.SeriesOf(codigoID) {
		if s.ID == serieID {
			if s.Subseries == nil {
				return []Subserie{}
			}
			return s.Subseries
		}
	}
	return []Subserie{}
}

// ContainsRuta verifica que la tripleta código/serie/subserie exista en el
// catálogo como ruta válida. Los lectores de registros persistidos NO deben
// usar esta verificación: combinaciones obsoletas son representables y se
// toleran en lectura; solo los escritores validan.
func (c *Catalogo) ContainsRuta(codigoID, serieID, subserieID string) bool {
	for _, sub := range c.SubseriesOf(codigoID, serieID) {
		if sub.ID == subserieID {
			return true
		}
	}
	return false
}
