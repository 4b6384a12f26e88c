package trd

// Seleccion estado de un selector en cascada código → serie → subserie.
//
// Regla de reinicio: elegir un código descarta la serie y la subserie
// previas; elegir una serie descarta la subserie previa. Así es imposible
// enviar una combinación inválida construida sobre una selección anterior.
type Seleccion struct {
	cat      *Catalogo
	codigo   string
	serie    string
	subserie string
}

// NewSeleccion crea un selector vacío sobre el catálogo dado.
func NewSeleccion(cat *Catalogo) *Seleccion {
	return &Seleccion{cat: cat}
}

// SetCodigo fija el código y reinicia serie y subserie.
// Devuelve false si el código no existe en el catálogo (la selección queda
// vacía en ese caso).
func (s *Seleccion) SetCodigo(id string) bool {
	s.codigo = ""
	s.serie = ""
	s.subserie = ""
	if _, ok := s.cat.LookupCodigo(id); !ok {
		return false
	}
	s.codigo = id
	return true
}

// SetSerie fija la serie dentro del código actual y reinicia la subserie.
// Devuelve false si no hay código elegido o la serie no pertenece al código.
func (s *Seleccion) SetSerie(id string) bool {
	s.serie = ""
	s.subserie = ""
	if s.codigo == "" {
		return false
	}
	for _, serie := range s.cat.SeriesOf(s.codigo) {
		if serie.ID == id {
			s.serie = id
			return true
		}
	}
	return false
}

// SetSubserie fija la subserie dentro de la serie actual.
// Devuelve false si falta código o serie, o la subserie no pertenece.
func (s *Seleccion) SetSubserie(id string) bool {
	s.subserie = ""
	if s.codigo == "" || s.serie == "" {
		return false
	}
	for _, sub := range s.cat.SubseriesOf(s.codigo, s.serie) {
		if sub.ID == id {
			s.subserie = id
			return true
		}
	}
	return false
}

// Codigo identificador del código elegido ("" si no hay).
func (s *Seleccion) Codigo() string { return s.codigo }

// Serie identificador de la serie elegida ("" si no hay).
func (s *Seleccion) Serie() string { return s.serie }

// Subserie identificador de la subserie elegida ("" si no hay).
func (s *Seleccion) Subserie() string { return s.subserie }

// Completa indica si los tres niveles están elegidos.
func (s *Seleccion) Completa() bool {
	return s.codigo != "" && s.serie != "" && s.subserie != ""
}
