package service

import "strings"

// coincideBusqueda filtro de búsqueda libre: el registro se incluye si
// cualquiera de sus campos de texto contiene el término como subcadena,
// sin distinguir mayúsculas. Un término vacío incluye todo.
func coincideBusqueda(termino string, campos ...string) bool {
	termino = strings.ToLower(strings.TrimSpace(termino))
	if termino == "" {
		return true
	}
	for _, campo := range campos {
		if strings.Contains(strings.ToLower(campo), termino) {
			return true
		}
	}
	return false
}
