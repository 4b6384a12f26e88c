package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// ── Taxonomía de fallos del almacén remoto ──
//
// Toda operación de escritura clasifica el rechazo antes de devolverlo; los
// llamadores distinguen las categorías con errors.Is. Los fallos de lectura
// se clasifican como ErrConsulta y la capa de servicio los colapsa a
// resultado vacío (ver servicio).

var (
	// ErrColeccionInexistente la tabla destino no existe en el almacén.
	ErrColeccionInexistente = errors.New("la colección no existe en el almacén remoto")
	// ErrCredencialRechazada el almacén rechazó las credenciales.
	ErrCredencialRechazada = errors.New("credenciales rechazadas por el almacén")
	// ErrPersistencia rechazo genérico de escritura o borrado.
	ErrPersistencia = errors.New("el almacén rechazó la operación")
	// ErrConsulta rechazo de lectura.
	ErrConsulta = errors.New("fallo de lectura en el almacén")
)

// Códigos SQLSTATE de PostgreSQL relevantes para la clasificación.
const (
	codigoTablaIndefinida = "42P01" // undefined_table
	claseAutorizacion     = "28"    // invalid_authorization_specification
)

// clasificarEscritura asigna una categoría de la taxonomía a un rechazo de
// escritura. Nunca traga el error: siempre lo envuelve y lo re-lanza.
func clasificarEscritura(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == codigoTablaIndefinida:
			return fmt.Errorf("%w: %v", ErrColeccionInexistente, err)
		case len(pgErr.Code) >= 2 && pgErr.Code[:2] == claseAutorizacion:
			return fmt.Errorf("%w: %v", ErrCredencialRechazada, err)
		}
	}
	return fmt.Errorf("%w: %v", ErrPersistencia, err)
}

// clasificarLectura envuelve cualquier rechazo de lectura como ErrConsulta.
func clasificarLectura(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrConsulta, err)
}
