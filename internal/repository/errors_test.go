package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

// ── Clasificación de fallos ──

func TestClasificarEscritura_TablaInexistente(t *testing.T) {
	err := clasificarEscritura(&pgconn.PgError{Code: "42P01", Message: "relation \"tareas\" does not exist"})
	if !errors.Is(err, ErrColeccionInexistente) {
		t.Errorf("42P01 debe clasificarse como ErrColeccionInexistente, fue: %v", err)
	}
}

func TestClasificarEscritura_CredencialRechazada(t *testing.T) {
	for _, code := range []string{"28000", "28P01"} {
		err := clasificarEscritura(&pgconn.PgError{Code: code})
		if !errors.Is(err, ErrCredencialRechazada) {
			t.Errorf("código %s debe clasificarse como ErrCredencialRechazada, fue: %v", code, err)
		}
	}
}

func TestClasificarEscritura_RechazoGenerico(t *testing.T) {
	err := clasificarEscritura(&pgconn.PgError{Code: "23505"}) // unique_violation
	if !errors.Is(err, ErrPersistencia) {
		t.Errorf("un rechazo genérico debe clasificarse como ErrPersistencia, fue: %v", err)
	}

	err = clasificarEscritura(errors.New("connection refused"))
	if !errors.Is(err, ErrPersistencia) {
		t.Errorf("un error no-pg debe clasificarse como ErrPersistencia, fue: %v", err)
	}
}

func TestClasificarEscritura_ErrorEnvuelto(t *testing.T) {
	// GORM suele envolver el error del driver
	interno := fmt.Errorf("exec: %w", &pgconn.PgError{Code: "42P01"})
	if !errors.Is(clasificarEscritura(interno), ErrColeccionInexistente) {
		t.Error("la clasificación debe atravesar errores envueltos")
	}
}

func TestClasificar_Nil(t *testing.T) {
	if clasificarEscritura(nil) != nil {
		t.Error("nil debe permanecer nil")
	}
	if clasificarLectura(nil) != nil {
		t.Error("nil debe permanecer nil")
	}
}

func TestClasificarLectura(t *testing.T) {
	err := clasificarLectura(errors.New("timeout"))
	if !errors.Is(err, ErrConsulta) {
		t.Errorf("todo fallo de lectura debe ser ErrConsulta, fue: %v", err)
	}
}
