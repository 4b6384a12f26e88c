package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/tecnicoplaneacioninfi-lgtm/archivo-planeacion/internal/dto"
	"github.com/tecnicoplaneacioninfi-lgtm/archivo-planeacion/internal/model"
	"github.com/tecnicoplaneacioninfi-lgtm/archivo-planeacion/internal/repository"
	"github.com/tecnicoplaneacioninfi-lgtm/archivo-planeacion/internal/trd"
)

// ── Preparación ──

func setupSeguimientoService() (SeguimientoService, *mockAlistamientoRepo, *mockTareaRepo, *mockPrestamoRepo) {
	repo, ali, tar, pre, _ := newMockRepository()
	svc := NewSeguimientoService(repo, zap.NewNop())
	return svc, ali, tar, pre
}

// ── Tareas ──

func TestSeguimientoService_CreateTarea_ValoresPorDefecto(t *testing.T) {
	svc, _, _, _ := setupSeguimientoService()

	tarea, err := svc.CreateTarea(context.Background(), &dto.CreateTareaRequest{Titulo: "Foliar cajas"})
	if err != nil {
		t.Fatalf("CreateTarea falló: %v", err)
	}
	if tarea.Estado != model.TareaPendiente {
		t.Errorf("estado por defecto debe ser Pendiente, fue %s", tarea.Estado)
	}
	if tarea.Fecha == "" {
		t.Error("la fecha vacía debe rellenarse con la de hoy")
	}
	if tarea.ID == "" || tarea.CreatedAt == "" {
		t.Error("id y created_at deben venir asignados")
	}
}

func TestSeguimientoService_UpdateEstadoTarea_CualquierTransicion(t *testing.T) {
	svc, _, _, _ := setupSeguimientoService()
	tarea, err := svc.CreateTarea(context.Background(), &dto.CreateTareaRequest{
		Titulo: "Rotular",
		Estado: model.TareaCompletado,
	})
	if err != nil {
		t.Fatal(err)
	}

	// No hay transiciones vetadas: Completado puede volver a Pendiente
	if err := svc.UpdateEstadoTarea(context.Background(), tarea.ID, model.TareaPendiente); err != nil {
		t.Fatalf("la transición Completado→Pendiente debe aceptarse: %v", err)
	}

	tareas, _ := svc.ListTareas(context.Background())
	if tareas[0].Estado != model.TareaPendiente {
		t.Errorf("estado=%s, se esperaba Pendiente", tareas[0].Estado)
	}
}

func TestSeguimientoService_UpdateEstadoTarea_EstadoInvalido(t *testing.T) {
	svc, _, _, _ := setupSeguimientoService()

	err := svc.UpdateEstadoTarea(context.Background(), "tar-001", "Archivado")
	if !errors.Is(err, ErrEstadoTareaInvalido) {
		t.Errorf("se esperaba ErrEstadoTareaInvalido, fue: %v", err)
	}
}

func TestSeguimientoService_DeleteTarea(t *testing.T) {
	svc, _, _, _ := setupSeguimientoService()
	tarea, err := svc.CreateTarea(context.Background(), &dto.CreateTareaRequest{Titulo: "Transferir"})
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.DeleteTarea(context.Background(), tarea.ID); err != nil {
		t.Fatal(err)
	}
	tareas, _ := svc.ListTareas(context.Background())
	if len(tareas) != 0 {
		t.Errorf("tras eliminar deben quedar 0 tareas, hay %d", len(tareas))
	}
}

func TestSeguimientoService_ListTareas_FalloColapsaAVacio(t *testing.T) {
	svc, _, tar, _ := setupSeguimientoService()
	tar.failList = repository.ErrConsulta

	tareas, err := svc.ListTareas(context.Background())
	if err != nil || len(tareas) != 0 {
		t.Errorf("fallo de lectura debe colapsar a vacío: lista=%v err=%v", tareas, err)
	}
}

// ── Préstamos ──

func TestSeguimientoService_CreatePrestamo_NaceEnPrestado(t *testing.T) {
	svc, _, _, _ := setupSeguimientoService()

	prestamo, err := svc.CreatePrestamo(context.Background(), &dto.CreatePrestamoRequest{
		Persona: "MARITZA MACHADO",
		Carpeta: "102.2.10 - Actas Comité",
	})
	if err != nil {
		t.Fatalf("CreatePrestamo falló: %v", err)
	}
	if prestamo.Estado != model.PrestamoPrestado {
		t.Errorf("un préstamo nuevo debe nacer Prestado, fue %s", prestamo.Estado)
	}
}

func TestSeguimientoService_UpdateEstadoPrestamo_Devolucion(t *testing.T) {
	svc, _, _, _ := setupSeguimientoService()
	prestamo, err := svc.CreatePrestamo(context.Background(), &dto.CreatePrestamoRequest{
		Persona: "JORGE ROJAS",
		Carpeta: "102.8.1 - Circulares",
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.UpdateEstadoPrestamo(context.Background(), prestamo.ID, model.PrestamoDevuelto); err != nil {
		t.Fatal(err)
	}
	prestamos, _ := svc.ListPrestamos(context.Background())
	if prestamos[0].Estado != model.PrestamoDevuelto {
		t.Errorf("estado=%s, se esperaba Devuelto", prestamos[0].Estado)
	}

	if err := svc.UpdateEstadoPrestamo(context.Background(), prestamo.ID, "Perdido"); !errors.Is(err, ErrEstadoPrestamoInvalido) {
		t.Errorf("se esperaba ErrEstadoPrestamoInvalido, fue: %v", err)
	}
}

// ── Derivados ──

func TestSeguimientoService_CarpetasDisponibles(t *testing.T) {
	repo, _, _, _, _ := newMockRepository()
	aliSvc := NewAlistamientoService(repo, trd.Default(), zap.NewNop())
	svc := NewSeguimientoService(repo, zap.NewNop())

	asuntoLargo := strings.Repeat("a", 60)
	if _, err := aliSvc.Create(context.Background(), &dto.CreateAlistamientoRequest{
		Codigo: "102", Serie: "102.2", Subserie: "102.2.10", Asunto: asuntoLargo,
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := aliSvc.Create(context.Background(), &dto.CreateAlistamientoRequest{
		Codigo: "102", Serie: "102.8", Subserie: "102.8.1", Asunto: "Circular enero",
	}); err != nil {
		t.Fatal(err)
	}

	carpetas, err := svc.CarpetasDisponibles(context.Background())
	if err != nil {
		t.Fatalf("CarpetasDisponibles falló: %v", err)
	}
	if len(carpetas) != 2 {
		t.Fatalf("se esperaban 2 carpetas, hay %d", len(carpetas))
	}
	// Orden de creación descendente, asunto corto sin recortar
	if carpetas[0] != "102.8.1 - Circular enero" {
		t.Errorf("carpeta inesperada: %s", carpetas[0])
	}
	// Asunto largo recortado a 50 caracteres más puntos suspensivos
	esperada := "102.2.10 - " + strings.Repeat("a", 50) + "..."
	if carpetas[1] != esperada {
		t.Errorf("carpeta recortada inesperada: %s", carpetas[1])
	}
}

func TestSeguimientoService_Personal(t *testing.T) {
	svc, _, _, _ := setupSeguimientoService()

	personal := svc.Personal()
	if len(personal) != 8 {
		t.Fatalf("se esperaban 8 funcionarios, hay %d", len(personal))
	}
	if personal[0] != "ANDRES LAMPREA" || personal[len(personal)-1] != "OTROS" {
		t.Errorf("lista de personal inesperada: %v", personal)
	}
}

func TestSeguimientoService_Resumen(t *testing.T) {
	svc, _, _, _ := setupSeguimientoService()
	ctx := context.Background()

	if _, err := svc.CreateTarea(ctx, &dto.CreateTareaRequest{Titulo: "a"}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CreateTarea(ctx, &dto.CreateTareaRequest{Titulo: "b", Estado: model.TareaCompletado}); err != nil {
		t.Fatal(err)
	}
	prestamo, err := svc.CreatePrestamo(ctx, &dto.CreatePrestamoRequest{Persona: "OTROS", Carpeta: "x"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CreatePrestamo(ctx, &dto.CreatePrestamoRequest{Persona: "OTROS", Carpeta: "y"}); err != nil {
		t.Fatal(err)
	}
	if err := svc.UpdateEstadoPrestamo(ctx, prestamo.ID, model.PrestamoDevuelto); err != nil {
		t.Fatal(err)
	}

	resumen, err := svc.Resumen(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if resumen.TareasPendientes != 1 || resumen.TareasCompletadas != 1 || resumen.TareasEnProceso != 0 {
		t.Errorf("conteo de tareas inesperado: %+v", resumen)
	}
	if resumen.PrestamosActivos != 1 {
		t.Errorf("prestamos_activos=%d, se esperaba 1", resumen.PrestamosActivos)
	}
}
