package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/tecnicoplaneacioninfi-lgtm/archivo-planeacion/internal/dto"
)

// ── Preparación ──

func setupInventarioService() (InventarioService, *mockInventarioRepo) {
	repo, _, _, _, inv := newMockRepository()
	svc := NewInventarioService(repo, zap.NewNop())
	return svc, inv
}

// libroDePrueba arma un xlsx en memoria con los encabezados y filas dados.
func libroDePrueba(t *testing.T, encabezados []string, filas [][]string) io.Reader {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	hoja := f.GetSheetName(0)
	for col, h := range encabezados {
		celda, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(hoja, celda, h); err != nil {
			t.Fatal(err)
		}
	}
	for n, fila := range filas {
		for col, v := range fila {
			celda, _ := excelize.CoordinatesToCellName(col+1, n+2)
			if err := f.SetCellValue(hoja, celda, v); err != nil {
				t.Fatal(err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}
	return buf
}

// ── CRUD ──

func TestInventarioService_Create_FechaPorDefecto(t *testing.T) {
	svc, _ := setupInventarioService()

	item, err := svc.Create(context.Background(), &dto.CreateInventarioRequest{
		NombreArchivo: "Actas 2024",
		Ubicacion:     "Estante 3",
		Caja:          "C-12",
	})
	if err != nil {
		t.Fatalf("Create falló: %v", err)
	}
	if item.FechaIngreso == "" {
		t.Error("la fecha de ingreso vacía debe rellenarse con la de hoy")
	}
	if item.ID == "" {
		t.Error("el id debe venir asignado")
	}
}

func TestInventarioService_List_Busqueda(t *testing.T) {
	svc, _ := setupInventarioService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, &dto.CreateInventarioRequest{
		NombreArchivo: "Actas 2024", Ubicacion: "Estante 3", Caja: "C-12",
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Create(ctx, &dto.CreateInventarioRequest{
		NombreArchivo: "Informes SIG", Ubicacion: "Bodega", Caja: "C-13",
	}); err != nil {
		t.Fatal(err)
	}

	// Coincidencia por cualquier campo de texto, sin mayúsculas
	for termino, esperados := range map[string]int{"actas": 1, "ESTANTE": 1, "c-1": 2, "zzz": 0} {
		lista, _ := svc.List(ctx, termino)
		if len(lista) != esperados {
			t.Errorf("término %q: se esperaban %d ítems, hay %d", termino, esperados, len(lista))
		}
	}
}

func TestInventarioService_Update_EsFusion(t *testing.T) {
	svc, _ := setupInventarioService()
	item, err := svc.Create(context.Background(), &dto.CreateInventarioRequest{
		NombreArchivo: "Actas 2024", Ubicacion: "Estante 3", Caja: "C-12",
	})
	if err != nil {
		t.Fatal(err)
	}

	nueva := "Bodega 2"
	if err := svc.Update(context.Background(), item.ID, &dto.UpdateInventarioRequest{Ubicacion: &nueva}); err != nil {
		t.Fatal(err)
	}

	lista, _ := svc.List(context.Background(), "")
	if lista[0].Ubicacion != "Bodega 2" {
		t.Errorf("ubicacion=%s, se esperaba Bodega 2", lista[0].Ubicacion)
	}
	if lista[0].NombreArchivo != "Actas 2024" || lista[0].Caja != "C-12" {
		t.Error("la fusión parcial alteró otros campos")
	}
}

func TestInventarioService_Resumen_ConteosDistintos(t *testing.T) {
	svc, _ := setupInventarioService()
	ctx := context.Background()

	datos := []dto.CreateInventarioRequest{
		{NombreArchivo: "a", Ubicacion: "Estante 1", Caja: "C-1"},
		{NombreArchivo: "b", Ubicacion: "Estante 1", Caja: "C-2"},
		{NombreArchivo: "c", Ubicacion: "Estante 2", Caja: "C-2"},
	}
	for i := range datos {
		if _, err := svc.Create(ctx, &datos[i]); err != nil {
			t.Fatal(err)
		}
	}

	resumen, err := svc.Resumen(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if resumen.Total != 3 || resumen.Ubicaciones != 2 || resumen.Cajas != 2 {
		t.Errorf("resumen inesperado: %+v", resumen)
	}
}

// ── ImportarExcel ──

func TestInventarioService_ImportarExcel_Sinonimos(t *testing.T) {
	svc, _ := setupInventarioService()

	// Variantes de encabezado: "Nombre" y "Ubicacion" sin tilde
	r := libroDePrueba(t,
		[]string{"Nombre", "Ubicacion", "Caja", "Descripcion"},
		[][]string{
			{"Actas 2024", "Estante 3", "C-12", "Comité ambiental"},
			{"Circulares", "Estante 4", "C-13", ""},
		},
	)

	resp, err := svc.ImportarExcel(context.Background(), r)
	if err != nil {
		t.Fatalf("ImportarExcel falló: %v", err)
	}
	if resp.Importados != 2 || resp.Omitidos != 0 {
		t.Errorf("resultado inesperado: %+v", resp)
	}

	lista, _ := svc.List(context.Background(), "")
	if len(lista) != 2 {
		t.Fatalf("se esperaban 2 ítems creados, hay %d", len(lista))
	}
	// La fecha faltante se rellena con la de hoy
	if lista[0].FechaIngreso == "" {
		t.Error("fecha_ingreso debe rellenarse al importar")
	}
}

func TestInventarioService_ImportarExcel_OmiteFilasIncompletas(t *testing.T) {
	svc, _ := setupInventarioService()

	r := libroDePrueba(t,
		[]string{"Nombre Archivo", "Ubicación"},
		[][]string{
			{"Actas 2024", "Estante 3"},
			{"", "Estante 4"},     // sin nombre: se omite
			{"Informes SIG", ""},  // sin ubicación: se omite
			{"Planes 2025", "Bodega"},
		},
	)

	resp, err := svc.ImportarExcel(context.Background(), r)
	if err != nil {
		t.Fatalf("ImportarExcel falló: %v", err)
	}
	if resp.Importados != 2 || resp.Omitidos != 2 {
		t.Errorf("resultado inesperado: %+v", resp)
	}
}

func TestInventarioService_ImportarExcel_SinEncabezadosMinimos(t *testing.T) {
	svc, _ := setupInventarioService()

	r := libroDePrueba(t,
		[]string{"Caja", "Carpeta"},
		[][]string{{"C-1", "K-2"}},
	)

	_, err := svc.ImportarExcel(context.Background(), r)
	if !errors.Is(err, ErrImportSinEncabezado) {
		t.Errorf("se esperaba ErrImportSinEncabezado, fue: %v", err)
	}
}

func TestInventarioService_ImportarExcel_SinFilas(t *testing.T) {
	svc, _ := setupInventarioService()

	r := libroDePrueba(t, []string{"Nombre Archivo", "Ubicación"}, nil)

	_, err := svc.ImportarExcel(context.Background(), r)
	if !errors.Is(err, ErrImportSinFilas) {
		t.Errorf("se esperaba ErrImportSinFilas, fue: %v", err)
	}
}

func TestInventarioService_ImportarExcel_RechazoInterrumpe(t *testing.T) {
	svc, inv := setupInventarioService()
	inv.failCreateDesde = 2 // el segundo Create es rechazado

	r := libroDePrueba(t,
		[]string{"Nombre Archivo", "Ubicación"},
		[][]string{
			{"Uno", "Estante 1"},
			{"Dos", "Estante 2"},
			{"Tres", "Estante 3"},
		},
	)

	_, err := svc.ImportarExcel(context.Background(), r)
	if err == nil {
		t.Fatal("un rechazo del almacén a mitad de camino debe abortar")
	}
	// Lo ya creado no se revierte
	lista, _ := svc.List(context.Background(), "")
	if len(lista) != 1 {
		t.Errorf("debe quedar 1 ítem creado antes del rechazo, hay %d", len(lista))
	}
}

func TestInventarioService_ImportarExcel_ArchivoInvalido(t *testing.T) {
	svc, _ := setupInventarioService()

	_, err := svc.ImportarExcel(context.Background(), bytes.NewReader([]byte("esto no es un xlsx")))
	if err == nil {
		t.Fatal("un archivo ilegible debe producir error")
	}
}
