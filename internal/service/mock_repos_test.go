package service

import (
	"context"
	"fmt"
	"time"

	"github.com/tecnicoplaneacioninfi-lgtm/archivo-planeacion/internal/model"
	"github.com/tecnicoplaneacioninfi-lgtm/archivo-planeacion/internal/repository"
)

// Los mocks conservan el contrato del almacén real: id y created_at los
// asigna el repo, ListAll devuelve por creación descendente y borrar un id
// inexistente es éxito silencioso.

var baseTiempo = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

// ── Mock AlistamientoRepository ──

type mockAlistamientoRepo struct {
	regs []model.Alistamiento
	seq  int

	failCreate error
	failList   error
	failUpdate error
	failDelete error
}

func newMockAlistamientoRepo() *mockAlistamientoRepo {
	return &mockAlistamientoRepo{}
}

func (m *mockAlistamientoRepo) Create(_ context.Context, reg *model.Alistamiento) error {
	if m.failCreate != nil {
		return m.failCreate
	}
	m.seq++
	reg.ID = fmt.Sprintf("ali-%03d", m.seq)
	reg.CreatedAt = baseTiempo.Add(time.Duration(m.seq) * time.Minute)
	m.regs = append(m.regs, *reg)
	return nil
}

func (m *mockAlistamientoRepo) ListAll(_ context.Context) ([]model.Alistamiento, error) {
	if m.failList != nil {
		return nil, m.failList
	}
	// Creación descendente: el último creado primero
	out := make([]model.Alistamiento, 0, len(m.regs))
	for i := len(m.regs) - 1; i >= 0; i-- {
		out = append(out, m.regs[i])
	}
	return out, nil
}

func (m *mockAlistamientoRepo) Update(_ context.Context, id string, campos map[string]interface{}) error {
	if m.failUpdate != nil {
		return m.failUpdate
	}
	for i := range m.regs {
		if m.regs[i].ID != id {
			continue
		}
		if v, ok := campos["checklist"]; ok {
			m.regs[i].Checklist = v.(bool)
		}
		if v, ok := campos["rotulado"]; ok {
			m.regs[i].Rotulado = v.(bool)
		}
		if v, ok := campos["foliada"]; ok {
			m.regs[i].Foliada = v.(bool)
		}
	}
	return nil
}

func (m *mockAlistamientoRepo) Delete(_ context.Context, id string) error {
	if m.failDelete != nil {
		return m.failDelete
	}
	for i := range m.regs {
		if m.regs[i].ID == id {
			m.regs = append(m.regs[:i], m.regs[i+1:]...)
			return nil
		}
	}
	return nil
}

// ── Mock TareaRepository ──

type mockTareaRepo struct {
	tareas []model.Tarea
	seq    int

	failCreate error
	failList   error
	failUpdate error
}

func newMockTareaRepo() *mockTareaRepo {
	return &mockTareaRepo{}
}

func (m *mockTareaRepo) Create(_ context.Context, tarea *model.Tarea) error {
	if m.failCreate != nil {
		return m.failCreate
	}
	m.seq++
	tarea.ID = fmt.Sprintf("tar-%03d", m.seq)
	tarea.CreatedAt = baseTiempo.Add(time.Duration(m.seq) * time.Minute)
	m.tareas = append(m.tareas, *tarea)
	return nil
}

func (m *mockTareaRepo) ListAll(_ context.Context) ([]model.Tarea, error) {
	if m.failList != nil {
		return nil, m.failList
	}
	out := make([]model.Tarea, 0, len(m.tareas))
	for i := len(m.tareas) - 1; i >= 0; i-- {
		out = append(out, m.tareas[i])
	}
	return out, nil
}

func (m *mockTareaRepo) Update(_ context.Context, id string, campos map[string]interface{}) error {
	if m.failUpdate != nil {
		return m.failUpdate
	}
	for i := range m.tareas {
		if m.tareas[i].ID == id {
			if v, ok := campos["estado"]; ok {
				m.tareas[i].Estado = v.(string)
			}
		}
	}
	return nil
}

func (m *mockTareaRepo) Delete(_ context.Context, id string) error {
	for i := range m.tareas {
		if m.tareas[i].ID == id {
			m.tareas = append(m.tareas[:i], m.tareas[i+1:]...)
			return nil
		}
	}
	return nil
}

// ── Mock PrestamoRepository ──

type mockPrestamoRepo struct {
	prestamos []model.Prestamo
	seq       int

	failCreate error
	failList   error
}

func newMockPrestamoRepo() *mockPrestamoRepo {
	return &mockPrestamoRepo{}
}

func (m *mockPrestamoRepo) Create(_ context.Context, prestamo *model.Prestamo) error {
	if m.failCreate != nil {
		return m.failCreate
	}
	m.seq++
	prestamo.ID = fmt.Sprintf("pre-%03d", m.seq)
	prestamo.CreatedAt = baseTiempo.Add(time.Duration(m.seq) * time.Minute)
	m.prestamos = append(m.prestamos, *prestamo)
	return nil
}

func (m *mockPrestamoRepo) ListAll(_ context.Context) ([]model.Prestamo, error) {
	if m.failList != nil {
		return nil, m.failList
	}
	out := make([]model.Prestamo, 0, len(m.prestamos))
	for i := len(m.prestamos) - 1; i >= 0; i-- {
		out = append(out, m.prestamos[i])
	}
	return out, nil
}

func (m *mockPrestamoRepo) Update(_ context.Context, id string, campos map[string]interface{}) error {
	for i := range m.prestamos {
		if m.prestamos[i].ID == id {
			if v, ok := campos["estado"]; ok {
				m.prestamos[i].Estado = v.(string)
			}
		}
	}
	return nil
}

func (m *mockPrestamoRepo) Delete(_ context.Context, id string) error {
	for i := range m.prestamos {
		if m.prestamos[i].ID == id {
			m.prestamos = append(m.prestamos[:i], m.prestamos[i+1:]...)
			return nil
		}
	}
	return nil
}

// ── Mock InventarioRepository ──

type mockInventarioRepo struct {
	items []model.InventarioItem
	seq   int

	failCreate error
	failList   error
	// failCreateDesde rechaza los Create a partir del enésimo (1-based);
	// 0 desactiva. Sirve para simular una importación interrumpida.
	failCreateDesde int
}

func newMockInventarioRepo() *mockInventarioRepo {
	return &mockInventarioRepo{}
}

func (m *mockInventarioRepo) Create(_ context.Context, item *model.InventarioItem) error {
	if m.failCreate != nil {
		return m.failCreate
	}
	if m.failCreateDesde > 0 && m.seq+1 >= m.failCreateDesde {
		return fmt.Errorf("rechazo simulado del almacén")
	}
	m.seq++
	item.ID = fmt.Sprintf("inv-%03d", m.seq)
	item.CreatedAt = baseTiempo.Add(time.Duration(m.seq) * time.Minute)
	m.items = append(m.items, *item)
	return nil
}

func (m *mockInventarioRepo) ListAll(_ context.Context) ([]model.InventarioItem, error) {
	if m.failList != nil {
		return nil, m.failList
	}
	out := make([]model.InventarioItem, 0, len(m.items))
	for i := len(m.items) - 1; i >= 0; i-- {
		out = append(out, m.items[i])
	}
	return out, nil
}

func (m *mockInventarioRepo) Update(_ context.Context, id string, campos map[string]interface{}) error {
	for i := range m.items {
		if m.items[i].ID != id {
			continue
		}
		if v, ok := campos["nombre_archivo"]; ok {
			m.items[i].NombreArchivo = v.(string)
		}
		if v, ok := campos["ubicacion"]; ok {
			m.items[i].Ubicacion = v.(string)
		}
		if v, ok := campos["caja"]; ok {
			m.items[i].Caja = v.(string)
		}
		if v, ok := campos["carpeta"]; ok {
			m.items[i].Carpeta = v.(string)
		}
		if v, ok := campos["descripcion"]; ok {
			m.items[i].Descripcion = v.(string)
		}
		if v, ok := campos["fecha_ingreso"]; ok {
			m.items[i].FechaIngreso = v.(string)
		}
	}
	return nil
}

func (m *mockInventarioRepo) Delete(_ context.Context, id string) error {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return nil
}

// ── Agregado de mocks ──

func newMockRepository() (*repository.Repository, *mockAlistamientoRepo, *mockTareaRepo, *mockPrestamoRepo, *mockInventarioRepo) {
	ali := newMockAlistamientoRepo()
	tar := newMockTareaRepo()
	pre := newMockPrestamoRepo()
	inv := newMockInventarioRepo()
	repo := &repository.Repository{
		Alistamiento: ali,
		Tarea:        tar,
		Prestamo:     pre,
		Inventario:   inv,
	}
	return repo, ali, tar, pre, inv
}
