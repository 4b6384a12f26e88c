package service

import (
	"strings"
	"testing"
)

func TestNormatividadService_Responder_TemaDirecto(t *testing.T) {
	svc := NewNormatividadService()

	resp := svc.Responder("¿Qué es el Acuerdo 594 de 2000?")
	if resp.Tema != "acuerdo 594" {
		t.Errorf("tema=%q, se esperaba acuerdo 594", resp.Tema)
	}
	if !strings.Contains(resp.Respuesta, "Tablas de Retención Documental") {
		t.Error("la respuesta no trae el texto del tema")
	}
}

func TestNormatividadService_Responder_SinMayusculas(t *testing.T) {
	svc := NewNormatividadService()

	// La coincidencia no distingue mayúsculas en la consulta
	a := svc.Responder("explícame la TRD")
	b := svc.Responder("explícame la trd")
	if a.Tema != "trd" || b.Tema != "trd" {
		t.Errorf("temas=%q/%q, se esperaba trd en ambos", a.Tema, b.Tema)
	}
}

func TestNormatividadService_Responder_OrdenDePrioridad(t *testing.T) {
	svc := NewNormatividadService()

	// "acuerdo 594" va antes que "ley 594" en la base: una consulta que
	// menciona ambos responde con el primero declarado
	resp := svc.Responder("diferencia entre acuerdo 594 y ley 594")
	if resp.Tema != "acuerdo 594" {
		t.Errorf("tema=%q, se esperaba acuerdo 594 por orden de declaración", resp.Tema)
	}

	// Sin el acuerdo en el texto sí gana la ley
	resp = svc.Responder("qué dice la ley 594")
	if resp.Tema != "ley 594" {
		t.Errorf("tema=%q, se esperaba ley 594", resp.Tema)
	}
}

func TestNormatividadService_Responder_Redirecciones(t *testing.T) {
	svc := NewNormatividadService()

	casos := map[string]string{
		"necesito una tabla":             "trd",
		"cuánto tiempo se guarda":        "retención",
		"cómo debo empezar":              "organización",
		"organizar mis carpetas":         "organización",
		"dónde queda el archivo central": "retención",
	}
	for consulta, tema := range casos {
		resp := svc.Responder(consulta)
		if resp.Tema != tema {
			t.Errorf("consulta %q: tema=%q, se esperaba %q", consulta, resp.Tema, tema)
		}
	}
}

func TestNormatividadService_Responder_PorDefecto(t *testing.T) {
	svc := NewNormatividadService()

	resp := svc.Responder("hola, buenos días")
	if resp.Tema != "default" {
		t.Errorf("tema=%q, se esperaba default", resp.Tema)
	}
	if !strings.Contains(resp.Respuesta, "palabras clave") {
		t.Error("la respuesta por defecto debe sugerir palabras clave")
	}
}

func TestNormatividadService_Responder_Deterministico(t *testing.T) {
	svc := NewNormatividadService()

	a := svc.Responder("series documentales")
	b := svc.Responder("series documentales")
	if a.Respuesta != b.Respuesta || a.Tema != b.Tema {
		t.Error("la misma consulta debe producir siempre la misma respuesta")
	}
}

func TestNormatividadService_Sugerencias(t *testing.T) {
	svc := NewNormatividadService()

	sug := svc.Sugerencias()
	if sug.Saludo == "" {
		t.Error("el saludo no puede estar vacío")
	}
	if len(sug.Preguntas) != 4 {
		t.Fatalf("se esperaban 4 preguntas sugeridas, hay %d", len(sug.Preguntas))
	}
	// Cada sugerencia debe resolver a un tema real, no al texto por defecto
	for _, p := range sug.Preguntas {
		if resp := svc.Responder(p); resp.Tema == "default" {
			t.Errorf("la sugerencia %q cae en la respuesta por defecto", p)
		}
	}
}
