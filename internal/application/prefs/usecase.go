// Package prefs maneja las preferencias escalares de la interfaz: pestaña
// activa, modo privado y tema. Cada una vive bajo su propia clave del KV,
// independiente del documento.
package prefs

import (
	"encoding/json"

	"github.com/jhoicas/pos-libro/internal/domain/repository"
)

// Defaults de las preferencias.
const (
	DefaultTab   = "Dashboard"
	DefaultTheme = "dark"
)

// UseCase lee y escribe las preferencias de la interfaz.
type UseCase struct {
	kv repository.KV
}

// NewUseCase construye el caso de uso.
func NewUseCase(kv repository.KV) *UseCase {
	return &UseCase{kv: kv}
}

// ActiveTab devuelve la pestaña activa persistida, o el default.
func (uc *UseCase) ActiveTab() string {
	return uc.getString(repository.KeyActiveTab, DefaultTab)
}

// SetActiveTab persiste la pestaña activa.
func (uc *UseCase) SetActiveTab(tab string) error {
	return uc.set(repository.KeyActiveTab, tab)
}

// PrivateMode devuelve si el modo privado está activo; false por defecto.
func (uc *UseCase) PrivateMode() bool {
	raw, ok, err := uc.kv.Get(repository.KeyPrivateMode)
	if err != nil || !ok {
		return false
	}
	var v bool
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	return v
}

// SetPrivateMode persiste la bandera de modo privado.
func (uc *UseCase) SetPrivateMode(v bool) error {
	return uc.set(repository.KeyPrivateMode, v)
}

// Theme devuelve el tema persistido, o el default.
func (uc *UseCase) Theme() string {
	return uc.getString(repository.KeyTheme, DefaultTheme)
}

// SetTheme persiste el tema.
func (uc *UseCase) SetTheme(theme string) error {
	return uc.set(repository.KeyTheme, theme)
}

func (uc *UseCase) getString(key, def string) string {
	raw, ok, err := uc.kv.Get(key)
	if err != nil || !ok {
		return def
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return def
	}
	return v
}

func (uc *UseCase) set(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return uc.kv.Set(key, raw)
}
