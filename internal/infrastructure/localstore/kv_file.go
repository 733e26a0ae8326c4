// Package localstore implementa la persistencia local de la aplicación: un
// almacén clave/valor respaldado en archivos JSON y el store del documento
// único con reemplazo atómico y suscripción a cambios.
package localstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileKV guarda cada clave como un archivo dentro de un directorio de datos.
// La escritura es archivo temporal + rename para no dejar valores a medias.
type FileKV struct {
	dir string
}

// NewFileKV crea el directorio de datos si no existe.
func NewFileKV(dir string) (*FileKV, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de datos: %w", err)
	}
	return &FileKV{dir: dir}, nil
}

// Get lee el valor de una clave; (nil, false, nil) si no existe.
func (f *FileKV) Get(key string) ([]byte, bool, error) {
	b, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("leer clave %q: %w", key, err)
	}
	return b, true, nil
}

// Set escribe el valor de una clave de forma atómica.
func (f *FileKV) Set(key string, value []byte) error {
	dst := f.path(key)
	tmp := dst + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return fmt.Errorf("escribir clave %q: %w", key, err)
	}
	if err := os.Rename(tmp, dst); err != nil {
		return fmt.Errorf("publicar clave %q: %w", key, err)
	}
	return nil
}

// path convierte la clave en un nombre de archivo portable (sin ':').
func (f *FileKV) path(key string) string {
	name := strings.ReplaceAll(key, ":", "-") + ".json"
	return filepath.Join(f.dir, name)
}
