// Package auth implementa la puerta de entrada de la interfaz: un par de
// credenciales fijo y una bandera persistida. No es una frontera de
// seguridad: sin hashing, sin tokens de sesión, sin expiración.
package auth

import (
	"encoding/json"

	"github.com/jhoicas/pos-libro/internal/domain/repository"
	"github.com/jhoicas/pos-libro/pkg/config"
	"github.com/jhoicas/pos-libro/pkg/logger"
)

// UseCase valida el login y mantiene la bandera de autenticación.
type UseCase struct {
	creds config.AuthConfig
	kv    repository.KV
	log   *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(creds config.AuthConfig, kv repository.KV, log *logger.Logger) *UseCase {
	return &UseCase{creds: creds, kv: kv, log: log}
}

// Login compara usuario y contraseña contra el par configurado y persiste el
// resultado. Devuelve si la autenticación fue exitosa.
func (uc *UseCase) Login(username, password string) (bool, error) {
	ok := username == uc.creds.Username && password == uc.creds.Password
	if !ok {
		uc.log.Warn().Str("username", username).Msg("login fallido")
	}
	if err := uc.setFlag(ok); err != nil {
		return false, err
	}
	return ok, nil
}

// Logout limpia la bandera de autenticación.
func (uc *UseCase) Logout() error {
	return uc.setFlag(false)
}

// Authenticated lee la bandera persistida; false si no existe o está corrupta.
func (uc *UseCase) Authenticated() bool {
	raw, ok, err := uc.kv.Get(repository.KeyAuthenticated)
	if err != nil || !ok {
		return false
	}
	var v bool
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	return v
}

func (uc *UseCase) setFlag(v bool) error {
	raw, _ := json.Marshal(v)
	return uc.kv.Set(repository.KeyAuthenticated, raw)
}
