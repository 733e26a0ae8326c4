package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env
// y opcionalmente archivo .env).
type Config struct {
	App     AppConfig
	Storage StorageConfig
	Auth    AuthConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
}

// StorageConfig configuración del almacenamiento local clave/valor.
type StorageConfig struct {
	DataDir string // directorio donde se guardan los archivos JSON
}

// AuthConfig par de credenciales fijo para la puerta de entrada de la
// interfaz. No es una frontera de seguridad: sin hashing ni tokens.
type AuthConfig struct {
	Username string
	Password string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo). Las env vars tienen prioridad. Nombres esperados: APP_ENV,
// DATA_DIR, AUTH_USERNAME, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración .env en el directorio actual
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "pos-libro"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		Storage: StorageConfig{
			DataDir: getString(v, "DATA_DIR", "./data"),
		},
		Auth: AuthConfig{
			Username: getString(v, "AUTH_USERNAME", "Admin"),
			Password: getString(v, "AUTH_PASSWORD", "Admin000"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}
