package repository

// Claves fijas de persistencia. El documento vive bajo una sola clave; las
// preferencias de la interfaz son escalares independientes.
const (
	KeyDocument      = "lg:data"
	KeyActiveTab     = "lg:tab"
	KeyPrivateMode   = "lg:private"
	KeyAuthenticated = "lg:auth"
	KeyTheme         = "lg:theme"
)

// KV define el puerto clave/valor de persistencia: get/set de bytes crudos,
// sin versionado de esquema ni migraciones.
type KV interface {
	// Get devuelve el valor y true, o (nil, false) si la clave no existe.
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
}
