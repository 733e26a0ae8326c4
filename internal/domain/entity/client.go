package entity

// Client representa un cliente del negocio.
// Code es el consecutivo visible (C1, C2, ...) asignado al crear; nunca cambia.
type Client struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}
