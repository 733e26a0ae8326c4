package dto

// ClientPatch es la entrada del upsert de clientes. ID vacío crea; ID presente
// aplica un parche superficial (el parche gana cuando el campo viene).
type ClientPatch struct {
	ID   string  `json:"id,omitempty"`
	Name *string `json:"name,omitempty"`
}
