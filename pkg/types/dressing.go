package types

// Dressing is the item being donated, identified only by its type label.
type Dressing struct {
	Type string `json:"type"`
}

func NewDressing(typ string) Dressing {
	return Dressing{Type: typ}
}
