package entity

const (
	MaxItemNameLength = 32
	MaxItemURILength  = 200
	MaxSymbolLength   = 10
)

// Item describes one not-yet-issued item of a machine inventory.
type Item struct {
	Name   string
	URI    string
	Minted bool
}
