package popupctl

// Type names a popup. When several are open the highest one takes input:
// Error, then Help, then Search, then Info.
type Type int

const (
	None Type = iota
	Help
	Search
	Info
	Error
)

// stacking lists popups bottom to top, as they are drawn.
var stacking = []Type{Info, Search, Help, Error}
