package constants

// World Strip Layout
const (
	// DefaultWorldHeight is the strip height in rows, sky included
	DefaultWorldHeight = 8

	// DefaultGroundHeight is the number of ground rows under the paws
	DefaultGroundHeight = 2

	// MinWorldWidth is the narrowest strip the pet can live in
	MinWorldWidth = 20

	// StatusLineHeight is the row reserved under the strip for the status line
	StatusLineHeight = 1
)

// StatusSeparator joins status line fields
const StatusSeparator = " | "
