package dto

// Request is a fully resolved conversion run. OutputDir defaults to
// <InputDir>/converted when empty.
type Request struct {
	InputDir  string
	OutputDir string
	Quality   int
	Workers   int
}
