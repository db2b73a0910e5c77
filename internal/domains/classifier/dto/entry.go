package dto

// Entry is a regular file found in the input directory.
type Entry struct {
	Path      string
	Extension string
	Kind      Kind
}
