package dto

// Kind is the media class of a directory entry. New media kinds are added
// here and in the classifier's extension table.
type Kind int

const (
	KindIgnored Kind = iota
	KindImage
	KindVideo
)

func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindVideo:
		return "video"
	default:
		return "ignored"
	}
}

// OutputExtension is the extension of the file produced for this kind.
func (k Kind) OutputExtension() string {
	switch k {
	case KindImage:
		return ".jpg"
	case KindVideo:
		return ".mp4"
	default:
		return ""
	}
}
