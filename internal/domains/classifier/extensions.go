package classifier

import "source.hodakov.me/hdkv/mediaconvert/internal/domains/classifier/dto"

// Extensions are matched case-sensitively, so every accepted spelling is
// listed explicitly.
var extensions = map[string]dto.Kind{
	".heic": dto.KindImage,
	".HEIC": dto.KindImage,

	".mov": dto.KindVideo,
	".MOV": dto.KindVideo,
	".qt":  dto.KindVideo,
	".QT":  dto.KindVideo,
	".mp4": dto.KindVideo,
	".MP4": dto.KindVideo,
	".m4v": dto.KindVideo,
	".M4V": dto.KindVideo,
}

// Classify maps a file extension (with the leading dot) to its media kind.
func Classify(extension string) dto.Kind {
	kind, ok := extensions[extension]
	if !ok {
		return dto.KindIgnored
	}

	return kind
}
