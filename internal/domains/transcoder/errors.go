package transcoder

import "errors"

var (
	ErrTranscoder             = errors.New("transcoder")
	ErrToolNotFound           = errors.New("ffmpeg not found")
	ErrSourceNotReadable      = errors.New("can't read source file")
	ErrDecodeFailed           = errors.New("failed to decode image")
	ErrEncodeFailed           = errors.New("failed to encode image")
	ErrTranscodeError         = errors.New("transcode error")
	ErrToolExited             = errors.New("ffmpeg exited with error")
	ErrTranscodedFileIsEmpty  = errors.New("transcoded file is empty")
	ErrTranscodedFileNotFound = errors.New("transcoded file not found")
	ErrFailedToPlaceOutput    = errors.New("failed to move output into place")
	ErrUnsupportedKind        = errors.New("unsupported media kind")
	ErrUnexpectedPanic        = errors.New("unexpected panic")
)
