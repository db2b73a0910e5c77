package transcoder

import (
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"source.hodakov.me/hdkv/mediaconvert/internal/application"
	cdto "source.hodakov.me/hdkv/mediaconvert/internal/domains/classifier/dto"
)

func newTestTranscoder(t *testing.T, args ...string) *Transcoder {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "mediaconvert.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("{}\n"), 0o644))
	t.Setenv("MEDIACONVERT_CONFIG", configPath)

	app := application.New(context.Background())
	require.NoError(t, app.InitConfig(args))

	return New(app)
}

// writePNG stores a small PNG under a .heic name; tests swap the HEIC
// decoder for png.Decode to exercise the rest of the pipeline.
func writePNG(t *testing.T, path string) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 16, 8))
	for x := 0; x < 16; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 16), G: uint8(y * 32), B: 128, A: 255})
		}
	}

	file, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(file, img))
	require.NoError(t, file.Close())
}

// writeTool creates a shell script standing in for ffmpeg.
func writeTool(t *testing.T, body string) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}

	path := filepath.Join(t.TempDir(), "ffmpeg")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755))

	return path
}

func leftovers(t *testing.T, dir string) []string {
	t.Helper()

	matches, err := filepath.Glob(filepath.Join(dir, ".*.part"))
	require.NoError(t, err)

	return matches
}

func TestConvertImage_Success(t *testing.T) {
	transcoder := newTestTranscoder(t)
	transcoder.decodeImage = png.Decode

	input := t.TempDir()
	output := t.TempDir()
	source := filepath.Join(input, "IMG_0001.HEIC")
	writePNG(t, source)

	outcome := transcoder.ConvertImage(cdto.NewImageTask(source, output, 80))

	require.True(t, outcome.Success, outcome.Message)
	assert.Equal(t, source, outcome.SourcePath)
	assert.Equal(t, filepath.Join(output, "IMG_0001.jpg"), outcome.DestinationPath)
	assert.Empty(t, outcome.Message)

	file, err := os.Open(outcome.DestinationPath)
	require.NoError(t, err)
	defer file.Close()

	img, err := jpeg.Decode(file)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 16, 8), img.Bounds())
	assert.Empty(t, leftovers(t, output))
}

func TestConvertImage_OverwritesExistingOutput(t *testing.T) {
	transcoder := newTestTranscoder(t)
	transcoder.decodeImage = png.Decode

	input := t.TempDir()
	output := t.TempDir()
	source := filepath.Join(input, "a.heic")
	writePNG(t, source)
	require.NoError(t, os.WriteFile(filepath.Join(output, "a.jpg"), []byte("stale"), 0o644))

	outcome := transcoder.ConvertImage(cdto.NewImageTask(source, output, 95))
	require.True(t, outcome.Success, outcome.Message)

	data, err := os.ReadFile(filepath.Join(output, "a.jpg"))
	require.NoError(t, err)
	assert.NotEqual(t, "stale", string(data))
}

func TestConvertImage_CorruptInput(t *testing.T) {
	transcoder := newTestTranscoder(t)
	transcoder.decodeImage = png.Decode

	input := t.TempDir()
	output := t.TempDir()
	source := filepath.Join(input, "broken.heic")
	require.NoError(t, os.WriteFile(source, []byte("definitely not an image"), 0o644))

	outcome := transcoder.ConvertImage(cdto.NewImageTask(source, output, 95))

	assert.False(t, outcome.Success)
	assert.True(t, strings.HasPrefix(outcome.Message, source+": "), outcome.Message)
	assert.Contains(t, outcome.Message, ErrDecodeFailed.Error())
	assert.NoFileExists(t, filepath.Join(output, "broken.jpg"))
	assert.Empty(t, leftovers(t, output))
}

func TestConvertImage_MissingSource(t *testing.T) {
	transcoder := newTestTranscoder(t)
	source := filepath.Join(t.TempDir(), "gone.heic")

	outcome := transcoder.ConvertImage(cdto.NewImageTask(source, t.TempDir(), 95))

	assert.False(t, outcome.Success)
	assert.Contains(t, outcome.Message, source)
	assert.Contains(t, outcome.Message, ErrSourceNotReadable.Error())
}

func TestConvertImage_MissingDestination(t *testing.T) {
	transcoder := newTestTranscoder(t)
	transcoder.decodeImage = png.Decode

	source := filepath.Join(t.TempDir(), "a.heic")
	writePNG(t, source)

	outcome := transcoder.ConvertImage(cdto.NewImageTask(source, filepath.Join(t.TempDir(), "nope"), 95))

	assert.False(t, outcome.Success)
	assert.Contains(t, outcome.Message, ErrEncodeFailed.Error())
}

func TestConvertVideo_Success(t *testing.T) {
	argsFile := filepath.Join(t.TempDir(), "args")
	tool := writeTool(t, `printf '%s\n' "$@" > "`+argsFile+`"
for last in "$@"; do :; done
printf 'video' > "$last"
`)
	transcoder := newTestTranscoder(t)

	input := t.TempDir()
	output := t.TempDir()
	source := filepath.Join(input, "clip.MOV")
	require.NoError(t, os.WriteFile(source, []byte("mov"), 0o644))

	outcome := transcoder.ConvertVideo(context.Background(), cdto.NewVideoTask(source, output, tool))

	require.True(t, outcome.Success, outcome.Message)
	assert.Equal(t, filepath.Join(output, "clip.mp4"), outcome.DestinationPath)

	data, err := os.ReadFile(outcome.DestinationPath)
	require.NoError(t, err)
	assert.Equal(t, "video", string(data))
	assert.Empty(t, leftovers(t, output))

	rawArgs, err := os.ReadFile(argsFile)
	require.NoError(t, err)

	args := strings.Split(strings.TrimSpace(string(rawArgs)), "\n")
	require.Len(t, args, 15)
	assert.Equal(t, []string{
		"-y", "-i", source, "-vcodec", "libx264", "-preset", "ultrafast",
		"-threads", "1", "-acodec", "aac", "-strict", "experimental", "-f", "mp4",
	}, args[:14])
	assert.Equal(t, output, filepath.Dir(args[14]))
}

func TestConvertVideo_NonZeroExit(t *testing.T) {
	tool := writeTool(t, "exit 3\n")
	transcoder := newTestTranscoder(t)

	output := t.TempDir()
	source := filepath.Join(t.TempDir(), "clip.mov")
	require.NoError(t, os.WriteFile(source, []byte("mov"), 0o644))

	outcome := transcoder.ConvertVideo(context.Background(), cdto.NewVideoTask(source, output, tool))

	assert.False(t, outcome.Success)
	assert.True(t, strings.HasPrefix(outcome.Message, source+": "), outcome.Message)
	assert.Contains(t, outcome.Message, "exit code 3")
	assert.NoFileExists(t, filepath.Join(output, "clip.mp4"))
	assert.Empty(t, leftovers(t, output))
}

func TestConvertVideo_PartialOutputIsRemoved(t *testing.T) {
	tool := writeTool(t, `for last in "$@"; do :; done
printf 'half' > "$last"
exit 1
`)
	transcoder := newTestTranscoder(t)

	output := t.TempDir()
	source := filepath.Join(t.TempDir(), "clip.mov")
	require.NoError(t, os.WriteFile(source, []byte("mov"), 0o644))

	outcome := transcoder.ConvertVideo(context.Background(), cdto.NewVideoTask(source, output, tool))

	assert.False(t, outcome.Success)
	assert.NoFileExists(t, filepath.Join(output, "clip.mp4"))
	assert.Empty(t, leftovers(t, output))
}

func TestConvertVideo_NoOutputProduced(t *testing.T) {
	tool := writeTool(t, "exit 0\n")
	transcoder := newTestTranscoder(t)

	source := filepath.Join(t.TempDir(), "clip.mov")
	require.NoError(t, os.WriteFile(source, []byte("mov"), 0o644))

	outcome := transcoder.ConvertVideo(context.Background(), cdto.NewVideoTask(source, t.TempDir(), tool))

	assert.False(t, outcome.Success)
	assert.Contains(t, outcome.Message, ErrTranscodedFileNotFound.Error())
}

func TestConvertVideo_ToolMissing(t *testing.T) {
	transcoder := newTestTranscoder(t)

	source := filepath.Join(t.TempDir(), "clip.mov")
	require.NoError(t, os.WriteFile(source, []byte("mov"), 0o644))

	for _, tool := range []string{"", filepath.Join(t.TempDir(), "ffmpeg")} {
		outcome := transcoder.ConvertVideo(context.Background(), cdto.NewVideoTask(source, t.TempDir(), tool))

		assert.False(t, outcome.Success)
		assert.Contains(t, outcome.Message, source)
		assert.Contains(t, outcome.Message, ErrToolNotFound.Error())
	}
}

func TestConvert_DispatchesByKind(t *testing.T) {
	transcoder := newTestTranscoder(t)
	transcoder.decodeImage = png.Decode

	source := filepath.Join(t.TempDir(), "a.heic")
	writePNG(t, source)

	outcome := transcoder.Convert(context.Background(), cdto.NewImageTask(source, t.TempDir(), 95))
	assert.True(t, outcome.Success, outcome.Message)

	ignored := &cdto.Task{Kind: cdto.KindIgnored, SourcePath: source, DestinationDir: t.TempDir()}
	outcome = transcoder.Convert(context.Background(), ignored)
	assert.False(t, outcome.Success)
	assert.Contains(t, outcome.Message, ErrUnsupportedKind.Error())
}

func TestConvert_RecoversFromPanic(t *testing.T) {
	transcoder := newTestTranscoder(t)
	transcoder.decodeImage = func(io.Reader) (image.Image, error) {
		panic("decoder exploded")
	}

	source := filepath.Join(t.TempDir(), "a.heic")
	writePNG(t, source)

	outcome := transcoder.Convert(context.Background(), cdto.NewImageTask(source, t.TempDir(), 95))

	assert.False(t, outcome.Success)
	assert.Contains(t, outcome.Message, source)
	assert.Contains(t, outcome.Message, ErrUnexpectedPanic.Error())
	assert.Contains(t, outcome.Message, "decoder exploded")
}

func TestCapabilities(t *testing.T) {
	tool := writeTool(t, "exit 0\n")

	caps := newTestTranscoder(t, "-ffmpeg", tool).Capabilities()
	assert.True(t, caps.VideoAvailable())
	assert.Equal(t, tool, caps.FFmpegPath)

	caps = newTestTranscoder(t, "-ffmpeg", filepath.Join(t.TempDir(), "missing")).Capabilities()
	assert.False(t, caps.VideoAvailable())
	assert.Empty(t, caps.FFmpegPath)
}
