package engine

import (
	"io"
	"mime"
	"path"
	"strings"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/wav"
)

// DecodeFunc turns a network body into a streamer. The returned streamer
// owns rc.
type DecodeFunc func(rc io.ReadCloser) (beep.StreamCloser, beep.Format, error)

const (
	kindMP3  = "mp3"
	kindFLAC = "flac"
	kindWAV  = "wav"
	kindOgg  = "ogg"
)

var mediaTypes = map[string]string{
	"audio/mpeg":      kindMP3,
	"audio/mp3":       kindMP3,
	"audio/mpeg3":     kindMP3,
	"audio/x-mpeg":    kindMP3,
	"audio/flac":      kindFLAC,
	"audio/x-flac":    kindFLAC,
	"audio/wav":       kindWAV,
	"audio/wave":      kindWAV,
	"audio/x-wav":     kindWAV,
	"audio/ogg":       kindOgg,
	"audio/x-ogg":     kindOgg,
	"application/ogg": kindOgg,
	"audio/opus":      kindOgg,
	"audio/vorbis":    kindOgg,
}

var extensions = map[string]string{
	".mp3":  kindMP3,
	".flac": kindFLAC,
	".wav":  kindWAV,
	".ogg":  kindOgg,
	".oga":  kindOgg,
	".opus": kindOgg,
}

func defaultMediaTypes() map[string]string {
	types := make(map[string]string, len(mediaTypes))
	for k, v := range mediaTypes {
		types[k] = v
	}
	return types
}

func defaultDecoders() map[string]DecodeFunc {
	return map[string]DecodeFunc{
		kindMP3:  decodeLiveMP3,
		kindFLAC: decodeFLAC,
		kindWAV:  decodeWAV,
		kindOgg:  decodeOgg,
	}
}

// decoderKind picks a decoder from the Content-Type header, falling back to
// the URL's extension. Generic or missing types default to MP3, which is
// what most internet radio servers send.
func decoderKind(types map[string]string, contentType, rawURL string) (string, bool) {
	if contentType != "" {
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err == nil {
			if kind, ok := types[strings.ToLower(mediaType)]; ok {
				return kind, true
			}
			if !isGenericType(mediaType) {
				return mediaType, false
			}
		}
	}

	if kind, ok := extensions[strings.ToLower(path.Ext(stripQuery(rawURL)))]; ok {
		return kind, true
	}
	return kindMP3, true
}

func isGenericType(mediaType string) bool {
	switch strings.ToLower(mediaType) {
	case "application/octet-stream", "binary/octet-stream", "audio/unknown":
		return true
	}
	return false
}

func stripQuery(rawURL string) string {
	if i := strings.IndexAny(rawURL, "?#"); i >= 0 {
		return rawURL[:i]
	}
	return rawURL
}

func decodeFLAC(rc io.ReadCloser) (beep.StreamCloser, beep.Format, error) {
	s, format, err := flac.Decode(rc)
	if err != nil {
		return nil, beep.Format{}, err
	}
	return &bodyCloser{StreamCloser: s, body: rc}, format, nil
}

func decodeWAV(rc io.ReadCloser) (beep.StreamCloser, beep.Format, error) {
	s, format, err := wav.Decode(rc)
	if err != nil {
		return nil, beep.Format{}, err
	}
	return &bodyCloser{StreamCloser: s, body: rc}, format, nil
}

// bodyCloser closes the network body along with the decoder, whichever of
// them owns it.
type bodyCloser struct {
	beep.StreamCloser
	body io.Closer
}

func (b *bodyCloser) Close() error {
	err := b.StreamCloser.Close()
	_ = b.body.Close()
	return err
}
