package tts

import (
	"bytes"
	"encoding/binary"
	"strconv"
	"strings"
)

// audioParams describes raw PCM audio as reported by a TTS mime type such
// as "audio/L16;rate=24000".
type audioParams struct {
	BitsPerSample int
	Rate          int
}

// parseAudioMIME extracts PCM parameters from a mime type, defaulting to
// 16-bit 24kHz when parameters are absent or malformed.
func parseAudioMIME(mimeType string) audioParams {
	params := audioParams{BitsPerSample: 16, Rate: 24000}

	for _, part := range strings.Split(mimeType, ";") {
		part = strings.TrimSpace(part)
		lower := strings.ToLower(part)

		if strings.HasPrefix(lower, "rate=") {
			if rate, err := strconv.Atoi(part[len("rate="):]); err == nil {
				params.Rate = rate
			}
		} else if strings.HasPrefix(part, "audio/L") {
			if bits, err := strconv.Atoi(part[len("audio/L"):]); err == nil {
				params.BitsPerSample = bits
			}
		}
	}
	return params
}

// wrapWAV prefixes raw mono PCM data with a RIFF/WAVE header so ffmpeg can
// consume it.
func wrapWAV(data []byte, mimeType string) []byte {
	params := parseAudioMIME(mimeType)

	const numChannels = 1
	bytesPerSample := params.BitsPerSample / 8
	blockAlign := numChannels * bytesPerSample
	byteRate := params.Rate * blockAlign

	var buf bytes.Buffer
	buf.Grow(44 + len(data))

	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+len(data)))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16)) // fmt chunk size
	binary.Write(&buf, binary.LittleEndian, uint16(1))  // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(numChannels))
	binary.Write(&buf, binary.LittleEndian, uint32(params.Rate))
	binary.Write(&buf, binary.LittleEndian, uint32(byteRate))
	binary.Write(&buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(&buf, binary.LittleEndian, uint16(params.BitsPerSample))
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(len(data)))
	buf.Write(data)

	return buf.Bytes()
}

// extensionForMIME maps a response mime type to a file extension. An empty
// result means the payload is raw PCM and needs a WAV wrapper.
func extensionForMIME(mimeType string) string {
	base := strings.TrimSpace(strings.ToLower(strings.Split(mimeType, ";")[0]))
	switch base {
	case "audio/mpeg", "audio/mp3":
		return ".mp3"
	case "audio/wav", "audio/x-wav", "audio/wave":
		return ".wav"
	case "audio/ogg":
		return ".ogg"
	case "audio/flac":
		return ".flac"
	default:
		return ""
	}
}
