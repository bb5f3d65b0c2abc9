// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"
)

// WAVBytes builds a canonical 44-byte-header RIFF/WAVE file. formatTag 1 is
// PCM, 3 is IEEE float. Samples are written little-endian at bitsPerSample
// (8, 16, 24 or 32); values are truncated to fit narrower depths.
func WAVBytes(formatTag uint16, sampleRate, channels, bitsPerSample int, samples []int16) []byte {
	buf := new(bytes.Buffer)

	bytesPerSample := bitsPerSample / 8
	dataSize := uint32(len(samples) * bytesPerSample)

	buf.WriteString("RIFF")
	_ = binary.Write(buf, binary.LittleEndian, 36+dataSize)
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	_ = binary.Write(buf, binary.LittleEndian, uint32(16))
	_ = binary.Write(buf, binary.LittleEndian, formatTag)
	_ = binary.Write(buf, binary.LittleEndian, uint16(channels))
	_ = binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	_ = binary.Write(buf, binary.LittleEndian, uint32(sampleRate*channels*bytesPerSample))
	_ = binary.Write(buf, binary.LittleEndian, uint16(channels*bytesPerSample))
	_ = binary.Write(buf, binary.LittleEndian, uint16(bitsPerSample))

	buf.WriteString("data")
	_ = binary.Write(buf, binary.LittleEndian, dataSize)

	for _, s := range samples {
		switch bitsPerSample {
		case 8:
			buf.WriteByte(byte(int(s)>>8 + 128))
		case 16:
			_ = binary.Write(buf, binary.LittleEndian, s)
		case 24:
			v := int32(s) << 8
			buf.Write([]byte{byte(v), byte(v >> 8), byte(v >> 16)})
		case 32:
			if formatTag == 3 {
				_ = binary.Write(buf, binary.LittleEndian, math.Float32bits(float32(s)/32768))
			} else {
				_ = binary.Write(buf, binary.LittleEndian, int32(s)<<16)
			}
		}
	}

	return buf.Bytes()
}

// PCM16 builds a 16-bit PCM WAV file.
func PCM16(sampleRate, channels int, samples []int16) []byte {
	return WAVBytes(1, sampleRate, channels, 16, samples)
}

// SinePCM16 returns frames samples of a sine tone at half scale.
func SinePCM16(sampleRate, frames int, frequency float64) []int16 {
	out := make([]int16, frames)
	for i := range out {
		t := float64(i) / float64(sampleRate)
		out[i] = int16(math.Round(16384 * math.Sin(2*math.Pi*frequency*t)))
	}
	return out
}

// AIFFBytes builds a minimal FORM/AIFF file with COMM and SSND chunks and
// big-endian samples at bitsPerSample (8 or 16).
func AIFFBytes(sampleRate, channels, bitsPerSample int, samples []int16) []byte {
	bytesPerSample := bitsPerSample / 8
	dataSize := uint32(len(samples) * bytesPerSample)

	body := new(bytes.Buffer)
	body.WriteString("AIFF")

	body.WriteString("COMM")
	_ = binary.Write(body, binary.BigEndian, uint32(18))
	_ = binary.Write(body, binary.BigEndian, uint16(channels))
	_ = binary.Write(body, binary.BigEndian, uint32(len(samples)/channels))
	_ = binary.Write(body, binary.BigEndian, uint16(bitsPerSample))
	body.Write(extended(sampleRate))

	body.WriteString("SSND")
	_ = binary.Write(body, binary.BigEndian, 8+dataSize)
	_ = binary.Write(body, binary.BigEndian, uint32(0)) // offset
	_ = binary.Write(body, binary.BigEndian, uint32(0)) // block size
	for _, s := range samples {
		switch bitsPerSample {
		case 8:
			body.WriteByte(byte(int8(s >> 8)))
		case 16:
			_ = binary.Write(body, binary.BigEndian, s)
		}
	}

	buf := new(bytes.Buffer)
	buf.WriteString("FORM")
	_ = binary.Write(buf, binary.BigEndian, uint32(body.Len()))
	buf.Write(body.Bytes())

	return buf.Bytes()
}

// extended encodes a positive integer as an 80-bit IEEE 754 extended float.
func extended(v int) []byte {
	out := make([]byte, 10)
	if v <= 0 {
		return out
	}

	exp := uint16(16383 + 63)
	mant := uint64(v)
	for mant&(1<<63) == 0 {
		mant <<= 1
		exp--
	}

	binary.BigEndian.PutUint16(out, exp)
	binary.BigEndian.PutUint64(out[2:], mant)

	return out
}

// WriteFile writes data to name inside dir and returns the full path.
func WriteFile(t testing.TB, dir, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing fixture %s: %v", path, err)
	}

	return path
}
