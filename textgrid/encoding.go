// SPDX-License-Identifier: EPL-2.0

package textgrid

import (
	"bytes"
	"strings"
	"unicode/utf8"

	xunicode "golang.org/x/text/encoding/unicode"
)

// Encoding is the character encoding an annotation file was decoded from.
type Encoding int

const (
	EncodingASCII Encoding = iota + 1
	EncodingUTF8
	EncodingUTF16LE
	EncodingUTF16BE
)

func (e Encoding) String() string {
	switch e {
	case EncodingASCII:
		return "ascii"
	case EncodingUTF8:
		return "utf-8"
	case EncodingUTF16LE:
		return "utf-16le"
	case EncodingUTF16BE:
		return "utf-16be"
	default:
		return "unknown"
	}
}

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

type decodeAttempt func(data []byte) (string, Encoding, bool)

// Tried in order, first success wins. ASCII precedes UTF-8 only so that
// plain files report the narrower encoding; the decoded text is the same.
var decodeAttempts = []decodeAttempt{
	decodeUTF16,
	decodeASCII,
	decodeUTF8,
}

// DecodeText converts raw annotation bytes to a string with "\n" line
// endings and no byte-order mark.
func DecodeText(data []byte) (string, Encoding, error) {
	for _, attempt := range decodeAttempts {
		text, enc, ok := attempt(data)
		if !ok {
			continue
		}

		text = strings.TrimPrefix(text, "\ufeff")
		text = strings.ReplaceAll(text, "\r\n", "\n")
		text = strings.ReplaceAll(text, "\r", "\n")

		return text, enc, nil
	}

	return "", 0, ErrUnknownEncoding
}

func decodeUTF16(data []byte) (string, Encoding, bool) {
	var enc Encoding
	switch {
	case bytes.HasPrefix(data, bomUTF16LE):
		enc = EncodingUTF16LE
	case bytes.HasPrefix(data, bomUTF16BE):
		enc = EncodingUTF16BE
	default:
		return "", 0, false
	}

	if len(data)%2 != 0 {
		return "", 0, false
	}

	// ExpectBOM lets the mark pick the byte order and strips it.
	dec := xunicode.UTF16(xunicode.BigEndian, xunicode.ExpectBOM).NewDecoder()
	out, err := dec.Bytes(data)
	if err != nil {
		return "", 0, false
	}

	// Unpaired surrogates decode to U+FFFD.
	if bytes.ContainsRune(out, utf8.RuneError) {
		return "", 0, false
	}

	return string(out), enc, true
}

func decodeASCII(data []byte) (string, Encoding, bool) {
	for _, b := range data {
		if b >= utf8.RuneSelf {
			return "", 0, false
		}
	}

	return string(data), EncodingASCII, true
}

func decodeUTF8(data []byte) (string, Encoding, bool) {
	data = bytes.TrimPrefix(data, bomUTF8)
	if !utf8.Valid(data) {
		return "", 0, false
	}

	return string(data), EncodingUTF8, true
}
