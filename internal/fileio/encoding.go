package fileio

import (
	"unicode/utf8"

	"github.com/spf13/afero"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

type EncodingResult struct {
	UTF8Content   string          `json:"utf8_content" yaml:"utf8_content"`
	Latin1Content string          `json:"latin1_content" yaml:"latin1_content"`
	Latin1Bytes   []byte          `json:"latin1_bytes" yaml:"latin1_bytes"`
	DecodedAs     map[string]bool `json:"decoded_as" yaml:"decoded_as"`
}

// decoders are tried in order; the first that accepts the input wins.
var decoders = []struct {
	name  string
	valid func([]byte) bool
}{
	{"utf-8", utf8.Valid},
	{"latin-1", func([]byte) bool { return true }},
	{"ascii", func(b []byte) bool {
		for _, c := range b {
			if c >= utf8.RuneSelf {
				return false
			}
		}
		return true
	}},
}

// DetectEncoding reports, for each candidate tried, whether raw decodes
// under it. Trying stops at the first success.
func DetectEncoding(raw []byte) map[string]bool {
	out := make(map[string]bool)
	for _, d := range decoders {
		ok := d.valid(raw)
		out[d.name] = ok
		if ok {
			break
		}
	}
	return out
}

func Encoding(fs afero.Fs) (EncodingResult, error) {
	var r EncodingResult

	name, err := tempFile(fs, "tour-enc-*.txt")
	if err != nil {
		return r, err
	}
	defer fs.Remove(name)

	if err := afero.WriteFile(fs, name, []byte("Hello, 世界! 🐍 Python"), 0o644); err != nil {
		return r, err
	}
	raw, err := afero.ReadFile(fs, name)
	if err != nil {
		return r, err
	}
	r.UTF8Content = string(raw)

	latin1 := name + ".latin1"
	defer fs.Remove(latin1)

	enc := encoding.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder())
	encoded, err := enc.String("Café")
	if err != nil {
		return r, err
	}
	if err := afero.WriteFile(fs, latin1, []byte(encoded), 0o644); err != nil {
		return r, err
	}
	stored, err := afero.ReadFile(fs, latin1)
	if err != nil {
		return r, err
	}
	r.Latin1Bytes = stored
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(stored)
	if err != nil {
		return r, err
	}
	r.Latin1Content = string(decoded)

	r.DecodedAs = DetectEncoding(raw)
	return r, nil
}
