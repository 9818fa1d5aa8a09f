package fileio

import (
	"encoding/gob"
	"fmt"

	"github.com/spf13/afero"
)

// Snapshot is the value round-tripped through gob.
type Snapshot struct {
	List  []int          `json:"list" yaml:"list"`
	Dict  map[string]int `json:"dict" yaml:"dict"`
	Tuple [3]int         `json:"tuple" yaml:"tuple"`
}

type BinaryResult struct {
	BinaryContent []byte   `json:"binary_content" yaml:"binary_content"`
	Decoded       string   `json:"decoded" yaml:"decoded"`
	PickledData   Snapshot `json:"pickled_data" yaml:"pickled_data"`
}

func Binary(fs afero.Fs) (BinaryResult, error) {
	var r BinaryResult

	name, err := tempFile(fs, "tour-*.bin")
	if err != nil {
		return r, err
	}
	defer fs.Remove(name)

	data := []byte{0x48, 0x65, 0x6C, 0x6C, 0x6F}
	data = append(data, '\n')
	data = append(data, []byte("World")...)
	if err := afero.WriteFile(fs, name, data, 0o644); err != nil {
		return r, err
	}

	if r.BinaryContent, err = afero.ReadFile(fs, name); err != nil {
		return r, err
	}
	r.Decoded = string(r.BinaryContent)

	snap := Snapshot{
		List:  []int{1, 2, 3},
		Dict:  map[string]int{"a": 1, "b": 2},
		Tuple: [3]int{4, 5, 6},
	}
	gobName := name + ".gob"
	defer fs.Remove(gobName)

	if err := writeGob(fs, gobName, snap); err != nil {
		return r, err
	}
	r.PickledData, err = readGob[Snapshot](fs, gobName)
	return r, err
}

func writeGob(fs afero.Fs, name string, v any) error {
	f, err := fs.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(v); err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	return nil
}

func readGob[T any](fs afero.Fs, name string) (T, error) {
	var v T
	f, err := fs.Open(name)
	if err != nil {
		return v, err
	}
	defer f.Close()

	if err := gob.NewDecoder(f).Decode(&v); err != nil {
		return v, fmt.Errorf("decode %s: %w", name, err)
	}
	return v, nil
}
