package fileio

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/PaesslerAG/jsonpath"
	"github.com/spf13/afero"
)

type Address struct {
	Street string `json:"street" yaml:"street"`
	Zip    string `json:"zip" yaml:"zip"`
}

type Profile struct {
	Name    string   `json:"name" yaml:"name"`
	Age     int      `json:"age" yaml:"age"`
	City    string   `json:"city" yaml:"city"`
	Hobbies []string `json:"hobbies" yaml:"hobbies"`
	Address Address  `json:"address" yaml:"address"`
	Active  bool     `json:"active" yaml:"active"`
	Balance float64  `json:"balance" yaml:"balance"`
	Nothing *string  `json:"nothing" yaml:"nothing"`
}

// IntSet encodes as a sorted JSON array.
type IntSet map[int]struct{}

func (s IntSet) MarshalJSON() ([]byte, error) {
	keys := make([]int, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return json.Marshal(keys)
}

// Text encodes raw bytes as a JSON string rather than base64.
type Text []byte

func (t Text) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

type JSONResult struct {
	LoadedData       Profile `json:"loaded_data" yaml:"loaded_data"`
	JSONString       string  `json:"json_string" yaml:"json_string"`
	ParsedFromString string  `json:"parsed_from_string" yaml:"parsed_from_string"`
	CustomEncoded    string  `json:"custom_encoded" yaml:"custom_encoded"`
	ZipByPath        any     `json:"zip_by_path" yaml:"zip_by_path"`
	SecondHobby      any     `json:"second_hobby" yaml:"second_hobby"`
}

func JSON(fs afero.Fs) (JSONResult, error) {
	var r JSONResult

	data := Profile{
		Name:    "Alice",
		Age:     30,
		City:    "New York",
		Hobbies: []string{"reading", "coding", "hiking"},
		Address: Address{Street: "123 Main St", Zip: "10001"},
		Active:  true,
		Balance: 1234.56,
	}

	name, err := tempFile(fs, "tour-*.json")
	if err != nil {
		return r, err
	}
	defer fs.Remove(name)

	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return r, err
	}
	if err := afero.WriteFile(fs, name, encoded, 0o644); err != nil {
		return r, err
	}

	raw, err := afero.ReadFile(fs, name)
	if err != nil {
		return r, err
	}
	if err := json.Unmarshal(raw, &r.LoadedData); err != nil {
		return r, fmt.Errorf("decode %s: %w", name, err)
	}

	s := string(encoded)
	r.JSONString = s[:min(100, len(s))] + "..."

	var generic map[string]any
	if err := json.Unmarshal(encoded, &generic); err != nil {
		return r, err
	}
	r.ParsedFromString, _ = generic["name"].(string)

	if r.ZipByPath, err = jsonpath.Get("$.address.zip", generic); err != nil {
		return r, fmt.Errorf("jsonpath: %w", err)
	}
	if r.SecondHobby, err = jsonpath.Get("$.hobbies[1]", generic); err != nil {
		return r, fmt.Errorf("jsonpath: %w", err)
	}

	custom, err := json.Marshal(struct {
		Items IntSet `json:"items"`
		Data  Text   `json:"data"`
	}{
		Items: IntSet{3: {}, 1: {}, 2: {}},
		Data:  Text("bytes"),
	})
	if err != nil {
		return r, err
	}
	r.CustomEncoded = string(custom)

	return r, nil
}
