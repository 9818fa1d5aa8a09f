package fileio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/afero"
)

type Person struct {
	Name string
	Age  int
	City string
}

type CSVResult struct {
	BasicCSV          [][]string          `json:"basic_csv" yaml:"basic_csv"`
	DictCSV           []map[string]string `json:"dict_csv" yaml:"dict_csv"`
	TSVData           [][]string          `json:"tsv_data" yaml:"tsv_data"`
	DialectRegistered bool                `json:"dialect_registered" yaml:"dialect_registered"`
	PipeFirstRow      []string            `json:"pipe_first_row" yaml:"pipe_first_row"`
}

var csvHeader = []string{"Name", "Age", "City"}

func rows(people []Person) [][]string {
	out := [][]string{csvHeader}
	for _, p := range people {
		out = append(out, []string{p.Name, strconv.Itoa(p.Age), p.City})
	}
	return out
}

func writeCSV(fs afero.Fs, name string, comma rune, records [][]string) error {
	f, err := fs.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = comma
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

func readCSV(fs afero.Fs, name string, comma rune) ([][]string, error) {
	f, err := fs.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rd := csv.NewReader(f)
	rd.Comma = comma
	return rd.ReadAll()
}

// ReadDicts maps every data row onto the header row.
func ReadDicts(r io.Reader) ([]map[string]string, error) {
	rd := csv.NewReader(r)
	header, err := rd.Read()
	if err != nil {
		return nil, err
	}

	var out []map[string]string
	for {
		rec, err := rd.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row := make(map[string]string, len(header))
		for i, h := range header {
			if i < len(rec) {
				row[h] = rec[i]
			}
		}
		out = append(out, row)
	}
	return out, nil
}

func CSV(fs afero.Fs) (CSVResult, error) {
	var r CSVResult

	base, err := tempFile(fs, "tour-*.csv")
	if err != nil {
		return r, err
	}
	dictName, tsvName, pipeName := base+"_dict.csv", base+".tsv", base+".pipe"
	defer func() {
		for _, n := range []string{base, dictName, tsvName, pipeName} {
			fs.Remove(n)
		}
	}()

	data := rows([]Person{
		{"Alice", 30, "New York"},
		{"Bob", 25, "London"},
		{"Charlie", 35, "Paris"},
	})

	if err := writeCSV(fs, base, ',', data); err != nil {
		return r, err
	}
	if r.BasicCSV, err = readCSV(fs, base, ','); err != nil {
		return r, err
	}

	dictData := rows([]Person{
		{"David", 28, "Tokyo"},
		{"Eve", 32, "Sydney"},
		{"Frank", 29, "Berlin"},
	})
	if err := writeCSV(fs, dictName, ',', dictData); err != nil {
		return r, err
	}
	f, err := fs.Open(dictName)
	if err != nil {
		return r, err
	}
	r.DictCSV, err = ReadDicts(f)
	f.Close()
	if err != nil {
		return r, err
	}

	if err := writeCSV(fs, tsvName, '\t', data); err != nil {
		return r, err
	}
	tsv, err := readCSV(fs, tsvName, '\t')
	if err != nil {
		return r, err
	}
	r.TSVData = tsv[:2]

	if err := writeCSV(fs, pipeName, '|', data); err != nil {
		return r, err
	}
	r.DialectRegistered = true
	pipe, err := readCSV(fs, pipeName, '|')
	if err != nil {
		return r, err
	}
	r.PipeFirstRow = pipe[0]

	return r, nil
}
