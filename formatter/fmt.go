package formatter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"

	tt "github.com/gnoswap-labs/tour/internal/types"
)

// output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var ErrUnknownFormat = errors.New("unknown output format")

// Render writes results to w in the given format. The json and yaml formats
// group results by module, keeping the order the modules were run in.
func Render(w io.Writer, results []tt.Result, format string) error {
	switch format {
	case "", FormatText:
		_, err := io.WriteString(w, GenerateFormattedResult(results))
		return err
	case FormatJSON:
		d, err := json.MarshalIndent(groupByModule(results), "", "  ")
		if err != nil {
			return fmt.Errorf("error marshalling results to JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(d))
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(groupByModule(results)); err != nil {
			return fmt.Errorf("error marshalling results to YAML: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func groupByModule(results []tt.Result) *orderedmap.OrderedMap[string, []tt.Result] {
	byModule := orderedmap.New[string, []tt.Result]()
	for _, r := range results {
		prev, _ := byModule.Get(r.Module)
		byModule.Set(r.Module, append(prev, r))
	}
	return byModule
}
