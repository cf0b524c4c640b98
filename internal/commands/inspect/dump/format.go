package dump

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/kr/pretty"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatJSON   Format = "json"
	FormatPretty Format = "pretty"
	FormatYAML   Format = "yaml"
)

func ParseFormat(value string) (Format, error) {
	switch format := Format(value); format {
	case FormatJSON, FormatPretty, FormatYAML:
		return format, nil

	default:
		return "", fmt.Errorf("unsupported format: %q", value)
	}
}

func Write(w io.Writer, format Format, value any) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")

		if err := encoder.Encode(value); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}

		return nil

	case FormatPretty:
		if _, err := pretty.Fprintf(w, "%# v\n", value); err != nil {
			return fmt.Errorf("write pretty: %w", err)
		}

		return nil

	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)

		if err := encoder.Encode(value); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		if err := encoder.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		return nil

	default:
		return fmt.Errorf("unsupported format: %q", format)
	}
}
