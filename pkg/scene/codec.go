package scene

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-drift/flowlayout/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Format is a scene document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported scene extension %q (use .yaml, .yml or .toml)", filepath.Ext(path))
	}
}

// Load reads, decodes and validates the scene at path.
func Load(path string) (*Scene, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, errors.WithPath("scene.Load", errors.KindConfig, path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithPath("scene.Load", errors.KindConfig, path, err)
	}
	s, err := Parse(data, format)
	if err != nil {
		var fe *errors.FlowError
		if stderrors.As(err, &fe) {
			fe.Path = path
			return nil, fe
		}
		return nil, errors.WithPath("scene.Load", errors.KindParsing, path, err)
	}
	return s, nil
}

// Parse decodes and validates a scene document. Unknown keys are rejected.
func Parse(data []byte, format Format) (*Scene, error) {
	var s Scene
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil && err != io.EOF {
			return nil, errors.New("scene.Parse", errors.KindParsing,
				&errors.ParseError{Format: string(format), Line: yamlLine(err), Err: err})
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &s)
		if err != nil {
			line := 0
			var perr toml.ParseError
			if stderrors.As(err, &perr) {
				line = perr.Position.Line
			}
			return nil, errors.New("scene.Parse", errors.KindParsing,
				&errors.ParseError{Format: string(format), Line: line, Err: err})
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, errors.New("scene.Parse", errors.KindParsing,
				&errors.ParseError{Format: string(format), Err: fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))})
		}
	default:
		return nil, errors.New("scene.Parse", errors.KindParsing, fmt.Errorf("unknown format %q", format))
	}

	if err := s.Validate(); err != nil {
		return nil, errors.New("scene.Parse", errors.KindValidation, err)
	}
	return &s, nil
}

var yamlLineRe = regexp.MustCompile(`line (\d+)`)

// yamlLine extracts the first line number from a yaml.v3 error message.
func yamlLine(err error) int {
	m := yamlLineRe.FindStringSubmatch(err.Error())
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}

// Encode writes s in the given format.
func Encode(w io.Writer, s *Scene, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return errors.New("scene.Encode", errors.KindRender, err)
		}
		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(s); err != nil {
			return errors.New("scene.Encode", errors.KindRender, err)
		}
		return nil
	default:
		return errors.New("scene.Encode", errors.KindRender, fmt.Errorf("unknown format %q", format))
	}
}
