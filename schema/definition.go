package schema

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wippyai/mxe-call/computation"
	"github.com/wippyai/mxe-call/errors"
)

// FileExt is the extension of compiled interface files in a build directory.
const FileExt = ".idarc"

// Definition is the compiled interface of one encrypted instruction.
type Definition struct {
	Name       string
	Offset     uint32
	Parameters []computation.Parameter
	Outputs    []computation.Parameter
	CircuitLen uint32
}

// Slots returns the number of parameter slots arguments must fill.
func (d *Definition) Slots() int {
	return len(d.Parameters)
}

// Match runs the matcher against the definition's parameters.
func (d *Definition) Match(args []computation.Argument) error {
	return computation.Match(args, d.Parameters)
}

// Check is Match with a logged diagnostic on failure.
func (d *Definition) Check(args []computation.Argument) error {
	return computation.Check(args, d.Parameters)
}

// Path returns where the definition's interface file lives under buildDir.
func Path(buildDir, name string) string {
	return filepath.Join(buildDir, name+FileExt)
}

type definitionFile struct {
	Name       string   `yaml:"name"`
	Inputs     []string `yaml:"inputs"`
	Outputs    []string `yaml:"outputs"`
	CircuitLen uint32   `yaml:"circuit_len"`
}

// ParseDefinition decodes an interface file. JSON documents are accepted
// as well since they are valid YAML.
func ParseDefinition(data []byte) (*Definition, error) {
	var f definitionFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.ParseFailed("interface file", err)
	}
	if strings.TrimSpace(f.Name) == "" {
		return nil, errors.InvalidData(errors.PhaseParse, []string{"name"}, "missing instruction name")
	}

	inputs, err := parseParams("inputs", f.Inputs)
	if err != nil {
		return nil, err
	}
	outputs, err := parseParams("outputs", f.Outputs)
	if err != nil {
		return nil, err
	}

	return &Definition{
		Name:       f.Name,
		Offset:     Offset(f.Name),
		Parameters: inputs,
		Outputs:    outputs,
		CircuitLen: f.CircuitLen,
	}, nil
}

func parseParams(field string, names []string) ([]computation.Parameter, error) {
	params := make([]computation.Parameter, 0, len(names))
	for i, n := range names {
		p, err := computation.ParseParameter(n)
		if err != nil {
			return nil, errors.New(errors.PhaseParse, errors.KindInvalidData).
				Path(field, strconv.Itoa(i)).
				ParamType(n).
				Detail("unknown parameter kind").
				Cause(err).
				Build()
		}
		params = append(params, p)
	}
	return params, nil
}

// LoadDefinition reads and parses one interface file. The instruction name
// in the file must match the file's base name.
func LoadDefinition(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Load("read "+path, err)
	}

	def, err := ParseDefinition(data)
	if err != nil {
		return nil, err
	}

	stem := strings.TrimSuffix(filepath.Base(path), FileExt)
	if def.Name != stem {
		return nil, errors.New(errors.PhaseSchema, errors.KindMismatch).
			Path(path).
			Value(def.Name).
			Detail("interface file declares %q, want %q", def.Name, stem).
			Build()
	}
	return def, nil
}

// MarshalYAML writes the definition in interface-file form.
func (d *Definition) MarshalYAML() (any, error) {
	f := definitionFile{
		Name:       d.Name,
		Inputs:     paramNames(d.Parameters),
		Outputs:    paramNames(d.Outputs),
		CircuitLen: d.CircuitLen,
	}
	return f, nil
}

func paramNames(params []computation.Parameter) []string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.String()
	}
	return names
}
