package schema

import (
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/wippyai/mxe-call/computation"
	"github.com/wippyai/mxe-call/errors"
)

// Manifest is an argument list written down ahead of time, optionally
// naming the instruction it targets.
type Manifest struct {
	Name string
	Args []computation.Argument
}

// ParseManifest decodes an argument manifest: a sequence of single-key
// `Kind: value` maps, either bare or under an `args` key next to an
// optional instruction `name`:
//
//	name: add_together
//	args:
//	  - PlaintextU8: 5
//	  - EncryptedU8: 0x0101...
//	  - Account: "4Nd1m...:0:64"
func ParseManifest(data []byte) (*Manifest, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.ParseFailed("argument manifest", err)
	}

	m := &Manifest{}
	if len(doc.Content) == 0 {
		return m, nil
	}

	root := doc.Content[0]
	seq := root
	if root.Kind == yaml.MappingNode {
		seq = nil
		for i := 0; i+1 < len(root.Content); i += 2 {
			key, val := root.Content[i], root.Content[i+1]
			switch key.Value {
			case "name":
				m.Name = val.Value
			case "args":
				seq = val
			default:
				return nil, manifestErr(key, "unknown key %q", key.Value)
			}
		}
		if seq == nil {
			return m, nil
		}
	}
	if seq.Kind != yaml.SequenceNode {
		return nil, manifestErr(seq, "want a sequence of arguments")
	}

	m.Args = make([]computation.Argument, 0, len(seq.Content))
	for i, item := range seq.Content {
		if item.Kind != yaml.MappingNode || len(item.Content) != 2 {
			return nil, manifestErr(item, "argument %d: want a single `Kind: value` entry", i)
		}
		kindNode, valNode := item.Content[0], item.Content[1]

		kind, err := computation.ParseArgKind(kindNode.Value)
		if err != nil {
			return nil, manifestErr(kindNode, "argument %d: unknown kind %q", i, kindNode.Value)
		}
		arg, err := computation.ParseArgument(kind, valNode.Value)
		if err != nil {
			return nil, errors.New(errors.PhaseParse, errors.KindInvalidInput).
				Path("args", strconv.Itoa(i)).
				ArgType(kind.String()).
				Value(valNode.Value).
				Detail("line %d", valNode.Line).
				Cause(err).
				Build()
		}
		m.Args = append(m.Args, arg)
	}
	return m, nil
}

// ParseArguments is ParseManifest returning only the argument list.
func ParseArguments(data []byte) ([]computation.Argument, error) {
	m, err := ParseManifest(data)
	if err != nil {
		return nil, err
	}
	return m.Args, nil
}

func manifestErr(n *yaml.Node, format string, args ...any) *errors.Error {
	return errors.New(errors.PhaseParse, errors.KindInvalidData).
		Detail("line %d: "+format, append([]any{n.Line}, args...)...).
		Build()
}
