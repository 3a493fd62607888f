package core

import (
	"fmt"
	"go/token"
	"os"

	"github.com/goccy/go-yaml"
)

// The YAML schema is the declaration-free way to define unions, for
// projects that want the generated type without a Go definition file:
//
//	package: wire
//	unions:
//	  - name: Frame
//	    variants:
//	      - name: Data
//	      - name: Close
//	        label: close
//	      - name: Unknown
//	        payload: string
//
// payload may only be "string" and marks the catch-all variant.
type schemaFile struct {
	Package string        `yaml:"package"`
	Unions  []schemaUnion `yaml:"unions"`
}

type schemaUnion struct {
	Name     string          `yaml:"name"`
	Variants []schemaVariant `yaml:"variants"`
}

type schemaVariant struct {
	Name string `yaml:"name"`
	// Label is a pointer so an explicitly empty label survives
	// loading; nil means "derive from Name".
	Label   *string `yaml:"label"`
	Payload string  `yaml:"payload"`
}

// LoadSchema reads a YAML union schema and classifies it under the
// same rules as Go source declarations.
func LoadSchema(path string) (pkg string, unions []Union, err error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", nil, err
	}

	var sf schemaFile
	if err := yaml.Unmarshal(raw, &sf); err != nil {
		return "", nil, fmt.Errorf("%s: %w", path, err)
	}
	if sf.Package == "" {
		return "", nil, fmt.Errorf("%s: schema must name a package", path)
	}
	if len(sf.Unions) == 0 {
		return "", nil, fmt.Errorf("%s: schema declares no unions", path)
	}

	pos := token.Position{Filename: path}
	for _, su := range sf.Unions {
		u, err := classifySchemaUnion(pos, su)
		if err != nil {
			return "", nil, err
		}
		unions = append(unions, u)
	}
	return sf.Package, unions, nil
}

func classifySchemaUnion(pos token.Position, su schemaUnion) (Union, error) {
	if su.Name == "" {
		return Union{}, fmt.Errorf("%s: every union must be named", pos.Filename)
	}
	u := Union{Name: su.Name, Pos: pos}

	seen := make(map[string]struct{})
	for _, sv := range su.Variants {
		if sv.Name == "" {
			return Union{}, fmt.Errorf("%s: %s: every variant must be named", pos.Filename, u.Name)
		}

		v := Variant{Name: sv.Name, Pos: pos}
		switch sv.Payload {
		case "":
		case "string":
			v.CatchAll = true
		default:
			return Union{}, fmt.Errorf("%s: %s.%s: only a struct{} variant or a single string payload is supported (got payload %q)",
				pos.Filename, u.Name, v.Name, sv.Payload)
		}
		if sv.Label != nil {
			v.Label = *sv.Label
		} else {
			v.Label = sv.Name
		}

		if v.CatchAll {
			if prev := u.CatchAll(); prev != nil {
				return Union{}, fmt.Errorf("%s: %s: only a single catch-all variant is supported (%s is already the catch-all)",
					pos.Filename, u.Name, prev.Name)
			}
		} else if _, dup := seen[v.Label]; dup {
			return Union{}, fmt.Errorf("%s: %s: duplicate label %q", pos.Filename, u.Name, v.Label)
		} else {
			seen[v.Label] = struct{}{}
		}

		u.Variants = append(u.Variants, v)
	}

	if len(u.Variants) == 0 {
		return Union{}, fmt.Errorf("%s: %s: union declares no variants", pos.Filename, u.Name)
	}
	return u, nil
}
