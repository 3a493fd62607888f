package core

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"reflect"
	"strings"
)

// directive marks a struct type declaration as a union definition.
// It is written as a comment directive, //strenum:union, in the
// declaration's doc comment.
const directive = "strenum:union"

// tagKey is the struct tag supplying a variant's explicit label.
const tagKey = "strenum"

// Variant is one classified case of a union declaration.
type Variant struct {
	// Name is the variant's identifier, used for the generated symbols.
	Name string
	// Label is the string the variant converts to and from. It is the
	// strenum tag value verbatim when present, else the identifier.
	Label string
	// CatchAll is true for the single variant with a string payload.
	CatchAll bool
	// Pos locates the variant in its definition file.
	Pos token.Position
}

// Union is a classified //strenum:union declaration. Variants keep
// their declaration order; that order becomes the case order of the
// generated switches.
type Union struct {
	Name     string
	Variants []Variant
	Pos      token.Position
}

// CatchAll returns the union's catch-all variant, or nil when the
// union parses fallibly.
func (u *Union) CatchAll() *Variant {
	for i := range u.Variants {
		if u.Variants[i].CatchAll {
			return &u.Variants[i]
		}
	}
	return nil
}

// Classify walks the declarations of a parsed file and returns the
// unions marked with a //strenum:union directive, in declaration
// order. The first malformed declaration aborts the whole file; no
// partial result is returned.
func Classify(fset *token.FileSet, file *ast.File) ([]Union, error) {
	var unions []Union
	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, spec := range gd.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			// For an unparenthesized declaration the doc comment sits
			// on the GenDecl; inside a type (...) group it sits on the
			// TypeSpec.
			if !hasDirective(ts.Doc) && !(len(gd.Specs) == 1 && hasDirective(gd.Doc)) {
				continue
			}
			u, err := classifyUnion(fset, ts)
			if err != nil {
				return nil, err
			}
			unions = append(unions, u)
		}
	}
	return unions, nil
}

func hasDirective(doc *ast.CommentGroup) bool {
	if doc == nil {
		return false
	}
	for _, c := range doc.List {
		if c.Text == "//"+directive || strings.HasPrefix(c.Text, "//"+directive+" ") {
			return true
		}
	}
	return false
}

// classifyUnion validates one marked declaration and resolves each
// field into a Variant. Fields of type struct{} are unit variants; a
// single string field is the catch-all; anything else is an error.
func classifyUnion(fset *token.FileSet, ts *ast.TypeSpec) (Union, error) {
	u := Union{Name: ts.Name.Name, Pos: fset.Position(ts.Pos())}

	st, ok := ts.Type.(*ast.StructType)
	if !ok {
		return Union{}, fmt.Errorf("%s: %s: strenum unions must be declared as struct types", u.Pos, u.Name)
	}

	// Resolved labels of non-catch-all variants, for duplicate
	// detection. The catch-all's label never appears as a match case,
	// so it does not participate.
	seen := make(map[string]token.Position)

	for _, field := range st.Fields.List {
		if len(field.Names) == 0 {
			pos := fset.Position(field.Pos())
			return Union{}, fmt.Errorf("%s: %s: embedded fields cannot be union variants", pos, u.Name)
		}

		catchAll, err := payloadShape(field.Type)
		if err != nil {
			pos := fset.Position(field.Pos())
			return Union{}, fmt.Errorf("%s: %s.%s: %w", pos, u.Name, field.Names[0].Name, err)
		}
		label, hasLabel := labelTag(field.Tag)

		for _, name := range field.Names {
			v := Variant{
				Name:     name.Name,
				CatchAll: catchAll,
				Pos:      fset.Position(name.Pos()),
			}
			if hasLabel {
				v.Label = label
			} else {
				v.Label = name.Name
			}

			if catchAll {
				if prev := u.CatchAll(); prev != nil {
					return Union{}, fmt.Errorf("%s: %s: only a single catch-all variant is supported (%s is already the catch-all)",
						v.Pos, u.Name, prev.Name)
				}
			} else if prev, dup := seen[v.Label]; dup {
				return Union{}, fmt.Errorf("%s: %s: duplicate label %q (first declared at %s)", v.Pos, u.Name, v.Label, prev)
			} else {
				seen[v.Label] = v.Pos
			}

			u.Variants = append(u.Variants, v)
		}
	}

	if len(u.Variants) == 0 {
		return Union{}, fmt.Errorf("%s: %s: union declares no variants", u.Pos, u.Name)
	}
	return u, nil
}

// payloadShape maps a variant field type onto the supported payload
// shapes: struct{} is a unit variant, string is the catch-all payload.
func payloadShape(expr ast.Expr) (catchAll bool, err error) {
	switch t := expr.(type) {
	case *ast.StructType:
		if t.Fields == nil || len(t.Fields.List) == 0 {
			return false, nil
		}
	case *ast.Ident:
		if t.Name == "string" {
			return true, nil
		}
	}
	return false, errors.New("only a struct{} variant or a single string payload is supported")
}

// labelTag extracts the strenum struct tag. The value is used
// verbatim: no option splitting, no escaping, no case transformation.
// An explicitly empty label is legal and distinct from no tag.
func labelTag(tag *ast.BasicLit) (string, bool) {
	if tag == nil {
		return "", false
	}
	raw := tag.Value
	if len(raw) >= 2 && raw[0] == '`' && raw[len(raw)-1] == '`' {
		raw = raw[1 : len(raw)-1]
	}
	return reflect.StructTag(raw).Lookup(tagKey)
}
