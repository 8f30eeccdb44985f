//go:build ignore
// +build ignore

package main

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"text/template"
)

const (
	wireImport   = "github.com/gstoney/mcwire/wire"
	packetImport = "github.com/gstoney/mcwire/packet"
)

// Field represents a single field in a packet struct
type Field struct {
	Name    string // The Struct field name (e.g., "ServerPort")
	Kind    string // Shown by Protocol.Describe (e.g., "CountedArray<UnsignedByte, VarInt>")
	WriteFn string // Statement writing p.Name to w
	ReadFn  string // Statement reading p.Name from r
}

// GeneratedStruct represents a struct found in the source code marked for generation
type GeneratedStruct struct {
	Name      string
	State     string
	Direction string
	PacketID  string
	Fields    []Field
}

// codecFuncs returns the package qualified Write and Read function names for a
// field tag like "VarInt" (package wire) or "game.Slot".
func codecFuncs(name string) (write, read string) {
	pkg, typ := "wire", name
	if i := strings.LastIndex(name, "."); i >= 0 {
		pkg, typ = name[:i], name[i+1:]
	}
	return pkg + ".Write" + typ, pkg + ".Read" + typ
}

func kindName(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}
	return name
}

func parseField(name string, typ ast.Expr, tag reflect.StructTag) (Field, error) {
	fieldType := tag.Get("field")
	target := "p." + name

	// Element codec for Optional and CountedArray: either a named codec or
	// local write/read functions.
	innerWrite, innerRead := tag.Get("write"), tag.Get("read")
	innerKind := tag.Get("inner")
	if inner := tag.Get("inner"); inner != "" {
		innerWrite, innerRead = codecFuncs(inner)
		innerKind = kindName(inner)
	}

	f := Field{Name: name, Kind: tag.Get("kind")}
	switch fieldType {
	case "Value":
		f.WriteFn = fmt.Sprintf("err = %s.Serialize(w)", target)
		f.ReadFn = fmt.Sprintf("err = %s.Deserialize(r)", target)
		if f.Kind == "" {
			f.Kind = kindName(types.ExprString(typ))
		}
	case "Optional":
		if innerWrite == "" || innerRead == "" {
			return f, fmt.Errorf("%s: Optional needs inner or write/read", name)
		}
		f.WriteFn = fmt.Sprintf("err = wire.WriteOptional(w, %s, %s)", target, innerWrite)
		f.ReadFn = fmt.Sprintf("%s, err = wire.ReadOptional(r, %s)", target, innerRead)
		if f.Kind == "" {
			f.Kind = "Optional<" + innerKind + ">"
		}
	case "CountedArray":
		count := tag.Get("count")
		if count == "" {
			count = "VarInt"
		}
		if innerWrite == "" || innerRead == "" {
			return f, fmt.Errorf("%s: CountedArray needs inner or write/read", name)
		}
		counter := "wire." + count + "Counter"
		f.WriteFn = fmt.Sprintf("err = wire.WriteCountedArray(w, %s, %s, %s)", target, counter, innerWrite)
		f.ReadFn = fmt.Sprintf("%s, err = wire.ReadCountedArray(r, %s, %s)", target, counter, innerRead)
		if f.Kind == "" {
			f.Kind = "CountedArray<" + innerKind + ", " + count + ">"
		}
	default:
		write, read := codecFuncs(fieldType)
		if w := tag.Get("write"); w != "" {
			write, read = w, tag.Get("read")
		}
		f.WriteFn = fmt.Sprintf("err = %s(w, %s)", write, target)
		f.ReadFn = fmt.Sprintf("%s, err = %s(r)", target, read)
		if f.Kind == "" {
			f.Kind = kindName(fieldType)
		}
	}
	return f, nil
}

// receiverName returns the type name of a method receiver.
func receiverName(fn *ast.FuncDecl) string {
	if fn.Recv == nil || len(fn.Recv.List) == 0 {
		return ""
	}

	recvType := fn.Recv.List[0].Type
	if star, ok := recvType.(*ast.StarExpr); ok {
		recvType = star.X
	}
	if ident, ok := recvType.(*ast.Ident); ok {
		return ident.Name
	}
	return ""
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run gen_packet_codec.go -- path/to/dir")
		os.Exit(1)
	}

	targetDir := os.Args[len(os.Args)-1] // Take the last argument as the directory
	fset := token.NewFileSet()
	var structs []GeneratedStruct
	var pkgName string
	imports := map[string]string{}
	usedImports := map[string]bool{"io": true, wireImport: true, packetImport: true}

	filePaths, _ := filepath.Glob(filepath.Join(targetDir, "*.go"))

	for _, filePath := range filePaths {
		// Skip generated files and tests
		base := filepath.Base(filePath)
		if strings.HasPrefix(base, "zz_generated") || strings.HasSuffix(base, "_test.go") {
			continue
		}

		node, err := parser.ParseFile(fset, filePath, nil, parser.ParseComments)
		if err != nil {
			panic(err)
		}

		if pkgName == "" {
			pkgName = node.Name.Name
		}

		for _, imp := range node.Imports {
			path := strings.Trim(imp.Path.Value, `"`)
			name := filepath.Base(path)
			if imp.Name != nil {
				name = imp.Name.Name
			}
			imports[name] = path
		}

		// Pre-scan for ID() methods to map StructName -> ID
		structIDs := make(map[string]string)
		for _, decl := range node.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			// Look for func (Receiver) ID() int32 { return X }
			if !ok || fn.Name.Name != "ID" || fn.Body == nil {
				continue
			}

			recvName := receiverName(fn)
			if recvName == "" {
				continue
			}

			for _, stmt := range fn.Body.List {
				if ret, ok := stmt.(*ast.ReturnStmt); ok && len(ret.Results) > 0 {
					if lit, ok := ret.Results[0].(*ast.BasicLit); ok {
						structIDs[recvName] = lit.Value
					}
				}
			}
		}

		// Walk through top-level declarations
		for _, decl := range node.Decls {
			gen, ok := decl.(*ast.GenDecl)

			// filter for only type declarations with comments
			if !ok || gen.Tok != token.TYPE || gen.Doc == nil {
				continue
			}

			// @gen:<State>,<Direction>
			var state, direction string
			for _, comment := range gen.Doc.List {
				_, opts, found := strings.Cut(comment.Text, "@gen:")
				if !found {
					continue
				}
				parts := strings.Split(strings.TrimSpace(opts), ",")
				if len(parts) != 2 {
					panic(fmt.Sprintf("%s: malformed marker %q", base, comment.Text))
				}
				state, direction = strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
				break
			}

			if state == "" {
				continue
			}

			for _, spec := range gen.Specs {
				tspec, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}

				structType, ok := tspec.Type.(*ast.StructType)
				if !ok {
					continue
				}

				id, ok := structIDs[tspec.Name.Name]
				if !ok {
					panic(fmt.Sprintf("%s: %s has no ID() method returning a literal", base, tspec.Name.Name))
				}

				var fields []Field
				for _, field := range structType.Fields.List {
					rawTag := ""
					if field.Tag != nil {
						rawTag = strings.Trim(field.Tag.Value, "`")
					}
					parsedTag := reflect.StructTag(rawTag)

					if parsedTag.Get("field") == "" {
						continue // Skip fields without the "field" tag
					}

					for _, name := range field.Names {
						f, err := parseField(name.Name, field.Type, parsedTag)
						if err != nil {
							panic(fmt.Sprintf("%s: %s: %v", base, tspec.Name.Name, err))
						}
						fields = append(fields, f)

						for _, fn := range []string{f.WriteFn, f.ReadFn} {
							for alias, path := range imports {
								if strings.Contains(fn, alias+".") {
									usedImports[path] = true
								}
							}
						}
					}
				}

				structs = append(structs, GeneratedStruct{
					Name:      tspec.Name.Name,
					State:     state,
					Direction: direction,
					PacketID:  id,
					Fields:    fields,
				})
			}
		}
	}

	var importList []string
	for path := range usedImports {
		importList = append(importList, path)
	}
	sort.Strings(importList)

	const tmpl = `// Code generated by gen_packet_codec.go; DO NOT EDIT.

package {{.PkgName}}

import (
{{- range .Imports}}
	"{{.}}"
{{- end}}
)

// Packet is one of the packets of this protocol version.
type Packet interface {
	packet.Body
	isPacket()
}

var registrations = []packet.Registration{
{{- range .Structs}}
	{
		Name:     "{{.Name}}",
		Identity: {{.Name}}{}.Identity(),
		Body:     "{{.Name}}",
		Fields: []packet.Field{
		{{- range .Fields}}
			{Name: "{{.Name}}", Kind: "{{.Kind}}"},
		{{- end}}
		},
		New: func() packet.Body { return &{{.Name}}{} },
	},
{{- end}}
}

// Protocol is the packet table of this protocol version.
var Protocol = packet.MustProtocol(ProtocolName, ProtocolVersion, registrations)
{{range .Structs}}
func (p {{.Name}}) Identity() packet.Identity {
	return packet.Identity{ID: p.ID(), State: packet.{{.State}}, Direction: packet.{{.Direction}}}
}

func ({{.Name}}) PacketName() string { return "{{.Name}}" }

func ({{.Name}}) isPacket() {}

func (p {{.Name}}) Serialize(w io.Writer) (err error) {
{{- range .Fields}}
	if {{.WriteFn}}; err != nil {
		return
	}
{{- end}}
	return
}

func (p *{{.Name}}) Deserialize(r *wire.Reader) (err error) {
{{- range .Fields}}
	if {{.ReadFn}}; err != nil {
		return
	}
{{- end}}
	return
}
{{end}}`

	t := template.Must(template.New("code").Parse(tmpl))
	data := struct {
		PkgName string
		Imports []string
		Structs []GeneratedStruct
	}{
		PkgName: pkgName,
		Imports: importList,
		Structs: structs,
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		panic(err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		panic(err)
	}

	// Output next to the source files
	outFile := filepath.Join(targetDir, "zz_generated_codec.go")
	if err := os.WriteFile(outFile, src, 0o644); err != nil {
		panic(err)
	}

	fmt.Printf("Generated %s for package %s\n", outFile, pkgName)
}
