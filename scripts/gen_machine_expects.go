// gen_machine_expects writes a free function for every machineTestCase builder
// method that takes arguments, returning a deferred call to that method for
// use with machineTestCase.apply.
//
// Usage:
//
//	go run scripts/gen_machine_expects.go -- SRC DST [SRC DST ...]
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/printer"
	"go/token"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"
)

const (
	receiverType = "machineTestCase"
	wrapperInfix = "Machine"
)

var builderPrefixes = []string{"expect", "with"}

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 || len(args)%2 != 0 {
		log.Fatalln("usage: gen_machine_expects SRC DST [SRC DST ...]")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)
	for i := 0; i < len(args); i += 2 {
		src, dst := args[i], args[i+1]
		eg.Go(func() error {
			return generate(ctx, src, dst, args)
		})
	}
	if err := eg.Wait(); err != nil {
		log.Fatalln(err)
	}
}

func generate(ctx context.Context, src, dst string, args []string) error {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, src, nil, 0)
	if err != nil {
		return err
	}

	var builders []builder
	for _, decl := range file.Decls {
		if b, ok := builderMethod(decl); ok {
			builders = append(builders, b)
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "package %s\n\n", file.Name.Name)
	fmt.Fprintf(&buf, "// @generated from %s\n\n", src)
	fmt.Fprintf(&buf, "//go:generate go run scripts/gen_machine_expects.go -- %s\n\n", strings.Join(args, " "))
	writeImports(&buf, file, builders)
	for _, b := range builders {
		b.writeWrapper(&buf, fset)
	}

	out, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("%v: cannot format generated code: %w", dst, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.WriteFile(dst, out, 0o644)
}

// builder is a machineTestCase method like
//
//	func (mt machineTestCase) expectTape(addr int, values ...byte) machineTestCase
type builder struct {
	name   string
	params *ast.FieldList
}

func builderMethod(decl ast.Decl) (builder, bool) {
	fn, ok := decl.(*ast.FuncDecl)
	if !ok || fn.Recv == nil || len(fn.Recv.List) != 1 {
		return builder{}, false
	}
	if id, ok := fn.Recv.List[0].Type.(*ast.Ident); !ok || id.Name != receiverType {
		return builder{}, false
	}
	if fn.Type.Params.NumFields() == 0 {
		return builder{}, false
	}
	b := builder{fn.Name.Name, fn.Type.Params}
	return b, b.wrapperName() != ""
}

func (b builder) wrapperName() string {
	for _, prefix := range builderPrefixes {
		if rest := strings.TrimPrefix(b.name, prefix); rest != b.name && rest != "" {
			return prefix + wrapperInfix + rest
		}
	}
	return ""
}

func (b builder) writeWrapper(buf *bytes.Buffer, fset *token.FileSet) {
	var params, args []string
	for i, field := range b.params.List {
		var names []string
		for _, id := range field.Names {
			names = append(names, id.Name)
		}
		if len(names) == 0 {
			names = append(names, fmt.Sprintf("arg%d", i))
		}
		params = append(params, strings.Join(names, ", ")+" "+exprString(fset, field.Type))

		_, variadic := field.Type.(*ast.Ellipsis)
		for _, name := range names {
			if variadic {
				name += "..."
			}
			args = append(args, name)
		}
	}

	fmt.Fprintf(buf, "func %s(%s) func(%s) %s {\n",
		b.wrapperName(), strings.Join(params, ", "), receiverType, receiverType)
	fmt.Fprintf(buf, "\treturn func(mt %s) %s {\n", receiverType, receiverType)
	fmt.Fprintf(buf, "\t\treturn mt.%s(%s)\n", b.name, strings.Join(args, ", "))
	buf.WriteString("\t}\n}\n\n")
}

// writeImports carries over those source imports that wrapper parameter
// types refer to, e.g. time for withTimeout.
func writeImports(buf *bytes.Buffer, file *ast.File, builders []builder) {
	used := make(map[string]bool)
	for _, b := range builders {
		ast.Inspect(b.params, func(n ast.Node) bool {
			if sel, ok := n.(*ast.SelectorExpr); ok {
				if id, ok := sel.X.(*ast.Ident); ok {
					used[id.Name] = true
				}
			}
			return true
		})
	}

	var specs []string
	for _, imp := range file.Imports {
		path, err := strconv.Unquote(imp.Path.Value)
		if err != nil {
			continue
		}
		name := path[strings.LastIndex(path, "/")+1:]
		spec := imp.Path.Value
		if imp.Name != nil {
			name = imp.Name.Name
			spec = name + " " + spec
		}
		if used[name] {
			specs = append(specs, spec)
		}
	}
	sort.Strings(specs)

	switch len(specs) {
	case 0:
	case 1:
		fmt.Fprintf(buf, "import %s\n\n", specs[0])
	default:
		buf.WriteString("import (\n")
		for _, spec := range specs {
			fmt.Fprintf(buf, "\t%s\n", spec)
		}
		buf.WriteString(")\n\n")
	}
}

func exprString(fset *token.FileSet, expr ast.Expr) string {
	var sb strings.Builder
	if err := printer.Fprint(&sb, fset, expr); err != nil {
		log.Panicf("cannot print %T: %v", expr, err)
	}
	return sb.String()
}
