package clientgen

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/99designs/gqlgen/codegen/templates"
	. "github.com/dave/jennifer/jen"

	"github.com/infiotinc/gqlproxy/config"
)

const clientPkg = "github.com/infiotinc/gqlproxy/client"

type Generator struct {
	cfg  *config.Config
	file *File
}

// NewGenerator checks that cfg has a generate section with a package
func NewGenerator(cfg *config.Config) (*Generator, error) {
	if cfg.Generate == nil {
		return nil, fmt.Errorf("generate section is required")
	}

	if cfg.Generate.Package == "" {
		return nil, fmt.Errorf("generate.package is required")
	}

	return &Generator{cfg: cfg}, nil
}

func (g *Generator) Generate(w io.Writer) error {
	g.file = NewFile(g.cfg.Generate.Package)
	g.file.HeaderComment("Code generated by gqlproxy, DO NOT EDIT.")
	g.file.ImportName(clientPkg, "client")

	g.renderOperations()
	g.renderClient()

	for _, op := range g.cfg.Operations {
		g.renderMethod(op)
		g.renderAsyncMethod(op)
	}

	return g.file.Render(w)
}

// GenerateFile writes the client to cfg.Generate.Output
func GenerateFile(cfg *config.Config) error {
	g, err := NewGenerator(cfg)
	if err != nil {
		return err
	}

	if cfg.Generate.Output == "" {
		return fmt.Errorf("generate.output is required")
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Generate.Output), 0o755); err != nil {
		return fmt.Errorf("unable to create output dir: %w", err)
	}

	f, err := os.Create(cfg.Generate.Output)
	if err != nil {
		return fmt.Errorf("unable to create output: %w", err)
	}
	defer f.Close()

	if err := g.Generate(f); err != nil {
		return fmt.Errorf("generating client failed: %w", err)
	}

	return nil
}

func (g *Generator) typeName() string {
	return g.cfg.Generate.Type
}

func (g *Generator) renderOperations() {
	g.file.Comment("Operations lists the queries behind the methods of " + g.typeName())
	g.file.Var().Id("Operations").Op("=").Index().Qual(clientPkg, "Operation").ValuesFunc(func(group *Group) {
		for _, op := range g.cfg.Operations {
			if op.Query == "" {
				continue
			}

			group.Values(DictFunc(func(d Dict) {
				d[Id("Method")] = Lit(op.Method)
				d[Id("Query")] = Lit(op.Query)
				if len(op.Vars) > 0 {
					d[Id("Vars")] = Index().Qual(clientPkg, "Var").ValuesFunc(func(group *Group) {
						for i, name := range op.Vars {
							group.Values(Dict{
								Id("Name"):  Lit(name),
								Id("Index"): Lit(i),
							})
						}
					})
				}
			}))
		}
	})

	g.file.Line()
}

func (g *Generator) renderClient() {
	name := g.typeName()

	g.file.Type().Id(name).Struct(
		Op("*").Qual(clientPkg, "Client"),
	)
	g.file.Line()

	g.file.Func().Id("New"+name).Params(
		Id("cfg").Qual(clientPkg, "Config"),
	).Params(Op("*").Id(name), Error()).Block(
		List(Id("c"), Err()).Op(":=").Qual(clientPkg, "New").Call(Id("cfg"), Id("Operations").Op("...")),
		If(Err().Op("!=").Nil()).Block(
			Return(Nil(), Err()),
		),
		Line(),
		Return(Op("&").Id(name).Values(Dict{Id("Client"): Id("c")}), Nil()),
	)
	g.file.Line()
}

func (g *Generator) params(op *config.OperationConfig) ([]Code, []Code) {
	params := []Code{Id("ctx").Qual("context", "Context")}
	args := []Code{Id("ctx"), Id("c").Dot("Client"), Lit(op.Method)}

	for i, v := range op.Vars {
		name := argName(v)
		params = append(params, Id(name).Add(typeCode(op.Args[i])))
		args = append(args, Id(name))
	}

	return params, args
}

func (g *Generator) renderMethod(op *config.OperationConfig) {
	params, args := g.params(op)
	fn := g.file.Func().Params(Id("c").Op("*").Id(g.typeName())).Id(op.Method).Params(params...)
	defer g.file.Line()

	if op.Returns == "" {
		fn.Error().Block(
			Return(Qual(clientPkg, "Exec").Call(args...)),
		)
		return
	}

	fn.Params(typeCode(op.Returns), Error()).Block(
		Return(Qual(clientPkg, "Call").Index(typeCode(op.Returns)).Call(args...)),
	)
}

func (g *Generator) renderAsyncMethod(op *config.OperationConfig) {
	params, args := g.params(op)

	ret := typeCode(op.Returns)
	if op.Returns == "" {
		ret = Qual(clientPkg, "Unit")
	}

	g.file.Func().Params(Id("c").Op("*").Id(g.typeName())).Id(op.Method+"Async").Params(params...).
		Op("*").Qual(clientPkg, "Future").Index(ret).
		Block(
			Return(Qual(clientPkg, "Submit").Index(ret).Call(args...)),
		)
	g.file.Line()
}

func argName(v string) string {
	name := templates.ToGoPrivate(v)
	switch name {
	case "ctx", "c":
		return name + "Arg"
	}

	return name
}

// typeCode renders a Go type expression, "path/to/pkg.Name" is imported
func typeCode(t string) *Statement {
	switch {
	case strings.HasPrefix(t, "*"):
		return Op("*").Add(typeCode(t[1:]))
	case strings.HasPrefix(t, "[]"):
		return Index().Add(typeCode(t[2:]))
	case t == "interface{}":
		return Interface()
	}

	if i := strings.LastIndex(t, "."); i > 0 && strings.Contains(t[:i], "/") {
		return Qual(t[:i], t[i+1:])
	}

	return Id(t)
}
