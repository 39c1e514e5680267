// Package argcheck defines an analyzer that matches computation.Args call
// sites against compiled interface files, so a call whose arguments cannot
// fit the instruction's parameters fails go vet instead of reaching the
// network.
package argcheck

import (
	"go/ast"
	"go/constant"
	"go/types"
	"sync"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"

	"github.com/wippyai/mxe-call/computation"
	"github.com/wippyai/mxe-call/schema"
)

const computationPath = "github.com/wippyai/mxe-call/computation"

const notStatic = "arguments must be known at compile time"

var Analyzer = &analysis.Analyzer{
	Name:     "argcheck",
	Doc:      "check computation.Args call sites against compiled interface files",
	Run:      run,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
}

var buildDir string

func init() {
	Analyzer.Flags.StringVar(&buildDir, "build", "build", "directory holding compiled interface files")
}

// definitions caches loaded interface files across packages.
var definitions sync.Map // path -> loaded

type loaded struct {
	def *schema.Definition
	err error
}

func definition(name string) (*schema.Definition, error) {
	path := schema.Path(buildDir, name)
	if v, ok := definitions.Load(path); ok {
		l := v.(loaded)
		return l.def, l.err
	}
	def, err := schema.LoadDefinition(path)
	definitions.Store(path, loaded{def: def, err: err})
	return def, err
}

func run(pass *analysis.Pass) (any, error) {
	ins := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	ins.Preorder([]ast.Node{(*ast.CallExpr)(nil)}, func(n ast.Node) {
		call := n.(*ast.CallExpr)
		if !isArgsCall(pass, call) || len(call.Args) == 0 {
			return
		}
		checkCall(pass, call)
	})
	return nil, nil
}

func isArgsCall(pass *analysis.Pass, call *ast.CallExpr) bool {
	fn, ok := typeutil.Callee(pass.TypesInfo, call).(*types.Func)
	if !ok || fn.Pkg() == nil {
		return false
	}
	return fn.Pkg().Path() == computationPath && fn.Name() == "Args"
}

func checkCall(pass *analysis.Pass, call *ast.CallExpr) {
	if call.Ellipsis.IsValid() {
		pass.Reportf(call.Pos(), notStatic)
		return
	}

	nameTV := pass.TypesInfo.Types[call.Args[0]]
	if nameTV.Value == nil || nameTV.Value.Kind() != constant.String {
		pass.Reportf(call.Args[0].Pos(), notStatic)
		return
	}
	name := constant.StringVal(nameTV.Value)

	args := make([]computation.Argument, 0, len(call.Args)-1)
	for _, expr := range call.Args[1:] {
		arg, ok := staticArg(pass, expr)
		if !ok {
			pass.Reportf(expr.Pos(), notStatic)
			return
		}
		args = append(args, arg)
	}

	def, err := definition(name)
	if err != nil {
		pass.Reportf(call.Args[0].Pos(), "no interface file for %q: %v", name, err)
		return
	}

	if _, err := computation.MatchSlots(args, def.Parameters); err != nil {
		me := err.(*computation.MatchError)
		pos := call.Pos()
		if me.ArgIndex >= 0 {
			pos = call.Args[me.ArgIndex+1].Pos()
		}
		pass.Reportf(pos, "%s", me.StaticMessage())
	}
}

// staticArg resolves an argument expression to a blank argument of the
// same kind. Accounts additionally need a constant Length. A pointer to an
// argument type resolves to nil, which the matcher treats the same way it
// treats the pointer at run time: one slot that no parameter accepts.
func staticArg(pass *analysis.Pass, expr ast.Expr) (computation.Argument, bool) {
	t := pass.TypesInfo.TypeOf(expr)
	if t == nil {
		return nil, false
	}
	if ptr, ok := t.(*types.Pointer); ok {
		if _, ok := argKind(ptr.Elem()); !ok {
			return nil, false
		}
		return nil, true
	}
	kind, ok := argKind(t)
	if !ok {
		return nil, false
	}

	if kind != computation.KindAccount {
		return computation.Blank(kind, 0), true
	}

	length, ok := accountLength(pass, expr)
	if !ok {
		return nil, false
	}
	return computation.Blank(kind, length), true
}

// argKind maps a named type declared in the computation package to its kind.
func argKind(t types.Type) (computation.ArgKind, bool) {
	named, ok := t.(*types.Named)
	if !ok {
		return 0, false
	}
	obj := named.Obj()
	if obj.Pkg() == nil || obj.Pkg().Path() != computationPath {
		return 0, false
	}
	kind, err := computation.ParseArgKind(obj.Name())
	if err != nil {
		return 0, false
	}
	return kind, true
}

func accountLength(pass *analysis.Pass, expr ast.Expr) (uint32, bool) {
	lit, ok := astutil.Unparen(expr).(*ast.CompositeLit)
	if !ok {
		return 0, false
	}

	var lengthExpr ast.Expr
	for i, elt := range lit.Elts {
		if kv, ok := elt.(*ast.KeyValueExpr); ok {
			if id, ok := kv.Key.(*ast.Ident); ok && id.Name == "Length" {
				lengthExpr = kv.Value
			}
			continue
		}
		// positional: Key, Offset, Length
		if i == 2 {
			lengthExpr = elt
		}
	}
	if lengthExpr == nil {
		return 0, true
	}

	tv := pass.TypesInfo.Types[lengthExpr]
	if tv.Value == nil {
		return 0, false
	}
	v, exact := constant.Uint64Val(constant.ToInt(tv.Value))
	if !exact || v > 1<<32-1 {
		return 0, false
	}
	return uint32(v), true
}
