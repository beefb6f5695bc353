package eval

import (
	"errors"
	"fmt"

	"github.com/signadot/dlmatch"
	"github.com/signadot/dlmatch/debug"
	"github.com/signadot/dlmatch/dl"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var ErrEmpty = errors.New("empty guard")

// CompileGuard compiles a boolean expression over match bindings. Each
// variable appears by name as its rendered text, so
//
//	x == "A" && kind(y) == "ObjectSomeValuesFrom"
//
// holds when ?x is bound to class A and ?y to an existential
// restriction. kind, iri and size take a variable and inspect its
// bound value. Variables the match did not bind are nil.
func CompileGuard(src string) (dlmatch.Guard, error) {
	if src == "" {
		return nil, ErrEmpty
	}
	prg, err := expr.Compile(src, compileOpts()...)
	if err != nil {
		return nil, fmt.Errorf("could not compile guard %q: %w", src, err)
	}
	return guard(src, prg), nil
}

func guard(src string, prg *vm.Program) dlmatch.Guard {
	return func(b dlmatch.Bindings) (bool, error) {
		res, err := expr.Run(prg, NewEnv(b))
		if err != nil {
			return false, fmt.Errorf("could not evaluate guard %q: %w", src, err)
		}
		ok, _ := res.(bool)
		if debug.Guard() {
			debug.Logf("guard %q on %s: %t\n", src, b, ok)
		}
		return ok, nil
	}
}

func compileOpts() []expr.Option {
	opts := []expr.Option{
		expr.Env(map[string]any{
			"kind": kindFunc(nil),
			"iri":  iriFunc(nil),
			"size": sizeFunc(nil),
		}),
		expr.AllowUndefinedVariables(),
		expr.Patch(varRefs{}),
		expr.AsBool(),
	}
	return append(opts, exprOpts()...)
}

// NewEnv returns the expression environment for b: the rendered text
// of each bound variable, and the functions inspecting bound values.
func NewEnv(b dlmatch.Bindings) map[string]any {
	env := make(map[string]any, len(b)+3)
	for name, v := range b {
		env[name] = dl.Format(v)
	}
	env["kind"] = kindFunc(b)
	env["iri"] = iriFunc(b)
	env["size"] = sizeFunc(b)
	return env
}
