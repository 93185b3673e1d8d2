// Package celcondition compiles and evaluates the optional CEL expressions that gate relaying.
// Expressions see the inbound JSON document as the dynamic variable `body`,
// e.g. `body.confidence >= 65 && body.side == 'LONG'`.
package celcondition

import (
	"fmt"

	"github.com/google/cel-go/cel"
	celtypes "github.com/google/cel-go/common/types"
	"github.com/tidwall/gjson"
)

// BodyVariable is the name the inbound document is bound to.
const BodyVariable = "body"

// PrepareCondition compiles celCondition and rejects expressions that cannot yield a bool.
func PrepareCondition(celCondition string) (cel.Program, error) {
	if celCondition == "" {
		return nil, fmt.Errorf("condition is empty")
	}
	env, err := cel.NewEnv(
		cel.Variable(BodyVariable, cel.DynType),
		cel.CrossTypeNumericComparisons(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}
	ast, issues := env.Compile(celCondition)
	if issues != nil && issues.Err() != nil {
		return nil, issues.Err()
	}
	outType := ast.OutputType()
	if !outType.IsExactType(cel.BoolType) && !outType.IsExactType(cel.DynType) {
		return nil, fmt.Errorf("output type is not bool: %s", outType)
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("failed to program CEL expression: %w", err)
	}
	return prg, nil
}

// EvaluateCondition runs prg against the raw JSON body.
// A missing key or a non-bool result is an error.
func EvaluateCondition(prg cel.Program, body []byte) (bool, error) {
	if prg == nil {
		return false, fmt.Errorf("program is nil")
	}
	if !gjson.ValidBytes(body) {
		return false, fmt.Errorf("body is not valid JSON")
	}
	vars := map[string]any{
		BodyVariable: gjson.ParseBytes(body).Value(),
	}

	out, _, err := prg.Eval(vars)
	if err != nil {
		return false, fmt.Errorf("failed to evaluate CEL condition: %w", err)
	}
	if out.Type() != celtypes.BoolType {
		return false, fmt.Errorf("output type is not bool: %s", out.Type())
	}
	return out.Value() == true, nil
}
