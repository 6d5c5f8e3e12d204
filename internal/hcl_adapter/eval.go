package hcl_adapter

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/vk/advent2020/internal/config"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// evalContext builds the expression scope for a single puzzle block.
func evalContext(vars config.Vars, day string) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"input_dir": cty.StringVal(vars.InputDir),
			"day":       cty.StringVal(day),
		},
		Functions: map[string]function.Function{
			"format": stdlib.FormatFunc,
			"join":   stdlib.JoinFunc,
			"lower":  stdlib.LowerFunc,
			"upper":  stdlib.UpperFunc,
		},
	}
}
