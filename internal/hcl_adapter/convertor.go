package hcl_adapter

import (
	"context"
	"fmt"
	"reflect"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/vk/advent2020/internal/config"
	"github.com/vk/advent2020/internal/ctxlog"
)

// Converter is the HCL implementation of config.Converter.
type Converter struct {
	vars config.Vars
}

// NewConverter returns a Converter that evaluates parameters with vars in scope.
func NewConverter(vars config.Vars) *Converter {
	return &Converter{vars: vars}
}

// DecodeParams decodes the puzzle's remaining attributes into target with gohcl.
func (c *Converter) DecodeParams(ctx context.Context, p *config.Puzzle, target any) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Decoding puzzle parameters.", "day", p.Day, "source", p.Source)

	if target == nil {
		target = &struct{}{}
	}
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Ptr || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("params target for puzzle %s must be a non-nil pointer to a struct, got %T", p.Day, target)
	}
	if p.Params == nil {
		return nil
	}

	if diags := gohcl.DecodeBody(p.Params, evalContext(c.vars, p.Day), target); diags.HasErrors() {
		return fmt.Errorf("failed to decode parameters for puzzle %s: %w", p.Day, diags)
	}
	return nil
}
