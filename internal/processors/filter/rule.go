package filter

import (
	"context"
	"fmt"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/bakkerme/internwatch/internal/config"
	"github.com/bakkerme/internwatch/internal/core"
)

type RuleProcessor struct {
	name    string
	config  config.RuleFilter
	program *vm.Program
}

func NewRuleProcessor(cfg *config.RuleFilter) (*RuleProcessor, error) {
	if cfg == nil {
		return nil, fmt.Errorf("rule filter config is required")
	}
	program, err := expr.Compile(cfg.Rule, expr.Env(map[string]interface{}{}))
	if err != nil {
		return nil, fmt.Errorf("compile filter rule: %w", err)
	}
	return &RuleProcessor{
		name:    cfg.Name,
		config:  *cfg,
		program: program,
	}, nil
}

func (p *RuleProcessor) Name() string {
	return p.name
}

func (p *RuleProcessor) Validate() error {
	if p.config.Name == "" || p.config.Rule == "" {
		return fmt.Errorf("rule name and expression are required")
	}
	if p.config.Result != "pass" && p.config.Result != "drop" {
		return fmt.Errorf("rule result must be 'pass' or 'drop'")
	}
	return nil
}

func (p *RuleProcessor) Filter(ctx context.Context, blocks []*core.ListingBlock) ([]*core.ListingBlock, error) {
	_ = ctx
	if err := p.Validate(); err != nil {
		return nil, err
	}
	filtered := make([]*core.ListingBlock, 0, len(blocks))

	for _, block := range blocks {
		result, err := expr.Run(p.program, ruleEnv(block))
		if err != nil {
			block.Errors = append(block.Errors, core.ProcessError{
				ProcessorName: p.name,
				Stage:         "filter",
				Error:         err.Error(),
				OccurredAt:    time.Now().UTC(),
			})
			filtered = append(filtered, block)
			continue
		}
		matched, ok := result.(bool)
		if !ok {
			return nil, fmt.Errorf("filter rule did not return bool")
		}

		keep := matched
		if p.config.Result == "drop" {
			keep = !matched
		}
		if keep {
			filtered = append(filtered, block)
		}
	}

	return filtered, nil
}

func ruleEnv(block *core.ListingBlock) map[string]interface{} {
	return map[string]interface{}{
		"title":    block.Title,
		"company":  block.Company,
		"source":   block.Source,
		"location": block.Location,
		"salary":   block.Salary,
		"url":      block.URL,
	}
}
