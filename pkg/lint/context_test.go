package lint_test

import (
	"context"
	"testing"

	"github.com/yaklabco/adoclint/pkg/config"
	"github.com/yaklabco/adoclint/pkg/lint"
)

func TestRuleContextOptions(t *testing.T) {
	t.Parallel()

	ruleCfg := &config.RuleConfig{
		Options: map[string]any{
			"min_alt_length": 10,
			"from_yaml":      float64(7),
			"style":          "strict",
			"enabled_extra":  true,
		},
	}

	ctx := lint.NewRuleContext(context.Background(), testDoc(), nil, ruleCfg)

	if got := ctx.OptionInt("min_alt_length", 5); got != 10 {
		t.Errorf("OptionInt = %d, want 10", got)
	}
	// YAML numbers arrive as float64 through generic decoding.
	if got := ctx.OptionInt("from_yaml", 5); got != 7 {
		t.Errorf("OptionInt float64 = %d, want 7", got)
	}
	if got := ctx.OptionInt("missing", 5); got != 5 {
		t.Errorf("OptionInt default = %d, want 5", got)
	}
	if got := ctx.OptionString("style", "loose"); got != "strict" {
		t.Errorf("OptionString = %q, want strict", got)
	}
	if got := ctx.OptionBool("enabled_extra", false); !got {
		t.Error("OptionBool = false, want true")
	}
	if got := ctx.OptionInt("style", 3); got != 3 {
		t.Errorf("OptionInt type mismatch should return default, got %d", got)
	}
}

func TestRuleContextOptionsNilConfig(t *testing.T) {
	t.Parallel()

	ctx := lint.NewRuleContext(context.Background(), testDoc(), nil, nil)

	if got := ctx.OptionInt("anything", 42); got != 42 {
		t.Errorf("OptionInt with nil config = %d, want 42", got)
	}
}

func TestRuleContextCancelled(t *testing.T) {
	t.Parallel()

	bg := lint.NewRuleContext(context.Background(), testDoc(), nil, nil)
	if bg.Cancelled() {
		t.Error("background context should not be cancelled")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cancelled := lint.NewRuleContext(ctx, testDoc(), nil, nil)
	if !cancelled.Cancelled() {
		t.Error("expected cancelled context")
	}
}
