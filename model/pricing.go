package model

import (
	"github.com/shopspring/decimal"

	"github.com/hupe1980/agentswarm/core"
)

// Pricing holds per-model token prices in USD per million tokens.
type Pricing struct {
	InputPerMTok  decimal.Decimal
	OutputPerMTok decimal.Decimal
}

var million = decimal.NewFromInt(1_000_000)

// CostFor prices a usage record: prompt tokens at the input rate,
// completion tokens at the output rate.
func (p Pricing) CostFor(usage core.TokenUsage) decimal.Decimal {
	in := decimal.NewFromInt(int64(usage.PromptTokens)).Mul(p.InputPerMTok).Div(million)
	out := decimal.NewFromInt(int64(usage.CompletionTokens)).Mul(p.OutputPerMTok).Div(million)

	return in.Add(out)
}

// DefaultPricing contains built-in prices keyed by model name (USD per
// million tokens). Override via PricingFor callers when rates change.
var DefaultPricing = map[string]Pricing{
	"claude-opus-4-5": {
		InputPerMTok:  decimal.NewFromFloat(5),
		OutputPerMTok: decimal.NewFromFloat(25),
	},
	"claude-sonnet-4-5": {
		InputPerMTok:  decimal.NewFromFloat(3),
		OutputPerMTok: decimal.NewFromFloat(15),
	},
	"claude-haiku-4-5": {
		InputPerMTok:  decimal.NewFromFloat(1),
		OutputPerMTok: decimal.NewFromFloat(5),
	},
	"claude-3-5-sonnet-20241022": {
		InputPerMTok:  decimal.NewFromFloat(3),
		OutputPerMTok: decimal.NewFromFloat(15),
	},
	"gpt-4o": {
		InputPerMTok:  decimal.NewFromFloat(2.5),
		OutputPerMTok: decimal.NewFromFloat(10),
	},
	"gpt-4o-mini": {
		InputPerMTok:  decimal.NewFromFloat(0.15),
		OutputPerMTok: decimal.NewFromFloat(0.6),
	},
}

// PricingFor looks up the built-in price table. Unknown models get the
// zero value, which prices every call at zero rather than guessing.
func PricingFor(model string) Pricing { return DefaultPricing[model] }
