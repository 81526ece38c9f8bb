package agent

import (
	"context"
	"fmt"

	"github.com/fintrack/fintrack"
	"github.com/fintrack/fintrack/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert skills available through the Tools and ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to understand their personal finances: budgets, debts,
			income, and investments. Devise a plan of questions to ask each expert and come up
			with the best response to the user's request.

			The user will assume that you already know their budgets and holdings, check with
			the Accountant first to understand what they are.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAnalyst creates the expert grounded on search, for questions about
// markets, rates, and institutions that the ledger cannot answer.
func NewAnalyst() *Expert {
	return &Expert{
		Name: "Analyst",
		Description: `This is an expert financial analyst,
		very well aware of financial products, institutions, interest rates,
		and the latest news about funds and companies.
		Ask the Analyst whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert financial analyst. You can search and find out about anything
			related to financial institutions, markets, funds, and interest rates. You leverage
			Google Search to ground your assertions in solid truth, and you know how to relate
			the latest news to the user's request.
				`}}},
		},
	}
}

// LedgerLoader opens the user's current ledger. The command layer provides
// it so the assistant honors the same ledger-file flag as every command.
type LedgerLoader func() (*fintrack.Ledger, error)

// NewAccountant creates the expert in charge of reading the user's ledger
// through function tools.
func NewAccountant(load LedgerLoader) *Expert {
	lib := reportFuncs(load)
	return &Expert{
		Name: "Accountant",
		Description: `This is the Accountant. He is in charge of reading the user's financial ledger.
		He can report on budgets and their progress, debts and payoff projections,
		income and upcoming paychecks, and the investment portfolio.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an accountant in charge of the user's financial ledger.
				You know how to use the Tools to extract relevant information about the user's
				budgets, debts, income, and investments. You are part of a team of experts;
				yours is everything recorded in the ledger. Pardon their approximative language
				and figure out what they meant.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

// reportFuncs exposes the engine reports as function tools. Every tool takes
// an optional date and returns a markdown report.
func reportFuncs(load LedgerLoader) []Function {
	report := func(name, description string, render func(l *fintrack.Ledger, on fintrack.Date) string) Function {
		return &Func{
			Decl: &genai.FunctionDeclaration{
				Name:        name,
				Description: description,
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"date": {
							Type:        genai.TypeString,
							Description: "The date on which to compute the report, formatted YYYY-MM-DD. Today is the default.",
						},
					},
				},
				Response: &genai.Schema{
					Type:        genai.TypeString,
					Description: "A markdown-formatted report.",
				},
			},
			Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
				fresp := &genai.FunctionResponse{ID: id, Name: name, Response: map[string]any{}}
				on, err := parseDate(args)
				if err != nil {
					fresp.Response["error"] = err.Error()
					return fresp
				}
				l, err := load()
				if err != nil {
					fresp.Response["error"] = fmt.Sprintf("could not load ledger: %v", err)
					return fresp
				}
				fresp.Response["output"] = render(l, on)
				return fresp
			},
		}
	}

	return []Function{
		report("Budgets",
			"Budgets lists every budget with its category, period, spending progress, and status tier.",
			func(l *fintrack.Ledger, on fintrack.Date) string {
				return renderer.BudgetsMarkdown(l.Budgets(), on)
			}),
		report("Debts",
			"Debts lists every debt with its balance, payoff progress, and a projected payoff date.",
			func(l *fintrack.Ledger, on fintrack.Date) string {
				return renderer.DebtsMarkdown(l.Debts(), on)
			}),
		report("Income",
			"Income lists the income history and the next expected recurring income after the given date.",
			func(l *fintrack.Ledger, on fintrack.Date) string {
				return renderer.IncomesMarkdown(l.Incomes(), on)
			}),
		report("Portfolio",
			"Portfolio lists every investment with invested amount, current value, profit and loss, and SIP contributions.",
			func(l *fintrack.Ledger, on fintrack.Date) string {
				return renderer.PortfolioMarkdown(l.Investments(), on)
			}),
		report("Summary",
			"Summary reports the whole financial picture on a date: budget headroom, outstanding debt, portfolio value, next income, and the net position.",
			func(l *fintrack.Ledger, on fintrack.Date) string {
				return renderer.SummaryMarkdown(fintrack.NewSummary(l, on))
			}),
	}
}

func parseDate(args map[string]any) (fintrack.Date, error) {
	idate, hasDate := args["date"]
	if !hasDate {
		return fintrack.Today(), nil
	}
	sdate, ok := idate.(string)
	if !ok {
		return fintrack.Today(), fmt.Errorf("argument 'date' is not a string as expected but %T", idate)
	}
	date, err := fintrack.ParseDate(sdate)
	if err != nil {
		return fintrack.Today(), fmt.Errorf("argument 'date' must be a valid YYYY-MM-DD date, got %q", sdate)
	}
	return date, nil
}
