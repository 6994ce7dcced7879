package agent

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/etnz/finances"
	"github.com/etnz/finances/docs"
	"github.com/etnz/finances/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// LedgerPath is the ledger file the accountant's tools read. The assist
// command points it at the application's ledger before starting.
var LedgerPath = "transactions.jsonl"

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

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to understand his personal finances: his income and spending,
			his loans and deposits, his budgets and savings goals.

			Devise a plan of questions to ask to each expert and come up with the best response to the user's request.

			The user will assume that you know his ledger, check it first through the accountant.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAdvisor creates the expert grounded on search, for questions about
// banks, rates and financial products in general.
func NewAdvisor() *Expert {
	return &Expert{
		Name: "Advisor",
		Description: `This is a financial advisor,
		well aware of banks, interest rates, savings products and the latest financial news.
		Ask the Advisor whenever you need recent or grounding information from outside the ledger.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert financial advisor. You can search and find anything related to
			banks, interest rates, savings products and markets. You leverage Google Search to
			ground your assertions in a solid truth.
				`}}},
		},
	}
}

// NewAccountant creates the expert in charge of reading the user's
// ledger through the tools below.
func NewAccountant() *Expert {
	lib := []Function{Summarize, Products, Budgets}

	return &Expert{
		Name: "Accountant",
		Description: `This is the Accountant. He is in charge of reading the user's ledger.
		He can compute the relevant figures about the user's income, spending, loans, deposits and goals.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an accountant in charge of the user's ledger.
				You know how to use the Tools to extract relevant information about the user's finances.
				You are part of a team of experts, yours is everything recorded in the ledger. They might ask
				you questions about the user's finances, pardon their approximative language and figure out what they meant.

				Use the available tools to get information about the user's finances
				  - income and expense summaries over a period
				  - loans, deposits and savings goals with their current balances
				  - budgets and what remains of them
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func errResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func okResponse(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": output,
		},
	}
}

var periodSchema = &genai.Schema{
	Type: genai.TypeString,
	Description: `The reporting period ending today: daily, weekly, monthly, quarterly or yearly.
	Monthly is the default. Below is the doc about periods:

	` + must(docs.GetTopic("periods")),
}

// Summarize renders the income/expense summary over a period.
var Summarize = &Func{
	Decl: &genai.FunctionDeclaration{
		Name:        "Summarize",
		Description: `Summarize computes the user's total income, total expenses and remaining budget over a period ending today.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"period": periodSchema,
			},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted summary of the period's income and expenses.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		r, err := parsePeriodArg(args)
		if err != nil {
			return errResponse(id, "Summarize", err)
		}
		ledger, err := loadLedger()
		if err != nil {
			return errResponse(id, "Summarize", err)
		}
		return okResponse(id, "Summarize", renderer.SummaryMarkdown(finances.NewSummary(ledger, r)))
	},
}

// Products renders every loan, deposit and goal with its current state.
var Products = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "Products",
		Description: `Products lists the user's financial products: loans with their outstanding balance and monthly payment,
		deposits with their current amount and value at maturity, savings goals with the amount saved so far.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted report of all financial products.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		ledger, err := loadLedger()
		if err != nil {
			return errResponse(id, "Products", err)
		}
		return okResponse(id, "Products", renderer.ProductsMarkdown(ledger))
	},
}

// Budgets renders the per-category budget report over a period.
var Budgets = &Func{
	Decl: &genai.FunctionDeclaration{
		Name:        "Budgets",
		Description: `Budgets reports, for each budget category, the limit, what was spent in the period and what remains.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"period": periodSchema,
			},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted table of budgets with spent and remaining amounts.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		r, err := parsePeriodArg(args)
		if err != nil {
			return errResponse(id, "Budgets", err)
		}
		ledger, err := loadLedger()
		if err != nil {
			return errResponse(id, "Budgets", err)
		}
		return okResponse(id, "Budgets", renderer.BudgetMarkdown(finances.NewBudgetReport(ledger, r)))
	},
}

// loadLedger decodes the ledger from LedgerPath. A missing file is an
// empty ledger.
func loadLedger() (*finances.Ledger, error) {
	f, err := os.Open(LedgerPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return finances.NewLedger(), nil
		}
		return nil, fmt.Errorf("could not open ledger file %q: %w", LedgerPath, err)
	}
	defer f.Close()

	ledger, err := finances.DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", LedgerPath, err)
	}
	return ledger, nil
}

func parsePeriodArg(args map[string]any) (finances.Range, error) {
	iperiod, hasPeriod := args["period"]
	if !hasPeriod {
		return finances.Monthly.Since(finances.Today()), nil
	}
	speriod, ok := iperiod.(string)
	if !ok {
		return finances.Range{}, fmt.Errorf("argument 'period' is not a string as expected but %T", iperiod)
	}
	p, err := finances.ParsePeriod(speriod)
	if err != nil {
		return finances.Range{}, fmt.Errorf("argument 'period' must be a valid period got %q. Below is the doc about periods\n\n%s", speriod, must(docs.GetTopic("periods")))
	}
	return p.Since(finances.Today()), nil
}
