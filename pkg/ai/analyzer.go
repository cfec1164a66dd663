package ai

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/jmorley-dev/sales-insights-api/pkg/global"
	"github.com/jmorley-dev/sales-insights-api/pkg/models"
)

// SalesReader is the slice of the record store the analyzer needs.
type SalesReader interface {
	RecentSales(ctx context.Context, days int) ([]models.SaleWithProduct, error)
}

// Completer is the text-generation capability, narrowed so tests can stub it.
type Completer interface {
	Complete(ctx context.Context, systemMessage, userMessage string) (string, error)
}

// Insight is the analyzer result. ContextUsed carries the exact sales context
// handed to the model, for transparency and debugging.
type Insight struct {
	Answer      string `json:"answer"`
	ContextUsed string `json:"context_used"`
}

// Analyzer answers free-text questions about recent sales by feeding a
// formatted window of sales data to the completion provider.
type Analyzer struct {
	store SalesReader
	llm   Completer
}

// NewAnalyzer builds an analyzer backed by the OpenAI client. Credential
// validation happens here, once, so a misconfigured deployment dies at
// startup instead of failing per-request.
func NewAnalyzer(store SalesReader) (*Analyzer, error) {
	llm, err := NewClient()
	if err != nil {
		return nil, err
	}
	return &Analyzer{store: store, llm: llm}, nil
}

// NewAnalyzerWith wires explicit store and completer implementations.
func NewAnalyzerWith(store SalesReader, llm Completer) *Analyzer {
	return &Analyzer{store: store, llm: llm}
}

// Analyze fetches the sales of the last N days, formats them into the prompt
// context and asks the model the caller's question. Classified errors from the
// store or the provider propagate unchanged; anything else is re-signalled as
// a generic operational failure with the cause logged server-side only.
func (a *Analyzer) Analyze(ctx context.Context, question string, days int) (*Insight, error) {
	rows, err := a.store.RecentSales(ctx, days)
	if err != nil {
		return nil, classify(err, "failed to generate sales insight")
	}

	salesContext := FormatSalesContext(rows)
	log.Printf("Analyzing question %q over %d day(s) with %d sales record(s)", question, days, len(rows))

	answer, err := a.llm.Complete(ctx, salesAnalystSystemPrompt, buildAnalysisPrompt(question, salesContext))
	if err != nil {
		return nil, classify(err, "failed to generate sales insight")
	}

	return &Insight{
		Answer:      strings.TrimSpace(answer),
		ContextUsed: salesContext,
	}, nil
}

// classify passes through errors that already carry an operational
// classification and wraps everything else.
func classify(err error, message string) error {
	var opErr *global.OperationalError
	if errors.As(err, &opErr) {
		return err
	}
	log.Printf("Analysis error: %v", err)
	return &global.OperationalError{Message: message, Cause: err}
}
