package ai

import "fmt"

// noSalesContext is the sentinel handed to the model when the window holds no
// sales. It is a real value, distinguishable from an error: "nothing sold" is
// an answer, not a failure.
const noSalesContext = "No sales recorded in the requested period."

const salesAnalystSystemPrompt = `You are a sales analysis expert.
Answer the question strictly based on the data provided.

Guidelines:
1. Be concise and precise
2. Format numbers and dates clearly
3. If there is no relevant data, state "There is not enough data"
4. Never make up information`

// buildAnalysisPrompt substitutes the caller's question and the formatted
// sales context verbatim into the fixed instruction template. The question is
// not escaped or sanitized in any way before substitution.
func buildAnalysisPrompt(question, context string) string {
	return fmt.Sprintf(`Question: %s

Sales data for the period:
%s

Answer:`, question, context)
}
