package constants

// Keyword is one entry in the financial vocabulary. The summarizer reports
// Canonical when any of Patterns appears in the text (case-insensitive
// substring match). Patterns cover common inflections so "grew" still counts
// as growth.
type Keyword struct {
	Canonical string
	Patterns  []string
}

// FinancialKeywords is the fixed vocabulary scanned by the heuristic
// summarizer. The confidence denominator is len(FinancialKeywords); keep the
// list and any code deriving a vocabulary size pointed at this single table.
var FinancialKeywords = []Keyword{
	{Canonical: "revenue", Patterns: []string{"revenue"}},
	{Canonical: "profit", Patterns: []string{"profit"}},
	{Canonical: "loss", Patterns: []string{"loss"}},
	{Canonical: "assets", Patterns: []string{"assets"}},
	{Canonical: "liabilities", Patterns: []string{"liabilities"}},
	{Canonical: "equity", Patterns: []string{"equity"}},
	{Canonical: "cash flow", Patterns: []string{"cash flow"}},
	{Canonical: "dividend", Patterns: []string{"dividend"}},
	{Canonical: "earnings", Patterns: []string{"earnings"}},
	{Canonical: "investment", Patterns: []string{"investment"}},
	{Canonical: "risk", Patterns: []string{"risk"}},
	{Canonical: "market", Patterns: []string{"market"}},
	{Canonical: "growth", Patterns: []string{"growth", "grow", "grew"}},
	{Canonical: "volatility", Patterns: []string{"volatility"}},
	{Canonical: "returns", Patterns: []string{"returns"}},
}
