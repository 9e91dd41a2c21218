package analysis

// Stage describes one ordered analytical step. All stages share the same
// document text and user query; ordering is fixed and not reconfigurable.
type Stage struct {
	Name           string
	Description    string
	ExpectedOutput string
}

// Stages is the fixed four-step sequence run per document.
var Stages = []Stage{
	{
		Name: "document_analysis",
		Description: "Analyze the provided financial document text. " +
			"Identify the document type and period covered, extract key financial metrics " +
			"(revenue, profit, cash flow, etc.), summarize the main findings, and assess " +
			"their investment relevance.",
		ExpectedOutput: "A structured analysis covering document type and period, key financial " +
			"metrics, notable trends or changes, investment insights, and a data quality assessment.",
	},
	{
		Name: "investment_recommendation",
		Description: "Based on the financial document, provide investment-focused " +
			"recommendations: investment attractiveness, strengths and weaknesses, comparison " +
			"with industry benchmarks where applicable, and the rationale behind the recommendation.",
		ExpectedOutput: "An investment report with a Buy/Hold/Sell recommendation and confidence " +
			"level, key highlights and concerns, financial strength indicators, growth potential, " +
			"and a recommended timeline.",
	},
	{
		Name: "risk_assessment",
		Description: "Conduct a comprehensive risk analysis of the financial data: financial " +
			"risks (liquidity, credit, market), operational risks, industry-specific risks, and " +
			"possible mitigation strategies.",
		ExpectedOutput: "A risk report with identified risk categories and severity, impact and " +
			"probability assessments, recommended mitigations, and an overall risk rating.",
	},
	{
		Name: "verification",
		Description: "Verify the document classification and analysis quality: is this a " +
			"legitimate financial document, how complete is the data, how reliable is the " +
			"analysis, and what limitations or caveats apply.",
		ExpectedOutput: "A verification report with an authenticity assessment, data quality " +
			"score, analysis confidence level, and identified limitations.",
	},
}
