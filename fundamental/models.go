package fundamental

// Statement carries the reporting metadata shared by all three
// financial statements. The fillingDate key is the provider's own
// spelling.
type Statement struct {
	Date             string `json:"date"`
	Symbol           string `json:"symbol"`
	ReportedCurrency string `json:"reportedCurrency"`
	CIK              string `json:"cik"`
	Period           string `json:"period"`
	FillingDate      string `json:"fillingDate"`
	AcceptedDate     string `json:"acceptedDate"`
	CalendarYear     string `json:"calendarYear"`
	Link             string `json:"link"`
	FinalLink        string `json:"finalLink"`
}

// IncomeStatement is one reported income statement.
type IncomeStatement struct {
	Statement

	Revenue           float64 `json:"revenue"`
	CostOfRevenue     float64 `json:"costOfRevenue"`
	GrossProfit       float64 `json:"grossProfit"`
	GrossProfitRatio  float64 `json:"grossProfitRatio"`
	OperatingExpenses float64 `json:"operatingExpenses"`
	OperatingIncome   float64 `json:"operatingIncome"`
	NetIncome         float64 `json:"netIncome"`
	EPS               float64 `json:"eps"`
	EPSDiluted        float64 `json:"epsdiluted"`
	EBITDA            float64 `json:"ebitda"`
}

// BalanceSheet is one reported balance sheet.
type BalanceSheet struct {
	Statement

	TotalAssets             float64 `json:"totalAssets"`
	TotalLiabilities        float64 `json:"totalLiabilities"`
	TotalEquity             float64 `json:"totalEquity"`
	CashAndCashEquivalents  float64 `json:"cashAndCashEquivalents"`
	ShortTermDebt           float64 `json:"shortTermDebt"`
	LongTermDebt            float64 `json:"longTermDebt"`
	TotalDebt               float64 `json:"totalDebt"`
	NetDebt                 float64 `json:"netDebt"`
	RetainedEarnings        float64 `json:"retainedEarnings"`
	TotalStockholdersEquity float64 `json:"totalStockholdersEquity"`
}

// CashFlowStatement is one reported cash flow statement. The investing
// activities key carries the provider's own misspelling.
type CashFlowStatement struct {
	Statement

	OperatingCashFlow       float64 `json:"operatingCashFlow"`
	CapitalExpenditure      float64 `json:"capitalExpenditure"`
	FreeCashFlow            float64 `json:"freeCashFlow"`
	NetCashUsedForInvesting float64 `json:"netCashUsedForInvestingActivites"`
	NetCashUsedForFinancing float64 `json:"netCashUsedProvidedByFinancingActivities"`
	NetChangeInCash         float64 `json:"netChangeInCash"`
	DividendsPaid           float64 `json:"dividendsPaid"`
}
