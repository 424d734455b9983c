package company

import "encoding/json"

// Profile is the full company profile returned by the profile endpoint.
// Dates are kept as the provider's string form.
type Profile struct {
	Symbol            string  `json:"symbol"`
	Price             float64 `json:"price"`
	Beta              float64 `json:"beta"`
	VolAvg            int64   `json:"volAvg"`
	MktCap            float64 `json:"mktCap"`
	LastDiv           float64 `json:"lastDiv"`
	Range             string  `json:"range"`
	Changes           float64 `json:"changes"`
	CompanyName       string  `json:"companyName"`
	Currency          string  `json:"currency"`
	CIK               string  `json:"cik"`
	ISIN              string  `json:"isin"`
	CUSIP             string  `json:"cusip"`
	Exchange          string  `json:"exchange"`
	ExchangeShortName string  `json:"exchangeShortName"`
	Industry          string  `json:"industry"`
	Website           string  `json:"website"`
	Description       string  `json:"description"`
	CEO               string  `json:"ceo"`
	Sector            string  `json:"sector"`
	Country           string  `json:"country"`
	FullTimeEmployees string  `json:"fullTimeEmployees"`
	Phone             string  `json:"phone"`
	Address           string  `json:"address"`
	City              string  `json:"city"`
	State             string  `json:"state"`
	Zip               string  `json:"zip"`
	DCFDiff           float64 `json:"dcfDiff"`
	DCF               float64 `json:"dcf"`
	Image             string  `json:"image"`
	IPODate           string  `json:"ipoDate"`
	DefaultImage      bool    `json:"defaultImage"`
	IsETF             bool    `json:"isEtf"`
	IsActivelyTrading bool    `json:"isActivelyTrading"`
	IsADR             bool    `json:"isAdr"`
	IsFund            bool    `json:"isFund"`
}

// SearchResult is one match from the symbol search endpoint.
type SearchResult struct {
	Symbol            string `json:"symbol"`
	Name              string `json:"name"`
	Currency          string `json:"currency"`
	StockExchange     string `json:"stockExchange"`
	ExchangeShortName string `json:"exchangeShortName"`
}

// Executive is one entry from the key executives endpoint.
type Executive struct {
	Title       string `json:"title"`
	Name        string `json:"name"`
	Pay         *int64 `json:"pay"`
	CurrencyPay string `json:"currencyPay"`
	Gender      string `json:"gender"`
	YearBorn    *int   `json:"yearBorn"`
	TitleSince  string `json:"titleSince"`
}

// EmployeeCount is one point of a company's workforce history.
type EmployeeCount struct {
	Symbol         string `json:"symbol"`
	CIK            string `json:"cik"`
	CompanyName    string `json:"companyName"`
	Date           string `json:"date"`
	Count          int64  `json:"employeeCount"`
	FormType       string `json:"formType"`
	FilingDate     string `json:"filingDate"`
	AcceptanceTime string `json:"acceptanceTime"`
	Source         string `json:"source"`
}

// Note is a financial note attached to a company's filings.
type Note struct {
	CIK        string `json:"cik"`
	Symbol     string `json:"symbol"`
	Title      string `json:"title"`
	Exchange   string `json:"exchange"`
	Date       string `json:"date"`
	Note       string `json:"note"`
	FilingType string `json:"filingType"`
	Section    string `json:"section"`
}

// Filing is one SEC filing reference for a company.
type Filing struct {
	Symbol       string `json:"symbol"`
	CIK          string `json:"cik"`
	CompanyName  string `json:"companyName"`
	FormType     string `json:"formType"`
	FiledDate    string `json:"filedDate"`
	AcceptedDate string `json:"acceptedDate"`
	Link         string `json:"link"`
	FinalLink    string `json:"finalLink"`
}

// UnmarshalJSON also accepts the synonym keys FMP uses on some filing
// routes: filingDate for filedDate, name for companyName, and type for
// formType.
func (f *Filing) UnmarshalJSON(data []byte) error {
	type plain Filing
	aux := struct {
		*plain
		FilingDate string `json:"filingDate"`
		Name       string `json:"name"`
		Type       string `json:"type"`
	}{plain: (*plain)(f)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if f.FiledDate == "" {
		f.FiledDate = aux.FilingDate
	}
	if f.CompanyName == "" {
		f.CompanyName = aux.Name
	}
	if f.FormType == "" {
		f.FormType = aux.Type
	}
	return nil
}
