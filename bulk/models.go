package bulk

// Profile is one row of the bulk company profile download.
type Profile struct {
	Symbol    string  `json:"symbol"`
	Name      string  `json:"companyName"`
	Exchange  string  `json:"exchange"`
	Industry  string  `json:"industry"`
	Sector    string  `json:"sector"`
	Country   string  `json:"country"`
	MarketCap float64 `json:"marketCap"`
	Price     float64 `json:"price"`
	Currency  string  `json:"currency"`
	IsETF     bool    `json:"isEtf"`
	Employees *int64  `json:"fullTimeEmployees"`
}

// EODPrice is one row of the batch end-of-day price download.
type EODPrice struct {
	Symbol   string  `json:"symbol"`
	Date     string  `json:"date"`
	Open     float64 `json:"open"`
	High     float64 `json:"high"`
	Low      float64 `json:"low"`
	Close    float64 `json:"close"`
	AdjClose float64 `json:"adjClose"`
	Volume   int64   `json:"volume"`
}
