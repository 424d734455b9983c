// Package company provides typed access to FMP's company information
// endpoints: profiles, symbol search, executives, employee history,
// financial notes, and SEC filings.
package company
