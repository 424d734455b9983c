// Package fundamental provides typed access to FMP's financial
// statement endpoints: income statements, balance sheets, and cash flow
// statements, annual or quarterly.
package fundamental
