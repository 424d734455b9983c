// Package bulk provides typed access to FMP's CSV-bodied bulk download
// endpoints: whole-universe company profiles and batch end-of-day
// prices.
package bulk
