// Package market provides typed access to FMP's market data endpoints:
// real-time quotes, daily and intraday price history, and market movers.
package market
