package domain

// SymbolPool is the immutable universe of symbols that workloads are drawn
// from. It is built once at startup and passed explicitly to whoever needs
// it; accessors never hand out the backing slice.
type SymbolPool struct {
	symbols []string
}

// NewDefaultPool returns the built-in 45-symbol catalogue: large-cap
// equities, ETFs, forex pairs, futures/commodities and crypto pairs.
// All entries are realistic short market tickers.
func NewDefaultPool() *SymbolPool {
	return &SymbolPool{symbols: []string{
		// Equities
		"AAPL", "MSFT", "GOOGL", "AMZN", "NVDA",
		"TSLA", "META", "BRK.B", "JPM", "V",
		// ETFs
		"SPY", "QQQ", "IWM", "DIA", "GLD",
		"TLT", "VTI", "EEM", "XLF", "HYG",
		// Forex pairs
		"EURUSD", "GBPUSD", "USDJPY", "USDCHF", "AUDUSD",
		"NZDUSD", "USDCAD", "EURGBP", "EURJPY", "GBPJPY",
		// Futures / commodities
		"ES", "NQ", "CL", "GC", "SI",
		"NG", "ZB", "ZN", "ZC", "ZS",
		// Crypto
		"BTCUSD", "ETHUSD", "SOLUSD", "BNBUSD", "XRPUSD",
	}}
}

// Size returns the number of symbols in the pool.
func (p *SymbolPool) Size() int {
	return len(p.symbols)
}

// At returns the symbol at index i.
func (p *SymbolPool) At(i int) string {
	return p.symbols[i]
}

// Contains reports whether symbol is part of the pool.
func (p *SymbolPool) Contains(symbol string) bool {
	for _, s := range p.symbols {
		if s == symbol {
			return true
		}
	}
	return false
}

// Symbols returns a copy of the catalogue. Callers may mutate the returned
// slice freely without affecting the pool.
func (p *SymbolPool) Symbols() []string {
	out := make([]string, len(p.symbols))
	copy(out, p.symbols)
	return out
}
