package screener

// BouncePct is the percentage recovery of the current price above a
// historical low.
func BouncePct(current, low float64) float64 {
	return (current - low) / low * 100
}

// SetLow attaches a window low to the row and derives the bounce. Rows whose
// symbol had no candles in the window keep nil low/bounce and render as N/A;
// they are shown rather than dropped so the table still covers the full
// filtered universe.
func (r *CoinRow) SetLow(price float64, date string) {
	if price <= 0 {
		return
	}
	bounce := BouncePct(r.Price, price)
	d := date
	r.QuarterLow = &price
	r.LowDate = &d
	r.BouncePct = &bounce
}
