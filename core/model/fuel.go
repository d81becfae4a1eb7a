package model

// FuelPrices holds regional pump prices in currency per liter.
type FuelPrices struct {
	Gasoline float64 `json:"gasoline"`
	Diesel   float64 `json:"diesel"`
}

// PriceFor returns the price applicable to the given engine type.
func (p FuelPrices) PriceFor(e EngineType) float64 {
	if e.UsesDiesel() {
		return p.Diesel
	}
	return p.Gasoline
}
