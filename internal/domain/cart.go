package domain

// CartLine is a cart entry joined with current catalog data. The cart is
// an eventually-consistent mirror of user intent; the catalog remains
// the authority on price and stock.
type CartLine struct {
	ProductID int
	Name      string
	Price     float64
	ImageURL  string
	Quantity  int
	Stock     int
}

func (l CartLine) LineTotal() float64 {
	return l.Price * float64(l.Quantity)
}

type Cart struct {
	Lines []CartLine
}

func (c Cart) Total() float64 {
	total := 0.0
	for _, l := range c.Lines {
		total += l.LineTotal()
	}
	return total
}

func (c Cart) ItemCount() int {
	count := 0
	for _, l := range c.Lines {
		count += l.Quantity
	}
	return count
}
