package domain

import (
	"strconv"
	"strings"
	"time"

	cartdomain "github.com/forsage-shop/storefront/internal/cart/domain"
)

// Order captures a submitted cart together with the shopper's contact details.
// Orders are not persisted anywhere; the struct exists to feed the relay
// submission and the event stream.
type Order struct {
	ID        string
	FullName  string
	Phone     string
	Address   string
	Lines     []cartdomain.Line
	Total     float64
	CreatedAt time.Time
}

func NewOrder(id, fullName, phone, address string, cart cartdomain.Cart) Order {
	return Order{
		ID:        id,
		FullName:  fullName,
		Phone:     phone,
		Address:   address,
		Lines:     cart.Lines,
		Total:     cart.Total(),
		CreatedAt: time.Now().UTC(),
	}
}

// Summary renders the human-readable order text sent through the form relay:
//
//	Sum: <total> <currency>.
//	Order contents:
//	<name> (ID: <id>) - <quantity>pcs. x <price><currency>
//
// with one line per cart line.
func Summary(cart cartdomain.Cart, currency string) string {
	var b strings.Builder
	b.WriteString("Sum: ")
	b.WriteString(formatAmount(cart.Total()))
	b.WriteString(" ")
	b.WriteString(currency)
	b.WriteString(".\nOrder contents:\n")

	lines := make([]string, 0, len(cart.Lines))
	for _, l := range cart.Lines {
		lines = append(lines, l.Name+" (ID: "+l.ID+") - "+strconv.Itoa(l.Quantity)+"pcs. x "+formatAmount(l.Price)+currency)
	}
	b.WriteString(strings.Join(lines, "\n"))
	return b.String()
}

// formatAmount prints prices without trailing zeros, so whole-unit prices stay
// whole (100, not 100.00) and fractional ones keep their fraction (99.5).
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
