// Package presenter holds the view-models behind the booking forms: each
// form owns its pricing input, recomputes the price on every change and
// renders it for display.
package presenter

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/light-bringer/lingua-booking/internal/app/booking/domain"
)

// Formatter renders prices and dates for one locale.
type Formatter struct {
	printer  *message.Printer
	currency string
	layout   string
}

// NewFormatter creates a Formatter for tag. Russian gets "1 234 ₽" and
// dd.mm.yyyy dates; other locales get their own digit grouping.
func NewFormatter(tag language.Tag) *Formatter {
	layout := time.DateOnly
	if base, _ := tag.Base(); base.String() == "ru" {
		layout = "02.01.2006"
	}
	return &Formatter{
		printer:  message.NewPrinter(tag),
		currency: "₽",
		layout:   layout,
	}
}

// Price formats a whole amount with locale digit grouping.
func (f *Formatter) Price(amount int64) string {
	return f.printer.Sprintf("%d %s", amount, f.currency)
}

// Result formats a pricing outcome, falling back to the placeholder when
// there is no price. It never renders 0 for a missing price.
func (f *Formatter) Result(res *domain.PricingResult, err error) string {
	if err != nil || res == nil {
		return domain.PricePlaceholder
	}
	return f.Price(res.TotalPrice)
}

// Date formats a calendar date.
func (f *Formatter) Date(t time.Time) string {
	if t.IsZero() {
		return domain.PricePlaceholder
	}
	return t.Format(f.layout)
}
