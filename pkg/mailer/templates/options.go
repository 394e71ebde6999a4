package templates

import (
	"fmt"
	"time"
)

// Option pattern
type Option func(*EmailData)

func WithTime(t time.Time) Option {
	return func(d *EmailData) {
		utc := t.UTC()
		d.TimeAt = utc
		d.Time = utc.Format("02 January 2006, 15:04")
	}
}

func WithOrder(orderID string, items int, total float64) Option {
	return func(d *EmailData) {
		d.OrderID = orderID
		d.ItemCount = items
		d.Total = total
		d.TotalText = fmt.Sprintf("%.2f", total)
	}
}

// Brand carries the company fields shared by every mail.
type Brand struct {
	CompanyName   string
	AppName       string
	StorefrontURL string
}

// NewEmailData fills the common fields then applies opts.
func NewEmailData(b Brand, email string, opts ...Option) EmailData {
	d := EmailData{
		Email:         email,
		CompanyName:   b.CompanyName,
		AppName:       b.AppName,
		StorefrontURL: b.StorefrontURL,
	}
	for _, o := range opts {
		o(&d)
	}
	return d
}
