package reorder

import (
	"errors"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tair/stockwatch/internal/inventory/domain"
)

const whatsAppBaseURL = "https://wa.me/"

// DefaultMessageTemplate is used when no template is configured
const DefaultMessageTemplate = "Halo, saya ingin memesan ulang {name}. Stok kami saat ini sekitar {stock} {unit}. Terima kasih."

var (
	ErrNoSupplierContact  = errors.New("item has no supplier contact")
	ErrInvalidPhoneNumber = errors.New("supplier contact has no digits")
)

// Link is a prepared reorder message for a supplier
type Link struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
	URL     string `json:"url"`
}

// CleanPhoneNumber keeps only digits and '+'
func CleanPhoneNumber(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '+' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatQuantity renders a stock level without float noise, e.g. 0.30000000000000004 -> 0.3
func FormatQuantity(v float64) string {
	return decimal.NewFromFloat(v).Round(3).String()
}

// RenderMessage fills {name}, {stock} and {unit} placeholders
func RenderMessage(template string, item domain.Item) string {
	if template == "" {
		template = DefaultMessageTemplate
	}
	r := strings.NewReplacer(
		"{name}", item.Name,
		"{stock}", FormatQuantity(item.CurrentStock),
		"{unit}", item.Unit,
	)
	return r.Replace(template)
}

// BuildWhatsAppLink builds a wa.me deep link carrying a reorder message for the item's supplier
func BuildWhatsAppLink(item domain.Item, template string) (*Link, error) {
	if !item.HasSupplierContact() {
		return nil, ErrNoSupplierContact
	}

	phone := CleanPhoneNumber(*item.SupplierWhatsapp)
	if strings.Trim(phone, "+") == "" {
		return nil, ErrInvalidPhoneNumber
	}

	message := RenderMessage(template, item)
	// wa.me expects %20 for spaces, QueryEscape yields '+'
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")

	return &Link{
		Phone:   phone,
		Message: message,
		URL:     whatsAppBaseURL + phone + "?text=" + encoded,
	}, nil
}
