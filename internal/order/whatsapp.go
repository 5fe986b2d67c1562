package order

import (
	"fmt"
	"net/url"
	"strings"

	"belleza/internal/domain"
)

// BuildWhatsAppURL renders the order hand-off message and wraps it in a
// wa.me deep link for the merchant's number.
func BuildWhatsAppURL(merchantPhone, storeBaseURL string, req CheckoutRequest, lines []domain.CartLine, total float64) string {
	message := buildOrderMessage(storeBaseURL, req, lines, total)
	return fmt.Sprintf("https://wa.me/%s?text=%s", merchantPhone, url.QueryEscape(message))
}

func buildOrderMessage(storeBaseURL string, req CheckoutRequest, lines []domain.CartLine, total float64) string {
	var b strings.Builder

	b.WriteString("*Nouvelle commande Belleza*\n")
	b.WriteString(fmt.Sprintf("*Client:* %s %s\n", req.FirstName, req.LastName))
	b.WriteString(fmt.Sprintf("*Téléphone:* %s\n", req.Phone))
	if req.Address != "" {
		b.WriteString(fmt.Sprintf("*Adresse:* %s\n", req.Address))
	}
	b.WriteString("-----------------------------\n\n")
	b.WriteString("*Détails de la commande:*\n\n")

	for _, line := range lines {
		b.WriteString(fmt.Sprintf("*%s* (x%d)\n", line.Name, line.Quantity))
		b.WriteString(fmt.Sprintf("- Prix: %.0f FCFA\n", line.LineTotal()))
		b.WriteString(fmt.Sprintf("- Lien du produit: %s/product/%d\n\n", storeBaseURL, line.ProductID))
	}

	b.WriteString("-----------------------------\n")
	b.WriteString(fmt.Sprintf("*TOTAL: %.0f FCFA*\n\n", total))
	b.WriteString("Merci de confirmer la commande et de me communiquer les modalités de paiement et de livraison.")

	return b.String()
}
