package order

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"belleza/internal/domain"
)

func TestBuildWhatsAppURL_TargetsMerchantNumber(t *testing.T) {
	req := CheckoutRequest{FirstName: "Aminata", LastName: "Diop", Phone: "771234567"}
	lines := []domain.CartLine{{ProductID: 1, Name: "Savon noir", Price: 2500, Quantity: 2}}

	link := BuildWhatsAppURL("221771234567", "https://belleza.example.com", req, lines, 5000)

	assert.True(t, strings.HasPrefix(link, "https://wa.me/221771234567?text="))
}

func TestBuildWhatsAppURL_MessageContent(t *testing.T) {
	req := CheckoutRequest{
		FirstName: "Aminata",
		LastName:  "Diop",
		Phone:     "771234567",
		Address:   "Dakar, Médina",
	}
	lines := []domain.CartLine{
		{ProductID: 1, Name: "Savon noir", Price: 2500, Quantity: 2},
		{ProductID: 3, Name: "Huile d'argan", Price: 7000, Quantity: 1},
	}

	link := BuildWhatsAppURL("221771234567", "https://belleza.example.com", req, lines, 12000)

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	message := parsed.Query().Get("text")

	assert.Contains(t, message, "*Nouvelle commande Belleza*")
	assert.Contains(t, message, "*Client:* Aminata Diop")
	assert.Contains(t, message, "*Téléphone:* 771234567")
	assert.Contains(t, message, "*Adresse:* Dakar, Médina")
	assert.Contains(t, message, "*Savon noir* (x2)")
	assert.Contains(t, message, "- Prix: 5000 FCFA")
	assert.Contains(t, message, "- Lien du produit: https://belleza.example.com/product/1")
	assert.Contains(t, message, "*Huile d'argan* (x1)")
	assert.Contains(t, message, "*TOTAL: 12000 FCFA*")
	assert.Contains(t, message, "Merci de confirmer la commande")
}

func TestBuildWhatsAppURL_OmitsEmptyAddress(t *testing.T) {
	req := CheckoutRequest{FirstName: "Aminata", LastName: "Diop", Phone: "771234567"}

	link := BuildWhatsAppURL("221771234567", "https://belleza.example.com", req, nil, 0)

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.NotContains(t, parsed.Query().Get("text"), "*Adresse:*")
}

func TestBuildWhatsAppURL_EscapesMessage(t *testing.T) {
	req := CheckoutRequest{FirstName: "Aminata", LastName: "Diop", Phone: "771234567"}
	lines := []domain.CartLine{{ProductID: 1, Name: "Savon & Co", Price: 1000, Quantity: 1}}

	link := BuildWhatsAppURL("221771234567", "https://belleza.example.com", req, lines, 1000)

	// The raw link must stay a single query parameter.
	assert.NotContains(t, link, " ")
	assert.NotContains(t, strings.SplitN(link, "text=", 2)[1], "&")
}
