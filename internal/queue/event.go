// Package queue defines message payloads exchanged over the message broker.
package queue

import (
	"fmt"
	"strings"
	"time"

	"github.com/rifadigital/raffle/internal/model"
)

// SaleCommittedEvent is published after a sale lands in the ledger. It
// carries everything the notification side needs to greet the buyer and
// open a WhatsApp conversation without reading the ledger itself.
type SaleCommittedEvent struct {
	Number       model.TicketNumber `json:"number"`
	Seller       model.SellerID     `json:"seller"`
	SellerName   string             `json:"seller_name"`
	BuyerName    string             `json:"buyer_name"`
	BuyerDNI     string             `json:"buyer_dni"`
	Phone        string             `json:"phone"` // normalized, country-code prefixed
	WhatsAppLink string             `json:"whatsapp_link"`
	CommittedAt  string             `json:"committed_at"`
}

// NewSaleCommitted builds the event for a committed record. The phone on
// the record is already in canonical form.
func NewSaleCommitted(rec model.SaleRecord) SaleCommittedEvent {
	msg := fmt.Sprintf("Hola %s, compraste el número %s de la rifa 🎟️", rec.BuyerName, rec.Number)
	return SaleCommittedEvent{
		Number:       rec.Number,
		Seller:       rec.Seller,
		SellerName:   rec.Seller.DisplayName(),
		BuyerName:    rec.BuyerName,
		BuyerDNI:     rec.BuyerDNI,
		Phone:        rec.BuyerPhone,
		WhatsAppLink: fmt.Sprintf("https://wa.me/%s?text=%s", rec.BuyerPhone, strings.ReplaceAll(msg, " ", "%20")),
		CommittedAt:  time.Now().UTC().Format(time.RFC3339),
	}
}
