package model

// SaleRecord is one committed sale: a ticket number bound to a buyer and
// the seller who registered it. Records are append-only; they are never
// mutated or deleted except by a full ledger reset.
type SaleRecord struct {
	Number     TicketNumber `json:"number"`
	Seller     SellerID     `json:"seller"`
	BuyerName  string       `json:"buyer_name"`
	BuyerDNI   string       `json:"buyer_dni"`
	BuyerPhone string       `json:"buyer_phone"`
}

// Prizes is the prize list announced for the raffle, rendered on the
// ticket flyer by the presentation layer.
var Prizes = []string{
	"1er premio: Televisor 50''",
	"2do premio: Smartphone",
	"3er premio: Bicicleta",
}
