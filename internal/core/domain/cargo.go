package domain

import "time"

// PartyStatus is the lifecycle state of a shipment batch.
type PartyStatus string

const (
	PartyCollecting          PartyStatus = "collecting"
	PartyOnTheWay            PartyStatus = "on_the_way"
	PartyOnCustoms           PartyStatus = "on_customs"
	PartyLocalOnTheWay       PartyStatus = "local_on_the_way"
	PartyShipmentOnCustomers PartyStatus = "shipment_on_customers"
)

// PacketStatus is the invoicing state of a packet. The misspelled
// "ReadyToInvocie" value is what the backend emits; it is preserved on the
// wire for compatibility.
type PacketStatus string

const (
	PacketReady          PacketStatus = "Ready"
	PacketReadyToInvoice PacketStatus = "ReadyToInvocie"
)

// Party is a shipment batch grouping multiple packets.
type Party struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Status    PartyStatus `json:"status"`
	PacketQty int         `json:"packet_qty"`
	WeightKg  float64     `json:"weight_kg"`
	CreatedAt time.Time   `json:"created_at"`
}

// Packet is a sub-shipment within a party, containing product line items.
type Packet struct {
	ID         string       `json:"id"`
	PartyID    string       `json:"party_id"`
	ClientCode string       `json:"client_code"`
	Status     PacketStatus `json:"status"`
	WeightKg   float64      `json:"weight_kg"`
	Products   []Product    `json:"products,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
}

// Product is a single line item inside a packet.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Client is a customer record.
type Client struct {
	ID    string `json:"id"`
	Code  string `json:"code"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}
