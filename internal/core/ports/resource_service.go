package ports

import (
	"context"

	"github.com/cargopanel/dashboard-gateway/internal/core/domain"
)

// ListInput carries the query parameters shared by all list endpoints.
// Zero values mean "not set" and are omitted from the upstream query string.
type ListInput struct {
	Search string
	Status string
	Page   int // 1-based; 0 = backend default
	Limit  int
}

// PartyList is one page of parties plus paging totals from the backend.
type PartyList struct {
	Items      []domain.Party `json:"items"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"total_pages"`
}

type PacketList struct {
	Items      []domain.Packet `json:"items"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
}

type ProductList struct {
	Items      []domain.Product `json:"items"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
}

type ClientList struct {
	Items      []domain.Client `json:"items"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
}

// PartyInput carries the fields for creating or updating a party.
type PartyInput struct {
	Name   string             `json:"name"`
	Status domain.PartyStatus `json:"status"`
}

// ResourceService exposes the cargo backend's resources through the cached
// fetch layer. Reads are deduplicated and cached; mutations pass through and
// invalidate the affected resource's cache keys.
type ResourceService interface {
	ListParties(ctx context.Context, in ListInput) (*PartyList, error)
	GetParty(ctx context.Context, id string) (*domain.Party, error)
	CreateParty(ctx context.Context, in PartyInput) (*domain.Party, error)
	UpdateParty(ctx context.Context, id string, in PartyInput) (*domain.Party, error)
	DeleteParty(ctx context.Context, id string) error

	ListPackets(ctx context.Context, in ListInput) (*PacketList, error)
	GetPacket(ctx context.Context, id string) (*domain.Packet, error)
	UpdatePacketStatus(ctx context.Context, id string, status domain.PacketStatus) error

	ListProducts(ctx context.Context, in ListInput) (*ProductList, error)
	ListClients(ctx context.Context, in ListInput) (*ClientList, error)
}
