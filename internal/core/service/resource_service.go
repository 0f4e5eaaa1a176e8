package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/cargopanel/dashboard-gateway/internal/core/domain"
	"github.com/cargopanel/dashboard-gateway/internal/core/ports"
	"github.com/cargopanel/dashboard-gateway/internal/fetch"
	"github.com/cargopanel/dashboard-gateway/internal/gateway"
)

// ResourceService serves the dashboard's resource reads through the cached
// fetch layer and passes mutations straight through the gateway, invalidating
// the touched resource's cache keys afterwards.
type ResourceService struct {
	fetcher *fetch.Fetcher
	client  fetch.Doer
	log     zerolog.Logger
}

func NewResourceService(fetcher *fetch.Fetcher, client fetch.Doer, log zerolog.Logger) *ResourceService {
	return &ResourceService{fetcher: fetcher, client: client, log: log}
}

// listParams drops unset values entirely so they never reach the upstream
// query string.
func listParams(in ports.ListInput) map[string]any {
	params := map[string]any{"search": nil, "status": nil, "page": nil, "limit": nil}
	if in.Search != "" {
		params["search"] = in.Search
	}
	if in.Status != "" {
		params["status"] = in.Status
	}
	if in.Page > 0 {
		params["page"] = in.Page
	}
	if in.Limit > 0 {
		params["limit"] = in.Limit
	}
	return params
}

// mapStatusErr folds upstream 404s into the domain error; everything else
// passes through unmodified.
func mapStatusErr(err error) error {
	var se *gateway.StatusError
	if errors.As(err, &se) && se.StatusCode == http.StatusNotFound {
		return domain.ErrNotFound
	}
	return err
}

func decodeInto[T any](body []byte) (any, error) {
	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, fmt.Errorf("decode upstream response: %w", err)
	}
	return &v, nil
}

func (s *ResourceService) list(ctx context.Context, resource string, in ports.ListInput, transform func([]byte) (any, error)) (any, error) {
	data, err := s.fetcher.Fetch(ctx, fetch.Request{
		// Every dimension of the upstream query is part of the key: lists
		// differing in any filter or paging value are distinct cache entries.
		Key:       fetch.Key{resource, in.Search, in.Status, in.Page, in.Limit},
		Endpoint:  "/" + resource,
		Params:    listParams(in),
		Transform: transform,
	})
	if err != nil {
		return nil, mapStatusErr(err)
	}
	return data, nil
}

func (s *ResourceService) ListParties(ctx context.Context, in ports.ListInput) (*ports.PartyList, error) {
	data, err := s.list(ctx, "parties", in, decodeInto[ports.PartyList])
	if err != nil {
		return nil, err
	}
	return data.(*ports.PartyList), nil
}

func (s *ResourceService) GetParty(ctx context.Context, id string) (*domain.Party, error) {
	data, err := s.fetcher.Fetch(ctx, fetch.Request{
		Key:       fetch.Key{"parties", "detail", id},
		Endpoint:  "/parties/" + id,
		Transform: decodeInto[domain.Party],
	})
	if err != nil {
		return nil, mapStatusErr(err)
	}
	return data.(*domain.Party), nil
}

func (s *ResourceService) CreateParty(ctx context.Context, in ports.PartyInput) (*domain.Party, error) {
	return s.writeParty(ctx, http.MethodPost, "/parties", in)
}

func (s *ResourceService) UpdateParty(ctx context.Context, id string, in ports.PartyInput) (*domain.Party, error) {
	return s.writeParty(ctx, http.MethodPut, "/parties/"+id, in)
}

func (s *ResourceService) writeParty(ctx context.Context, method, endpoint string, in ports.PartyInput) (*domain.Party, error) {
	payload, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(ctx, method, endpoint, nil, bytes.NewReader(payload))
	if err != nil {
		return nil, mapStatusErr(err)
	}

	var party domain.Party
	if err := json.Unmarshal(resp.Body, &party); err != nil {
		return nil, fmt.Errorf("decode party: %w", err)
	}
	s.fetcher.Cache().InvalidatePrefix(fetch.Key{"parties"})
	return &party, nil
}

func (s *ResourceService) DeleteParty(ctx context.Context, id string) error {
	if _, err := s.client.Do(ctx, http.MethodDelete, "/parties/"+id, nil, nil); err != nil {
		return mapStatusErr(err)
	}
	s.fetcher.Cache().InvalidatePrefix(fetch.Key{"parties"})
	return nil
}

func (s *ResourceService) ListPackets(ctx context.Context, in ports.ListInput) (*ports.PacketList, error) {
	data, err := s.list(ctx, "packets", in, decodeInto[ports.PacketList])
	if err != nil {
		return nil, err
	}
	return data.(*ports.PacketList), nil
}

func (s *ResourceService) GetPacket(ctx context.Context, id string) (*domain.Packet, error) {
	data, err := s.fetcher.Fetch(ctx, fetch.Request{
		Key:       fetch.Key{"packets", "view", id},
		Endpoint:  "/packets/" + id,
		Transform: decodeInto[domain.Packet],
	})
	if err != nil {
		return nil, mapStatusErr(err)
	}
	return data.(*domain.Packet), nil
}

func (s *ResourceService) UpdatePacketStatus(ctx context.Context, id string, status domain.PacketStatus) error {
	payload, err := json.Marshal(map[string]domain.PacketStatus{"status": status})
	if err != nil {
		return err
	}
	if _, err := s.client.Do(ctx, http.MethodPut, "/packets/"+id+"/status", nil, bytes.NewReader(payload)); err != nil {
		return mapStatusErr(err)
	}
	s.fetcher.Cache().InvalidatePrefix(fetch.Key{"packets"})
	return nil
}

func (s *ResourceService) ListProducts(ctx context.Context, in ports.ListInput) (*ports.ProductList, error) {
	data, err := s.list(ctx, "products", in, decodeInto[ports.ProductList])
	if err != nil {
		return nil, err
	}
	return data.(*ports.ProductList), nil
}

func (s *ResourceService) ListClients(ctx context.Context, in ports.ListInput) (*ports.ClientList, error) {
	data, err := s.list(ctx, "clients", in, decodeInto[ports.ClientList])
	if err != nil {
		return nil, err
	}
	return data.(*ports.ClientList), nil
}

var _ ports.ResourceService = (*ResourceService)(nil)
