package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/salonhub/salon-client/internal/core/domain"
)

// CreateBusiness provisions a tenant together with its owner account. The
// response carries a one-time temporary password for the owner.
func (c *Client) CreateBusiness(ctx context.Context, req domain.BusinessRequest) (*domain.BusinessWithOwnerResponse, error) {
	if err := c.checkRequest(req); err != nil {
		return nil, err
	}
	data, err := c.authed.Post(ctx, "admin/businesses", req)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.BusinessWithOwnerResponse](data)
}

func (c *Client) GetAllBusinesses(ctx context.Context) ([]domain.BusinessResponse, error) {
	data, err := c.authed.Get(ctx, "admin/businesses")
	if err != nil {
		return nil, err
	}
	return decodeList[domain.BusinessResponse](data)
}

func (c *Client) GetBusinessBySlug(ctx context.Context, slug string) (*domain.BusinessResponse, error) {
	data, err := c.authed.Get(ctx, fmt.Sprintf("admin/businesses/%s", url.PathEscape(slug)))
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.BusinessResponse](data)
}

// UpdateBusinessStatus toggles a tenant. active travels in the query string,
// not the body; that is the backend's contract.
func (c *Client) UpdateBusinessStatus(ctx context.Context, id int64, active bool) (*domain.BusinessResponse, error) {
	data, err := c.authed.Patch(ctx, fmt.Sprintf("admin/businesses/%d/status?active=%t", id, active), nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.BusinessResponse](data)
}
