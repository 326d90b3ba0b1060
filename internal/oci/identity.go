package oci

import (
	"context"
	"fmt"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/identity"
)

// Principal is the authenticated user and tenancy, for display.
type Principal struct {
	UserName    string
	UserOCID    string
	TenancyName string
	Region      string
}

// WhoAmI resolves the configured user and tenancy against the identity
// service, which exercises the signing key end to end.
func (c *Client) WhoAmI(ctx context.Context) (*Principal, error) {
	userID, err := c.provider.UserOCID()
	if err != nil {
		return nil, fmt.Errorf("missing user: %w", err)
	}
	tenancyID, err := c.provider.TenancyOCID()
	if err != nil {
		return nil, fmt.Errorf("missing tenancy: %w", err)
	}

	userResp, err := c.identity.GetUser(ctx, identity.GetUserRequest{
		UserId: common.String(userID),
	})
	if err != nil {
		return nil, err
	}

	tenancyResp, err := c.identity.GetTenancy(ctx, identity.GetTenancyRequest{
		TenancyId: common.String(tenancyID),
	})
	if err != nil {
		return nil, err
	}

	principal := &Principal{
		Region: c.Region(),
	}
	if userResp.User.Name != nil {
		principal.UserName = *userResp.User.Name
	}
	if userResp.User.Id != nil {
		principal.UserOCID = *userResp.User.Id
	}
	if tenancyResp.Tenancy.Name != nil {
		principal.TenancyName = *tenancyResp.Tenancy.Name
	}

	return principal, nil
}

// Compartment is the subset of compartment data the CLI shows.
type Compartment struct {
	ID          string
	Name        string
	Description string
}

// ListCompartments returns up to limit direct children of the tenancy.
func (c *Client) ListCompartments(ctx context.Context, limit int) ([]Compartment, error) {
	tenancyID, err := c.provider.TenancyOCID()
	if err != nil {
		return nil, err
	}

	resp, err := c.identity.ListCompartments(ctx, identity.ListCompartmentsRequest{
		CompartmentId: common.String(tenancyID),
		Limit:         common.Int(limit),
	})
	if err != nil {
		return nil, err
	}

	return toCompartments(resp.Items), nil
}

// AccessibleCompartments returns the tenancy root plus every active
// compartment in the subtree the user can access, for interactive
// selection.
func (c *Client) AccessibleCompartments(ctx context.Context) ([]Compartment, error) {
	tenancyID, err := c.provider.TenancyOCID()
	if err != nil {
		return nil, err
	}

	tenancyResp, err := c.identity.GetTenancy(ctx, identity.GetTenancyRequest{
		TenancyId: common.String(tenancyID),
	})
	if err != nil {
		return nil, err
	}

	root := Compartment{ID: tenancyID}
	if tenancyResp.Tenancy.Name != nil {
		root.Name = fmt.Sprintf("%s (root)", *tenancyResp.Tenancy.Name)
	}
	if tenancyResp.Tenancy.Description != nil {
		root.Description = *tenancyResp.Tenancy.Description
	}

	compartments := []Compartment{root}

	resp, err := c.identity.ListCompartments(ctx, identity.ListCompartmentsRequest{
		CompartmentId:          common.String(tenancyID),
		CompartmentIdInSubtree: common.Bool(true),
		AccessLevel:            identity.ListCompartmentsAccessLevelAccessible,
	})
	if err != nil {
		return nil, err
	}

	for _, item := range resp.Items {
		if item.LifecycleState != identity.CompartmentLifecycleStateActive {
			continue
		}
		compartments = append(compartments, toCompartment(item))
	}

	return compartments, nil
}

// GetCompartment resolves a compartment OCID.
func (c *Client) GetCompartment(ctx context.Context, id string) (*Compartment, error) {
	resp, err := c.identity.GetCompartment(ctx, identity.GetCompartmentRequest{
		CompartmentId: common.String(id),
	})
	if err != nil {
		return nil, err
	}

	compartment := toCompartment(resp.Compartment)
	return &compartment, nil
}

// ActiveIdentityDomain returns the display name of the first active
// identity domain, or "" when the tenancy does not use identity domains.
func (c *Client) ActiveIdentityDomain(ctx context.Context) string {
	tenancyID, err := c.provider.TenancyOCID()
	if err != nil {
		return ""
	}

	resp, err := c.identity.ListDomains(ctx, identity.ListDomainsRequest{
		CompartmentId: common.String(tenancyID),
	})
	if err != nil {
		// listing domains fails on tenancies without identity domains
		return ""
	}

	for _, domain := range resp.Items {
		if domain.LifecycleState == identity.DomainLifecycleStateActive && domain.DisplayName != nil {
			return *domain.DisplayName
		}
	}

	return ""
}

func toCompartment(item identity.Compartment) Compartment {
	compartment := Compartment{}
	if item.Id != nil {
		compartment.ID = *item.Id
	}
	if item.Name != nil {
		compartment.Name = *item.Name
	}
	if item.Description != nil {
		compartment.Description = *item.Description
	}
	return compartment
}

func toCompartments(items []identity.Compartment) []Compartment {
	compartments := make([]Compartment, 0, len(items))
	for _, item := range items {
		compartments = append(compartments, toCompartment(item))
	}
	return compartments
}
