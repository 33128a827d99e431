package investapi

import (
	"context"
	"net/http"
)

// CompanyInput is the payload for creating or updating a company.
type CompanyInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Sector      string `json:"sector"`
}

// ListCompanies fetches the company catalog. Risk descriptors are decoded
// here so the rest of the client only ever sees structured values.
func (c *Client) ListCompanies(ctx context.Context) ([]Company, error) {
	var wires []companyWire
	if err := c.doJSON(ctx, http.MethodGet, "/company", nil, &wires, false); err != nil {
		return nil, err
	}
	companies := make([]Company, 0, len(wires))
	for _, w := range wires {
		companies = append(companies, w.decode())
	}
	return companies, nil
}

// GetCompany fetches one company by id.
func (c *Client) GetCompany(ctx context.Context, id string) (*Company, error) {
	var w companyWire
	if err := c.doJSON(ctx, http.MethodGet, "/company/"+id, nil, &w, false); err != nil {
		return nil, err
	}
	company := w.decode()
	return &company, nil
}

// CreateCompany registers a new company in the catalog.
func (c *Client) CreateCompany(ctx context.Context, input CompanyInput) (*Company, error) {
	var w companyWire
	if err := c.doJSON(ctx, http.MethodPost, "/company", input, &w, true); err != nil {
		return nil, err
	}
	company := w.decode()
	return &company, nil
}

// UpdateCompany replaces a company's catalog entry.
func (c *Client) UpdateCompany(ctx context.Context, id string, input CompanyInput) (*Company, error) {
	var w companyWire
	if err := c.doJSON(ctx, http.MethodPut, "/company/"+id, input, &w, true); err != nil {
		return nil, err
	}
	company := w.decode()
	return &company, nil
}

// DeleteCompany removes a company from the catalog.
func (c *Client) DeleteCompany(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/company/"+id, nil, nil, true)
}
