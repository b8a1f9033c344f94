package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/comforty/storefront/internal"
	"github.com/comforty/storefront/internal/domain"
)

// Document projections used against the content backend. Image assets are
// dereferenced to URLs in the projection so most consumers never see a raw
// asset pointer.
const (
	listProductsQuery = `*[_type == "products"]{_id,title,price,discount,priceWithoutDiscount,badge,inventory,tags,description,"image":image.asset->url}`
	getProductQuery   = `*[_type == "products" && _id == $productId][0]{_id,title,price,discount,priceWithoutDiscount,badge,inventory,tags,description,"image":image.asset->url}`
)

// Client reads product documents from the headless content backend through
// its generic document-query API. It implements domain.Catalog and performs
// no mutations.
type Client struct {
	httpClient *http.Client
	baseURL    string // e.g. "https://<project>.apicdn.backend.example/v2023-01-01"
	dataset    string
	projectID  string
	token      string
	cdnBaseURL string // image CDN root, e.g. "https://cdn.backend.example/images"
}

// NewClient creates a catalog client from the content backend configuration.
func NewClient(cfg internal.ContentConfig) *Client {
	host := "api.sanity.io"
	if cfg.UseCDN {
		host = "apicdn.sanity.io"
	}

	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    fmt.Sprintf("https://%s.%s/v%s", cfg.ProjectID, host, cfg.APIVersion),
		dataset:    cfg.Dataset,
		projectID:  cfg.ProjectID,
		token:      cfg.Token,
		cdnBaseURL: "https://cdn.sanity.io/images",
	}
}

// ListProducts returns every product document.
func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.query(ctx, listProductsQuery, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct returns the product with the given identifier.
func (c *Client) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	var product *domain.Product
	params := map[string]interface{}{"productId": id}
	if err := c.query(ctx, getProductQuery, params, &product); err != nil {
		return nil, err
	}
	if product == nil || product.ID == "" {
		return nil, domain.NotFound("catalog.get", "product", id)
	}
	return product, nil
}

// ImageURL builds a fetchable CDN URL from a raw asset reference of the form
// "image-<assetID>-<dims>-<format>". Returns "" for references it cannot
// parse.
func (c *Client) ImageURL(assetID string) string {
	rest, ok := strings.CutPrefix(assetID, "image-")
	if !ok {
		return ""
	}
	i := strings.LastIndex(rest, "-")
	if i <= 0 || i == len(rest)-1 {
		return ""
	}
	// rest[:i] is "<assetID>-<dims>", rest[i+1:] is the file format
	return fmt.Sprintf("%s/%s/%s/%s.%s", c.cdnBaseURL, c.projectID, c.dataset, rest[:i], rest[i+1:])
}

// queryResponse is the document-query API envelope.
type queryResponse struct {
	Result json.RawMessage `json:"result"`
}

// query runs a GROQ query with optional $-params and decodes the result.
func (c *Client) query(ctx context.Context, groq string, params map[string]interface{}, out interface{}) error {
	values := url.Values{}
	values.Set("query", groq)
	for name, value := range params {
		encoded, err := json.Marshal(value)
		if err != nil {
			return domain.Internal(err, "catalog.query", "failed to encode query parameter")
		}
		values.Set("$"+name, string(encoded))
	}

	endpoint := fmt.Sprintf("%s/data/query/%s?%s", c.baseURL, c.dataset, values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.Internal(err, "catalog.query", "failed to build query request")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.WrapError(err, domain.EUNAVAILABLE, "catalog.query", "Product catalog is unavailable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.Errorf(domain.EUNAVAILABLE, "catalog.query",
			"Product catalog returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var envelope queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return domain.WrapError(err, domain.EUNAVAILABLE, "catalog.query", "Product catalog returned a malformed response")
	}

	if len(envelope.Result) == 0 || string(envelope.Result) == "null" {
		return nil
	}

	if err := json.Unmarshal(envelope.Result, out); err != nil {
		return domain.WrapError(err, domain.EUNAVAILABLE, "catalog.query", "Product catalog returned unexpected documents")
	}

	return nil
}
