package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// requestTimeout bounds every remote round trip; a hung call surfaces as a
// RemoteError instead of blocking the caller indefinitely.
const requestTimeout = 10 * time.Second

// RemoteError is any transport, protocol or platform-level failure of a
// remote call: non-2xx status, timeout, or a non-empty GraphQL error list.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("remote call failed: status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("remote call failed: %s", e.Message)
}

// Endpoint builds the GraphQL endpoint URL for a shop domain and API version.
func Endpoint(shopDomain, apiVersion string) string {
	return fmt.Sprintf("https://%s/api/%s/graphql.json", shopDomain, apiVersion)
}

// Client is a stateless remote procedure interface to the commerce platform's
// cart and catalog API. It never caches and never mutates local cart state;
// callers hand its payloads to the reconciler.
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
	logger     *log.Logger
}

func New(endpoint, token string, logger *log.Logger) *Client {
	return &Client{
		endpoint:   endpoint,
		token:      token,
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     logger,
	}
}

type gqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type gqlEnvelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func (c *Client) do(ctx context.Context, query string, variables map[string]interface{}, out interface{}) error {
	body, err := json.Marshal(gqlRequest{Query: query, Variables: variables})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Storefront-Access-Token", c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &RemoteError{Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &RemoteError{Status: resp.StatusCode, Message: err.Error()}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RemoteError{Status: resp.StatusCode, Message: string(raw)}
	}

	var envelope gqlEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return &RemoteError{Status: resp.StatusCode, Message: "malformed response: " + err.Error()}
	}
	if len(envelope.Errors) > 0 {
		return &RemoteError{Status: resp.StatusCode, Message: envelope.Errors[0].Message}
	}
	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return &RemoteError{Status: resp.StatusCode, Message: "malformed data: " + err.Error()}
		}
	}
	return nil
}

type mutationResult struct {
	Cart       *CartPayload `json:"cart"`
	UserErrors []struct {
		Message string `json:"message"`
	} `json:"userErrors"`
}

func (r mutationResult) cartOrError() (*CartPayload, error) {
	if len(r.UserErrors) > 0 {
		return nil, &RemoteError{Message: r.UserErrors[0].Message}
	}
	if r.Cart == nil {
		return nil, &RemoteError{Message: "mutation returned no cart"}
	}
	return r.Cart, nil
}

// CreateCart creates a remote cart with a single initial line.
func (c *Client) CreateCart(ctx context.Context, variantID string, quantity int) (*CartPayload, error) {
	var out struct {
		CartCreate mutationResult `json:"cartCreate"`
	}
	vars := map[string]interface{}{
		"input": map[string]interface{}{
			"lines": []map[string]interface{}{
				{"merchandiseId": variantID, "quantity": quantity},
			},
		},
	}
	if err := c.do(ctx, cartCreateMutation, vars, &out); err != nil {
		return nil, err
	}
	return out.CartCreate.cartOrError()
}

// AddLine adds a variant to an existing remote cart.
func (c *Client) AddLine(ctx context.Context, cartID, variantID string, quantity int) (*CartPayload, error) {
	var out struct {
		CartLinesAdd mutationResult `json:"cartLinesAdd"`
	}
	vars := map[string]interface{}{
		"cartId": cartID,
		"lines": []map[string]interface{}{
			{"merchandiseId": variantID, "quantity": quantity},
		},
	}
	if err := c.do(ctx, cartLinesAddMutation, vars, &out); err != nil {
		return nil, err
	}
	return out.CartLinesAdd.cartOrError()
}

// UpdateLine sets the absolute quantity of an existing line.
func (c *Client) UpdateLine(ctx context.Context, cartID, lineID string, quantity int) (*CartPayload, error) {
	var out struct {
		CartLinesUpdate mutationResult `json:"cartLinesUpdate"`
	}
	vars := map[string]interface{}{
		"cartId": cartID,
		"lines": []map[string]interface{}{
			{"id": lineID, "quantity": quantity},
		},
	}
	if err := c.do(ctx, cartLinesUpdateMutation, vars, &out); err != nil {
		return nil, err
	}
	return out.CartLinesUpdate.cartOrError()
}

// RemoveLines removes the given lines from the remote cart.
func (c *Client) RemoveLines(ctx context.Context, cartID string, lineIDs []string) (*CartPayload, error) {
	var out struct {
		CartLinesRemove mutationResult `json:"cartLinesRemove"`
	}
	vars := map[string]interface{}{
		"cartId":  cartID,
		"lineIds": lineIDs,
	}
	if err := c.do(ctx, cartLinesRemoveMutation, vars, &out); err != nil {
		return nil, err
	}
	return out.CartLinesRemove.cartOrError()
}

// FetchCart returns the current remote cart, or (nil, nil) when the cart has
// expired or is unknown upstream. Callers must treat nil as "start a new
// cart", not as a failure.
func (c *Client) FetchCart(ctx context.Context, cartID string) (*CartPayload, error) {
	var out struct {
		Cart *CartPayload `json:"cart"`
	}
	vars := map[string]interface{}{"cartId": cartID}
	if err := c.do(ctx, cartQuery, vars, &out); err != nil {
		return nil, err
	}
	return out.Cart, nil
}

// FetchCatalog returns up to pageSize products from the remote catalog.
func (c *Client) FetchCatalog(ctx context.Context, pageSize int) ([]ProductPayload, error) {
	var out struct {
		Products struct {
			Edges []struct {
				Node ProductPayload `json:"node"`
			} `json:"edges"`
		} `json:"products"`
	}
	vars := map[string]interface{}{"first": pageSize}
	if err := c.do(ctx, productsQuery, vars, &out); err != nil {
		return nil, err
	}
	products := make([]ProductPayload, 0, len(out.Products.Edges))
	for _, edge := range out.Products.Edges {
		products = append(products, edge.Node)
	}
	return products, nil
}
