package storefront

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestCreateCartSendsTokenAndVariables(t *testing.T) {
	var gotToken string
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("X-Storefront-Access-Token")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
			return
		}
		w.Write([]byte(`{"data":{"cartCreate":{"cart":{"id":"cart-1","checkoutUrl":"https://shop/checkout","cost":{"totalAmount":{"amount":"19.99","currencyCode":"USD"}}},"userErrors":[]}}}`))
	}))
	defer srv.Close()

	client := New(srv.URL, "tok-123", testLogger())
	payload, err := client.CreateCart(context.Background(), "gid://variant/1", 2)
	if err != nil {
		t.Fatalf("CreateCart: %v", err)
	}
	if gotToken != "tok-123" {
		t.Fatalf("expected access token header, got %q", gotToken)
	}
	if payload.ID != "cart-1" || payload.CheckoutURL != "https://shop/checkout" {
		t.Fatalf("unexpected payload %+v", payload)
	}
	if gotBody["query"] == "" {
		t.Fatalf("expected query in request body")
	}
	vars := gotBody["variables"].(map[string]interface{})
	input := vars["input"].(map[string]interface{})
	lines := input["lines"].([]interface{})
	line := lines[0].(map[string]interface{})
	if line["merchandiseId"] != "gid://variant/1" || line["quantity"] != float64(2) {
		t.Fatalf("unexpected line variables %+v", line)
	}
}

func TestDoSurfacesGraphQLErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"data":null,"errors":[{"message":"invalid variant"},{"message":"second"}]}`))
	}))
	defer srv.Close()

	client := New(srv.URL, "tok", testLogger())
	_, err := client.FetchCart(context.Background(), "cart-1")
	var remoteErr *RemoteError
	if !errors.As(err, &remoteErr) {
		t.Fatalf("expected RemoteError, got %v", err)
	}
	if remoteErr.Message != "invalid variant" {
		t.Fatalf("expected first error message surfaced, got %q", remoteErr.Message)
	}
}

func TestDoSurfacesTransportStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := New(srv.URL, "tok", testLogger())
	_, err := client.FetchCart(context.Background(), "cart-1")
	var remoteErr *RemoteError
	if !errors.As(err, &remoteErr) {
		t.Fatalf("expected RemoteError, got %v", err)
	}
	if remoteErr.Status != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", remoteErr.Status)
	}
}

func TestMutationUserErrorsBecomeRemoteErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"data":{"cartLinesAdd":{"cart":null,"userErrors":[{"field":"quantity","message":"quantity too large"}]}}}`))
	}))
	defer srv.Close()

	client := New(srv.URL, "tok", testLogger())
	_, err := client.AddLine(context.Background(), "cart-1", "variant-1", 999)
	var remoteErr *RemoteError
	if !errors.As(err, &remoteErr) {
		t.Fatalf("expected RemoteError, got %v", err)
	}
	if remoteErr.Message != "quantity too large" {
		t.Fatalf("unexpected message %q", remoteErr.Message)
	}
}

func TestFetchCartExpiredReturnsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"data":{"cart":null}}`))
	}))
	defer srv.Close()

	client := New(srv.URL, "tok", testLogger())
	payload, err := client.FetchCart(context.Background(), "cart-gone")
	if err != nil {
		t.Fatalf("FetchCart: %v", err)
	}
	if payload != nil {
		t.Fatalf("expected nil payload for expired cart, got %+v", payload)
	}
}

func TestCartQueryRequestsAvailabilityFields(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request: %v", err)
			return
		}
		gotQuery, _ = body["query"].(string)
		w.Write([]byte(`{"data":{"cart":{"id":"cart-1","lines":{"edges":[
			{"node":{"id":"line-1","quantity":1,"merchandise":{
				"id":"variant-1",
				"availableForSale":false,
				"inventoryManagement":"shopify",
				"inventoryPolicy":"DENY",
				"price":{"amount":"5.00","currencyCode":"USD"},
				"product":{"title":"Mug"}
			}}}
		]}}}}`))
	}))
	defer srv.Close()

	client := New(srv.URL, "tok", testLogger())
	payload, err := client.FetchCart(context.Background(), "cart-1")
	if err != nil {
		t.Fatalf("FetchCart: %v", err)
	}

	// The availability decision needs the raw inventory fields; a query that
	// never asks for them makes every variant look untracked.
	for _, field := range []string{"availableForSale", "inventoryManagement", "inventoryPolicy", "quantityAvailable"} {
		if !strings.Contains(gotQuery, field) {
			t.Errorf("cart query does not request %s", field)
		}
	}

	merch := payload.Lines.Edges[0].Node.Merchandise
	if merch.InventoryManagement != "shopify" || merch.InventoryPolicy != "DENY" {
		t.Fatalf("expected inventory fields decoded, got %+v", merch)
	}
	if merch.AvailableForSale == nil || *merch.AvailableForSale {
		t.Fatalf("expected availableForSale=false decoded, got %+v", merch.AvailableForSale)
	}
}

func TestProductsQueryRequestsAvailabilityFields(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request: %v", err)
			return
		}
		gotQuery, _ = body["query"].(string)
		w.Write([]byte(`{"data":{"products":{"edges":[]}}}`))
	}))
	defer srv.Close()

	client := New(srv.URL, "tok", testLogger())
	if _, err := client.FetchCatalog(context.Background(), 5); err != nil {
		t.Fatalf("FetchCatalog: %v", err)
	}
	for _, field := range []string{"availableForSale", "inventoryManagement", "inventoryPolicy", "quantityAvailable"} {
		if !strings.Contains(gotQuery, field) {
			t.Errorf("products query does not request %s", field)
		}
	}
}

func TestFetchCatalogFlattensEdges(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"data":{"products":{"edges":[
			{"node":{"id":"p1","handle":"tee","title":"Tee"}},
			{"node":{"id":"p2","handle":"mug","title":"Mug"}}
		]}}}`))
	}))
	defer srv.Close()

	client := New(srv.URL, "tok", testLogger())
	products, err := client.FetchCatalog(context.Background(), 10)
	if err != nil {
		t.Fatalf("FetchCatalog: %v", err)
	}
	if len(products) != 2 || products[0].Handle != "tee" || products[1].ID != "p2" {
		t.Fatalf("unexpected products %+v", products)
	}
}
