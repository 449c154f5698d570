package indexer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EXCCoin/stellarbase/indexer/resource"
)

func TestClientAccount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts/GABC", r.URL.Path)
		_ = json.NewEncoder(w).Encode(resource.Account{AccountID: "GABC", SequenceNumber: "1"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	acc, err := c.Account(context.Background(), "GABC")
	require.NoError(t, err)
	assert.Equal(t, "GABC", acc.AccountID)
	assert.Equal(t, "1", acc.SequenceNumber)
}

func TestClientPropagatesErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(resource.SubmitProblem{Title: "Resource Missing"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Account(context.Background(), "GMISSING")
	require.Error(t, err)
}

func TestClientLedgersAppliesPaging(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "10", r.URL.Query().Get("cursor"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		assert.Equal(t, "desc", r.URL.Query().Get("order"))
		var page resource.Page[resource.Ledger]
		page.Embedded.Records = []resource.Ledger{{Sequence: 42}}
		_ = json.NewEncoder(w).Encode(page)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	page, err := c.Ledgers(context.Background(), CollectionRequest{Cursor: "10", Limit: 5, Order: "desc"})
	require.NoError(t, err)
	require.Len(t, page.Embedded.Records, 1)
	assert.Equal(t, uint32(42), page.Embedded.Records[0].Sequence)
}

func TestAssetParamAddsThreeQueryKeys(t *testing.T) {
	v := url.Values{}
	a := AssetParam{Role: "selling", Type: "credit_alphanum4", Code: "USD", Issuer: "GISSUER"}
	a.addTo(v)
	assert.Equal(t, "credit_alphanum4", v.Get("selling_asset_type"))
	assert.Equal(t, "USD", v.Get("selling_asset_code"))
	assert.Equal(t, "GISSUER", v.Get("selling_asset_issuer"))
}

func TestStreamDeliversEvents(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "text/event-stream", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "text/event-stream")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("data: {\"id\":\"1\"}\n\n"))
		_, _ = w.Write([]byte("data: {\"id\":\"2\"}\n\n"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	var got []string
	err := c.Stream(context.Background(), "/transactions", nil, "", func(data []byte) error {
		got = append(got, string(data))
		return nil
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.JSONEq(t, `{"id":"1"}`, got[0])
	assert.JSONEq(t, `{"id":"2"}`, got[1])
}
