// Package indexer is a thin HTTP client for the network's indexing
// service (account state, ledger/transaction/operation history, the
// order book, path finding, and fee stats). It never imports the xdr
// package: every XDR-bearing field on a response is left as an opaque
// base64 string for the caller to decode.
package indexer

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/EXCCoin/stellarbase/errs"
	"github.com/EXCCoin/stellarbase/indexer/resource"
)

// Client talks to one indexer deployment over HTTP.
type Client struct {
	HTTP    *http.Client
	BaseURL string
}

// NewClient builds a Client with a conservative default timeout.
func NewClient(baseURL string) *Client {
	return &Client{
		HTTP:    &http.Client{Timeout: 30 * time.Second},
		BaseURL: strings.TrimRight(baseURL, "/"),
	}
}

// CollectionRequest is the common cursor/limit/order paging input
// shared by every history endpoint.
type CollectionRequest struct {
	Cursor string
	Limit  int
	Order  string // "asc" or "desc"
}

func (r CollectionRequest) values() url.Values {
	v := url.Values{}
	if r.Cursor != "" {
		v.Set("cursor", r.Cursor)
	}
	if r.Limit > 0 {
		v.Set("limit", strconv.Itoa(r.Limit))
	}
	if r.Order != "" {
		v.Set("order", r.Order)
	}
	return v
}

// AssetParam identifies one leg of a path-finding or order-book query.
// Role is the query parameter prefix ("source", "destination",
// "selling", "buying", ...).
type AssetParam struct {
	Role   string
	Type   string // "native", "credit_alphanum4", "credit_alphanum12"
	Code   string
	Issuer string
}

func (a AssetParam) addTo(v url.Values) {
	v.Set(a.Role+"_asset_type", a.Type)
	if a.Code != "" {
		v.Set(a.Role+"_asset_code", a.Code)
	}
	if a.Issuer != "" {
		v.Set(a.Role+"_asset_issuer", a.Issuer)
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	u := c.BaseURL + path
	if query != nil && len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return errs.New(errs.ErrIndexerRequest, "building request for %s: %s", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return errs.New(errs.ErrIndexerRequest, "requesting %s: %s", path, err)
	}
	defer resp.Body.Close()
	log.Debugf("GET %s -> %d", path, resp.StatusCode)

	if resp.StatusCode >= 400 {
		var problem resource.SubmitProblem
		body, _ := io.ReadAll(resp.Body)
		_ = json.Unmarshal(body, &problem)
		return errs.New(errs.ErrIndexerResponse, "%s returned %d: %s", path, resp.StatusCode, problem.Title)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.New(errs.ErrIndexerResponse, "decoding %s response: %s", path, err)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, form url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return errs.New(errs.ErrIndexerRequest, "building request for %s: %s", path, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return errs.New(errs.ErrIndexerRequest, "requesting %s: %s", path, err)
	}
	defer resp.Body.Close()
	log.Debugf("POST %s -> %d", path, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errs.New(errs.ErrIndexerResponse, "reading %s response: %s", path, err)
	}

	if resp.StatusCode >= 400 {
		var problem resource.SubmitProblem
		_ = json.Unmarshal(body, &problem)
		return errs.New(errs.ErrIndexerResponse, "%s returned %d: %s", path, resp.StatusCode, problem.Title)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errs.New(errs.ErrIndexerResponse, "decoding %s response: %s", path, err)
	}
	return nil
}

// Account fetches the current ledger state of one account.
func (c *Client) Account(ctx context.Context, accountID string) (resource.Account, error) {
	var out resource.Account
	err := c.get(ctx, "/accounts/"+accountID, nil, &out)
	return out, err
}

// Ledgers lists closed ledgers. With req.Order empty no order
// parameter is sent, so the indexer's own default ordering applies.
func (c *Client) Ledgers(ctx context.Context, req CollectionRequest) (resource.Page[resource.Ledger], error) {
	var out resource.Page[resource.Ledger]
	err := c.get(ctx, "/ledgers", req.values(), &out)
	return out, err
}

// Ledger fetches a single ledger by sequence number.
func (c *Client) Ledger(ctx context.Context, sequence uint32) (resource.Ledger, error) {
	var out resource.Ledger
	err := c.get(ctx, fmt.Sprintf("/ledgers/%d", sequence), nil, &out)
	return out, err
}

// Transactions lists historical transactions across the whole ledger.
func (c *Client) Transactions(ctx context.Context, req CollectionRequest) (resource.Page[resource.Transaction], error) {
	var out resource.Page[resource.Transaction]
	err := c.get(ctx, "/transactions", req.values(), &out)
	return out, err
}

// AccountTransactions lists the transactions touching one account.
func (c *Client) AccountTransactions(ctx context.Context, accountID string, req CollectionRequest) (resource.Page[resource.Transaction], error) {
	var out resource.Page[resource.Transaction]
	err := c.get(ctx, "/accounts/"+accountID+"/transactions", req.values(), &out)
	return out, err
}

// Transaction fetches a single transaction by hash.
func (c *Client) Transaction(ctx context.Context, hash string) (resource.Transaction, error) {
	var out resource.Transaction
	err := c.get(ctx, "/transactions/"+hash, nil, &out)
	return out, err
}

// SubmitTransaction posts a base64 TransactionEnvelope for inclusion.
func (c *Client) SubmitTransaction(ctx context.Context, envelopeXDR string) (resource.Transaction, error) {
	var out resource.Transaction
	form := url.Values{"tx": []string{envelopeXDR}}
	err := c.post(ctx, "/transactions", form, &out)
	return out, err
}

// Payments lists payment-shaped operations across the whole ledger.
func (c *Client) Payments(ctx context.Context, req CollectionRequest) (resource.Page[resource.Payment], error) {
	var out resource.Page[resource.Payment]
	err := c.get(ctx, "/payments", req.values(), &out)
	return out, err
}

// AccountPayments lists the payment-shaped operations touching one account.
func (c *Client) AccountPayments(ctx context.Context, accountID string, req CollectionRequest) (resource.Page[resource.Payment], error) {
	var out resource.Page[resource.Payment]
	err := c.get(ctx, "/accounts/"+accountID+"/payments", req.values(), &out)
	return out, err
}

// Operations lists every operation across the whole ledger.
func (c *Client) Operations(ctx context.Context, req CollectionRequest) (resource.Page[resource.Operation], error) {
	var out resource.Page[resource.Operation]
	err := c.get(ctx, "/operations", req.values(), &out)
	return out, err
}

// TransactionOperations lists the operations of a single transaction.
func (c *Client) TransactionOperations(ctx context.Context, hash string, req CollectionRequest) (resource.Page[resource.Operation], error) {
	var out resource.Page[resource.Operation]
	err := c.get(ctx, "/transactions/"+hash+"/operations", req.values(), &out)
	return out, err
}

// TradesRequest is the input to Trades: paging plus an optional
// narrowing to one offer or one asset pair.
type TradesRequest struct {
	CollectionRequest
	OfferID     string
	BaseAsset   AssetParam
	CounterAsset AssetParam
}

// Trades lists executed trades.
func (c *Client) Trades(ctx context.Context, req TradesRequest) (resource.Page[resource.Trade], error) {
	v := req.values()
	if req.OfferID != "" {
		v.Set("offer_id", req.OfferID)
	}
	if req.BaseAsset.Type != "" {
		req.BaseAsset.Role = "base"
		req.BaseAsset.addTo(v)
	}
	if req.CounterAsset.Type != "" {
		req.CounterAsset.Role = "counter"
		req.CounterAsset.addTo(v)
	}
	var out resource.Page[resource.Trade]
	err := c.get(ctx, "/trades", v, &out)
	return out, err
}

// Offers lists the resting offers of one account.
func (c *Client) Offers(ctx context.Context, accountID string, req CollectionRequest) (resource.Page[resource.Offer], error) {
	var out resource.Page[resource.Offer]
	err := c.get(ctx, "/accounts/"+accountID+"/offers", req.values(), &out)
	return out, err
}

// OrderBook fetches the current bid/ask summary for one asset pair.
func (c *Client) OrderBook(ctx context.Context, selling, buying AssetParam, limit int) (resource.OrderBookSummary, error) {
	v := url.Values{}
	selling.Role = "selling"
	buying.Role = "buying"
	selling.addTo(v)
	buying.addTo(v)
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
	var out resource.OrderBookSummary
	err := c.get(ctx, "/order_book", v, &out)
	return out, err
}

// Assets lists aggregate circulation stats, optionally filtered by
// asset code and/or issuer.
func (c *Client) Assets(ctx context.Context, code, issuer string, req CollectionRequest) (resource.Page[resource.AssetStat], error) {
	v := req.values()
	if code != "" {
		v.Set("asset_code", code)
	}
	if issuer != "" {
		v.Set("asset_issuer", issuer)
	}
	var out resource.Page[resource.AssetStat]
	err := c.get(ctx, "/assets", v, &out)
	return out, err
}

// FeeStats fetches the network's recent per-operation fee distribution.
func (c *Client) FeeStats(ctx context.Context) (resource.FeeStats, error) {
	var out resource.FeeStats
	err := c.get(ctx, "/fee_stats", nil, &out)
	return out, err
}

// FindPathsStrictReceive finds payment paths that deliver an exact
// destination amount.
func (c *Client) FindPathsStrictReceive(ctx context.Context, sourceAccount string, destAsset AssetParam, destAmount string) ([]resource.Path, error) {
	v := url.Values{}
	if sourceAccount != "" {
		v.Set("source_account", sourceAccount)
	}
	destAsset.Role = "destination"
	destAsset.addTo(v)
	v.Set("destination_amount", destAmount)
	var out struct {
		Embedded struct {
			Records []resource.Path `json:"records"`
		} `json:"_embedded"`
	}
	err := c.get(ctx, "/paths/strict-receive", v, &out)
	return out.Embedded.Records, err
}

// FindPathsStrictSend finds payment paths that spend an exact source
// amount.
func (c *Client) FindPathsStrictSend(ctx context.Context, destAccount string, sourceAsset AssetParam, sourceAmount string) ([]resource.Path, error) {
	v := url.Values{}
	if destAccount != "" {
		v.Set("destination_account", destAccount)
	}
	sourceAsset.Role = "source"
	sourceAsset.addTo(v)
	v.Set("source_amount", sourceAmount)
	var out struct {
		Embedded struct {
			Records []resource.Path `json:"records"`
		} `json:"_embedded"`
	}
	err := c.get(ctx, "/paths/strict-send", v, &out)
	return out.Embedded.Records, err
}

// TradeAggregations fetches a bucketed trade time series for one
// asset pair between startTime and endTime (both unix millis).
func (c *Client) TradeAggregations(ctx context.Context, base, counter AssetParam, startTime, endTime, resolution int64) ([]resource.TradeAggregation, error) {
	v := url.Values{}
	base.Role = "base"
	counter.Role = "counter"
	base.addTo(v)
	counter.addTo(v)
	v.Set("start_time", strconv.FormatInt(startTime, 10))
	v.Set("end_time", strconv.FormatInt(endTime, 10))
	v.Set("resolution", strconv.FormatInt(resolution, 10))
	var out struct {
		Embedded struct {
			Records []resource.TradeAggregation `json:"records"`
		} `json:"_embedded"`
	}
	err := c.get(ctx, "/trade_aggregations", v, &out)
	return out.Embedded.Records, err
}

// StreamHandler is invoked once per server-sent event the stream
// delivers, with the raw JSON payload of the "data:" field. Returning
// a non-nil error stops the stream.
type StreamHandler func(data []byte) error

// Stream opens a long-lived GET against path carrying an
// Accept: text/event-stream header, and invokes handler once per
// event. If lastEventID is non-empty, it is sent as Last-Event-Id so
// the server can resume after a reconnect. Stream blocks until ctx is
// canceled, the handler returns an error, or the connection drops.
func (c *Client) Stream(ctx context.Context, path string, query url.Values, lastEventID string, handler StreamHandler) error {
	u := c.BaseURL + path
	if query != nil && len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return errs.New(errs.ErrIndexerRequest, "building stream request for %s: %s", path, err)
	}
	req.Header.Set("Accept", "text/event-stream")
	if lastEventID != "" {
		req.Header.Set("Last-Event-Id", lastEventID)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return errs.New(errs.ErrIndexerRequest, "opening stream %s: %s", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return errs.New(errs.ErrIndexerResponse, "stream %s returned %d", path, resp.StatusCode)
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var data strings.Builder
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case line == "":
			if data.Len() > 0 {
				if err := handler([]byte(data.String())); err != nil {
					return err
				}
				data.Reset()
			}
		case strings.HasPrefix(line, "data:"):
			if data.Len() > 0 {
				data.WriteByte('\n')
			}
			data.WriteString(strings.TrimPrefix(strings.TrimPrefix(line, "data:"), " "))
		case strings.HasPrefix(line, ":"):
			// comment/heartbeat line, ignored
		}
	}
	if err := scanner.Err(); err != nil {
		return errs.New(errs.ErrIndexerResponse, "reading stream %s: %s", path, err)
	}
	return nil
}
