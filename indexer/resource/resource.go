// Package resource holds the JSON resource shapes returned by the
// indexer's HTTP API. Every XDR-bearing field is left as an opaque
// base64 string; decoding it into an xdr type is left to the caller
// via xdr.UnmarshalBase64.
package resource

// Links is the embedded "_links" paging/navigation map carried on
// every collection page and most single-resource responses.
type Links struct {
	Self Link `json:"self"`
	Next Link `json:"next"`
	Prev Link `json:"prev"`
}

// Link is a single HATEOAS-style hyperlink.
type Link struct {
	Href      string `json:"href"`
	Templated bool   `json:"templated,omitempty"`
}

// Page wraps a collection response's "_embedded.records" envelope.
type Page[T any] struct {
	Links    Links `json:"_links"`
	Embedded struct {
		Records []T `json:"records"`
	} `json:"_embedded"`
}

// Account is a single account's ledger state.
type Account struct {
	Links               Links        `json:"_links"`
	ID                  string       `json:"id"`
	AccountID           string       `json:"account_id"`
	SequenceNumber      string       `json:"sequence"`
	SubentryCount       int32        `json:"subentry_count"`
	HomeDomain          string       `json:"home_domain,omitempty"`
	LastModifiedLedger  uint32       `json:"last_modified_ledger"`
	Thresholds          Thresholds   `json:"thresholds"`
	Flags               AccountFlags `json:"flags"`
	Balances            []Balance    `json:"balances"`
	Signers             []Signer     `json:"signers"`
	Data                map[string]string `json:"data"`
}

// Thresholds holds an account's signing threshold weights.
type Thresholds struct {
	LowThreshold  byte `json:"low_threshold"`
	MedThreshold  byte `json:"med_threshold"`
	HighThreshold byte `json:"high_threshold"`
}

// AccountFlags holds an account's auth control flags.
type AccountFlags struct {
	AuthRequired  bool `json:"auth_required"`
	AuthRevocable bool `json:"auth_revocable"`
	AuthImmutable bool `json:"auth_immutable"`
	AuthClawback  bool `json:"auth_clawback_enabled"`
}

// Balance is one line item of an account's balances array, either the
// native balance or a single trustline.
type Balance struct {
	Balance            string `json:"balance"`
	Limit              string `json:"limit,omitempty"`
	AssetType          string `json:"asset_type"`
	AssetCode          string `json:"asset_code,omitempty"`
	AssetIssuer        string `json:"asset_issuer,omitempty"`
	LastModifiedLedger uint32 `json:"last_modified_ledger"`
}

// Signer is one entry of an account's signers array.
type Signer struct {
	Weight int32  `json:"weight"`
	Key    string `json:"key"`
	Type   string `json:"type"`
}

// Ledger is a single closed ledger's header fields.
type Ledger struct {
	Links            Links  `json:"_links"`
	ID               string `json:"id"`
	Hash             string `json:"hash"`
	PrevHash         string `json:"prev_hash"`
	Sequence         uint32 `json:"sequence"`
	ClosedAt         string `json:"closed_at"`
	TotalCoins       string `json:"total_coins"`
	FeePool          string `json:"fee_pool"`
	BaseFee          int32  `json:"base_fee_in_stroops"`
	BaseReserve      int32  `json:"base_reserve_in_stroops"`
	MaxTxSetSize     int32  `json:"max_tx_set_size"`
	OperationCount   int32  `json:"operation_count"`
	HeaderXDR        string `json:"header_xdr"`
}

// Transaction is a submitted or historical transaction record.
type Transaction struct {
	Links           Links  `json:"_links"`
	ID              string `json:"id"`
	Hash            string `json:"hash"`
	Ledger          uint32 `json:"ledger"`
	CreatedAt       string `json:"created_at"`
	SourceAccount   string `json:"source_account"`
	SourceSeq       string `json:"source_account_sequence"`
	FeeCharged      string `json:"fee_charged"`
	MaxFee          string `json:"max_fee"`
	OperationCount  int32  `json:"operation_count"`
	EnvelopeXDR     string `json:"envelope_xdr"`
	ResultXDR       string `json:"result_xdr"`
	ResultMetaXDR   string `json:"result_meta_xdr"`
	FeeMetaXDR      string `json:"fee_meta_xdr"`
	MemoType        string `json:"memo_type"`
	Memo            string `json:"memo,omitempty"`
	Successful      bool   `json:"successful"`
}

// Operation is a single operation's contribution to a transaction's
// effects. Type-specific fields are populated only for the matching
// operation type, mirroring the union shape of xdr.OperationBody.
type Operation struct {
	Links           Links  `json:"_links"`
	ID              string `json:"id"`
	TransactionHash string `json:"transaction_hash"`
	Type            string `json:"type"`
	TypeI           int32  `json:"type_i"`
	SourceAccount   string `json:"source_account"`
	CreatedAt       string `json:"created_at"`

	From        string `json:"from,omitempty"`
	To          string `json:"to,omitempty"`
	Amount      string `json:"amount,omitempty"`
	AssetType   string `json:"asset_type,omitempty"`
	AssetCode   string `json:"asset_code,omitempty"`
	AssetIssuer string `json:"asset_issuer,omitempty"`
}

// Payment is the narrower payments-endpoint projection of Operation.
type Payment = Operation

// Trade is one executed match between two offers.
type Trade struct {
	Links               Links  `json:"_links"`
	ID                  string `json:"id"`
	LedgerCloseTime     string `json:"ledger_close_time"`
	BaseOfferID         string `json:"base_offer_id"`
	BaseAccount         string `json:"base_account"`
	BaseAmount          string `json:"base_amount"`
	BaseAssetType       string `json:"base_asset_type"`
	BaseAssetCode       string `json:"base_asset_code,omitempty"`
	BaseAssetIssuer     string `json:"base_asset_issuer,omitempty"`
	CounterOfferID      string `json:"counter_offer_id"`
	CounterAccount      string `json:"counter_account"`
	CounterAmount       string `json:"counter_amount"`
	CounterAssetType    string `json:"counter_asset_type"`
	CounterAssetCode    string `json:"counter_asset_code,omitempty"`
	CounterAssetIssuer  string `json:"counter_asset_issuer,omitempty"`
	BaseIsSeller        bool   `json:"base_is_seller"`
	Price               Price  `json:"price"`
}

// Price is a rational exchange rate, N/D.
type Price struct {
	N int32 `json:"n"`
	D int32 `json:"d"`
}

// Offer is a single resting offer on the order book.
type Offer struct {
	Links   Links  `json:"_links"`
	ID      string `json:"id"`
	Seller  string `json:"seller"`
	Selling Asset  `json:"selling"`
	Buying  Asset  `json:"buying"`
	Amount  string `json:"amount"`
	Price   string `json:"price"`
	PriceR  Price  `json:"price_r"`
}

// Asset identifies an asset by type/code/issuer triple.
type Asset struct {
	AssetType   string `json:"asset_type"`
	AssetCode   string `json:"asset_code,omitempty"`
	AssetIssuer string `json:"asset_issuer,omitempty"`
}

// AssetStat is the aggregate circulation/holder stats for one asset.
type AssetStat struct {
	Links       Links  `json:"_links"`
	AssetType   string `json:"asset_type"`
	AssetCode   string `json:"asset_code"`
	AssetIssuer string `json:"asset_issuer"`
	Amount      string `json:"amount"`
	NumAccounts int32  `json:"num_accounts"`
	Flags       AccountFlags `json:"flags"`
}

// OrderBookSummary is a snapshot of the bids/asks for one asset pair.
type OrderBookSummary struct {
	Bids    []PriceLevel `json:"bids"`
	Asks    []PriceLevel `json:"asks"`
	Selling Asset        `json:"base"`
	Buying  Asset        `json:"counter"`
}

// PriceLevel is one rung of an order book summary.
type PriceLevel struct {
	Amount string `json:"amount"`
	Price  string `json:"price"`
	PriceR Price  `json:"price_r"`
}

// Path is one candidate route returned by a find-paths query.
type Path struct {
	SourceAmount      string  `json:"source_amount"`
	SourceAssetType   string  `json:"source_asset_type"`
	SourceAssetCode   string  `json:"source_asset_code,omitempty"`
	SourceAssetIssuer string  `json:"source_asset_issuer,omitempty"`
	DestinationAmount string  `json:"destination_amount"`
	DestinationAssetType   string `json:"destination_asset_type"`
	DestinationAssetCode   string `json:"destination_asset_code,omitempty"`
	DestinationAssetIssuer string `json:"destination_asset_issuer,omitempty"`
	Path              []Asset `json:"path"`
}

// FeeStats is the network's recent per-operation fee distribution.
type FeeStats struct {
	LastLedger          string `json:"last_ledger"`
	LastLedgerBaseFee   string `json:"last_ledger_base_fee"`
	LedgerCapacityUsage string `json:"ledger_capacity_usage"`
	FeeChargedMax       string `json:"fee_charged.max"`
	FeeChargedMin       string `json:"fee_charged.min"`
	FeeChargedMode      string `json:"fee_charged.mode"`
	FeeChargedP50       string `json:"fee_charged.p50"`
	FeeChargedP95       string `json:"fee_charged.p95"`
	FeeChargedP99       string `json:"fee_charged.p99"`
}

// TradeAggregation is one bucket of a trade-aggregations time series.
type TradeAggregation struct {
	Timestamp   int64  `json:"timestamp"`
	TradeCount  int64  `json:"trade_count"`
	BaseVolume  string `json:"base_volume"`
	CounterVolume string `json:"counter_volume"`
	Avg         string `json:"avg"`
	High        string `json:"high"`
	HighR       Price  `json:"high_r"`
	Low         string `json:"low"`
	LowR        Price  `json:"low_r"`
	Open        string `json:"open"`
	OpenR       Price  `json:"open_r"`
	Close       string `json:"close"`
	CloseR      Price  `json:"close_r"`
}

// SubmitProblem is the error body the indexer returns for a rejected
// transaction submission, following the same problem+json shape as
// every other error response.
type SubmitProblem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int32  `json:"status"`
	Extras struct {
		EnvelopeXDR   string `json:"envelope_xdr"`
		ResultXDR     string `json:"result_xdr"`
		ResultCodes   struct {
			Transaction string   `json:"transaction"`
			Operations  []string `json:"operations"`
		} `json:"result_codes"`
	} `json:"extras"`
}
