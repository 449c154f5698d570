package txnbuild

import (
	"time"

	"github.com/EXCCoin/stellarbase/errs"
	"github.com/EXCCoin/stellarbase/xdr"
)

// TimeoutInfinite means a transaction never expires on account of its
// time bounds. Stellar-core still applies its own upper bound to
// transactions with no MaxTime, so this is rarely what you want for a
// transaction that will actually be submitted.
const TimeoutInfinite = int64(0)

// Timebounds is the UNIX-epoch-second validity window of a transaction.
type Timebounds struct {
	MinTime int64
	MaxTime int64
}

// NewTimebounds builds a Timebounds from explicit min/max UNIX times.
func NewTimebounds(min, max int64) Timebounds {
	return Timebounds{MinTime: min, MaxTime: max}
}

// NewInfiniteTimeout builds a Timebounds with no minimum and no
// maximum, only suitable for transactions that are never broadcast.
func NewInfiniteTimeout() Timebounds {
	return Timebounds{MinTime: 0, MaxTime: TimeoutInfinite}
}

// NewTimeout builds a Timebounds with no lower bound (MinTime 0) that
// expires seconds from now.
func NewTimeout(seconds int64) Timebounds {
	now := time.Now().Unix()
	return Timebounds{MinTime: 0, MaxTime: now + seconds}
}

func (t Timebounds) toXDR() (*xdr.TimeBounds, error) {
	if t.MinTime == 0 && t.MaxTime == 0 {
		return nil, nil
	}
	if t.MaxTime != 0 && t.MaxTime < t.MinTime {
		return nil, errs.New(errs.ErrInvalidTimeBounds, "max time %d is before min time %d", t.MaxTime, t.MinTime)
	}
	if t.MinTime < 0 || t.MaxTime < 0 {
		return nil, errs.New(errs.ErrInvalidTimeBounds, "time bounds must not be negative")
	}
	return &xdr.TimeBounds{
		MinTime: xdr.TimePoint(t.MinTime),
		MaxTime: xdr.TimePoint(t.MaxTime),
	}, nil
}

func timeboundsFromXDR(x *xdr.TimeBounds) Timebounds {
	if x == nil {
		return Timebounds{}
	}
	return Timebounds{MinTime: int64(x.MinTime), MaxTime: int64(x.MaxTime)}
}

// LedgerBounds restricts a transaction to a range of ledger sequence
// numbers, in addition to or instead of a time window.
type LedgerBounds struct {
	MinLedger uint32
	MaxLedger uint32
}

func (l LedgerBounds) toXDR() *xdr.LedgerBounds {
	if l.MinLedger == 0 && l.MaxLedger == 0 {
		return nil
	}
	return &xdr.LedgerBounds{MinLedger: xdr.Uint32(l.MinLedger), MaxLedger: xdr.Uint32(l.MaxLedger)}
}
