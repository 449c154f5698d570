// Package errs defines the closed error taxonomy shared by every
// stellarbase package. Every fallible operation in the core returns an
// *Error (or a plain error wrapping one) rather than panicking.
package errs

import "fmt"

// Code identifies one of the fixed error kinds the core can raise.
//
//go:generate stringer -type=Code
type Code int

const (
	// Encoding/decoding.
	ErrInvalidXDR Code = iota
	ErrInvalidBase64

	// Key material.
	ErrInvalidStrKey
	ErrInvalidSeed
	ErrInvalidPublicKey

	// Validation.
	ErrInvalidAssetCode
	ErrInvalidSignature
	ErrInvalidSignatureHint
	ErrInvalidMemoText
	ErrInvalidMemoHash
	ErrInvalidMemoReturn
	ErrInvalidPreAuthTx
	ErrInvalidHashX
	ErrInvalidSignedPayload

	// Amount domain.
	ErrInvalidStroopsAmount
	ErrNegativeStroops
	ErrInvalidAmountScale
	ErrParseAmount
	ErrParsePrice

	// Transaction assembly.
	ErrTooManyOperations
	ErrMissingOperations
	ErrTransactionFeeTooLow
	ErrTransactionFeeOverflow
	ErrTooManySignatures

	// Time bounds.
	ErrInvalidTimeBounds

	// Operation assembly.
	ErrInvalidOperation

	// Network.
	ErrInvalidNetworkID

	// Domain specific.
	ErrHomeDomainTooLong
	ErrInvalidAccountFlags
	ErrInvalidTrustLineFlags

	// Indexer client.
	ErrIndexerRequest
	ErrIndexerResponse
)

// Error is the concrete error value every fallible stellarbase operation
// returns. Detail is a short human-readable elaboration; it is never
// parsed by callers, only displayed.
type Error struct {
	Code   Code
	Detail string
}

// New builds an *Error with the given code and formatted detail.
func New(code Code, format string, args ...interface{}) *Error {
	return &Error{Code: code, Detail: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return e.Code.String()
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Detail)
}

// Is reports whether target is an *Error with the same Code, so callers
// can use errors.Is(err, errs.New(errs.ErrInvalidXDR, "")).
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == other.Code
}
