package xdr

import "github.com/EXCCoin/stellarbase/errs"

// This file models the slice of the Soroban (smart contract) wire
// types that InvokeHostFunction/ExtendFootprintTtl/RestoreFootprint
// need to build and sign a transaction: host function invocation,
// authorization entries, and ledger footprints. The full ScVal/
// SorobanAuthorizedFunction trees carry many more case arms in the
// real protocol (timepoint/duration/U128/I128/U256/I256 scalars,
// contract-instance and nonce ledger key variants, the
// create-contract host functions); those are out of scope here since a client building ordinary contract-invocation
// transactions only ever needs the cases modeled below, and every
// union here still fails decoding loudly on an unrecognized tag
// rather than silently truncating.

// ScValType enumerates the subset of ScVal cases this module models.
type ScValType int32

const (
	ScvBool   ScValType = 0
	ScvVoid   ScValType = 1
	ScvU32    ScValType = 3
	ScvI32    ScValType = 4
	ScvU64    ScValType = 5
	ScvI64    ScValType = 6
	ScvBytes  ScValType = 13
	ScvString ScValType = 14
	ScvSymbol ScValType = 15
	ScvVec    ScValType = 16
	ScvMap    ScValType = 17
	ScvAddress ScValType = 18
)

// ScVal is a tagged union over a practical subset of contract values.
type ScVal struct {
	Type    ScValType
	Bool    *bool
	U32     *Uint32
	I32     *Int32
	U64     *Uint64
	I64     *Int64
	Bytes   []byte
	Str     *string
	Sym     *string
	Vec     []ScVal
	Map     []ScMapEntry
	Address *ScAddress
}

// ScMapEntry is one key/value pair of an ScvMap.
type ScMapEntry struct {
	Key ScVal
	Val ScVal
}

func (v ScVal) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt(int32(v.Type)); err != nil {
		return err
	}
	switch v.Type {
	case ScvVoid:
		return nil
	case ScvBool:
		return e.EncodeBool(*v.Bool)
	case ScvU32:
		return v.U32.EncodeTo(e)
	case ScvI32:
		return v.I32.EncodeTo(e)
	case ScvU64:
		return v.U64.EncodeTo(e)
	case ScvI64:
		return v.I64.EncodeTo(e)
	case ScvBytes:
		return e.EncodeVarOpaque(v.Bytes, 256*1024)
	case ScvString:
		return e.EncodeString(*v.Str, 256*1024)
	case ScvSymbol:
		return e.EncodeString(*v.Sym, 32)
	case ScvVec:
		if err := e.EncodeUint(uint32(len(v.Vec))); err != nil {
			return err
		}
		for _, el := range v.Vec {
			if err := el.EncodeTo(e); err != nil {
				return err
			}
		}
		return nil
	case ScvMap:
		if err := e.EncodeUint(uint32(len(v.Map))); err != nil {
			return err
		}
		for _, entry := range v.Map {
			if err := entry.Key.EncodeTo(e); err != nil {
				return err
			}
			if err := entry.Val.EncodeTo(e); err != nil {
				return err
			}
		}
		return nil
	case ScvAddress:
		return v.Address.EncodeTo(e)
	default:
		return errs.New(errs.ErrInvalidXDR, "unsupported ScValType %d", v.Type)
	}
}

func (v *ScVal) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt()
	if err != nil {
		return err
	}
	v.Type = ScValType(t)
	switch v.Type {
	case ScvVoid:
		return nil
	case ScvBool:
		b, err := d.DecodeBool()
		if err != nil {
			return err
		}
		v.Bool = &b
	case ScvU32:
		var x Uint32
		if err := x.DecodeFrom(d); err != nil {
			return err
		}
		v.U32 = &x
	case ScvI32:
		var x Int32
		if err := x.DecodeFrom(d); err != nil {
			return err
		}
		v.I32 = &x
	case ScvU64:
		var x Uint64
		if err := x.DecodeFrom(d); err != nil {
			return err
		}
		v.U64 = &x
	case ScvI64:
		var x Int64
		if err := x.DecodeFrom(d); err != nil {
			return err
		}
		v.I64 = &x
	case ScvBytes:
		b, err := d.DecodeVarOpaque(256 * 1024)
		if err != nil {
			return err
		}
		v.Bytes = b
	case ScvString:
		s, err := d.DecodeString(256 * 1024)
		if err != nil {
			return err
		}
		v.Str = &s
	case ScvSymbol:
		s, err := d.DecodeString(32)
		if err != nil {
			return err
		}
		v.Sym = &s
	case ScvVec:
		n, err := d.DecodeArrayLen(1000)
		if err != nil {
			return err
		}
		vec := make([]ScVal, n)
		for i := range vec {
			if err := vec[i].DecodeFrom(d); err != nil {
				return err
			}
		}
		v.Vec = vec
	case ScvMap:
		n, err := d.DecodeArrayLen(1000)
		if err != nil {
			return err
		}
		m := make([]ScMapEntry, n)
		for i := range m {
			if err := m[i].Key.DecodeFrom(d); err != nil {
				return err
			}
			if err := m[i].Val.DecodeFrom(d); err != nil {
				return err
			}
		}
		v.Map = m
	case ScvAddress:
		var a ScAddress
		if err := a.DecodeFrom(d); err != nil {
			return err
		}
		v.Address = &a
	default:
		return errs.New(errs.ErrInvalidXDR, "unsupported ScValType %d", v.Type)
	}
	return nil
}

// ScAddressType enumerates ScAddress's discriminants.
type ScAddressType int32

const (
	ScAddressTypeAccount  ScAddressType = 0
	ScAddressTypeContract ScAddressType = 1
)

// ScAddress names either a classic account or a contract.
type ScAddress struct {
	Type      ScAddressType
	AccountId *AccountId
	ContractId *Hash
}

func (a ScAddress) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt(int32(a.Type)); err != nil {
		return err
	}
	switch a.Type {
	case ScAddressTypeAccount:
		return a.AccountId.EncodeTo(e)
	case ScAddressTypeContract:
		return a.ContractId.EncodeTo(e)
	default:
		return errs.New(errs.ErrInvalidXDR, "unhandled ScAddressType %d", a.Type)
	}
}

func (a *ScAddress) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt()
	if err != nil {
		return err
	}
	a.Type = ScAddressType(t)
	switch a.Type {
	case ScAddressTypeAccount:
		var aid AccountId
		if err := aid.DecodeFrom(d); err != nil {
			return err
		}
		a.AccountId = &aid
	case ScAddressTypeContract:
		var h Hash
		if err := h.DecodeFrom(d); err != nil {
			return err
		}
		a.ContractId = &h
	default:
		return errs.New(errs.ErrInvalidXDR, "unhandled ScAddressType %d", a.Type)
	}
	return nil
}

// InvokeContractArgs names the contract/function/args of a contract
// call, shared by HostFunction's invoke-contract arm and
// SorobanAuthorizedFunction's contract-fn arm.
type InvokeContractArgs struct {
	ContractAddress ScAddress
	FunctionName    string // symbol<32>
	Args            []ScVal
}

func (a InvokeContractArgs) EncodeTo(e *Encoder) error {
	if err := a.ContractAddress.EncodeTo(e); err != nil {
		return err
	}
	if err := e.EncodeString(a.FunctionName, 32); err != nil {
		return err
	}
	if err := e.EncodeUint(uint32(len(a.Args))); err != nil {
		return err
	}
	for _, v := range a.Args {
		if err := v.EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func (a *InvokeContractArgs) DecodeFrom(d *Decoder) error {
	if err := a.ContractAddress.DecodeFrom(d); err != nil {
		return err
	}
	name, err := d.DecodeString(32)
	if err != nil {
		return err
	}
	a.FunctionName = name
	n, err := d.DecodeArrayLen(1000)
	if err != nil {
		return err
	}
	args := make([]ScVal, n)
	for i := range args {
		if err := args[i].DecodeFrom(d); err != nil {
			return err
		}
	}
	a.Args = args
	return nil
}

// HostFunctionType enumerates HostFunction's discriminants. Only
// invoke-contract and upload-wasm are modeled field-by-field; the two
// create-contract arms are encoded verbatim from a caller-supplied
// opaque blob, and decoding either of them returns an error.
type HostFunctionType int32

const (
	HostFunctionTypeInvokeContract    HostFunctionType = 0
	HostFunctionTypeCreateContract    HostFunctionType = 1
	HostFunctionTypeUploadContractWasm HostFunctionType = 2
	HostFunctionTypeCreateContractV2  HostFunctionType = 3
)

type HostFunction struct {
	Type            HostFunctionType
	InvokeContract  *InvokeContractArgs
	Wasm            []byte
	OpaqueCreateArm []byte // verbatim payload for the two create-contract arms
}

func (h HostFunction) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt(int32(h.Type)); err != nil {
		return err
	}
	switch h.Type {
	case HostFunctionTypeInvokeContract:
		return h.InvokeContract.EncodeTo(e)
	case HostFunctionTypeUploadContractWasm:
		return e.EncodeVarOpaque(h.Wasm, 256*1024)
	case HostFunctionTypeCreateContract, HostFunctionTypeCreateContractV2:
		return e.write(h.OpaqueCreateArm)
	default:
		return errs.New(errs.ErrInvalidXDR, "unhandled HostFunctionType %d", h.Type)
	}
}

func (h *HostFunction) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt()
	if err != nil {
		return err
	}
	h.Type = HostFunctionType(t)
	switch h.Type {
	case HostFunctionTypeInvokeContract:
		var a InvokeContractArgs
		if err := a.DecodeFrom(d); err != nil {
			return err
		}
		h.InvokeContract = &a
		return nil
	case HostFunctionTypeUploadContractWasm:
		b, err := d.DecodeVarOpaque(256 * 1024)
		if err != nil {
			return err
		}
		h.Wasm = b
		return nil
	case HostFunctionTypeCreateContract, HostFunctionTypeCreateContractV2:
		return errs.New(errs.ErrInvalidXDR, "create-contract host function arms are not decodable field-by-field in this build")
	default:
		return errs.New(errs.ErrInvalidXDR, "unhandled HostFunctionType %d", h.Type)
	}
}

// SorobanCredentialsType enumerates SorobanCredentials' discriminants.
type SorobanCredentialsType int32

const (
	SorobanCredentialsSourceAccount SorobanCredentialsType = 0
	SorobanCredentialsAddress       SorobanCredentialsType = 1
)

type SorobanAddressCredentials struct {
	Address                   ScAddress
	Nonce                     Int64
	SignatureExpirationLedger Uint32
	Signature                 ScVal
}

func (c SorobanAddressCredentials) EncodeTo(e *Encoder) error {
	if err := c.Address.EncodeTo(e); err != nil {
		return err
	}
	if err := c.Nonce.EncodeTo(e); err != nil {
		return err
	}
	if err := c.SignatureExpirationLedger.EncodeTo(e); err != nil {
		return err
	}
	return c.Signature.EncodeTo(e)
}

func (c *SorobanAddressCredentials) DecodeFrom(d *Decoder) error {
	if err := c.Address.DecodeFrom(d); err != nil {
		return err
	}
	if err := c.Nonce.DecodeFrom(d); err != nil {
		return err
	}
	if err := c.SignatureExpirationLedger.DecodeFrom(d); err != nil {
		return err
	}
	return c.Signature.DecodeFrom(d)
}

type SorobanCredentials struct {
	Type    SorobanCredentialsType
	Address *SorobanAddressCredentials
}

func (c SorobanCredentials) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt(int32(c.Type)); err != nil {
		return err
	}
	switch c.Type {
	case SorobanCredentialsSourceAccount:
		return nil
	case SorobanCredentialsAddress:
		return c.Address.EncodeTo(e)
	default:
		return errs.New(errs.ErrInvalidXDR, "unhandled SorobanCredentialsType %d", c.Type)
	}
}

func (c *SorobanCredentials) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt()
	if err != nil {
		return err
	}
	c.Type = SorobanCredentialsType(t)
	switch c.Type {
	case SorobanCredentialsSourceAccount:
		return nil
	case SorobanCredentialsAddress:
		var a SorobanAddressCredentials
		if err := a.DecodeFrom(d); err != nil {
			return err
		}
		c.Address = &a
		return nil
	default:
		return errs.New(errs.ErrInvalidXDR, "unhandled SorobanCredentialsType %d", c.Type)
	}
}

// SorobanAuthorizedFunctionType enumerates the function-kind arm of an
// authorized invocation. Only contract-fn is modeled.
type SorobanAuthorizedFunctionType int32

const SorobanAuthorizedFunctionTypeContractFn SorobanAuthorizedFunctionType = 0

type SorobanAuthorizedFunction struct {
	Type       SorobanAuthorizedFunctionType
	ContractFn *InvokeContractArgs
}

func (f SorobanAuthorizedFunction) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt(int32(f.Type)); err != nil {
		return err
	}
	switch f.Type {
	case SorobanAuthorizedFunctionTypeContractFn:
		return f.ContractFn.EncodeTo(e)
	default:
		return errs.New(errs.ErrInvalidXDR, "unhandled SorobanAuthorizedFunctionType %d", f.Type)
	}
}

func (f *SorobanAuthorizedFunction) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt()
	if err != nil {
		return err
	}
	f.Type = SorobanAuthorizedFunctionType(t)
	switch f.Type {
	case SorobanAuthorizedFunctionTypeContractFn:
		var a InvokeContractArgs
		if err := a.DecodeFrom(d); err != nil {
			return err
		}
		f.ContractFn = &a
		return nil
	default:
		return errs.New(errs.ErrInvalidXDR, "unhandled SorobanAuthorizedFunctionType %d", f.Type)
	}
}

// SorobanAuthorizedInvocation is a tree: a function call plus the
// sub-invocations it is permitted to make.
type SorobanAuthorizedInvocation struct {
	Function        SorobanAuthorizedFunction
	SubInvocations  []SorobanAuthorizedInvocation
}

func (inv SorobanAuthorizedInvocation) EncodeTo(e *Encoder) error {
	if err := inv.Function.EncodeTo(e); err != nil {
		return err
	}
	if err := e.EncodeUint(uint32(len(inv.SubInvocations))); err != nil {
		return err
	}
	for _, sub := range inv.SubInvocations {
		if err := sub.EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func (inv *SorobanAuthorizedInvocation) DecodeFrom(d *Decoder) error {
	if err := inv.Function.DecodeFrom(d); err != nil {
		return err
	}
	n, err := d.DecodeArrayLen(1000)
	if err != nil {
		return err
	}
	subs := make([]SorobanAuthorizedInvocation, n)
	for i := range subs {
		if err := subs[i].DecodeFrom(d); err != nil {
			return err
		}
	}
	inv.SubInvocations = subs
	return nil
}

// SorobanAuthorizationEntry authorizes one invocation (and its
// sub-invocations) on behalf of either the transaction source account
// or an explicit address signature.
type SorobanAuthorizationEntry struct {
	Credentials    SorobanCredentials
	RootInvocation SorobanAuthorizedInvocation
}

func (a SorobanAuthorizationEntry) EncodeTo(e *Encoder) error {
	if err := a.Credentials.EncodeTo(e); err != nil {
		return err
	}
	return a.RootInvocation.EncodeTo(e)
}

func (a *SorobanAuthorizationEntry) DecodeFrom(d *Decoder) error {
	if err := a.Credentials.DecodeFrom(d); err != nil {
		return err
	}
	return a.RootInvocation.DecodeFrom(d)
}

// ExtensionPoint is the protocol's forward-compatibility union; only
// the v0 (empty) arm exists today.
type ExtensionPoint struct{ V int32 }

func (e2 ExtensionPoint) EncodeTo(e *Encoder) error { return e.EncodeInt(e2.V) }
func (e2 *ExtensionPoint) DecodeFrom(d *Decoder) error {
	v, err := d.DecodeInt()
	if err != nil {
		return err
	}
	if v != 0 {
		return errs.New(errs.ErrInvalidXDR, "unknown ExtensionPoint arm %d", v)
	}
	e2.V = v
	return nil
}

// LedgerFootprint names the ledger entries a Soroban-touching
// operation reads and writes.
type LedgerFootprint struct {
	ReadOnly  []LedgerKey
	ReadWrite []LedgerKey
}

func (f LedgerFootprint) EncodeTo(e *Encoder) error {
	if err := encodeLedgerKeyArray(e, f.ReadOnly); err != nil {
		return err
	}
	return encodeLedgerKeyArray(e, f.ReadWrite)
}

func (f *LedgerFootprint) DecodeFrom(d *Decoder) error {
	ro, err := decodeLedgerKeyArray(d)
	if err != nil {
		return err
	}
	rw, err := decodeLedgerKeyArray(d)
	if err != nil {
		return err
	}
	f.ReadOnly = ro
	f.ReadWrite = rw
	return nil
}

func encodeLedgerKeyArray(e *Encoder, keys []LedgerKey) error {
	if err := e.EncodeUint(uint32(len(keys))); err != nil {
		return err
	}
	for _, k := range keys {
		if err := k.EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func decodeLedgerKeyArray(d *Decoder) ([]LedgerKey, error) {
	n, err := d.DecodeArrayLen(1000)
	if err != nil {
		return nil, err
	}
	keys := make([]LedgerKey, n)
	for i := range keys {
		if err := keys[i].DecodeFrom(d); err != nil {
			return nil, err
		}
	}
	return keys, nil
}
