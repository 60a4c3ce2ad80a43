package core

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"golang.org/x/crypto/sha3"
)

// This file implements the host-boundary helpers of spec.md §4.J:
// abort/revert/co_call wrappers, hashing, secp256k1 recovery, and
// hex/base64 codecs. secp256k1 recovery follows the same steps as the
// teacher's own opECRECOVER (core/utility_functions.go): left-pad r/s,
// normalize v into {0,1}, recover the public key, derive the address.
// It reaches for btcec/v2 rather than go-ethereum/crypto (the teacher's
// own secp256k1 curve family, already used for pubkeys in
// core/compliance.go) and golang.org/x/crypto/sha3 for Keccak256 rather
// than pulling in the full go-ethereum module for one hash function.

// Revert implements builtin_revert: data-stream-encode msg as a byte
// string and raise it, with the error code, as a *RevertError panic.
// The host h is not called.
func Revert(h Host, code int32, msg []byte) {
	s := NewByteStream()
	EncodeBytes(s, msg)
	panic(&RevertError{Code: uint32(code), Message: s.Bytes()})
}

// CoCallOrRevert implements builtin_co_call_or_revert: invoke the host's
// nested call, and on a non-zero result revert with the call's own
// reported message, or a default message if it reported none.
func CoCallOrRevert(h Host, contract, method string, args []byte) []byte {
	result, code := h.CoCall(contract, method, args)
	if code == 0 {
		return result
	}
	if len(result) > 0 {
		Revert(h, code, result)
	}
	Revert(h, code, []byte("co_call Reverted"))
	return nil
}

// Sha256 allocates a 32-byte vector holding the SHA-256 digest of msg.
func Sha256(arena *Arena, h Host, msg []byte) *ByteVector {
	sum := h.Sha256(msg)
	return NewByteVector(arena, sum[:])
}

// Sm3 allocates a 32-byte vector holding the SM3 digest of msg.
func Sm3(arena *Arena, h Host, msg []byte) *ByteVector {
	sum := h.Sm3(msg)
	return NewByteVector(arena, sum[:])
}

// Keccak256 allocates a 32-byte vector holding the Keccak-256 digest of
// msg.
func Keccak256(arena *Arena, h Host, msg []byte) *ByteVector {
	sum := h.Keccak256(msg)
	return NewByteVector(arena, sum[:])
}

func sha256Sum(msg []byte) [32]byte {
	return sha256.Sum256(msg)
}

func keccak256Sum(msg []byte) [32]byte {
	var out [32]byte
	h := sha3.NewLegacyKeccak256()
	h.Write(msg)
	h.Sum(out[:0])
	return out
}

// verifyMycryptoSignature checks a compact (R||S, 64-byte) secp256k1
// signature against a 32-byte digest, matching
// ir_builtin_verify_mycrypto_signature's "digest must be 32 bytes"
// precondition (original_source/mycrypto.c).
func verifyMycryptoSignature(pk, sig, digest []byte) bool {
	if len(digest) != 32 {
		Abort(CallerContext(), "DigestLengthError: digest of the msg must be 32B")
	}
	if len(sig) != 64 {
		return false
	}
	pubKey, err := btcec.ParsePubKey(pk)
	if err != nil {
		return false
	}
	var r, s btcec.ModNScalar
	r.SetByteSlice(sig[0:32])
	s.SetByteSlice(sig[32:64])
	return ecdsa.NewSignature(&r, &s).Verify(digest, pubKey)
}

// ethSecp256k1Recovery implements eth_secp256k1_recovery per spec.md
// §4.J: normalize v into {0,1}, recover the public key from the
// Ethereum-ordered (r, s, v) compact signature via
// ecdsa.RecoverCompact's bitcoin-ordered (header, r, s) compact
// signature, and return the keccak256-derived address left-padded to
// 32 bytes (the same steps as the teacher's opECRECOVER). Zero is
// returned with ok=false on an unrecoverable signature, matching "zero
// return aborts" at the call site.
func ethSecp256k1Recovery(hash [32]byte, v byte, r, s [32]byte) (out [32]byte, ok bool) {
	if v >= 27 {
		v -= 27
	}
	compact := make([]byte, 65)
	compact[0] = 27 + v
	copy(compact[1:33], r[:])
	copy(compact[33:65], s[:])
	pubKey, _, err := ecdsa.RecoverCompact(compact, hash[:])
	if err != nil {
		return out, false
	}
	uncompressed := pubKey.SerializeUncompressed()
	addr := keccak256Sum(uncompressed[1:])
	copy(out[32-20:], addr[12:])
	return out, true
}

// EthSecp256k1RecoveryOrAbort is the builtin-level wrapper: it calls the
// host and aborts with the original's exact message on failure, instead
// of returning the ok flag to the caller (ir_builtin_eth_secp256k1_recovery
// in mycrypto.c: "zero return aborts").
func EthSecp256k1RecoveryOrAbort(h Host, hash [32]byte, v byte, r, s [32]byte) [32]byte {
	out, ok := h.EthSecp256k1Recovery(hash, v, r, s)
	if !ok {
		Abort(CallerContext(), "eth secp256k1 recovery error")
	}
	return out
}

// EncodeHex implements ir_builtin_encode_hex: lowercase, no prefix.
func EncodeHex(data []byte) string {
	return hex.EncodeToString(data)
}

// DecodeHex implements ir_builtin_decode_hex: accepts an optional
// "0x"/"0X" prefix. Odd length or any non-hex byte yields a zero-length
// result rather than aborting, matching hex_decode in original_source's
// internal/hex/hex.c.
func DecodeHex(s string) []byte {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s)%2 != 0 {
		return []byte{}
	}
	out, err := hex.DecodeString(s)
	if err != nil {
		return []byte{}
	}
	return out
}

// EncodeBase64 implements ir_builtin_encode_base64: standard RFC 4648
// alphabet with "=" padding.
func EncodeBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// DecodeBase64 implements ir_builtin_decode_base64: invalid input yields
// a zero-length result rather than aborting, matching base64_decode's
// return-0-on-error behavior in original_source.
func DecodeBase64(s string) []byte {
	out, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return []byte{}
	}
	return out
}

// LogCall implements println: it passes the raw bytes of msg to the
// host's Println. It emits no topics; topic-based events go through
// EmitLog.
func LogCall(h Host, msg []byte) {
	h.Println(msg)
}

// EmitLog implements the `log` host import: topics plus a description
// blob (spec.md §6).
func EmitLog(h Host, topics [][]byte, desc []byte) {
	h.Log(topics, desc)
}
