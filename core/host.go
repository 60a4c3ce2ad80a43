package core

// Host is the set of opaque imports spec.md §6 lists: everything the
// runtime cannot implement itself because it crosses the sandbox
// boundary into the embedding chain/VM. Shaped after the teacher's
// opcode_dispatcher.go Context interface (Call/Gas as the VM's
// controlled-access façade) rather than a one-method-per-import
// grab bag, so a caller can substitute one implementation per
// invocation instead of wiring dozens of function pointers.
type Host interface {
	Println(msg []byte)
	Log(topics [][]byte, desc []byte)
	CoCall(contract, method string, args []byte) (result []byte, code int32)
	Sha256(msg []byte) [32]byte
	Sm3(msg []byte) [32]byte
	Keccak256(msg []byte) [32]byte
	VerifyMycryptoSignature(pk, sig, digest []byte) bool
	EthSecp256k1Recovery(hash [32]byte, v byte, r, s [32]byte) (out [32]byte, ok bool)
}

// LocalHost is a self-contained, in-process Host used by the CLI and by
// tests that need a Host without a real VM behind it: every hash/crypto
// call runs for real (through hostboundary.go's own primitives), and
// CoCall/logging are recorded rather than dispatched anywhere.
type LocalHost struct {
	Printed []string
	Logged  []LoggedEvent
	Calls   []RecordedCall
	// CoCallResult, if set, is returned by every CoCall (for tests that
	// need to drive a specific nested-call outcome).
	CoCallResult []byte
	CoCallCode   int32
}

// LoggedEvent captures one Log call's arguments.
type LoggedEvent struct {
	Topics [][]byte
	Desc   []byte
}

// RecordedCall captures one CoCall invocation.
type RecordedCall struct {
	Contract, Method string
	Args             []byte
}

func NewLocalHost() *LocalHost {
	return &LocalHost{}
}

func (h *LocalHost) Println(msg []byte) {
	h.Printed = append(h.Printed, string(msg))
}

func (h *LocalHost) Log(topics [][]byte, desc []byte) {
	h.Logged = append(h.Logged, LoggedEvent{Topics: topics, Desc: desc})
}

func (h *LocalHost) CoCall(contract, method string, args []byte) ([]byte, int32) {
	h.Calls = append(h.Calls, RecordedCall{Contract: contract, Method: method, Args: args})
	return h.CoCallResult, h.CoCallCode
}

func (h *LocalHost) Sha256(msg []byte) [32]byte       { return sha256Sum(msg) }
func (h *LocalHost) Sm3(msg []byte) [32]byte          { return sm3Sum(msg) }
func (h *LocalHost) Keccak256(msg []byte) [32]byte    { return keccak256Sum(msg) }

func (h *LocalHost) VerifyMycryptoSignature(pk, sig, digest []byte) bool {
	return verifyMycryptoSignature(pk, sig, digest)
}

func (h *LocalHost) EthSecp256k1Recovery(hash [32]byte, v byte, r, s [32]byte) ([32]byte, bool) {
	return ethSecp256k1Recovery(hash, v, r, s)
}
