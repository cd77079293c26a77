package message

import (
	"time"

	"github.com/wavesplatform/gowire/pkg/wire"
)

// Handshake is the greeting a peer sends when it opens a connection:
// its application name, protocol version, self-reported node identity,
// an optionally declared reachable address, and the time it was sent.
type Handshake struct {
	AppName      string
	Version      Version
	NodeName     string
	NodeNonce    uint64
	DeclaredAddr wire.Option[NetAddr]
	Timestamp    time.Time
}

const handshakeDeclaredAddrBit = 0

// HandshakeCodec is the Codec for Handshake. DeclaredAddr is the sole
// optional field, so it alone governs the record's mask word; a peer
// that omits its reachable address still writes two zero bytes for
// that mask rather than skipping it.
var HandshakeCodec = wire.Record[Handshake](
	wire.NewField(wire.String,
		func(h Handshake) string { return h.AppName },
		func(h *Handshake, v string) { h.AppName = v }),
	wire.NewField(VersionCodec,
		func(h Handshake) Version { return h.Version },
		func(h *Handshake, v Version) { h.Version = v }),
	wire.NewField(wire.String,
		func(h Handshake) string { return h.NodeName },
		func(h *Handshake, v string) { h.NodeName = v }),
	wire.NewField(wire.UInt64,
		func(h Handshake) uint64 { return h.NodeNonce },
		func(h *Handshake, v uint64) { h.NodeNonce = v }),
	wire.MaskField[Handshake](),
	wire.NewField(wire.OptionalField(handshakeDeclaredAddrBit, NetAddrCodec),
		func(h Handshake) wire.Option[NetAddr] { return h.DeclaredAddr },
		func(h *Handshake, v wire.Option[NetAddr]) { h.DeclaredAddr = v }),
	wire.NewField(wire.TimePoint,
		func(h Handshake) time.Time { return h.Timestamp },
		func(h *Handshake, v time.Time) { h.Timestamp = v }),
)
