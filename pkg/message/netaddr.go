package message

import "github.com/wavesplatform/gowire/pkg/wire"

// NetAddr is an IPv4 address and port, encoded as a u32 followed by a
// u16, matching the fixed-width TCP address records the handshake's
// declared-address field is modeled on. IP is stored as a big-endian
// u32 rather than a net.IP: the wire format has no notion of IPv6, and
// keeping the field a plain scalar lets it reuse UInt32 directly.
type NetAddr struct {
	IP   uint32
	Port uint16
}

// NetAddrCodec is the Codec for NetAddr.
var NetAddrCodec = wire.Record[NetAddr](
	wire.NewField(wire.UInt32,
		func(a NetAddr) uint32 { return a.IP },
		func(a *NetAddr, x uint32) { a.IP = x }),
	wire.NewField(wire.UInt16,
		func(a NetAddr) uint16 { return a.Port },
		func(a *NetAddr, x uint16) { a.Port = x }),
)
