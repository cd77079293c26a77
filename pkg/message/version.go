// Package message holds example records built on the pkg/wire
// algebra: a peer handshake modeled on the node-to-node greeting
// exchanged by full nodes, and a richer order record exercising the
// wire-kinds (Const, Sequence, Map, Enum, Lazy) that the handshake
// alone does not reach.
package message

import (
	"fmt"

	"github.com/wavesplatform/gowire/pkg/wire"
)

// Version is a three-part major.minor.patch version, encoded as three
// consecutive u32 fields.
type Version struct {
	Major uint32
	Minor uint32
	Patch uint32
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// VersionCodec is the Codec for Version.
var VersionCodec = wire.Record[Version](
	wire.NewField(wire.UInt32,
		func(v Version) uint32 { return v.Major },
		func(v *Version, x uint32) { v.Major = x }),
	wire.NewField(wire.UInt32,
		func(v Version) uint32 { return v.Minor },
		func(v *Version, x uint32) { v.Minor = x }),
	wire.NewField(wire.UInt32,
		func(v Version) uint32 { return v.Patch },
		func(v *Version, x uint32) { v.Patch = x }),
)
