package message

import (
	"time"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/wavesplatform/gowire/pkg/wire"
)

// Side is which direction an Order trades.
type Side uint8

const (
	SideBuy Side = iota
	SideSell
)

// SideCodec is the Codec for Side, a single byte with unchecked-cast
// decode semantics: a byte outside {SideBuy, SideSell} still decodes,
// as a Side with an undefined tag.
var SideCodec = wire.EnumUint8[Side]()

// orderMagic identifies an Order record on the wire; any other leading
// u16 fails decode with a const mismatch.
const orderMagic uint16 = 0xF001

// Fill is one partial execution of an Order.
type Fill struct {
	Price     float64
	Amount    float64
	Timestamp time.Time
}

var fillCodec = wire.Record[Fill](
	wire.NewField(wire.Float64,
		func(f Fill) float64 { return f.Price },
		func(f *Fill, v float64) { f.Price = v }),
	wire.NewField(wire.Float64,
		func(f Fill) float64 { return f.Amount },
		func(f *Fill, v float64) { f.Amount = v }),
	wire.NewField(wire.TimePoint,
		func(f Fill) time.Time { return f.Timestamp },
		func(f *Fill, v time.Time) { f.Timestamp = v }),
)

// Metadata is free-form order annotation, decoded lazily since most
// callers that only route or match orders never look at it.
type Metadata struct {
	Comment string
	Tags    []string
}

// MetadataCodec is the Codec for Metadata, exposed so callers can build
// an already-materialized Lazy[Metadata] with wire.OfValue.
var MetadataCodec = wire.Record[Metadata](
	wire.NewField(wire.String,
		func(m Metadata) string { return m.Comment },
		func(m *Metadata, v string) { m.Comment = v }),
	wire.NewField(wire.Sequence(wire.String),
		func(m Metadata) []string { return m.Tags },
		func(m *Metadata, v []string) { m.Tags = v }),
)

const (
	orderClientIDBit  = 0
	orderExpiresAtBit = 1
)

// Order is a richer example record exercising the wire-kinds the
// Handshake does not: a Const magic header, an Enum, a Sequence of
// nested records, a Map, and a lazily-decoded record, alongside the
// same OptionalFieldSet machinery Handshake already shows.
type Order struct {
	Side       Side
	Price      float64
	Amount     float64
	ClientID   wire.Option[string]
	ExpiresAt  wire.Option[time.Time]
	Fills      []Fill
	Attributes *orderedmap.OrderedMap[string, string]
	Metadata   wire.Lazy[Metadata]
}

// OrderCodec is the Codec for Order. Its magic header has no backing
// field in Order; the leading Const step's getter always returns the
// sentinel and its setter discards whatever it decodes.
var OrderCodec = wire.Record[Order](
	wire.NewField(wire.ConstUint16(orderMagic),
		func(Order) uint16 { return orderMagic },
		func(*Order, uint16) {}),
	wire.NewField(SideCodec,
		func(o Order) Side { return o.Side },
		func(o *Order, v Side) { o.Side = v }),
	wire.NewField(wire.Float64,
		func(o Order) float64 { return o.Price },
		func(o *Order, v float64) { o.Price = v }),
	wire.NewField(wire.Float64,
		func(o Order) float64 { return o.Amount },
		func(o *Order, v float64) { o.Amount = v }),
	wire.MaskField[Order](),
	wire.NewField(wire.OptionalField(orderClientIDBit, wire.String),
		func(o Order) wire.Option[string] { return o.ClientID },
		func(o *Order, v wire.Option[string]) { o.ClientID = v }),
	wire.NewField(wire.OptionalField(orderExpiresAtBit, wire.TimePoint),
		func(o Order) wire.Option[time.Time] { return o.ExpiresAt },
		func(o *Order, v wire.Option[time.Time]) { o.ExpiresAt = v }),
	wire.NewField(wire.Sequence(fillCodec),
		func(o Order) []Fill { return o.Fills },
		func(o *Order, v []Fill) { o.Fills = v }),
	wire.NewField(wire.Map(wire.String, wire.String),
		func(o Order) *orderedmap.OrderedMap[string, string] { return o.Attributes },
		func(o *Order, v *orderedmap.OrderedMap[string, string]) { o.Attributes = v }),
	wire.NewField(wire.LazyCodec(MetadataCodec),
		func(o Order) wire.Lazy[Metadata] { return o.Metadata },
		func(o *Order, v wire.Lazy[Metadata]) { o.Metadata = v }),
)
