package wire

import (
	"time"

	"github.com/wavesplatform/gowire/pkg/libs/deserializer"
	"github.com/wavesplatform/gowire/pkg/libs/serializer"
	"github.com/wavesplatform/gowire/pkg/libs/sizer"
)

// TimePoint encodes a time.Time as a signed 64-bit big-endian count of
// microseconds since the Unix epoch. Sub-microsecond precision is
// truncated, not rounded.
var TimePoint = &Codec[time.Time]{
	EncodeTo: func(s *serializer.Serializer, v time.Time) error {
		return s.Int64(v.UnixMicro())
	},
	DecodeFrom: func(d *deserializer.Deserializer) (time.Time, error) {
		micros, err := d.Int64()
		if err != nil {
			return time.Time{}, err
		}
		return time.UnixMicro(micros).UTC(), nil
	},
	SizeOn: func(z *sizer.Sizer) error { return z.Fixed(8) },
}
