// Command wiredecode reads a sequence of length-prefixed, wire-encoded
// Handshake records from a file (or stdin), as written by wireencode,
// and prints each one's fields along with an xxhash64 fingerprint of
// the raw bytes consumed.
package main

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	flag "github.com/spf13/pflag"

	"github.com/wavesplatform/gowire/pkg/message"
	"github.com/wavesplatform/gowire/pkg/util/common"
	"github.com/wavesplatform/gowire/pkg/wire"
)

var (
	logLevel = flag.String("log-level", "INFO", "Logging level: DEBUG, INFO, WARN, ERROR, FATAL")
	in       = flag.String("in", "", "Input file path; defaults to stdin")
)

func main() {
	flag.Parse()
	_, sugar := common.SetupLogger(*logLevel)

	r := os.Stdin
	if *in != "" {
		f, err := os.Open(*in)
		if err != nil {
			sugar.Fatalf("failed to open %q: %v", *in, err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil {
				sugar.Errorf("failed to close %q: %v", *in, cerr)
			}
		}()
		r = f
	}

	br := bufio.NewReader(r)
	var lenPrefix [2]byte
	count := 0
	for {
		if _, err := io.ReadFull(br, lenPrefix[:]); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			sugar.Fatalf("failed to read length prefix for record %d: %v", count, err)
		}
		n := binary.BigEndian.Uint16(lenPrefix[:])

		buf := make([]byte, n)
		if _, err := io.ReadFull(br, buf); err != nil {
			sugar.Fatalf("failed to read record %d body (%d bytes): %v", count, n, err)
		}

		h, tail, err := wire.Decode(buf, message.HandshakeCodec)
		if err != nil {
			sugar.Fatalf("failed to decode record %d: %v", count, err)
		}
		if len(tail) != 0 {
			sugar.Fatalf("record %d left %d unexpected trailing bytes", count, len(tail))
		}

		sugar.Infof("[%d] app_name=%q version=%s node_name=%q node_nonce=%d timestamp=%s",
			count, h.AppName, h.Version, h.NodeName, h.NodeNonce, h.Timestamp)
		if h.DeclaredAddr.Valid {
			sugar.Infof("[%d] declared_addr=%08x:%d", count, h.DeclaredAddr.Value.IP, h.DeclaredAddr.Value.Port)
		}
		sugar.Infof("[%d] fingerprint=%016x (%d bytes)", count, xxhash.Sum64(buf), n)
		count++
	}

	sugar.Infof("decoded %d record(s)", count)
}
