// Command wireencode builds one or more Handshake records from its
// flags and writes their wire encodings to a file (or stdout), each
// framed by a u16 length prefix so wiredecode can split them back
// apart.
package main

import (
	"encoding/binary"
	"os"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/wavesplatform/gowire/pkg/message"
	"github.com/wavesplatform/gowire/pkg/util/common"
	"github.com/wavesplatform/gowire/pkg/wire"
	"github.com/wavesplatform/gowire/pkg/wire/bufpool"
)

var (
	logLevel     = flag.String("log-level", "INFO", "Logging level: DEBUG, INFO, WARN, ERROR, FATAL")
	appName      = flag.String("app-name", "gowire", "Handshake application name")
	nodeName     = flag.String("node-name", "node", "Handshake node name")
	nodeNonce    = flag.Uint64("node-nonce", 0, "Handshake node nonce")
	versionMajor = flag.Uint32("version-major", 1, "Handshake protocol version, major component")
	versionMinor = flag.Uint32("version-minor", 0, "Handshake protocol version, minor component")
	versionPatch = flag.Uint32("version-patch", 0, "Handshake protocol version, patch component")
	declaredIP   = flag.Uint32("declared-ip", 0, "Declared IPv4 address as a big-endian u32; 0 omits the field")
	declaredPort = flag.Uint16("declared-port", 0, "Declared TCP port")
	out          = flag.String("out", "", "Output file path; defaults to stdout")
	bufferSize   = flag.Int("buffer-size", 1<<16, "Encode buffer capacity in bytes")
	count        = flag.Int("count", 1, "Number of handshakes to encode, each with its nonce offset by its index")
)

func main() {
	flag.Parse()
	_, sugar := common.SetupLogger(*logLevel)

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			sugar.Fatalf("failed to create %q: %v", *out, err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil {
				sugar.Errorf("failed to close %q: %v", *out, cerr)
			}
		}()
		w = f
	}

	pool := bufpool.New(4, *bufferSize)
	var lenPrefix [2]byte
	total := 0
	for i := 0; i < *count; i++ {
		h := message.Handshake{
			AppName:   *appName,
			Version:   message.Version{Major: *versionMajor, Minor: *versionMinor, Patch: *versionPatch},
			NodeName:  *nodeName,
			NodeNonce: *nodeNonce + uint64(i),
			Timestamp: time.Now().UTC(),
		}
		if *declaredIP != 0 {
			h.DeclaredAddr = wire.Some(message.NetAddr{IP: *declaredIP, Port: *declaredPort})
		}

		written, release, err := bufpool.Encode(pool, message.HandshakeCodec, h)
		if err != nil {
			sugar.Fatalf("failed to encode handshake %d: %v", i, err)
		}

		binary.BigEndian.PutUint16(lenPrefix[:], uint16(len(written)))
		if _, err := w.Write(lenPrefix[:]); err != nil {
			sugar.Fatalf("failed to write length prefix for handshake %d: %v", i, err)
		}
		if _, err := w.Write(written); err != nil {
			sugar.Fatalf("failed to write handshake %d: %v", i, err)
		}
		total += len(written)
		release()
	}

	allocations, _, _ := pool.Stat()
	sugar.Infof("encoded %d handshake(s), %d bytes total, %d buffer allocation(s)", *count, total, allocations)
}
