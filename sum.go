//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package hashes

import (
	"io"
	"os"

	logging "github.com/ipfs/go-log/v2"
	"github.com/markkurossi/hashes/digest"
	"github.com/markkurossi/hashes/env"
)

var log = logging.Logger("hashes")

// SumReader hashes the data from r with the hasher h. It reads the
// input in chunks of config.GetChunkSize() bytes and finishes h at
// EOF.
func SumReader(config *env.Config, r io.Reader, h digest.Hasher) (
	digest.Digest, error) {

	buf := make([]byte, config.GetChunkSize())
	var total int64
	for {
		n, err := r.Read(buf)
		if n > 0 {
			h.Write(buf[:n])
			total += int64(n)
			log.Debugf("read %d bytes, total %d", n, total)
		}
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
	}
	return h.Finish(), nil
}

// SumFile hashes the file path with a hasher from newHash.
func SumFile(config *env.Config, path string, newHash func() digest.Hasher) (
	digest.Digest, error) {

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	log.Debugf("hashing %s", path)
	sum, err := SumReader(config, f, newHash())
	if err != nil {
		return nil, err
	}
	log.Debugf("%s: %x", path, sum)
	return sum, nil
}
