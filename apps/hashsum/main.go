//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	logging "github.com/ipfs/go-log/v2"
	"github.com/markkurossi/hashes"
	"github.com/markkurossi/hashes/digest"
	"github.com/markkurossi/hashes/env"
	"github.com/markkurossi/hashes/mhash"
)

var log = logging.Logger("hashsum")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	alg      *hashes.Algorithm
	hmacKey  string
	hmac     bool
	upper    bool
	mh       bool
	base     string
	list     bool
	bench    int
	verbose  bool
	explicit bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("hashsum", flag.ContinueOnError)
	fs.SetOutput(stderr)

	algName := fs.String("a", "sha1", "hash algorithm")
	hmacKey := fs.String("hmac", "", "compute HMAC with the `key`")
	upper := fs.Bool("X", false, "print digests in uppercase hex")
	mh := fs.Bool("mh", false, "print digests as multibase encoded multihashes")
	base := fs.String("base", "base58btc", "multibase encoding for -mh")
	list := fs.Bool("list", false, "list hash algorithms")
	bench := fs.Int("bench", 0, "benchmark algorithms with `size` bytes")
	chunk := fs.Int("chunk", 0, "read `size` for input files")
	verbose := fs.Bool("v", false, "verbose output")

	fs.Usage = func() {
		fmt.Fprintf(stderr,
			"Usage: hashsum [options] file...\n\nOptions:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	config := &env.Config{
		ChunkSize: *chunk,
	}
	if *verbose {
		config.LogLevel = "debug"
	}
	for _, name := range []string{"hashes", "hashsum"} {
		if err := logging.SetLogLevel(name, config.GetLogLevel()); err != nil {
			fmt.Fprintf(stderr, "hashsum: %s\n", err)
			return 2
		}
	}

	alg, err := hashes.Lookup(*algName)
	if err != nil {
		fmt.Fprintf(stderr, "hashsum: %s\n", err)
		return 2
	}
	opts := &options{
		alg:     alg,
		hmacKey: *hmacKey,
		upper:   *upper,
		mh:      *mh,
		base:    *base,
		list:    *list,
		bench:   *bench,
		verbose: *verbose,
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "a":
			opts.explicit = true
		case "hmac":
			opts.hmac = true
		}
	})
	if opts.mh && opts.hmac {
		fmt.Fprintf(stderr, "hashsum: -mh and -hmac are mutually exclusive\n")
		return 2
	}

	if opts.list {
		hashes.PrintAlgorithms(stdout)
	}
	if opts.bench > 0 {
		if err := benchmark(config, opts, stdout); err != nil {
			fmt.Fprintf(stderr, "hashsum: %s\n", err)
			return 1
		}
	}
	if fs.NArg() == 0 {
		if opts.list || opts.bench > 0 {
			return 0
		}
		fs.Usage()
		return 2
	}

	var result *multierror.Error
	for _, file := range fs.Args() {
		line, err := sumFile(config, opts, file, stdin)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		fmt.Fprintln(stdout, line)
	}
	if err := result.ErrorOrNil(); err != nil {
		fmt.Fprintf(stderr, "hashsum: %s", err)
		return 1
	}
	return 0
}

func (opts *options) newHash() digest.Hasher {
	if opts.hmac {
		return opts.alg.NewHMAC([]byte(opts.hmacKey))
	}
	return opts.alg.New()
}

func (opts *options) label() string {
	if opts.hmac {
		return "HMAC-" + opts.alg.Name
	}
	return opts.alg.Name
}

func sumFile(config *env.Config, opts *options, file string,
	stdin io.Reader) (string, error) {

	var sum digest.Digest
	var err error

	if file == "-" {
		log.Debugf("reading standard input")
		sum, err = hashes.SumReader(config, stdin, opts.newHash())
	} else {
		sum, err = hashes.SumFile(config, file, opts.newHash)
	}
	if err != nil {
		return "", err
	}

	var value string
	switch {
	case opts.mh:
		m, err := mhash.Wrap(sum, opts.alg.Multihash)
		if err != nil {
			return "", err
		}
		value, err = mhash.Encode(m, opts.base)
		if err != nil {
			return "", err
		}
	case opts.upper:
		value = sum.HexUpper()
	default:
		value = sum.Hex()
	}
	return fmt.Sprintf("%s(%s) = %s", opts.label(), file, value), nil
}

func benchmark(config *env.Config, opts *options, out io.Writer) error {
	algs := hashes.Algorithms()
	if opts.explicit {
		algs = []*hashes.Algorithm{opts.alg}
	}
	timing, err := hashes.Benchmark(config, algs, opts.bench)
	if err != nil {
		return err
	}
	if opts.verbose {
		fmt.Fprintf(out, "Input: %s\n", hashes.FileSize(opts.bench))
	}
	timing.Print(out)
	return nil
}
