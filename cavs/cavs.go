//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package cavs parses NIST Cryptographic Algorithm Validation System
// (CAVS) response files. A response file consists of comment lines
// starting with '#', section parameters in brackets, and test vectors
// of "Key = Value" lines separated by empty lines:
//
//	#  CAVS 11.0
//	[L = 20]
//
//	Len = 24
//	Msg = 616263
//	MD = a9993e364706816aba3e25717850c26c9cd0d89d
//
// The byte-oriented SHA and SHAKE short and long message files and
// the SHAKE variable output files are supported.
package cavs

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// File is a parsed response file.
type File struct {
	Name    string
	Header  []string
	Vectors []*Vector
}

// Vector is a test vector.
type Vector struct {
	Point Point
	// Params are the section parameters in effect for the vector.
	Params    map[string]string
	Count     int // -1 if undefined
	Len       int // message length in bits
	Msg       []byte
	MD        []byte
	Outputlen int // output length in bits, 0 if undefined
	Output    []byte
}

// Message returns the vector message. A zero length message is
// encoded as a single zero byte in the files.
func (v *Vector) Message() []byte {
	return v.Msg[:v.Len/8]
}

// Expected returns the expected digest or XOF output.
func (v *Vector) Expected() []byte {
	if v.MD != nil {
		return v.MD
	}
	return v.Output
}

// ParseFile parses the response file path.
func ParseFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(path, f)
}

// Parse parses a response file from r. The name is used in the error
// positions.
func Parse(name string, in io.Reader) (*File, error) {
	p := &parser{
		file: &File{
			Name: name,
		},
		params: make(map[string]string),
	}
	r := bufio.NewReader(in)

	for {
		line, err := r.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		if len(line) == 0 && err == io.EOF {
			break
		}
		p.point = Point{
			Source: name,
			Line:   p.point.Line + 1,
		}
		if perr := p.parseLine(strings.TrimSpace(line)); perr != nil {
			return nil, perr
		}
		if err == io.EOF {
			break
		}
	}
	if err := p.flush(); err != nil {
		return nil, err
	}
	return p.file, nil
}

type parser struct {
	file    *File
	point   Point
	params  map[string]string
	current *Vector
	seen    map[string]bool
}

func (p *parser) parseLine(line string) error {
	switch {
	case len(line) == 0:
		return p.flush()

	case line[0] == '#':
		if len(p.file.Vectors) == 0 && p.current == nil {
			p.file.Header = append(p.file.Header,
				strings.TrimSpace(line[1:]))
		}
		return nil

	case line[0] == '[':
		if line[len(line)-1] != ']' {
			return p.point.Errorf("unterminated section: %s", line)
		}
		if err := p.flush(); err != nil {
			return err
		}
		key, value, ok := strings.Cut(line[1:len(line)-1], "=")
		if !ok {
			// Sections without values, for example "[SHAKE-128]",
			// name the algorithm.
			key = "Algorithm"
			value = line[1 : len(line)-1]
		}
		params := make(map[string]string)
		for k, v := range p.params {
			params[k] = v
		}
		params[strings.TrimSpace(key)] = strings.TrimSpace(value)
		p.params = params
		return nil
	}

	key, value, ok := strings.Cut(line, "=")
	if !ok {
		return p.point.Errorf("syntax error: %s", line)
	}
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)

	if p.current == nil || p.seen[key] {
		if err := p.flush(); err != nil {
			return err
		}
		p.current = &Vector{
			Point:  p.point,
			Params: p.params,
			Count:  -1,
		}
		p.seen = make(map[string]bool)
	}
	p.seen[key] = true

	var err error
	v := p.current

	switch key {
	case "COUNT":
		v.Count, err = p.parseInt(key, value)
	case "Len":
		v.Len, err = p.parseInt(key, value)
		if err == nil && v.Len%8 != 0 {
			err = p.point.Errorf("bit-oriented message length %d", v.Len)
		}
	case "Outputlen":
		v.Outputlen, err = p.parseInt(key, value)
	case "Msg":
		v.Msg, err = p.parseHex(key, value)
	case "MD":
		v.MD, err = p.parseHex(key, value)
	case "Output":
		v.Output, err = p.parseHex(key, value)
	default:
		err = p.point.Errorf("unsupported field %s", key)
	}
	return err
}

func (p *parser) parseInt(key, value string) (int, error) {
	i, err := strconv.Atoi(value)
	if err != nil || i < 0 {
		return 0, p.point.Errorf("invalid %s: %s", key, value)
	}
	return i, nil
}

func (p *parser) parseHex(key, value string) ([]byte, error) {
	b, err := hex.DecodeString(value)
	if err != nil {
		return nil, &Error{
			Point: p.point,
			Err:   fmt.Errorf("invalid %s: %w", key, err),
		}
	}
	return b, nil
}

// flush validates and stores the current vector.
func (p *parser) flush() error {
	v := p.current
	if v == nil {
		return nil
	}
	p.current = nil

	if v.Msg == nil {
		return v.Point.Errorf("vector without Msg")
	}
	if !p.seen["Len"] {
		// Variable output files omit the length.
		v.Len = len(v.Msg) * 8
	}
	want := v.Len / 8
	if want == 0 {
		want = 1
	}
	if len(v.Msg) != want {
		return v.Point.Errorf("Msg length %d does not match Len %d",
			len(v.Msg), v.Len)
	}
	if v.MD == nil && v.Output == nil {
		return v.Point.Errorf("vector without MD or Output")
	}
	if v.Outputlen == 0 && v.Output != nil {
		if ol, ok := v.Params["Outputlen"]; ok {
			n, err := strconv.Atoi(ol)
			if err != nil {
				return v.Point.Errorf("invalid Outputlen parameter: %s", ol)
			}
			v.Outputlen = n
		} else {
			v.Outputlen = len(v.Output) * 8
		}
	}
	if v.Output != nil && len(v.Output)*8 != v.Outputlen {
		return v.Point.Errorf("Output length %d does not match Outputlen %d",
			len(v.Output), v.Outputlen)
	}
	p.file.Vectors = append(p.file.Vectors, v)
	return nil
}
