package ioformat

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/evrptw/core"
)

// ErrMalformedInstance indicates the reader could not parse the expected
// node/parameter lines out of the input stream.
var ErrMalformedInstance = errors.New("ioformat: malformed instance")

// ReadInstance parses the text format: a header line, then one row per node
// (string_id kind x y demand ready due service, kind in {d,f,c}), a blank
// line, then four "/value/"-tagged lines giving E, Q, r, g in that order.
func ReadInstance(r io.Reader) (*core.Instance, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedInstance)
	}

	var nodes []core.Node
	idx := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			break
		}
		node, err := parseNodeLine(line, idx)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
		idx++
	}

	var e, q, rr, g float64
	var eSet, qSet, rSet, gSet bool
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		key, val, err := parseTaggedValue(line)
		if err != nil {
			return nil, err
		}
		switch key {
		case "E":
			e, eSet = val, true
		case "Q":
			q, qSet = val, true
		case "r":
			rr, rSet = val, true
		case "g":
			g, gSet = val, true
		default:
			return nil, fmt.Errorf("%w: unknown parameter tag %q", ErrMalformedInstance, key)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ioformat: reading instance: %w", err)
	}
	if !eSet || !qSet || !rSet || !gSet {
		return nil, fmt.Errorf("%w: missing one of E, Q, r, g", ErrMalformedInstance)
	}

	return core.NewInstance(nodes, q, e, rr, g)
}

func parseNodeLine(line string, idx int) (core.Node, error) {
	fields := strings.Fields(line)
	if len(fields) != 8 {
		return core.Node{}, fmt.Errorf("%w: node line %q: want 8 fields, got %d", ErrMalformedInstance, line, len(fields))
	}

	kind, err := parseKind(fields[1])
	if err != nil {
		return core.Node{}, err
	}
	nums := make([]float64, 0, 6)
	for _, f := range fields[2:] {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return core.Node{}, fmt.Errorf("%w: node line %q: %v", ErrMalformedInstance, line, err)
		}
		nums = append(nums, v)
	}

	return core.Node{
		Index:   idx,
		ID:      fields[0],
		Kind:    kind,
		X:       nums[0],
		Y:       nums[1],
		Demand:  nums[2],
		Ready:   nums[3],
		Due:     nums[4],
		Service: nums[5],
	}, nil
}

func parseKind(tag string) (core.NodeKind, error) {
	switch tag {
	case "d":
		return core.Depot, nil
	case "f":
		return core.Station, nil
	case "c":
		return core.Customer, nil
	default:
		return 0, fmt.Errorf("%w: unknown node kind %q", ErrMalformedInstance, tag)
	}
}

// parseTaggedValue parses a line of the form "/E/ 120" into ("E", 120).
func parseTaggedValue(line string) (string, float64, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return "", 0, fmt.Errorf("%w: parameter line %q: want 2 fields", ErrMalformedInstance, line)
	}
	key := strings.Trim(fields[0], "/")
	val, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return "", 0, fmt.Errorf("%w: parameter line %q: %v", ErrMalformedInstance, line, err)
	}
	return key, val, nil
}
