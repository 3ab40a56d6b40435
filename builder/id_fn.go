// SPDX-License-Identifier: MIT
// Package: longpath/builder
//
// id_fn.go - vertex label schemes.
//
// Graphs address vertices by int; an IDFn only names them for humans
// (edge-list output of generated fixtures, see Labels).

package builder

import (
	"fmt"
	"strconv"
	"strings"
)

// Scheme names accepted by IDScheme.
const (
	SchemeDecimal      = "decimal"
	SchemeExcel        = "excel"
	SchemeAlphanumeric = "alnum"
	SchemeHex          = "hex"
	SchemePrefix       = "prefix"
)

// IDFn names the vertex with zero-based index idx. It must be pure.
type IDFn func(idx int) string

// DefaultIDFn: 0→"0", 42→"42".
func DefaultIDFn(idx int) string { return strconv.Itoa(idx) }

// AlphanumericIDFn is base 36: 10→"a", 36→"10". Panics on idx < 0.
func AlphanumericIDFn(idx int) string {
	return strconv.FormatInt(int64(checkIndex("AlphanumericIDFn", idx)), 36)
}

// HexIDFn is lowercase base 16: 255→"ff". Panics on idx < 0.
func HexIDFn(idx int) string {
	return strconv.FormatInt(int64(checkIndex("HexIDFn", idx)), 16)
}

// ExcelColumnIDFn names columns like a spreadsheet: 0→"A", 25→"Z",
// 26→"AA", 702→"AAA". Panics on idx < 0.
func ExcelColumnIDFn(idx int) string {
	i := checkIndex("ExcelColumnIDFn", idx)
	var buf [16]byte
	pos := len(buf)
	for ; i >= 0; i = i/26 - 1 {
		pos--
		buf[pos] = byte('A' + i%26)
	}

	return string(buf[pos:])
}

// PrefixIDFn returns prefix followed by the decimal index ("v0", "v1", ...).
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(checkIndex("PrefixIDFn", idx))
	}
}

func checkIndex(fn string, idx int) int {
	if idx < 0 {
		panic(fmt.Sprintf("%s: negative index %d", fn, idx))
	}

	return idx
}

// WithPrefixIDs labels vertices with PrefixIDFn(prefix).
func WithPrefixIDs(prefix string) BuilderOption { return WithIDScheme(PrefixIDFn(prefix)) }

// WithDefaultIDs restores decimal labels.
func WithDefaultIDs() BuilderOption { return WithIDScheme(DefaultIDFn) }

// WithExcelColumnIDs labels vertices A, B, ..., Z, AA, ...
func WithExcelColumnIDs() BuilderOption { return WithIDScheme(ExcelColumnIDFn) }

// WithHexIDs labels vertices in hexadecimal.
func WithHexIDs() BuilderOption { return WithIDScheme(HexIDFn) }

// WithAlphanumericIDs labels vertices in base 36.
func WithAlphanumericIDs() BuilderOption { return WithIDScheme(AlphanumericIDFn) }

// IDScheme resolves a scheme name (case-insensitive) to its IDFn. prefix is
// used by SchemePrefix only. Returns ErrUnknownScheme for any other name.
func IDScheme(name, prefix string) (IDFn, error) {
	switch strings.ToLower(name) {
	case SchemeDecimal, "":
		return DefaultIDFn, nil
	case SchemeExcel:
		return ExcelColumnIDFn, nil
	case SchemeAlphanumeric:
		return AlphanumericIDFn, nil
	case SchemeHex:
		return HexIDFn, nil
	case SchemePrefix:
		return PrefixIDFn(prefix), nil
	default:
		return nil, fmt.Errorf("IDScheme: %q: %w", name, ErrUnknownScheme)
	}
}
