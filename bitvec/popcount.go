// SPDX-License-Identifier: MIT
// Package: subiso/bitvec
//
// popcount.go — popcount strategies and one-time runtime selection.
//
// Contract:
//   - Strategy is fixed at package init and never changes afterwards.
//   - Every strategy returns the same count for the same buffer.

package bitvec

import (
	"encoding/binary"
	"math/bits"
	"runtime"

	"golang.org/x/sys/cpu"
)

// Strategy identifies the popcount implementation in use.
type Strategy int

const (
	// TableStrategy counts bits byte by byte through a 256-entry lookup table.
	TableStrategy Strategy = iota
	// HardwareStrategy counts 64-bit words with math/bits.OnesCount64.
	HardwareStrategy
)

// String returns a short, stable name for the strategy.
func (s Strategy) String() string {
	switch s {
	case TableStrategy:
		return "table"
	case HardwareStrategy:
		return "hardware"
	default:
		return "unknown"
	}
}

// wordBytes is the number of bytes consumed per hardware popcount step.
const wordBytes = 8

var (
	// byteCounts[b] is the number of set bits in byte b.
	byteCounts [256]uint8

	activeStrategy Strategy
	popcountFn     func([]byte) int
)

func init() {
	for i := 1; i < len(byteCounts); i++ {
		byteCounts[i] = byteCounts[i>>1] + uint8(i&1)
	}
	activeStrategy = detectStrategy()
	popcountFn = strategyFunc(activeStrategy)
}

// PopcountStrategy reports the strategy selected at init.
func PopcountStrategy() Strategy { return activeStrategy }

// detectStrategy probes the CPU for a native population-count instruction.
// Architectures without a probe fall back to the table.
func detectStrategy() Strategy {
	switch runtime.GOARCH {
	case "amd64", "386":
		if cpu.X86.HasPOPCNT {
			return HardwareStrategy
		}
	case "arm64":
		if cpu.ARM64.HasASIMD {
			return HardwareStrategy
		}
	case "ppc64", "ppc64le", "s390x", "riscv64", "loong64":
		return HardwareStrategy
	}

	return TableStrategy
}

func strategyFunc(s Strategy) func([]byte) int {
	if s == HardwareStrategy {
		return popcountWords
	}

	return popcountTable
}

func popcountTable(buf []byte) int {
	var total int
	for _, b := range buf {
		total += int(byteCounts[b])
	}

	return total
}

func popcountWords(buf []byte) int {
	var total, i int
	for ; i+wordBytes <= len(buf); i += wordBytes {
		total += bits.OnesCount64(binary.LittleEndian.Uint64(buf[i:]))
	}
	for ; i < len(buf); i++ {
		total += bits.OnesCount8(buf[i])
	}

	return total
}
