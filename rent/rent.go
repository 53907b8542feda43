// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rent

import (
	"math"
	"sync"

	"github.com/bitmark-inc/shardstore/mode"
)

// StorageOverhead - bytes charged for every unit on top of its data
const StorageOverhead = 128

// TestingBalance - stands in for the exemption threshold on test chains
const TestingBalance = math.MaxUint64 / 2

// defaults
const (
	DefaultLamportsPerByteYear = 3480
	DefaultExemptionYears      = 2
)

// Exemption - minimum balance lookup for a unit size
type Exemption interface {
	MinimumBalance(size int) uint64
}

// Rent - storage cost model
type Rent struct {
	LamportsPerByteYear uint64 `gluamapper:"lamports_per_byte_year" json:"lamports_per_byte_year"`
	ExemptionYears      uint64 `gluamapper:"exemption_years" json:"exemption_years"`
}

// Default - rent when nothing is configured
var Default = Rent{
	LamportsPerByteYear: DefaultLamportsPerByteYear,
	ExemptionYears:      DefaultExemptionYears,
}

// MinimumBalance - balance a unit of size bytes must hold to be exempt
func (r Rent) MinimumBalance(size int) uint64 {
	return (StorageOverhead + uint64(size)) * r.LamportsPerByteYear * r.ExemptionYears
}

type fixed uint64

func (f fixed) MinimumBalance(int) uint64 {
	return uint64(f)
}

var globalData struct {
	sync.RWMutex
	rent Rent
}

func init() {
	globalData.rent = Default
}

// Configure - replace the rent model
//
// zero fields keep their default values
func Configure(r Rent) {
	if 0 == r.LamportsPerByteYear {
		r.LamportsPerByteYear = DefaultLamportsPerByteYear
	}
	if 0 == r.ExemptionYears {
		r.ExemptionYears = DefaultExemptionYears
	}

	globalData.Lock()
	globalData.rent = r
	globalData.Unlock()
}

// Current - the configured rent, used to fund newly opened units
func Current() Rent {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.rent
}

// ValidationExemption - threshold applied to externally supplied units
//
// on test chains a large fixed balance replaces the size based minimum
func ValidationExemption() Exemption {
	if mode.IsTesting() {
		return fixed(TestingBalance)
	}
	return Current()
}
