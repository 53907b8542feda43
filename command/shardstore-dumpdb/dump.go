// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"reflect"

	"github.com/bitmark-inc/shardstore/storage"
)

type poolTag struct {
	tag  string
	name string
	pool *storage.PoolHandle
}

// every pool with its prefix tag
func poolTags() []poolTag {
	// this will be a struct type
	poolType := reflect.TypeOf(storage.Pool)
	poolValue := reflect.ValueOf(storage.Pool)

	tags := make([]poolTag, 0, poolType.NumField())
	for i := 0; i < poolType.NumField(); i += 1 {
		fieldInfo := poolType.Field(i)
		p, _ := poolValue.Field(i).Interface().(*storage.PoolHandle)
		tags = append(tags, poolTag{
			tag:  fieldInfo.Tag.Get("prefix"),
			name: fieldInfo.Name,
			pool: p,
		})
	}
	return tags
}

func poolByTag(tag string) *storage.PoolHandle {
	for _, t := range poolTags() {
		if tag == t.tag {
			return t.pool
		}
	}
	return nil
}

func dumpElements(w io.Writer, data []storage.Element, limit int, ascii bool) {
	for i, e := range data {
		fmt.Fprintf(w, "%d: Key: %x\n", i, e.Key)
		dumpValue(w, fmt.Sprintf("%d: Val: ", i), e.Value, limit, ascii)
	}
}

// print at most limit bytes of value, each line of a hex dump prefixed
func dumpValue(w io.Writer, prefix string, value []byte, limit int, ascii bool) {
	truncated := false
	if len(value) > limit {
		value = value[:limit]
		truncated = true
	}

	if !ascii {
		fmt.Fprintf(w, "%s%x", prefix, value)
	} else {
		scanner := bufio.NewScanner(bytes.NewBufferString(hex.Dump(value)))
		first := true
		for scanner.Scan() {
			if !first {
				fmt.Fprintf(w, "\n")
			}
			first = false
			fmt.Fprintf(w, "%s%s", prefix, scanner.Text())
		}
		if first {
			fmt.Fprintf(w, "%s", prefix)
		}
	}
	if truncated {
		fmt.Fprintf(w, " …")
	}
	fmt.Fprintf(w, "\n")
}
