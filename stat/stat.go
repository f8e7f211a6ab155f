// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stat provides statistical transforms over grouped data
// tables.
//
// A stat derives new plotting variables from a table of data and the
// scale context it is plotted in. Stats are options structs that
// satisfy Stat, so they compose with a go-gg plotting pipeline: each
// maps a table.Grouping to a new table.Grouping, group by group, and
// the resulting columns are consumed by downstream geometry layers.
package stat

import "github.com/aclements/go-gg/table"

// A Stat transforms a grouped table into a new grouped table.
type Stat interface {
	F(table.Grouping) table.Grouping
}

// A ConfigError reports a misconfigured stat, such as a Function with
// no way to determine its sampling domain. Stats panic with a
// ConfigError rather than returning it because Stat has no error
// result and misconfiguration is a programmer error.
type ConfigError string

func (e ConfigError) Error() string { return string(e) }

// preserveConsts copies the constant columns from t into nt.
func preserveConsts(nt *table.Builder, t *table.Table) {
	for _, col := range t.Columns() {
		if nt.Has(col) {
			// Don't overwrite existing columns in nt.
			continue
		}
		if cv, ok := t.Const(col); ok {
			nt.AddConst(col, cv)
		}
	}
}
