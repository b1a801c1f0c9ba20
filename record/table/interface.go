/*
 * MIT License
 *
 * Copyright (c) 2022 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

// Package table is the in-memory working set a site accumulates between
// flushes: one VisitingRecord per URL, keyed by its fingerprint. It mirrors
// the shape of database/kvtypes.KVTable (Get/Del/List/Walk) but flushes as a
// single sorted-by-fingerprint file rather than one item per storage key,
// since that is the layout spec 4.E/4.F/4.G share across base and temp files.
package table

import (
	rec "github.com/sabouaram/sitemapgen/record"
)

// FuncWalk is called for every record during an ascending-fingerprint Walk.
// Returning false stops the iteration early.
type FuncWalk func(r rec.VisitingRecord) bool

// Table is the mutable in-memory table of VisitingRecords for one site.
type Table interface {
	// Add records a visit to url. If the fingerprint is new, it is inserted
	// with FirstAppear = LastAccess = now and both counters at 1. If it is
	// already known, CountAccess is incremented and LastAccess is refreshed;
	// CountChange is additionally incremented and LastChange set iff
	// contentHash, lastModified or lastFileWrite differ from the stored
	// value, per spec 4.E.
	Add(url string, contentHash rec.Fingerprint, lastModified, lastFileWrite, now int64) (rec.VisitingRecord, error)

	// Get returns the record for a fingerprint, or false if unknown.
	Get(fp rec.Fingerprint) (rec.VisitingRecord, bool)
	// Del removes a record.
	Del(fp rec.Fingerprint)
	// List returns every record, in ascending fingerprint order.
	List() []rec.VisitingRecord
	// Walk iterates in ascending fingerprint order until fct returns false.
	Walk(fct FuncWalk)

	// Size returns the number of records currently held.
	Size() int
	// Clear empties the table.
	Clear()

	// Save writes every record, sorted by fingerprint, to path as a single
	// flat file in the temp/base wire format.
	Save(path string) error
	// Load replaces the table's contents with the records read from path.
	Load(path string) error
}

// New returns an empty Table.
func New() Table {
	return &table{records: make(map[rec.Fingerprint]rec.VisitingRecord)}
}
