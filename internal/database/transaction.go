package database

// Atomic batch utilities.
//
// All multi-statement writes in Aisle are batch-based: statements accumulate
// in memory and are submitted as one BEGIN TRANSACTION / COMMIT TRANSACTION
// query. There is no isolation between Add() calls; everything succeeds or
// fails together at Execute() time.

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// TxBuilder builds atomic transaction queries with automatic variable
// namespacing, so statements from different sources can both bind $data
// without colliding.
type TxBuilder struct {
	statements []string
	vars       map[string]interface{}
	varCounter int
}

// NewTxBuilder creates a new transaction builder
func NewTxBuilder() *TxBuilder {
	return &TxBuilder{
		vars: make(map[string]interface{}),
	}
}

// Add adds a statement to the transaction, renaming its variables to avoid
// collisions with statements already added. Names match on word boundaries,
// so renaming $id never rewrites part of $id2, and names are processed in
// sorted order to keep the numbering stable.
func (tb *TxBuilder) Add(query string, vars map[string]interface{}) {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	renamed := query
	for _, name := range names {
		tb.varCounter++
		unique := fmt.Sprintf("v%d_%s", tb.varCounter, name)
		re := regexp.MustCompile(`\$` + regexp.QuoteMeta(name) + `\b`)
		renamed = re.ReplaceAllString(renamed, "$$"+unique)
		tb.vars[unique] = vars[name]
	}
	tb.statements = append(tb.statements, renamed)
}

// Build returns the complete transaction query and merged variables
func (tb *TxBuilder) Build() (string, map[string]interface{}) {
	if len(tb.statements) == 0 {
		return "", nil
	}

	var sb strings.Builder
	sb.WriteString("BEGIN TRANSACTION;\n")
	for _, stmt := range tb.statements {
		sb.WriteString(stmt)
		if !strings.HasSuffix(strings.TrimSpace(stmt), ";") {
			sb.WriteString(";")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("COMMIT TRANSACTION;")

	return sb.String(), tb.vars
}

// AtomicBatch is the fluent front end over TxBuilder for the common case of
// a few statements that must land together.
type AtomicBatch struct {
	queries []batchQuery
}

type batchQuery struct {
	query string
	vars  map[string]interface{}
}

// NewAtomicBatch creates a new atomic batch
func NewAtomicBatch() *AtomicBatch {
	return &AtomicBatch{}
}

// Add adds a query to the batch
func (ab *AtomicBatch) Add(query string, vars map[string]interface{}) *AtomicBatch {
	ab.queries = append(ab.queries, batchQuery{query: query, vars: vars})
	return ab
}

// Len returns the number of queries in the batch
func (ab *AtomicBatch) Len() int {
	return len(ab.queries)
}

// Execute runs all queries as a single transaction
func (ab *AtomicBatch) Execute(ctx context.Context, db Database) error {
	if len(ab.queries) == 0 {
		return nil
	}

	tb := NewTxBuilder()
	for _, q := range ab.queries {
		tb.Add(q.query, q.vars)
	}

	query, vars := tb.Build()
	return db.Execute(ctx, query, vars)
}
