// Package match ranks member names against a misspelt column name.
//
// Names are normalised first (case folded, separators dropped) so that
// "customer_name", "CustomerName" and "customerName" compare equal, then scored
// with a rune based Levenshtein similarity.
package match
