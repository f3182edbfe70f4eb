// Package query answers questions about a finished index.
//
// Both queries are single linear scans over the record slice returned by
// indexer.Run and have no side effects. Because Run sorts records by path,
// ChecksumOf resolves duplicate base names to the lexically smallest path.
package query
