// Package community implements the per-community aggregate Table of §3/§4.7
// (atomic size and weighted-degree per community id), the typed community
// ID with its reserved sentinels (§9's "typed optional" resolution), and the
// cluster-assignment renumbering helper left unimplemented by the source
// (§9, "renumberClustersContiguously").
package community
