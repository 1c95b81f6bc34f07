// Package osm adapts github.com/paulmach/osm's element readers (osmpbf,
// osmxml) behind one small interface, with magic-byte format detection and
// a bounding box the compiler can consult while streaming.
//
// Scanner.Element returns this package's own minimal OsmNode/OsmWay/
// OsmRelation record types, never paulmach/osm's richer Node/Way/Relation
// directly — package compile depends only on this local contract, so the
// parsing library stays an implementation detail confined to this one
// package.
//
// A parse failure ends the stream: Scan returns false and Err returns the
// error. Package compile turns that into the single undifferentiated
// ErrLoadingFailed per the ingest error taxonomy and logs the detail
// through package logging; this package does not log.
package osm
