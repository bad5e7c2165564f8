// Package geomset packs many WKB geometries into one self-describing blob.
//
// A set consists of a 32-byte little-endian header, an index of uint32
// payload offsets (one per record) and the payload itself: the records'
// native-order WKB laid end to end, optionally compressed as a whole.
//
//	+--------------------+
//	| header (32 bytes)  |  magic, flags, compression, count, offsets, size, xxhash64
//	+--------------------+
//	| index (4 x count)  |  offset of record i in the uncompressed payload
//	+--------------------+
//	| payload            |  concatenated WKB records (compressed)
//	+--------------------+
//
// With deduplication enabled, byte-identical records are stored once and
// share an index entry offset.
//
// Encoding:
//
//	enc, err := geomset.NewEncoder(geomset.WithCompression(format.CompressionZstd))
//	if err != nil {
//	    return err
//	}
//	for _, rec := range records {
//	    if err := enc.Add(rec); err != nil {
//	        return err
//	    }
//	}
//	blob, err := enc.Finish()
//
// Decoding validates the header, decompresses the payload, verifies its
// checksum and checks every record once. Afterwards At returns zero-copy
// raw views:
//
//	dec, err := geomset.NewDecoder(blob)
//	if err != nil {
//	    return err
//	}
//	for i, g := range dec.All() {
//	    fmt.Println(i, g.Type())
//	}
package geomset
