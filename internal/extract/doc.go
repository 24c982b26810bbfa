// Package extract holds the normalized metadata record produced from engine
// logs and the scanners engine packages build their extractors from.
//
// Every scanner is best effort and returns (value, ok). A missing file, a
// short read, or an unexpected layout makes that one scanner report no data;
// extraction as a whole never fails and always yields a record whose unset
// fields stay at their zero value.
package extract
