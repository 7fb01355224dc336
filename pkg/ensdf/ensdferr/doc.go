// Package ensdferr defines the error types shared by the ENSDF parsing
// packages.
//
// Every parse failure is represented by an Error carrying a Kind (malformed
// line, unknown record type, invalid property entry, invalid quantity, or an
// I/O failure from a collaborator) together with the offending raw card image
// and its position in the dataset. All kinds are fatal to the dataset being
// parsed: there is no per-record recovery, and the first error aborts the
// whole parse.
//
// Use IsKind to test the category of a returned error:
//
//	ds, err := parser.New().Parse(text)
//	if ensdferr.IsKind(err, ensdferr.KindInvalidProperty) {
//	    // a continuation field did not match the property grammar
//	}
package ensdferr
