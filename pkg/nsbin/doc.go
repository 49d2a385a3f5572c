/*
Package nsbin sets the namespace compiled into a module file.

# Quick Start

	rep, err := nsbin.ApplyNamespace("Lib.dll", "My.Custom.Ns", nil, nil)
	if err != nil {
	    log.Fatal(err)
	}
	fmt.Printf("wrote %q at 0x%X\n", rep.Name, rep.Offset)

The artifact is modified in place. A record of the patch is written next to
it as Lib.dll.ddNSi.

# Names

Names that are not dotted identifiers are replaced by DefaultNamespace
instead of failing; PatchReport.Substituted tells the caller it happened.

# Partial success

When the artifact was patched but the marker could not be written,
ApplyNamespace returns both a report (State == StatePartiallyDone) and an
error matching ErrMarkerWrite:

	rep, err := nsbin.ApplyNamespace(path, name, nil, nil)
	if errors.Is(err, nsbin.ErrMarkerWrite) {
	    // rep.Name is in the artifact; provenance is missing
	}

# Encodings

The identifier and the name are encoded with the encoding passed to
ApplyNamespace (UTF-8 when nil). Use LookupEncoding for WHATWG labels such
as "utf-16le" or "windows-1252".
*/
package nsbin
