/*
Package filesystem wraps the two filesystem operations the indexer performs on
every file: probing metadata and opening the file for reading.

# Purpose

Both operations are instrumented through a package-level Observer so that the
metrics package can record durations and error counts without this package
importing Prometheus. When no observer is installed (the default in tests),
recording is skipped.

# Usage

	meta, err := filesystem.Probe("/data/report.pdf")
	if err != nil {
	    // missing, permission denied, or not a regular file
	}
	fmt.Println(meta.Size, meta.UnixSeconds())

	r, err := filesystem.Open("/data/report.pdf")
	if err != nil {
	    return err
	}
	defer r.Close()

# Timestamps

Metadata.UnixSeconds normalizes the modification time to whole seconds since
1970-01-01 UTC. Values before the epoch clamp to zero.

# Errors

No operation is retried. Probe returns ErrNotRegular (wrapped with the path)
for directories, devices, sockets and named pipes.
*/
package filesystem
