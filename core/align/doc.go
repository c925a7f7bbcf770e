// Package align contains the semi-global alignment core. It never imports
// cli, writers, or any I/O package; keep it domain-only. Callers supply
// strings and receive tuples — it performs no traceback and no I/O.
package align
