/*
Package operation implements the core rewrite run for tsfix.

	+-------------+
	|  Discover   |
	| (Candidates)|
	+------+------+
	       |
	+------+------+
	|   Rewrite   |
	| (Transform) |
	+------+------+
	       |
	+------+------+
	|    Write    |
	|  (In Place) |
	+-------------+

🎯 Purpose:
- Orchestrates the read-transform-write cycle over every candidate file
- Isolates per-file failures so one bad file never aborts the run
- Aggregates the run summary (fixed / unchanged / failed)

🔄 Flow:
1. Receives candidate paths from discover
2. Reads each file fully into memory
3. Applies the compiled rule set via rewrite
4. Writes back in place only when content changed
5. Reports each outcome via status

⚡ Key Responsibilities:
- Strictly sequential processing in discovery order
- Distinguishing read failures from write failures
- Dry-run support (diffs instead of writes)

📝 Design Philosophy:
The operation package owns file I/O and sequencing but no pattern logic;
rule semantics live entirely in rules and rewrite. Writes are destructive
and create no backups, so the only undo is external version control.
*/
package operation
