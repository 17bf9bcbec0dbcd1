/*
Package status tracks and reports per-file outcomes for a rewrite run.

	            +-------------+
	            |   Status    |
	            | (Reporting) |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	|  Summary  |           |  Logs   |
	| (Counts)  |           | (UI/UX) |
	+-----------+           +---------+

🎯 Purpose:
- Defines the per-file outcome model (fixed, unchanged, read/write failed)
- Aggregates run counters
- Formats user-facing output: colored outcome lines, summary, unified diffs

🔄 Flow:
1. Receives a FileResult from operation after each file
2. Updates the summary counters
3. Prints outcome lines (stdout) and error lines (stderr)
4. Renders the final "Fixed N files" banner

📝 Design Philosophy:
The headline count deliberately reflects only files that changed; failures
are reported separately. Outcome lines go to a single predictable stream
per kind: results on stdout, errors on stderr.
*/
package status
