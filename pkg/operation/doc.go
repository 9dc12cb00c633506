/*
Package operation implements the core synchronization logic for stagesync.

	+-------------+
	|  Operator   |
	|   (Sync)    |
	+------+------+
	       |
	+------+------+      +-------------+
	|    Clean    | ---> |    Copy     |
	| (post-order)|      | (manifest)  |
	+-------------+      +-------------+

🎯 Purpose:
- Empties the destination root, skipping ignore-list-protected entries
- Copies each manifest mapping into place, source existence checked first
- Runs the two phases in strict sequence and reports the aggregate outcome

🔄 Flow:
 1. Ensure the destination root exists (fatal on failure, nothing else runs)
 2. Recursively clean the root, matching ignore prefixes against paths
    relative to the original clean root
 3. Copy each mapping in manifest order, creating intermediate directories
 4. Return a Result with per-item failures and counts

📝 Design Philosophy:
Failure isolation is per item everywhere: one entry failing to delete, one
directory failing to list, or one mapping failing to copy is logged,
recorded on the Result, and never stops its siblings. Nothing is retried.
Execution is strictly sequential — the clean phase fully completes before
any copy begins, and every run is destructive-then-full-copy; there is no
diffing, no incremental sync, and no state retained between runs.
*/
package operation
