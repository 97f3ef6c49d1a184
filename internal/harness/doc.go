// Package harness generates the long-running development harness for a
// project.
//
// The harness is a directory of tracking and bootstrap files that carries a
// project across many working sessions:
//
//	<project>/long_running/<feature-name>/
//	├── feature_list.json   feature backlog with pass/fail status
//	├── progress.txt        session progress log
//	└── init.sh             environment bootstrap script (mode 0755)
//
// Initialization is a single synchronous pass: resolve the project path,
// create missing directories, render the three artifacts, write them. Files
// are unconditionally overwritten on re-run; only the embedded timestamps
// differ between runs. There is no rollback - a failure aborts at the point
// it occurred and earlier writes stay on disk.
//
// The generated init.sh is never executed by this package.
package harness
