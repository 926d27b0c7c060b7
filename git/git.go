// Package git wraps the git subprocess operations the commit engine needs:
// repository status, staging, committing, and stat queries.
//
// The package is organized into focused modules:
//   - service.go: Service struct, constructors, timeout handling
//   - status.go: porcelain status parsing, untracked probe, repository probe
//   - commit.go: staging and commit flow, attribution trailer
//   - stats.go: per-commit diff stats, repository-wide stats
//   - validate.go: advisory pre-commit file validation
package git
