// Package cli parses command-line arguments, validates user input, and
// handles process-level concerns like exit codes. It translates the action
// selector and flags into the application's internal configuration without
// ever touching a provider.
package cli
