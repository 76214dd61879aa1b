// Package commands defines the hrtrack CLI and wires dependencies for subcommands.
//
// Commands
//
//   - login, logout, whoami   Manage the stored session
//   - candidates              Search, show and add candidates; read resumes
//   - vacancies               Search, show and archive vacancies
//   - interviews              Schedule, show and edit interviews
//   - tracks                  Work through applications and hiring tracks
//   - staff, tags             Look up colleagues and the tag dictionary
//
// # Implementation
//
// The root command loads configuration from the environment, applies flag
// overrides and builds the dependency graph before any subcommand runs. Each
// subcommand drives one screen inside a scope bound to the command's
// context, so Ctrl-C cancels whatever is in flight. Failures are printed
// with a retry hint and the process exits non-zero.
package commands
