// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - DeckSource: Loads the slide sequence (local TOML file or GitHub fetch)
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - ResponseStore: Persistence for poll answers and reflections.
//     Without it, responses are display-only events.
//   - ConfigStore: Application configuration. Without it, defaults apply.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
