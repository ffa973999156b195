// Package domain defines the core business entities for Deckhand.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Slide: one unit of a presentation, a closed set of variants
//   - Deck: an ordered, validated slide sequence grouped into sections
//   - TalkingPoint: a classified line of presenter-facing content
//   - GuideDocument: the facilitator projection of a deck
//   - PollAnswer, Reflection: participant responses captured per session
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
