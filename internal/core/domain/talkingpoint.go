package domain

import "strings"

// PointKind classifies one talking-point line.
type PointKind int

const (
	// PointPlain is ordinary prose.
	PointPlain PointKind = iota
	// PointHeader is a "**Header**: body" line.
	PointHeader
	// PointBullet is a "•"-prefixed line.
	PointBullet
)

// String returns the string representation of the point kind.
func (k PointKind) String() string {
	switch k {
	case PointHeader:
		return "header"
	case PointBullet:
		return "bullet"
	default:
		return "plain"
	}
}

// TalkingPoint is one classified line of presenter-facing content.
type TalkingPoint struct {
	// Kind is the classification.
	Kind PointKind

	// Header is set only for PointHeader.
	Header string

	// Content is the body text. For PointPlain it is the input unchanged.
	Content string
}

// bulletMarker is the authored bullet prefix.
const bulletMarker = "•"

// ParseTalkingPoint classifies a single talking-point line.
//
// A line of the form "**H**: B" is a header with Header "H" and Content
// B trimmed of surrounding whitespace. A line starting with "•" is a
// bullet with the marker and exactly one following space removed.
// Anything else is plain prose with Content equal to the input unchanged.
//
// Both the interactive renderer and the facilitator guide use this one
// classifier, so the two projections can never disagree about markup.
func ParseTalkingPoint(line string) TalkingPoint {
	if strings.HasPrefix(line, "**") {
		rest := line[2:]
		if end := strings.Index(rest, "**"); end >= 0 {
			header := rest[:end]
			after := rest[end+2:]
			if strings.HasPrefix(after, ":") {
				return TalkingPoint{
					Kind:    PointHeader,
					Header:  header,
					Content: strings.TrimSpace(after[1:]),
				}
			}
		}
	}

	if strings.HasPrefix(line, bulletMarker) {
		content := strings.TrimPrefix(line, bulletMarker)
		content = strings.TrimPrefix(content, " ")
		return TalkingPoint{Kind: PointBullet, Content: content}
	}

	return TalkingPoint{Kind: PointPlain, Content: line}
}

// ParseTalkingPoints classifies every line of a content slide's points.
func ParseTalkingPoints(lines []string) []TalkingPoint {
	points := make([]TalkingPoint, len(lines))
	for i, line := range lines {
		points[i] = ParseTalkingPoint(line)
	}
	return points
}
