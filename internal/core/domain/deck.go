package domain

import "fmt"

// Deck is an ordered, immutable slide sequence grouped into named
// sections. A Deck is only obtainable through NewDeck, which validates
// the content and builds an explicit id-to-index lookup so navigation
// never assumes ids are dense or match positions.
type Deck struct {
	title    string
	sections []string
	slides   []Slide
	byID     map[int]int
}

// SectionGroup is one named section with its slides in original order.
type SectionGroup struct {
	Name   string
	Slides []Slide
}

// NewDeck validates slides against the ordered section list and builds a
// deck. Validation is fail-fast: the first defect is reported with the
// offending slide id, and nothing is coerced or truncated.
func NewDeck(title string, sections []string, slides []Slide) (*Deck, error) {
	if len(slides) == 0 {
		return nil, ErrEmptyDeck
	}
	if len(sections) == 0 {
		return nil, fmt.Errorf("%w: no sections declared", ErrInvalidDeck)
	}

	known := make(map[string]bool, len(sections))
	for _, name := range sections {
		if name == "" {
			return nil, fmt.Errorf("%w: empty section name", ErrInvalidDeck)
		}
		if known[name] {
			return nil, fmt.Errorf("%w: duplicate section %q", ErrInvalidDeck, name)
		}
		known[name] = true
	}

	byID := make(map[int]int, len(slides))
	for i, s := range slides {
		base := s.Base()
		if base.ID <= 0 {
			return nil, fmt.Errorf("%w: slide at position %d: id must be positive, got %d",
				ErrInvalidDeck, i, base.ID)
		}
		if prev, dup := byID[base.ID]; dup {
			return nil, fmt.Errorf("%w: slide %d: duplicate id (also at position %d)",
				ErrInvalidDeck, base.ID, prev)
		}
		if !known[base.Section] {
			return nil, fmt.Errorf("%w: slide %d: unknown section %q",
				ErrInvalidDeck, base.ID, base.Section)
		}
		if base.Duration < 0 {
			return nil, fmt.Errorf("%w: slide %d: negative duration %v",
				ErrInvalidDeck, base.ID, base.Duration)
		}
		if err := validateVariant(s); err != nil {
			return nil, err
		}
		byID[base.ID] = i
	}

	return &Deck{
		title:    title,
		sections: sections,
		slides:   slides,
		byID:     byID,
	}, nil
}

// validateVariant checks variant-specific invariants.
func validateVariant(s Slide) error {
	id := s.Base().ID
	switch v := s.(type) {
	case *PollSlide:
		if len(v.Options) < 2 {
			return fmt.Errorf("%w: slide %d: poll needs at least 2 options, got %d",
				ErrInvalidDeck, id, len(v.Options))
		}
		if v.CorrectAnswer != nil {
			if *v.CorrectAnswer < 0 || *v.CorrectAnswer >= len(v.Options) {
				return fmt.Errorf("%w: slide %d: correct answer %d out of range [0,%d)",
					ErrInvalidDeck, id, *v.CorrectAnswer, len(v.Options))
			}
		}
	case *TableSlide:
		if len(v.Headers) == 0 {
			return fmt.Errorf("%w: slide %d: table has no headers", ErrInvalidDeck, id)
		}
		for r, row := range v.Rows {
			if len(row) != len(v.Headers) {
				return fmt.Errorf("%w: slide %d: row %d has %d cells, want %d",
					ErrInvalidDeck, id, r, len(row), len(v.Headers))
			}
		}
	case *TreeSlide:
		if len(v.Steps) == 0 {
			return fmt.Errorf("%w: slide %d: tree has no steps", ErrInvalidDeck, id)
		}
	case *QuoteSlide:
		if v.Quote == "" {
			return fmt.Errorf("%w: slide %d: quote slide has no quote", ErrInvalidDeck, id)
		}
	}
	return nil
}

// Title returns the deck title.
func (d *Deck) Title() string { return d.title }

// Sections returns the ordered section names.
func (d *Deck) Sections() []string { return d.sections }

// Slides returns the full slide sequence in order.
func (d *Deck) Slides() []Slide { return d.slides }

// Len returns the number of slides.
func (d *Deck) Len() int { return len(d.slides) }

// Slide returns the slide at position i.
func (d *Deck) Slide(i int) Slide { return d.slides[i] }

// IndexOf returns the position of the slide with the given id.
func (d *Deck) IndexOf(id int) (int, bool) {
	i, ok := d.byID[id]
	return i, ok
}

// BySection partitions the slides by the ordered section list. Every
// slide appears in exactly one group, relative order is preserved, and
// a declared section with no slides yields an empty group.
func (d *Deck) BySection() []SectionGroup {
	groups := make([]SectionGroup, len(d.sections))
	for i, name := range d.sections {
		groups[i].Name = name
	}
	pos := make(map[string]int, len(d.sections))
	for i, name := range d.sections {
		pos[name] = i
	}
	for _, s := range d.slides {
		i := pos[s.Base().Section]
		groups[i].Slides = append(groups[i].Slides, s)
	}
	return groups
}

// TotalDuration sums the pacing estimates over all slides in minutes,
// treating an unset duration as 0. Fractional minutes are preserved.
func (d *Deck) TotalDuration() float64 {
	var total float64
	for _, s := range d.slides {
		total += s.Base().Duration
	}
	return total
}
