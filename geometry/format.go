package geometry

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Textual rendering in the usual textbook notation, with two decimal
// places everywhere. Format takes a BCP 47 tag so the decimal separator
// follows the locale (11.42 in English, 11,42 in Russian); String always
// renders with the English dot.

// Format renders the point as A(-9.65; 11.42).
func (p Point) Format(lang language.Tag) string {
	return message.NewPrinter(lang).Sprintf("%c(%.2f; %.2f)", p.name, p.x, p.y)
}

func (p Point) String() string {
	return p.Format(language.English)
}

// Format renders the segment as AB(x1;y1;x2;y2).
func (s Segment) Format(lang language.Tag) string {
	return message.NewPrinter(lang).Sprintf("%c%c(%.2f;%.2f;%.2f;%.2f)",
		s.a.name, s.b.name, s.a.x, s.a.y, s.b.x, s.b.y)
}

func (s Segment) String() string {
	return s.Format(language.English)
}

// Format renders the general equation with zero-valued terms omitted
// entirely, in the fixed order x-term, y-term, free term, joined by
// explicit + and - operators: 5.23x + 5.00y - 6.11 = 0, 6.99y + 5.01 = 0,
// 9.12x = 0. A and B are never both zero, so the equation never collapses
// to just "= 0".
func (l Line) Format(lang language.Tag) string {
	pr := message.NewPrinter(lang)
	var eq strings.Builder
	if l.a != 0 {
		eq.WriteString(pr.Sprintf("%.2fx ", l.a))
	}
	switch {
	case l.a == 0 && l.b != 0:
		eq.WriteString(pr.Sprintf("%.2fy ", l.b))
	case l.b > 0:
		eq.WriteString(pr.Sprintf("+ %.2fy ", l.b))
	case l.b < 0:
		eq.WriteString(pr.Sprintf("- %.2fy ", -l.b))
	}
	switch {
	case l.c > 0:
		eq.WriteString(pr.Sprintf("+ %.2f ", l.c))
	case l.c < 0:
		eq.WriteString(pr.Sprintf("- %.2f ", -l.c))
	}
	eq.WriteString("= 0")
	return eq.String()
}

func (l Line) String() string {
	return l.Format(language.English)
}

// Format renders the resolved equation as y = 9.12x + 11.20.
func (l SlopeLine) Format(lang language.Tag) string {
	pr := message.NewPrinter(lang)
	if l.b < 0 {
		return pr.Sprintf("y = %.2fx - %.2f", l.k, -l.b)
	}
	return pr.Sprintf("y = %.2fx + %.2f", l.k, l.b)
}

func (l SlopeLine) String() string {
	return l.Format(language.English)
}

// Format renders the triangle as ABC(area), naming it by its vertices.
func (t Triangle) Format(lang language.Tag) string {
	return message.NewPrinter(lang).Sprintf("%c%c%c(%.2f)",
		t.sides[0].a.name, t.sides[1].a.name, t.sides[2].a.name, t.area)
}

func (t Triangle) String() string {
	return t.Format(language.English)
}
