package itinerary

import "time"

// TightConnectionThreshold is the largest gap between two same-day items that
// still counts as a risky connection.
const TightConnectionThreshold = 120 * time.Minute

type ConflictType string

const (
	ConflictOverlap         ConflictType = "overlap"
	ConflictTightConnection ConflictType = "tight_connection"
)

type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

func (s Severity) rank() int {
	switch s {
	case SeverityCritical:
		return 2
	case SeverityWarning:
		return 1
	default:
		return 0
	}
}

// ConflictLink is one pairwise relationship seen from the owning item.
type ConflictLink struct {
	ItemID   string       `json:"item_id"`
	Type     ConflictType `json:"type"`
	Severity Severity     `json:"severity"`
}

// Conflict aggregates every link of one item. Type and Severity are the worst
// across its links, overlap ranking above a tight connection.
type Conflict struct {
	ItemID   string         `json:"item_id"`
	With     []ConflictLink `json:"with"`
	Type     ConflictType   `json:"type"`
	Severity Severity       `json:"severity"`
}

// ConflictingIDs returns the other item ids in detection order.
func (c Conflict) ConflictingIDs() []string {
	ids := make([]string, 0, len(c.With))
	for _, l := range c.With {
		ids = append(ids, l.ItemID)
	}
	return ids
}

func (c *Conflict) add(link ConflictLink) {
	if len(c.With) == 0 || link.Type == ConflictOverlap {
		c.Type = link.Type
	}
	if link.Severity.rank() > c.Severity.rank() || c.Severity == "" {
		c.Severity = link.Severity
	}
	c.With = append(c.With, link)
}

type locatedItem struct {
	item  Item
	span  TimeRange
	dayID string
}

// DetectConflicts compares every pair of items that start on the same calendar
// day and returns a record for each item involved in at least one conflict.
// Items that cannot be located in time are skipped.
func DetectConflicts(items []Item) map[string]Conflict {
	located := make([]locatedItem, 0, len(items))
	for _, it := range items {
		span, ok := ExtractTimeRange(it)
		if !ok {
			continue
		}
		located = append(located, locatedItem{item: it, span: span, dayID: span.DayKey()})
	}

	conflicts := make(map[string]Conflict)
	record := func(owner, other string, kind ConflictType, sev Severity) {
		c := conflicts[owner]
		c.ItemID = owner
		c.add(ConflictLink{ItemID: other, Type: kind, Severity: sev})
		conflicts[owner] = c
	}

	for i := 0; i < len(located); i++ {
		for j := i + 1; j < len(located); j++ {
			a, b := located[i], located[j]
			if a.dayID != b.dayID || a.item.ID == b.item.ID {
				continue
			}

			kind, hit := classify(a.span, b.span)
			if !hit {
				continue
			}

			// Severity is symmetric, so both sides share one value.
			sev := severityFor(a.item.Kind(), b.item.Kind(), kind)
			record(a.item.ID, b.item.ID, kind, sev)
			record(b.item.ID, a.item.ID, kind, sev)
		}
	}

	return conflicts
}

func classify(a, b TimeRange) (ConflictType, bool) {
	if Overlaps(a, b) {
		return ConflictOverlap, true
	}
	// Disjoint ranges have one positive directional gap; the other is negative.
	gap := max(b.Start.Sub(a.End), a.Start.Sub(b.End))
	if gap > 0 && gap < TightConnectionThreshold {
		return ConflictTightConnection, true
	}
	return "", false
}

// Overlaps reports whether either range has an endpoint inside the other.
func Overlaps(a, b TimeRange) bool {
	return a.Contains(b.Start) || a.Contains(b.End) || b.Contains(a.Start) || b.Contains(a.End)
}

func severityFor(a, b Kind, kind ConflictType) Severity {
	switch {
	case a == KindFlight || b == KindFlight:
		return SeverityCritical
	case a == KindActivity && b == KindActivity && kind == ConflictOverlap:
		return SeverityCritical
	case kind == ConflictTightConnection:
		return SeverityWarning
	default:
		return SeverityInfo
	}
}
