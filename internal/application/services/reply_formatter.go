package services

import (
	"fmt"
	"strings"

	"github.com/ajaniguide/ajani/backend/internal/domain/entities"
	"github.com/ajaniguide/ajani/backend/pkg/utils"
)

// ReplyFormatter renders one page of results as a chat reply. The
// `[Copy →](NAME)` fragment is an inline markup convention the presentation
// layer parses into a clipboard control; its literal shape must not change.
type ReplyFormatter struct{}

// NewReplyFormatter creates a new reply formatter.
func NewReplyFormatter() *ReplyFormatter {
	return &ReplyFormatter{}
}

// Format renders the page with a running 1-based index continuing across
// pages.
func (f *ReplyFormatter) Format(q *entities.ListingQuery, page Page) string {
	var b strings.Builder

	b.WriteString("Here are the ")
	// Descending sort takes prefix priority over cheapest.
	if q.Sort == entities.SortDescending {
		b.WriteString("most expensive ")
	} else if q.Cheapest {
		b.WriteString("cheapest ")
	}
	b.WriteString(q.Category)
	b.WriteString(" options")
	if q.Area != "" {
		fmt.Fprintf(&b, " in **%s**", q.Area)
	}
	if q.NearMe {
		b.WriteString(" near you")
	}
	if q.MinPrice != nil {
		fmt.Fprintf(&b, " above ₦%s", utils.FormatThousands(*q.MinPrice))
	}
	if q.MaxPrice != nil {
		fmt.Fprintf(&b, " under ₦%s", utils.FormatThousands(*q.MaxPrice))
	}
	b.WriteString(":")

	for i, l := range page.Items {
		fmt.Fprintf(&b, "\n\n%d. %s\n%s · from ₦%s\n[Copy →](%s)",
			page.StartIndex+i+1,
			l.Name,
			utils.CapitalizeFirst(l.Area),
			utils.FormatThousands(l.PriceFrom),
			l.Name,
		)
	}

	if page.HasMore {
		b.WriteString("\n\nType \"more\" to see more options.")
	} else {
		b.WriteString("\n\nThat's all I have for now.")
	}

	return b.String()
}

// NoResults is the reply for a query that matched nothing at all.
func (f *ReplyFormatter) NoResults(q *entities.ListingQuery) string {
	return fmt.Sprintf("I couldn't find any %s listings matching that request. Try a different area or budget.", q.Category)
}

// NoMoreResults is the reply for a "more" that ran past the last page.
func (f *ReplyFormatter) NoMoreResults(q *entities.ListingQuery) string {
	return fmt.Sprintf("That's everything I have for %s right now. Send a new request any time.", q.Category)
}
