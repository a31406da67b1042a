package registrar

import (
	"context"
	"fmt"
	"strconv"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"coursecatalog-backend/lib/htmlutil"
)

var tracer = otel.Tracer("scrapers/registrar")

// DefaultInstitutionWide is the school label the registrar uses for
// offerings that belong to no particular school (ROTC, cross-school
// programs).
const DefaultInstitutionWide = "All University"

// SchoolOther replaces the institution-wide label on extracted courses.
const SchoolOther = "Other"

type Extractor struct {
	// InstitutionWide overrides DefaultInstitutionWide.
	InstitutionWide string
	// GroupLoneLetterSections files letter-numbered sections under the
	// lecture group when a course has no numeric sections at all. The
	// registrar's own results page drops such sections entirely, which
	// stays the default since downstream consumers may rely on either
	// behavior.
	GroupLoneLetterSections bool
}

func (e Extractor) institutionWide() string {
	if e.InstitutionWide != "" {
		return e.InstitutionWide
	}
	return DefaultInstitutionWide
}

// Extract turns one search results page into one Course per course block,
// in document order. It is total: malformed or missing fields degrade to
// empty strings or nil, never an error.
func (e Extractor) Extract(ctx context.Context, doc *goquery.Document, school string) []Course {
	_, span := tracer.Start(ctx, "registrar:Extract")
	defer span.End()

	if school == e.institutionWide() {
		school = SchoolOther
	}

	var courses []Course
	doc.Find("div.course-info").Each(func(_ int, block *goquery.Selection) {
		courses = append(courses, e.extractCourse(block, school))
	})

	span.SetAttributes(attribute.Int("course_count", len(courses)))
	return courses
}

func (e Extractor) extractCourse(block *goquery.Selection, school string) Course {
	id := block.AttrOr("id", "")
	if id == "" {
		id = uuid.NewString()
	}

	var sections []Section
	block.Find("div.course-section").Each(func(_ int, sel *goquery.Selection) {
		sections = append(sections, extractSection(sel))
	})

	return Course{
		Id:            id,
		School:        school,
		Department:    htmlutil.DisplayText(block.Find(".course-dept")),
		Title:         htmlutil.DisplayText(block.Find(".course-title")),
		CatalogNumber: htmlutil.DisplayText(block.Find(".course-catalog-nbr")),
		Units:         parseUnits(htmlutil.DisplayText(block.Find(".course-units"))),
		Description:   htmlutil.DisplayText(block.Find(".course-description")),
		Level:         htmlutil.DisplayText(block.Find(".course-level")),
		Sections:      e.groupSections(sections),
	}
}

// the section markup suffixes a shared class prefix with the field name,
// so fields are matched on class substring
func sectionField(sel *goquery.Selection, field string) string {
	return htmlutil.DisplayText(sel.Find(fmt.Sprintf(`[class*="section-%s"]`, field)))
}

func extractSection(sel *goquery.Selection) Section {
	return Section{
		Id:         sel.AttrOr("data-id", ""),
		Number:     sectionField(sel, "nbr"),
		Term:       sectionField(sel, "term"),
		Instructor: parseInstructors(sectionField(sel, "instructor")),
		Delivery:   sectionField(sel, "mode"),
		Days:       parseDays(sectionField(sel, "days")),
		Time:       parseMeetingTime(sectionField(sel, "time")),
		Seats:      parseSeats(sectionField(sel, "seats")),
	}
}

// groupSections splits a course's sections into lectures (numeric section
// numbers) and labs (everything else), preserving page order within each
// group. The lab group only exists when both kinds are present; a course
// with only letter sections keeps an empty lecture group unless
// GroupLoneLetterSections is set.
func (e Extractor) groupSections(sections []Section) SectionGroups {
	lecture := []Section{}
	var rest []Section
	for _, s := range sections {
		_, err := strconv.Atoi(s.Number)
		if err == nil {
			lecture = append(lecture, s)
		} else {
			rest = append(rest, s)
		}
	}

	if len(lecture) > 0 && len(rest) > 0 {
		return SectionGroups{Lecture: lecture, Lab: rest}
	}
	if len(lecture) == 0 && len(rest) > 0 && e.GroupLoneLetterSections {
		return SectionGroups{Lecture: rest}
	}
	return SectionGroups{Lecture: lecture}
}
