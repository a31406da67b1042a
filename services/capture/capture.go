package capture

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"coursecatalog-backend/lib/scrapers/registrar"
)

var tracer = otel.Tracer("services/capture")

// Searcher is the fetch side of the pipeline, implemented by
// registrar.Client.
type Searcher interface {
	Search(ctx context.Context, q registrar.Query) ([]byte, error)
}

type Runner struct {
	Source    Searcher
	Store     Store
	Extractor registrar.Extractor
	Terms     []Term
	Schools   []School
}

// Run executes one capture pass: plan the terms to fetch, scrape each
// planned term school by school (and department by department when a
// school is configured with an explicit department list), write each
// term's dataset, then record every configured term in the index.
//
// Fetching is strictly sequential; the output order of a term's courses
// is (school, department, document order) and downstream consumers rely
// on it.
//
// A fetch failure aborts the whole run before the index is rewritten, so
// a term is never recorded as captured without its dataset on disk. A
// term removed from the configuration drops out of the index on the next
// successful run.
func (r Runner) Run(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "capture:Run")
	defer span.End()

	prior, err := r.Store.ReadIndex()
	if err != nil {
		return fmt.Errorf("read capture index: %w", err)
	}

	planned := Plan(r.Terms, prior)
	span.SetAttributes(attribute.Int("planned_terms", len(planned)))
	slog.InfoContext(ctx, "planned capture", "terms", planned)

	for _, term := range planned {
		courses, err := r.captureTerm(ctx, term)
		if err != nil {
			return err
		}
		err = r.Store.WriteTerm(term, courses)
		if err != nil {
			return fmt.Errorf("write term %q: %w", term, err)
		}
		slog.InfoContext(ctx, "captured term", "term", term, "courses", len(courses))
	}

	index := Index{Terms: make([]string, len(r.Terms))}
	for i, t := range r.Terms {
		index.Terms[i] = t.Name
	}
	return r.Store.WriteIndex(index)
}

func (r Runner) captureTerm(ctx context.Context, term string) ([]registrar.Course, error) {
	ctx, span := tracer.Start(ctx, "capture:captureTerm")
	defer span.End()

	var courses []registrar.Course
	for _, school := range r.Schools {
		departments := school.Departments
		if len(departments) == 0 {
			departments = []string{""}
		}
		for _, department := range departments {
			slog.InfoContext(
				ctx, "fetching catalog",
				"term", term,
				"school", school.Name,
				"department", department,
			)
			page, err := r.Source.Search(ctx, registrar.Query{
				Term:       term,
				School:     school.Name,
				Department: department,
			})
			if err != nil {
				return nil, fmt.Errorf(
					"fetch %s/%s for %s: %w",
					school.Name, department, term, err,
				)
			}
			doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
			if err != nil {
				return nil, fmt.Errorf("parse results page: %w", err)
			}
			courses = append(courses, r.Extractor.Extract(ctx, doc, school.Name)...)
		}
	}
	return courses, nil
}
