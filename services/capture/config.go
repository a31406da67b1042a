package capture

// Term is one academic term to capture. Active terms are refetched on
// every run because their enrollment keeps changing; inactive terms are
// fetched once and then skipped.
type Term struct {
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// School maps a school name to the department codes to scrape within it.
// An empty department list means the whole school in one request.
type School struct {
	Name        string   `json:"name"`
	Departments []string `json:"departments"`
}

// Config is the static description of a capture deployment, read from
// config.json5.
type Config struct {
	// Output is the directory term datasets and the capture index are
	// written to.
	Output  string `json:"output"`
	BaseUrl string `json:"base_url"`
	// InstitutionWide optionally overrides the registrar's label for
	// institution-wide offerings.
	InstitutionWide         string   `json:"institution_wide"`
	GroupLoneLetterSections bool     `json:"group_lone_letter_sections"`
	Terms                   []Term   `json:"terms"`
	Schools                 []School `json:"schools"`
}
