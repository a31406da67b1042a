package registrar

// Course is one course block from the registrar's search results page,
// serialized verbatim into the term datasets.
type Course struct {
	Id            string        `json:"id"`
	School        string        `json:"school"`
	Department    string        `json:"department"`
	Title         string        `json:"title"`
	CatalogNumber string        `json:"catalogNumber"`
	// Units is nil when the registrar lists a variable unit range, in
	// which case the exact count is unknowable.
	Units       *int          `json:"units"`
	Description string        `json:"description"`
	Level       string        `json:"level"`
	Sections    SectionGroups `json:"sections"`
}

// SectionGroups separates a course's meeting sections into lectures and
// labs. Lab is only present when the course has both numeric and
// letter-numbered sections; consumers check for the key.
type SectionGroups struct {
	Lecture []Section `json:"lecture"`
	Lab     []Section `json:"lab,omitempty"`
}

type Section struct {
	Id string `json:"id"`
	// Number is the raw section label from the page ("01", "A"). It is
	// never reformatted, only classified as numeric or not.
	Number     string   `json:"number"`
	Term       string   `json:"term"`
	Instructor []string `json:"instructor"`
	Delivery   string   `json:"delivery"`
	Days       []string `json:"days,omitempty"`
	// Time is a [start, end] pair of minutes since midnight, or nil when
	// the section has no meeting time.
	Time []int `json:"time"`
	// Seats is the slash-separated seat counts column (typically
	// [enrolled, capacity]), or nil for a waitlist-only section.
	Seats []int `json:"seats"`
}
