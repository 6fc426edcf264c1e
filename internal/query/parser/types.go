package parser

// ItemType narrows a project-scoped query to one category of items.
// The zero value means every category.
type ItemType string

const (
	ItemAll    ItemType = ""
	ItemTasks  ItemType = "tasks"
	ItemEvents ItemType = "events"
	ItemNotes  ItemType = "notes"
	ItemFiles  ItemType = "files"
)

// ProjectInfo is the project reference pulled out of a query.
// An empty ProjectName means no project was referenced, in which case
// ItemType is always ItemAll.
type ProjectInfo struct {
	ProjectName string
	ItemType    ItemType
}

// Found reports whether a project name was extracted.
func (p ProjectInfo) Found() bool {
	return p.ProjectName != ""
}

// DateRange is the date reference pulled out of a query. Dates are local
// YYYY-MM-DD strings. Either TargetDate is set, or StartDate and EndDate are
// both set, or nothing is.
type DateRange struct {
	TargetDate        string
	StartDate         string
	EndDate           string
	DateFilters       []string
	MatchedMonthToken string
}

// IsZero reports whether no date was extracted.
func (d DateRange) IsZero() bool {
	return d.TargetDate == "" && d.StartDate == "" && d.EndDate == "" && len(d.DateFilters) == 0
}

// HasRange reports whether a start/end range was extracted.
func (d DateRange) HasRange() bool {
	return d.StartDate != "" && d.EndDate != ""
}

// IsMonthRange reports whether the range came from a "in <month>" phrase.
func (d DateRange) IsMonthRange() bool {
	return d.MatchedMonthToken != ""
}
