package lesson

type (
	// Section is a titled list of lessons of one Type.
	Section struct {
		Title   string   `json:"title"`
		Type    Type     `json:"type"`
		Lessons []Lesson `json:"lessons"`
	}

	MonthView struct {
		MonthKey   string    `json:"month_key"`
		MonthLabel string    `json:"month_label"`
		Sections   []Section `json:"sections"`
	}

	// Dashboard is what a tutor sees: today's lessons first, then either one view per month
	// (no filters) or one section per type (filters active).
	Dashboard struct {
		Loading  bool        `json:"loading"`
		Error    string      `json:"error,omitempty"`
		Filtered bool        `json:"filtered"`
		Today    []Lesson    `json:"today"`
		Months   []MonthView `json:"months,omitempty"`
		Sections []Section   `json:"sections,omitempty"`
	}
)

var sectionTitles = map[Type]string{
	TypeUpcoming:  "Upcoming Lessons",
	TypeAvailable: "Available Lessons",
	TypeHistoric:  "Historic Lessons",
	TypeMissed:    "Missed Lessons",
}

// sectionOrder excludes TypeToday, which has its own slot.
var sectionOrder = []Type{TypeUpcoming, TypeAvailable, TypeHistoric, TypeMissed}

func newSection(lessons []Lesson, typ Type) Section {
	return Section{Title: sectionTitles[typ], Type: typ, Lessons: ByType(lessons, typ)}
}

// Dashboard builds the dashboard view over the filtered lessons.
// Month views only list non-empty sections; the filtered view lists them all.
func (s *Store) Dashboard() Dashboard {
	st := s.State()
	d := Dashboard{
		Loading:  st.Loading,
		Error:    st.Error,
		Filtered: st.Criteria.HasActiveFilters(),
		Today:    ByType(st.FilteredLessons, TypeToday),
	}

	if d.Filtered {
		d.Sections = make([]Section, 0, len(sectionOrder))
		for _, typ := range sectionOrder {
			d.Sections = append(d.Sections, newSection(st.FilteredLessons, typ))
		}
		return d
	}

	groups := GroupByMonth(st.FilteredLessons)
	d.Months = make([]MonthView, 0, len(groups))
	for _, g := range groups {
		mv := MonthView{MonthKey: g.MonthKey, MonthLabel: g.MonthLabel, Sections: []Section{}}
		for _, typ := range sectionOrder {
			if sec := newSection(g.Lessons, typ); len(sec.Lessons) > 0 {
				mv.Sections = append(mv.Sections, sec)
			}
		}
		d.Months = append(d.Months, mv)
	}
	return d
}
