package lesson

import (
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/tutordesk/core"
)

const DateLayout = "2006-01-02"

var (
	dateRangeTag  = "daterange"
	dateRangeText = "{0} cannot be before start_date"

	lessonTypeTag  = "lessontype"
	lessonTypeText = "{0} must be one of Today's, Historic, Upcoming, Available, Missed"
)

// InitValidators registers the lesson validators & their translations.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(lessonTypeTag, lessonTypeValidation)
	core.RegisterCustomTranslation(validate, translator, lessonTypeTag, lessonTypeText)

	validate.RegisterStructValidation(filterStructValidation, FilterRequest{})
	core.RegisterCustomTranslation(validate, translator, dateRangeTag, dateRangeText)
}

// FilterRequest is the wire form of Criteria. Empty fields clear the matching filter.
type FilterRequest struct {
	Month     string `json:"month" query:"month" validate:"omitempty,datetime=2006-01"`
	StartDate string `json:"start_date" query:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `json:"end_date" query:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

func (fr *FilterRequest) Validate(validate *validator.Validate) error {
	fr.Month = core.CleanString(fr.Month)
	fr.StartDate = core.CleanString(fr.StartDate)
	fr.EndDate = core.CleanString(fr.EndDate)
	return validate.Struct(fr)
}

// Criteria converts a validated request, interpreting dates in loc.
func (fr FilterRequest) Criteria(loc *time.Location) (Criteria, error) {
	var c Criteria
	var err error
	if c.Month, err = parseOptional(MonthKeyLayout, fr.Month, loc); err != nil {
		return Criteria{}, err
	}
	if c.DateRange.StartDate, err = parseOptional(DateLayout, fr.StartDate, loc); err != nil {
		return Criteria{}, err
	}
	if c.DateRange.EndDate, err = parseOptional(DateLayout, fr.EndDate, loc); err != nil {
		return Criteria{}, err
	}
	return c, nil
}

func parseOptional(layout, value string, loc *time.Location) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(layout, value, loc)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// NewFilterRequest renders c back to its wire form.
func NewFilterRequest(c Criteria) FilterRequest {
	var fr FilterRequest
	if c.Month != nil {
		fr.Month = c.Month.Format(MonthKeyLayout)
	}
	if c.DateRange.StartDate != nil {
		fr.StartDate = c.DateRange.StartDate.Format(DateLayout)
	}
	if c.DateRange.EndDate != nil {
		fr.EndDate = c.DateRange.EndDate.Format(DateLayout)
	}
	return fr
}

// Custom Validators

// lessonTypeValidation checks that the field holds a known Type.
func lessonTypeValidation(fl validator.FieldLevel) bool {
	_, ok := ParseType(fl.Field().String())
	return ok
}

// filterStructValidation checks that the range end does not precede its start.
func filterStructValidation(sl validator.StructLevel) {
	fr, ok := sl.Current().Interface().(FilterRequest)
	if !ok || fr.StartDate == "" || fr.EndDate == "" {
		return
	}
	start, err1 := time.Parse(DateLayout, fr.StartDate)
	end, err2 := time.Parse(DateLayout, fr.EndDate)
	if err1 != nil || err2 != nil {
		return // reported by the field validators
	}
	if end.Before(start) {
		sl.ReportError(fr.EndDate, "end_date", "EndDate", dateRangeTag, "")
	}
}

// TypeQuery selects lessons of one Type; an empty Type selects them all.
type TypeQuery struct {
	Type string `json:"type" query:"type" validate:"omitempty,lessontype"`
}

func (tq *TypeQuery) Validate(validate *validator.Validate) error {
	tq.Type = core.CleanString(tq.Type)
	return validate.Struct(tq)
}
