package lesson_test

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/tutordesk/core"
	"github.com/trezcool/tutordesk/core/lesson"
)

func newValidator() (*validator.Validate, func(error) map[string]string) {
	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	lesson.InitValidators(validate, translator)

	translate := func(err error) map[string]string {
		res := make(map[string]string)
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				res[fe.Field()] = fe.Translate(translator)
			}
		}
		return res
	}
	return validate, translate
}

func TestFilterRequest_Validate(t *testing.T) {
	validate, translate := newValidator()

	tests := []struct {
		name    string
		req     lesson.FilterRequest
		wantErr map[string]string
	}{
		{name: "empty", req: lesson.FilterRequest{}},
		{name: "month", req: lesson.FilterRequest{Month: " 2024-03 "}},
		{name: "range", req: lesson.FilterRequest{StartDate: "2024-03-01", EndDate: "2024-03-31"}},
		{name: "single day", req: lesson.FilterRequest{StartDate: "2024-03-01", EndDate: "2024-03-01"}},
		{name: "start only", req: lesson.FilterRequest{StartDate: "2024-03-01"}},
		{
			name:    "bad month",
			req:     lesson.FilterRequest{Month: "March"},
			wantErr: map[string]string{"month": "month does not match the expected date format"},
		},
		{
			name:    "bad date",
			req:     lesson.FilterRequest{StartDate: "2024-13-01"},
			wantErr: map[string]string{"start_date": "start_date does not match the expected date format"},
		},
		{
			name:    "inverted range",
			req:     lesson.FilterRequest{StartDate: "2024-03-31", EndDate: "2024-03-01"},
			wantErr: map[string]string{"end_date": "end_date cannot be before start_date"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate(validate)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, translate(err))
		})
	}
}

func TestFilterRequest_Criteria(t *testing.T) {
	fr := lesson.FilterRequest{Month: "2024-03", StartDate: "2024-03-05", EndDate: "2024-03-09"}

	c, err := fr.Criteria(time.UTC)

	require.NoError(t, err)
	require.NotNil(t, c.Month)
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), *c.Month)
	assert.Equal(t, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), *c.DateRange.StartDate)
	assert.Equal(t, time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC), *c.DateRange.EndDate)
	assert.Equal(t, fr, lesson.NewFilterRequest(c))

	c, err = lesson.FilterRequest{}.Criteria(time.UTC)
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
}

func TestTypeQuery_Validate(t *testing.T) {
	validate, translate := newValidator()

	for _, typ := range lesson.Types {
		q := lesson.TypeQuery{Type: string(typ)}
		assert.NoError(t, q.Validate(validate), typ)
	}
	assert.NoError(t, (&lesson.TypeQuery{}).Validate(validate))

	err := (&lesson.TypeQuery{Type: "Someday"}).Validate(validate)
	require.Error(t, err)
	assert.Equal(t,
		map[string]string{"type": "type must be one of Today's, Historic, Upcoming, Available, Missed"},
		translate(err),
	)
}
