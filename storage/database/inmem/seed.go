package inmemdb

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/trezcool/tutordesk/core/lesson"
)

type seedFile struct {
	Lessons []lesson.Lesson `yaml:"lessons"`
}

// LoadSeed reads lessons from a YAML file shaped like assets/lessons.yaml.
func LoadSeed(path string) ([]lesson.Lesson, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseSeed(data)
}

func parseSeed(data []byte) ([]lesson.Lesson, error) {
	var sf seedFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, errors.Wrap(err, "parsing seed")
	}
	for i, l := range sf.Lessons {
		if !l.Status.IsValid() {
			return nil, errors.Errorf("lesson %q: invalid status %q", l.ID, l.Status)
		}
		if l.Students == nil {
			sf.Lessons[i].Students = []string{}
		}
	}
	return sf.Lessons, nil
}

// DefaultSeed returns a demo data set laid out around now,
// so that every lesson type shows up on the dashboard.
func DefaultSeed(now time.Time) []lesson.Lesson {
	const tutor = "Sarah Tan"
	day := func(offset, hour, min int) time.Time {
		d := now.AddDate(0, 0, offset)
		return time.Date(d.Year(), d.Month(), d.Day(), hour, min, 0, 0, now.Location())
	}

	return []lesson.Lesson{
		{ID: "1", Date: day(0, 10, 0), Subject: "Mathematics", Students: []string{"Alice Wong", "Ben Lim"}, Tutor: tutor, Status: lesson.StatusConfirmed},
		{ID: "2", Date: day(0, 16, 30), Subject: "English Literature", Students: []string{"Chloe Ng"}, Status: lesson.StatusAvailable},
		{ID: "3", Date: day(-2, 14, 0), Subject: "Physics", Students: []string{"Daniel Tan"}, Tutor: tutor, Status: lesson.StatusCompleted},
		{ID: "4", Date: day(-9, 11, 0), Subject: "Chemistry", Students: []string{"Emma Goh", "Farah Aziz"}, Tutor: tutor, Status: lesson.StatusCompleted},
		{ID: "5", Date: day(-34, 9, 0), Subject: "Mathematics", Students: []string{"Alice Wong"}, Tutor: tutor, Status: lesson.StatusCompleted},
		{ID: "6", Date: day(3, 15, 0), Subject: "Biology", Students: []string{"Gavin Ho"}, Tutor: tutor, Status: lesson.StatusConfirmed},
		{ID: "7", Date: day(5, 10, 30), Subject: "History", Students: []string{"Hannah Lee", "Ivan Teo"}, Status: lesson.StatusAvailable},
		{ID: "8", Date: day(12, 13, 0), Subject: "Geography", Students: []string{}, Status: lesson.StatusAvailable},
		{ID: "9", Date: day(33, 17, 0), Subject: "Economics", Students: []string{"Jasmine Koh"}, Tutor: tutor, Status: lesson.StatusConfirmed},
		{ID: "10", Date: day(-4, 18, 0), Subject: "Computer Science", Students: []string{"Kevin Chua"}, Tutor: tutor, Status: lesson.StatusConfirmed},
	}
}
