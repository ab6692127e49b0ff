package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/escolakit/scheduler/internal/model"
)

// fakeLessonStore — хранилище занятий в памяти с инъекцией ошибок
type fakeLessonStore struct {
	lessons map[int64]*model.Lesson
	nextID  int64

	createErrByDate map[string]error
	deleteErrByID   map[int64]error
	lookupErr       error
	listErr         error
	deleteRangeErr  error
}

func newFakeLessonStore() *fakeLessonStore {
	return &fakeLessonStore{
		lessons:         map[int64]*model.Lesson{},
		createErrByDate: map[string]error{},
		deleteErrByID:   map[int64]error{},
	}
}

func (f *fakeLessonStore) seed(groupID, subjectID uuid.UUID, date time.Time, hour, minute, duration int) *model.Lesson {
	f.nextID++
	lesson := &model.Lesson{
		ID:              f.nextID,
		GroupID:         groupID,
		SubjectID:       subjectID,
		Date:            date,
		StartHour:       &hour,
		StartMinute:     &minute,
		DurationMinutes: &duration,
	}
	f.lessons[lesson.ID] = lesson
	return lesson
}

func (f *fakeLessonStore) seedWithoutTime(groupID, subjectID uuid.UUID, date time.Time) *model.Lesson {
	f.nextID++
	lesson := &model.Lesson{
		ID:        f.nextID,
		GroupID:   groupID,
		SubjectID: subjectID,
		Date:      date,
	}
	f.lessons[lesson.ID] = lesson
	return lesson
}

func (f *fakeLessonStore) Create(_ context.Context, lesson *model.Lesson) error {
	if err := f.createErrByDate[lesson.Date.Format("2006-01-02")]; err != nil {
		return err
	}

	f.nextID++
	lesson.ID = f.nextID
	lesson.CreatedAt = time.Now()
	lesson.UpdatedAt = lesson.CreatedAt

	stored := *lesson
	f.lessons[lesson.ID] = &stored
	return nil
}

func (f *fakeLessonStore) GetByGroupAndDate(_ context.Context, groupID uuid.UUID, date time.Time) ([]*model.Lesson, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}

	var out []*model.Lesson
	for _, l := range f.lessons {
		if l.GroupID == groupID && l.Date.Equal(date) {
			out = append(out, l)
		}
	}
	sortLessons(out)
	return out, nil
}

func (f *fakeLessonStore) GetByDate(_ context.Context, date time.Time) ([]*model.Lesson, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}

	var out []*model.Lesson
	for _, l := range f.lessons {
		if l.Date.Equal(date) {
			out = append(out, l)
		}
	}
	sortLessons(out)
	return out, nil
}

func (f *fakeLessonStore) GetByGroupAndRange(_ context.Context, groupID uuid.UUID, from, to time.Time) ([]*model.Lesson, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}

	var out []*model.Lesson
	for _, l := range f.lessons {
		if l.GroupID == groupID && !l.Date.Before(from) && !l.Date.After(to) {
			out = append(out, l)
		}
	}
	sortLessons(out)
	return out, nil
}

func (f *fakeLessonStore) Delete(_ context.Context, id int64) error {
	if err := f.deleteErrByID[id]; err != nil {
		return err
	}

	if _, ok := f.lessons[id]; !ok {
		return fmt.Errorf("lesson not found")
	}
	delete(f.lessons, id)
	return nil
}

func (f *fakeLessonStore) DeleteBySubjectAndRange(_ context.Context, subjectID uuid.UUID, from, to time.Time) (int64, error) {
	if f.deleteRangeErr != nil {
		return 0, f.deleteRangeErr
	}

	var removed int64
	for id, l := range f.lessons {
		if l.SubjectID == subjectID && !l.Date.Before(from) && !l.Date.After(to) {
			delete(f.lessons, id)
			removed++
		}
	}
	return removed, nil
}

func sortLessons(lessons []*model.Lesson) {
	sort.Slice(lessons, func(i, j int) bool {
		if !lessons[i].Date.Equal(lessons[j].Date) {
			return lessons[i].Date.Before(lessons[j].Date)
		}
		return lessons[i].ID < lessons[j].ID
	})
}

// fakeDayStore — хранилище неучебных дней в памяти
type fakeDayStore struct {
	days      []*model.NonTeachingDay
	nextID    int64
	createErr error
	getAllErr error
}

func (f *fakeDayStore) Create(_ context.Context, day *model.NonTeachingDay) error {
	if f.createErr != nil {
		return f.createErr
	}

	f.nextID++
	day.ID = f.nextID
	day.CreatedAt = time.Now()
	f.days = append(f.days, day)
	return nil
}

func (f *fakeDayStore) GetAll(_ context.Context) ([]*model.NonTeachingDay, error) {
	if f.getAllErr != nil {
		return nil, f.getAllErr
	}
	return f.days, nil
}

// fakeRefStore — справочник предметов и групп в памяти
type fakeRefStore struct {
	subjects map[uuid.UUID]bool
	groups   map[uuid.UUID]bool
	err      error
}

func newFakeRefStore(subjectID, groupID uuid.UUID) *fakeRefStore {
	return &fakeRefStore{
		subjects: map[uuid.UUID]bool{subjectID: true},
		groups:   map[uuid.UUID]bool{groupID: true},
	}
}

func (f *fakeRefStore) SubjectExists(_ context.Context, id uuid.UUID) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.subjects[id], nil
}

func (f *fakeRefStore) GroupExists(_ context.Context, id uuid.UUID) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.groups[id], nil
}
