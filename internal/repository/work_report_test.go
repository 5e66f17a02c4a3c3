//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"workreport-portal-backend/internal/database/models"
	"workreport-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type WorkReportRepositoryTestSuite struct {
	*testutils.BaseTestSuite
	repo      *WorkReportRepository
	factories *testutils.FactorySet
}

func TestWorkReportRepositoryTestSuite(t *testing.T) {
	base := testutils.SetupTestSuite(t)
	s := &WorkReportRepositoryTestSuite{BaseTestSuite: base}
	suite.Run(t, s)
}

func (s *WorkReportRepositoryTestSuite) SetupSuite() {
	s.repo = NewWorkReportRepository(s.DB)
	s.factories = testutils.NewFactorySet()
}

func (s *WorkReportRepositoryTestSuite) TestCreateAndGetByID() {
	report := s.factories.WorkReport.Create()
	s.Require().NoError(s.repo.Create(report))

	found, err := s.repo.GetByID(report.ID)
	s.Require().NoError(err)
	s.Equal(report.EmployeeEmail, found.EmployeeEmail)
	s.Require().Len(found.Tasks, 1)
	s.Equal(models.TaskStatusWIP, found.Tasks[0].Status)
}

func (s *WorkReportRepositoryTestSuite) TestTasksPersistAsJSON() {
	report := s.factories.WorkReport.WithTasks(models.TaskList{
		s.factories.Task.WithStatus(models.TaskStatusCompleted),
		s.factories.Task.WithStatus(models.TaskStatusDelayed),
	})
	s.Require().NoError(s.repo.Create(report))

	found, err := s.repo.GetByID(report.ID)
	s.Require().NoError(err)
	s.Require().Len(found.Tasks, 2)
	s.Equal(models.TaskStatusCompleted, found.Tasks[0].Status)
	s.Equal(models.TaskStatusDelayed, found.Tasks[1].Status)
}

func (s *WorkReportRepositoryTestSuite) TestFindUnrestricted() {
	s.Require().NoError(s.repo.Create(s.factories.WorkReport.WithAuthor("A", "a@test.com")))
	s.Require().NoError(s.repo.Create(s.factories.WorkReport.WithAuthor("B", "b@test.com")))

	reports, err := s.repo.Find(ReportFilter{})
	s.Require().NoError(err)
	s.Len(reports, 2)
}

func (s *WorkReportRepositoryTestSuite) TestFindByAuthorSet() {
	s.Require().NoError(s.repo.Create(s.factories.WorkReport.WithAuthor("A", "a@test.com")))
	s.Require().NoError(s.repo.Create(s.factories.WorkReport.WithAuthor("B", "b@test.com")))
	s.Require().NoError(s.repo.Create(s.factories.WorkReport.WithAuthor("C", "c@test.com")))

	reports, err := s.repo.Find(ReportFilter{AuthorEmails: []string{"a@test.com", "c@test.com"}})
	s.Require().NoError(err)
	s.Len(reports, 2)
	for _, r := range reports {
		s.NotEqual("b@test.com", r.EmployeeEmail)
	}
}

func (s *WorkReportRepositoryTestSuite) TestFindEmptyAuthorSetMatchesNothing() {
	s.Require().NoError(s.repo.Create(s.factories.WorkReport.Create()))

	reports, err := s.repo.Find(ReportFilter{AuthorEmails: []string{}})
	s.Require().NoError(err)
	s.Empty(reports)
}

func (s *WorkReportRepositoryTestSuite) TestFindByUnitAndManager() {
	eng := s.factories.WorkReport.WithUnit("Engineering", "Platform")
	ops := s.factories.WorkReport.WithUnit("Operations", "Field")
	ops.ReportingManager = "Nina P"
	s.Require().NoError(s.repo.Create(eng))
	s.Require().NoError(s.repo.Create(ops))

	reports, err := s.repo.Find(ReportFilter{Department: "Operations"})
	s.Require().NoError(err)
	s.Require().Len(reports, 1)
	s.Equal("Field", reports[0].Team)

	reports, err = s.repo.Find(ReportFilter{Team: "Platform"})
	s.Require().NoError(err)
	s.Len(reports, 1)

	reports, err = s.repo.Find(ReportFilter{Manager: "Nina P"})
	s.Require().NoError(err)
	s.Require().Len(reports, 1)
	s.Equal("Operations", reports[0].Department)
}

func (s *WorkReportRepositoryTestSuite) TestFindByDateAndRange() {
	for _, d := range []string{"2025-03-01", "2025-03-02", "2025-03-05"} {
		s.Require().NoError(s.repo.Create(s.factories.WorkReport.WithDate(d)))
	}

	reports, err := s.repo.Find(ReportFilter{Date: "2025-03-02"})
	s.Require().NoError(err)
	s.Len(reports, 1)

	reports, err = s.repo.Find(ReportFilter{FromDate: "2025-03-02", ToDate: "2025-03-05"})
	s.Require().NoError(err)
	s.Len(reports, 2)

	reports, err = s.repo.Find(ReportFilter{FromDate: "2025-03-06"})
	s.Require().NoError(err)
	s.Empty(reports)
}

func (s *WorkReportRepositoryTestSuite) TestFindOrdersNewestFirst() {
	older := s.factories.WorkReport.Create()
	older.SubmittedAt = time.Now().Add(-2 * time.Hour)
	newer := s.factories.WorkReport.Create()
	newer.SubmittedAt = time.Now()
	s.Require().NoError(s.repo.Create(older))
	s.Require().NoError(s.repo.Create(newer))

	reports, err := s.repo.Find(ReportFilter{})
	s.Require().NoError(err)
	s.Require().Len(reports, 2)
	s.Equal(newer.ID, reports[0].ID)
}

func (s *WorkReportRepositoryTestSuite) TestDuplicateAuthorDateAllowed() {
	first := s.factories.WorkReport.WithAuthor("A", "a@test.com")
	first.Date = "2025-03-01"
	second := s.factories.WorkReport.WithAuthor("A", "a@test.com")
	second.Date = "2025-03-01"
	s.Require().NoError(s.repo.Create(first))
	s.Require().NoError(s.repo.Create(second))

	reports, err := s.repo.Find(ReportFilter{AuthorEmails: []string{"a@test.com"}, Date: "2025-03-01"})
	s.Require().NoError(err)
	s.Len(reports, 2)
}

func (s *WorkReportRepositoryTestSuite) TestUpdateTasks() {
	report := s.factories.WorkReport.Create()
	s.Require().NoError(s.repo.Create(report))

	newTasks := models.TaskList{
		s.factories.Task.WithStatus(models.TaskStatusCompleted),
	}
	modifiedAt := time.Now()
	s.Require().NoError(s.repo.UpdateTasks(report.ID, newTasks, "manager@test.com", modifiedAt))

	found, err := s.repo.GetByID(report.ID)
	s.Require().NoError(err)
	s.Require().Len(found.Tasks, 1)
	s.Equal(models.TaskStatusCompleted, found.Tasks[0].Status)
	s.Equal("manager@test.com", found.LastModifiedBy)
}

func (s *WorkReportRepositoryTestSuite) TestUpdateTasksNotFound() {
	err := s.repo.UpdateTasks(uuid.New(), models.TaskList{}, "x@test.com", time.Now())
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *WorkReportRepositoryTestSuite) TestDelete() {
	report := s.factories.WorkReport.Create()
	s.Require().NoError(s.repo.Create(report))

	s.Require().NoError(s.repo.Delete(report.ID))

	_, err := s.repo.GetByID(report.ID)
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *WorkReportRepositoryTestSuite) TestDeleteNotFound() {
	s.ErrorIs(s.repo.Delete(uuid.New()), gorm.ErrRecordNotFound)
}
