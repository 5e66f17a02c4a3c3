package service_test

import (
	"testing"

	"workreport-portal-backend/internal/database/models"
	apperrors "workreport-portal-backend/internal/errors"
	"workreport-portal-backend/internal/mocks"
	"workreport-portal-backend/internal/repository"
	"workreport-portal-backend/internal/service"
	"workreport-portal-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type ReportServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRepo     *mocks.MockWorkReportRepositoryInterface
	mockUserRepo *mocks.MockUserRepositoryInterface
	service      *service.ReportService
	factories    *testutils.FactorySet
}

func (s *ReportServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = mocks.NewMockWorkReportRepositoryInterface(s.ctrl)
	s.mockUserRepo = mocks.NewMockUserRepositoryInterface(s.ctrl)
	index := testIndex()
	s.service = service.NewReportService(s.mockRepo, s.mockUserRepo, index, testPolicy(index), validator.New())
	s.factories = testutils.NewFactorySet()
}

func (s *ReportServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}

func (s *ReportServiceTestSuite) TestCreateSnapshotsHierarchyDetails() {
	s.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(report *models.WorkReport) error {
		s.Equal("Devi K", report.EmployeeName)
		s.Equal("devi@corp.example", report.EmployeeEmail)
		s.Equal("Engineering", report.Department)
		s.Equal("Platform", report.Team)
		s.Equal("Vik Mehta", report.ReportingManager)
		s.Require().Len(report.Tasks, 1)
		s.NotEmpty(report.Tasks[0].ID)
		return nil
	})

	resp, err := s.service.Create("devi@corp.example", &service.CreateReportRequest{
		Date:  "2025-03-01",
		Tasks: []service.TaskInput{{Details: "Shipped the thing", Status: "WIP"}},
	})
	s.Require().NoError(err)
	s.Equal("Vik Mehta", resp.ReportingManager)
}

func (s *ReportServiceTestSuite) TestCreateUnknownPersonFallsBackToAccount() {
	account := s.factories.User.WithEmail("contractor@corp.example")
	account.Name = "Contractor"
	account.Department = "External"
	account.Team = "Vendors"
	s.mockUserRepo.EXPECT().GetByEmail("contractor@corp.example").Return(account, nil)
	s.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(report *models.WorkReport) error {
		s.Equal("Contractor", report.EmployeeName)
		s.Equal("External", report.Department)
		s.Empty(report.ReportingManager)
		return nil
	})

	_, err := s.service.Create("contractor@corp.example", &service.CreateReportRequest{
		Date:  "2025-03-01",
		Tasks: []service.TaskInput{{Details: "Vendor sync", Status: "Completed"}},
	})
	s.NoError(err)
}

func (s *ReportServiceTestSuite) TestCreateRejectsBadDate() {
	_, err := s.service.Create("devi@corp.example", &service.CreateReportRequest{
		Date:  "01/03/2025",
		Tasks: []service.TaskInput{{Details: "x", Status: "WIP"}},
	})
	s.True(apperrors.IsValidation(err))
}

func (s *ReportServiceTestSuite) TestCreateRequiresTasks() {
	_, err := s.service.Create("devi@corp.example", &service.CreateReportRequest{Date: "2025-03-01"})
	s.Error(err)
}

func (s *ReportServiceTestSuite) TestListEmployeeSeesOnlySelf() {
	s.mockRepo.EXPECT().Find(gomock.Any()).DoAndReturn(func(filter repository.ReportFilter) ([]models.WorkReport, error) {
		s.Equal([]string{"devi@corp.example"}, filter.AuthorEmails)
		return []models.WorkReport{}, nil
	})

	_, err := s.service.List("devi@corp.example", service.ListReportsFilter{})
	s.NoError(err)
}

func (s *ReportServiceTestSuite) TestListManagerSeesSubordinatesAndSelf() {
	s.mockRepo.EXPECT().Find(gomock.Any()).DoAndReturn(func(filter repository.ReportFilter) ([]models.WorkReport, error) {
		// Zonal managers are traversal nodes, not members of the set
		s.Equal([]string{"asha@corp.example", "devi@corp.example", "ravi@corp.example"}, filter.AuthorEmails)
		return []models.WorkReport{}, nil
	})

	_, err := s.service.List("asha@corp.example", service.ListReportsFilter{})
	s.NoError(err)
}

func (s *ReportServiceTestSuite) TestListFullViewUnrestricted() {
	s.mockRepo.EXPECT().Find(gomock.Any()).DoAndReturn(func(filter repository.ReportFilter) ([]models.WorkReport, error) {
		s.Nil(filter.AuthorEmails)
		return []models.WorkReport{}, nil
	})

	_, err := s.service.List("viewer@corp.example", service.ListReportsFilter{})
	s.NoError(err)
}

func (s *ReportServiceTestSuite) TestListUnknownUserRestrictedToSelf() {
	s.mockRepo.EXPECT().Find(gomock.Any()).DoAndReturn(func(filter repository.ReportFilter) ([]models.WorkReport, error) {
		s.Equal([]string{"stranger@corp.example"}, filter.AuthorEmails)
		return []models.WorkReport{}, nil
	})

	_, err := s.service.List("stranger@corp.example", service.ListReportsFilter{})
	s.NoError(err)
}

func (s *ReportServiceTestSuite) TestListDropsSentinelsAndBadDates() {
	s.mockRepo.EXPECT().Find(gomock.Any()).DoAndReturn(func(filter repository.ReportFilter) ([]models.WorkReport, error) {
		s.Empty(filter.Department)
		s.Empty(filter.Team)
		s.Empty(filter.Manager)
		s.Empty(filter.Date)
		return []models.WorkReport{}, nil
	})

	_, err := s.service.List("viewer@corp.example", service.ListReportsFilter{
		Department: service.AllDepartments,
		Team:       service.AllTeams,
		Manager:    service.AllReportingManager,
		Date:       "not-a-date",
	})
	s.NoError(err)
}

func (s *ReportServiceTestSuite) TestListDropsReversedDateRange() {
	s.mockRepo.EXPECT().Find(gomock.Any()).DoAndReturn(func(filter repository.ReportFilter) ([]models.WorkReport, error) {
		s.Empty(filter.FromDate)
		s.Empty(filter.ToDate)
		return []models.WorkReport{}, nil
	})

	_, err := s.service.List("viewer@corp.example", service.ListReportsFilter{
		FromDate: "2025-03-10",
		ToDate:   "2025-03-01",
	})
	s.NoError(err)
}

func (s *ReportServiceTestSuite) TestGetOutsideScopeLooksMissing() {
	report := s.factories.WorkReport.WithAuthor("Omar F", "omar@corp.example")
	s.mockRepo.EXPECT().GetByID(report.ID).Return(report, nil)

	_, err := s.service.Get("devi@corp.example", report.ID)
	s.ErrorIs(err, apperrors.ErrReportNotFound)
}

func (s *ReportServiceTestSuite) TestGetNotFound() {
	id := uuid.New()
	s.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := s.service.Get("devi@corp.example", id)
	s.ErrorIs(err, apperrors.ErrReportNotFound)
}

func (s *ReportServiceTestSuite) TestUpdateTasksByExactReviewer() {
	report := s.factories.WorkReport.WithAuthor("Devi K", "devi@corp.example")
	s.mockRepo.EXPECT().GetByID(report.ID).Return(report, nil)
	s.mockRepo.EXPECT().UpdateTasks(report.ID, gomock.Any(), "vik@corp.example", gomock.Any()).Return(nil)

	resp, err := s.service.UpdateTasks("vik@corp.example", "manager", report.ID, &service.UpdateReportRequest{
		Tasks: []service.TaskInput{{Details: "Revised", Status: "Completed"}},
	})
	s.Require().NoError(err)
	s.Equal("vik@corp.example", resp.LastModifiedBy)
}

func (s *ReportServiceTestSuite) TestUpdateTasksSecondLevelManagerDenied() {
	// Asha reviews Vik, who reviews Devi; only the exact reviewer may edit
	report := s.factories.WorkReport.WithAuthor("Devi K", "devi@corp.example")
	s.mockRepo.EXPECT().GetByID(report.ID).Return(report, nil)

	_, err := s.service.UpdateTasks("asha@corp.example", "manager", report.ID, &service.UpdateReportRequest{
		Tasks: []service.TaskInput{{Details: "Revised", Status: "Completed"}},
	})
	s.ErrorIs(err, apperrors.ErrReportModifyForbidden)
}

func (s *ReportServiceTestSuite) TestUpdateTasksRequiresManagerRole() {
	report := s.factories.WorkReport.WithAuthor("Devi K", "devi@corp.example")
	s.mockRepo.EXPECT().GetByID(report.ID).Return(report, nil)

	_, err := s.service.UpdateTasks("vik@corp.example", "employee", report.ID, &service.UpdateReportRequest{
		Tasks: []service.TaskInput{{Details: "Revised", Status: "Completed"}},
	})
	s.ErrorIs(err, apperrors.ErrReportModifyForbidden)
}

func (s *ReportServiceTestSuite) TestDeleteByDirector() {
	report := s.factories.WorkReport.WithAuthor("Devi K", "devi@corp.example")
	s.mockRepo.EXPECT().GetByID(report.ID).Return(report, nil)
	s.mockRepo.EXPECT().Delete(report.ID).Return(nil)

	s.NoError(s.service.Delete("director@corp.example", "manager", report.ID))
}

func (s *ReportServiceTestSuite) TestDeleteForbidden() {
	report := s.factories.WorkReport.WithAuthor("Devi K", "devi@corp.example")
	s.mockRepo.EXPECT().GetByID(report.ID).Return(report, nil)

	err := s.service.Delete("omar@corp.example", "employee", report.ID)
	s.ErrorIs(err, apperrors.ErrReportModifyForbidden)
}
