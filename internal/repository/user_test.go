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

type UserRepositoryTestSuite struct {
	*testutils.BaseTestSuite
	repo      *UserRepository
	factories *testutils.FactorySet
}

func TestUserRepositoryTestSuite(t *testing.T) {
	base := testutils.SetupTestSuite(t)
	s := &UserRepositoryTestSuite{BaseTestSuite: base}
	suite.Run(t, s)
}

func (s *UserRepositoryTestSuite) SetupSuite() {
	s.repo = NewUserRepository(s.DB)
	s.factories = testutils.NewFactorySet()
}

func (s *UserRepositoryTestSuite) TestCreateAndGetByID() {
	user := s.factories.User.Create()
	err := s.repo.Create(user)
	s.Require().NoError(err)

	found, err := s.repo.GetByID(user.ID)
	s.Require().NoError(err)
	s.Equal(user.Email, found.Email)
	s.Equal(models.UserRoleEmployee, found.Role)
}

func (s *UserRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := s.repo.GetByID(uuid.New())
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *UserRepositoryTestSuite) TestGetByEmail() {
	user := s.factories.User.WithEmail("lookup@test.com")
	s.Require().NoError(s.repo.Create(user))

	found, err := s.repo.GetByEmail("lookup@test.com")
	s.Require().NoError(err)
	s.Equal(user.ID, found.ID)

	_, err = s.repo.GetByEmail("missing@test.com")
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *UserRepositoryTestSuite) TestCreateDuplicateEmailFails() {
	first := s.factories.User.WithEmail("dup@test.com")
	s.Require().NoError(s.repo.Create(first))

	second := s.factories.User.WithEmail("dup@test.com")
	s.Error(s.repo.Create(second))
}

func (s *UserRepositoryTestSuite) TestGetAllOrderedByName() {
	zara := s.factories.User.Create()
	zara.Name = "Zara"
	amir := s.factories.User.Create()
	amir.Name = "Amir"
	s.Require().NoError(s.repo.Create(zara))
	s.Require().NoError(s.repo.Create(amir))

	users, err := s.repo.GetAll()
	s.Require().NoError(err)
	s.Require().Len(users, 2)
	s.Equal("Amir", users[0].Name)
	s.Equal("Zara", users[1].Name)
}

func (s *UserRepositoryTestSuite) TestCount() {
	total, err := s.repo.Count()
	s.Require().NoError(err)
	s.Equal(int64(0), total)

	s.Require().NoError(s.repo.Create(s.factories.User.Create()))
	s.Require().NoError(s.repo.Create(s.factories.User.Create()))

	total, err = s.repo.Count()
	s.Require().NoError(err)
	s.Equal(int64(2), total)
}

func (s *UserRepositoryTestSuite) TestUpdate() {
	user := s.factories.User.Create()
	s.Require().NoError(s.repo.Create(user))

	user.Role = models.UserRoleManager
	user.Department = "Operations"
	s.Require().NoError(s.repo.Update(user))

	found, err := s.repo.GetByID(user.ID)
	s.Require().NoError(err)
	s.Equal(models.UserRoleManager, found.Role)
	s.Equal("Operations", found.Department)
}

func (s *UserRepositoryTestSuite) TestResetTokenRoundTrip() {
	user := s.factories.User.Create()
	s.Require().NoError(s.repo.Create(user))

	expires := time.Now().Add(time.Hour)
	s.Require().NoError(s.repo.SetResetToken(user.ID, "abc123hash", expires))

	found, err := s.repo.GetByValidResetToken("abc123hash", time.Now())
	s.Require().NoError(err)
	s.Equal(user.ID, found.ID)

	// An expired token must not resolve
	_, err = s.repo.GetByValidResetToken("abc123hash", expires.Add(time.Minute))
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *UserRepositoryTestSuite) TestClearResetToken() {
	user := s.factories.User.Create()
	s.Require().NoError(s.repo.Create(user))
	s.Require().NoError(s.repo.SetResetToken(user.ID, "tokenhash", time.Now().Add(time.Hour)))

	s.Require().NoError(s.repo.ClearResetToken(user.ID))

	_, err := s.repo.GetByValidResetToken("tokenhash", time.Now())
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *UserRepositoryTestSuite) TestUpdatePasswordClearsResetToken() {
	user := s.factories.User.Create()
	s.Require().NoError(s.repo.Create(user))
	s.Require().NoError(s.repo.SetResetToken(user.ID, "pendinghash", time.Now().Add(time.Hour)))

	s.Require().NoError(s.repo.UpdatePassword(user.ID, "new-hash"))

	found, err := s.repo.GetByID(user.ID)
	s.Require().NoError(err)
	s.Equal("new-hash", found.PasswordHash)
	s.Nil(found.ResetPasswordToken)
	s.Nil(found.ResetPasswordExpires)
}
