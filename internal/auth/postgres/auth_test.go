package auth

import (
	"testing"

	"github.com/frahmantamala/employee-management/internal"
	userDatamodel "github.com/frahmantamala/employee-management/internal/core/datamodel/user"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestAuthRepository(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Auth Repository Suite")
}

var _ = ginkgo.Describe("Repository", func() {
	var repo *Repository

	ginkgo.BeforeEach(func() {
		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		err = db.AutoMigrate(&userDatamodel.User{})
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		repo = NewRepository(db)
	})

	ginkgo.Describe("CreateUser", func() {
		ginkgo.It("stores the user and returns its id", func() {
			id, err := repo.CreateUser("Test User", "testuser@gmail.com", "$2a$10$hash")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(id).To(gomega.BeNumerically(">", 0))
		})

		ginkgo.It("maps a duplicate email to a conflict", func() {
			_, err := repo.CreateUser("Test User", "testuser@gmail.com", "$2a$10$hash")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			_, err = repo.CreateUser("Other Name", "testuser@gmail.com", "$2a$10$otherhash")
			gomega.Expect(err).To(gomega.Equal(internal.ErrEmailExists))
		})

		ginkgo.It("assigns increasing ids to distinct users", func() {
			first, err := repo.CreateUser("Test User", "firstuser@gmail.com", "$2a$10$hash")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			second, err := repo.CreateUser("Other User", "seconduser@gmail.com", "$2a$10$hash")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			gomega.Expect(second).To(gomega.BeNumerically(">", first))
		})
	})

	ginkgo.Describe("GetCredentialsForEmail", func() {
		ginkgo.It("returns the stored hash, id and name", func() {
			id, err := repo.CreateUser("Test User", "testuser@gmail.com", "$2a$10$hash")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			hash, gotID, name, err := repo.GetCredentialsForEmail("testuser@gmail.com")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(hash).To(gomega.Equal("$2a$10$hash"))
			gomega.Expect(gotID).To(gomega.Equal(id))
			gomega.Expect(name).To(gomega.Equal("Test User"))
		})

		ginkgo.It("reports invalid credentials for an unknown email", func() {
			_, _, _, err := repo.GetCredentialsForEmail("nobody@gmail.com")
			gomega.Expect(err).To(gomega.Equal(internal.ErrInvalidCredentials))
		})
	})
})
