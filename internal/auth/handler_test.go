package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/frahmantamala/employee-management/internal"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

type stubAuthService struct {
	claims      *Claims
	validateErr error
}

func (s *stubAuthService) Register(dto RegisterDTO) (int64, error) { return 1, nil }
func (s *stubAuthService) Authenticate(dto LoginDTO) (LoginResponse, error) {
	return LoginResponse{}, nil
}
func (s *stubAuthService) ValidateAccessToken(token string) (*Claims, error) {
	if s.validateErr != nil {
		return nil, s.validateErr
	}
	return s.claims, nil
}

var _ = ginkgo.Describe("AuthMiddleware", func() {
	var (
		stub    *stubAuthService
		handler *Handler
		nextHit bool
		next    http.Handler
	)

	ginkgo.BeforeEach(func() {
		stub = &stubAuthService{claims: &Claims{UserID: "42"}}
		handler = NewHandler(stub)
		nextHit = false
		next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nextHit = true
			gomega.Expect(internal.UserIDFromContext(r.Context())).To(gomega.Equal(int64(42)))
			w.WriteHeader(http.StatusOK)
		})
	})

	ginkgo.It("short-circuits with 401 when the authorization header is missing", func() {
		req := httptest.NewRequest(http.MethodGet, "/employees", nil)
		w := httptest.NewRecorder()

		handler.AuthMiddleware(next).ServeHTTP(w, req)

		gomega.Expect(w.Code).To(gomega.Equal(http.StatusUnauthorized))
		gomega.Expect(nextHit).To(gomega.BeFalse())
	})

	ginkgo.It("short-circuits with 401 when the header is not a bearer token", func() {
		req := httptest.NewRequest(http.MethodGet, "/employees", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		w := httptest.NewRecorder()

		handler.AuthMiddleware(next).ServeHTTP(w, req)

		gomega.Expect(w.Code).To(gomega.Equal(http.StatusUnauthorized))
		gomega.Expect(nextHit).To(gomega.BeFalse())
	})

	ginkgo.It("short-circuits with 401 when the token is invalid", func() {
		stub.validateErr = ErrInvalidToken
		req := httptest.NewRequest(http.MethodGet, "/employees", nil)
		req.Header.Set("Authorization", "Bearer bogus")
		w := httptest.NewRecorder()

		handler.AuthMiddleware(next).ServeHTTP(w, req)

		gomega.Expect(w.Code).To(gomega.Equal(http.StatusUnauthorized))
		gomega.Expect(nextHit).To(gomega.BeFalse())
	})

	ginkgo.It("short-circuits with 401 when the token is expired", func() {
		stub.validateErr = ErrTokenExpired
		req := httptest.NewRequest(http.MethodGet, "/employees", nil)
		req.Header.Set("Authorization", "Bearer expired")
		w := httptest.NewRecorder()

		handler.AuthMiddleware(next).ServeHTTP(w, req)

		gomega.Expect(w.Code).To(gomega.Equal(http.StatusUnauthorized))
		gomega.Expect(strings.ToLower(w.Body.String())).To(gomega.ContainSubstring("expired"))
		gomega.Expect(nextHit).To(gomega.BeFalse())
	})

	ginkgo.It("injects the user id and invokes the handler on success", func() {
		req := httptest.NewRequest(http.MethodGet, "/employees", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		w := httptest.NewRecorder()

		handler.AuthMiddleware(next).ServeHTTP(w, req)

		gomega.Expect(w.Code).To(gomega.Equal(http.StatusOK))
		gomega.Expect(nextHit).To(gomega.BeTrue())
	})
})
