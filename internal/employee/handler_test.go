package employee

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"

	"github.com/frahmantamala/employee-management/internal"
	"github.com/go-chi/chi"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("EmployeeHandler", func() {
	var (
		repo    *mockEmployeeRepository
		handler *Handler
		router  chi.Router
	)

	const (
		ownerA int64 = 1
		ownerB int64 = 2
	)

	// asUser wires the routes the way the REST router does, with the
	// auth middleware replaced by a fixed user id.
	asUser := func(userID int64) chi.Router {
		r := chi.NewRouter()
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				next.ServeHTTP(w, req.WithContext(internal.ContextWithUserID(req.Context(), userID)))
			})
		})
		r.Get("/employees", handler.ListEmployees)
		r.Post("/employees", handler.CreateEmployee)
		r.Put("/employees/{id}", handler.UpdateEmployee)
		r.Delete("/employees/{id}", handler.DeleteEmployee)
		return r
	}

	doJSON := func(r chi.Router, method, target string, payload any) *httptest.ResponseRecorder {
		var body *bytes.Buffer
		if payload != nil {
			raw, err := json.Marshal(payload)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			body = bytes.NewBuffer(raw)
		} else {
			body = bytes.NewBuffer(nil)
		}
		req := httptest.NewRequest(method, target, body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	ginkgo.BeforeEach(func() {
		repo = newMockEmployeeRepository()
		lg := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		handler = NewHandler(NewService(repo, lg))
		router = asUser(ownerA)
	})

	ginkgo.Describe("POST /employees", func() {
		ginkgo.It("creates a record and returns 201 with the stored employee", func() {
			w := doJSON(router, http.MethodPost, "/employees", validDTO())

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusCreated))

			var got Employee
			gomega.Expect(json.Unmarshal(w.Body.Bytes(), &got)).To(gomega.Succeed())
			gomega.Expect(got.ID).To(gomega.BeNumerically(">", 0))
			gomega.Expect(got.Email).To(gomega.Equal("janesmith@gmail.com"))
			gomega.Expect(got.Salary).To(gomega.Equal(int64(50000)))
		})

		ginkgo.It("returns 400 with field details for an invalid payload", func() {
			dto := validDTO()
			dto.Name = "J4ne"
			dto.Email = "not-an-email"
			w := doJSON(router, http.MethodPost, "/employees", dto)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusBadRequest))
			gomega.Expect(w.Body.String()).To(gomega.ContainSubstring("name"))
			gomega.Expect(w.Body.String()).To(gomega.ContainSubstring("email"))
		})

		ginkgo.It("returns 400 for a malformed body", func() {
			req := httptest.NewRequest(http.MethodPost, "/employees", bytes.NewBufferString("{not json"))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusBadRequest))
		})

		ginkgo.It("returns 409 for a duplicate email under the same owner", func() {
			gomega.Expect(doJSON(router, http.MethodPost, "/employees", validDTO()).Code).To(gomega.Equal(http.StatusCreated))

			w := doJSON(router, http.MethodPost, "/employees", validDTO())
			gomega.Expect(w.Code).To(gomega.Equal(http.StatusConflict))
		})

		ginkgo.It("accepts the salary as a bare number too", func() {
			payload := map[string]any{
				"name":        "Jane Smith",
				"email":       "janesmith@gmail.com",
				"department":  "Engineering",
				"designation": "Developer",
				"salary":      50000,
			}
			w := doJSON(router, http.MethodPost, "/employees", payload)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusCreated))
		})
	})

	ginkgo.Describe("GET /employees", func() {
		ginkgo.It("returns an empty JSON array when the owner has no records", func() {
			w := doJSON(router, http.MethodGet, "/employees", nil)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(w.Body.String()).To(gomega.MatchJSON("[]"))
		})

		ginkgo.It("returns only the caller's records", func() {
			gomega.Expect(doJSON(router, http.MethodPost, "/employees", validDTO()).Code).To(gomega.Equal(http.StatusCreated))
			gomega.Expect(doJSON(asUser(ownerB), http.MethodPost, "/employees", validDTO()).Code).To(gomega.Equal(http.StatusCreated))

			w := doJSON(router, http.MethodGet, "/employees", nil)
			gomega.Expect(w.Code).To(gomega.Equal(http.StatusOK))

			var got []Employee
			gomega.Expect(json.Unmarshal(w.Body.Bytes(), &got)).To(gomega.Succeed())
			gomega.Expect(got).To(gomega.HaveLen(1))
		})
	})

	ginkgo.Describe("PUT /employees/{id}", func() {
		var createdID int64

		ginkgo.BeforeEach(func() {
			w := doJSON(router, http.MethodPost, "/employees", validDTO())
			gomega.Expect(w.Code).To(gomega.Equal(http.StatusCreated))

			var got Employee
			gomega.Expect(json.Unmarshal(w.Body.Bytes(), &got)).To(gomega.Succeed())
			createdID = got.ID
		})

		ginkgo.It("replaces the record and returns 200", func() {
			dto := validDTO()
			dto.Salary = json.Number("60000")
			w := doJSON(router, http.MethodPut, "/employees/"+strconv.FormatInt(createdID, 10), dto)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusOK))

			var got Employee
			gomega.Expect(json.Unmarshal(w.Body.Bytes(), &got)).To(gomega.Succeed())
			gomega.Expect(got.Salary).To(gomega.Equal(int64(60000)))
		})

		ginkgo.It("returns 404 when another user targets the record", func() {
			w := doJSON(asUser(ownerB), http.MethodPut, "/employees/"+strconv.FormatInt(createdID, 10), validDTO())
			gomega.Expect(w.Code).To(gomega.Equal(http.StatusNotFound))
		})

		ginkgo.It("returns 400 for a non-numeric id", func() {
			w := doJSON(router, http.MethodPut, "/employees/abc", validDTO())
			gomega.Expect(w.Code).To(gomega.Equal(http.StatusBadRequest))
		})
	})

	ginkgo.Describe("DELETE /employees/{id}", func() {
		var createdID int64

		ginkgo.BeforeEach(func() {
			w := doJSON(router, http.MethodPost, "/employees", validDTO())
			gomega.Expect(w.Code).To(gomega.Equal(http.StatusCreated))

			var got Employee
			gomega.Expect(json.Unmarshal(w.Body.Bytes(), &got)).To(gomega.Succeed())
			createdID = got.ID
		})

		ginkgo.It("removes the record and returns 204 with no body", func() {
			w := doJSON(router, http.MethodDelete, "/employees/"+strconv.FormatInt(createdID, 10), nil)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusNoContent))
			gomega.Expect(w.Body.Len()).To(gomega.BeZero())
		})

		ginkgo.It("returns 404 when another user targets the record", func() {
			w := doJSON(asUser(ownerB), http.MethodDelete, "/employees/"+strconv.FormatInt(createdID, 10), nil)
			gomega.Expect(w.Code).To(gomega.Equal(http.StatusNotFound))
		})

		ginkgo.It("returns 404 on a repeated delete", func() {
			path := "/employees/" + strconv.FormatInt(createdID, 10)
			gomega.Expect(doJSON(router, http.MethodDelete, path, nil).Code).To(gomega.Equal(http.StatusNoContent))
			gomega.Expect(doJSON(router, http.MethodDelete, path, nil).Code).To(gomega.Equal(http.StatusNotFound))
		})
	})

	ginkgo.Describe("without an authenticated user", func() {
		ginkgo.It("returns 401 from every route", func() {
			anon := asUser(0)

			gomega.Expect(doJSON(anon, http.MethodGet, "/employees", nil).Code).To(gomega.Equal(http.StatusUnauthorized))
			gomega.Expect(doJSON(anon, http.MethodPost, "/employees", validDTO()).Code).To(gomega.Equal(http.StatusUnauthorized))
			gomega.Expect(doJSON(anon, http.MethodPut, "/employees/1", validDTO()).Code).To(gomega.Equal(http.StatusUnauthorized))
			gomega.Expect(doJSON(anon, http.MethodDelete, "/employees/1", nil).Code).To(gomega.Equal(http.StatusUnauthorized))
		})
	})
})
