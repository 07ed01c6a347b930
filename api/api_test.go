package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rmu/credit_bank_service/api"
	"rmu/credit_bank_service/api/handlers"
	"rmu/credit_bank_service/config"
	"rmu/credit_bank_service/models"
	"rmu/credit_bank_service/pkg/helper"
	lq "rmu/credit_bank_service/pkg/listquery"
	"rmu/credit_bank_service/pkg/logger"
	"rmu/credit_bank_service/pkg/security"
	psqlpool "rmu/credit_bank_service/pkg/pool"
	"rmu/credit_bank_service/storage"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	excel "github.com/xuri/excelize/v2"
)

const secret = "test-secret"

type fakeSubjects struct {
	storage.SubjectRepoI
	params  lq.Params
	list    *lq.PageResult[models.Subject]
	err     error
	created *models.CreateSubjectRequest
}

func (f *fakeSubjects) GetList(_ context.Context, params lq.Params) (*lq.PageResult[models.Subject], error) {
	f.params = params
	return f.list, f.err
}

func (f *fakeSubjects) GetByID(_ context.Context, id int64) (*models.Subject, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.Subject{Id: id, Title: "Intro to Biology"}, nil
}

func (f *fakeSubjects) Create(_ context.Context, req *models.CreateSubjectRequest) (*models.Subject, error) {
	f.created = req
	return &models.Subject{Id: 1, Code: req.Code, Title: req.Title}, nil
}

type fakeSales struct {
	storage.SaleRepoI
	params lq.Params
	rows   []models.Sale
}

func (f *fakeSales) GetList(_ context.Context, params lq.Params) (*lq.PageResult[models.Sale], error) {
	f.params = params
	return &lq.PageResult[models.Sale]{
		Data:       f.rows,
		Pagination: lq.NewPageInfo(lq.Pagination{Page: 1, Limit: 10}, int64(len(f.rows))),
	}, nil
}

func (f *fakeSales) Export(_ context.Context, params lq.Params) ([]models.Sale, error) {
	f.params = params
	return f.rows, nil
}

type fakeUsers struct {
	storage.UserRepoI
	byEmail map[string]models.User
	updated []int64
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, helper.NotFound("user not found")
	}
	return &u, nil
}

func (f *fakeUsers) Create(_ context.Context, req *models.CreateUserRequest) (*models.User, error) {
	return &models.User{Id: 9, Email: req.Email, Role: req.Role}, nil
}

func (f *fakeUsers) Update(_ context.Context, id int64, req *models.UpdateUserRequest) (*models.User, error) {
	f.updated = append(f.updated, id)
	u := models.User{Id: id, Role: "student", Status: config.StatusActive}
	if req.Role != nil {
		u.Role = *req.Role
	}
	return &u, nil
}

type fakeEnrollments struct {
	storage.EnrollmentRepoI
	graded *models.UpdateGradeRequest
}

func (f *fakeEnrollments) UpdateGrade(_ context.Context, id int64, req *models.UpdateGradeRequest) (*models.Enrollment, error) {
	if id != 5 {
		return nil, helper.NotFound("enrollment not found")
	}
	f.graded = req
	return &models.Enrollment{Id: id, FinalGrade: &req.FinalGrade, FinalScore: req.FinalScore}, nil
}

type fakeCertificates struct {
	storage.CertificateRepoI
}

func (f *fakeCertificates) GetByNumber(_ context.Context, number string) (*models.Certificate, error) {
	if number != "CERT-2024-12345678" {
		return nil, helper.NotFound("certificate not found")
	}
	return &models.Certificate{Id: 3, CertificateNumber: number, Status: config.StatusActive}, nil
}

type fakeCurriculums struct {
	storage.CurriculumRepoI
}

type fakeStorage struct {
	pingErr  error
	subjects *fakeSubjects
	sales    *fakeSales
	users    *fakeUsers

	enrollments  *fakeEnrollments
	certificates *fakeCertificates
}

func (s *fakeStorage) CloseDB()                       {}
func (s *fakeStorage) Ping(ctx context.Context) error { return s.pingErr }
func (s *fakeStorage) Stats() psqlpool.Stats {
	return psqlpool.Stats{TotalConns: 3, IdleConns: 2, AcquiredConns: 1, MaxConns: 20}
}
func (s *fakeStorage) Subject() storage.SubjectRepoI         { return s.subjects }
func (s *fakeStorage) Major() storage.MajorRepoI             { return nil }
func (s *fakeStorage) Curriculum() storage.CurriculumRepoI   { return &fakeCurriculums{} }
func (s *fakeStorage) Instructor() storage.InstructorRepoI   { return nil }
func (s *fakeStorage) Department() storage.DepartmentRepoI   { return nil }
func (s *fakeStorage) Enrollment() storage.EnrollmentRepoI   { return s.enrollments }
func (s *fakeStorage) Certificate() storage.CertificateRepoI { return s.certificates }
func (s *fakeStorage) Sale() storage.SaleRepoI               { return s.sales }
func (s *fakeStorage) User() storage.UserRepoI               { return s.users }

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Field   string          `json:"field"`
	Data    json.RawMessage `json:"data"`
}

func newRouter(t *testing.T, env string) (*gin.Engine, *fakeStorage) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := helper.HashPasswordBcrypt("Secret123")
	require.NoError(t, err)

	strg := &fakeStorage{
		subjects:     &fakeSubjects{},
		sales:        &fakeSales{},
		enrollments:  &fakeEnrollments{},
		certificates: &fakeCertificates{},
		users: &fakeUsers{byEmail: map[string]models.User{
			"admin@rmu.ac.th":    {Id: 1, Email: "admin@rmu.ac.th", Password: hash, Role: "admin", Status: config.StatusActive},
			"inactive@rmu.ac.th": {Id: 2, Email: "inactive@rmu.ac.th", Password: hash, Role: "student", Status: config.StatusInactive},
		}},
	}

	cfg := config.Config{
		Environment:  env,
		Version:      "test",
		JWTSecret:    secret,
		JWTExpiresIn: time.Hour,
		CORSOrigin:   "*",
	}

	h := handlers.NewHandler(cfg, logger.Nop(), strg, nil)
	return api.SetUpRouter(h, cfg), strg
}

func do(t *testing.T, r http.Handler, req *http.Request) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func bearer(t *testing.T, role string) string {
	t.Helper()
	return bearerFor(t, 1, role)
}

func bearerFor(t *testing.T, userID int64, role string) string {
	t.Helper()
	token, err := security.GenerateJWT(secret, userID, "user@rmu.ac.th", role, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func jsonRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestSubjectList(t *testing.T) {
	r, strg := newRouter(t, config.DebugMode)
	strg.subjects.list = &lq.PageResult[models.Subject]{
		Data: []models.Subject{{Id: 12}, {Id: 14}},
		Pagination: lq.NewPageInfo(lq.Pagination{Page: 2, Limit: 5}, 7),
	}

	w, env := do(t, r, httptest.NewRequest(http.MethodGet, "/api/subjects?status=ACTIVE&page=2&limit=5&unknown=x", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "ACTIVE", strg.subjects.params.Get("status"))
	assert.Equal(t, "2", strg.subjects.params.Get("page"))

	var page lq.PageResult[models.Subject]
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Len(t, page.Data, 2)
	assert.Equal(t, lq.PageInfo{Page: 2, Limit: 5, Total: 7, TotalPages: 2, HasNext: false, HasPrev: true}, page.Pagination)
}

func TestSubjectListEmptyIsSuccess(t *testing.T) {
	r, strg := newRouter(t, config.DebugMode)
	strg.subjects.list = &lq.PageResult[models.Subject]{
		Data:       []models.Subject{},
		Pagination: lq.NewPageInfo(lq.Pagination{Page: 1, Limit: 10}, 0),
	}

	w, env := do(t, r, httptest.NewRequest(http.MethodGet, "/api/subjects?search=nothing", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.JSONEq(t, `{"data":[],"pagination":{"page":1,"limit":10,"total":0,"totalPages":0,"hasNext":false,"hasPrev":false}}`, string(env.Data))
}

func TestSubjectListErrors(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		err     error
		status  int
		field   string
		message string
	}{
		{
			name:   "bad filter value",
			env:    config.ReleaseMode,
			err:    &lq.ParamError{Param: "level", Reason: "must be between 1 and 10"},
			status: http.StatusBadRequest,
			field:  "level",
		},
		{
			name:    "storage failure hides cause in release",
			env:     config.ReleaseMode,
			err:     &lq.StorageError{Op: "count", Err: errors.New("connection reset by peer")},
			status:  http.StatusInternalServerError,
			message: "internal server error",
		},
		{
			name:    "storage failure shows cause in debug",
			env:     config.DebugMode,
			err:     &lq.StorageError{Op: "count", Err: errors.New("connection reset by peer")},
			status:  http.StatusInternalServerError,
			message: "listquery: count: connection reset by peer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, strg := newRouter(t, tt.env)
			strg.subjects.err = tt.err

			w, env := do(t, r, httptest.NewRequest(http.MethodGet, "/api/subjects", nil))
			assert.Equal(t, tt.status, w.Code)
			assert.False(t, env.Success)
			assert.Equal(t, tt.field, env.Field)
			if tt.message != "" {
				assert.Equal(t, tt.message, env.Message)
			}
		})
	}
}

func TestSubjectByID(t *testing.T) {
	r, strg := newRouter(t, config.DebugMode)

	w, env := do(t, r, httptest.NewRequest(http.MethodGet, "/api/subjects/abc", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "id", env.Field)

	w, _ = do(t, r, httptest.NewRequest(http.MethodGet, "/api/subjects/5", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	strg.subjects.err = helper.NotFound("subject not found")
	w, env = do(t, r, httptest.NewRequest(http.MethodGet, "/api/subjects/5", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "subject not found", env.Message)
}

func TestCreateSubject(t *testing.T) {
	body := map[string]any{"code": "BIO-101", "title": "Intro to Biology", "credits": 3, "level": 1}

	t.Run("requires token", func(t *testing.T) {
		r, _ := newRouter(t, config.DebugMode)
		w, env := do(t, r, jsonRequest(t, http.MethodPost, "/api/subjects", body))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, env.Success)
	})

	t.Run("rejects bad token", func(t *testing.T) {
		r, _ := newRouter(t, config.DebugMode)
		req := jsonRequest(t, http.MethodPost, "/api/subjects", body)
		req.Header.Set("Authorization", "Bearer nonsense")
		w, _ := do(t, r, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("validates body", func(t *testing.T) {
		r, strg := newRouter(t, config.DebugMode)
		req := jsonRequest(t, http.MethodPost, "/api/subjects", map[string]any{"title": "No code"})
		req.Header.Set("Authorization", bearer(t, "instructor"))
		w, env := do(t, r, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "code", env.Field)
		assert.Nil(t, strg.subjects.created)
	})

	t.Run("creates", func(t *testing.T) {
		r, strg := newRouter(t, config.DebugMode)
		req := jsonRequest(t, http.MethodPost, "/api/subjects", body)
		req.Header.Set("Authorization", bearer(t, "instructor"))
		w, env := do(t, r, req)
		require.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, env.Success)
		require.NotNil(t, strg.subjects.created)
		assert.Equal(t, "BIO-101", strg.subjects.created.Code)
	})
}

func TestCreateUserNeedsAdmin(t *testing.T) {
	body := map[string]any{
		"email": "new@rmu.ac.th", "password": "Secret123",
		"firstName": "Somchai", "lastName": "Dee", "role": "student",
	}

	r, _ := newRouter(t, config.DebugMode)
	req := jsonRequest(t, http.MethodPost, "/api/users", body)
	req.Header.Set("Authorization", bearer(t, "student"))
	w, _ := do(t, r, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	req = jsonRequest(t, http.MethodPost, "/api/users", body)
	req.Header.Set("Authorization", bearer(t, "admin"))
	w, env := do(t, r, req)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Success)
}

func TestSignIn(t *testing.T) {
	r, _ := newRouter(t, config.DebugMode)

	w, env := do(t, r, jsonRequest(t, http.MethodPost, "/api/auth/sign-in", map[string]string{
		"email": "admin@rmu.ac.th", "password": "Secret123",
	}))
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.SignInResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	claims, err := security.ParseJWT(resp.Token, secret)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.NotContains(t, string(env.Data), "password")

	for _, creds := range []map[string]string{
		{"email": "admin@rmu.ac.th", "password": "wrong"},
		{"email": "nobody@rmu.ac.th", "password": "Secret123"},
		{"email": "inactive@rmu.ac.th", "password": "Secret123"},
	} {
		w, env = do(t, r, jsonRequest(t, http.MethodPost, "/api/auth/sign-in", creds))
		assert.Equal(t, http.StatusUnauthorized, w.Code, creds["email"])
		assert.False(t, env.Success)
	}
}

func TestSaleListFromBody(t *testing.T) {
	r, strg := newRouter(t, config.DebugMode)

	w, env := do(t, r, jsonRequest(t, http.MethodPost, "/api/sale/list", map[string]any{
		"branch_code": "B01", "start_date": "2024-01-01", "page": 2, "limit": 20,
	}))
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.Equal(t, lq.Params{"branch_code": "B01", "start_date": "2024-01-01", "page": "2", "limit": "20"}, strg.sales.params)

	w, env = do(t, r, jsonRequest(t, http.MethodPost, "/api/sale/list", map[string]any{"page": 1}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "branchCode", env.Field)
}

func TestSaleExport(t *testing.T) {
	r, strg := newRouter(t, config.DebugMode)
	strg.sales.rows = []models.Sale{
		{SaleId: 2, BranchCode: "B01", CustomerCode: "C9", ProductCode: "P1", SaleDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Quantity: 2, UnitPrice: 50, TotalAmount: 100},
		{SaleId: 1, BranchCode: "B01", CustomerCode: "C7", ProductCode: "P2", SaleDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), Quantity: 1, UnitPrice: 30, TotalAmount: 30},
	}

	w, _ := do(t, r, httptest.NewRequest(http.MethodGet, "/api/sale/export?branch_code=B01", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "B01", strg.sales.params.Get("branch_code"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "sales-B01-")

	book, err := excel.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	rows, err := book.GetRows("Sales")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, models.SaleExportHeaders, rows[0])
	assert.Equal(t, "2024-03-01", rows[1][4])
}

func TestHealth(t *testing.T) {
	r, strg := newRouter(t, config.DebugMode)

	w, env := do(t, r, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","version":"test","database":{"totalConns":3,"idleConns":2,"acquiredConns":1,"maxConns":20}}`, string(env.Data))

	strg.pingErr = errors.New("dial tcp: connection refused")
	w, env = do(t, r, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "database unavailable", env.Message)
}

func TestCoverUploadWithoutObjectStorage(t *testing.T) {
	r, _ := newRouter(t, config.DebugMode)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "cover.png")
	require.NoError(t, err)
	_, _ = part.Write([]byte("png"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/curriculums/3/cover", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", bearer(t, "admin"))

	w, env := do(t, r, req)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.False(t, env.Success)
}

func TestCORSPreflight(t *testing.T) {
	r, _ := newRouter(t, config.DebugMode)

	req := httptest.NewRequest(http.MethodOptions, "/api/subjects", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestSaleExportRejectsUnsafeBranch(t *testing.T) {
	r, strg := newRouter(t, config.DebugMode)

	w, env := do(t, r, httptest.NewRequest(http.MethodGet, "/api/sale/export?branch_code=..%2Fx", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "branch_code", env.Field)
	assert.Nil(t, strg.sales.params)
}

func TestUpdateUserPermissions(t *testing.T) {
	r, strg := newRouter(t, config.DebugMode)

	put := func(id, token string, body map[string]any) (*httptest.ResponseRecorder, envelope) {
		req := jsonRequest(t, http.MethodPut, "/api/users/"+id, body)
		req.Header.Set("Authorization", token)
		return do(t, r, req)
	}

	w, _ := put("7", bearerFor(t, 7, "student"), map[string]any{"role": "super_admin"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = put("7", bearerFor(t, 7, "student"), map[string]any{"status": "ACTIVE"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = put("8", bearerFor(t, 7, "instructor"), map[string]any{"firstName": "Somchai"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, strg.users.updated)

	w, _ = put("7", bearerFor(t, 7, "student"), map[string]any{"firstName": "Somchai"})
	assert.Equal(t, http.StatusOK, w.Code)

	w, env := put("8", bearerFor(t, 1, "admin"), map[string]any{"role": "instructor"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"role":"instructor"`)
	assert.Equal(t, []int64{7, 8}, strg.users.updated)
}

func TestVerifyCertificate(t *testing.T) {
	r, _ := newRouter(t, config.DebugMode)

	w, env := do(t, r, httptest.NewRequest(http.MethodGet, "/api/certificates/verify/CERT-2024-12345678", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "certificate is valid", env.Message)
	assert.Contains(t, string(env.Data), `"certificate_number":"CERT-2024-12345678"`)

	w, _ = do(t, r, httptest.NewRequest(http.MethodGet, "/api/certificates/verify/CERT-0000-00000000", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateEnrollmentGrade(t *testing.T) {
	r, strg := newRouter(t, config.DebugMode)

	grade := func(id string, body map[string]any) (*httptest.ResponseRecorder, envelope) {
		req := jsonRequest(t, http.MethodPatch, "/api/enrollments/"+id+"/grade", body)
		req.Header.Set("Authorization", bearer(t, "instructor"))
		return do(t, r, req)
	}

	w, env := grade("5", map[string]any{"finalGrade": "A"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "finalScore", env.Field)

	w, env = grade("5", map[string]any{"finalGrade": "A", "finalScore": 101})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "finalScore", env.Field)

	w, _ = grade("6", map[string]any{"finalGrade": "B", "finalScore": 70})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = grade("5", map[string]any{"finalGrade": "A", "finalScore": 91.5})
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, strg.enrollments.graded)
	assert.Equal(t, 91.5, *strg.enrollments.graded.FinalScore)
}
