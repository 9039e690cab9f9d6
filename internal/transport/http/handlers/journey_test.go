package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"

	"paydesk/internal/app/server"
	"paydesk/internal/domain/auth"
	"paydesk/internal/domain/core"
	"paydesk/internal/domain/payroll"
	"paydesk/internal/domain/receipt"
	"paydesk/internal/domain/reports"
)

// memStore backs every domain service with in-memory maps, so the whole
// request path from router to service runs without a database.
type memStore struct {
	admins    map[string]string
	employees map[string]core.Employee
	salaries  map[int64]payroll.SalaryRecord
	nextID    int64
}

func (m *memStore) AdminPasswordHash(_ context.Context, username string) (string, error) {
	hash, ok := m.admins[username]
	if !ok {
		return "", pgx.ErrNoRows
	}
	return hash, nil
}

func (m *memStore) EmployeePasswordHash(_ context.Context, empID string) (string, error) {
	emp, ok := m.employees[empID]
	if !ok {
		return "", pgx.ErrNoRows
	}
	return emp.PasswordHash, nil
}

func (m *memStore) GetEmployee(_ context.Context, empID string) (*core.Employee, error) {
	emp, ok := m.employees[empID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &emp, nil
}

func (m *memStore) ListEmployees(_ context.Context) ([]core.Employee, error) {
	out := make([]core.Employee, 0, len(m.employees))
	for _, emp := range m.employees {
		out = append(out, emp)
	}
	return out, nil
}

func (m *memStore) SearchEmployees(_ context.Context, query string) ([]core.Employee, error) {
	var out []core.Employee
	for _, emp := range m.employees {
		if strings.Contains(strings.ToLower(emp.Name), strings.ToLower(query)) {
			out = append(out, emp)
		}
	}
	return out, nil
}

func (m *memStore) CreateEmployee(_ context.Context, emp core.Employee) error {
	if _, ok := m.employees[emp.EmpID]; ok {
		return core.ErrEmployeeExists
	}
	m.employees[emp.EmpID] = emp
	return nil
}

func (m *memStore) UpdateEmployee(_ context.Context, emp core.Employee, updatePassword bool) error {
	existing, ok := m.employees[emp.EmpID]
	if !ok {
		return core.ErrEmployeeNotFound
	}
	if !updatePassword {
		emp.PasswordHash = existing.PasswordHash
	}
	m.employees[emp.EmpID] = emp
	return nil
}

func (m *memStore) DeleteEmployeeCascade(_ context.Context, empID string) error {
	if _, ok := m.employees[empID]; !ok {
		return core.ErrEmployeeNotFound
	}
	delete(m.employees, empID)
	for id, rec := range m.salaries {
		if rec.EmpID == empID {
			delete(m.salaries, id)
		}
	}
	return nil
}

func (m *memStore) EmployeeNameDepartment(_ context.Context, empID string) (string, string, error) {
	emp, ok := m.employees[empID]
	if !ok {
		return "", "", pgx.ErrNoRows
	}
	return emp.Name, emp.Department, nil
}

func (m *memStore) CreateSalary(_ context.Context, rec payroll.SalaryRecord) (int64, error) {
	m.nextID++
	rec.ID = m.nextID
	m.salaries[rec.ID] = rec
	return rec.ID, nil
}

func (m *memStore) UpdateSalary(_ context.Context, rec payroll.SalaryRecord) error {
	existing, ok := m.salaries[rec.ID]
	if !ok {
		return payroll.ErrSalaryNotFound
	}
	rec.Name = existing.Name
	rec.Department = existing.Department
	rec.Date = existing.Date
	m.salaries[rec.ID] = rec
	return nil
}

func (m *memStore) DeleteSalary(_ context.Context, id int64) error {
	if _, ok := m.salaries[id]; !ok {
		return payroll.ErrSalaryNotFound
	}
	delete(m.salaries, id)
	return nil
}

func (m *memStore) GetSalary(_ context.Context, id int64) (*payroll.SalaryRecord, error) {
	rec, ok := m.salaries[id]
	if !ok {
		return nil, payroll.ErrSalaryNotFound
	}
	return &rec, nil
}

func (m *memStore) ListSalaries(_ context.Context) ([]payroll.SalaryRecord, error) {
	out := make([]payroll.SalaryRecord, 0, len(m.salaries))
	for _, rec := range m.salaries {
		out = append(out, rec)
	}
	return out, nil
}

func (m *memStore) ListSalariesForEmployee(_ context.Context, empID string) ([]payroll.SalaryRecord, error) {
	var out []payroll.SalaryRecord
	for _, rec := range m.salaries {
		if strings.EqualFold(rec.EmpID, empID) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (m *memStore) ReceiptRow(_ context.Context, id int64) (*payroll.ReceiptRow, error) {
	rec, ok := m.salaries[id]
	if !ok {
		return nil, payroll.ErrSalaryNotFound
	}
	emp := m.employees[rec.EmpID]
	return &payroll.ReceiptRow{
		SalaryID:    rec.ID,
		EmpID:       rec.EmpID,
		Name:        rec.Name,
		Department:  rec.Department,
		Basic:       rec.Basic,
		DA:          rec.DA,
		HRA:         rec.HRA,
		MA:          rec.MA,
		PF:          rec.PF,
		Insurance:   rec.Insurance,
		Tax:         rec.Tax,
		Net:         rec.Net,
		Date:        rec.Date,
		Address:     emp.Address,
		Designation: emp.Designation,
		Phone:       emp.Phone,
	}, nil
}

func newTestServer(t *testing.T) (*httptest.Server, *memStore) {
	t.Helper()

	adminHash, err := auth.HashPassword("12345")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	empHash, err := auth.HashPassword("54321")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}

	store := &memStore{
		admins: map[string]string{"admin": adminHash},
		employees: map[string]core.Employee{
			"EMP001": {
				EmpID:        "EMP001",
				Name:         "John Doe",
				Department:   "IT",
				Designation:  "Developer",
				Address:      "123 Main St",
				Phone:        "1234567890",
				PasswordHash: empHash,
			},
		},
		salaries: map[int64]payroll.SalaryRecord{},
	}

	deps := server.Deps{
		AuthService:    auth.NewService(store),
		CoreService:    core.NewService(store),
		PayrollService: payroll.NewService(store),
		ReportsService: reports.NewService(store),
		Exporter:       receipt.NewExporter(t.TempDir(), false),
		JWTSecret:      "test-secret",
	}

	ts := httptest.NewServer(server.NewRouter(deps))
	t.Cleanup(ts.Close)
	return ts, store
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	RequestID string `json:"requestId"`
}

func do(t *testing.T, ts *httptest.Server, method, path, token string, body any) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client().Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode response for %s %s: %v", method, path, err)
	}
	return resp.StatusCode, env
}

func login(t *testing.T, ts *httptest.Server, username, password, loginAs string) string {
	t.Helper()

	status, env := do(t, ts, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": username,
		"password": password,
		"loginAs":  loginAs,
	})
	if status != http.StatusOK {
		t.Fatalf("login as %s returned %d", username, status)
	}
	var payload struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if payload.Token == "" {
		t.Fatal("login returned an empty token")
	}
	return payload.Token
}

func salaryInput(empID string) map[string]string {
	return map[string]string{
		"empId":       empID,
		"basicSalary": "50000",
		"da":          "5000",
		"hra":         "10000",
		"ma":          "2000",
		"pf":          "3000",
		"insurance":   "1500",
		"tax":         "2500",
	}
}

func TestAdminJourney(t *testing.T) {
	ts, store := newTestServer(t)
	token := login(t, ts, "admin", "12345", "admin")

	status, _ := do(t, ts, http.MethodPost, "/api/v1/employees", token, map[string]string{
		"empId":         "EMP002",
		"name":          "Jane Roe",
		"email":         "jane@example.com",
		"phone":         "9876543210",
		"department":    "Finance",
		"designation":   "Accountant",
		"dateOfJoining": "2022-01-15",
		"password":      "secret",
	})
	if status != http.StatusCreated {
		t.Fatalf("create employee returned %d", status)
	}

	status, env := do(t, ts, http.MethodPost, "/api/v1/salaries", token, salaryInput("EMP002"))
	if status != http.StatusCreated {
		t.Fatalf("create salary returned %d", status)
	}
	var created payroll.SalaryRecord
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("decode salary: %v", err)
	}
	if created.Net != 60000 {
		t.Fatalf("expected net 60000, got %v", created.Net)
	}
	if created.Name != "Jane Roe" || created.Department != "Finance" {
		t.Fatalf("expected denormalized employee attributes, got %+v", created)
	}

	req, err := http.NewRequest(http.MethodGet, ts.URL+fmt.Sprintf("/api/v1/salaries/%d/receipt", created.ID), nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := ts.Client().Do(req)
	if err != nil {
		t.Fatalf("receipt preview failed: %v", err)
	}
	text, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("receipt preview returned %d", resp.StatusCode)
	}
	for _, want := range []string{"EMPLOYEE SALARY RECEIPT", "Jane Roe", "67000.00", "Net Salary: 60000.00"} {
		if !strings.Contains(string(text), want) {
			t.Fatalf("receipt preview missing %q", want)
		}
	}

	status, env = do(t, ts, http.MethodPost, fmt.Sprintf("/api/v1/salaries/%d/receipt/export", created.ID), token, nil)
	if status != http.StatusOK {
		t.Fatalf("receipt export returned %d", status)
	}
	var exported receipt.Result
	if err := json.Unmarshal(env.Data, &exported); err != nil {
		t.Fatalf("decode export result: %v", err)
	}
	for _, path := range []string{exported.TextPath, exported.PDFPath} {
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("exported artifact missing: %v", err)
		}
	}

	status, _ = do(t, ts, http.MethodDelete, "/api/v1/employees/EMP002", token, nil)
	if status != http.StatusOK {
		t.Fatalf("delete employee returned %d", status)
	}
	if _, ok := store.salaries[created.ID]; ok {
		t.Fatal("expected cascade delete to remove the employee's salaries")
	}
}

func TestEmployeeRoleScoping(t *testing.T) {
	ts, _ := newTestServer(t)

	adminToken := login(t, ts, "admin", "12345", "admin")
	if status, _ := do(t, ts, http.MethodPost, "/api/v1/salaries", adminToken, salaryInput("EMP001")); status != http.StatusCreated {
		t.Fatalf("seed salary failed with %d", status)
	}

	// Lowercase id normalizes to EMP001.
	token := login(t, ts, "emp001", "54321", "employee")

	status, env := do(t, ts, http.MethodGet, "/api/v1/salaries", token, nil)
	if status != http.StatusOK {
		t.Fatalf("own salary list returned %d", status)
	}
	var records []payroll.SalaryRecord
	if err := json.Unmarshal(env.Data, &records); err != nil {
		t.Fatalf("decode salary list: %v", err)
	}
	if len(records) != 1 || records[0].EmpID != "EMP001" {
		t.Fatalf("expected only own records, got %+v", records)
	}

	status, env = do(t, ts, http.MethodPost, "/api/v1/salaries", token, salaryInput("EMP001"))
	if status != http.StatusForbidden || env.Error == nil || env.Error.Code != "permission_denied" {
		t.Fatalf("expected 403 permission_denied on mutation, got %d %+v", status, env.Error)
	}

	status, _ = do(t, ts, http.MethodGet, "/api/v1/employees/EMP999/salaries", token, nil)
	if status != http.StatusForbidden {
		t.Fatalf("expected 403 on a foreign employee's salaries, got %d", status)
	}

	status, _ = do(t, ts, http.MethodGet, "/api/v1/employees", token, nil)
	if status != http.StatusForbidden {
		t.Fatalf("expected 403 on the employee directory, got %d", status)
	}
}

func TestUnauthenticatedRequestsAreRejected(t *testing.T) {
	ts, _ := newTestServer(t)

	status, env := do(t, ts, http.MethodGet, "/api/v1/salaries", "", nil)
	if status != http.StatusUnauthorized || env.Error == nil || env.Error.Code != "unauthorized" {
		t.Fatalf("expected 401 unauthorized, got %d %+v", status, env.Error)
	}
}

func TestErrorMappingOverHTTP(t *testing.T) {
	ts, _ := newTestServer(t)
	token := login(t, ts, "admin", "12345", "admin")

	status, env := do(t, ts, http.MethodPost, "/api/v1/employees", token, map[string]string{
		"empId":    "EMP003",
		"name":     "Bad Email",
		"email":    "not-an-email",
		"password": "secret",
	})
	if status != http.StatusBadRequest || env.Error == nil || env.Error.Code != "validation_error" {
		t.Fatalf("expected 400 validation_error, got %d %+v", status, env.Error)
	}

	input := salaryInput("EMP001")
	input["tax"] = "abc"
	status, env = do(t, ts, http.MethodPost, "/api/v1/salaries", token, input)
	if status != http.StatusBadRequest || env.Error == nil || env.Error.Code != "invalid_input" {
		t.Fatalf("expected 400 invalid_input, got %d %+v", status, env.Error)
	}
	if env.Error.Message != "Tax must be a number" {
		t.Fatalf("unexpected message %q", env.Error.Message)
	}

	status, env = do(t, ts, http.MethodGet, "/api/v1/salaries/9999", token, nil)
	if status != http.StatusNotFound || env.Error == nil || env.Error.Code != "not_found" {
		t.Fatalf("expected 404 not_found, got %d %+v", status, env.Error)
	}

	status, env = do(t, ts, http.MethodPost, "/api/v1/salaries", token, salaryInput("EMP404"))
	if status != http.StatusNotFound {
		t.Fatalf("expected 404 for a missing employee, got %d", status)
	}
}
