package onboarding_test

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"hris-onboarding/internal/catalog"
	"hris-onboarding/internal/employee"
	employeeerrors "hris-onboarding/internal/employee/errors"
	"hris-onboarding/internal/onboarding"
	onboardingerrors "hris-onboarding/internal/onboarding/errors"
	"hris-onboarding/internal/onboarding/mock"
)

// memRepo is an in-memory Repository. Reads return copies so unsaved changes
// made by a failed operation never leak into the store.
type memRepo struct {
	mu        sync.Mutex
	records   map[string]onboarding.Record
	documents map[uuid.UUID]onboarding.Document

	// staleOnUpdate makes the next UpdateRecord miss its version check.
	staleOnUpdate bool
	// missOnLock makes the next LockRecordByEmployee miss an existing row, as
	// when another transaction inserts it after the lock read.
	missOnLock bool
}

func newMemRepo() *memRepo {
	return &memRepo{
		records:   map[string]onboarding.Record{},
		documents: map[uuid.UUID]onboarding.Document{},
	}
}

func (r *memRepo) WithTx(tx *sql.Tx) onboarding.Repository { return r }

func (r *memRepo) FindRecordByEmployee(ctx context.Context, companyID, employeeID string) (*onboarding.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[employeeID]
	if !ok || rec.CompanyID.String() != companyID {
		return nil, gorm.ErrRecordNotFound
	}
	return &rec, nil
}

func (r *memRepo) LockRecordByEmployee(ctx context.Context, companyID, employeeID string) (*onboarding.Record, error) {
	r.mu.Lock()
	miss := r.missOnLock
	r.missOnLock = false
	r.mu.Unlock()
	if miss {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindRecordByEmployee(ctx, companyID, employeeID)
}

func (r *memRepo) CreateRecord(ctx context.Context, rec *onboarding.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[rec.EmployeeID.String()]; ok {
		return &pgconn.PgError{Code: "23505", ConstraintName: "uq_employee_onboarding_employee"}
	}
	r.records[rec.EmployeeID.String()] = *rec
	return nil
}

func (r *memRepo) UpdateRecord(ctx context.Context, rec *onboarding.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.records[rec.EmployeeID.String()]
	if r.staleOnUpdate {
		r.staleOnUpdate = false
		stored.Version++
	}
	if !ok || stored.Version != rec.Version {
		return onboardingerrors.ErrConcurrentModification
	}
	rec.Version++
	rec.UpdatedAt = time.Now().UTC()
	r.records[rec.EmployeeID.String()] = *rec
	return nil
}

func (r *memRepo) ListRecords(ctx context.Context, companyID string, filter onboarding.ListFilter) ([]onboarding.Record, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []onboarding.Record
	for _, rec := range r.records {
		if rec.CompanyID.String() != companyID {
			continue
		}
		if filter.Status != "" && rec.OverallStatus != filter.Status {
			continue
		}
		if filter.Phase > 0 && rec.CurrentPhase != filter.Phase {
			continue
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EmployeeID.String() < out[j].EmployeeID.String() })
	return out, int64(len(out)), nil
}

func (r *memRepo) ListDocuments(ctx context.Context, companyID, employeeID string) ([]onboarding.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []onboarding.Document
	for _, d := range r.documents {
		if d.CompanyID.String() == companyID && d.EmployeeID.String() == employeeID {
			out = append(out, d)
		}
	}
	onboarding.SortDocuments(out)
	return out, nil
}

func (r *memRepo) FindDocument(ctx context.Context, companyID, documentID string) (*onboarding.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, err := uuid.Parse(documentID)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	d, ok := r.documents[id]
	if !ok || d.CompanyID.String() != companyID {
		return nil, gorm.ErrRecordNotFound
	}
	return &d, nil
}

func (r *memRepo) CreateDocuments(ctx context.Context, docs []onboarding.Document) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	created := 0
	for _, d := range docs {
		exists := false
		for _, e := range r.documents {
			if e.EmployeeID == d.EmployeeID && e.DocumentType == d.DocumentType {
				exists = true
				break
			}
		}
		if exists {
			continue
		}
		r.documents[d.ID] = d
		created++
	}
	return created, nil
}

func (r *memRepo) UpdateDocument(ctx context.Context, doc *onboarding.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.documents[doc.ID] = *doc
	return nil
}

func (r *memRepo) record(employeeID string) onboarding.Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.records[employeeID]
}

func (r *memRepo) docByType(employeeID, docType string) onboarding.Document {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.documents {
		if d.EmployeeID.String() == employeeID && d.DocumentType == docType {
			return d
		}
	}
	return onboarding.Document{}
}

type fakeCatalogs struct {
	cat catalog.Catalog
	err error
}

func (f *fakeCatalogs) ForCompany(ctx context.Context, companyID, workflowID string) (catalog.Catalog, error) {
	return f.cat, f.err
}

type fakeProfiles struct {
	profiles map[string]employee.Profile
}

func (f *fakeProfiles) GetProfile(ctx context.Context, companyID, employeeID string) (employee.Profile, error) {
	p, ok := f.profiles[employeeID]
	if !ok {
		return employee.Profile{}, employeeerrors.ErrEmployeeNotFound
	}
	return p, nil
}

func (f *fakeProfiles) GetProfiles(ctx context.Context, companyID string, employeeIDs []string) (map[string]employee.Profile, error) {
	out := map[string]employee.Profile{}
	for _, id := range employeeIDs {
		if p, ok := f.profiles[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

type fakeProbation struct {
	calls    int
	hireDate time.Time
	err      error
}

func (f *fakeProbation) Schedule(ctx context.Context, tx *sql.Tx, companyID, employeeID string, hireDate time.Time) (int, error) {
	f.calls++
	f.hireDate = hireDate
	return 3, f.err
}

type fixture struct {
	svc       onboarding.Service
	repo      *memRepo
	db        sqlmock.Sqlmock
	notifier  *mock.MockNotifier
	catalogs  *fakeCatalogs
	profiles  *fakeProfiles
	probation *fakeProbation
	companyID string
	now       time.Time
}

func oneDocCatalog() catalog.Catalog {
	cat := catalog.Catalog{
		Source: catalog.SourceBuiltin,
		Phases: []catalog.Phase{{
			Number:  1,
			Name:    "Document Signing",
			DueDays: 2,
			Documents: []catalog.DocumentType{
				{Type: "id_card", Title: "ID Card", RequiresUpload: true},
			},
		}},
	}
	cat.Normalize()
	return cat
}

func newFixture(t *testing.T, opts onboarding.Options) *fixture {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	f := &fixture{
		repo:      newMemRepo(),
		db:        sqlMock,
		notifier:  mock.NewMockNotifier(gomock.NewController(t)),
		catalogs:  &fakeCatalogs{cat: oneDocCatalog()},
		profiles:  &fakeProfiles{profiles: map[string]employee.Profile{}},
		probation: &fakeProbation{},
		companyID: uuid.NewString(),
		now:       time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
	}
	opts.Now = func() time.Time { return f.now }
	f.svc = onboarding.NewService(db, f.repo, f.catalogs, f.profiles, f.probation, f.notifier, opts)
	return f
}

func (f *fixture) addEmployee(name string) string {
	id := uuid.NewString()
	hire := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	f.profiles.profiles[id] = employee.Profile{ID: id, CompanyID: f.companyID, FullName: name, HireDate: &hire}
	return id
}

func expectTx(t *testing.T, sm sqlmock.Sqlmock, commit bool) {
	t.Helper()
	sm.ExpectBegin()
	if commit {
		sm.ExpectCommit()
	} else {
		sm.ExpectRollback()
	}
}

func (f *fixture) seedRecord(employeeID string, status onboarding.EmploymentStatus) {
	f.repo.mu.Lock()
	defer f.repo.mu.Unlock()
	f.repo.records[employeeID] = onboarding.Record{
		ID:               uuid.New(),
		CompanyID:        uuid.MustParse(f.companyID),
		EmployeeID:       uuid.MustParse(employeeID),
		EmploymentStatus: status,
		CurrentPhase:     1,
		OverallStatus:    onboarding.OverallPending,
		Version:          1,
	}
}

// start runs a successful StartOnboarding and returns the seeded document of docType.
func (f *fixture) start(t *testing.T, employeeID, docType string) onboarding.Document {
	t.Helper()
	expectTx(t, f.db, true)
	f.notifier.EXPECT().OnboardingStarted(gomock.Any(), gomock.Any(), gomock.Any())

	_, err := f.svc.StartOnboarding(context.Background(), f.companyID, employeeID, "", uuid.NewString())
	assert.NoError(t, err)
	return f.repo.docByType(employeeID, docType)
}
