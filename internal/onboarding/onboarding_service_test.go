package onboarding_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hris-onboarding/internal/catalog"
	employeeerrors "hris-onboarding/internal/employee/errors"
	"hris-onboarding/internal/onboarding"
	onboardingerrors "hris-onboarding/internal/onboarding/errors"
	"hris-onboarding/internal/onboarding/mock"
	"hris-onboarding/internal/shared/apperror"
)

var strict = onboarding.Options{FileCompleteRequiresPhaseOne: true, DefaultDueDays: 7}

func TestService_HappyPathToActivation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, strict)
	emp := f.addEmployee("Ada Obi")
	admin := uuid.NewString()

	d1 := f.start(t, emp, "id_card")
	rec := f.repo.record(emp)
	assert.Equal(t, onboarding.StatusOnboarding, rec.EmploymentStatus)
	assert.Equal(t, 1, rec.CurrentPhase)
	assert.Equal(t, onboarding.OverallPending, rec.OverallStatus)
	assert.Equal(t, f.now, *rec.StartedAt)
	assert.Equal(t, onboarding.DocPending, d1.Status)
	assert.Equal(t, f.now.AddDate(0, 0, 2), *d1.DueDate)

	expectTx(t, f.db, true)
	uploaded, err := f.svc.UploadDocument(ctx, f.companyID, emp, d1.ID.String(), "files/id.pdf")
	assert.NoError(t, err)
	assert.Equal(t, "uploaded", uploaded.Document.Status)
	assert.Equal(t, "in_progress", uploaded.Onboarding.OverallStatus)

	expectTx(t, f.db, true)
	verified, err := f.svc.VerifyDocument(ctx, f.companyID, d1.ID.String(), admin)
	assert.NoError(t, err)
	assert.Equal(t, "verified", verified.Document.Status)
	assert.Equal(t, admin, *verified.Document.VerifiedBy)
	assert.Equal(t, "in_progress", verified.Onboarding.OverallStatus)
	assert.Equal(t, 5, verified.Onboarding.CurrentPhase)
	assert.Equal(t, 100, verified.Onboarding.ProfileCompletionPercentage)

	expectTx(t, f.db, true)
	completed, err := f.svc.MarkFileComplete(ctx, f.companyID, emp, admin)
	assert.NoError(t, err)
	assert.True(t, completed.EmployeeFileComplete)
	assert.Equal(t, admin, *completed.FileCompletedBy)
	assert.Equal(t, "completed", completed.OverallStatus)

	expectTx(t, f.db, true)
	f.notifier.EXPECT().EmployeeActivated(gomock.Any(), gomock.Any(), admin)
	activated, err := f.svc.Activate(ctx, f.companyID, emp, admin)
	assert.NoError(t, err)
	assert.Equal(t, "active", activated.Onboarding.EmploymentStatus)
	assert.Equal(t, "completed", activated.Onboarding.OverallStatus)
	assert.Equal(t, f.now, *activated.Onboarding.CompletedAt)
	assert.Equal(t, 3, activated.ProbationCheckIns)
	assert.Equal(t, *f.profiles.profiles[emp].HireDate, f.probation.hireDate)

	assert.NoError(t, f.db.ExpectationsWereMet())
}

func TestService_RejectAndResubmit(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, strict)
	emp := f.addEmployee("Ben Ade")
	admin := uuid.NewString()
	d1 := f.start(t, emp, "id_card")

	expectTx(t, f.db, true)
	_, err := f.svc.UploadDocument(ctx, f.companyID, emp, d1.ID.String(), "files/scan.jpg")
	assert.NoError(t, err)

	expectTx(t, f.db, true)
	f.notifier.EXPECT().DocumentRejected(gomock.Any(), gomock.Any(), gomock.Any(), admin).
		Do(func(_ context.Context, rec onboarding.Record, doc onboarding.Document, _ string) {
			assert.Equal(t, onboarding.OverallBlocked, rec.OverallStatus)
			assert.Equal(t, "illegible scan", *doc.RejectionReason)
		})
	rejected, err := f.svc.RejectDocument(ctx, f.companyID, d1.ID.String(), admin, "illegible scan")
	assert.NoError(t, err)
	assert.Equal(t, "rejected", rejected.Document.Status)
	assert.Equal(t, "blocked", rejected.Onboarding.OverallStatus)

	expectTx(t, f.db, true)
	again, err := f.svc.UploadDocument(ctx, f.companyID, emp, d1.ID.String(), "files/scan-2.jpg")
	assert.NoError(t, err)
	assert.Equal(t, "in_progress", again.Onboarding.OverallStatus)
	assert.Nil(t, again.Document.RejectionReason)

	expectTx(t, f.db, false)
	_, err = f.svc.RejectDocument(ctx, f.companyID, d1.ID.String(), admin, "  ")
	assert.ErrorIs(t, err, onboardingerrors.ErrRejectionReasonRequired)
	assert.Equal(t, onboarding.DocUploaded, f.repo.docByType(emp, "id_card").Status)

	assert.NoError(t, f.db.ExpectationsWereMet())
}

func TestService_InvalidTransitionLeavesLedgerUntouched(t *testing.T) {
	f := newFixture(t, strict)
	emp := f.addEmployee("Chi")
	d1 := f.start(t, emp, "id_card")
	before := f.repo.record(emp)

	expectTx(t, f.db, false)
	_, err := f.svc.VerifyDocument(context.Background(), f.companyID, d1.ID.String(), uuid.NewString())

	assert.ErrorIs(t, err, onboardingerrors.ErrInvalidTransition)
	assert.Equal(t, d1, f.repo.docByType(emp, "id_card"))
	assert.Equal(t, before, f.repo.record(emp))
	assert.NoError(t, f.db.ExpectationsWereMet())
}

func TestService_StartOnboarding_Errors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, strict)
	emp := f.addEmployee("Dayo")
	f.start(t, emp, "id_card")

	t.Run("already started", func(t *testing.T) {
		expectTx(t, f.db, false)
		_, err := f.svc.StartOnboarding(ctx, f.companyID, emp, "", "")
		assert.ErrorIs(t, err, onboardingerrors.ErrAlreadyStarted)
	})

	t.Run("unknown employee", func(t *testing.T) {
		_, err := f.svc.StartOnboarding(ctx, f.companyID, uuid.NewString(), "", "")
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("malformed employee id", func(t *testing.T) {
		_, err := f.svc.StartOnboarding(ctx, f.companyID, "not-a-uuid", "", "")
		assert.ErrorIs(t, err, onboardingerrors.ErrInvalidEmployeeID)
	})

	t.Run("catalog failure", func(t *testing.T) {
		other := f.addEmployee("Efe")
		f.catalogs.err = errors.New("catalog down")
		defer func() { f.catalogs.err = nil }()

		_, err := f.svc.StartOnboarding(ctx, f.companyID, other, "", "")
		assert.EqualError(t, err, "catalog down")
	})

	assert.NoError(t, f.db.ExpectationsWereMet())
}

func TestService_StartKeepsPreassignedDocuments(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, strict)
	emp := f.addEmployee("Femi")

	expectTx(t, f.db, true)
	created, err := f.svc.AssignDocuments(ctx, f.companyID, emp,
		[]catalog.DocumentType{{Type: "laptop_policy", Title: "Laptop Policy", Phase: 3, RequiresAcknowledgment: true}},
		onboarding.AssignOptions{})
	assert.NoError(t, err)
	assert.Equal(t, 1, created)
	assert.Equal(t, onboarding.StatusNewHire, f.repo.record(emp).EmploymentStatus)

	f.start(t, emp, "id_card")

	assert.NotEqual(t, uuid.Nil, f.repo.docByType(emp, "laptop_policy").ID)
	assert.NotEqual(t, uuid.Nil, f.repo.docByType(emp, "id_card").ID)
	assert.Equal(t, f.now.AddDate(0, 0, 7), *f.repo.docByType(emp, "laptop_policy").DueDate)
	assert.NoError(t, f.db.ExpectationsWereMet())
}

func TestService_LedgerFrozenOutsideOnboarding(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, strict)
	emp := f.addEmployee("Gbenga")

	expectTx(t, f.db, true)
	_, err := f.svc.AssignDocuments(ctx, f.companyID, emp, oneDocCatalog().Documents(), onboarding.AssignOptions{})
	assert.NoError(t, err)
	doc := f.repo.docByType(emp, "id_card")

	expectTx(t, f.db, false)
	_, err = f.svc.UploadDocument(ctx, f.companyID, emp, doc.ID.String(), "files/a.pdf")
	assert.ErrorIs(t, err, onboardingerrors.ErrNotOnboarding)

	expectTx(t, f.db, false)
	_, err = f.svc.MarkFileComplete(ctx, f.companyID, emp, uuid.NewString())
	assert.ErrorIs(t, err, onboardingerrors.ErrNotOnboarding)

	expectTx(t, f.db, false)
	_, err = f.svc.RefreshDocuments(ctx, f.companyID, emp)
	assert.ErrorIs(t, err, onboardingerrors.ErrNotOnboarding)

	assert.NoError(t, f.db.ExpectationsWereMet())
}

func TestService_SelfServiceIsScopedToOwner(t *testing.T) {
	f := newFixture(t, strict)
	owner := f.addEmployee("Hauwa")
	intruder := f.addEmployee("Ike")
	d1 := f.start(t, owner, "id_card")

	expectTx(t, f.db, false)
	_, err := f.svc.UploadDocument(context.Background(), f.companyID, intruder, d1.ID.String(), "files/x.pdf")

	assert.ErrorIs(t, err, onboardingerrors.ErrDocumentNotFound)
	assert.Equal(t, onboarding.DocPending, f.repo.docByType(owner, "id_card").Status)
	assert.NoError(t, f.db.ExpectationsWereMet())
}

func TestService_MarkFileComplete(t *testing.T) {
	ctx := context.Background()

	t.Run("phase one must be closed", func(t *testing.T) {
		f := newFixture(t, strict)
		emp := f.addEmployee("Jide")
		f.start(t, emp, "id_card")

		expectTx(t, f.db, false)
		_, err := f.svc.MarkFileComplete(ctx, f.companyID, emp, uuid.NewString())

		assert.ErrorIs(t, err, onboardingerrors.ErrPhaseOneIncomplete)
		assert.Contains(t, err.Error(), "ID Card")
		assert.False(t, f.repo.record(emp).EmployeeFileComplete)
		assert.NoError(t, f.db.ExpectationsWereMet())
	})

	t.Run("lenient and idempotent", func(t *testing.T) {
		f := newFixture(t, onboarding.Options{})
		emp := f.addEmployee("Kemi")
		f.start(t, emp, "id_card")
		admin := uuid.NewString()

		expectTx(t, f.db, true)
		first, err := f.svc.MarkFileComplete(ctx, f.companyID, emp, admin)
		assert.NoError(t, err)
		assert.True(t, first.EmployeeFileComplete)

		expectTx(t, f.db, true)
		second, err := f.svc.MarkFileComplete(ctx, f.companyID, emp, uuid.NewString())
		assert.NoError(t, err)
		assert.Equal(t, first.Version, second.Version)
		assert.Equal(t, admin, *second.FileCompletedBy)
		assert.NoError(t, f.db.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t, strict)
		expectTx(t, f.db, false)
		_, err := f.svc.MarkFileComplete(ctx, f.companyID, uuid.NewString(), uuid.NewString())
		assert.ErrorIs(t, err, onboardingerrors.ErrOnboardingNotFound)
	})
}

func TestService_ActivateBlockedByGates(t *testing.T) {
	f := newFixture(t, strict)
	emp := f.addEmployee("Lola")
	f.start(t, emp, "id_card")
	before := f.repo.record(emp)

	expectTx(t, f.db, false)
	_, err := f.svc.Activate(context.Background(), f.companyID, emp, uuid.NewString())

	assert.ErrorIs(t, err, onboardingerrors.ErrGateBlocked)
	var appErr *apperror.AppError
	assert.True(t, errors.As(err, &appErr))
	gates, ok := appErr.Details.(onboarding.GateResult)
	assert.True(t, ok)
	assert.False(t, gates.Passed)
	assert.Equal(t, []string{
		"Required documents not completed: ID Card (pending)",
		"Employee file has not been marked complete",
	}, gates.Errors)

	assert.Equal(t, before, f.repo.record(emp))
	assert.Equal(t, 0, f.probation.calls)
	assert.NoError(t, f.db.ExpectationsWereMet())
}

func TestService_ActivateFromWrongState(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, strict)

	active := f.addEmployee("Musa")
	f.seedRecord(active, onboarding.StatusActive)
	expectTx(t, f.db, false)
	_, err := f.svc.Activate(ctx, f.companyID, active, uuid.NewString())
	assert.ErrorIs(t, err, onboardingerrors.ErrAlreadyActive)

	newHire := f.addEmployee("Nneka")
	f.seedRecord(newHire, onboarding.StatusNewHire)
	expectTx(t, f.db, false)
	_, err = f.svc.Activate(ctx, f.companyID, newHire, uuid.NewString())
	assert.ErrorIs(t, err, onboardingerrors.ErrInvalidTransition)

	assert.NoError(t, f.db.ExpectationsWereMet())
}

func TestService_RefreshDocumentsIsIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, strict)
	emp := f.addEmployee("Ola")
	f.start(t, emp, "id_card")

	f.catalogs.cat.Phases = append(f.catalogs.cat.Phases, catalog.Phase{
		Number:    2,
		Name:      "Role Clarity",
		Documents: []catalog.DocumentType{{Type: "job_description", Title: "Job Description", RequiresAcknowledgment: true}},
	})
	f.catalogs.cat.Normalize()

	expectTx(t, f.db, true)
	first, err := f.svc.RefreshDocuments(ctx, f.companyID, emp)
	assert.NoError(t, err)
	assert.Equal(t, 1, first.DocumentsCreated)

	expectTx(t, f.db, true)
	second, err := f.svc.RefreshDocuments(ctx, f.companyID, emp)
	assert.NoError(t, err)
	assert.Equal(t, 0, second.DocumentsCreated)

	assert.Equal(t, onboarding.DocPending, f.repo.docByType(emp, "id_card").Status)
	assert.NoError(t, f.db.ExpectationsWereMet())
}

func TestService_ConcurrentModification(t *testing.T) {
	f := newFixture(t, onboarding.Options{})
	emp := f.addEmployee("Pelumi")
	f.start(t, emp, "id_card")
	f.repo.staleOnUpdate = true

	expectTx(t, f.db, false)
	_, err := f.svc.MarkFileComplete(context.Background(), f.companyID, emp, uuid.NewString())

	assert.ErrorIs(t, err, onboardingerrors.ErrConcurrentModification)
	assert.Equal(t, 409, apperror.ToHTTP(err).Status)
	assert.NoError(t, f.db.ExpectationsWereMet())
}

func TestService_ReadSide(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, strict)
	emp := f.addEmployee("Queen")
	other := f.addEmployee("Rotimi")
	f.start(t, emp, "id_card")
	f.start(t, other, "id_card")

	t.Run("status", func(t *testing.T) {
		expectTx(t, f.db, true)
		resp, err := f.svc.GetStatus(ctx, f.companyID, emp)

		assert.NoError(t, err)
		assert.Equal(t, "Queen", resp.Employee.FullName)
		assert.Equal(t, "Queen", resp.Onboarding.EmployeeName)
		assert.Len(t, resp.Phases, 5)
		assert.Equal(t, "Document Signing", resp.Phases[0].Name)
		assert.Len(t, resp.Phases[0].Documents, 1)
		assert.Empty(t, resp.Phases[1].Documents)
		assert.False(t, resp.HardGates.Passed)
	})

	t.Run("status not found", func(t *testing.T) {
		expectTx(t, f.db, false)
		_, err := f.svc.GetMyOnboarding(ctx, f.companyID, uuid.NewString())
		assert.ErrorIs(t, err, onboardingerrors.ErrOnboardingNotFound)
	})

	t.Run("hard gates", func(t *testing.T) {
		expectTx(t, f.db, true)
		gates, err := f.svc.CheckHardGates(ctx, f.companyID, emp)
		assert.NoError(t, err)
		assert.False(t, gates.Passed)
		assert.Len(t, gates.Errors, 2)
	})

	t.Run("list", func(t *testing.T) {
		expectTx(t, f.db, true)
		items, total, err := f.svc.ListOnboarding(ctx, f.companyID, onboarding.ListFilter{Status: onboarding.OverallPending, Phase: 1})
		assert.NoError(t, err)
		assert.Equal(t, int64(2), total)
		names := []string{items[0].EmployeeName, items[1].EmployeeName}
		assert.ElementsMatch(t, []string{"Queen", "Rotimi"}, names)
	})

	t.Run("list rejects bad filters", func(t *testing.T) {
		_, _, err := f.svc.ListOnboarding(ctx, f.companyID, onboarding.ListFilter{Status: "done"})
		assert.ErrorIs(t, err, onboardingerrors.ErrInvalidStatusFilter)

		_, _, err = f.svc.ListOnboarding(ctx, f.companyID, onboarding.ListFilter{Phase: 6})
		assert.ErrorIs(t, err, onboardingerrors.ErrInvalidPhaseFilter)
	})

	assert.NoError(t, f.db.ExpectationsWereMet())
}

func TestService_RecordInsertRace(t *testing.T) {
	ctx := context.Background()

	t.Run("assign reports a retryable conflict", func(t *testing.T) {
		f := newFixture(t, strict)
		emp := f.addEmployee("Ada Obi")
		f.seedRecord(emp, onboarding.StatusNewHire)
		f.repo.missOnLock = true

		expectTx(t, f.db, false)
		_, err := f.svc.AssignDocuments(ctx, f.companyID, emp, oneDocCatalog().Documents(), onboarding.AssignOptions{})

		assert.ErrorIs(t, err, onboardingerrors.ErrConcurrentModification)
		assert.False(t, errors.Is(err, onboardingerrors.ErrAlreadyStarted))
		assert.Equal(t, onboarding.StatusNewHire, f.repo.record(emp).EmploymentStatus)
	})

	t.Run("start reports already started", func(t *testing.T) {
		f := newFixture(t, strict)
		emp := f.addEmployee("Ada Obi")
		f.seedRecord(emp, onboarding.StatusOnboarding)
		f.repo.missOnLock = true

		expectTx(t, f.db, false)
		_, err := f.svc.StartOnboarding(ctx, f.companyID, emp, "", uuid.NewString())

		assert.ErrorIs(t, err, onboardingerrors.ErrAlreadyStarted)
	})
}

func TestService_TransitionPersistFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	db, sm, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	companyID, employeeID := uuid.New(), uuid.New()
	doc := onboarding.Document{
		ID:             uuid.New(),
		CompanyID:      companyID,
		EmployeeID:     employeeID,
		DocumentType:   "id_card",
		Title:          "ID Card",
		Phase:          1,
		RequiresUpload: true,
		IsRequired:     true,
		Status:         onboarding.DocUploaded,
	}
	rec := onboarding.Record{
		ID:               uuid.New(),
		CompanyID:        companyID,
		EmployeeID:       employeeID,
		EmploymentStatus: onboarding.StatusOnboarding,
		CurrentPhase:     1,
		OverallStatus:    onboarding.OverallInProgress,
		Version:          4,
	}

	repo := mock.NewMockRepository(ctrl)
	repo.EXPECT().WithTx(gomock.Any()).Return(repo)
	repo.EXPECT().FindDocument(gomock.Any(), companyID.String(), doc.ID.String()).Return(&doc, nil)
	repo.EXPECT().LockRecordByEmployee(gomock.Any(), companyID.String(), employeeID.String()).Return(&rec, nil)
	repo.EXPECT().ListDocuments(gomock.Any(), companyID.String(), employeeID.String()).Return([]onboarding.Document{doc}, nil)
	repo.EXPECT().UpdateDocument(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

	svc := onboarding.NewService(db, repo, &fakeCatalogs{}, &fakeProfiles{}, &fakeProbation{}, mock.NewMockNotifier(ctrl), strict)

	expectTx(t, sm, false)
	_, err = svc.RejectDocument(ctx, companyID.String(), doc.ID.String(), uuid.NewString(), "blurred")

	assert.EqualError(t, err, "connection reset")
	assert.Equal(t, 500, apperror.ToHTTP(err).Status)
	assert.NoError(t, sm.ExpectationsWereMet())
}
