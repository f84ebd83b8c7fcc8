package deduction

import (
	"context"
	"testing"

	"github.com/konveksi/payroll-backend-go/internal/domain/deduction"
	"github.com/konveksi/payroll-backend-go/internal/domain/employee"
	"github.com/konveksi/payroll-backend-go/internal/domain/user"
	"github.com/konveksi/payroll-backend-go/internal/pkg/validator"
	"github.com/konveksi/payroll-backend-go/internal/service/servicetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const empID = "11111111-1111-1111-1111-111111111111"

var manager = user.Caller{ID: "manager-1", Role: user.RoleManager}

func newService() (deduction.DeductionService, *servicetest.DeductionRepo) {
	repo := servicetest.NewDeductionRepo()
	employees := servicetest.NewEmployeeRepo(employee.Employee{ID: empID, NIK: "KNV-001", Status: employee.StatusActive})
	return NewDeductionService(repo, employees), repo
}

func TestDeductionService_Create(t *testing.T) {
	svc, _ := newService()

	d, err := svc.Create(context.Background(), manager, deduction.CreateDeductionRequest{
		EmployeeID: empID, TotalAmount: 500000, InstallmentPerPeriod: 100000,
	})
	require.NoError(t, err)
	assert.Equal(t, deduction.TypeKasbon, d.Type)
	assert.Equal(t, int64(500000), d.RemainingAmount)
	assert.Equal(t, deduction.StatusActive, d.Status)
}

func TestDeductionService_CreateValidation(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Create(context.Background(), manager, deduction.CreateDeductionRequest{EmployeeID: empID})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "total_amount")
	assert.Contains(t, verrs.ToMap(), "installment_per_period")
}

func TestDeductionService_UpdateDoesNotTouchBalance(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	d, err := svc.Create(ctx, manager, deduction.CreateDeductionRequest{EmployeeID: empID, TotalAmount: 500000, InstallmentPerPeriod: 100000})
	require.NoError(t, err)

	installment := int64(50000)
	notes := "dipotong setengah"
	updated, err := svc.Update(ctx, manager, deduction.UpdateDeductionRequest{ID: d.ID, InstallmentPerPeriod: &installment, Notes: &notes})
	require.NoError(t, err)
	assert.Equal(t, installment, updated.InstallmentPerPeriod)
	assert.Equal(t, int64(500000), updated.RemainingAmount)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, notes, *updated.Notes)
}

func TestDeductionService_DeleteOnlyUntouched(t *testing.T) {
	svc, repo := newService()
	ctx := context.Background()

	untouched, err := svc.Create(ctx, manager, deduction.CreateDeductionRequest{EmployeeID: empID, TotalAmount: 300000, InstallmentPerPeriod: 100000})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, manager, untouched.ID))

	repaid, err := svc.Create(ctx, manager, deduction.CreateDeductionRequest{EmployeeID: empID, TotalAmount: 300000, InstallmentPerPeriod: 100000})
	require.NoError(t, err)
	_, err = repo.ApplyInstallment(ctx, repaid.ID, 100000)
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, manager, repaid.ID), deduction.ErrDeductionAlreadyRepaid)
}

func TestDeductionService_UpdatePaidOff(t *testing.T) {
	svc, repo := newService()
	ctx := context.Background()

	d, err := svc.Create(ctx, manager, deduction.CreateDeductionRequest{EmployeeID: empID, TotalAmount: 100000, InstallmentPerPeriod: 100000})
	require.NoError(t, err)
	_, err = repo.ApplyInstallment(ctx, d.ID, 100000)
	require.NoError(t, err)

	installment := int64(10000)
	_, err = svc.Update(ctx, manager, deduction.UpdateDeductionRequest{ID: d.ID, InstallmentPerPeriod: &installment})
	assert.ErrorIs(t, err, deduction.ErrDeductionNotActive)

	list, err := svc.List(ctx, manager, deduction.DeductionFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, deduction.StatusPaidOff, list[0].Status)
}
