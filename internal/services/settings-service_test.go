package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"parc-info/internal/dto"
	"parc-info/internal/entities"
	"parc-info/pkg/utils"
)

type stubEmployeeService struct {
	created []dto.CreateEmployeeDTO
}

func (s *stubEmployeeService) GetEmployees(ctx context.Context, params utils.ListParams) ([]entities.Employee, uint64, error) {
	return []entities.Employee{
		{ID: "e1", Name: "Alice Martin", Email: "alice@parc.info", Department: "IT", Position: "Technicienne"},
	}, 1, nil
}

func (s *stubEmployeeService) FindEmployee(ctx context.Context, id string) (*entities.Employee, error) {
	return nil, nil
}

func (s *stubEmployeeService) CreateEmployee(ctx context.Context, d dto.CreateEmployeeDTO) (*entities.Employee, error) {
	s.created = append(s.created, d)
	return &entities.Employee{ID: "new", Name: d.Name}, nil
}

func (s *stubEmployeeService) UpdateEmployee(ctx context.Context, id string, d dto.UpdateEmployeeDTO) (*entities.Employee, error) {
	return nil, nil
}

func (s *stubEmployeeService) DeleteEmployee(ctx context.Context, id string) error { return nil }

func newTestSettingsService(employees EmployeeServiceInterface) SettingsServiceInterface {
	return NewSettingsService(nil, employees, nil, nil, zap.NewNop())
}

func buildWorkbook(t *testing.T, rows [][]any) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}
	return f
}

func TestTemplateHasOnlyHeaders(t *testing.T) {
	svc := newTestSettingsService(&stubEmployeeService{})

	f, err := svc.Template("employees")
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"Nom", "Email", "Département", "Poste"}, rows[0])
}

func TestTemplateUnknownCollection(t *testing.T) {
	svc := newTestSettingsService(&stubEmployeeService{})
	_, err := svc.Template("serveurs")
	require.Error(t, err)
}

func TestImportEmployeesCountsGoodAndBadLines(t *testing.T) {
	stub := &stubEmployeeService{}
	svc := newTestSettingsService(stub)

	f := buildWorkbook(t, [][]any{
		{"Nom", "Email", "Département", "Poste"},
		{"Alice Martin", "alice@parc.info", "IT", "Technicienne"},
		{"Bob Durand", "pas-un-email", "RH", "Gestionnaire"},
		{"Chloé Petit", "chloe@parc.info", "IT", "Admin"},
	})
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	report, err := svc.Import(context.Background(), "employees", "u1", buf)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Imported)
	assert.Equal(t, 1, report.Failed)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, 3, report.Errors[0].Line)
	assert.Contains(t, report.Errors[0].Fields, "email")
	require.Len(t, stub.created, 2)
	assert.Equal(t, "Alice Martin", stub.created[0].Name)
}

func TestImportSkipsBlankRows(t *testing.T) {
	stub := &stubEmployeeService{}
	svc := newTestSettingsService(stub)

	f := buildWorkbook(t, [][]any{
		{"Nom", "Email", "Département", "Poste"},
		{"", "", "", ""},
		{"Alice Martin", "alice@parc.info", "IT", "Technicienne"},
	})
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	report, err := svc.Import(context.Background(), "employees", "u1", buf)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Imported)
	assert.Equal(t, 0, report.Failed)
}

func TestExportEmployeesWritesRows(t *testing.T) {
	svc := newTestSettingsService(&stubEmployeeService{})

	f, err := svc.Export(context.Background(), "employees")
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Alice Martin", rows[1][0])
	assert.Equal(t, "alice@parc.info", rows[1][1])
}
