package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"parc-info/internal/dto"
	"parc-info/internal/forms"
	"parc-info/pkg/apperrors"
	"parc-info/pkg/utils"
)

// Limite haute des exports: au-delà, passer par l'API paginée.
const exportLimit = 10000

var settingsHeaders = map[string][]string{
	"equipment": {"Type", "Modèle", "Numéro de série", "Date d'achat", "Statut", "Assigné à"},
	"employees": {"Nom", "Email", "Département", "Poste"},
	"licenses":  {"Nom", "Éditeur", "Type", "Clé de licence", "Utilisateurs max", "Utilisateurs actuels", "Coût", "Date d'expiration"},
	"inventory": {"Équipement", "Assigné à", "Emplacement", "Dernière vérification", "État"},
}

type SettingsServiceInterface interface {
	Export(ctx context.Context, collection string) (*excelize.File, error)
	Template(collection string) (*excelize.File, error)
	Import(ctx context.Context, collection, performedBy string, r io.Reader) (*dto.ImportReportDTO, error)
}

type SettingsService struct {
	equipment EquipmentServiceInterface
	employees EmployeeServiceInterface
	licenses  LicenseServiceInterface
	inventory InventoryServiceInterface
	logger    *zap.Logger
}

func NewSettingsService(
	equipment EquipmentServiceInterface,
	employees EmployeeServiceInterface,
	licenses LicenseServiceInterface,
	inventory InventoryServiceInterface,
	logger *zap.Logger,
) SettingsServiceInterface {
	return &SettingsService{
		equipment: equipment,
		employees: employees,
		licenses:  licenses,
		inventory: inventory,
		logger:    logger,
	}
}

func newWorkbook(collection string) (*excelize.File, error) {
	headers, ok := settingsHeaders[collection]
	if !ok {
		return nil, apperrors.NewHttpError(400, "Collection inconnue: "+collection, apperrors.ErrBadRequest)
	}
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func writeRow(f *excelize.File, rowIndex int, values []any) error {
	sheet := f.GetSheetName(0)
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, rowIndex)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

// Template produit un classeur ne contenant que la ligne d'entêtes.
func (s *SettingsService) Template(collection string) (*excelize.File, error) {
	return newWorkbook(collection)
}

func (s *SettingsService) Export(ctx context.Context, collection string) (*excelize.File, error) {
	f, err := newWorkbook(collection)
	if err != nil {
		return nil, err
	}

	params := utils.ListParams{Limit: exportLimit, SortOrder: "asc", SortBy: "created_at"}
	row := 2

	switch collection {
	case "equipment":
		list, _, err := s.equipment.GetEquipments(ctx, params)
		if err != nil {
			return nil, err
		}
		for i := range list {
			form := forms.PrefillEquipment(list[i])
			if err := writeRow(f, row, []any{
				form.Type, form.Model, form.SerialNumber, form.PurchaseDate, form.Status, form.AssignedTo,
			}); err != nil {
				return nil, err
			}
			row++
		}
	case "employees":
		list, _, err := s.employees.GetEmployees(ctx, params)
		if err != nil {
			return nil, err
		}
		for i := range list {
			e := list[i]
			if err := writeRow(f, row, []any{e.Name, e.Email, e.Department, e.Position}); err != nil {
				return nil, err
			}
			row++
		}
	case "licenses":
		list, _, err := s.licenses.GetLicenses(ctx, params)
		if err != nil {
			return nil, err
		}
		for i := range list {
			form := forms.PrefillLicense(list[i])
			if err := writeRow(f, row, []any{
				form.Name, form.Vendor, form.Type, form.LicenseKey,
				form.MaxUsers, form.CurrentUsers, form.Cost, form.ExpiryDate,
			}); err != nil {
				return nil, err
			}
			row++
		}
	case "inventory":
		list, _, err := s.inventory.GetInventories(ctx, params)
		if err != nil {
			return nil, err
		}
		for i := range list {
			inv := list[i]
			assignedTo := forms.UnassignedSentinel
			if inv.AssignedTo.Valid {
				assignedTo = inv.AssignedTo.String
			}
			if err := writeRow(f, row, []any{
				inv.EquipmentID, assignedTo, inv.Location, inv.LastChecked, inv.Condition,
			}); err != nil {
				return nil, err
			}
			row++
		}
	}

	return f, nil
}

// Import lit le classeur ligne par ligne et fait passer chaque ligne par
// le même pipeline de validation que les formulaires. Les lignes en
// erreur sont listées dans le rapport, les autres sont enregistrées.
func (s *SettingsService) Import(ctx context.Context, collection, performedBy string, r io.Reader) (*dto.ImportReportDTO, error) {
	headers, ok := settingsHeaders[collection]
	if !ok {
		return nil, apperrors.NewHttpError(400, "Collection inconnue: "+collection, apperrors.ErrBadRequest)
	}

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, apperrors.NewHttpError(400, "Fichier xlsx illisible", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apperrors.NewHttpError(400, "Classeur vide", apperrors.ErrBadRequest)
	}

	report := &dto.ImportReportDTO{Errors: []dto.ImportLineError{}}
	for i, row := range rows[1:] {
		line := i + 2
		if isBlankRow(row) {
			continue
		}
		cells := padRow(row, len(headers))

		if err := s.importRow(ctx, collection, performedBy, cells); err != nil {
			report.Failed++
			report.Errors = append(report.Errors, lineError(line, err))
			continue
		}
		report.Imported++
	}

	s.logger.Info("import terminé",
		zap.String("collection", collection),
		zap.Int("imported", report.Imported),
		zap.Int("failed", report.Failed))
	return report, nil
}

func (s *SettingsService) importRow(ctx context.Context, collection, performedBy string, cells []string) error {
	switch collection {
	case "equipment":
		form := forms.EquipmentForm{
			Type: cells[0], Model: cells[1], SerialNumber: cells[2],
			PurchaseDate: cells[3], Status: cells[4], AssignedTo: cells[5],
		}
		if errs := form.Validate(); errs != nil {
			return apperrors.NewValidationError(map[string]string(errs))
		}
		_, err := s.equipment.CreateEquipment(ctx, performedBy, form.Payload())
		return err
	case "employees":
		form := forms.EmployeeForm{
			Name: cells[0], Email: cells[1], Department: cells[2], Position: cells[3],
		}
		if errs := form.Validate(); errs != nil {
			return apperrors.NewValidationError(map[string]string(errs))
		}
		_, err := s.employees.CreateEmployee(ctx, form.Payload())
		return err
	case "licenses":
		form := forms.LicenseForm{
			Name: cells[0], Vendor: cells[1], Type: cells[2], LicenseKey: cells[3],
			MaxUsers: cells[4], CurrentUsers: cells[5], Cost: cells[6], ExpiryDate: cells[7],
		}
		if errs := form.Validate(); errs != nil {
			return apperrors.NewValidationError(map[string]string(errs))
		}
		_, err := s.licenses.CreateLicense(ctx, form.Payload())
		return err
	case "inventory":
		form := forms.InventoryForm{
			EquipmentID: cells[0], AssignedTo: cells[1], Location: cells[2],
			LastChecked: cells[3], Condition: cells[4],
		}
		if errs := form.Validate(); errs != nil {
			return apperrors.NewValidationError(map[string]string(errs))
		}
		_, err := s.inventory.CreateInventory(ctx, form.Payload())
		return err
	}
	return fmt.Errorf("collection inconnue: %s", collection)
}

func lineError(line int, err error) dto.ImportLineError {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) && httpErr.Details != nil {
		if fields, ok := httpErr.Details.(map[string]string); ok {
			return dto.ImportLineError{Line: line, Message: httpErr.Message, Fields: fields}
		}
	}
	return dto.ImportLineError{Line: line, Message: err.Error()}
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func padRow(row []string, n int) []string {
	if len(row) >= n {
		return row[:n]
	}
	padded := make([]string, n)
	copy(padded, row)
	return padded
}
