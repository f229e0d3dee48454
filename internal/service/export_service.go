package service

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/pctowa/pctowa-backend/internal/repository"
	"github.com/xuri/excelize/v2"
)

// ExportService produces XLSX exports of shift rosters and class lists.
type ExportService struct {
	shiftRepo   *repository.ShiftRepository
	studentRepo *repository.StudentRepository
	companyRepo *repository.CompanyRepository
	classRepo   *repository.ClassRepository
}

// NewExportService creates a new ExportService.
func NewExportService(
	shiftRepo *repository.ShiftRepository,
	studentRepo *repository.StudentRepository,
	companyRepo *repository.CompanyRepository,
	classRepo *repository.ClassRepository,
) *ExportService {
	return &ExportService{
		shiftRepo:   shiftRepo,
		studentRepo: studentRepo,
		companyRepo: companyRepo,
		classRepo:   classRepo,
	}
}

// ShiftRosterXLSX builds a spreadsheet listing the students assigned to
// a shift, with the hosting company in the header rows.
func (s *ExportService) ShiftRosterXLSX(ctx context.Context, shiftID int) (*bytes.Buffer, error) {
	shift, err := s.shiftRepo.GetByID(ctx, shiftID)
	if err != nil {
		return nil, err
	}
	company, err := s.companyRepo.GetByID(ctx, shift.CompanyID)
	if err != nil {
		return nil, err
	}
	students, err := s.studentRepo.ListByShift(ctx, shiftID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Roster"
	f.SetSheetName("Sheet1", sheet)

	f.SetCellValue(sheet, "A1", "Company")
	f.SetCellValue(sheet, "B1", company.BusinessName)
	f.SetCellValue(sheet, "A2", "Period")
	f.SetCellValue(sheet, "B2", fmt.Sprintf("%s to %s",
		shift.StartDate.Format("2006-01-02"), shift.EndDate.Format("2006-01-02")))
	f.SetCellValue(sheet, "A3", "Hours")
	f.SetCellValue(sheet, "B3", shift.Hours)

	headers := []string{"Number", "Last Name", "First Name", "Municipality", "Class ID"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 5)
		f.SetCellValue(sheet, cell, h)
	}

	for i, st := range students {
		row := strconv.Itoa(i + 6)
		f.SetCellValue(sheet, "A"+row, st.Number)
		f.SetCellValue(sheet, "B"+row, st.LastName)
		f.SetCellValue(sheet, "C"+row, st.FirstName)
		if st.Municipality != nil {
			f.SetCellValue(sheet, "D"+row, *st.Municipality)
		}
		f.SetCellValue(sheet, "E"+row, st.ClassID)
	}

	return f.WriteToBuffer()
}

// ClassListXLSX builds a spreadsheet of a class's students.
func (s *ExportService) ClassListXLSX(ctx context.Context, classID int) (*bytes.Buffer, error) {
	class, err := s.classRepo.GetByID(ctx, classID)
	if err != nil {
		return nil, err
	}
	students, _, err := s.studentRepo.ListPaginated(ctx, &classID, 1000, 0)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Students"
	f.SetSheetName("Sheet1", sheet)

	f.SetCellValue(sheet, "A1", "Class")
	f.SetCellValue(sheet, "B1", class.Code)
	f.SetCellValue(sheet, "A2", "Year")
	f.SetCellValue(sheet, "B2", class.Year)

	headers := []string{"Number", "Last Name", "First Name", "Municipality"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 4)
		f.SetCellValue(sheet, cell, h)
	}

	for i, st := range students {
		row := strconv.Itoa(i + 5)
		f.SetCellValue(sheet, "A"+row, st.Number)
		f.SetCellValue(sheet, "B"+row, st.LastName)
		f.SetCellValue(sheet, "C"+row, st.FirstName)
		if st.Municipality != nil {
			f.SetCellValue(sheet, "D"+row, *st.Municipality)
		}
	}

	return f.WriteToBuffer()
}
