package reports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/authz"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	domainreport "github.com/jhoicas/Gestion-api/internal/domain/report"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// PDFGenerator puerto de render de la ficha PDF de un informe.
type PDFGenerator interface {
	GenerateReportPDF(ctx context.Context, report *entity.Report) ([]byte, error)
}

// ReportUseCase informes con visibilidad por jerarquía de roles: cada rol ve
// sus informes y los de sus roles subordinados; admin lo ve todo. Los cambios
// de estado exigen además poder gestionar el rol del autor.
type ReportUseCase struct {
	reportRepo repository.ReportRepository
	userRepo   repository.UserRepository
	pdfGen     PDFGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(reportRepo repository.ReportRepository, userRepo repository.UserRepository, pdfGen PDFGenerator) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo, userRepo: userRepo, pdfGen: pdfGen}
}

// List devuelve los informes visibles para el rol del solicitante, más
// recientes primero. Admin salta el filtro por completo.
func (uc *ReportUseCase) List(ctx context.Context, requesterRole entity.Role) ([]*dto.ReportResponse, error) {
	var (
		list []*entity.Report
		err  error
	)
	if authz.IsAdmin(requesterRole) {
		list, err = uc.reportRepo.ListAll()
	} else {
		list, err = uc.reportRepo.ListByRoles(authz.VisibleRoles(requesterRole))
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ReportResponse, 0, len(list))
	for _, r := range list {
		out = append(out, reportToResponse(r))
	}
	return out, nil
}

// Create crea un informe en borrador capturando el rol y el nombre del autor
// en el momento de la creación (el filtro de visibilidad usa ese rol).
func (uc *ReportUseCase) Create(ctx context.Context, userID string, in dto.CreateReportRequest) (*dto.ReportResponse, error) {
	if in.Title == "" || in.Content == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	now := time.Now()
	report := &entity.Report{
		ID:           uuid.New().String(),
		UserID:       userID,
		Title:        in.Title,
		Content:      in.Content,
		Status:       entity.ReportDraft,
		ReportDate:   now,
		UserRole:     user.Role,
		UserFullName: user.FullName(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.reportRepo.Create(report); err != nil {
		return nil, err
	}
	return reportToResponse(report), nil
}

// Update modifica título/contenido; solo el autor puede hacerlo.
func (uc *ReportUseCase) Update(ctx context.Context, reportID, actingUserID string, in dto.UpdateReportRequest) (*dto.ReportResponse, error) {
	report, err := uc.reportRepo.GetByID(reportID)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, domain.ErrNotFound
	}
	if report.UserID != actingUserID {
		return nil, domain.ErrForbidden
	}

	if in.Title != nil {
		if *in.Title == "" {
			return nil, domain.ErrInvalidInput
		}
		report.Title = *in.Title
	}
	if in.Content != nil {
		report.Content = *in.Content
	}
	report.UpdatedAt = time.Now()

	if err := uc.reportRepo.Update(report); err != nil {
		return nil, err
	}
	return reportToResponse(report), nil
}

// Delete elimina un informe; puede hacerlo el autor o un admin.
func (uc *ReportUseCase) Delete(ctx context.Context, reportID, actingUserID string, actingRole entity.Role) error {
	report, err := uc.reportRepo.GetByID(reportID)
	if err != nil {
		return err
	}
	if report == nil {
		return domain.ErrNotFound
	}
	if report.UserID != actingUserID && !authz.IsAdmin(actingRole) {
		return domain.ErrForbidden
	}
	return uc.reportRepo.Delete(reportID)
}

// UpdateStatus avanza el informe en el flujo de aprobación. El solicitante
// debe poder gestionar el rol del autor (admin o rol superior) y el paso debe
// estar en la tabla borrador→enviado→revisado→{aprobado, rechazado}.
func (uc *ReportUseCase) UpdateStatus(ctx context.Context, reportID, actingUserID string, in dto.UpdateReportStatusRequest) (*dto.ReportResponse, error) {
	newStatus := entity.ReportStatus(in.NewStatus)
	if !domainreport.ValidStatus(newStatus) {
		return nil, domain.ErrInvalidInput
	}

	report, err := uc.reportRepo.GetByID(reportID)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, domain.ErrNotFound
	}

	actor, err := uc.userRepo.GetByID(actingUserID)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, domain.ErrUserNotFound
	}
	if !authz.CanManage(actor.Role, report.UserRole) {
		return nil, domain.ErrForbidden
	}
	if !domainreport.CanTransition(report.Status, newStatus) {
		return nil, &domain.InvalidTransitionError{
			From: domainreport.Label(report.Status),
			To:   domainreport.Label(newStatus),
		}
	}

	report.Status = newStatus
	report.UpdatedAt = time.Now()
	if err := uc.reportRepo.Update(report); err != nil {
		return nil, err
	}
	return reportToResponse(report), nil
}

// DownloadPDF genera la ficha PDF de un informe visible para el solicitante.
func (uc *ReportUseCase) DownloadPDF(ctx context.Context, reportID string, requesterRole entity.Role) ([]byte, string, error) {
	report, err := uc.reportRepo.GetByID(reportID)
	if err != nil {
		return nil, "", err
	}
	if report == nil {
		return nil, "", domain.ErrNotFound
	}
	if !authz.IsAdmin(requesterRole) {
		visible := false
		for _, r := range authz.VisibleRoles(requesterRole) {
			if r == report.UserRole {
				visible = true
				break
			}
		}
		if !visible {
			return nil, "", domain.ErrForbidden
		}
	}

	pdf, err := uc.pdfGen.GenerateReportPDF(ctx, report)
	if err != nil {
		return nil, "", err
	}
	return pdf, report.Title, nil
}

func reportToResponse(r *entity.Report) *dto.ReportResponse {
	return &dto.ReportResponse{
		ID:           r.ID,
		UserID:       r.UserID,
		Title:        r.Title,
		Content:      r.Content,
		Status:       string(r.Status),
		StatusLabel:  domainreport.Label(r.Status),
		ReportDate:   r.ReportDate,
		UserRole:     string(r.UserRole),
		UserFullName: r.UserFullName,
		CreatedAt:    r.CreatedAt,
	}
}
