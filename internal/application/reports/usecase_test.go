package reports_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/reports"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeReportRepo struct {
	reports map[string]*entity.Report
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{reports: make(map[string]*entity.Report)}
}

func (r *fakeReportRepo) Create(report *entity.Report) error {
	cp := *report
	r.reports[report.ID] = &cp
	return nil
}

func (r *fakeReportRepo) GetByID(id string) (*entity.Report, error) {
	rep, ok := r.reports[id]
	if !ok {
		return nil, nil
	}
	cp := *rep
	return &cp, nil
}

func (r *fakeReportRepo) ListAll() ([]*entity.Report, error) {
	var out []*entity.Report
	for _, rep := range r.reports {
		cp := *rep
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeReportRepo) ListByRoles(roles []entity.Role) ([]*entity.Report, error) {
	allowed := make(map[entity.Role]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}
	var out []*entity.Report
	for _, rep := range r.reports {
		if allowed[rep.UserRole] {
			cp := *rep
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeReportRepo) Update(report *entity.Report) error {
	cp := *report
	r.reports[report.ID] = &cp
	return nil
}

func (r *fakeReportRepo) Delete(id string) error {
	delete(r.reports, id)
	return nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error                   { return nil }
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error)       { return r.users[id], nil }
func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) { return nil, nil }
func (r *fakeUserRepo) Update(u *entity.User) error                   { return nil }
func (r *fakeUserRepo) UpdateLastLogin(id string, at time.Time) error { return nil }
func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	return nil, nil
}

type fakePDFGen struct{}

func (g *fakePDFGen) GenerateReportPDF(_ context.Context, _ *entity.Report) ([]byte, error) {
	return []byte("%PDF-fake"), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

const (
	adminID    = "admin-1"
	managerID  = "manager-1"
	teamLeadID = "lead-1"
	salesID    = "sales-1"
)

func newFixture() (*reports.ReportUseCase, *fakeReportRepo) {
	reportRepo := newFakeReportRepo()
	userRepo := &fakeUserRepo{users: map[string]*entity.User{
		adminID:    {ID: adminID, FirstName: "Ana", LastName: "Admin", Role: entity.RoleAdmin},
		managerID:  {ID: managerID, FirstName: "Gloria", LastName: "Gerente", Role: entity.RoleProjectManager},
		teamLeadID: {ID: teamLeadID, FirstName: "Luis", LastName: "Líder", Role: entity.RoleTeamLead},
		salesID:    {ID: salesID, FirstName: "Valeria", LastName: "Vendedora", Role: entity.RoleSales},
	}}
	return reports.NewReportUseCase(reportRepo, userRepo, &fakePDFGen{}), reportRepo
}

func createReport(t *testing.T, uc *reports.ReportUseCase, userID, title string) *dto.ReportResponse {
	t.Helper()
	out, err := uc.Create(context.Background(), userID, dto.CreateReportRequest{
		Title:   title,
		Content: "Contenido del informe",
	})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Creación y visibilidad
// ──────────────────────────────────────────────────────────────────────────────

// El informe captura el rol del autor al crearse y arranca en borrador.
func TestCreate_CapturaRolYBorrador(t *testing.T) {
	uc, _ := newFixture()
	out := createReport(t, uc, salesID, "Ventas del mes")

	assert.Equal(t, "borrador", out.Status)
	assert.Equal(t, "ventas", out.UserRole)
	assert.Equal(t, "Valeria Vendedora", out.UserFullName)
}

// Cada rol ve sus informes y los de sus subordinados; nunca los de arriba.
func TestList_FiltraPorJerarquia(t *testing.T) {
	uc, _ := newFixture()
	createReport(t, uc, managerID, "Informe de gerencia")
	createReport(t, uc, teamLeadID, "Informe de equipo")
	createReport(t, uc, salesID, "Informe de ventas")

	// El líder de equipo ve el suyo y el de ventas, no el del gerente.
	visible, err := uc.List(context.Background(), entity.RoleTeamLead)
	require.NoError(t, err)
	titles := make([]string, 0, len(visible))
	for _, r := range visible {
		titles = append(titles, r.Title)
	}
	assert.ElementsMatch(t, []string{"Informe de equipo", "Informe de ventas"}, titles)

	// Ventas solo ve el suyo.
	visible, err = uc.List(context.Background(), entity.RoleSales)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "Informe de ventas", visible[0].Title)

	// Admin lo ve todo.
	visible, err = uc.List(context.Background(), entity.RoleAdmin)
	require.NoError(t, err)
	assert.Len(t, visible, 3)
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo de aprobación
// ──────────────────────────────────────────────────────────────────────────────

// Solo un rol que gestione al autor puede cambiar el estado.
func TestUpdateStatus_ExigeJerarquia(t *testing.T) {
	uc, _ := newFixture()
	report := createReport(t, uc, managerID, "Informe de gerencia")

	// El líder de equipo está por debajo del gerente: prohibido.
	_, err := uc.UpdateStatus(context.Background(), report.ID, teamLeadID,
		dto.UpdateReportStatusRequest{NewStatus: "enviado"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// Admin sí puede.
	out, err := uc.UpdateStatus(context.Background(), report.ID, adminID,
		dto.UpdateReportStatusRequest{NewStatus: "enviado"})
	require.NoError(t, err)
	assert.Equal(t, "enviado", out.Status)
}

// La tabla de transiciones se aplica incluso para admin.
func TestUpdateStatus_RespetaTabla(t *testing.T) {
	uc, _ := newFixture()
	report := createReport(t, uc, salesID, "Informe de ventas")

	// borrador → aprobado se salta el flujo.
	_, err := uc.UpdateStatus(context.Background(), report.ID, adminID,
		dto.UpdateReportStatusRequest{NewStatus: "aprobado"})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	// El camino completo sí funciona.
	for _, status := range []string{"enviado", "revisado", "aprobado"} {
		out, err := uc.UpdateStatus(context.Background(), report.ID, adminID,
			dto.UpdateReportStatusRequest{NewStatus: status})
		require.NoError(t, err, "paso a %s", status)
		assert.Equal(t, status, out.Status)
	}
}

func TestUpdateStatus_EstadoDesconocido(t *testing.T) {
	uc, _ := newFixture()
	report := createReport(t, uc, salesID, "Informe de ventas")

	_, err := uc.UpdateStatus(context.Background(), report.ID, adminID,
		dto.UpdateReportStatusRequest{NewStatus: "publicado"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Edición, borrado y PDF
// ──────────────────────────────────────────────────────────────────────────────

// Título y contenido solo los edita el autor, sin importar jerarquía.
func TestUpdate_SoloAutor(t *testing.T) {
	uc, _ := newFixture()
	report := createReport(t, uc, salesID, "Informe de ventas")

	title := "Informe corregido"
	_, err := uc.Update(context.Background(), report.ID, adminID,
		dto.UpdateReportRequest{Title: &title})
	assert.ErrorIs(t, err, domain.ErrForbidden, "ni siquiera admin edita contenido ajeno")

	out, err := uc.Update(context.Background(), report.ID, salesID,
		dto.UpdateReportRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, out.Title)
}

func TestDelete_AutorOAdmin(t *testing.T) {
	uc, repo := newFixture()
	report := createReport(t, uc, salesID, "Informe de ventas")

	err := uc.Delete(context.Background(), report.ID, teamLeadID, entity.RoleTeamLead)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	require.NoError(t, uc.Delete(context.Background(), report.ID, adminID, entity.RoleAdmin))
	stored, _ := repo.GetByID(report.ID)
	assert.Nil(t, stored)
}

// La descarga respeta la misma visibilidad que el listado.
func TestDownloadPDF_Visibilidad(t *testing.T) {
	uc, _ := newFixture()
	report := createReport(t, uc, managerID, "Informe de gerencia")

	_, _, err := uc.DownloadPDF(context.Background(), report.ID, entity.RoleSales)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	pdf, title, err := uc.DownloadPDF(context.Background(), report.ID, entity.RoleAdmin)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, "Informe de gerencia", title)
}
