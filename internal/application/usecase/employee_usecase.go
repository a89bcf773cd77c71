package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/Empleados-api/internal/application/dto"
	"github.com/jhoicas/Empleados-api/internal/application/validation"
	"github.com/jhoicas/Empleados-api/internal/domain"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
	"github.com/jhoicas/Empleados-api/internal/domain/repository"
)

// PhotoResolver resuelve y limpia fotos de empleados (implementado por photo.Handler).
type PhotoResolver interface {
	Resolve(ctx context.Context, photo *string) string
	Cleanup(ctx context.Context, url string)
}

// EmployeeUseCase casos de uso CRUD y búsqueda de empleados.
type EmployeeUseCase struct {
	repo   repository.EmployeeRepository
	photos PhotoResolver
	now    func() time.Time
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository, photos PhotoResolver) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, photos: photos, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *EmployeeUseCase) WithClock(now func() time.Time) *EmployeeUseCase {
	uc.now = now
	return uc
}

func (uc *EmployeeUseCase) timestamp() time.Time {
	return uc.now().UTC().Truncate(time.Millisecond)
}

// List devuelve todos los empleados, más recientes primero.
func (uc *EmployeeUseCase) List(ctx context.Context) ([]dto.EmployeeResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toEmployeeResponses(list), nil
}

// GetByID obtiene un empleado. Devuelve domain.ErrEmployeeNotFound si no existe.
func (uc *EmployeeUseCase) GetByID(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	return toEmployeeResponse(e), nil
}

// Search filtra por designation y/o department. Sin ningún criterio devuelve
// domain.ErrSearchCriteriaNeeded.
func (uc *EmployeeUseCase) Search(ctx context.Context, in dto.SearchEmployeesRequest) ([]dto.EmployeeResponse, error) {
	f := repository.EmployeeFilter{
		Designation: deref(in.Designation),
		Department:  deref(in.Department),
	}
	if f.Designation == "" && f.Department == "" {
		return nil, domain.ErrSearchCriteriaNeeded
	}
	list, err := uc.repo.Search(ctx, f)
	if err != nil {
		return nil, err
	}
	return toEmployeeResponses(list), nil
}

// Create valida, comprueba unicidad del email, resuelve la foto y persiste.
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if errs := validation.ValidateEmployee(in); len(errs) > 0 {
		return nil, errs
	}
	email := normalizeEmail(in.Email)
	existing, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmployeeEmailExists
	}
	joined, _ := validation.ParseDate(in.DateOfJoining)
	now := uc.timestamp()
	e := &entity.Employee{
		FirstName:     strings.TrimSpace(in.FirstName),
		LastName:      strings.TrimSpace(in.LastName),
		Email:         email,
		Gender:        in.Gender,
		Designation:   strings.TrimSpace(in.Designation),
		Salary:        *in.Salary,
		DateOfJoining: joined,
		Department:    strings.TrimSpace(in.Department),
		Photo:         uc.photos.Resolve(ctx, in.EmployeePhoto),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, e); err != nil {
		uc.discardPhoto(ctx, in.EmployeePhoto, e.Photo)
		return nil, err
	}
	return toEmployeeResponse(e), nil
}

// Update aplica solo los campos presentes y avanza updated_at.
// Devuelve domain.ErrEmployeeNotFound si el empleado no existe.
func (uc *EmployeeUseCase) Update(ctx context.Context, id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if errs := validation.ValidateEmployeeUpdate(in); len(errs) > 0 {
		return nil, errs
	}
	patch := repository.EmployeePatch{
		FirstName:   trimmed(in.FirstName),
		LastName:    trimmed(in.LastName),
		Gender:      in.Gender,
		Designation: trimmed(in.Designation),
		Salary:      in.Salary,
		Department:  trimmed(in.Department),
		UpdatedAt:   uc.timestamp(),
	}
	if in.Email != nil {
		email := normalizeEmail(*in.Email)
		patch.Email = &email
	}
	if in.DateOfJoining != nil {
		joined, _ := validation.ParseDate(*in.DateOfJoining)
		patch.DateOfJoining = &joined
	}
	if in.EmployeePhoto != nil {
		photo := uc.photos.Resolve(ctx, in.EmployeePhoto)
		patch.Photo = &photo
	}

	e, err := uc.repo.Update(ctx, id, patch)
	if err != nil || e == nil {
		if patch.Photo != nil {
			uc.discardPhoto(ctx, in.EmployeePhoto, *patch.Photo)
		}
		if err != nil {
			return nil, err
		}
		return nil, domain.ErrEmployeeNotFound
	}
	return toEmployeeResponse(e), nil
}

// Delete elimina el empleado y, si tenía foto alojada en el almacén, la limpia.
// Devuelve domain.ErrEmployeeNotFound si no existe.
func (uc *EmployeeUseCase) Delete(ctx context.Context, id string) error {
	e, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if e == nil {
		return domain.ErrEmployeeNotFound
	}
	if e.Photo != "" {
		uc.photos.Cleanup(ctx, e.Photo)
	}
	return nil
}

// discardPhoto limpia una foto recién subida cuando la escritura no llegó a persistirse.
func (uc *EmployeeUseCase) discardPhoto(ctx context.Context, original *string, stored string) {
	if original == nil || stored == "" || stored == *original {
		return
	}
	uc.photos.Cleanup(ctx, stored)
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	if e == nil {
		return nil
	}
	return &dto.EmployeeResponse{
		ID:            e.ID,
		FirstName:     e.FirstName,
		LastName:      e.LastName,
		Email:         e.Email,
		Gender:        e.Gender,
		Designation:   e.Designation,
		Salary:        e.Salary,
		DateOfJoining: e.DateOfJoining,
		Department:    e.Department,
		EmployeePhoto: e.Photo,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func toEmployeeResponses(list []*entity.Employee) []dto.EmployeeResponse {
	out := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, *toEmployeeResponse(e))
	}
	return out
}
