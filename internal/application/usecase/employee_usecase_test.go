package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Empleados-api/internal/application/dto"
	"github.com/jhoicas/Empleados-api/internal/application/usecase"
	"github.com/jhoicas/Empleados-api/internal/application/validation"
	"github.com/jhoicas/Empleados-api/internal/domain"
	"github.com/jhoicas/Empleados-api/internal/infrastructure/memory"
)

// fakePhotos sustituye el almacén: las imágenes en línea se convierten en una URL fija.
type fakePhotos struct {
	cleaned []string
}

const uploadedURL = "https://assets.example.com/photos/employees/up1"

func (f *fakePhotos) Resolve(_ context.Context, photo *string) string {
	if photo == nil {
		return ""
	}
	if strings.HasPrefix(*photo, "data:image") {
		return uploadedURL
	}
	return *photo
}

func (f *fakePhotos) Cleanup(_ context.Context, url string) {
	f.cleaned = append(f.cleaned, url)
}

// clock reloj controlable que avanza un segundo por lectura.
type clock struct{ t time.Time }

func (c *clock) now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

func ptr[T any](v T) *T { return &v }

func newUseCase() (*usecase.EmployeeUseCase, *fakePhotos) {
	photos := &fakePhotos{}
	c := &clock{t: time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)}
	uc := usecase.NewEmployeeUseCase(memory.NewEmployeeRepository(), photos).WithClock(c.now)
	return uc, photos
}

func input(email string) dto.CreateEmployeeRequest {
	return dto.CreateEmployeeRequest{
		FirstName:     " Grace ",
		LastName:      "Hopper",
		Email:         email,
		Gender:        "Female",
		Designation:   "Software Engineer",
		Salary:        ptr(8000.0),
		DateOfJoining: "2024-01-15",
		Department:    "Engineering",
	}
}

func mustCreate(t *testing.T, uc *usecase.EmployeeUseCase, in dto.CreateEmployeeRequest) *dto.EmployeeResponse {
	t.Helper()
	out, err := uc.Create(context.Background(), in)
	require.NoError(t, err)
	return out
}

func TestCreate_NormalizaYPersiste(t *testing.T) {
	uc, _ := newUseCase()
	out := mustCreate(t, uc, input("  Grace@Navy.MIL "))

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Grace", out.FirstName)
	assert.Equal(t, "grace@navy.mil", out.Email)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), out.DateOfJoining)
	assert.Equal(t, out.CreatedAt, out.UpdatedAt)
	assert.Equal(t, "", out.EmployeePhoto)

	got, err := uc.GetByID(context.Background(), out.ID)
	require.NoError(t, err)
	assert.Equal(t, out, got)
}

func TestCreate_EmailDuplicadoSinDistinguirMayusculas(t *testing.T) {
	uc, _ := newUseCase()
	mustCreate(t, uc, input("grace@navy.mil"))

	_, err := uc.Create(context.Background(), input("GRACE@navy.mil"))
	assert.ErrorIs(t, err, domain.ErrEmployeeEmailExists)
}

func TestCreate_ValidacionNoPersiste(t *testing.T) {
	uc, _ := newUseCase()
	in := input("grace@navy.mil")
	in.Salary = ptr(999.0)
	in.Gender = "Robot"

	_, err := uc.Create(context.Background(), in)
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "Gender must be Male, Female, or Other, Salary must be at least 1000", verrs.Error())

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCreate_FotoEnLineaSeSube(t *testing.T) {
	uc, _ := newUseCase()
	in := input("grace@navy.mil")
	in.EmployeePhoto = ptr("data:image/png;base64,aGVsbG8=")

	out := mustCreate(t, uc, in)
	assert.Equal(t, uploadedURL, out.EmployeePhoto)
}

func TestGetByID_NoExiste(t *testing.T) {
	uc, _ := newUseCase()
	_, err := uc.GetByID(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}

func TestList_MasRecientesPrimero(t *testing.T) {
	uc, _ := newUseCase()
	first := mustCreate(t, uc, input("a@x.com"))
	second := mustCreate(t, uc, input("b@x.com"))

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestSearch(t *testing.T) {
	uc, _ := newUseCase()
	mustCreate(t, uc, input("a@x.com"))
	other := input("b@x.com")
	other.Designation = "Manager"
	other.Department = "Sales"
	mustCreate(t, uc, other)

	_, err := uc.Search(context.Background(), dto.SearchEmployeesRequest{})
	assert.ErrorIs(t, err, domain.ErrSearchCriteriaNeeded)
	_, err = uc.Search(context.Background(), dto.SearchEmployeesRequest{Designation: ptr(""), Department: ptr(" ")})
	assert.ErrorIs(t, err, domain.ErrSearchCriteriaNeeded)

	found, err := uc.Search(context.Background(), dto.SearchEmployeesRequest{Designation: ptr("ENGINEER")})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "a@x.com", found[0].Email)

	found, err = uc.Search(context.Background(), dto.SearchEmployeesRequest{Designation: ptr("manager"), Department: ptr("engineering")})
	require.NoError(t, err)
	assert.Empty(t, found, "ambos criterios se combinan con AND")

	found, err = uc.Search(context.Background(), dto.SearchEmployeesRequest{Department: ptr(".*")})
	require.NoError(t, err)
	assert.Empty(t, found, "el texto se interpreta literalmente")
}

func TestUpdate_SoloCamposPresentes(t *testing.T) {
	uc, _ := newUseCase()
	created := mustCreate(t, uc, input("a@x.com"))

	out, err := uc.Update(context.Background(), created.ID, dto.UpdateEmployeeRequest{
		Salary:        ptr(9500.0),
		DateOfJoining: ptr("2023-06-01T00:00:00Z"),
	})
	require.NoError(t, err)
	assert.Equal(t, 9500.0, out.Salary)
	assert.Equal(t, time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC), out.DateOfJoining)
	assert.Equal(t, created.FirstName, out.FirstName)
	assert.Equal(t, created.Email, out.Email)
	assert.Equal(t, created.CreatedAt, out.CreatedAt)
	assert.True(t, out.UpdatedAt.After(created.UpdatedAt), "updated_at debe avanzar")
}

func TestUpdate_Validacion(t *testing.T) {
	uc, _ := newUseCase()
	created := mustCreate(t, uc, input("a@x.com"))

	_, err := uc.Update(context.Background(), created.ID, dto.UpdateEmployeeRequest{Salary: ptr(10.0)})
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, validation.MsgSalaryTooLow, verrs.Error())

	_, err = uc.Update(context.Background(), created.ID, dto.UpdateEmployeeRequest{Gender: ptr("X")})
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, validation.MsgGenderInvalid, verrs.Error())

	got, err := uc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Salary, got.Salary, "una actualización rechazada no modifica nada")
}

func TestUpdate_NoExisteLimpiaFotoSubida(t *testing.T) {
	uc, photos := newUseCase()

	_, err := uc.Update(context.Background(), "no-existe", dto.UpdateEmployeeRequest{
		EmployeePhoto: ptr("data:image/png;base64,aGVsbG8="),
	})
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
	assert.Equal(t, []string{uploadedURL}, photos.cleaned)
}

func TestUpdate_EmailEnUso(t *testing.T) {
	uc, _ := newUseCase()
	mustCreate(t, uc, input("a@x.com"))
	b := mustCreate(t, uc, input("b@x.com"))

	_, err := uc.Update(context.Background(), b.ID, dto.UpdateEmployeeRequest{Email: ptr("A@X.com")})
	assert.ErrorIs(t, err, domain.ErrEmployeeEmailExists)
}

func TestDelete(t *testing.T) {
	uc, photos := newUseCase()
	in := input("a@x.com")
	in.EmployeePhoto = ptr("data:image/png;base64,aGVsbG8=")
	created := mustCreate(t, uc, in)

	require.NoError(t, uc.Delete(context.Background(), created.ID))
	assert.Equal(t, []string{uploadedURL}, photos.cleaned)

	_, err := uc.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)

	err = uc.Delete(context.Background(), created.ID)
	assert.True(t, errors.Is(err, domain.ErrEmployeeNotFound))
}

func TestDelete_SinFotoNoLimpia(t *testing.T) {
	uc, photos := newUseCase()
	created := mustCreate(t, uc, input("a@x.com"))

	require.NoError(t, uc.Delete(context.Background(), created.ID))
	assert.Empty(t, photos.cleaned)
}
