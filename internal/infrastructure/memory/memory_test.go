package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Empleados-api/internal/domain"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
	"github.com/jhoicas/Empleados-api/internal/domain/repository"
	"github.com/jhoicas/Empleados-api/internal/infrastructure/memory"
)

var base = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func employee(email, designation, department string, created time.Time) *entity.Employee {
	return &entity.Employee{
		FirstName:     "Test",
		LastName:      "User",
		Email:         email,
		Gender:        entity.GenderOther,
		Designation:   designation,
		Salary:        2000,
		DateOfJoining: base,
		Department:    department,
		CreatedAt:     created,
		UpdatedAt:     created,
	}
}

func TestUserRepo_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()

	u := &entity.User{Username: "ada", Email: "ada@example.com", PasswordHash: "h"}
	require.NoError(t, repo.Create(ctx, u))
	assert.NotEmpty(t, u.ID, "Create debe asignar ID")

	found, err := repo.FindByUsernameOrEmail(ctx, "ada", "nadie@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, u.ID, found.ID)

	found, err = repo.FindByUsernameOrEmail(ctx, "otro", "ada@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)

	found, err = repo.FindByUsernameOrEmail(ctx, "otro", "otro@example.com")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestUserRepo_DuplicateRejected(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()
	require.NoError(t, repo.Create(ctx, &entity.User{Username: "ada", Email: "ada@example.com"}))

	err := repo.Create(ctx, &entity.User{Username: "ada", Email: "otra@example.com"})
	assert.ErrorIs(t, err, domain.ErrAccountExists)
	err = repo.Create(ctx, &entity.User{Username: "otra", Email: "ada@example.com"})
	assert.ErrorIs(t, err, domain.ErrAccountExists)

	exists, err := repo.ExistsByUsernameOrEmail(ctx, "ada", "")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestEmployeeRepo_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewEmployeeRepository()
	require.NoError(t, repo.Create(ctx, employee("a@x.com", "Dev", "IT", base)))
	require.NoError(t, repo.Create(ctx, employee("b@x.com", "Dev", "IT", base.Add(time.Hour))))
	require.NoError(t, repo.Create(ctx, employee("c@x.com", "Dev", "IT", base.Add(time.Hour))))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "c@x.com", list[0].Email, "a igual created_at gana el insertado después")
	assert.Equal(t, "b@x.com", list[1].Email)
	assert.Equal(t, "a@x.com", list[2].Email)
}

func TestEmployeeRepo_EmailUnique(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewEmployeeRepository()
	first := employee("a@x.com", "Dev", "IT", base)
	require.NoError(t, repo.Create(ctx, first))
	second := employee("b@x.com", "Dev", "IT", base)
	require.NoError(t, repo.Create(ctx, second))

	assert.ErrorIs(t, repo.Create(ctx, employee("a@x.com", "Dev", "IT", base)), domain.ErrEmployeeEmailExists)

	taken := "a@x.com"
	_, err := repo.Update(ctx, second.ID, repository.EmployeePatch{Email: &taken})
	assert.ErrorIs(t, err, domain.ErrEmployeeEmailExists)

	// Reasignar su propio email no es colisión.
	_, err = repo.Update(ctx, first.ID, repository.EmployeePatch{Email: &taken})
	assert.NoError(t, err)
}

func TestEmployeeRepo_SearchCaseInsensitiveSubstring(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewEmployeeRepository()
	require.NoError(t, repo.Create(ctx, employee("a@x.com", "Senior Engineer", "Research", base)))
	require.NoError(t, repo.Create(ctx, employee("b@x.com", "Engineer", "Sales", base.Add(time.Minute))))
	require.NoError(t, repo.Create(ctx, employee("c@x.com", "Manager", "Research", base.Add(2*time.Minute))))

	got, err := repo.Search(ctx, repository.EmployeeFilter{Designation: "ENGINEER"})
	require.NoError(t, err)
	assert.Equal(t, []string{"b@x.com", "a@x.com"}, emails(got))

	got, err = repo.Search(ctx, repository.EmployeeFilter{Designation: "engineer", Department: "resea"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a@x.com"}, emails(got))

	got, err = repo.Search(ctx, repository.EmployeeFilter{Department: "marketing"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestEmployeeRepo_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewEmployeeRepository()
	e := employee("a@x.com", "Dev", "IT", base)
	require.NoError(t, repo.Create(ctx, e))

	salary := 4500.0
	later := base.Add(24 * time.Hour)
	updated, err := repo.Update(ctx, e.ID, repository.EmployeePatch{Salary: &salary, UpdatedAt: later})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, 4500.0, updated.Salary)
	assert.Equal(t, "Dev", updated.Designation, "los campos ausentes no cambian")
	assert.Equal(t, later, updated.UpdatedAt)
	assert.Equal(t, base, updated.CreatedAt)

	missing, err := repo.Update(ctx, "no-existe", repository.EmployeePatch{Salary: &salary})
	require.NoError(t, err)
	assert.Nil(t, missing)

	deleted, err := repo.Delete(ctx, e.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	assert.Equal(t, e.ID, deleted.ID)

	again, err := repo.Delete(ctx, e.ID)
	require.NoError(t, err)
	assert.Nil(t, again)

	got, err := repo.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestEmployeeRepo_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewEmployeeRepository()
	e := employee("a@x.com", "Dev", "IT", base)
	require.NoError(t, repo.Create(ctx, e))

	got, err := repo.GetByID(ctx, e.ID)
	require.NoError(t, err)
	got.Designation = "mutado"

	again, err := repo.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dev", again.Designation)
}

func emails(list []*entity.Employee) []string {
	out := make([]string, len(list))
	for i, e := range list {
		out[i] = e.Email
	}
	return out
}
