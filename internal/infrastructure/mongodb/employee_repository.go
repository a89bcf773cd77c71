package mongodb

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/Empleados-api/internal/domain"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
	"github.com/jhoicas/Empleados-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

type employeeDocument struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	FirstName     string             `bson:"first_name"`
	LastName      string             `bson:"last_name"`
	Email         string             `bson:"email"`
	Gender        string             `bson:"gender"`
	Designation   string             `bson:"designation"`
	Salary        float64            `bson:"salary"`
	DateOfJoining time.Time          `bson:"date_of_joining"`
	Department    string             `bson:"department"`
	EmployeePhoto string             `bson:"employee_photo,omitempty"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}

func (d *employeeDocument) toEntity() *entity.Employee {
	return &entity.Employee{
		ID:            d.ID.Hex(),
		FirstName:     d.FirstName,
		LastName:      d.LastName,
		Email:         d.Email,
		Gender:        d.Gender,
		Designation:   d.Designation,
		Salary:        d.Salary,
		DateOfJoining: d.DateOfJoining.UTC(),
		Department:    d.Department,
		Photo:         d.EmployeePhoto,
		CreatedAt:     d.CreatedAt.UTC(),
		UpdatedAt:     d.UpdatedAt.UTC(),
	}
}

// EmployeeRepo implementación del puerto EmployeeRepository sobre MongoDB.
type EmployeeRepo struct {
	coll *mongo.Collection
}

// NewEmployeeRepository construye el adaptador de persistencia para empleados.
func NewEmployeeRepository(db *mongo.Database) *EmployeeRepo {
	return &EmployeeRepo{coll: db.Collection(employeesCollection)}
}

var newestFirst = options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})

// Create persiste un nuevo empleado.
func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	doc := employeeDocument{
		ID:            primitive.NewObjectID(),
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
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEmployeeEmailExists
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	e.ID = doc.ID.Hex()
	return nil
}

// GetByID obtiene un empleado por ID. Un ID mal formado se trata como inexistente.
func (r *EmployeeRepo) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

// GetByEmail obtiene un empleado por email.
func (r *EmployeeRepo) GetByEmail(ctx context.Context, email string) (*entity.Employee, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

// List lista todos los empleados, más recientes primero.
func (r *EmployeeRepo) List(ctx context.Context) ([]*entity.Employee, error) {
	return r.find(ctx, bson.M{})
}

// Search filtra por subcadena sin distinguir mayúsculas; el texto se escapa.
func (r *EmployeeRepo) Search(ctx context.Context, f repository.EmployeeFilter) ([]*entity.Employee, error) {
	filter := bson.M{}
	if f.Designation != "" {
		filter["designation"] = containsFold(f.Designation)
	}
	if f.Department != "" {
		filter["department"] = containsFold(f.Department)
	}
	return r.find(ctx, filter)
}

// Update aplica el patch con $set y devuelve el documento resultante.
func (r *EmployeeRepo) Update(ctx context.Context, id string, p repository.EmployeePatch) (*entity.Employee, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	set := bson.M{}
	putString(set, "first_name", p.FirstName)
	putString(set, "last_name", p.LastName)
	putString(set, "email", p.Email)
	putString(set, "gender", p.Gender)
	putString(set, "designation", p.Designation)
	putString(set, "department", p.Department)
	putString(set, "employee_photo", p.Photo)
	if p.Salary != nil {
		set["salary"] = *p.Salary
	}
	if p.DateOfJoining != nil {
		set["date_of_joining"] = *p.DateOfJoining
	}
	if !p.UpdatedAt.IsZero() {
		set["updated_at"] = p.UpdatedAt
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc employeeDocument
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmployeeEmailExists
		}
		return nil, fmt.Errorf("update employee: %w", err)
	}
	return doc.toEntity(), nil
}

// Delete elimina y devuelve el documento borrado.
func (r *EmployeeRepo) Delete(ctx context.Context, id string) (*entity.Employee, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var doc employeeDocument
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("delete employee: %w", err)
	}
	return doc.toEntity(), nil
}

func (r *EmployeeRepo) findOne(ctx context.Context, filter bson.M) (*entity.Employee, error) {
	var doc employeeDocument
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find employee: %w", err)
	}
	return doc.toEntity(), nil
}

func (r *EmployeeRepo) find(ctx context.Context, filter bson.M) ([]*entity.Employee, error) {
	cur, err := r.coll.Find(ctx, filter, newestFirst)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer cur.Close(ctx)
	list := make([]*entity.Employee, 0)
	for cur.Next(ctx) {
		var doc employeeDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode employee: %w", err)
		}
		list = append(list, doc.toEntity())
	}
	return list, cur.Err()
}

func containsFold(text string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(text), Options: "i"}
}

func putString(set bson.M, key string, v *string) {
	if v != nil {
		set[key] = *v
	}
}
