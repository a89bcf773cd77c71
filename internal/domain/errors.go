package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrInvalidCredentials   = errors.New("credenciales inválidas")
	ErrAccountExists        = errors.New("el usuario o email ya está registrado")
	ErrEmployeeNotFound     = errors.New("empleado no encontrado")
	ErrEmployeeEmailExists  = errors.New("ya existe un empleado con ese email")
	ErrSearchCriteriaNeeded = errors.New("se requiere designation o department")
)
