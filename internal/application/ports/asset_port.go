package ports

import "context"

// AssetStore define el puerto de salida para el almacén de fotos de empleados.
// Cualquier adaptador (S3, MinIO, fake de tests) debe implementar esta interfaz.
type AssetStore interface {
	// Upload guarda data bajo namespace y devuelve la URL pública del objeto.
	Upload(ctx context.Context, namespace string, data []byte, contentType string) (string, error)
	// Delete elimina el objeto identificado por publicID ("namespace/nombre").
	Delete(ctx context.Context, publicID string) error
}
