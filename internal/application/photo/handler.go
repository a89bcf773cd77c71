// Package photo resuelve el campo employee_photo: sube las imágenes en línea
// (data URI) al almacén de fotos y limpia las fotos propias al borrar empleados.
// Los fallos del almacén nunca hacen fallar la operación que los provoca.
package photo

import (
	"context"
	"encoding/base64"
	"errors"
	"net/url"
	"path"
	"strings"

	"github.com/jhoicas/Empleados-api/internal/application/ports"
	"github.com/jhoicas/Empleados-api/pkg/logger"
)

// InlineImagePrefix marca un valor de foto que trae la imagen en línea.
const InlineImagePrefix = "data:image"

// Config parámetros del manejador de fotos.
type Config struct {
	Namespace  string // carpeta destino en el almacén
	HostMarker string // subcadena que identifica URLs alojadas en nuestro almacén
}

// Handler sube y limpia fotos de empleados.
type Handler struct {
	store      ports.AssetStore
	namespace  string
	hostMarker string
	log        *logger.Logger
}

// NewHandler construye el manejador. store puede ser nil: en ese caso las fotos
// en línea se guardan tal como llegan y Cleanup no hace nada.
func NewHandler(store ports.AssetStore, cfg Config, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{
		store:      store,
		namespace:  cfg.Namespace,
		hostMarker: cfg.HostMarker,
		log:        log.Component("photo"),
	}
}

// IsInline indica si v es una imagen en línea que debe subirse.
func IsInline(v string) bool {
	return strings.HasPrefix(v, InlineImagePrefix)
}

// Resolve devuelve el valor a persistir para la foto. nil produce "". Un valor que
// no es imagen en línea se devuelve sin cambios. Si la subida falla se conserva el
// valor original.
func (h *Handler) Resolve(ctx context.Context, photo *string) string {
	if photo == nil {
		return ""
	}
	v := *photo
	if !IsInline(v) {
		return v
	}
	if h.store == nil {
		h.log.Debug().Msg("sin almacén de fotos configurado, se guarda la imagen en línea")
		return v
	}
	data, contentType, err := decodeDataURI(v)
	if err != nil {
		h.log.Warn().Err(err).Msg("imagen en línea inválida, se guarda el valor original")
		return v
	}
	u, err := h.store.Upload(ctx, h.namespace, data, contentType)
	if err != nil {
		h.log.Error().Err(err).Str("namespace", h.namespace).Msg("subida de foto fallida, se guarda el valor original")
		return v
	}
	h.log.Info().Str("url", u).Int("bytes", len(data)).Msg("foto subida")
	return u
}

// Cleanup elimina del almacén la foto referenciada por u si está alojada en él.
// Los errores solo se registran.
func (h *Handler) Cleanup(ctx context.Context, u string) {
	if h.store == nil || u == "" || h.hostMarker == "" || !strings.Contains(u, h.hostMarker) {
		return
	}
	id, ok := PublicID(u)
	if !ok {
		h.log.Warn().Str("url", u).Msg("no se pudo derivar el identificador de la foto")
		return
	}
	if err := h.store.Delete(ctx, id); err != nil {
		h.log.Error().Err(err).Str("public_id", id).Msg("borrado de foto fallido")
		return
	}
	h.log.Info().Str("public_id", id).Msg("foto eliminada")
}

// PublicID deriva el identificador de almacén de una URL de foto: los dos últimos
// segmentos de la ruta unidos con "/" y sin extensión.
func PublicID(raw string) (string, bool) {
	p := raw
	if u, err := url.Parse(raw); err == nil && u.Path != "" {
		p = u.Path
	}
	segments := make([]string, 0, 4)
	for _, s := range strings.Split(p, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	if len(segments) < 2 {
		return "", false
	}
	last := segments[len(segments)-1]
	last = strings.TrimSuffix(last, path.Ext(last))
	if last == "" {
		return "", false
	}
	return segments[len(segments)-2] + "/" + last, true
}

var errMalformedDataURI = errors.New("data URI mal formada")

// decodeDataURI interpreta "data:<mime>[;base64],<payload>".
func decodeDataURI(v string) ([]byte, string, error) {
	rest, ok := strings.CutPrefix(v, "data:")
	if !ok {
		return nil, "", errMalformedDataURI
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, "", errMalformedDataURI
	}
	params := strings.Split(meta, ";")
	contentType := params[0]
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	isBase64 := false
	for _, p := range params[1:] {
		if p == "base64" {
			isBase64 = true
		}
	}
	if !isBase64 {
		s, err := url.PathUnescape(payload)
		if err != nil {
			return nil, "", err
		}
		return []byte(s), contentType, nil
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		// Algunos clientes omiten el relleno.
		if data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "=")); err != nil {
			return nil, "", err
		}
	}
	if len(data) == 0 {
		return nil, "", errMalformedDataURI
	}
	return data, contentType, nil
}
