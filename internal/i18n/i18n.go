// Package i18n localizes user-facing messages. English is the source language,
// Spanish translations are registered in the x/text message catalog.
package i18n

import (
	"context"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/fhuszti/wedding-medias-go/internal/api_context"
)

const (
	MsgFileRequired       = "A file is required in the \"photo\" field"
	MsgInvalidFile        = "The file is not a valid photo or video"
	MsgFileTooLarge       = "The file is too large"
	MsgNotConfigured      = "The media service is not configured"
	MsgUploadFailed       = "The file could not be uploaded"
	MsgListFailed         = "The photos could not be loaded"
	MsgIDRequired         = "An ID is required"
	MsgDeleteFailed       = "The file could not be deleted"
	MsgDeleted            = "File deleted"
	MsgNothingToExport    = "There are no photos to download"
	MsgExportFailed       = "The archive could not be created"
	MsgSnapshotsDisabled  = "Archive snapshots are not available"
	MsgSnapshotFailed     = "The archive snapshot could not be requested"
	MsgSnapshotListFailed = "The archive snapshots could not be listed"
	MsgConfigInvalid      = "The media service configuration is invalid"
	MsgNotFound           = "This endpoint does not exist"
	MsgMethodNotAllowed   = "This method is not allowed"
)

var supported = []language.Tag{language.English, language.Spanish}

var matcher = language.NewMatcher(supported)

func init() {
	for key, es := range map[string]string{
		MsgFileRequired:       "Se requiere un archivo en el campo \"photo\"",
		MsgInvalidFile:        "El archivo no es una foto o un video válido",
		MsgFileTooLarge:       "El archivo es demasiado grande",
		MsgNotConfigured:      "El servicio de medios no está configurado",
		MsgUploadFailed:       "No se pudo subir el archivo",
		MsgListFailed:         "No se pudieron cargar las fotos",
		MsgIDRequired:         "Se requiere un ID",
		MsgDeleteFailed:       "No se pudo eliminar el archivo",
		MsgDeleted:            "Archivo eliminado",
		MsgNothingToExport:    "No hay fotos para descargar",
		MsgExportFailed:       "No se pudo crear el archivo comprimido",
		MsgSnapshotsDisabled:  "Las copias del archivo no están disponibles",
		MsgSnapshotFailed:     "No se pudo solicitar la copia del archivo",
		MsgSnapshotListFailed: "No se pudieron listar las copias del archivo",
		MsgConfigInvalid:      "La configuración del servicio de medios no es válida",
		MsgNotFound:           "Este endpoint no existe",
		MsgMethodNotAllowed:   "Este método no está permitido",
	} {
		if err := message.SetString(language.Spanish, key, es); err != nil {
			panic(err)
		}
	}
}

// Match picks the best supported locale for an Accept-Language header value.
func Match(acceptLanguage string) language.Tag {
	tags, _, _ := language.ParseAcceptLanguage(acceptLanguage)
	_, idx, _ := matcher.Match(tags...)
	return supported[idx]
}

// T translates key into the locale stored in ctx, English when none is set.
func T(ctx context.Context, key string) string {
	tag := language.English
	if l, ok := api_context.LocaleFromContext(ctx); ok {
		if t, err := language.Parse(l); err == nil {
			tag = t
		}
	}
	return message.NewPrinter(tag).Sprintf(key)
}
