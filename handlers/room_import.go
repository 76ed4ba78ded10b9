package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"choicedge/services"
)

const maxScheduleUploadBytes = 5 << 20

// HandleRoomScheduleImport parses an uploaded room schedule (.csv or .xlsx)
// and returns the rooms in the wizard's per-room shape, with row errors.
func HandleRoomScheduleImport() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseMultipartForm(maxScheduleUploadBytes); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Could not read the uploaded file")
		}

		file, header, err := e.Request.FormFile("file")
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Please choose a file to upload")
		}
		defer file.Close()

		result, err := services.ParseRoomSchedule(file, header.Filename)
		if err != nil {
			log.Printf("room_import: %s: %v", header.Filename, err)
			return ErrorToast(e, http.StatusBadRequest, err.Error())
		}

		log.Printf("room_import: %s: %d rooms, %d rejected rows", header.Filename, len(result.Rooms), len(result.Errors))
		if len(result.Errors) > 0 {
			SetToast(e, "warning", "Some rows could not be imported")
		}
		return e.JSON(http.StatusOK, result)
	}
}
