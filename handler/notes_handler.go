package handler

import (
	"errors"
	"fmt"

	"noteful/dto"
	"noteful/usecase"
	"noteful/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindBody binds a JSON request body and writes the 400 on failure.
// Missing required fields get the field-specific message.
func bindBody(c *gin.Context, dst interface{}) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		field := validationErrs[0].Field()
		switch field {
		case "Title":
			utils.BadRequest(c, "Missing `title` in request body")
		case "Name":
			utils.BadRequest(c, "Missing `name` in request body")
		default:
			utils.BadRequest(c, fmt.Sprintf("Invalid `%s` in request body", field))
		}
		return false
	}

	utils.BadRequest(c, "Invalid request body")
	return false
}

// requireValidID rejects ids that are not uuids before any storage
// round trip.
func requireValidID(c *gin.Context, id string) bool {
	if !utils.IsValidID(id) {
		utils.BadRequest(c, "The `id` is not valid")
		return false
	}
	return true
}

func ListNotesHandler(c *gin.Context, notesService *usecase.NotesService) {
	userID := c.GetString("user_id")

	var query dto.NoteListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.BadRequest(c, "Invalid query parameters")
		return
	}

	notes, err := notesService.ListNotes(c.Request.Context(), userID, query)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, notes)
}

func GetNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("id")
	userID := c.GetString("user_id")

	if !requireValidID(c, noteID) {
		return
	}

	note, err := notesService.GetNote(c.Request.Context(), noteID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, note)
}

func CreateNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	userID := c.GetString("user_id")

	var req dto.NoteRequest
	if !bindBody(c, &req) {
		return
	}

	note, err := notesService.CreateNote(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	location := c.Request.URL.Path + "/" + note.NoteID
	utils.Created(c, location, note)
}

func UpdateNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("id")
	userID := c.GetString("user_id")

	if !requireValidID(c, noteID) {
		return
	}

	var req dto.NoteRequest
	if !bindBody(c, &req) {
		return
	}

	note, err := notesService.UpdateNote(c.Request.Context(), noteID, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, note)
}

func DeleteNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("id")
	userID := c.GetString("user_id")

	if err := notesService.DeleteNote(c.Request.Context(), noteID, userID); err != nil {
		respondError(c, err)
		return
	}

	utils.NoContent(c)
}
