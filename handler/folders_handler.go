package handler

import (
	"noteful/dto"
	"noteful/usecase"
	"noteful/utils"

	"github.com/gin-gonic/gin"
)

func ListFoldersHandler(c *gin.Context, foldersService *usecase.FoldersService) {
	userID := c.GetString("user_id")
	searchTerm := c.Query("searchTerm")

	folders, err := foldersService.ListFolders(c.Request.Context(), userID, searchTerm)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, folders)
}

func GetFolderHandler(c *gin.Context, foldersService *usecase.FoldersService) {
	folderID := c.Param("id")
	userID := c.GetString("user_id")

	if !requireValidID(c, folderID) {
		return
	}

	folder, err := foldersService.GetFolder(c.Request.Context(), folderID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, folder)
}

func CreateFolderHandler(c *gin.Context, foldersService *usecase.FoldersService) {
	userID := c.GetString("user_id")

	var req dto.FolderRequest
	if !bindBody(c, &req) {
		return
	}

	folder, err := foldersService.CreateFolder(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	location := c.Request.URL.Path + "/" + folder.FolderID
	utils.Created(c, location, folder)
}

func UpdateFolderHandler(c *gin.Context, foldersService *usecase.FoldersService) {
	folderID := c.Param("id")
	userID := c.GetString("user_id")

	if !requireValidID(c, folderID) {
		return
	}

	var req dto.FolderRequest
	if !bindBody(c, &req) {
		return
	}

	folder, err := foldersService.UpdateFolder(c.Request.Context(), folderID, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, folder)
}

func DeleteFolderHandler(c *gin.Context, foldersService *usecase.FoldersService) {
	folderID := c.Param("id")
	userID := c.GetString("user_id")

	if err := foldersService.DeleteFolder(c.Request.Context(), folderID, userID); err != nil {
		respondError(c, err)
		return
	}

	utils.NoContent(c)
}
