package handler

import (
	"noteful/dto"
	"noteful/usecase"
	"noteful/utils"

	"github.com/gin-gonic/gin"
)

func ListTagsHandler(c *gin.Context, tagsService *usecase.TagsService) {
	userID := c.GetString("user_id")
	searchTerm := c.Query("searchTerm")

	tags, err := tagsService.ListTags(c.Request.Context(), userID, searchTerm)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, tags)
}

func GetTagHandler(c *gin.Context, tagsService *usecase.TagsService) {
	tagID := c.Param("id")
	userID := c.GetString("user_id")

	if !requireValidID(c, tagID) {
		return
	}

	tag, err := tagsService.GetTag(c.Request.Context(), tagID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, tag)
}

func CreateTagHandler(c *gin.Context, tagsService *usecase.TagsService) {
	userID := c.GetString("user_id")

	var req dto.TagRequest
	if !bindBody(c, &req) {
		return
	}

	tag, err := tagsService.CreateTag(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	location := c.Request.URL.Path + "/" + tag.TagID
	utils.Created(c, location, tag)
}

func UpdateTagHandler(c *gin.Context, tagsService *usecase.TagsService) {
	tagID := c.Param("id")
	userID := c.GetString("user_id")

	if !requireValidID(c, tagID) {
		return
	}

	var req dto.TagRequest
	if !bindBody(c, &req) {
		return
	}

	tag, err := tagsService.UpdateTag(c.Request.Context(), tagID, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, tag)
}

func DeleteTagHandler(c *gin.Context, tagsService *usecase.TagsService) {
	tagID := c.Param("id")
	userID := c.GetString("user_id")

	if err := tagsService.DeleteTag(c.Request.Context(), tagID, userID); err != nil {
		respondError(c, err)
		return
	}

	utils.NoContent(c)
}
