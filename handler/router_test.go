package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"noteful/middleware"
	"noteful/model"
	"noteful/repository"
	"noteful/services"
	"noteful/usecase"

	"github.com/gin-gonic/gin"
)

// In-memory repositories so the full HTTP surface runs without mongod.

type fakeUsers struct {
	byUsername map[string]*model.User
}

func (f *fakeUsers) AddUser(_ context.Context, user *model.User) error {
	if _, ok := f.byUsername[user.Username]; ok {
		return repository.ErrDuplicateUsername
	}
	copied := *user
	f.byUsername[user.Username] = &copied
	return nil
}

func (f *fakeUsers) FindUserByUsername(_ context.Context, username string) (*model.User, error) {
	user, ok := f.byUsername[username]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

type fakeNotes struct {
	notes map[string]*model.Note
}

func (f *fakeNotes) InsertNote(_ context.Context, note *model.Note) error {
	copied := *note
	f.notes[note.NoteID] = &copied
	return nil
}

func (f *fakeNotes) FindNotes(_ context.Context, userID string, filter repository.NoteFilter) ([]*model.Note, error) {
	results := []*model.Note{}
	for _, note := range f.notes {
		if note.UserID != userID {
			continue
		}
		if filter.SearchTerm != "" {
			term := strings.ToLower(filter.SearchTerm)
			if !strings.Contains(strings.ToLower(note.Title), term) &&
				!strings.Contains(strings.ToLower(note.Content), term) {
				continue
			}
		}
		if filter.FolderID != "" && (note.FolderID == nil || *note.FolderID != filter.FolderID) {
			continue
		}
		if filter.TagID != "" {
			found := false
			for _, tag := range note.Tags {
				if tag == filter.TagID {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		copied := *note
		results = append(results, &copied)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].UpdatedAt.After(results[j].UpdatedAt)
	})
	return results, nil
}

func (f *fakeNotes) FindNote(_ context.Context, noteID, userID string) (*model.Note, error) {
	note, ok := f.notes[noteID]
	if !ok || note.UserID != userID {
		return nil, nil
	}
	copied := *note
	return &copied, nil
}

func (f *fakeNotes) ReplaceNote(_ context.Context, note *model.Note) (bool, error) {
	existing, ok := f.notes[note.NoteID]
	if !ok || existing.UserID != note.UserID {
		return false, nil
	}
	copied := *note
	f.notes[note.NoteID] = &copied
	return true, nil
}

func (f *fakeNotes) DeleteNote(_ context.Context, noteID, userID string) error {
	if note, ok := f.notes[noteID]; ok && note.UserID == userID {
		delete(f.notes, noteID)
	}
	return nil
}

type fakeFolders struct {
	folders map[string]*model.Folder
}

func (f *fakeFolders) InsertFolder(_ context.Context, folder *model.Folder) error {
	copied := *folder
	f.folders[folder.FolderID] = &copied
	return nil
}

func (f *fakeFolders) FindFolders(_ context.Context, userID, searchTerm string) ([]*model.Folder, error) {
	results := []*model.Folder{}
	for _, folder := range f.folders {
		if folder.UserID != userID {
			continue
		}
		if searchTerm != "" && !strings.Contains(strings.ToLower(folder.Name), strings.ToLower(searchTerm)) {
			continue
		}
		copied := *folder
		results = append(results, &copied)
	}
	return results, nil
}

func (f *fakeFolders) FindFolder(_ context.Context, folderID, userID string) (*model.Folder, error) {
	folder, ok := f.folders[folderID]
	if !ok || folder.UserID != userID {
		return nil, nil
	}
	copied := *folder
	return &copied, nil
}

func (f *fakeFolders) ReplaceFolder(_ context.Context, folder *model.Folder) (bool, error) {
	existing, ok := f.folders[folder.FolderID]
	if !ok || existing.UserID != folder.UserID {
		return false, nil
	}
	copied := *folder
	f.folders[folder.FolderID] = &copied
	return true, nil
}

func (f *fakeFolders) DeleteFolder(_ context.Context, folderID, userID string) error {
	if folder, ok := f.folders[folderID]; ok && folder.UserID == userID {
		delete(f.folders, folderID)
	}
	return nil
}

func (f *fakeFolders) FolderExists(_ context.Context, folderID, userID string) (bool, error) {
	folder, ok := f.folders[folderID]
	return ok && folder.UserID == userID, nil
}

type fakeTags struct {
	tags map[string]*model.Tag
}

func (f *fakeTags) InsertTag(_ context.Context, tag *model.Tag) error {
	copied := *tag
	f.tags[tag.TagID] = &copied
	return nil
}

func (f *fakeTags) FindTags(_ context.Context, userID, searchTerm string) ([]*model.Tag, error) {
	results := []*model.Tag{}
	for _, tag := range f.tags {
		if tag.UserID != userID {
			continue
		}
		if searchTerm != "" && !strings.Contains(strings.ToLower(tag.Name), strings.ToLower(searchTerm)) {
			continue
		}
		copied := *tag
		results = append(results, &copied)
	}
	return results, nil
}

func (f *fakeTags) FindTag(_ context.Context, tagID, userID string) (*model.Tag, error) {
	tag, ok := f.tags[tagID]
	if !ok || tag.UserID != userID {
		return nil, nil
	}
	copied := *tag
	return &copied, nil
}

func (f *fakeTags) ReplaceTag(_ context.Context, tag *model.Tag) (bool, error) {
	existing, ok := f.tags[tag.TagID]
	if !ok || existing.UserID != tag.UserID {
		return false, nil
	}
	copied := *tag
	f.tags[tag.TagID] = &copied
	return true, nil
}

func (f *fakeTags) DeleteTag(_ context.Context, tagID, userID string) error {
	if tag, ok := f.tags[tagID]; ok && tag.UserID == userID {
		delete(f.tags, tagID)
	}
	return nil
}

func (f *fakeTags) TagExists(_ context.Context, tagID, userID string) (bool, error) {
	tag, ok := f.tags[tagID]
	return ok && tag.UserID == userID, nil
}

// newTestRouter wires the real handlers, services, and middleware over
// the fakes, mirroring the route layout in main.go.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	usersRepo := &fakeUsers{byUsername: map[string]*model.User{}}
	notesRepo := &fakeNotes{notes: map[string]*model.Note{}}
	foldersRepo := &fakeFolders{folders: map[string]*model.Folder{}}
	tagsRepo := &fakeTags{tags: map[string]*model.Tag{}}

	tokens := services.NewTokenService([]byte("test_secret_key"), time.Hour)
	userService := &usecase.UserService{UsersRepo: usersRepo, Hasher: services.NewArgon2Hasher()}
	refs := &usecase.RefValidator{FoldersRepo: foldersRepo, TagsRepo: tagsRepo}
	notesService := &usecase.NotesService{NotesRepo: notesRepo, Refs: refs}
	foldersService := &usecase.FoldersService{FoldersRepo: foldersRepo}
	tagsService := &usecase.TagsService{TagsRepo: tagsRepo}

	router := gin.New()

	router.POST("/login", func(c *gin.Context) {
		LoginHandler(c, userService, tokens)
	})
	router.POST("/users", func(c *gin.Context) {
		RegistrationHandler(c, userService)
	})

	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware(tokens))
	{
		protected.POST("/login/refresh", func(c *gin.Context) {
			RefreshTokenHandler(c, tokens)
		})
		protected.GET("/notes", func(c *gin.Context) {
			ListNotesHandler(c, notesService)
		})
		protected.GET("/notes/:id", func(c *gin.Context) {
			GetNoteHandler(c, notesService)
		})
		protected.POST("/notes", func(c *gin.Context) {
			CreateNoteHandler(c, notesService)
		})
		protected.PUT("/notes/:id", func(c *gin.Context) {
			UpdateNoteHandler(c, notesService)
		})
		protected.DELETE("/notes/:id", func(c *gin.Context) {
			DeleteNoteHandler(c, notesService)
		})
		protected.GET("/folders", func(c *gin.Context) {
			ListFoldersHandler(c, foldersService)
		})
		protected.POST("/folders", func(c *gin.Context) {
			CreateFolderHandler(c, foldersService)
		})
		protected.GET("/folders/:id", func(c *gin.Context) {
			GetFolderHandler(c, foldersService)
		})
		protected.PUT("/folders/:id", func(c *gin.Context) {
			UpdateFolderHandler(c, foldersService)
		})
		protected.DELETE("/folders/:id", func(c *gin.Context) {
			DeleteFolderHandler(c, foldersService)
		})
		protected.GET("/tags", func(c *gin.Context) {
			ListTagsHandler(c, tagsService)
		})
		protected.POST("/tags", func(c *gin.Context) {
			CreateTagHandler(c, tagsService)
		})
		protected.GET("/tags/:id", func(c *gin.Context) {
			GetTagHandler(c, tagsService)
		})
		protected.PUT("/tags/:id", func(c *gin.Context) {
			UpdateTagHandler(c, tagsService)
		})
		protected.DELETE("/tags/:id", func(c *gin.Context) {
			DeleteTagHandler(c, tagsService)
		})
	}

	return router
}

// doJSON performs a request with an optional bearer token and JSON body.
func doJSON(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewBuffer(payload)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// signupAndLogin registers a user and returns a valid session token.
func signupAndLogin(t *testing.T, router *gin.Engine, username string) string {
	t.Helper()

	w := doJSON(router, "POST", "/users", "", map[string]string{
		"username": username,
		"password": "longenough1",
		"fullname": username,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Signup for %s failed: %d %s", username, w.Code, w.Body.String())
	}

	w = doJSON(router, "POST", "/login", "", map[string]string{
		"username": username,
		"password": "longenough1",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Login for %s failed: %d %s", username, w.Code, w.Body.String())
	}

	var resp struct {
		AuthToken string `json:"authToken"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode login response: %v", err)
	}
	if resp.AuthToken == "" {
		t.Fatal("Login returned an empty authToken")
	}
	return resp.AuthToken
}
