// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/paveldk/go-blog-api/internal/logger"
	"github.com/paveldk/go-blog-api/internal/store"
	"github.com/paveldk/go-blog-api/internal/utils"
	"github.com/paveldk/go-blog-api/models"
)

// parseIDParam reads a numeric URL parameter. A non-numeric value behaves
// exactly like a missing resource, so handlers can treat both uniformly.
func parseIDParam(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// requesterID pulls the authenticated user's ID out of the request context.
// The auth middleware guarantees it is present on protected routes.
func requesterID(r *http.Request) (int64, bool) {
	return utils.GetUserIDFromContext(r.Context())
}

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	posts, err := h.services.PostService.ListPublished(r.Context())
	if err != nil {
		log.Err(err).Msg("listing posts failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, posts, http.StatusOK)
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	postID, ok := parseIDParam(r, "postID")
	if !ok {
		writeError(w, store.ErrPostNotFound)
		return
	}

	post, err := h.services.PostService.Get(r.Context(), postID)
	if err != nil {
		log.Err(err).Int64("postID", postID).Msg("post lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	authorID, ok := requesterID(r)
	if !ok {
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request models.PostCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.PostService.Create(r.Context(), authorID, request)
	if err != nil {
		log.Err(err).Int64("authorID", authorID).Msg("post creation failed")
		writeError(w, err)
		return
	}

	log.Info().Int64("postID", created.ID).Int64("authorID", authorID).Msg("post created")

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := requesterID(r)
	if !ok {
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	postID, ok := parseIDParam(r, "postID")
	if !ok {
		writeError(w, store.ErrPostNotFound)
		return
	}

	var request models.PostUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.PostService.Update(r.Context(), userID, postID, request)
	if err != nil {
		log.Err(err).Int64("postID", postID).Msg("post update failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) togglePublish(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := requesterID(r)
	if !ok {
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	postID, ok := parseIDParam(r, "postID")
	if !ok {
		writeError(w, store.ErrPostNotFound)
		return
	}

	updated, err := h.services.PostService.TogglePublish(r.Context(), userID, postID)
	if err != nil {
		log.Err(err).Int64("postID", postID).Msg("publish toggle failed")
		writeError(w, err)
		return
	}

	message := "post unpublished successfully"
	if updated.Published {
		message = "post published successfully"
	}

	utils.WriteJSON(w, models.PublishResponse{
		Message: message,
		Post:    updated,
	}, http.StatusOK)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := requesterID(r)
	if !ok {
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	postID, ok := parseIDParam(r, "postID")
	if !ok {
		writeError(w, store.ErrPostNotFound)
		return
	}

	if err := h.services.PostService.Delete(r.Context(), userID, postID); err != nil {
		log.Err(err).Int64("postID", postID).Msg("post delete failed")
		writeError(w, err)
		return
	}

	log.Info().Int64("postID", postID).Msg("post deleted")

	utils.WriteJSON(w, models.MessageResponse{Message: "post deleted successfully"}, http.StatusOK)
}
