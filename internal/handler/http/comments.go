package http

import (
	"encoding/json"
	"net/http"

	"github.com/paveldk/go-blog-api/internal/logger"
	"github.com/paveldk/go-blog-api/internal/store"
	"github.com/paveldk/go-blog-api/internal/utils"
	"github.com/paveldk/go-blog-api/models"
)

func (h *Handler) listComments(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	postID, ok := parseIDParam(r, "postID")
	if !ok {
		writeError(w, store.ErrPostNotFound)
		return
	}

	comments, err := h.services.CommentService.ListByPost(r.Context(), postID)
	if err != nil {
		log.Err(err).Int64("postID", postID).Msg("listing comments failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, comments, http.StatusOK)
}

func (h *Handler) getComment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	commentID, ok := parseIDParam(r, "commentID")
	if !ok {
		writeError(w, store.ErrCommentNotFound)
		return
	}

	comment, err := h.services.CommentService.Get(r.Context(), commentID)
	if err != nil {
		log.Err(err).Int64("commentID", commentID).Msg("comment lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, comment, http.StatusOK)
}

func (h *Handler) createComment(w http.ResponseWriter, r *http.Request) {
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

	var request models.CommentCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.CommentService.Create(r.Context(), userID, postID, request)
	if err != nil {
		log.Err(err).Int64("postID", postID).Msg("comment creation failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateComment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := requesterID(r)
	if !ok {
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	commentID, ok := parseIDParam(r, "commentID")
	if !ok {
		writeError(w, store.ErrCommentNotFound)
		return
	}

	var request models.CommentCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.CommentService.Update(r.Context(), userID, commentID, request.Content)
	if err != nil {
		log.Err(err).Int64("commentID", commentID).Msg("comment update failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteComment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := requesterID(r)
	if !ok {
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	commentID, ok := parseIDParam(r, "commentID")
	if !ok {
		writeError(w, store.ErrCommentNotFound)
		return
	}

	if err := h.services.CommentService.Delete(r.Context(), userID, commentID); err != nil {
		log.Err(err).Int64("commentID", commentID).Msg("comment delete failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "comment deleted successfully"}, http.StatusOK)
}
