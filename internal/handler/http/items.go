// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/lendit/internal/logger"
	"github.com/MKhiriev/lendit/internal/utils"
	"github.com/MKhiriev/lendit/models"
)

const (
	itemUpdated = "Item updated successfully"
	itemDeleted = "Item deleted successfully"
)

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.services.ItemService.ListItems(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if items == nil {
		items = []models.Item{}
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	item, err := h.services.ItemService.GetItem(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}

// createItem lists a new item owned by the caller.
func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input models.ItemCreate
	if err = decodeJSON(w, r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	item, err := h.services.ItemService.CreateItem(r.Context(), identity, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("item_id", item.ID).Int64("owner_id", item.OwnerID).Msg("item created")

	utils.WriteJSON(w, item, http.StatusCreated)
}

// updateItem applies a partial update. A missing item answers 404 before
// ownership is considered; a non-owner gets 403.
func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.ItemUpdate
	if err = decodeJSON(w, r, &update); err != nil {
		writeError(w, r, err)
		return
	}

	item, err := h.services.ItemService.UpdateItem(r.Context(), identity, id, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	message := itemUpdated
	if update.IsEmpty() {
		message = nothingUpdated
	}
	utils.WriteJSON(w, models.ItemResponse{Message: message, Item: item}, http.StatusOK)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.ItemService.DeleteItem(r.Context(), identity, id); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("item_id", id).Msg("item deleted")

	utils.WriteJSON(w, models.MessageResponse{Message: itemDeleted}, http.StatusOK)
}
