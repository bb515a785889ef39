// Artwalk - Public Art Catalogue and Nearby Attraction Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artwalk

package api

import (
	"net/http"

	"github.com/tomtom215/artwalk/internal/models"
	"github.com/tomtom215/artwalk/internal/validation"
)

// valueResource serves CRUD for an entity that is written as a single value.
// decode reads and validates the request body and returns that value.
type valueResource[T any] struct {
	noun   string
	store  ValueStore[T]
	decode func(w http.ResponseWriter, r *http.Request) (string, bool)
}

func newNameResource[T any](noun string, store ValueStore[T]) *valueResource[T] {
	return &valueResource[T]{noun: noun, store: store, decode: decodeName}
}

func newMacAddressResource(store ValueStore[models.MacAddress]) *valueResource[models.MacAddress] {
	return &valueResource[models.MacAddress]{noun: "mac address", store: store, decode: decodeMacAddress}
}

func decodeName(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req models.NameRequest
	if !decodeBody(w, r, &req) {
		return "", false
	}
	return req.Name, true
}

func decodeMacAddress(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req models.MacAddressRequest
	if !decodeBody(w, r, &req) {
		return "", false
	}
	return req.Address, true
}

func (v *valueResource[T]) List(w http.ResponseWriter, r *http.Request) {
	items, err := v.store.List(r.Context())
	if err != nil {
		respondStoreError(w, r, v.noun, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (v *valueResource[T]) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idOrBadRequest(w, r)
	if !ok {
		return
	}
	item, err := v.store.Get(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, v.noun, err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

func (v *valueResource[T]) Create(w http.ResponseWriter, r *http.Request) {
	value, ok := v.decode(w, r)
	if !ok {
		return
	}
	id, err := v.store.Create(r.Context(), value)
	if err != nil {
		respondStoreError(w, r, v.noun, err)
		return
	}
	respondJSON(w, http.StatusCreated, models.CreatedResponse{Message: v.noun + " created", ID: id})
}

func (v *valueResource[T]) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idOrBadRequest(w, r)
	if !ok {
		return
	}
	value, ok := v.decode(w, r)
	if !ok {
		return
	}
	if err := v.store.Update(r.Context(), id, value); err != nil {
		respondStoreError(w, r, v.noun, err)
		return
	}
	respondMessage(w, http.StatusOK, v.noun+" updated")
}

func (v *valueResource[T]) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idOrBadRequest(w, r)
	if !ok {
		return
	}
	if err := v.store.SoftDelete(r.Context(), id); err != nil {
		respondStoreError(w, r, v.noun, err)
		return
	}
	respondMessage(w, http.StatusOK, v.noun+" deleted")
}

// ListAuthors returns every author.
//
// @Summary List authors
// @Tags Authors
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Author
// @Failure 401 {object} models.MessageResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /author/ [get]
func (h *Handler) ListAuthors(w http.ResponseWriter, r *http.Request) {
	authors, err := h.authors.List(r.Context())
	if err != nil {
		respondStoreError(w, r, "author", err)
		return
	}
	respondJSON(w, http.StatusOK, authors)
}

// GetAuthor returns one author.
//
// @Summary Get an author
// @Tags Authors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Author id"
// @Success 200 {object} models.Author
// @Failure 404 {object} models.MessageResponse
// @Router /author/{id} [get]
func (h *Handler) GetAuthor(w http.ResponseWriter, r *http.Request) {
	id, ok := idOrBadRequest(w, r)
	if !ok {
		return
	}
	author, err := h.authors.Get(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, "author", err)
		return
	}
	respondJSON(w, http.StatusOK, author)
}

// CreateAuthor adds an author. name is required.
//
// @Summary Create an author
// @Tags Authors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.AuthorRequest true "Author"
// @Success 201 {object} models.CreatedResponse
// @Failure 400 {object} models.ValidationErrorResponse
// @Router /author/ [post]
func (h *Handler) CreateAuthor(w http.ResponseWriter, r *http.Request) {
	var req models.AuthorRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Name == nil {
		respondJSON(w, http.StatusBadRequest, validation.Required("name").ToResponse())
		return
	}
	id, err := h.authors.Create(r.Context(), req)
	if err != nil {
		respondStoreError(w, r, "author", err)
		return
	}
	respondJSON(w, http.StatusCreated, models.CreatedResponse{Message: "author created", ID: id})
}

// UpdateAuthor changes the fields present in the body.
//
// @Summary Update an author
// @Tags Authors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Author id"
// @Param body body models.AuthorRequest true "Fields to change"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.MessageResponse
// @Router /author/{id} [put]
func (h *Handler) UpdateAuthor(w http.ResponseWriter, r *http.Request) {
	id, ok := idOrBadRequest(w, r)
	if !ok {
		return
	}
	var req models.AuthorRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.authors.Update(r.Context(), id, req); err != nil {
		respondStoreError(w, r, "author", err)
		return
	}
	respondMessage(w, http.StatusOK, "author updated")
}

// DeleteAuthor soft-deletes an author.
//
// @Summary Delete an author
// @Tags Authors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Author id"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.MessageResponse
// @Router /author/{id} [delete]
func (h *Handler) DeleteAuthor(w http.ResponseWriter, r *http.Request) {
	id, ok := idOrBadRequest(w, r)
	if !ok {
		return
	}
	if err := h.authors.SoftDelete(r.Context(), id); err != nil {
		respondStoreError(w, r, "author", err)
		return
	}
	respondMessage(w, http.StatusOK, "author deleted")
}

// ListCategories returns every category. Public.
//
// @Summary List categories
// @Tags Categories
// @Produce json
// @Success 200 {array} models.Category
// @Failure 503 {object} models.ErrorResponse
// @Router /category/ [get]
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.List(r.Context())
	if err != nil {
		respondStoreError(w, r, "category", err)
		return
	}
	respondJSON(w, http.StatusOK, categories)
}

// GetCategory returns one category. Public.
//
// @Summary Get a category
// @Tags Categories
// @Produce json
// @Param id path int true "Category id"
// @Success 200 {object} models.Category
// @Failure 404 {object} models.MessageResponse
// @Router /category/{id} [get]
func (h *Handler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := idOrBadRequest(w, r)
	if !ok {
		return
	}
	category, err := h.categories.Get(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, "category", err)
		return
	}
	respondJSON(w, http.StatusOK, category)
}

// CreateCategory adds a category. name is required.
//
// @Summary Create a category
// @Tags Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.CategoryRequest true "Category"
// @Success 201 {object} models.CreatedResponse
// @Failure 400 {object} models.ValidationErrorResponse
// @Router /category/ [post]
func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req models.CategoryRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Name == nil {
		respondJSON(w, http.StatusBadRequest, validation.Required("name").ToResponse())
		return
	}
	id, err := h.categories.Create(r.Context(), req)
	if err != nil {
		respondStoreError(w, r, "category", err)
		return
	}
	respondJSON(w, http.StatusCreated, models.CreatedResponse{Message: "category created", ID: id})
}

// UpdateCategory changes the fields present in the body.
//
// @Summary Update a category
// @Tags Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category id"
// @Param body body models.CategoryRequest true "Fields to change"
// @Success 200 {object} models.MessageResponse
// @Router /category/{id} [put]
func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := idOrBadRequest(w, r)
	if !ok {
		return
	}
	var req models.CategoryRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.categories.Update(r.Context(), id, req); err != nil {
		respondStoreError(w, r, "category", err)
		return
	}
	respondMessage(w, http.StatusOK, "category updated")
}

// DeleteCategory soft-deletes a category.
//
// @Summary Delete a category
// @Tags Categories
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category id"
// @Success 200 {object} models.MessageResponse
// @Router /category/{id} [delete]
func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := idOrBadRequest(w, r)
	if !ok {
		return
	}
	if err := h.categories.SoftDelete(r.Context(), id); err != nil {
		respondStoreError(w, r, "category", err)
		return
	}
	respondMessage(w, http.StatusOK, "category deleted")
}
