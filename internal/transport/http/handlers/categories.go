package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/developerUmair/ecommerce-backend/internal/application/catalog"
	"github.com/developerUmair/ecommerce-backend/internal/transport/http/dto"
	"github.com/developerUmair/ecommerce-backend/internal/transport/http/response"
)

type CategoriesHandler struct {
	svc *catalog.Service
}

func NewCategoriesHandler(svc *catalog.Service) *CategoriesHandler {
	return &CategoriesHandler{svc: svc}
}

func (h *CategoriesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCategoryRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.Err(w, r, err)
		return
	}
	if err := dto.Validate(req); err != nil {
		response.Err(w, r, err)
		return
	}

	c, err := h.svc.CreateCategory(r.Context(), req.Name, req.Description, req.ParentID)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Created(w, "category created successfully", dto.ToCategoryView(c))
}

func (h *CategoriesHandler) List(w http.ResponseWriter, r *http.Request) {
	cs, err := h.svc.ListCategories(r.Context())
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.OK(w, "", dto.ToCategoryViews(cs))
}

func (h *CategoriesHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.GetCategory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.OK(w, "", dto.ToCategoryView(c))
}

func (h *CategoriesHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateCategoryRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.Err(w, r, err)
		return
	}

	c, err := h.svc.UpdateCategory(r.Context(), chi.URLParam(r, "id"), req.Name, req.Description, req.IsActive)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.OK(w, "category updated successfully", dto.ToCategoryView(c))
}
